package usecase

import (
	"micron-api/internal/data/repository"
	"micron-api/pkg/events"
	"micron-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	User  UserService
	Token TokenService
}

func NewService(repo *repository.Repository, publisher events.Publisher, config *utils.Config, log *zap.Logger) *Service {
	tokens := NewTokenService(config.JWT)

	return &Service{
		Auth:  NewAuthService(repo.User, tokens, publisher, config, log),
		User:  NewUserService(repo.User, log),
		Token: tokens,
	}
}
