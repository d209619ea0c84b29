package usecase

import (
	"context"
	"errors"
	"fmt"

	"micron-api/internal/data/entity"
	"micron-api/internal/data/repository"
	"micron-api/internal/dto/request"
	"micron-api/internal/dto/response"
	"micron-api/pkg/events"
	"micron-api/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	CheckDuplicate(ctx context.Context, phone string) (*response.CheckDuplicateResponse, error)
	Register(ctx context.Context, req *request.SignupRequest, role entity.UserRole) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	tokens     TokenService
	publisher  events.Publisher
	bcryptCost int
	log        *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens TokenService,
	publisher events.Publisher,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		publisher:  publisher,
		bcryptCost: config.Auth.BcryptCost,
		log:        log.With(zap.String("service", "auth")),
	}
}

// CheckDuplicate reports whether any account uses phone. The answer is advisory:
// a concurrent signup can still claim the phone before Register runs.
func (s *authService) CheckDuplicate(ctx context.Context, phone string) (*response.CheckDuplicateResponse, error) {
	exists, err := s.userRepo.ExistsByPhone(ctx, phone)
	if err != nil {
		s.log.Error("Failed to check duplicate phone", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return &response.CheckDuplicateResponse{Exists: exists}, nil
}

// Register stores a new account with the given role and returns a token for it.
func (s *authService) Register(ctx context.Context, req *request.SignupRequest, role entity.UserRole) (*response.AuthResponse, error) {
	hash, err := hashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("%w: hash password: %w", ErrStorage, err)
	}

	user := &entity.User{
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	token, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token after register", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)))

	s.publishRegistered(ctx, user)

	return &response.AuthResponse{
		UserID: user.ID,
		Token:  token,
	}, nil
}

// Login returns ErrUnauthorized for an unknown phone, a wrong password and a failed lookup.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.userRepo.FindByPhone(ctx, req.Phone)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if user == nil {
		s.log.Warn("Login for unknown phone")
		return nil, ErrUnauthorized
	}

	if err := comparePassword(user.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.log.Error("Stored password hash unusable", zap.Error(err), zap.Int64("user_id", user.ID))
		} else {
			s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		}
		return nil, ErrUnauthorized
	}

	token, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	s.log.Info("User logged in", zap.Int64("user_id", user.ID))

	return &response.AuthResponse{
		UserID: user.ID,
		Token:  token,
		Role:   user.Role,
	}, nil
}

func (s *authService) publishRegistered(ctx context.Context, user *entity.User) {
	event := events.AccountRegistered{
		UserID:    user.ID,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
	if err := s.publisher.PublishJSON(ctx, events.KeyAccountRegistered, event); err != nil {
		s.log.Warn("Failed to publish registration event", zap.Error(err), zap.Int64("user_id", user.ID))
	}
}
