package wire

import (
	"net/http"

	"micron-api/internal/adaptor"
	"micron-api/internal/data/repository"
	"micron-api/pkg/middleware"
	"micron-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	authenticate func(http.Handler) http.Handler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Post("/api/auth/check-duplicate", authHandler.CheckDuplicate)
	r.Post("/api/auth/signup", authHandler.Signup)
	r.Post("/api/auth/login", authHandler.Login)

	// Admin signup is public unless explicitly hardened.
	if config.Auth.AdminSignupRequiresAdmin {
		r.With(authenticate, middleware.Admin(repo.User, log)).
			Post("/api/auth/admin-signup", authHandler.AdminSignup)
		return
	}
	r.Post("/api/auth/admin-signup", authHandler.AdminSignup)
}
