package wire

import (
	"net/http"

	"micron-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	authenticate func(http.Handler) http.Handler,
) {
	r.With(authenticate).Get("/api/profile", userHandler.GetProfile)
	r.With(authenticate).Get("/api/admin/profile", userHandler.GetAdminProfile)

	// TODO: gate total-users and users behind middleware.Admin once the admin dashboard sends its token.
	r.Get("/api/admin/total-users", userHandler.GetTotalUsers)
	r.Get("/api/admin/users", userHandler.GetAllUsers)
}
