package middleware

import (
	"net/http"
	"strings"

	"micron-api/internal/data/repository"
	"micron-api/pkg/utils"

	"go.uber.org/zap"
)

// TokenVerifier turns a raw bearer token into the caller's identity.
type TokenVerifier interface {
	Verify(token string) (*utils.Identity, error)
}

// Authenticate rejects requests without a valid bearer token with 403 and
// attaches the verified identity to the request context otherwise.
func Authenticate(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				utils.ResponseForbidden(w, "Token missing")
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				logger.Debug("Rejected bearer token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseForbidden(w, "Invalid token")
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken returns the credential following the scheme in the
// Authorization header, or "" when there is none.
func BearerToken(r *http.Request) string {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// Admin must run after Authenticate; it loads the caller and requires the admin role.
func Admin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.ResponseForbidden(w, "Token missing")
				return
			}

			tokenFields := []zap.Field{
				zap.Int64("user_id", identity.UserID),
				zap.String("token_id", identity.TokenID),
				zap.Time("token_expires_at", identity.ExpiresAt),
			}

			user, err := userRepo.FindByID(r.Context(), identity.UserID)
			if err != nil {
				logger.Error("Admin check: failed to get user",
					append(tokenFields, zap.Error(err))...)
				utils.ResponseInternalError(w, "Server error")
				return
			}

			if user == nil || !user.IsAdmin() {
				logger.Warn("Admin check: non-admin access attempt",
					append(tokenFields, zap.String("path", r.URL.Path))...)
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
