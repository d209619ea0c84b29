package adaptor

import (
	"errors"
	"net/http"

	"micron-api/internal/dto/request"
	"micron-api/internal/usecase"
	"micron-api/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Token missing")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, profile)
}

// GetAdminProfile handles GET /api/admin/profile
func (h *UserHandler) GetAdminProfile(w http.ResponseWriter, r *http.Request) {
	h.log.Info("Admin profile requested")

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Token missing")
		return
	}

	profile, err := h.service.GetAdminProfile(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get admin profile")
		return
	}

	utils.ResponseSuccess(w, profile)
}

// GetTotalUsers handles GET /api/admin/total-users
func (h *UserHandler) GetTotalUsers(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.CountUsers(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "count users")
		return
	}

	utils.ResponseSuccess(w, total)
}

// GetAllUsers handles GET /api/admin/users?page=1&per_page=10 (pagination optional)
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.QueryInt(query, "page", 0),
		PerPage: utils.QueryInt(query, "per_page", 10),
	}

	users, err := h.service.ListUsers(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, users)
}

// handleServiceError handles errors for user operations
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "User not found")

	case errors.Is(err, usecase.ErrAdminNotFound):
		h.log.Warn(operation+" failed - admin not found", zap.Error(err))
		utils.ResponseInternalError(w, "Admin not found")

	case errors.Is(err, usecase.ErrStorage):
		h.log.Error(operation+" failed - database error", zap.Error(err))
		utils.ResponseInternalError(w, "Database error")

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Server error")
	}
}
