package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"micron-api/internal/data/entity"
	"micron-api/internal/dto/request"
	"micron-api/internal/usecase"
	"micron-api/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// CheckDuplicate handles POST /api/auth/check-duplicate
func (h *AuthHandler) CheckDuplicate(w http.ResponseWriter, r *http.Request) {
	var req request.CheckDuplicateRequest

	// An empty body is an empty phone, which is a normal lookup.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CheckDuplicate(r.Context(), req.Phone)
	if err != nil {
		h.handleServiceError(w, err, "check duplicate")
		return
	}

	utils.ResponseSuccess(w, result)
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, entity.RoleSubscriber, "User registered successfully")
}

// AdminSignup handles POST /api/auth/admin-signup
func (h *AuthHandler) AdminSignup(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, entity.RoleAdmin, "Admin registered successfully")
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request, role entity.UserRole, message string) {
	var req request.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Debug("Signup validation failed",
			zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.Register(r.Context(), &req, role)
	if err != nil {
		h.handleServiceError(w, err, "register "+string(role))
		return
	}

	result.Message = message
	utils.ResponseCreated(w, result)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	result.Message = "Login successful"
	utils.ResponseSuccess(w, result)
}

// handleServiceError maps service errors to generic responses
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid credentials")

	case errors.Is(err, usecase.ErrStorage):
		h.log.Error(operation+" failed - database error", zap.Error(err))
		utils.ResponseInternalError(w, "Database error")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Server error")
	}
}
