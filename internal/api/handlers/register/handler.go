package register

import (
	"errors"
	"net/http"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	provisionAccount "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/provision_account"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgMissingFields      = "All fields are required."
	msgPasswordMismatch   = "Passwords do not match."
	msgWeakPassword       = "Password must be at least 8 characters, include uppercase, lowercase, number, and special character."
	msgEmailExists        = "Email already registered. Please login."
	msgRoleNotAllowed     = "Access denied"
	msgProvisioningFailed = "Registration failed. Please try again later."
	msgRegistered         = "User registered successfully! You can now login."
)

type Handler struct {
	useCase RegisterUseCase
	logger  Logger
}

func NewHandler(useCase RegisterUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Register(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, provisionAccount.ErrAccessDenied):
			h.logger.Warn("POST /register - Role not allowed: role=%s", req.Role)
			handlers.RespondForbidden(w, msgRoleNotAllowed)

		case errors.Is(err, provisionAccount.ErrMissingFields):
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, provisionAccount.ErrPasswordMismatch):
			handlers.RespondBadRequest(w, msgPasswordMismatch)

		case errors.Is(err, provisionAccount.ErrWeakPassword):
			handlers.RespondBadRequest(w, msgWeakPassword)

		case errors.Is(err, provisionAccount.ErrEmailExists):
			handlers.RespondConflict(w, msgEmailExists)

		case errors.Is(err, domain.ErrProvisioning):
			h.logger.Error("POST /register - Identity gateway failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgProvisioningFailed)

		default:
			h.logger.Error("POST /register - Failed to register user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /register - User registered: user_id=%s", result.UserID)
	handlers.RespondJSON(w, http.StatusCreated, RegisterResponse{Message: msgRegistered, UserID: result.UserID})
}
