package new_mechanic

import (
	"errors"
	"net/http"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/middleware"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	provisionAccount "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/provision_account"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgUnauthorized       = "Please log in to access this page."
	msgAccessDenied       = "Access denied"
	msgMissingFields      = "All fields are required."
	msgPasswordMismatch   = "Passwords do not match."
	msgWeakPassword       = "Password must be at least 8 characters, include uppercase, lowercase, number, and special character."
	msgEmailExists        = "Email already exists."
	msgProvisioningFailed = "Could not create the mechanic account. Please try again later."
	msgCreated            = "Mechanic created successfully!"
)

type Handler struct {
	useCase CreateMechanicUseCase
	logger  Logger
}

func NewHandler(useCase CreateMechanicUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST {new mechanic}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req NewMechanicRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST new_mechanic - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.CreateMechanic(r.Context(), user, req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, provisionAccount.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, provisionAccount.ErrMissingFields):
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, provisionAccount.ErrPasswordMismatch):
			handlers.RespondBadRequest(w, msgPasswordMismatch)

		case errors.Is(err, provisionAccount.ErrWeakPassword):
			handlers.RespondBadRequest(w, msgWeakPassword)

		case errors.Is(err, provisionAccount.ErrEmailExists):
			handlers.RespondConflict(w, msgEmailExists)

		case errors.Is(err, domain.ErrProvisioning):
			h.logger.Error("POST new_mechanic - Identity gateway failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgProvisioningFailed)

		default:
			h.logger.Error("POST new_mechanic - Failed to create mechanic: admin_id=%s, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST new_mechanic - Mechanic created: mechanic_id=%s, admin_id=%s", result.UserID, user.ID)
	handlers.RespondJSON(w, http.StatusCreated, NewMechanicResponse{Message: msgCreated, MechanicID: result.UserID})
}
