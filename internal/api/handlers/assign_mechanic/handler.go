package assign_mechanic

import (
	"errors"
	"net/http"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/middleware"
	assignMechanic "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/assign_mechanic"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgUnauthorized       = "Please log in to access this page."
	msgAccessDenied       = "Access denied"
	msgMissingSelection   = "Booking ID and Mechanic must be selected."
	msgMechanicNotFound   = "Mechanic not found."
	msgNotAMechanic       = "Selected user is not a mechanic."
	msgBookingNotFound    = "Booking not found."
	msgAlreadyAssigned    = "A mechanic is already assigned to this booking."
	msgAssigned           = "Mechanic assigned successfully! Notifications sent to client and mechanic."
)

type Handler struct {
	useCase AssignMechanicUseCase
	logger  Logger
}

func NewHandler(useCase AssignMechanicUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST {assign mechanic}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req AssignMechanicRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST assign_mechanic - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.useCase.Execute(r.Context(), &assignMechanic.Request{
		Principal:  user,
		BookingID:  req.BookingID,
		MechanicID: req.MechanicID,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignMechanic.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, assignMechanic.ErrMissingSelection):
			handlers.RespondBadRequest(w, msgMissingSelection)

		case errors.Is(err, assignMechanic.ErrMechanicNotFound):
			handlers.RespondNotFound(w, msgMechanicNotFound)

		case errors.Is(err, assignMechanic.ErrNotAMechanic):
			handlers.RespondBadRequest(w, msgNotAMechanic)

		case errors.Is(err, assignMechanic.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, assignMechanic.ErrAlreadyAssigned):
			handlers.RespondConflict(w, msgAlreadyAssigned)

		default:
			h.logger.Error("POST assign_mechanic - Failed to assign: booking_id=%s, mechanic_id=%s, error=%v",
				req.BookingID, req.MechanicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST assign_mechanic - Assigned: booking_id=%s, mechanic_id=%s", req.BookingID, req.MechanicID)
	handlers.RespondMessage(w, http.StatusOK, msgAssigned)
}
