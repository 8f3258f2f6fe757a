package book_service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/middleware"
	submitBooking "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgUnauthorized       = "Please log in to access this page."
	msgAccessDenied       = "Access denied"
	msgMissingFields      = "All fields are required."
	msgBadDateTime        = "Invalid date or time format."
	msgPastDateTime       = "Selected date and time cannot be in the past."
	msgBookedFormat       = "Service booked successfully! Reference: %s"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /book_service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req BookServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book_service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(user))
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, submitBooking.ErrMissingFields):
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, submitBooking.ErrBadDateTime):
			handlers.RespondBadRequest(w, msgBadDateTime)

		case errors.Is(err, submitBooking.ErrPastDateTime):
			handlers.RespondBadRequest(w, msgPastDateTime)

		default:
			h.logger.Error("POST /book_service - Failed to book service: user_id=%s, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /book_service - Service booked: user_id=%s, ref=%s", user.ID, result.ReferenceNumber)
	handlers.RespondJSON(w, http.StatusCreated, BookServiceResponse{
		Message:         fmt.Sprintf(msgBookedFormat, result.ReferenceNumber),
		ID:              result.ID,
		ReferenceNumber: result.ReferenceNumber,
	})
}
