package process_requests

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/middleware"
	processRequests "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/process_requests"
)

const (
	msgUnauthorized    = "Please log in to access this page."
	msgAccessDenied    = "Access denied"
	msgNoInbox         = "No client requests file found."
	msgNothingToDo     = "No requests to process."
	msgProcessedFormat = "Processed %d client requests successfully!"
)

type Handler struct {
	useCase ProcessRequestsUseCase
	logger  Logger
}

func NewHandler(useCase ProcessRequestsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /process_requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.useCase.Execute(user)
	if err != nil {
		switch {
		case errors.Is(err, processRequests.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, processRequests.ErrInboxNotFound):
			handlers.RespondNotFound(w, msgNoInbox)

		case errors.Is(err, processRequests.ErrNothingToProcess):
			handlers.RespondJSON(w, http.StatusOK, ProcessRequestsResponse{Message: msgNothingToDo, Preview: []string{}})

		default:
			h.logger.Error("POST /process_requests - Failed to process: admin_id=%s, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /process_requests - Processed %d requests: admin_id=%s", result.Processed, user.ID)
	handlers.RespondJSON(w, http.StatusOK, ProcessRequestsResponse{
		Message:   fmt.Sprintf(msgProcessedFormat, result.Processed),
		Processed: result.Processed,
		Preview:   result.Preview,
		Remaining: result.Remaining,
	})
}
