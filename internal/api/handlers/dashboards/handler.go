package dashboards

import (
	"context"
	"errors"
	"net/http"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/middleware"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/service/servicerequests"
)

const (
	msgUnauthorized = "Please log in to access this page."
	msgAccessDenied = "Access denied"
)

// Handler serves one of the three dashboards, chosen at construction
type Handler struct {
	name   string
	load   func(ctx context.Context, user *domain.User) (interface{}, error)
	logger Logger
}

// NewClientHandler GET {client dashboard}
func NewClientHandler(service ServiceRequestService, logger Logger) *Handler {
	return &Handler{
		name: "client dashboard",
		load: func(ctx context.Context, user *domain.User) (interface{}, error) {
			return service.ListForClient(ctx, user)
		},
		logger: logger,
	}
}

// NewMechanicHandler GET {mechanic dashboard}
func NewMechanicHandler(service ServiceRequestService, logger Logger) *Handler {
	return &Handler{
		name: "mechanic dashboard",
		load: func(ctx context.Context, user *domain.User) (interface{}, error) {
			return service.ListForMechanic(ctx, user)
		},
		logger: logger,
	}
}

// NewAdminHandler GET {admin dashboard}
func NewAdminHandler(service ServiceRequestService, logger Logger) *Handler {
	return &Handler{
		name: "admin dashboard",
		load: func(ctx context.Context, user *domain.User) (interface{}, error) {
			return service.ListAllForAdmin(ctx, user)
		},
		logger: logger,
	}
}

// Handle GET {dashboard}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	dashboard, err := h.load(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, servicerequests.ErrAccessDenied):
			h.logger.Warn("GET %s - Access denied: user_id=%s, role=%s", h.name, user.ID, user.Role)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET %s - Failed to load: user_id=%s, error=%v", h.name, user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, dashboard)
}
