package assign_mechanic

import (
	"context"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/service/notifications"
)

// ServiceRequestRepository reads and conditionally updates service requests
type ServiceRequestRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	AssignMechanic(ctx context.Context, id, mechanicID string) error
}

// UserRepository resolves the mechanic
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Notifier best-effort assignment notifications
type Notifier interface {
	MechanicAssigned(ctx context.Context, sr *domain.ServiceRequest, mechanic *domain.User) notifications.Report
}

// Metrics assignment counter
type Metrics interface {
	IncMechanicsAssigned()
}

// Logger printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
