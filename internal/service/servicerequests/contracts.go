package servicerequests

import (
	"context"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// ServiceRequestRepository read side of the service request store
type ServiceRequestRepository interface {
	ListByClientID(ctx context.Context, clientID string) ([]*domain.ServiceRequest, error)
	ListByMechanicID(ctx context.Context, mechanicID string) ([]*domain.ServiceRequest, error)
	ListAll(ctx context.Context) ([]*domain.ServiceRequest, error)
}

// UserRepository read side of the user store
type UserRepository interface {
	GetAll(ctx context.Context) ([]*domain.User, error)
	GetByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
}

// Logger printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
