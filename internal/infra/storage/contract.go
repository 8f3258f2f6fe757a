package storage

import (
	"context"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// UserRepository user profiles
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	GetByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
}

// ServiceRequestRepository service requests
type ServiceRequestRepository interface {
	Create(ctx context.Context, sr *domain.ServiceRequest) (*domain.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	ListByClientID(ctx context.Context, clientID string) ([]*domain.ServiceRequest, error)
	ListByMechanicID(ctx context.Context, mechanicID string) ([]*domain.ServiceRequest, error)
	ListAll(ctx context.Context) ([]*domain.ServiceRequest, error)
	AssignMechanic(ctx context.Context, id, mechanicID string) error
}

// CredentialRepository identity accounts
type CredentialRepository interface {
	Create(ctx context.Context, c *domain.Credential) error
	GetByEmail(ctx context.Context, email string) (*domain.Credential, error)
}

// Logger printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
