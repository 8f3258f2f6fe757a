package provision_account

import (
	"context"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// IdentityGateway credential store keyed by email
type IdentityGateway interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
	LookupByEmail(ctx context.Context, email string) (string, error)
}

// UserRepository persists user profiles
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
}

// Logger printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
