package login

import (
	"context"
	"time"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// Authenticator verifies credentials and returns the account id
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
}

// UserRepository loads the profile of an authenticated account
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// TokenIssuer signs session tokens
type TokenIssuer interface {
	Issue(user *domain.User) (string, time.Time, error)
}

// DashboardResolver maps a role to its dashboard path
type DashboardResolver interface {
	DashboardFor(role domain.Role) (string, bool)
}

// Logger printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
