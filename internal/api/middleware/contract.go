package middleware

import (
	"context"
	"time"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/identity"
)

// TokenParser validates session tokens
type TokenParser interface {
	Parse(token string) (*identity.Claims, error)
}

// UserLoader loads the principal named by a token
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// HTTPMetrics request counters
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}

// Logger printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
