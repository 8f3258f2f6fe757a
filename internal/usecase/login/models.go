package login

import (
	"time"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// Request login form
type Request struct {
	Email    string
	Password string
}

// Response established session
type Response struct {
	Token         string
	ExpiresAt     time.Time
	User          *domain.User
	DashboardPath string
}
