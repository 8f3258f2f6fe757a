package provision_account

import "github.com/Vonakala/Appointment-App-Service-Request/internal/domain"

// RegisterRequest self-registration form
type RegisterRequest struct {
	Name            string
	Surname         string
	Gender          string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	Role            domain.Role // empty means client
}

// AccountRequest staff account created by an administrator or the bootstrap command
type AccountRequest struct {
	Name            string
	Surname         string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// Response created account
type Response struct {
	UserID string
	Email  string
	Role   domain.Role
}
