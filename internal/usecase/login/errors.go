package login

import (
	"errors"
	"fmt"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

var (
	// ErrMissingFields email or password is blank
	ErrMissingFields = domain.NewValidationError(domain.CodeMissingFields)

	// ErrInvalidCredentials unknown email or wrong password
	ErrInvalidCredentials = errors.New("login: invalid email or password")

	// ErrUserNotFound the account has no user profile
	ErrUserNotFound = fmt.Errorf("%w: login: user not found", domain.ErrNotFound)

	// ErrUnknownRole the profile carries a role with no dashboard
	ErrUnknownRole = fmt.Errorf("%w: login: unknown role", domain.ErrAuthorization)

	// ErrInternal gateway, store or signing failure
	ErrInternal = errors.New("login: internal error")
)
