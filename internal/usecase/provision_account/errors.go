package provision_account

import (
	"errors"
	"fmt"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

var (
	// ErrAccessDenied caller may not create an account with the requested role
	ErrAccessDenied = fmt.Errorf("%w: provision_account: access denied", domain.ErrAuthorization)

	// ErrMissingFields a required field is blank
	ErrMissingFields = domain.NewValidationError(domain.CodeMissingFields)

	// ErrPasswordMismatch password and confirmation differ
	ErrPasswordMismatch = domain.NewValidationError(domain.CodePasswordMismatch)

	// ErrWeakPassword password does not satisfy the strength policy
	ErrWeakPassword = domain.NewValidationError(domain.CodeWeakPassword)

	// ErrEmailExists an account with the email already exists
	ErrEmailExists = domain.NewValidationError(domain.CodeEmailExists)

	// ErrProvisioning identity gateway failed to create the account
	ErrProvisioning = fmt.Errorf("%w: provision_account: failed to create account", domain.ErrProvisioning)

	// ErrInternal email lookup or user record write failed
	ErrInternal = errors.New("provision_account: internal error")
)
