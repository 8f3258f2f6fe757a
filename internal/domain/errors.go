package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthorization the caller's role does not allow the operation
	ErrAuthorization = errors.New("authorization error")

	// ErrValidation malformed, missing or out-of-policy input
	ErrValidation = errors.New("validation error")

	// ErrNotFound a referenced user, email or record is absent
	ErrNotFound = errors.New("not found")

	// ErrProvisioning identity gateway failed after validation passed
	ErrProvisioning = errors.New("provisioning error")

	// ErrNotification best-effort notification delivery failed
	ErrNotification = errors.New("notification error")
)

// Record store outcomes shared by every storage implementation
var (
	// ErrDuplicate a unique key (id, email, reference number) is already taken
	ErrDuplicate = errors.New("duplicate record")

	// ErrConflict a conditional update found the record in an unexpected state
	ErrConflict = errors.New("record state conflict")
)

// ValidationError validation failure carrying a machine-readable code.
// errors.Is matches ErrValidation and any *ValidationError with the same code.
type ValidationError struct {
	Code string
}

// NewValidationError creates a validation error with the given code
func NewValidationError(code string) *ValidationError {
	return &ValidationError{Code: code}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.Code)
}

func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	var other *ValidationError
	if errors.As(target, &other) {
		return other.Code == e.Code
	}
	return false
}

// ValidationCode returns the code of the first *ValidationError in err's chain
func ValidationCode(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code, true
	}
	return "", false
}
