package submit_booking

import (
	"errors"
	"fmt"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

var (
	// ErrAccessDenied only clients may submit bookings
	ErrAccessDenied = fmt.Errorf("%w: submit_booking: only clients can book a service", domain.ErrAuthorization)

	// ErrMissingFields a form field is absent or blank
	ErrMissingFields = domain.NewValidationError(domain.CodeMissingFields)

	// ErrBadDateTime service date and time do not form "YYYY-MM-DD HH:MM"
	ErrBadDateTime = domain.NewValidationError(domain.CodeBadDateTime)

	// ErrPastDateTime the requested slot is earlier than now
	ErrPastDateTime = domain.NewValidationError(domain.CodePastDateTime)

	// ErrInternal store or random source failure
	ErrInternal = errors.New("submit_booking: internal error")
)
