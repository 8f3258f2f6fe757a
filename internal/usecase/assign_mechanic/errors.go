package assign_mechanic

import (
	"errors"
	"fmt"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

var (
	// ErrAccessDenied only administrators may assign mechanics
	ErrAccessDenied = fmt.Errorf("%w: assign_mechanic: only admins can assign mechanics", domain.ErrAuthorization)

	// ErrMissingSelection booking or mechanic not selected
	ErrMissingSelection = domain.NewValidationError(domain.CodeMissingSelection)

	// ErrMechanicNotFound the selected mechanic does not exist
	ErrMechanicNotFound = fmt.Errorf("%w: assign_mechanic: mechanic not found", domain.ErrNotFound)

	// ErrNotAMechanic the selected user exists but is not a mechanic
	ErrNotAMechanic = domain.NewValidationError(domain.CodeNotAMechanic)

	// ErrBookingNotFound the selected booking does not exist
	ErrBookingNotFound = fmt.Errorf("%w: assign_mechanic: booking not found", domain.ErrNotFound)

	// ErrAlreadyAssigned the booking already has a mechanic
	ErrAlreadyAssigned = domain.NewValidationError(domain.CodeAlreadyAssigned)

	// ErrInternal store failure
	ErrInternal = errors.New("assign_mechanic: internal error")
)
