package servicerequests

import (
	"errors"
	"fmt"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

var (
	// ErrAccessDenied the principal's role does not allow the listing
	ErrAccessDenied = fmt.Errorf("%w: service: access denied", domain.ErrAuthorization)

	// ErrInternal store failure while listing
	ErrInternal = errors.New("service: internal error")
)
