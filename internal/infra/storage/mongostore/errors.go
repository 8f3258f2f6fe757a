package mongostore

import (
	"errors"
	"fmt"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

var (
	// ErrUserNotFound no user document with the given id
	ErrUserNotFound = fmt.Errorf("%w: mongostore: user not found", domain.ErrNotFound)

	// ErrServiceRequestNotFound no service request document with the given id
	ErrServiceRequestNotFound = fmt.Errorf("%w: mongostore: service request not found", domain.ErrNotFound)

	// ErrCredentialNotFound no account registered with the email
	ErrCredentialNotFound = fmt.Errorf("%w: mongostore: credential not found", domain.ErrNotFound)

	// ErrDuplicate unique index violated
	ErrDuplicate = fmt.Errorf("%w: mongostore: document already exists", domain.ErrDuplicate)

	// ErrAlreadyAssigned conditional assignment found the request no longer pending
	ErrAlreadyAssigned = fmt.Errorf("%w: mongostore: service request is not pending", domain.ErrConflict)

	// ErrQuery driver error
	ErrQuery = errors.New("mongostore: query failed")

	// ErrDecode document could not be decoded
	ErrDecode = errors.New("mongostore: failed to decode document")
)
