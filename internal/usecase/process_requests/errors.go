package process_requests

import (
	"errors"
	"fmt"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

var (
	// ErrAccessDenied only administrators may process the inbox
	ErrAccessDenied = fmt.Errorf("%w: process_requests: access denied", domain.ErrAuthorization)

	// ErrInboxNotFound the inbox file does not exist
	ErrInboxNotFound = fmt.Errorf("%w: process_requests: inbox file not found", domain.ErrNotFound)

	// ErrNothingToProcess the inbox holds no non-blank lines
	ErrNothingToProcess = errors.New("process_requests: no requests to process")

	// ErrInternal file system failure
	ErrInternal = errors.New("process_requests: internal error")
)
