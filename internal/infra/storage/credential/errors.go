package credential

import (
	"errors"
	"fmt"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

var (
	// ErrCredentialNotFound no account registered with the email
	ErrCredentialNotFound = fmt.Errorf("%w: credential.repository: credential not found", domain.ErrNotFound)

	// ErrEmailTaken an account with the email already exists
	ErrEmailTaken = fmt.Errorf("%w: credential.repository: email already registered", domain.ErrDuplicate)

	// ErrBuildQuery failed to build SQL query
	ErrBuildQuery = errors.New("credential.repository: failed to build query")

	// ErrExecQuery failed to execute SQL query
	ErrExecQuery = errors.New("credential.repository: failed to execute query")

	// ErrScanRow failed to scan query result
	ErrScanRow = errors.New("credential.repository: failed to scan row")
)
