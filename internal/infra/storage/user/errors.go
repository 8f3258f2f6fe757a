package user

import (
	"errors"
	"fmt"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

var (
	// ErrUserNotFound no user with the given id
	ErrUserNotFound = fmt.Errorf("%w: user.repository: user not found", domain.ErrNotFound)

	// ErrEmailTaken a user with the same id or email already exists
	ErrEmailTaken = fmt.Errorf("%w: user.repository: user already exists", domain.ErrDuplicate)

	// ErrBuildQuery failed to build SQL query
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery failed to execute SQL query
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow failed to scan query result
	ErrScanRow = errors.New("user.repository: failed to scan row")
)
