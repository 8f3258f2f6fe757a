package servicerequest

import (
	"errors"
	"fmt"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

var (
	// ErrServiceRequestNotFound no service request with the given id
	ErrServiceRequestNotFound = fmt.Errorf("%w: servicerequest.repository: service request not found", domain.ErrNotFound)

	// ErrDuplicate id or reference number already used
	ErrDuplicate = fmt.Errorf("%w: servicerequest.repository: service request already exists", domain.ErrDuplicate)

	// ErrAlreadyAssigned conditional assignment found the request no longer pending
	ErrAlreadyAssigned = fmt.Errorf("%w: servicerequest.repository: service request is not pending", domain.ErrConflict)

	// ErrBuildQuery failed to build SQL query
	ErrBuildQuery = errors.New("servicerequest.repository: failed to build query")

	// ErrExecQuery failed to execute SQL query
	ErrExecQuery = errors.New("servicerequest.repository: failed to execute query")

	// ErrScanRow failed to scan query result
	ErrScanRow = errors.New("servicerequest.repository: failed to scan row")
)
