package servicerequest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var columns = []string{
	"id",
	"reference_number",
	"client_id",
	"name",
	"surname",
	"phone",
	"email",
	"address",
	"vehicle",
	"make_model",
	"category",
	"service_datetime",
	"description",
	"status",
	"assigned_mechanic",
	"created_at",
}

// Repository service_requests table
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create stores a new service request. An empty ID is replaced by a generated key.
func (r *Repository) Create(ctx context.Context, sr *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	if sr.ID == "" {
		sr.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("service_requests").
		Columns(columns...).
		Values(
			sr.ID,
			sr.ReferenceNumber,
			sr.ClientID,
			sr.Name,
			sr.Surname,
			sr.Phone,
			sr.Email,
			sr.Address,
			sr.Vehicle,
			sr.MakeModel,
			sr.Category,
			sr.ServiceDateTime,
			sr.Description,
			sr.Status,
			sr.AssignedMechanic,
			sr.Timestamp,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return sr, nil
}

// GetByID returns the service request with the given id
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From("service_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	sr, err := scanServiceRequest(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service request: %v", ErrScanRow, err)
	}

	return sr, nil
}

// ListByClientID service requests submitted by the client, newest first
func (r *Repository) ListByClientID(ctx context.Context, clientID string) ([]*domain.ServiceRequest, error) {
	return r.list(ctx, "ListByClientID", squirrel.Eq{"client_id": clientID})
}

// ListByMechanicID service requests assigned to the mechanic, newest first
func (r *Repository) ListByMechanicID(ctx context.Context, mechanicID string) ([]*domain.ServiceRequest, error) {
	return r.list(ctx, "ListByMechanicID", squirrel.Eq{"assigned_mechanic": mechanicID})
}

// ListAll every service request, newest first
func (r *Repository) ListAll(ctx context.Context) ([]*domain.ServiceRequest, error) {
	return r.list(ctx, "ListAll", nil)
}

// AssignMechanic sets assigned_mechanic and status in one conditional update.
// Only a pending request can be assigned; the transition is one-way.
func (r *Repository) AssignMechanic(ctx context.Context, id, mechanicID string) error {
	query, args, err := psqlbuilder.Update("service_requests").
		Set("assigned_mechanic", mechanicID).
		Set("status", domain.StatusAssigned).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AssignMechanic - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AssignMechanic - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AssignMechanic - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrServiceRequestNotFound
		}
		return ErrAlreadyAssigned
	}

	return nil
}

func (r *Repository) exists(ctx context.Context, id string) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From("service_requests").
		Where(squirrel.Eq{"id": id}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: exists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: exists - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

func (r *Repository) list(ctx context.Context, method string, where squirrel.Sqlizer) ([]*domain.ServiceRequest, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From("service_requests").
		OrderBy("created_at DESC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	requests := make([]*domain.ServiceRequest, 0)
	for rows.Next() {
		sr, err := scanServiceRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		requests = append(requests, sr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return requests, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanServiceRequest(row scanner) (*domain.ServiceRequest, error) {
	var (
		sr       domain.ServiceRequest
		mechanic sql.NullString
	)

	err := row.Scan(
		&sr.ID,
		&sr.ReferenceNumber,
		&sr.ClientID,
		&sr.Name,
		&sr.Surname,
		&sr.Phone,
		&sr.Email,
		&sr.Address,
		&sr.Vehicle,
		&sr.MakeModel,
		&sr.Category,
		&sr.ServiceDateTime,
		&sr.Description,
		&sr.Status,
		&mechanic,
		&sr.Timestamp,
	)
	if err != nil {
		return nil, err
	}

	if mechanic.Valid {
		sr.AssignedMechanic = &mechanic.String
	}

	return &sr, nil
}
