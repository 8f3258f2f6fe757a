package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var columns = []string{
	"id",
	"name",
	"surname",
	"gender",
	"email",
	"phone",
	"role",
}

// Repository users table
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create writes a new user record under the id issued by the identity gateway
func (r *Repository) Create(ctx context.Context, u *domain.User) error {
	query, args, err := psqlbuilder.Insert("users").
		Columns(columns...).
		Values(u.ID, u.Name, u.Surname, u.Gender, u.Email, u.Phone, u.Role).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID returns the user with the given id
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.Surname,
		&u.Gender,
		&u.Email,
		&u.Phone,
		&u.Role,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan user: %v", ErrScanRow, err)
	}

	return &u, nil
}

// GetAll full scan of the users table
func (r *Repository) GetAll(ctx context.Context) ([]*domain.User, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From("users").
		OrderBy("surname ASC, name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanUsers(rows)
}

// GetByRole returns users holding the given role
func (r *Repository) GetByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From("users").
		Where(squirrel.Eq{"role": role}).
		OrderBy("surname ASC, name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRole - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRole - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanUsers(rows)
}

func (r *Repository) scanUsers(rows *sql.Rows) ([]*domain.User, error) {
	users := make([]*domain.User, 0)

	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Surname, &u.Gender, &u.Email, &u.Phone, &u.Role); err != nil {
			return nil, fmt.Errorf("%w: scanUsers - scan row: %v", ErrScanRow, err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanUsers - rows error: %v", ErrScanRow, err)
	}

	return users, nil
}
