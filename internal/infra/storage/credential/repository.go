package credential

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

// Repository credentials table, the identity gateway's account store
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create stores a new account
func (r *Repository) Create(ctx context.Context, c *domain.Credential) error {
	query, args, err := psqlbuilder.Insert("credentials").
		Columns("account_id", "email", "password_hash").
		Values(c.AccountID, c.Email, c.PasswordHash).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&c.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByEmail looks an account up by its (lower-cased) email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	query, args, err := psqlbuilder.Select("account_id", "email", "password_hash", "created_at").
		From("credentials").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Credential
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&c.AccountID, &c.Email, &c.PasswordHash, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCredentialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan credential: %v", ErrScanRow, err)
	}

	return &c, nil
}
