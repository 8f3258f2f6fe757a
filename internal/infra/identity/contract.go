package identity

import (
	"context"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// CredentialRepository account store (Postgres or Mongo)
type CredentialRepository interface {
	Create(ctx context.Context, c *domain.Credential) error
	GetByEmail(ctx context.Context, email string) (*domain.Credential, error)
}
