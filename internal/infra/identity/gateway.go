package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// Gateway issues and verifies account credentials and maps email to a stable account id
type Gateway struct {
	repo  CredentialRepository
	cost  int
	newID func() string
}

// Option configures a Gateway
type Option func(*Gateway)

// WithBcryptCost overrides bcrypt.DefaultCost
func WithBcryptCost(cost int) Option {
	return func(g *Gateway) { g.cost = cost }
}

func NewGateway(repo CredentialRepository, opts ...Option) *Gateway {
	g := &Gateway{
		repo:  repo,
		cost:  bcrypt.DefaultCost,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CreateAccount stores a bcrypt hash of password and returns the new account id
func (g *Gateway) CreateAccount(ctx context.Context, email, password string) (string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), g.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashPassword, err)
	}

	credential := &domain.Credential{
		AccountID:    g.newID(),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := g.repo.Create(ctx, credential); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("identity: CreateAccount: %w", err)
	}

	return credential.AccountID, nil
}

// LookupByEmail returns the account id registered with email
func (g *Gateway) LookupByEmail(ctx context.Context, email string) (string, error) {
	credential, err := g.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrAccountNotFound
		}
		return "", fmt.Errorf("identity: LookupByEmail: %w", err)
	}
	return credential.AccountID, nil
}

// Authenticate verifies password and returns the account id.
// Unknown email and wrong password are both reported as ErrInvalidCredentials.
func (g *Gateway) Authenticate(ctx context.Context, email, password string) (string, error) {
	credential, err := g.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("identity: Authenticate: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("identity: Authenticate - compare: %w", err)
	}

	return credential.AccountID, nil
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
