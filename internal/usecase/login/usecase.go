package login

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/identity"
)

const tracerName = "usecase/login"

// UseCase authenticates a user and opens a session
type UseCase struct {
	auth       Authenticator
	userRepo   UserRepository
	tokens     TokenIssuer
	dashboards DashboardResolver
	logger     Logger
}

// NewUseCase creates the use case
func NewUseCase(auth Authenticator, userRepo UserRepository, tokens TokenIssuer, dashboards DashboardResolver, logger Logger) *UseCase {
	return &UseCase{
		auth:       auth,
		userRepo:   userRepo,
		tokens:     tokens,
		dashboards: dashboards,
		logger:     logger,
	}
}

// Execute verifies the credentials, loads the user and issues a session token
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Login")
	defer span.End()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	// 1. Verify credentials
	accountID, err := uc.auth.Authenticate(ctx, email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) || errors.Is(err, identity.ErrInvalidInput) {
			uc.logger.Warn("Login: failed for email=%s: %v", email, err)
			return nil, ErrInvalidCredentials
		}
		uc.logger.Error("Login: authentication error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: authenticate: %v", ErrInternal, err)
	}

	// 2. Load the profile
	user, err := uc.userRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.Warn("Login: account=%s has no user record", accountID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("Login: failed to load user=%s: %v", accountID, err)
		return nil, fmt.Errorf("%w: load user: %v", ErrInternal, err)
	}
	span.SetAttributes(attribute.String("user.id", user.ID), attribute.String("user.role", string(user.Role)))

	// 3. Pick the dashboard
	path, ok := uc.dashboards.DashboardFor(user.Role)
	if !user.Role.IsValid() || !ok {
		uc.logger.Warn("Login: user=%s has unknown role=%q", user.ID, user.Role)
		return nil, ErrUnknownRole
	}

	// 4. Issue the session token
	token, expiresAt, err := uc.tokens.Issue(user)
	if err != nil {
		uc.logger.Error("Login: failed to issue token for user=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	uc.logger.Info("Login: user=%s role=%s logged in", user.ID, user.Role)
	return &Response{
		Token:         token,
		ExpiresAt:     expiresAt,
		User:          user,
		DashboardPath: path,
	}, nil
}
