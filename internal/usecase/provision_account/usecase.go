package provision_account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

const tracerName = "usecase/provision_account"

// UseCase creates identity-gateway accounts together with their user profiles
type UseCase struct {
	identity IdentityGateway
	userRepo UserRepository
	logger   Logger
}

// NewUseCase creates the use case
func NewUseCase(identity IdentityGateway, userRepo UserRepository, logger Logger) *UseCase {
	return &UseCase{
		identity: identity,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates a client account from the public registration form.
// Only the client role may be self-assigned.
func (uc *UseCase) Register(ctx context.Context, req *RegisterRequest) (*Response, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Register")
	defer span.End()

	role := req.Role
	if role == "" {
		role = domain.RoleClient
	}
	if role != domain.RoleClient {
		uc.logger.Warn("Register: self-registration with role=%s rejected", role)
		span.SetStatus(codes.Error, "access denied")
		return nil, fmt.Errorf("%w: cannot self-register as %s", ErrAccessDenied, role)
	}

	// 1. Required fields
	if err := validateRequired(
		field{"name", req.Name},
		field{"surname", req.Surname},
		field{"gender", req.Gender},
		field{"email", req.Email},
		field{"phone", req.Phone},
		field{"password", req.Password},
		field{"confirm_password", req.ConfirmPassword},
	); err != nil {
		uc.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	user := &domain.User{
		Name:    strings.TrimSpace(req.Name),
		Surname: strings.TrimSpace(req.Surname),
		Gender:  strings.TrimSpace(req.Gender),
		Email:   normalizeEmail(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Role:    role,
	}
	return uc.provision(ctx, "Register", user, req.Password, req.ConfirmPassword)
}

// CreateMechanic creates a mechanic account; the caller must be an administrator
func (uc *UseCase) CreateMechanic(ctx context.Context, principal *domain.User, req *AccountRequest) (*Response, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "CreateMechanic")
	defer span.End()

	if !principal.HasRole(domain.RoleAdmin) {
		uc.logger.Warn("CreateMechanic: access denied for non-admin principal")
		span.SetStatus(codes.Error, "access denied")
		return nil, ErrAccessDenied
	}

	return uc.createStaff(ctx, "CreateMechanic", domain.RoleMechanic, req)
}

// CreateAdmin creates an administrator account. Used by the bootstrap command only.
func (uc *UseCase) CreateAdmin(ctx context.Context, req *AccountRequest) (*Response, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "CreateAdmin")
	defer span.End()

	return uc.createStaff(ctx, "CreateAdmin", domain.RoleAdmin, req)
}

func (uc *UseCase) createStaff(ctx context.Context, method string, role domain.Role, req *AccountRequest) (*Response, error) {
	// 1. Required fields
	if err := validateRequired(
		field{"name", req.Name},
		field{"surname", req.Surname},
		field{"email", req.Email},
		field{"phone", req.Phone},
		field{"password", req.Password},
		field{"confirm_password", req.ConfirmPassword},
	); err != nil {
		uc.logger.Warn("%s: validation failed: %v", method, err)
		return nil, err
	}

	user := &domain.User{
		Name:    strings.TrimSpace(req.Name),
		Surname: strings.TrimSpace(req.Surname),
		Email:   normalizeEmail(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Role:    role,
	}
	return uc.provision(ctx, method, user, req.Password, req.ConfirmPassword)
}

// provision runs the checks shared by every account type after the required-field check,
// then creates the credential and the profile in that order
func (uc *UseCase) provision(ctx context.Context, method string, user *domain.User, password, confirm string) (*Response, error) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("user.role", string(user.Role)))

	// 2. Confirmation must match
	if err := validateConfirmation(password, confirm); err != nil {
		uc.logger.Warn("%s: validation failed for email=%s: %v", method, user.Email, err)
		return nil, err
	}

	// 3. Password strength
	if err := validatePasswordStrength(password); err != nil {
		uc.logger.Warn("%s: validation failed for email=%s: %v", method, user.Email, err)
		return nil, err
	}

	// 4. Email must not be registered yet
	_, err := uc.identity.LookupByEmail(ctx, user.Email)
	switch {
	case err == nil:
		uc.logger.Warn("%s: email=%s already registered", method, user.Email)
		return nil, ErrEmailExists
	case !errors.Is(err, domain.ErrNotFound):
		uc.logger.Error("%s: email lookup failed for email=%s: %v", method, user.Email, err)
		return nil, fmt.Errorf("%w: lookup email: %v", ErrInternal, err)
	}

	// 5. Create the credential; its id becomes the user id
	accountID, err := uc.identity.CreateAccount(ctx, user.Email, password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			uc.logger.Warn("%s: email=%s registered concurrently", method, user.Email)
			return nil, ErrEmailExists
		}
		uc.logger.Error("%s: identity gateway failed for email=%s: %v", method, user.Email, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "provisioning failed")
		return nil, fmt.Errorf("%w: %v", ErrProvisioning, err)
	}
	user.ID = accountID

	// 6. Write the profile
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			uc.logger.Warn("%s: user record for email=%s already exists", method, user.Email)
			return nil, ErrEmailExists
		}
		uc.logger.Error("%s: failed to write user=%s: %v", method, user.ID, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "user write failed")
		return nil, fmt.Errorf("%w: create user: %v", ErrInternal, err)
	}

	uc.logger.Info("%s: created user=%s role=%s", method, user.ID, user.Role)
	return &Response{UserID: user.ID, Email: user.Email, Role: user.Role}, nil
}
