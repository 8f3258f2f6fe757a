package provision_account

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/pkg/logger"
)

const strongPassword = "Str0ng!pass"

type mockIdentity struct{ mock.Mock }

func (m *mockIdentity) CreateAccount(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *mockIdentity) LookupByEmail(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

var errNoAccount = fmt.Errorf("%w: no account", domain.ErrNotFound)

func registerRequest() *RegisterRequest {
	return &RegisterRequest{
		Name:            "Jane",
		Surname:         "Doe",
		Gender:          "female",
		Email:           " Jane@Example.com ",
		Phone:           "+27111111111",
		Password:        strongPassword,
		ConfirmPassword: strongPassword,
	}
}

func staffRequest() *AccountRequest {
	return &AccountRequest{
		Name:            "Bob",
		Surname:         "Fixer",
		Email:           "bob@example.com",
		Phone:           "+2",
		Password:        strongPassword,
		ConfirmPassword: strongPassword,
	}
}

func TestRegister_Success(t *testing.T) {
	identity := &mockIdentity{}
	users := &mockUsers{}

	identity.On("LookupByEmail", mock.Anything, "jane@example.com").Return("", errNoAccount).Once()
	identity.On("CreateAccount", mock.Anything, "jane@example.com", strongPassword).Return("U1", nil).Once()
	users.On("Create", mock.Anything, &domain.User{
		ID:      "U1",
		Name:    "Jane",
		Surname: "Doe",
		Gender:  "female",
		Email:   "jane@example.com",
		Phone:   "+27111111111",
		Role:    domain.RoleClient,
	}).Return(nil).Once()

	uc := NewUseCase(identity, users, logger.NewDiscard())
	resp, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "U1", resp.UserID)
	assert.Equal(t, domain.RoleClient, resp.Role)
	identity.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestRegister_WeakMatchingPassword(t *testing.T) {
	identity := &mockIdentity{}
	users := &mockUsers{}

	req := registerRequest()
	req.Password = "abc"
	req.ConfirmPassword = "abc"

	_, err := NewUseCase(identity, users, logger.NewDiscard()).Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrWeakPassword)
	code, _ := domain.ValidationCode(err)
	assert.Equal(t, domain.CodeWeakPassword, code)

	identity.AssertNotCalled(t, "LookupByEmail", mock.Anything, mock.Anything)
	identity.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_CheckOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *RegisterRequest)
		wantErr error
	}{
		{
			name:    "privileged role",
			mutate:  func(r *RegisterRequest) { r.Role = domain.RoleAdmin; r.Name = "" },
			wantErr: domain.ErrAuthorization,
		},
		{
			name:    "missing gender",
			mutate:  func(r *RegisterRequest) { r.Gender = " "; r.ConfirmPassword = "other" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "mismatch before strength",
			mutate:  func(r *RegisterRequest) { r.Password = "abc"; r.ConfirmPassword = "abd" },
			wantErr: ErrPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := &mockIdentity{}
			users := &mockUsers{}

			req := registerRequest()
			tt.mutate(req)

			_, err := NewUseCase(identity, users, logger.NewDiscard()).Register(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			identity.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
			users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_EmailExists(t *testing.T) {
	identity := &mockIdentity{}
	users := &mockUsers{}
	identity.On("LookupByEmail", mock.Anything, "jane@example.com").Return("U0", nil)

	_, err := NewUseCase(identity, users, logger.NewDiscard()).Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.ErrorIs(t, err, domain.ErrValidation)
	identity.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_ProvisioningFailureWritesNoUser(t *testing.T) {
	identity := &mockIdentity{}
	users := &mockUsers{}
	identity.On("LookupByEmail", mock.Anything, mock.Anything).Return("", errNoAccount)
	identity.On("CreateAccount", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("gateway unavailable"))

	_, err := NewUseCase(identity, users, logger.NewDiscard()).Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, domain.ErrProvisioning)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_LookupFailure(t *testing.T) {
	identity := &mockIdentity{}
	identity.On("LookupByEmail", mock.Anything, mock.Anything).Return("", errors.New("timeout"))

	_, err := NewUseCase(identity, &mockUsers{}, logger.NewDiscard()).Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCreateMechanic(t *testing.T) {
	admin := &domain.User{ID: "A1", Role: domain.RoleAdmin}

	t.Run("admin creates mechanic", func(t *testing.T) {
		identity := &mockIdentity{}
		users := &mockUsers{}
		identity.On("LookupByEmail", mock.Anything, "bob@example.com").Return("", errNoAccount)
		identity.On("CreateAccount", mock.Anything, "bob@example.com", strongPassword).Return("M1", nil)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == "M1" && u.Role == domain.RoleMechanic && u.Gender == ""
		})).Return(nil).Once()

		resp, err := NewUseCase(identity, users, logger.NewDiscard()).CreateMechanic(context.Background(), admin, staffRequest())
		require.NoError(t, err)
		assert.Equal(t, domain.RoleMechanic, resp.Role)
		users.AssertExpectations(t)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		for _, principal := range []*domain.User{nil, {ID: "C1", Role: domain.RoleClient}, {ID: "M1", Role: domain.RoleMechanic}} {
			identity := &mockIdentity{}
			_, err := NewUseCase(identity, &mockUsers{}, logger.NewDiscard()).CreateMechanic(context.Background(), principal, staffRequest())
			assert.ErrorIs(t, err, domain.ErrAuthorization)
			identity.AssertNotCalled(t, "LookupByEmail", mock.Anything, mock.Anything)
		}
	})
}

func TestCreateAdmin(t *testing.T) {
	identity := &mockIdentity{}
	users := &mockUsers{}
	identity.On("LookupByEmail", mock.Anything, mock.Anything).Return("", errNoAccount)
	identity.On("CreateAccount", mock.Anything, mock.Anything, mock.Anything).Return("A1", nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool { return u.Role == domain.RoleAdmin })).Return(nil)

	resp, err := NewUseCase(identity, users, logger.NewDiscard()).CreateAdmin(context.Background(), staffRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, resp.Role)
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"abc", false},
		{"Abcdef1!", true},
		{"abcdef1!", false},
		{"ABCDEF1!", false},
		{"Abcdefg!", false},
		{"Abcdefg1", false},
		{"Abcdef1_", true},
		{"Abc 1234", true},
		{"Ab1!", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := validatePasswordStrength(tt.password)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrWeakPassword)
			}
		})
	}
}
