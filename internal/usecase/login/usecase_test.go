package login

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/identity"
	"github.com/Vonakala/Appointment-App-Service-Request/pkg/logger"
)

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Authenticate(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type stubTokens struct {
	err error
}

func (s stubTokens) Issue(user *domain.User) (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	return "token-" + user.ID, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
}

type dashboards map[domain.Role]string

func (d dashboards) DashboardFor(role domain.Role) (string, bool) {
	p, ok := d[role]
	return p, ok
}

var paths = dashboards{
	domain.RoleClient:   "/c0a1b2c3d",
	domain.RoleMechanic: "/m0a1b2c3d",
	domain.RoleAdmin:    "/a0a1b2c3d",
}

func TestExecute_Success(t *testing.T) {
	for role, path := range paths {
		t.Run(string(role), func(t *testing.T) {
			auth := &mockAuth{}
			users := &mockUsers{}
			auth.On("Authenticate", mock.Anything, "jane@example.com", "Secret1!").Return("U1", nil)
			users.On("GetByID", mock.Anything, "U1").Return(&domain.User{ID: "U1", Role: role}, nil)

			uc := NewUseCase(auth, users, stubTokens{}, paths, logger.NewDiscard())
			resp, err := uc.Execute(context.Background(), &Request{Email: " Jane@example.com", Password: "Secret1!"})
			require.NoError(t, err)

			assert.Equal(t, "token-U1", resp.Token)
			assert.Equal(t, path, resp.DashboardPath)
			assert.Equal(t, role, resp.User.Role)
		})
	}
}

func TestExecute_Failures(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		setup   func(a *mockAuth, u *mockUsers)
		tokens  stubTokens
		wantErr error
	}{
		{
			name:    "blank password",
			req:     &Request{Email: "jane@example.com"},
			wantErr: ErrMissingFields,
		},
		{
			name: "wrong password",
			req:  &Request{Email: "jane@example.com", Password: "nope"},
			setup: func(a *mockAuth, _ *mockUsers) {
				a.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).Return("", identity.ErrInvalidCredentials)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "gateway down",
			req:  &Request{Email: "jane@example.com", Password: "Secret1!"},
			setup: func(a *mockAuth, _ *mockUsers) {
				a.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("dial tcp"))
			},
			wantErr: ErrInternal,
		},
		{
			name: "no user record",
			req:  &Request{Email: "jane@example.com", Password: "Secret1!"},
			setup: func(a *mockAuth, u *mockUsers) {
				a.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).Return("U1", nil)
				u.On("GetByID", mock.Anything, "U1").Return(nil, fmt.Errorf("%w: U1", domain.ErrNotFound))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "unknown role",
			req:  &Request{Email: "jane@example.com", Password: "Secret1!"},
			setup: func(a *mockAuth, u *mockUsers) {
				a.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).Return("U1", nil)
				u.On("GetByID", mock.Anything, "U1").Return(&domain.User{ID: "U1", Role: "guest"}, nil)
			},
			wantErr: ErrUnknownRole,
		},
		{
			name: "signing failure",
			req:  &Request{Email: "jane@example.com", Password: "Secret1!"},
			setup: func(a *mockAuth, u *mockUsers) {
				a.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).Return("U1", nil)
				u.On("GetByID", mock.Anything, "U1").Return(&domain.User{ID: "U1", Role: domain.RoleClient}, nil)
			},
			tokens:  stubTokens{err: errors.New("bad key")},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuth{}
			users := &mockUsers{}
			if tt.setup != nil {
				tt.setup(auth, users)
			}

			resp, err := NewUseCase(auth, users, tt.tokens, paths, logger.NewDiscard()).Execute(context.Background(), tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
