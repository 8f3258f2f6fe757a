package assign_mechanic

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/service/notifications"
	"github.com/Vonakala/Appointment-App-Service-Request/pkg/logger"
)

// memoryRequests applies the same conditional update as the real stores
type memoryRequests struct {
	records   map[string]*domain.ServiceRequest
	assignErr error
	getCalls  int
}

func (m *memoryRequests) GetByID(_ context.Context, id string) (*domain.ServiceRequest, error) {
	m.getCalls++
	sr, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	cp := *sr
	return &cp, nil
}

func (m *memoryRequests) AssignMechanic(_ context.Context, id, mechanicID string) error {
	if m.assignErr != nil {
		return m.assignErr
	}
	sr, ok := m.records[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	if sr.Status != domain.StatusPending {
		return fmt.Errorf("%w: %s", domain.ErrConflict, id)
	}
	sr.Status = domain.StatusAssigned
	sr.AssignedMechanic = &mechanicID
	return nil
}

type memoryUsers map[string]*domain.User

func (m memoryUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return u, nil
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) MechanicAssigned(ctx context.Context, sr *domain.ServiceRequest, mechanic *domain.User) notifications.Report {
	return m.Called(ctx, sr, mechanic).Get(0).(notifications.Report)
}

type counter struct{ assigned int }

func (c *counter) IncMechanicsAssigned() { c.assigned++ }

type fixture struct {
	requests *memoryRequests
	users    memoryUsers
	notifier *mockNotifier
	metrics  *counter
	uc       *UseCase
	admin    *domain.User
}

func newFixture() *fixture {
	f := &fixture{
		requests: &memoryRequests{records: map[string]*domain.ServiceRequest{
			"B1": {ID: "B1", ReferenceNumber: "REF-00000000B1", ClientID: "C1", Name: "Jane", Email: "jane@example.com", Status: domain.StatusPending},
		}},
		users: memoryUsers{
			"M1": {ID: "M1", Name: "Bob", Email: "bob@example.com", Phone: "+2", Role: domain.RoleMechanic},
			"C1": {ID: "C1", Name: "Jane", Role: domain.RoleClient},
		},
		notifier: &mockNotifier{},
		metrics:  &counter{},
		admin:    &domain.User{ID: "A1", Role: domain.RoleAdmin},
	}
	f.uc = NewUseCase(f.requests, f.users, f.notifier, f.metrics, logger.NewDiscard())
	return f
}

func TestExecute_AssignsAndNotifiesBothParties(t *testing.T) {
	f := newFixture()
	f.notifier.On("MechanicAssigned", mock.Anything,
		mock.MatchedBy(func(sr *domain.ServiceRequest) bool {
			return sr.ID == "B1" && sr.Status == domain.StatusAssigned && sr.AssignedMechanic != nil && *sr.AssignedMechanic == "M1"
		}),
		mock.MatchedBy(func(u *domain.User) bool { return u.ID == "M1" }),
	).Return(notifications.Report{Attempted: 2, Delivered: 2}).Once()

	err := f.uc.Execute(context.Background(), &Request{Principal: f.admin, BookingID: " B1 ", MechanicID: "M1"})
	require.NoError(t, err)

	stored := f.requests.records["B1"]
	assert.Equal(t, domain.StatusAssigned, stored.Status)
	require.NotNil(t, stored.AssignedMechanic)
	assert.Equal(t, "M1", *stored.AssignedMechanic)
	assert.True(t, stored.IsConsistent())
	assert.Equal(t, 1, f.metrics.assigned)

	// one call covers exactly one client and one mechanic notification
	f.notifier.AssertNumberOfCalls(t, "MechanicAssigned", 1)
	f.notifier.AssertExpectations(t)
}

func TestExecute_NotificationFailureKeepsAssignment(t *testing.T) {
	f := newFixture()
	f.notifier.On("MechanicAssigned", mock.Anything, mock.Anything, mock.Anything).
		Return(notifications.Report{Attempted: 2, Delivered: 1, Failures: []error{domain.ErrNotification}})

	err := f.uc.Execute(context.Background(), &Request{Principal: f.admin, BookingID: "B1", MechanicID: "M1"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAssigned, f.requests.records["B1"].Status)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     func(f *fixture) *Request
		prepare func(f *fixture)
		wantErr error
	}{
		{
			name:    "client principal",
			req:     func(f *fixture) *Request { return &Request{Principal: f.users["C1"], BookingID: "B1", MechanicID: "M1"} },
			wantErr: domain.ErrAuthorization,
		},
		{
			name:    "mechanic principal",
			req:     func(f *fixture) *Request { return &Request{Principal: f.users["M1"], BookingID: "B1", MechanicID: "M1"} },
			wantErr: ErrAccessDenied,
		},
		{
			name:    "missing booking selection",
			req:     func(f *fixture) *Request { return &Request{Principal: f.admin, BookingID: "  ", MechanicID: "M1"} },
			wantErr: ErrMissingSelection,
		},
		{
			name:    "missing mechanic selection",
			req:     func(f *fixture) *Request { return &Request{Principal: f.admin, BookingID: "B1"} },
			wantErr: ErrMissingSelection,
		},
		{
			name:    "unknown mechanic",
			req:     func(f *fixture) *Request { return &Request{Principal: f.admin, BookingID: "B1", MechanicID: "M9"} },
			wantErr: ErrMechanicNotFound,
		},
		{
			name:    "user is not a mechanic",
			req:     func(f *fixture) *Request { return &Request{Principal: f.admin, BookingID: "B1", MechanicID: "C1"} },
			wantErr: ErrNotAMechanic,
		},
		{
			name:    "unknown booking",
			req:     func(f *fixture) *Request { return &Request{Principal: f.admin, BookingID: "B9", MechanicID: "M1"} },
			wantErr: ErrBookingNotFound,
		},
		{
			name: "already assigned",
			req:  func(f *fixture) *Request { return &Request{Principal: f.admin, BookingID: "B1", MechanicID: "M1"} },
			prepare: func(f *fixture) {
				other := "M0"
				f.requests.records["B1"].Status = domain.StatusAssigned
				f.requests.records["B1"].AssignedMechanic = &other
			},
			wantErr: ErrAlreadyAssigned,
		},
		{
			name: "assigned concurrently",
			req:  func(f *fixture) *Request { return &Request{Principal: f.admin, BookingID: "B1", MechanicID: "M1"} },
			prepare: func(f *fixture) {
				f.requests.assignErr = fmt.Errorf("%w: lost race", domain.ErrConflict)
			},
			wantErr: ErrAlreadyAssigned,
		},
		{
			name: "store failure",
			req:  func(f *fixture) *Request { return &Request{Principal: f.admin, BookingID: "B1", MechanicID: "M1"} },
			prepare: func(f *fixture) {
				f.requests.assignErr = errors.New("connection reset")
			},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.prepare != nil {
				tt.prepare(f)
			}
			before := *f.requests.records["B1"]

			err := f.uc.Execute(context.Background(), tt.req(f))
			assert.ErrorIs(t, err, tt.wantErr)

			assert.Equal(t, before, *f.requests.records["B1"])
			assert.Equal(t, 0, f.metrics.assigned)
			f.notifier.AssertNotCalled(t, "MechanicAssigned", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_ValidationCodes(t *testing.T) {
	f := newFixture()

	err := f.uc.Execute(context.Background(), &Request{Principal: f.admin})
	code, ok := domain.ValidationCode(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeMissingSelection, code)

	err = f.uc.Execute(context.Background(), &Request{Principal: f.admin, BookingID: "B1", MechanicID: "C1"})
	code, ok = domain.ValidationCode(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeNotAMechanic, code)
}
