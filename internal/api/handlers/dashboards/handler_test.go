package dashboards

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/middleware"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/service/servicerequests"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/service/servicerequests/models"
	"github.com/Vonakala/Appointment-App-Service-Request/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) ListForClient(ctx context.Context, principal *domain.User) (*models.ClientDashboard, error) {
	args := m.Called(ctx, principal)
	resp, _ := args.Get(0).(*models.ClientDashboard)
	return resp, args.Error(1)
}

func (m *mockService) ListForMechanic(ctx context.Context, principal *domain.User) (*models.MechanicDashboard, error) {
	args := m.Called(ctx, principal)
	resp, _ := args.Get(0).(*models.MechanicDashboard)
	return resp, args.Error(1)
}

func (m *mockService) ListAllForAdmin(ctx context.Context, principal *domain.User) (*models.AdminDashboard, error) {
	args := m.Called(ctx, principal)
	resp, _ := args.Get(0).(*models.AdminDashboard)
	return resp, args.Error(1)
}

func serve(h *Handler, user *domain.User) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if user != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), user))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestClientHandler(t *testing.T) {
	client := &domain.User{ID: "C1", Role: domain.RoleClient}
	svc := &mockService{}
	svc.On("ListForClient", mock.Anything, client).Return(&models.ClientDashboard{
		Requests: []models.ClientServiceRequest{{
			ServiceRequestResponse: models.ServiceRequestResponse{ID: "B1", ReferenceNumber: "REF-0123456789"},
			AssignedMechanicName:   "Not assigned",
			AssignedMechanicPhone:  "-",
		}},
	}, nil)

	rec := serve(NewClientHandler(svc, logger.NewDiscard()), client)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reference_number":"REF-0123456789"`)
	assert.Contains(t, rec.Body.String(), `"assigned_mechanic_name":"Not assigned"`)
	svc.AssertNotCalled(t, "ListAllForAdmin", mock.Anything, mock.Anything)
}

func TestAdminHandler_AccessDenied(t *testing.T) {
	mechanic := &domain.User{ID: "M1", Role: domain.RoleMechanic}
	svc := &mockService{}
	svc.On("ListAllForAdmin", mock.Anything, mechanic).Return(nil, servicerequests.ErrAccessDenied)

	rec := serve(NewAdminHandler(svc, logger.NewDiscard()), mechanic)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Access denied"}`, rec.Body.String())
}

func TestMechanicHandler_StoreFailure(t *testing.T) {
	mechanic := &domain.User{ID: "M1", Role: domain.RoleMechanic}
	svc := &mockService{}
	svc.On("ListForMechanic", mock.Anything, mechanic).Return(nil, errors.New("connection reset"))

	rec := serve(NewMechanicHandler(svc, logger.NewDiscard()), mechanic)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestHandler_Anonymous(t *testing.T) {
	rec := serve(NewClientHandler(&mockService{}, logger.NewDiscard()), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
