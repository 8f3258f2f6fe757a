package process_requests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/middleware"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	processRequests "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/process_requests"
	"github.com/Vonakala/Appointment-App-Service-Request/pkg/logger"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(principal *domain.User) (*processRequests.Response, error) {
	args := m.Called(principal)
	resp, _ := args.Get(0).(*processRequests.Response)
	return resp, args.Error(1)
}

func TestHandle(t *testing.T) {
	admin := &domain.User{ID: "A1", Role: domain.RoleAdmin}

	tests := []struct {
		name       string
		resp       *processRequests.Response
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "processed",
			resp:       &processRequests.Response{Processed: 6, Preview: []string{"a", "b", "c", "d", "e"}, Remaining: 1},
			wantStatus: http.StatusOK,
			wantBody: `{"message":"Processed 6 client requests successfully!","processed":6,` +
				`"preview":["a","b","c","d","e"],"remaining":1}`,
		},
		{
			name:       "empty inbox",
			err:        processRequests.ErrNothingToProcess,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"No requests to process.","processed":0,"preview":[],"remaining":0}`,
		},
		{
			name:       "no inbox file",
			err:        processRequests.ErrInboxNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"No client requests file found."}`,
		},
		{
			name:       "not admin",
			err:        processRequests.ErrAccessDenied,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":"Access denied"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", admin).Return(tt.resp, tt.err).Once()

			req := httptest.NewRequest(http.MethodPost, "/process_requests", nil)
			req = req.WithContext(middleware.WithUser(req.Context(), admin))
			rec := httptest.NewRecorder()

			NewHandler(uc, logger.NewDiscard()).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			uc.AssertExpectations(t)
		})
	}
}
