package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/identity"
	"github.com/Vonakala/Appointment-App-Service-Request/pkg/logger"
)

const cookieName = "session"

type users map[string]*domain.User

func (u users) GetByID(_ context.Context, id string) (*domain.User, error) {
	if user, ok := u[id]; ok {
		return user, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUser(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	_, _ = w.Write([]byte(user.ID))
}

func TestAuth(t *testing.T) {
	issuer := identity.NewTokenIssuer("test-secret", time.Hour)
	store := users{
		"C1": {ID: "C1", Role: domain.RoleClient},
	}
	auth := NewAuth(issuer, store, cookieName, logger.NewDiscard())
	handler := auth.Middleware(http.HandlerFunc(echoUser))

	validToken, _, err := issuer.Issue(store["C1"])
	require.NoError(t, err)
	ghostToken, _, err := issuer.Issue(&domain.User{ID: "GONE", Role: domain.RoleClient})
	require.NoError(t, err)
	foreignToken, _, err := identity.NewTokenIssuer("other-secret", time.Hour).Issue(store["C1"])
	require.NoError(t, err)

	tests := []struct {
		name     string
		prepare  func(r *http.Request)
		wantCode int
		wantBody string
	}{
		{"no credentials", func(*http.Request) {}, http.StatusUnauthorized, ""},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: cookieName, Value: validToken}) }, http.StatusOK, "C1"},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+validToken) }, http.StatusOK, "C1"},
		{"lowercase bearer", func(r *http.Request) { r.Header.Set("Authorization", "bearer "+validToken) }, http.StatusOK, "C1"},
		{"wrong signature", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+foreignToken) }, http.StatusUnauthorized, ""},
		{"deleted user", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+ghostToken) }, http.StatusUnauthorized, ""},
		{"basic auth ignored", func(r *http.Request) { r.SetBasicAuth("u", "p") }, http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/c12345678", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole(domain.RoleAdmin)(http.HandlerFunc(echoUser))

	tests := []struct {
		name     string
		user     *domain.User
		wantCode int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"client", &domain.User{ID: "C1", Role: domain.RoleClient}, http.StatusForbidden},
		{"mechanic", &domain.User{ID: "M1", Role: domain.RoleMechanic}, http.StatusForbidden},
		{"admin", &domain.User{ID: "A1", Role: domain.RoleAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.user != nil {
				req = req.WithContext(WithUser(req.Context(), tt.user))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

type observed struct {
	method string
	route  string
	status int
}

type recordingMetrics struct{ calls []observed }

func (m *recordingMetrics) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	m.calls = append(m.calls, observed{method, route, status})
}

func TestMetricsMiddleware(t *testing.T) {
	m := &recordingMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/a1b2c3d4e", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}).Name("admin_dashboard")
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {})

	for _, path := range []string{"/a1b2c3d4e", "/health"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, m.calls, 2)
	assert.Equal(t, observed{http.MethodGet, "admin_dashboard", http.StatusForbidden}, m.calls[0])
	assert.Equal(t, observed{http.MethodGet, "/health", http.StatusOK}, m.calls[1])
}
