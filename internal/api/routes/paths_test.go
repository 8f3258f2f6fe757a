package routes

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/config"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

func TestGeneratePaths_Random(t *testing.T) {
	p, err := GeneratePaths(config.RoutesConfig{})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^/c[0-9a-f]{8}$`), p.ClientDashboard)
	assert.Regexp(t, regexp.MustCompile(`^/m[0-9a-f]{8}$`), p.MechanicDashboard)
	assert.Regexp(t, regexp.MustCompile(`^/a[0-9a-f]{8}$`), p.AdminDashboard)
	assert.Regexp(t, regexp.MustCompile(`^/n[0-9a-f]{8}$`), p.NewMechanic)
	assert.Regexp(t, regexp.MustCompile(`^/as[0-9a-f]{8}$`), p.AssignMechanic)

	other, err := GeneratePaths(config.RoutesConfig{})
	require.NoError(t, err)
	assert.NotEqual(t, p, other)
}

func TestGeneratePaths_Pinned(t *testing.T) {
	p, err := GeneratePaths(config.RoutesConfig{
		ClientDashboard: "client",
		AdminDashboard:  "/admin ",
	})
	require.NoError(t, err)

	assert.Equal(t, "/client", p.ClientDashboard)
	assert.Equal(t, "/admin", p.AdminDashboard)
	assert.Regexp(t, `^/m[0-9a-f]{8}$`, p.MechanicDashboard)
}

func TestGeneratePaths_Duplicate(t *testing.T) {
	_, err := GeneratePaths(config.RoutesConfig{
		AdminDashboard: "/panel",
		NewMechanic:    "panel",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/panel")
}

func TestGeneratePaths_FixedRouteCollision(t *testing.T) {
	tests := []struct {
		name     string
		pinned   config.RoutesConfig
		reserved []string
	}{
		{"login", config.RoutesConfig{AdminDashboard: "/login"}, nil},
		{"book service without slash", config.RoutesConfig{ClientDashboard: "book_service"}, nil},
		{"process requests", config.RoutesConfig{AssignMechanic: "/process_requests"}, nil},
		{"metrics path", config.RoutesConfig{MechanicDashboard: "/metrics"}, []string{"/metrics"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GeneratePaths(tt.pinned, tt.reserved...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "collides")
		})
	}
}

func TestGeneratePaths_MetricsPathFreeWhenNotReserved(t *testing.T) {
	p, err := GeneratePaths(config.RoutesConfig{MechanicDashboard: "/metrics"}, "")
	require.NoError(t, err)
	assert.Equal(t, "/metrics", p.MechanicDashboard)
}

func TestDashboardFor(t *testing.T) {
	p := Paths{ClientDashboard: "/c1", MechanicDashboard: "/m1", AdminDashboard: "/a1"}

	for role, want := range map[domain.Role]string{
		domain.RoleClient:   "/c1",
		domain.RoleMechanic: "/m1",
		domain.RoleAdmin:    "/a1",
	} {
		got, ok := p.DashboardFor(role)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := p.DashboardFor(domain.Role("guest"))
	assert.False(t, ok)
}
