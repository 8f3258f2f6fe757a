package routes

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/config"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// Hidden path prefixes; a random 8-hex-char suffix is appended at startup
const (
	clientDashboardPrefix   = "/c"
	mechanicDashboardPrefix = "/m"
	adminDashboardPrefix    = "/a"
	newMechanicPrefix       = "/n"
	assignMechanicPrefix    = "/as"

	suffixBytes = 4
)

// Fixed public and role-gated paths
const (
	PathHealth          = "/health"
	PathRegister        = "/register"
	PathLogin           = "/login"
	PathLogout          = "/logout"
	PathBookService     = "/book_service"
	PathProcessRequests = "/process_requests"
)

var fixedPaths = []string{PathHealth, PathRegister, PathLogin, PathLogout, PathBookService, PathProcessRequests}

// Paths hidden per-process dashboard paths. Obscurity only; every route is still role-gated.
type Paths struct {
	ClientDashboard   string
	MechanicDashboard string
	AdminDashboard    string
	NewMechanic       string
	AssignMechanic    string
}

// GeneratePaths builds the path set, keeping every value pinned in cfg.
// A hidden path may not collide with a fixed route or with any of reserved (e.g. the metrics path).
func GeneratePaths(pinned config.RoutesConfig, reserved ...string) (Paths, error) {
	var p Paths
	var err error

	entries := []struct {
		dst    *string
		pinned string
		prefix string
	}{
		{&p.ClientDashboard, pinned.ClientDashboard, clientDashboardPrefix},
		{&p.MechanicDashboard, pinned.MechanicDashboard, mechanicDashboardPrefix},
		{&p.AdminDashboard, pinned.AdminDashboard, adminDashboardPrefix},
		{&p.NewMechanic, pinned.NewMechanic, newMechanicPrefix},
		{&p.AssignMechanic, pinned.AssignMechanic, assignMechanicPrefix},
	}

	taken := make(map[string]struct{}, len(fixedPaths)+len(reserved))
	for _, path := range slices.Concat(fixedPaths, reserved) {
		if path != "" {
			taken[path] = struct{}{}
		}
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if v := strings.TrimSpace(e.pinned); v != "" {
			*e.dst = "/" + strings.TrimLeft(v, "/")
		} else if *e.dst, err = randomPath(e.prefix); err != nil {
			return Paths{}, err
		}
		if _, dup := seen[*e.dst]; dup {
			return Paths{}, fmt.Errorf("routes: duplicate hidden path %q", *e.dst)
		}
		if _, clash := taken[*e.dst]; clash {
			return Paths{}, fmt.Errorf("routes: hidden path %q collides with a fixed route", *e.dst)
		}
		seen[*e.dst] = struct{}{}
	}

	return p, nil
}

// DashboardFor returns the landing page of role
func (p Paths) DashboardFor(role domain.Role) (string, bool) {
	switch role {
	case domain.RoleClient:
		return p.ClientDashboard, true
	case domain.RoleMechanic:
		return p.MechanicDashboard, true
	case domain.RoleAdmin:
		return p.AdminDashboard, true
	default:
		return "", false
	}
}

func randomPath(prefix string) (string, error) {
	buf := make([]byte, suffixBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("routes: generate path: %w", err)
	}
	return prefix + hex.EncodeToString(buf), nil
}
