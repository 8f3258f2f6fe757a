package domain

import "strings"

// Role determines which operations a principal may invoke
type Role string

const (
	RoleClient   Role = "client"
	RoleMechanic Role = "mechanic"
	RoleAdmin    Role = "admin"
)

// IsValid returns true if the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleMechanic, RoleAdmin:
		return true
	default:
		return false
	}
}

// User represents an account holder. ID is assigned by the identity gateway and never changes.
type User struct {
	ID      string
	Name    string
	Surname string
	Gender  string // collected at self-registration only
	Email   string
	Phone   string
	Role    Role
}

// HasRole returns true if the user is non-nil and holds the given role
func (u *User) HasRole(role Role) bool {
	return u != nil && u.Role == role
}

// FullName returns "name surname"
func (u *User) FullName() string {
	return strings.TrimSpace(u.Name + " " + u.Surname)
}
