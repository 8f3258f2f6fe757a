package assign_mechanic

import "github.com/Vonakala/Appointment-App-Service-Request/internal/domain"

// Request assignment selected on the admin dashboard
type Request struct {
	Principal  *domain.User
	BookingID  string
	MechanicID string
}
