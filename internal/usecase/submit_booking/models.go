package submit_booking

import "github.com/Vonakala/Appointment-App-Service-Request/internal/domain"

// Request booking form submitted by a client
type Request struct {
	Principal   *domain.User // authenticated caller
	Address     string
	Vehicle     string
	MakeModel   string
	Category    string
	ServiceDate string // "2006-01-02"
	ServiceTime string // "15:04"
	Description string
}

// Response created booking
type Response struct {
	ID              string
	ReferenceNumber string
}
