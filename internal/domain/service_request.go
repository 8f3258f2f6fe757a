package domain

import "time"

// ServiceRequestStatus represents the status of a service request
type ServiceRequestStatus string

const (
	StatusPending  ServiceRequestStatus = "pending"
	StatusAssigned ServiceRequestStatus = "assigned"
)

// ServiceRequest represents a client's request for vehicle service.
// Name, Surname, Phone and Email are a snapshot of the client taken at creation time.
type ServiceRequest struct {
	ID               string
	ReferenceNumber  string
	ClientID         string
	Name             string
	Surname          string
	Phone            string
	Email            string
	Address          string
	Vehicle          string
	MakeModel        string
	Category         string
	ServiceDateTime  time.Time
	Description      string
	Status           ServiceRequestStatus
	AssignedMechanic *string
	Timestamp        time.Time
}

// IsAssigned returns true if a mechanic has been assigned
func (s *ServiceRequest) IsAssigned() bool {
	return s.AssignedMechanic != nil
}

// CanBeAssigned returns true while the request is still waiting for a mechanic
func (s *ServiceRequest) CanBeAssigned() bool {
	return s.Status == StatusPending && s.AssignedMechanic == nil
}

// IsConsistent checks that status and assigned mechanic agree
func (s *ServiceRequest) IsConsistent() bool {
	switch s.Status {
	case StatusPending:
		return s.AssignedMechanic == nil
	case StatusAssigned:
		return s.AssignedMechanic != nil && *s.AssignedMechanic != ""
	default:
		return false
	}
}

// ServiceDateTimeString formats the service date the way it was entered
func (s *ServiceRequest) ServiceDateTimeString() string {
	return s.ServiceDateTime.Format(DateTimeFormat)
}

// ClientFullName returns the snapshot "name surname" of the client
func (s *ServiceRequest) ClientFullName() string {
	return s.Name + " " + s.Surname
}
