package models

import (
	"time"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// ServiceRequestResponse service request as shown on a dashboard
type ServiceRequestResponse struct {
	ID               string    `json:"id"`
	ReferenceNumber  string    `json:"reference_number"`
	ClientID         string    `json:"client_id"`
	Name             string    `json:"name"`
	Surname          string    `json:"surname"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	Address          string    `json:"address"`
	Vehicle          string    `json:"vehicle"`
	MakeModel        string    `json:"make_model"`
	Category         string    `json:"category"`
	ServiceDateTime  string    `json:"service_datetime"` // "2006-01-02 15:04"
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	AssignedMechanic *string   `json:"assigned_mechanic"`
	Timestamp        time.Time `json:"timestamp"`
}

// ClientServiceRequest service request enriched with the assigned mechanic's contact
type ClientServiceRequest struct {
	ServiceRequestResponse
	AssignedMechanicName  string `json:"assigned_mechanic_name"`
	AssignedMechanicPhone string `json:"assigned_mechanic_phone"`
}

// MechanicResponse mechanic entry of the admin dashboard
type MechanicResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// ClientDashboard requests of one client
type ClientDashboard struct {
	Requests []ClientServiceRequest `json:"requests"`
}

// MechanicDashboard requests assigned to one mechanic
type MechanicDashboard struct {
	Requests []ServiceRequestResponse `json:"requests"`
}

// AdminDashboard every request plus the mechanics available for assignment
type AdminDashboard struct {
	Requests  []ServiceRequestResponse `json:"requests"`
	Mechanics []MechanicResponse       `json:"mechanics"`
}

// FromDomainServiceRequest converts the domain record into its DTO
func FromDomainServiceRequest(sr *domain.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:               sr.ID,
		ReferenceNumber:  sr.ReferenceNumber,
		ClientID:         sr.ClientID,
		Name:             sr.Name,
		Surname:          sr.Surname,
		Phone:            sr.Phone,
		Email:            sr.Email,
		Address:          sr.Address,
		Vehicle:          sr.Vehicle,
		MakeModel:        sr.MakeModel,
		Category:         sr.Category,
		ServiceDateTime:  sr.ServiceDateTimeString(),
		Description:      sr.Description,
		Status:           string(sr.Status),
		AssignedMechanic: sr.AssignedMechanic,
		Timestamp:        sr.Timestamp,
	}
}

// FromDomainServiceRequests converts a list, keeping order
func FromDomainServiceRequests(list []*domain.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(list))
	for _, sr := range list {
		out = append(out, FromDomainServiceRequest(sr))
	}
	return out
}

// FromDomainMechanic converts a mechanic user
func FromDomainMechanic(u *domain.User) MechanicResponse {
	return MechanicResponse{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Phone:   u.Phone,
	}
}
