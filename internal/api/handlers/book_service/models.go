package book_service

import (
	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	submitBooking "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/submit_booking"
)

// BookServiceRequest HTTP request model
type BookServiceRequest struct {
	Address     string `json:"address"`
	Vehicle     string `json:"vehicle"`
	MakeModel   string `json:"make_model"`
	Category    string `json:"category"`
	ServiceDate string `json:"service_date"` // "2025-10-15"
	ServiceTime string `json:"service_time"` // "10:00"
	Description string `json:"description"`
}

// BookServiceResponse HTTP response model
type BookServiceResponse struct {
	Message         string `json:"message"`
	ID              string `json:"id"`
	ReferenceNumber string `json:"reference_number"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *BookServiceRequest) ToUseCaseRequest(principal *domain.User) *submitBooking.Request {
	return &submitBooking.Request{
		Principal:   principal,
		Address:     r.Address,
		Vehicle:     r.Vehicle,
		MakeModel:   r.MakeModel,
		Category:    r.Category,
		ServiceDate: r.ServiceDate,
		ServiceTime: r.ServiceTime,
		Description: r.Description,
	}
}
