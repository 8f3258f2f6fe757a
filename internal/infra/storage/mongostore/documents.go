package mongostore

import (
	"fmt"
	"time"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

type userDocument struct {
	ID      string `bson:"_id"`
	Name    string `bson:"name"`
	Surname string `bson:"surname"`
	Gender  string `bson:"gender,omitempty"`
	Email   string `bson:"email"`
	Phone   string `bson:"phone"`
	Role    string `bson:"role"`
}

func toUserDocument(u *domain.User) userDocument {
	return userDocument{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Gender:  u.Gender,
		Email:   u.Email,
		Phone:   u.Phone,
		Role:    string(u.Role),
	}
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:      d.ID,
		Name:    d.Name,
		Surname: d.Surname,
		Gender:  d.Gender,
		Email:   d.Email,
		Phone:   d.Phone,
		Role:    domain.Role(d.Role),
	}
}

// serviceRequestDocument keeps service_datetime as the entered "YYYY-MM-DD HH:MM" string
type serviceRequestDocument struct {
	ID               string    `bson:"_id"`
	ReferenceNumber  string    `bson:"reference_number"`
	ClientID         string    `bson:"client_id"`
	Name             string    `bson:"name"`
	Surname          string    `bson:"surname"`
	Phone            string    `bson:"phone"`
	Email            string    `bson:"email"`
	Address          string    `bson:"address"`
	Vehicle          string    `bson:"vehicle"`
	MakeModel        string    `bson:"make_model"`
	Category         string    `bson:"category"`
	ServiceDateTime  string    `bson:"service_datetime"`
	Description      string    `bson:"description"`
	Status           string    `bson:"status"`
	AssignedMechanic *string   `bson:"assigned_mechanic"`
	Timestamp        time.Time `bson:"timestamp"`
}

func toServiceRequestDocument(sr *domain.ServiceRequest) serviceRequestDocument {
	return serviceRequestDocument{
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
		Timestamp:        sr.Timestamp.UTC(),
	}
}

func (d serviceRequestDocument) toDomain() (*domain.ServiceRequest, error) {
	serviceDateTime, err := time.Parse(domain.DateTimeFormat, d.ServiceDateTime)
	if err != nil {
		return nil, fmt.Errorf("%w: service_datetime %q: %v", ErrDecode, d.ServiceDateTime, err)
	}

	return &domain.ServiceRequest{
		ID:               d.ID,
		ReferenceNumber:  d.ReferenceNumber,
		ClientID:         d.ClientID,
		Name:             d.Name,
		Surname:          d.Surname,
		Phone:            d.Phone,
		Email:            d.Email,
		Address:          d.Address,
		Vehicle:          d.Vehicle,
		MakeModel:        d.MakeModel,
		Category:         d.Category,
		ServiceDateTime:  serviceDateTime,
		Description:      d.Description,
		Status:           domain.ServiceRequestStatus(d.Status),
		AssignedMechanic: d.AssignedMechanic,
		Timestamp:        d.Timestamp,
	}, nil
}

type credentialDocument struct {
	AccountID    string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}
