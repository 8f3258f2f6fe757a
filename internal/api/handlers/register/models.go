package register

import (
	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	provisionAccount "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/provision_account"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Gender          string `json:"gender"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role,omitempty"`
}

// RegisterResponse HTTP response model
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *RegisterRequest) ToUseCaseRequest() *provisionAccount.RegisterRequest {
	return &provisionAccount.RegisterRequest{
		Name:            r.Name,
		Surname:         r.Surname,
		Gender:          r.Gender,
		Email:           r.Email,
		Phone:           r.Phone,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		Role:            domain.Role(r.Role),
	}
}
