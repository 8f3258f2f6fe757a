package new_mechanic

import provisionAccount "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/provision_account"

// NewMechanicRequest HTTP request model
type NewMechanicRequest struct {
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// NewMechanicResponse HTTP response model
type NewMechanicResponse struct {
	Message    string `json:"message"`
	MechanicID string `json:"mechanic_id"`
}

func (r *NewMechanicRequest) ToUseCaseRequest() *provisionAccount.AccountRequest {
	return &provisionAccount.AccountRequest{
		Name:            r.Name,
		Surname:         r.Surname,
		Email:           r.Email,
		Phone:           r.Phone,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}
