package new_mechanic

import (
	"context"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	provisionAccount "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/provision_account"
)

type CreateMechanicUseCase interface {
	CreateMechanic(ctx context.Context, principal *domain.User, req *provisionAccount.AccountRequest) (*provisionAccount.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
