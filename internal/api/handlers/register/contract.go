package register

import (
	"context"

	provisionAccount "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/provision_account"
)

type RegisterUseCase interface {
	Register(ctx context.Context, req *provisionAccount.RegisterRequest) (*provisionAccount.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
