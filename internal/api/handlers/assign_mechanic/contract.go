package assign_mechanic

import (
	"context"

	assignMechanic "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/assign_mechanic"
)

type AssignMechanicUseCase interface {
	Execute(ctx context.Context, req *assignMechanic.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
