package process_requests

import (
	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	processRequests "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/process_requests"
)

type ProcessRequestsUseCase interface {
	Execute(principal *domain.User) (*processRequests.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
