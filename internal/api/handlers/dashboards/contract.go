package dashboards

import (
	"context"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/service/servicerequests/models"
)

type ServiceRequestService interface {
	ListForClient(ctx context.Context, principal *domain.User) (*models.ClientDashboard, error)
	ListForMechanic(ctx context.Context, principal *domain.User) (*models.MechanicDashboard, error)
	ListAllForAdmin(ctx context.Context, principal *domain.User) (*models.AdminDashboard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
