package submit_booking

import (
	"context"
	"time"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/service/notifications"
)

// ServiceRequestRepository persists new service requests
type ServiceRequestRepository interface {
	Create(ctx context.Context, sr *domain.ServiceRequest) (*domain.ServiceRequest, error)
}

// Notifier best-effort booking notifications
type Notifier interface {
	BookingSubmitted(ctx context.Context, sr *domain.ServiceRequest) notifications.Report
}

// Metrics booking counters
type Metrics interface {
	IncServiceRequestsCreated()
}

// TimeProvider source of the current instant (replaced in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider wall clock
type RealTimeProvider struct{}

// Now returns time.Now()
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
