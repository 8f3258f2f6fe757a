package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

const tracerName = "usecase/submit_booking"

// maxReferenceAttempts bounds regeneration after a reference number collision
const maxReferenceAttempts = 3

// UseCase books a service on behalf of a client
type UseCase struct {
	requestRepo  ServiceRequestRepository
	notifier     Notifier
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	newReference func() (string, error)
	logger       Logger
}

// NewUseCase creates the use case. Service date and time are interpreted in loc.
func NewUseCase(
	requestRepo ServiceRequestRepository,
	notifier Notifier,
	metrics Metrics,
	loc *time.Location,
	logger Logger,
) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{
		requestRepo:  requestRepo,
		notifier:     notifier,
		metrics:      metrics,
		location:     loc,
		timeProvider: &RealTimeProvider{},
		newReference: generateReference,
		logger:       logger,
	}
}

// Execute validates the form, persists a pending request and notifies admins and the client.
// Notification failures never fail the booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "SubmitBooking")
	defer span.End()

	// 1. Only clients may book
	if !req.Principal.HasRole(domain.RoleClient) {
		uc.logger.Warn("SubmitBooking: access denied for principal=%s", principalID(req.Principal))
		span.SetStatus(codes.Error, "access denied")
		return nil, ErrAccessDenied
	}
	span.SetAttributes(attribute.String("client.id", req.Principal.ID))

	uc.logger.Info("SubmitBooking: client=%s, category=%q, date=%s, time=%s",
		req.Principal.ID, req.Category, req.ServiceDate, req.ServiceTime)

	// 2. All fields are required
	normalize(req)
	if err := validateRequired(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Date and time must form a valid timestamp
	serviceAt, err := parseServiceDateTime(req.ServiceDate, req.ServiceTime, uc.location)
	if err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 4. The slot must not be in the past
	now := uc.timeProvider.Now()
	if err := validateNotPast(serviceAt, now); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 5. Persist the pending request with a snapshot of the client's contact details
	sr := &domain.ServiceRequest{
		ClientID:        req.Principal.ID,
		Name:            req.Principal.Name,
		Surname:         req.Principal.Surname,
		Phone:           req.Principal.Phone,
		Email:           req.Principal.Email,
		Address:         req.Address,
		Vehicle:         req.Vehicle,
		MakeModel:       req.MakeModel,
		Category:        req.Category,
		ServiceDateTime: serviceAt,
		Description:     req.Description,
		Status:          domain.StatusPending,
		Timestamp:       now,
	}

	created, err := uc.create(ctx, sr)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, err
	}
	span.SetAttributes(attribute.String("service_request.reference", created.ReferenceNumber))

	if uc.metrics != nil {
		uc.metrics.IncServiceRequestsCreated()
	}
	uc.logger.Info("SubmitBooking: created id=%s ref=%s", created.ID, created.ReferenceNumber)

	// 6. Notify administrators and the client
	report := uc.notifier.BookingSubmitted(ctx, created)
	if len(report.Failures) > 0 {
		uc.logger.Warn("SubmitBooking: ref=%s, %d of %d notifications failed",
			created.ReferenceNumber, len(report.Failures), report.Attempted)
	}

	return &Response{
		ID:              created.ID,
		ReferenceNumber: created.ReferenceNumber,
	}, nil
}

// create stores sr under a fresh reference number, regenerating it on the rare unique-key collision
func (uc *UseCase) create(ctx context.Context, sr *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	var lastErr error
	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		ref, err := uc.newReference()
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to generate reference: %v", err)
			return nil, fmt.Errorf("%w: generate reference: %v", ErrInternal, err)
		}
		sr.ReferenceNumber = ref

		created, err := uc.requestRepo.Create(ctx, sr)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			uc.logger.Error("SubmitBooking: failed to create service request: %v", err)
			return nil, fmt.Errorf("%w: create service request: %v", ErrInternal, err)
		}

		uc.logger.Warn("SubmitBooking: reference %s already taken, attempt %d", ref, attempt)
		lastErr = err
	}
	return nil, fmt.Errorf("%w: create service request: %v", ErrInternal, lastErr)
}

func principalID(u *domain.User) string {
	if u == nil {
		return "<anonymous>"
	}
	return u.ID
}
