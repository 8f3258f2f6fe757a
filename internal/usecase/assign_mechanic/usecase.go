package assign_mechanic

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

const tracerName = "usecase/assign_mechanic"

// UseCase assigns a mechanic to a pending service request
type UseCase struct {
	requestRepo ServiceRequestRepository
	userRepo    UserRepository
	notifier    Notifier
	metrics     Metrics
	logger      Logger
}

// NewUseCase creates the use case
func NewUseCase(
	requestRepo ServiceRequestRepository,
	userRepo UserRepository,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute moves the booking from pending to assigned and notifies the client and the mechanic.
// The transition is one-way: an assigned booking is never reassigned.
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "AssignMechanic")
	defer span.End()

	// 1. Only admins may assign
	if !req.Principal.HasRole(domain.RoleAdmin) {
		uc.logger.Warn("AssignMechanic: access denied for non-admin principal")
		span.SetStatus(codes.Error, "access denied")
		return ErrAccessDenied
	}

	// 2. Both selections are required
	if err := validateSelection(req); err != nil {
		uc.logger.Warn("AssignMechanic: validation failed: %v", err)
		return err
	}
	span.SetAttributes(
		attribute.String("service_request.id", req.BookingID),
		attribute.String("mechanic.id", req.MechanicID),
	)
	uc.logger.Info("AssignMechanic: admin=%s, booking=%s, mechanic=%s", req.Principal.ID, req.BookingID, req.MechanicID)

	// 3. The mechanic must exist and hold the mechanic role
	mechanic, err := uc.userRepo.GetByID(ctx, req.MechanicID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.Warn("AssignMechanic: mechanic=%s not found", req.MechanicID)
			return ErrMechanicNotFound
		}
		uc.logger.Error("AssignMechanic: failed to get mechanic=%s: %v", req.MechanicID, err)
		return fmt.Errorf("%w: get mechanic: %v", ErrInternal, err)
	}
	if !mechanic.HasRole(domain.RoleMechanic) {
		uc.logger.Warn("AssignMechanic: user=%s has role=%s", mechanic.ID, mechanic.Role)
		return fmt.Errorf("%w: user %s has role %s", ErrNotAMechanic, mechanic.ID, mechanic.Role)
	}

	// 4. The booking must exist and still be pending
	booking, err := uc.requestRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.Warn("AssignMechanic: booking=%s not found", req.BookingID)
			return ErrBookingNotFound
		}
		uc.logger.Error("AssignMechanic: failed to get booking=%s: %v", req.BookingID, err)
		return fmt.Errorf("%w: get booking: %v", ErrInternal, err)
	}
	if !booking.CanBeAssigned() {
		uc.logger.Warn("AssignMechanic: booking=%s already assigned", req.BookingID)
		return ErrAlreadyAssigned
	}

	// 5. Conditional update: only a pending booking can change
	if err := uc.requestRepo.AssignMechanic(ctx, req.BookingID, req.MechanicID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			uc.logger.Warn("AssignMechanic: booking=%s disappeared before update", req.BookingID)
			return ErrBookingNotFound
		case errors.Is(err, domain.ErrConflict):
			uc.logger.Warn("AssignMechanic: booking=%s assigned concurrently", req.BookingID)
			return ErrAlreadyAssigned
		default:
			uc.logger.Error("AssignMechanic: failed to update booking=%s: %v", req.BookingID, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "update failed")
			return fmt.Errorf("%w: assign: %v", ErrInternal, err)
		}
	}
	if uc.metrics != nil {
		uc.metrics.IncMechanicsAssigned()
	}
	uc.logger.Info("AssignMechanic: booking=%s ref=%s assigned to mechanic=%s", booking.ID, booking.ReferenceNumber, mechanic.ID)

	// 6. Re-read the booking to compose notifications from the stored state
	updated, err := uc.requestRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		uc.logger.Warn("AssignMechanic: re-read of booking=%s failed, using local copy: %v", req.BookingID, err)
		updated = booking
		updated.Status = domain.StatusAssigned
		updated.AssignedMechanic = &mechanic.ID
	}

	// 7. Notify client and mechanic independently
	report := uc.notifier.MechanicAssigned(ctx, updated, mechanic)
	if len(report.Failures) > 0 {
		uc.logger.Warn("AssignMechanic: ref=%s, %d of %d notifications failed",
			updated.ReferenceNumber, len(report.Failures), report.Attempted)
	}

	return nil
}
