package servicerequests

import (
	"context"
	"fmt"
	"slices"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/service/servicerequests/models"
)

// Service role-gated retrieval of service requests for the three dashboards
type Service struct {
	requestRepo ServiceRequestRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService creates the retrieval service
func NewService(requestRepo ServiceRequestRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// ListForClient returns the principal's own requests, newest first.
// Each entry carries the assigned mechanic's name and phone, or placeholders while unassigned.
func (s *Service) ListForClient(ctx context.Context, principal *domain.User) (*models.ClientDashboard, error) {
	if err := s.checkRole("ListForClient", principal, domain.RoleClient); err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.ListByClientID(ctx, principal.ID)
	if err != nil {
		s.logger.Error("ListForClient: repository error for client=%s: %v", principal.ID, err)
		return nil, fmt.Errorf("%w: ListForClient - list requests: %v", ErrInternal, err)
	}
	sortNewestFirst(requests)

	// full users scan, as many requests may share the same mechanic
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListForClient: failed to load users: %v", err)
		return nil, fmt.Errorf("%w: ListForClient - load users: %v", ErrInternal, err)
	}
	byID := make(map[string]*domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	result := &models.ClientDashboard{Requests: make([]models.ClientServiceRequest, 0, len(requests))}
	for _, sr := range requests {
		item := models.ClientServiceRequest{
			ServiceRequestResponse: models.FromDomainServiceRequest(sr),
			AssignedMechanicName:   domain.NotAssignedName,
			AssignedMechanicPhone:  domain.NotAssignedPhone,
		}
		if sr.AssignedMechanic != nil {
			if mechanic, ok := byID[*sr.AssignedMechanic]; ok {
				item.AssignedMechanicName = mechanic.FullName()
				item.AssignedMechanicPhone = mechanic.Phone
			} else {
				s.logger.Warn("ListForClient: assigned mechanic=%s of ref=%s not found", *sr.AssignedMechanic, sr.ReferenceNumber)
			}
		}
		result.Requests = append(result.Requests, item)
	}

	s.logger.Info("ListForClient: client=%s requests=%d", principal.ID, len(result.Requests))
	return result, nil
}

// ListForMechanic returns the requests assigned to the principal, newest first
func (s *Service) ListForMechanic(ctx context.Context, principal *domain.User) (*models.MechanicDashboard, error) {
	if err := s.checkRole("ListForMechanic", principal, domain.RoleMechanic); err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.ListByMechanicID(ctx, principal.ID)
	if err != nil {
		s.logger.Error("ListForMechanic: repository error for mechanic=%s: %v", principal.ID, err)
		return nil, fmt.Errorf("%w: ListForMechanic - list requests: %v", ErrInternal, err)
	}
	sortNewestFirst(requests)

	s.logger.Info("ListForMechanic: mechanic=%s requests=%d", principal.ID, len(requests))
	return &models.MechanicDashboard{Requests: models.FromDomainServiceRequests(requests)}, nil
}

// ListAllForAdmin returns every request, newest first, and all mechanics
func (s *Service) ListAllForAdmin(ctx context.Context, principal *domain.User) (*models.AdminDashboard, error) {
	if err := s.checkRole("ListAllForAdmin", principal, domain.RoleAdmin); err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAllForAdmin: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAllForAdmin - list requests: %v", ErrInternal, err)
	}
	sortNewestFirst(requests)

	mechanics, err := s.userRepo.GetByRole(ctx, domain.RoleMechanic)
	if err != nil {
		s.logger.Error("ListAllForAdmin: failed to load mechanics: %v", err)
		return nil, fmt.Errorf("%w: ListAllForAdmin - load mechanics: %v", ErrInternal, err)
	}

	result := &models.AdminDashboard{
		Requests:  models.FromDomainServiceRequests(requests),
		Mechanics: make([]models.MechanicResponse, 0, len(mechanics)),
	}
	for _, m := range mechanics {
		result.Mechanics = append(result.Mechanics, models.FromDomainMechanic(m))
	}

	s.logger.Info("ListAllForAdmin: requests=%d mechanics=%d", len(result.Requests), len(result.Mechanics))
	return result, nil
}

func (s *Service) checkRole(method string, principal *domain.User, role domain.Role) error {
	if !principal.HasRole(role) {
		if principal == nil {
			s.logger.Warn("%s: anonymous principal, %s required", method, role)
		} else {
			s.logger.Warn("%s: user=%s has role=%s, %s required", method, principal.ID, principal.Role, role)
		}
		return ErrAccessDenied
	}
	return nil
}

// sortNewestFirst orders by creation time, descending
func sortNewestFirst(list []*domain.ServiceRequest) {
	slices.SortStableFunc(list, func(a, b *domain.ServiceRequest) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
}
