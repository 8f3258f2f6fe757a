package notifications

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// Service composes notifications and delivers them best-effort.
// Every (recipient, channel) pair is attempted independently; failures are logged,
// counted and reported, never returned as errors.
type Service struct {
	email   EmailSender
	sms     SMSSender
	admins  []Recipient
	metrics Metrics
	logger  Logger
}

// NewService creates the notification service. A nil sender disables its channel.
func NewService(email EmailSender, sms SMSSender, admins []Recipient, metrics Metrics, logger Logger) *Service {
	return &Service{
		email:   email,
		sms:     sms,
		admins:  admins,
		metrics: metrics,
		logger:  logger,
	}
}

// BookingSubmitted notifies every configured administrator and the submitting client
func (s *Service) BookingSubmitted(ctx context.Context, sr *domain.ServiceRequest) Report {
	var report Report

	adminMsg := adminBookingMessage(sr)
	for _, admin := range s.admins {
		if strings.TrimSpace(admin.Email) == "" || strings.TrimSpace(admin.Phone) == "" {
			s.logger.Warn("BookingSubmitted: admin contact incomplete, skipping email=%q phone=%q", admin.Email, admin.Phone)
			continue
		}
		report.merge(s.deliver(ctx, "admin", admin, adminMsg))
	}

	client := Recipient{Email: sr.Email, Phone: sr.Phone}
	report.merge(s.deliver(ctx, "client", client, clientBookingMessage(sr)))

	s.logger.Info("BookingSubmitted: ref=%s notifications attempted=%d delivered=%d failed=%d",
		sr.ReferenceNumber, report.Attempted, report.Delivered, len(report.Failures))
	return report
}

// MechanicAssigned notifies the client and the mechanic, independently of each other
func (s *Service) MechanicAssigned(ctx context.Context, sr *domain.ServiceRequest, mechanic *domain.User) Report {
	var report Report

	client := Recipient{Email: sr.Email, Phone: sr.Phone}
	report.merge(s.deliver(ctx, "client", client, clientAssignedMessage(sr, mechanic)))

	mech := Recipient{Email: mechanic.Email, Phone: mechanic.Phone}
	report.merge(s.deliver(ctx, "mechanic", mech, mechanicAssignedMessage(sr, mechanic)))

	s.logger.Info("MechanicAssigned: ref=%s mechanic=%s notifications attempted=%d delivered=%d failed=%d",
		sr.ReferenceNumber, mechanic.ID, report.Attempted, report.Delivered, len(report.Failures))
	return report
}

// deliver sends msg to one recipient over email and SMS
func (s *Service) deliver(ctx context.Context, party string, to Recipient, msg Message) Report {
	var report Report

	if s.email != nil {
		if strings.TrimSpace(to.Email) == "" {
			s.logger.Warn("deliver: %s has no email, skipping %q", party, msg.Subject)
		} else {
			report.Attempted++
			err := s.email.Send(ctx, to.Email, msg.Subject, msg.Body)
			s.observe(ChannelEmail, err == nil)
			if err != nil {
				s.logger.Error("deliver: failed to email %s %s: %v", party, to.Email, err)
				report.Failures = append(report.Failures,
					fmt.Errorf("%w: email to %s: %v", domain.ErrNotification, to.Email, err))
			} else {
				report.Delivered++
			}
		}
	}

	if s.sms != nil {
		if strings.TrimSpace(to.Phone) == "" {
			s.logger.Warn("deliver: %s has no phone, skipping %q", party, msg.Subject)
		} else {
			report.Attempted++
			err := s.sms.Send(ctx, to.Phone, msg.Body)
			s.observe(ChannelSMS, err == nil)
			if err != nil {
				s.logger.Error("deliver: failed to SMS %s %s: %v", party, to.Phone, err)
				report.Failures = append(report.Failures,
					fmt.Errorf("%w: sms to %s: %v", domain.ErrNotification, to.Phone, err))
			} else {
				report.Delivered++
			}
		}
	}

	return report
}

func (s *Service) observe(channel string, delivered bool) {
	if s.metrics != nil {
		s.metrics.ObserveNotification(channel, delivered)
	}
}
