package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	obs "github.com/dentalops/sitekit/internal/adapter/otel"
	"github.com/dentalops/sitekit/internal/adapter/ws"
	"github.com/dentalops/sitekit/internal/domain"
	"github.com/dentalops/sitekit/internal/domain/appointment"
	"github.com/dentalops/sitekit/internal/domain/clinic"
	"github.com/dentalops/sitekit/internal/port/database"
	"github.com/dentalops/sitekit/internal/port/messagequeue"
	"github.com/dentalops/sitekit/internal/resilience"
)

// Notifier pushes live events to connected dashboards.
type Notifier interface {
	Broadcast(ctx context.Context, msg ws.Message)
}

// AppointmentService handles booking submissions from website visitors.
type AppointmentService struct {
	store    database.Store
	queue    messagequeue.Queue
	notifier Notifier
	breaker  *resilience.Breaker
	metrics  *obs.Metrics
}

// NewAppointmentService creates the booking intake service. queue, notifier
// and metrics may be nil.
func NewAppointmentService(store database.Store, queue messagequeue.Queue, notifier Notifier, breaker *resilience.Breaker, m *obs.Metrics) *AppointmentService {
	return &AppointmentService{
		store:    store,
		queue:    queue,
		notifier: notifier,
		breaker:  breaker,
		metrics:  m,
	}
}

// Submit persists a booking against the given clinic and hands it to the
// back-office pipeline. The clinic must be resolved first; submitting without
// one fails before any write happens. Event publishing is best-effort — a
// down broker never loses the booking, which is already committed.
//
// There is no idempotency key: a visitor double-submitting the form creates
// two rows, and back-office tooling deduplicates by phone number.
func (s *AppointmentService) Submit(ctx context.Context, c *clinic.Clinic, req *appointment.CreateRequest) (*appointment.Appointment, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.SubmitDuration.Record(ctx, time.Since(start).Seconds())
		}
	}()

	if c == nil || c.ID == "" {
		s.countFailed(ctx)
		return nil, domain.ErrClinicUnresolved
	}
	if err := validateSubmission(req); err != nil {
		s.countFailed(ctx)
		return nil, err
	}

	appt, err := s.store.CreateAppointment(ctx, c.ID, req)
	if err != nil {
		s.countFailed(ctx)
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	if s.metrics != nil {
		s.metrics.AppointmentsReceived.Add(ctx, 1)
	}
	slog.Info("appointment received", "clinic_id", c.ID, "appointment_id", appt.ID)

	s.publishReceived(ctx, c, appt)
	return appt, nil
}

// ListForClinic returns all bookings for a clinic, newest first.
func (s *AppointmentService) ListForClinic(ctx context.Context, clinicID string) ([]appointment.Appointment, error) {
	return s.store.ListAppointments(ctx, clinicID)
}

func validateSubmission(req *appointment.CreateRequest) error {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}
	return nil
}

func (s *AppointmentService) countFailed(ctx context.Context) {
	if s.metrics != nil {
		s.metrics.AppointmentsFailed.Add(ctx, 1)
	}
}

// publishReceived fans the persisted booking out to the broker and any live
// dashboard connections. Failures are logged, never returned.
func (s *AppointmentService) publishReceived(ctx context.Context, c *clinic.Clinic, appt *appointment.Appointment) {
	data, err := json.Marshal(appt)
	if err != nil {
		slog.Error("appointment marshal failed", "error", err)
		return
	}

	if s.queue != nil {
		err := s.breaker.Execute(func() error {
			return s.queue.Publish(ctx, messagequeue.SubjectAppointmentReceived, data)
		})
		if err != nil {
			slog.Warn("appointment event publish failed",
				"appointment_id", appt.ID, "error", err)
		}
	}

	if s.notifier != nil {
		s.notifier.Broadcast(ctx, ws.Message{
			Type:    ws.EventAppointmentReceived,
			Slug:    c.Slug,
			Payload: data,
		})
	}
}
