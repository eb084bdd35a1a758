package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dentalops/sitekit/internal/adapter/ws"
	"github.com/dentalops/sitekit/internal/domain"
	"github.com/dentalops/sitekit/internal/domain/clinic"
	"github.com/dentalops/sitekit/internal/domain/faq"
	"github.com/dentalops/sitekit/internal/domain/testimonial"
	"github.com/dentalops/sitekit/internal/port/database"
	"github.com/dentalops/sitekit/internal/port/messagequeue"
)

// Slugs are lowercase DNS-label style: 3-64 chars, no leading/trailing hyphen.
var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,62}[a-z0-9]$`)

// ClinicService handles admin management of clinics and their content.
type ClinicService struct {
	store    database.Store
	sites    *SiteService
	queue    messagequeue.Queue
	notifier Notifier
}

// NewClinicService creates the admin clinic service. sites, queue and
// notifier may be nil.
func NewClinicService(store database.Store, sites *SiteService, queue messagequeue.Queue, notifier Notifier) *ClinicService {
	return &ClinicService{
		store:    store,
		sites:    sites,
		queue:    queue,
		notifier: notifier,
	}
}

// Create registers a new clinic.
func (s *ClinicService) Create(ctx context.Context, req *clinic.CreateRequest) (*clinic.Clinic, error) {
	if !slugPattern.MatchString(req.Slug) {
		return nil, fmt.Errorf("%w: invalid slug %q", domain.ErrValidation, req.Slug)
	}
	if strings.TrimSpace(req.BusinessName) == "" {
		return nil, fmt.Errorf("%w: business_name is required", domain.ErrValidation)
	}

	c, err := s.store.CreateClinic(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create clinic: %w", err)
	}

	slog.Info("clinic created", "clinic_id", c.ID, "slug", c.Slug)
	s.siteChanged(ctx, c)
	return c, nil
}

// Get returns a clinic by id.
func (s *ClinicService) Get(ctx context.Context, id string) (*clinic.Clinic, error) {
	return s.store.GetClinic(ctx, id)
}

// List returns all clinics.
func (s *ClinicService) List(ctx context.Context) ([]clinic.Clinic, error) {
	return s.store.ListClinics(ctx)
}

// Update applies a partial update to a clinic and invalidates its cached site.
func (s *ClinicService) Update(ctx context.Context, id string, req *clinic.UpdateRequest) (*clinic.Clinic, error) {
	c, err := s.store.GetClinic(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(c)
	if strings.TrimSpace(c.BusinessName) == "" {
		return nil, fmt.Errorf("%w: business_name cannot be empty", domain.ErrValidation)
	}

	if err := s.store.UpdateClinic(ctx, c); err != nil {
		return nil, fmt.Errorf("update clinic: %w", err)
	}

	slog.Info("clinic updated", "clinic_id", c.ID, "slug", c.Slug)
	s.siteChanged(ctx, c)
	return c, nil
}

// AddTestimonial attaches a testimonial to a clinic.
func (s *ClinicService) AddTestimonial(ctx context.Context, req *testimonial.CreateRequest) (*testimonial.Testimonial, error) {
	if req.ClinicID == "" {
		return nil, domain.ErrClinicUnresolved
	}
	if strings.TrimSpace(req.PatientName) == "" || strings.TrimSpace(req.Review) == "" {
		return nil, fmt.Errorf("%w: patient_name and review are required", domain.ErrValidation)
	}

	t, err := s.store.CreateTestimonial(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	s.invalidateByID(ctx, req.ClinicID)
	return t, nil
}

// AddFAQ attaches a FAQ entry to a clinic.
func (s *ClinicService) AddFAQ(ctx context.Context, req *faq.CreateRequest) (*faq.FAQ, error) {
	if req.ClinicID == "" {
		return nil, domain.ErrClinicUnresolved
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		return nil, fmt.Errorf("%w: question and answer are required", domain.ErrValidation)
	}

	f, err := s.store.CreateFAQ(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create faq: %w", err)
	}
	s.invalidateByID(ctx, req.ClinicID)
	return f, nil
}

// siteChanged invalidates the clinic's cached bundle and announces the change.
func (s *ClinicService) siteChanged(ctx context.Context, c *clinic.Clinic) {
	if s.sites != nil {
		s.sites.Invalidate(ctx, c.Slug)
	}

	data, err := json.Marshal(c)
	if err != nil {
		return
	}
	if s.queue != nil {
		if err := s.queue.Publish(ctx, messagequeue.SubjectSiteUpdated, data); err != nil {
			slog.Warn("site update publish failed", "clinic_id", c.ID, "error", err)
		}
	}
	if s.notifier != nil {
		s.notifier.Broadcast(ctx, ws.Message{
			Type:    ws.EventSiteUpdated,
			Slug:    c.Slug,
			Payload: data,
		})
	}
}

func (s *ClinicService) invalidateByID(ctx context.Context, clinicID string) {
	if s.sites == nil {
		return
	}
	c, err := s.store.GetClinic(ctx, clinicID)
	if err != nil {
		return
	}
	s.sites.Invalidate(ctx, c.Slug)
}
