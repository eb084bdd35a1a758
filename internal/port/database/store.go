// Package database defines the persistence port.
package database

import (
	"context"

	"github.com/dentalops/sitekit/internal/domain/appointment"
	"github.com/dentalops/sitekit/internal/domain/clinic"
	"github.com/dentalops/sitekit/internal/domain/faq"
	"github.com/dentalops/sitekit/internal/domain/testimonial"
)

// Store is the persistence interface for all site data.
type Store interface {
	// Clinics
	CreateClinic(ctx context.Context, req *clinic.CreateRequest) (*clinic.Clinic, error)
	GetClinic(ctx context.Context, id string) (*clinic.Clinic, error)
	GetClinicBySlug(ctx context.Context, slug string) (*clinic.Clinic, error)
	// DefaultClinic returns the alphabetically-first clinic by business name.
	// It backs the bare-root route (no slug in the URL). This fallback policy
	// is pending product review; keep it confined to this one method.
	DefaultClinic(ctx context.Context) (*clinic.Clinic, error)
	ListClinics(ctx context.Context) ([]clinic.Clinic, error)
	UpdateClinic(ctx context.Context, c *clinic.Clinic) error

	// Dependent collections, scoped to one clinic id
	ListTestimonials(ctx context.Context, clinicID string) ([]testimonial.Testimonial, error)
	CreateTestimonial(ctx context.Context, req *testimonial.CreateRequest) (*testimonial.Testimonial, error)
	ListActiveFAQs(ctx context.Context, clinicID string) ([]faq.FAQ, error)
	CreateFAQ(ctx context.Context, req *faq.CreateRequest) (*faq.FAQ, error)

	// Appointment intake (append-only from the website's perspective)
	CreateAppointment(ctx context.Context, clinicID string, req *appointment.CreateRequest) (*appointment.Appointment, error)
	ListAppointments(ctx context.Context, clinicID string) ([]appointment.Appointment, error)
}
