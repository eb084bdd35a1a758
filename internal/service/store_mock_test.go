package service

import (
	"context"
	"sync"

	"github.com/dentalops/sitekit/internal/domain"
	"github.com/dentalops/sitekit/internal/domain/appointment"
	"github.com/dentalops/sitekit/internal/domain/clinic"
	"github.com/dentalops/sitekit/internal/domain/faq"
	"github.com/dentalops/sitekit/internal/domain/testimonial"
	"github.com/dentalops/sitekit/internal/port/messagequeue"
)

// mockStore implements database.Store with overridable function fields and
// records how many times each method was called.
type mockStore struct {
	mu    sync.Mutex
	calls map[string]int

	createClinicFn      func(ctx context.Context, req *clinic.CreateRequest) (*clinic.Clinic, error)
	getClinicFn         func(ctx context.Context, id string) (*clinic.Clinic, error)
	getClinicBySlugFn   func(ctx context.Context, slug string) (*clinic.Clinic, error)
	defaultClinicFn     func(ctx context.Context) (*clinic.Clinic, error)
	listClinicsFn       func(ctx context.Context) ([]clinic.Clinic, error)
	updateClinicFn      func(ctx context.Context, c *clinic.Clinic) error
	listTestimonialsFn  func(ctx context.Context, clinicID string) ([]testimonial.Testimonial, error)
	createTestimonialFn func(ctx context.Context, req *testimonial.CreateRequest) (*testimonial.Testimonial, error)
	listActiveFAQsFn    func(ctx context.Context, clinicID string) ([]faq.FAQ, error)
	createFAQFn         func(ctx context.Context, req *faq.CreateRequest) (*faq.FAQ, error)
	createAppointmentFn func(ctx context.Context, clinicID string, req *appointment.CreateRequest) (*appointment.Appointment, error)
	listAppointmentsFn  func(ctx context.Context, clinicID string) ([]appointment.Appointment, error)
}

func newMockStore() *mockStore {
	return &mockStore{calls: make(map[string]int)}
}

func (m *mockStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[name]++
}

func (m *mockStore) callCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *mockStore) CreateClinic(ctx context.Context, req *clinic.CreateRequest) (*clinic.Clinic, error) {
	m.record("CreateClinic")
	if m.createClinicFn != nil {
		return m.createClinicFn(ctx, req)
	}
	return &clinic.Clinic{ID: "clinic-1", Slug: req.Slug, BusinessName: req.BusinessName}, nil
}

func (m *mockStore) GetClinic(ctx context.Context, id string) (*clinic.Clinic, error) {
	m.record("GetClinic")
	if m.getClinicFn != nil {
		return m.getClinicFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) GetClinicBySlug(ctx context.Context, slug string) (*clinic.Clinic, error) {
	m.record("GetClinicBySlug")
	if m.getClinicBySlugFn != nil {
		return m.getClinicBySlugFn(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) DefaultClinic(ctx context.Context) (*clinic.Clinic, error) {
	m.record("DefaultClinic")
	if m.defaultClinicFn != nil {
		return m.defaultClinicFn(ctx)
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) ListClinics(ctx context.Context) ([]clinic.Clinic, error) {
	m.record("ListClinics")
	if m.listClinicsFn != nil {
		return m.listClinicsFn(ctx)
	}
	return nil, nil
}

func (m *mockStore) UpdateClinic(ctx context.Context, c *clinic.Clinic) error {
	m.record("UpdateClinic")
	if m.updateClinicFn != nil {
		return m.updateClinicFn(ctx, c)
	}
	return nil
}

func (m *mockStore) ListTestimonials(ctx context.Context, clinicID string) ([]testimonial.Testimonial, error) {
	m.record("ListTestimonials")
	if m.listTestimonialsFn != nil {
		return m.listTestimonialsFn(ctx, clinicID)
	}
	return nil, nil
}

func (m *mockStore) CreateTestimonial(ctx context.Context, req *testimonial.CreateRequest) (*testimonial.Testimonial, error) {
	m.record("CreateTestimonial")
	if m.createTestimonialFn != nil {
		return m.createTestimonialFn(ctx, req)
	}
	return &testimonial.Testimonial{ID: "t-1", ClinicID: req.ClinicID, PatientName: req.PatientName, Review: req.Review, Rating: req.Rating}, nil
}

func (m *mockStore) ListActiveFAQs(ctx context.Context, clinicID string) ([]faq.FAQ, error) {
	m.record("ListActiveFAQs")
	if m.listActiveFAQsFn != nil {
		return m.listActiveFAQsFn(ctx, clinicID)
	}
	return nil, nil
}

func (m *mockStore) CreateFAQ(ctx context.Context, req *faq.CreateRequest) (*faq.FAQ, error) {
	m.record("CreateFAQ")
	if m.createFAQFn != nil {
		return m.createFAQFn(ctx, req)
	}
	return &faq.FAQ{ID: "f-1", ClinicID: req.ClinicID, Question: req.Question, Answer: req.Answer, IsActive: req.IsActive}, nil
}

func (m *mockStore) CreateAppointment(ctx context.Context, clinicID string, req *appointment.CreateRequest) (*appointment.Appointment, error) {
	m.record("CreateAppointment")
	if m.createAppointmentFn != nil {
		return m.createAppointmentFn(ctx, clinicID, req)
	}
	return &appointment.Appointment{ID: "appt-1", ClinicID: clinicID, Name: req.Name, Phone: req.Phone}, nil
}

func (m *mockStore) ListAppointments(ctx context.Context, clinicID string) ([]appointment.Appointment, error) {
	m.record("ListAppointments")
	if m.listAppointmentsFn != nil {
		return m.listAppointmentsFn(ctx, clinicID)
	}
	return nil, nil
}

// mockQueue records published subjects and can be made to fail.
type mockQueue struct {
	mu        sync.Mutex
	published []string
	err       error
}

func (q *mockQueue) Publish(_ context.Context, subject string, _ []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.published = append(q.published, subject)
	return nil
}

func (q *mockQueue) Subscribe(context.Context, string, messagequeue.Handler) (func(), error) {
	return func() {}, nil
}

func (q *mockQueue) Close() error { return nil }

func (q *mockQueue) subjects() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]string(nil), q.published...)
}
