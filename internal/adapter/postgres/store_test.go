package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dentalops/sitekit/internal/config"
	"github.com/dentalops/sitekit/internal/domain"
	"github.com/dentalops/sitekit/internal/domain/appointment"
	"github.com/dentalops/sitekit/internal/domain/clinic"
	"github.com/dentalops/sitekit/internal/domain/faq"
	"github.com/dentalops/sitekit/internal/domain/testimonial"
)

// testStore connects to the database named by DATABASE_URL, running
// migrations first. Tests are skipped when no database is available.
func testStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping database tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := RunMigrations(ctx, dsn); err != nil {
		t.Fatalf("migrations: %v", err)
	}

	cfg := config.Defaults().Postgres
	cfg.DSN = dsn
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return NewStore(pool)
}

func createTestClinic(t *testing.T, s *Store, name string) *clinic.Clinic {
	t.Helper()

	slug := fmt.Sprintf("test-%s", uuid.NewString())
	c, err := s.CreateClinic(context.Background(), &clinic.CreateRequest{
		Slug:         slug,
		BusinessName: name,
		Address:      "12 Elm Street",
		Phone:        "(555) 111-2222",
		WorkingHours: "Monday: 8:00 AM - 6:00 PM | Saturday: 9:00 AM - 4:00 PM",
		Services:     []string{"General Dentistry", "Teeth Whitening"},
	})
	if err != nil {
		t.Fatalf("create clinic: %v", err)
	}
	t.Cleanup(func() {
		_, _ = s.pool.Exec(context.Background(), `DELETE FROM clinics WHERE id = $1`, c.ID)
	})
	return c
}

func TestClinicRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	created := createTestClinic(t, s, "Roundtrip Dental")

	got, err := s.GetClinicBySlug(ctx, created.Slug)
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if got.ID != created.ID || got.BusinessName != "Roundtrip Dental" {
		t.Errorf("got %+v", got)
	}
	if len(got.Services) != 2 {
		t.Errorf("services = %v", got.Services)
	}

	byID, err := s.GetClinic(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Slug != created.Slug {
		t.Errorf("slug = %q", byID.Slug)
	}
}

func TestGetClinicBySlugNotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.GetClinicBySlug(context.Background(), "no-such-"+uuid.NewString())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateClinic(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	c := createTestClinic(t, s, "Update Dental")
	c.AboutText = "Family dentistry since 1998."
	c.Phone = "(555) 999-8888"

	if err := s.UpdateClinic(ctx, c); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.GetClinic(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AboutText != "Family dentistry since 1998." || got.Phone != "(555) 999-8888" {
		t.Errorf("got %+v", got)
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Error("updated_at should not precede created_at")
	}
}

func TestUpdateClinicMissingRow(t *testing.T) {
	s := testStore(t)

	err := s.UpdateClinic(context.Background(), &clinic.Clinic{
		ID:           uuid.NewString(),
		BusinessName: "Ghost Dental",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestTestimonialsOrderedByDisplayOrder(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	c := createTestClinic(t, s, "Testimonial Dental")

	for _, order := range []int{3, 1, 2} {
		_, err := s.CreateTestimonial(ctx, &testimonial.CreateRequest{
			ClinicID:     c.ID,
			PatientName:  fmt.Sprintf("Patient %d", order),
			Review:       "Great visit.",
			Rating:       5,
			DisplayOrder: order,
		})
		if err != nil {
			t.Fatalf("create testimonial: %v", err)
		}
	}

	ts, err := s.ListTestimonials(ctx, c.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ts) != 3 {
		t.Fatalf("len = %d, want 3", len(ts))
	}
	for i, want := range []int{1, 2, 3} {
		if ts[i].DisplayOrder != want {
			t.Errorf("position %d: display_order = %d, want %d", i, ts[i].DisplayOrder, want)
		}
	}
}

func TestListActiveFAQsFiltersInactive(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	c := createTestClinic(t, s, "FAQ Dental")

	for i, active := range []bool{true, false, true} {
		_, err := s.CreateFAQ(ctx, &faq.CreateRequest{
			ClinicID:     c.ID,
			Question:     fmt.Sprintf("Question %d?", i),
			Answer:       "Answer.",
			DisplayOrder: i,
			IsActive:     active,
		})
		if err != nil {
			t.Fatalf("create faq: %v", err)
		}
	}

	fs, err := s.ListActiveFAQs(ctx, c.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(fs) != 2 {
		t.Fatalf("len = %d, want 2 active", len(fs))
	}
	for _, f := range fs {
		if !f.IsActive {
			t.Errorf("inactive faq returned: %+v", f)
		}
	}
}

func TestAppointmentsNewestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	c := createTestClinic(t, s, "Appointment Dental")

	var last *appointment.Appointment
	for i := 0; i < 2; i++ {
		a, err := s.CreateAppointment(ctx, c.ID, &appointment.CreateRequest{
			Name:  fmt.Sprintf("Visitor %d", i),
			Phone: "(555) 000-1111",
		})
		if err != nil {
			t.Fatalf("create appointment: %v", err)
		}
		last = a
		time.Sleep(10 * time.Millisecond) // distinct created_at for ordering
	}

	appts, err := s.ListAppointments(ctx, c.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(appts) != 2 {
		t.Fatalf("len = %d, want 2", len(appts))
	}
	if appts[0].ID != last.ID {
		t.Errorf("first listed = %s, want newest %s", appts[0].ID, last.ID)
	}
}

func TestDefaultClinicIsAlphabeticallyFirst(t *testing.T) {
	s := testStore(t)

	// Seed with a name sorting before anything realistic.
	c := createTestClinic(t, s, "    AAA First Dental")

	got, err := s.DefaultClinic(context.Background())
	if err != nil {
		t.Fatalf("default clinic: %v", err)
	}
	if got.ID != c.ID {
		t.Skipf("another clinic sorts first (%q); shared database", got.BusinessName)
	}
}
