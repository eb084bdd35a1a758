package postgres

import (
	"context"
	"fmt"

	"github.com/dentalops/sitekit/internal/domain/testimonial"
)

const testimonialColumns = `id, clinic_id, patient_name, review, rating,
	image_url, is_featured, display_order, created_at`

func scanTestimonial(row scannable) (*testimonial.Testimonial, error) {
	var t testimonial.Testimonial
	err := row.Scan(&t.ID, &t.ClinicID, &t.PatientName, &t.Review, &t.Rating,
		&t.ImageURL, &t.IsFeatured, &t.DisplayOrder, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) ListTestimonials(ctx context.Context, clinicID string) ([]testimonial.Testimonial, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+testimonialColumns+`
		 FROM testimonials WHERE clinic_id = $1
		 ORDER BY display_order ASC`, clinicID)
	if err != nil {
		return nil, fmt.Errorf("list testimonials for clinic %s: %w", clinicID, err)
	}
	defer rows.Close()

	var items []testimonial.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

func (s *Store) CreateTestimonial(ctx context.Context, req *testimonial.CreateRequest) (*testimonial.Testimonial, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO testimonials (clinic_id, patient_name, review, rating, image_url, is_featured, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+testimonialColumns,
		req.ClinicID, req.PatientName, req.Review, req.Rating,
		req.ImageURL, req.IsFeatured, req.DisplayOrder)
	t, err := scanTestimonial(row)
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return t, nil
}
