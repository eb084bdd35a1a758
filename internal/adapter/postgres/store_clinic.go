package postgres

import (
	"context"
	"fmt"

	"github.com/dentalops/sitekit/internal/domain/clinic"
)

const clinicColumns = `id, slug, business_name, address, phone, place_url,
	about_text, working_hours, services, created_at, updated_at`

func scanClinic(row scannable) (*clinic.Clinic, error) {
	var c clinic.Clinic
	err := row.Scan(&c.ID, &c.Slug, &c.BusinessName, &c.Address, &c.Phone,
		&c.PlaceURL, &c.AboutText, &c.WorkingHours, &c.Services,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CreateClinic(ctx context.Context, req *clinic.CreateRequest) (*clinic.Clinic, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO clinics (slug, business_name, address, phone, place_url, about_text, working_hours, services)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+clinicColumns,
		req.Slug, req.BusinessName, req.Address, req.Phone, req.PlaceURL,
		req.AboutText, req.WorkingHours, pgTextArray(req.Services))
	c, err := scanClinic(row)
	if err != nil {
		return nil, fmt.Errorf("create clinic: %w", err)
	}
	return c, nil
}

func (s *Store) GetClinic(ctx context.Context, id string) (*clinic.Clinic, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+clinicColumns+` FROM clinics WHERE id = $1`, id)
	c, err := scanClinic(row)
	if err != nil {
		return nil, notFoundWrap(err, "get clinic %s", id)
	}
	return c, nil
}

func (s *Store) GetClinicBySlug(ctx context.Context, slug string) (*clinic.Clinic, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+clinicColumns+` FROM clinics WHERE slug = $1`, slug)
	c, err := scanClinic(row)
	if err != nil {
		return nil, notFoundWrap(err, "get clinic by slug %q", slug)
	}
	return c, nil
}

// DefaultClinic returns the alphabetically-first clinic by business name.
// Backs the bare-root route; this routing policy is pending product review.
func (s *Store) DefaultClinic(ctx context.Context) (*clinic.Clinic, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+clinicColumns+` FROM clinics ORDER BY business_name ASC LIMIT 1`)
	c, err := scanClinic(row)
	if err != nil {
		return nil, notFoundWrap(err, "default clinic")
	}
	return c, nil
}

func (s *Store) ListClinics(ctx context.Context) ([]clinic.Clinic, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+clinicColumns+` FROM clinics ORDER BY business_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list clinics: %w", err)
	}
	defer rows.Close()

	var clinics []clinic.Clinic
	for rows.Next() {
		c, err := scanClinic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan clinic: %w", err)
		}
		clinics = append(clinics, *c)
	}
	return clinics, rows.Err()
}

func (s *Store) UpdateClinic(ctx context.Context, c *clinic.Clinic) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE clinics SET business_name = $2, address = $3, phone = $4,
			place_url = $5, about_text = $6, working_hours = $7, services = $8,
			updated_at = now()
		 WHERE id = $1`,
		c.ID, c.BusinessName, c.Address, c.Phone, c.PlaceURL,
		c.AboutText, c.WorkingHours, pgTextArray(c.Services))
	return execExpectOne(tag, err, "update clinic %s", c.ID)
}
