package postgres

import (
	"context"
	"fmt"

	"github.com/dentalops/sitekit/internal/domain/faq"
)

const faqColumns = `id, clinic_id, question, answer, display_order, is_active, created_at`

func scanFAQ(row scannable) (*faq.FAQ, error) {
	var f faq.FAQ
	err := row.Scan(&f.ID, &f.ClinicID, &f.Question, &f.Answer,
		&f.DisplayOrder, &f.IsActive, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Store) ListActiveFAQs(ctx context.Context, clinicID string) ([]faq.FAQ, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+faqColumns+`
		 FROM faqs WHERE clinic_id = $1 AND is_active = true
		 ORDER BY display_order ASC`, clinicID)
	if err != nil {
		return nil, fmt.Errorf("list faqs for clinic %s: %w", clinicID, err)
	}
	defer rows.Close()

	var items []faq.FAQ
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		items = append(items, *f)
	}
	return items, rows.Err()
}

func (s *Store) CreateFAQ(ctx context.Context, req *faq.CreateRequest) (*faq.FAQ, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO faqs (clinic_id, question, answer, display_order, is_active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+faqColumns,
		req.ClinicID, req.Question, req.Answer, req.DisplayOrder, req.IsActive)
	f, err := scanFAQ(row)
	if err != nil {
		return nil, fmt.Errorf("create faq: %w", err)
	}
	return f, nil
}
