package postgres

import (
	"context"
	"fmt"

	"github.com/dentalops/sitekit/internal/domain/appointment"
)

const appointmentColumns = `id, clinic_id, name, phone, email, message,
	preferred_time, status, created_at`

func scanAppointment(row scannable) (*appointment.Appointment, error) {
	var a appointment.Appointment
	err := row.Scan(&a.ID, &a.ClinicID, &a.Name, &a.Phone, &a.Email,
		&a.Message, &a.PreferredTime, &a.Status, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAppointment inserts exactly one intake row. There is no idempotency
// key: duplicate submissions produce duplicate rows by design.
func (s *Store) CreateAppointment(ctx context.Context, clinicID string, req *appointment.CreateRequest) (*appointment.Appointment, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO appointments (clinic_id, name, phone, email, message, preferred_time, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+appointmentColumns,
		clinicID, req.Name, req.Phone, req.Email, req.Message,
		req.PreferredTime, req.Status)
	a, err := scanAppointment(row)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return a, nil
}

func (s *Store) ListAppointments(ctx context.Context, clinicID string) ([]appointment.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentColumns+`
		 FROM appointments WHERE clinic_id = $1
		 ORDER BY created_at DESC`, clinicID)
	if err != nil {
		return nil, fmt.Errorf("list appointments for clinic %s: %w", clinicID, err)
	}
	defer rows.Close()

	var items []appointment.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}
