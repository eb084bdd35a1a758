// Package appointment defines booking submissions from anonymous website
// visitors. Appointments are an append-only intake queue consumed by
// back-office tooling; the website never updates or deletes them.
package appointment

import "time"

// Appointment is one booking/contact submission tagged with the clinic it was
// made against.
type Appointment struct {
	ID            string    `json:"id"`
	ClinicID      string    `json:"clinic_id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	Message       string    `json:"message,omitempty"`
	PreferredTime string    `json:"preferred_time,omitempty"`
	Status        string    `json:"status,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateRequest holds a visitor's booking submission. Name and Phone are
// required; everything else is optional free text.
type CreateRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Message       string `json:"message,omitempty"`
	PreferredTime string `json:"preferred_time,omitempty"`
	Status        string `json:"status,omitempty"`
}
