// Package clinic defines the clinic (tenant) domain model. Each clinic is one
// dental practice's data scope, keyed by a unique URL slug.
package clinic

import "time"

// Clinic represents one dental practice.
type Clinic struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	BusinessName string    `json:"business_name"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	PlaceURL     string    `json:"place_url"`
	AboutText    string    `json:"about_text,omitempty"`
	WorkingHours string    `json:"working_hours,omitempty"`
	Services     []string  `json:"services,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateRequest holds the fields required to create a new clinic.
type CreateRequest struct {
	Slug         string   `json:"slug"`
	BusinessName string   `json:"business_name"`
	Address      string   `json:"address,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	PlaceURL     string   `json:"place_url,omitempty"`
	AboutText    string   `json:"about_text,omitempty"`
	WorkingHours string   `json:"working_hours,omitempty"`
	Services     []string `json:"services,omitempty"`
}

// UpdateRequest holds the fields that can be updated on a clinic.
// Nil pointers leave the current value unchanged; empty strings are
// legitimate updates (clearing the about text is a real admin action).
type UpdateRequest struct {
	BusinessName *string   `json:"business_name,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	PlaceURL     *string   `json:"place_url,omitempty"`
	AboutText    *string   `json:"about_text,omitempty"`
	WorkingHours *string   `json:"working_hours,omitempty"`
	Services     *[]string `json:"services,omitempty"`
}

// Apply overlays the non-nil fields of the request onto c.
func (r *UpdateRequest) Apply(c *Clinic) {
	if r.BusinessName != nil {
		c.BusinessName = *r.BusinessName
	}
	if r.Address != nil {
		c.Address = *r.Address
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.PlaceURL != nil {
		c.PlaceURL = *r.PlaceURL
	}
	if r.AboutText != nil {
		c.AboutText = *r.AboutText
	}
	if r.WorkingHours != nil {
		c.WorkingHours = *r.WorkingHours
	}
	if r.Services != nil {
		c.Services = *r.Services
	}
}
