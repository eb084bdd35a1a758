// Package testimonial defines patient testimonials, each scoped to one clinic.
package testimonial

import "time"

// Testimonial is a patient review attached to a clinic. Rating is expected to
// be 1-5 but is stored as submitted; ordering is ascending by DisplayOrder.
type Testimonial struct {
	ID           string    `json:"id"`
	ClinicID     string    `json:"clinic_id"`
	PatientName  string    `json:"patient_name"`
	Review       string    `json:"review"`
	Rating       int       `json:"rating"`
	ImageURL     string    `json:"image_url,omitempty"`
	IsFeatured   bool      `json:"is_featured"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateRequest holds the fields for creating a testimonial.
type CreateRequest struct {
	ClinicID     string `json:"clinic_id"`
	PatientName  string `json:"patient_name"`
	Review       string `json:"review"`
	Rating       int    `json:"rating"`
	ImageURL     string `json:"image_url,omitempty"`
	IsFeatured   bool   `json:"is_featured"`
	DisplayOrder int    `json:"display_order"`
}

// Defaults is the fixed three-item set rendered when a clinic has no
// testimonials of its own. The section never shows an empty list.
func Defaults() []Testimonial {
	return []Testimonial{
		{
			ID:           "default-1",
			PatientName:  "Sarah Johnson",
			Review:       "Dr. Smith and the team provided exceptional care. My smile has never looked better!",
			Rating:       5,
			IsFeatured:   true,
			DisplayOrder: 1,
		},
		{
			ID:           "default-2",
			PatientName:  "Michael Chen",
			Review:       "Professional, caring, and pain-free experience. Highly recommend this clinic.",
			Rating:       5,
			IsFeatured:   true,
			DisplayOrder: 2,
		},
		{
			ID:           "default-3",
			PatientName:  "Emily Davis",
			Review:       "The best dental experience I've ever had. The staff is amazing and very gentle.",
			Rating:       5,
			IsFeatured:   true,
			DisplayOrder: 3,
		},
	}
}
