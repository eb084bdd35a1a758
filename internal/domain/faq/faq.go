// Package faq defines frequently-asked questions, each scoped to one clinic.
package faq

import "time"

// FAQ is a question/answer pair. Only active FAQs are surfaced, ascending by
// DisplayOrder.
type FAQ struct {
	ID           string    `json:"id"`
	ClinicID     string    `json:"clinic_id"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateRequest holds the fields for creating an FAQ.
type CreateRequest struct {
	ClinicID     string `json:"clinic_id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

// Defaults is the fixed five-item set rendered when a clinic has no active
// FAQs of its own. The section never shows an empty list.
func Defaults() []FAQ {
	return []FAQ{
		{
			ID:           "default-1",
			Question:     "How often should I visit the dentist?",
			Answer:       "We recommend a checkup and professional cleaning every six months. Patients with gum disease or a history of cavities may need more frequent visits.",
			DisplayOrder: 1,
			IsActive:     true,
		},
		{
			ID:           "default-2",
			Question:     "Do you accept dental insurance?",
			Answer:       "We work with most major insurance providers and will help you verify your coverage before treatment. Flexible payment plans are available for uninsured patients.",
			DisplayOrder: 2,
			IsActive:     true,
		},
		{
			ID:           "default-3",
			Question:     "What should I do in a dental emergency?",
			Answer:       "Call us right away. We reserve time for same-day emergency appointments, and our answering service can reach the on-call dentist outside office hours.",
			DisplayOrder: 3,
			IsActive:     true,
		},
		{
			ID:           "default-4",
			Question:     "Is teeth whitening safe?",
			Answer:       "Yes. Professional whitening performed under a dentist's supervision is safe and effective. We will examine your teeth first to make sure whitening is right for you.",
			DisplayOrder: 4,
			IsActive:     true,
		},
		{
			ID:           "default-5",
			Question:     "Do you treat children?",
			Answer:       "Absolutely. We see patients of all ages and recommend a child's first visit by their first birthday or within six months of their first tooth.",
			DisplayOrder: 5,
			IsActive:     true,
		},
	}
}
