package clinic

import (
	"github.com/dentalops/sitekit/internal/domain/faq"
	"github.com/dentalops/sitekit/internal/domain/testimonial"
)

// Display defaults shown when a clinic record leaves a field empty. Each
// field falls back independently: a clinic with a business name but no about
// text shows the real name with the generic about copy.
const (
	DefaultHeroTitle    = "Your Perfect Smile"
	DefaultBusinessName = "Our Practice"
	DefaultAddress      = "123 Main Street, City, State 12345"
	DefaultPhone        = "(555) 123-4567"
	DefaultAboutText    = "With over 15 years of experience, our team of certified dentists provides exceptional care using the latest technology and techniques."
)

// DefaultServices is the service list shown when a clinic has none configured.
func DefaultServices() []string {
	return []string{
		"General Dentistry",
		"Teeth Cleaning",
		"Dental Fillings",
		"Root Canal Treatment",
		"Dental Crowns",
		"Teeth Whitening",
	}
}

// View is the fully-resolved representation of a clinic used for rendering.
// Every field is populated: construction resolves each display field against
// its default exactly once, so presentational consumers never re-implement
// the fallback policy.
type View struct {
	HeroTitle    string                      `json:"hero_title"`
	BusinessName string                      `json:"business_name"`
	Address      string                      `json:"address"`
	Phone        string                      `json:"phone"`
	PlaceURL     string                      `json:"place_url"`
	AboutText    string                      `json:"about_text"`
	Services     []string                    `json:"services"`
	Schedule     Schedule                    `json:"schedule"`
	Testimonials []testimonial.Testimonial   `json:"testimonials"`
	FAQs         []faq.FAQ                   `json:"faqs"`
}

// ResolveView builds the view-model for a clinic and its dependent
// collections. A nil clinic resolves to an all-default view. Empty
// collections resolve to the fixed default sets, never empty lists.
func ResolveView(c *Clinic, ts []testimonial.Testimonial, fs []faq.FAQ) View {
	v := View{
		HeroTitle:    DefaultHeroTitle,
		BusinessName: DefaultBusinessName,
		Address:      DefaultAddress,
		Phone:        DefaultPhone,
		AboutText:    DefaultAboutText,
		Services:     DefaultServices(),
		Schedule:     DefaultSchedule(),
		Testimonials: ts,
		FAQs:         fs,
	}

	if c != nil {
		if c.BusinessName != "" {
			v.HeroTitle = c.BusinessName
			v.BusinessName = c.BusinessName
		}
		if c.Address != "" {
			v.Address = c.Address
		}
		if c.Phone != "" {
			v.Phone = c.Phone
		}
		v.PlaceURL = c.PlaceURL
		if c.AboutText != "" {
			v.AboutText = c.AboutText
		}
		if len(c.Services) > 0 {
			v.Services = c.Services
		}
		if parsed := ParseSchedule(c.WorkingHours); parsed.Structured() {
			v.Schedule = parsed
		}
	}

	if len(v.Testimonials) == 0 {
		v.Testimonials = testimonial.Defaults()
	}
	if len(v.FAQs) == 0 {
		v.FAQs = faq.Defaults()
	}
	return v
}
