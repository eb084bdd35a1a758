package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	obs "github.com/dentalops/sitekit/internal/adapter/otel"
	"github.com/dentalops/sitekit/internal/config"
	"github.com/dentalops/sitekit/internal/middleware"
)

// NewRouter builds the full route tree with all middleware applied. The
// caller owns the rate limiter's lifecycle (its cleanup goroutine).
func NewRouter(cfg config.Config, h *Handler, submitLimiter *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger)
	r.Use(SecurityHeaders)
	r.Use(CORS(cfg.Server.CORSOrigin))
	r.Use(obs.HTTPMiddleware(cfg.Logging.Service))

	r.Get("/health", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/site", h.DefaultSite)
		r.Get("/site-config", h.SiteConfig)

		r.Route("/sites/{slug}", func(r chi.Router) {
			r.Get("/", h.Site)
			r.Get("/testimonials", h.SiteTestimonials)
			r.Get("/faqs", h.SiteFAQs)
			r.With(submitLimiter.Handler).Post("/appointments", h.SubmitAppointment)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminToken(cfg.Admin.TokenHash))

			r.Post("/clinics", h.AdminCreateClinic)
			r.Get("/clinics", h.AdminListClinics)
			r.Get("/clinics/{id}", h.AdminGetClinic)
			r.Patch("/clinics/{id}", h.AdminUpdateClinic)
			r.Get("/clinics/{id}/appointments", h.AdminListAppointments)
			r.Post("/testimonials", h.AdminCreateTestimonial)
			r.Post("/faqs", h.AdminCreateFAQ)
		})
	})

	r.Get("/ws/sites/{slug}", h.SiteEvents)

	return r
}
