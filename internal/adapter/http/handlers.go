package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dentalops/sitekit/internal/adapter/ws"
	"github.com/dentalops/sitekit/internal/domain/appointment"
	"github.com/dentalops/sitekit/internal/service"
)

// Pinger reports backend liveness; satisfied by pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the HTTP handlers and their dependencies.
type Handler struct {
	sites        *service.SiteService
	appointments *service.AppointmentService
	clinics      *service.ClinicService
	hub          *ws.Hub
	db           Pinger
	mapsAPIKey   string
}

// NewHandler creates the HTTP handler set. hub and db may be nil.
func NewHandler(sites *service.SiteService, appointments *service.AppointmentService, clinics *service.ClinicService, hub *ws.Hub, db Pinger, mapsAPIKey string) *Handler {
	return &Handler{
		sites:        sites,
		appointments: appointments,
		clinics:      clinics,
		hub:          hub,
		db:           db,
		mapsAPIKey:   mapsAPIKey,
	}
}

// Health reports service liveness, including database reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  "database unreachable",
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DefaultSite serves the bare-root site: the default clinic's full bundle.
func (h *Handler) DefaultSite(w http.ResponseWriter, r *http.Request) {
	h.serveSite(w, r, "")
}

// Site serves one clinic's full bundle by slug.
func (h *Handler) Site(w http.ResponseWriter, r *http.Request) {
	h.serveSite(w, r, chi.URLParam(r, "slug"))
}

func (h *Handler) serveSite(w http.ResponseWriter, r *http.Request, slug string) {
	b, err := h.sites.Load(r.Context(), slug)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// SiteTestimonials serves the resolved testimonial section for a slug.
func (h *Handler) SiteTestimonials(w http.ResponseWriter, r *http.Request) {
	b, err := h.sites.Load(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b.View.Testimonials)
}

// SiteFAQs serves the resolved FAQ section for a slug.
func (h *Handler) SiteFAQs(w http.ResponseWriter, r *http.Request) {
	b, err := h.sites.Load(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b.View.FAQs)
}

// SubmitAppointment accepts a booking submission for a slug's clinic.
func (h *Handler) SubmitAppointment(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req appointment.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.sites.ResolveClinic(r.Context(), slug)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	appt, err := h.appointments.Submit(r.Context(), c, &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, appt)
}

// SiteConfig exposes client-side configuration such as the map imagery key.
func (h *Handler) SiteConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"maps_api_key": h.mapsAPIKey,
	})
}

// SiteEvents upgrades to a WebSocket subscribed to one slug's events.
func (h *Handler) SiteEvents(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		writeError(w, http.StatusServiceUnavailable, "live events are disabled")
		return
	}
	h.hub.Handle(w, r, chi.URLParam(r, "slug"))
}
