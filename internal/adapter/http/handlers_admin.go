package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dentalops/sitekit/internal/domain/clinic"
	"github.com/dentalops/sitekit/internal/domain/faq"
	"github.com/dentalops/sitekit/internal/domain/testimonial"
)

// AdminCreateClinic registers a new clinic.
func (h *Handler) AdminCreateClinic(w http.ResponseWriter, r *http.Request) {
	var req clinic.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.clinics.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// AdminListClinics lists all clinics.
func (h *Handler) AdminListClinics(w http.ResponseWriter, r *http.Request) {
	cs, err := h.clinics.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

// AdminGetClinic returns one clinic by id.
func (h *Handler) AdminGetClinic(w http.ResponseWriter, r *http.Request) {
	c, err := h.clinics.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// AdminUpdateClinic applies a partial update to a clinic.
func (h *Handler) AdminUpdateClinic(w http.ResponseWriter, r *http.Request) {
	var req clinic.UpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.clinics.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// AdminCreateTestimonial attaches a testimonial to a clinic.
func (h *Handler) AdminCreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req testimonial.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.clinics.AddTestimonial(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// AdminCreateFAQ attaches a FAQ entry to a clinic.
func (h *Handler) AdminCreateFAQ(w http.ResponseWriter, r *http.Request) {
	var req faq.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	f, err := h.clinics.AddFAQ(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

// AdminListAppointments lists a clinic's bookings, newest first.
func (h *Handler) AdminListAppointments(w http.ResponseWriter, r *http.Request) {
	appts, err := h.appointments.ListForClinic(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appts)
}
