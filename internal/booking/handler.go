package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wolfman30/tas-beauty-lounge/internal/catalog"
	"github.com/wolfman30/tas-beauty-lounge/pkg/logging"
)

// Handler exposes the reservation wizard over JSON.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a booking handler
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// SelectServiceRequest is the body of POST /api/booking/{sessionID}/service
type SelectServiceRequest struct {
	ServiceID string `json:"service_id"`
}

// ScheduleRequest is the body of POST /api/booking/{sessionID}/schedule
type ScheduleRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// ContactRequest is the body of POST /api/booking/{sessionID}/contact
type ContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Open handles POST /api/booking
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Open(r.Context())
	if err != nil {
		h.fail(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, h.service.Describe(session))
}

// Get handles GET /api/booking/{sessionID}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	session, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err, id)
		return
	}
	writeJSON(w, http.StatusOK, h.service.Describe(session))
}

// SelectService handles POST /api/booking/{sessionID}/service
func (h *Handler) SelectService(w http.ResponseWriter, r *http.Request) {
	var req SelectServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "sessionID")
	session, err := h.service.SelectService(r.Context(), id, req.ServiceID)
	h.respond(w, session, err, id)
}

// SetSchedule handles POST /api/booking/{sessionID}/schedule
func (h *Handler) SetSchedule(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "sessionID")
	session, err := h.service.SetSchedule(r.Context(), id, req.Date, req.Time)
	h.respond(w, session, err, id)
}

// Continue handles POST /api/booking/{sessionID}/continue
func (h *Handler) Continue(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	session, err := h.service.Continue(r.Context(), id)
	h.respond(w, session, err, id)
}

// Back handles POST /api/booking/{sessionID}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	session, err := h.service.Back(r.Context(), id)
	h.respond(w, session, err, id)
}

// SetContact handles POST /api/booking/{sessionID}/contact
func (h *Handler) SetContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "sessionID")
	session, err := h.service.SetContact(r.Context(), id, req.Name, req.Email, req.Phone)
	h.respond(w, session, err, id)
}

// Confirm handles POST /api/booking/{sessionID}/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := h.service.Confirm(r.Context(), id); err != nil {
		h.fail(w, err, id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(StepClosed)})
}

// Close handles DELETE /api/booking/{sessionID}
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := h.service.Close(r.Context(), id); err != nil {
		h.fail(w, err, id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respond(w http.ResponseWriter, session *Session, err error, id string) {
	if err != nil {
		h.fail(w, err, id)
		return
	}
	writeJSON(w, http.StatusOK, h.service.Describe(session))
}

func (h *Handler) fail(w http.ResponseWriter, err error, id string) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		jsonError(w, "booking session not found", http.StatusNotFound)
	case errors.Is(err, catalog.ErrServiceNotFound):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrInvalidTransition):
		jsonError(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("booking request failed", "error", err, "session_id", id)
		jsonError(w, "booking unavailable", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
