package advisor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wolfman30/tas-beauty-lounge/pkg/logging"
)

// Handler exposes the consultation widget and location insights over JSON.
type Handler struct {
	consultant *Consultant
	insights   *InsightsFetcher
	logger     *logging.Logger
}

// NewHandler creates an advisor handler. Either dependency may be nil when
// the model is not configured; the matching endpoint then answers 503.
func NewHandler(consultant *Consultant, insights *InsightsFetcher, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{consultant: consultant, insights: insights, logger: logger}
}

// ConsultRequest is the body of POST /api/consultation
type ConsultRequest struct {
	Concern  string `json:"concern"`
	SkinType string `json:"skin_type"`
}

// Consult handles POST /api/consultation
func (h *Handler) Consult(w http.ResponseWriter, r *http.Request) {
	if h.consultant == nil {
		jsonError(w, "consultation unavailable", http.StatusServiceUnavailable)
		return
	}
	var req ConsultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	skin, err := ParseSkinType(req.SkinType)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.consultant.Consult(r.Context(), req.Concern, skin)
	if err != nil {
		if errors.Is(err, ErrConcernRequired) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, "consultation unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// LocationInsights handles GET /api/location/insights
func (h *Handler) LocationInsights(w http.ResponseWriter, r *http.Request) {
	if h.insights == nil {
		jsonError(w, "Unable to load area insights.", http.StatusServiceUnavailable)
		return
	}
	insights, err := h.insights.Fetch(r.Context())
	if err != nil {
		jsonError(w, "Unable to load area insights.", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, insights)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
