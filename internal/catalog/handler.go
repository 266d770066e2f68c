package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wolfman30/tas-beauty-lounge/pkg/logging"
)

// Handler exposes the menu over JSON.
type Handler struct {
	catalog *Catalog
	logger  *logging.Logger
}

// NewHandler creates a catalog handler
func NewHandler(catalog *Catalog, logger *logging.Logger) *Handler {
	if catalog == nil {
		catalog = New()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{catalog: catalog, logger: logger}
}

// ListServicesResponse is the response for listing services
type ListServicesResponse struct {
	Category Category  `json:"category"`
	Services []Service `json:"services"`
	Count    int       `json:"count"`
}

// ListServices handles GET /api/services?category=
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	category := Category(r.URL.Query().Get("category"))
	if category == "" {
		category = CategoryAll
	}
	svcs := h.catalog.Filter(category)
	writeJSON(w, http.StatusOK, ListServicesResponse{
		Category: category,
		Services: svcs,
		Count:    len(svcs),
	})
}

// GetService handles GET /api/services/{serviceID}
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "serviceID")
	svc, err := h.catalog.ByID(id)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			jsonError(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load service", "error", err, "service_id", id)
		jsonError(w, "failed to load service", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// ListCategories handles GET /api/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": h.catalog.Categories()})
}

// ListSocialPosts handles GET /api/social
func (h *Handler) ListSocialPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"posts":       h.catalog.SocialPosts(),
		"testimonial": h.catalog.Testimonial(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
