package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/wolfman30/tas-beauty-lounge/internal/advisor"
	"github.com/wolfman30/tas-beauty-lounge/internal/booking"
	"github.com/wolfman30/tas-beauty-lounge/internal/catalog"
	httpmiddleware "github.com/wolfman30/tas-beauty-lounge/internal/http/middleware"
	"github.com/wolfman30/tas-beauty-lounge/internal/site"
	"github.com/wolfman30/tas-beauty-lounge/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	Pages          *site.Pages
	CatalogHandler *catalog.Handler
	BookingHandler *booking.Handler
	AdvisorHandler *advisor.Handler
	MetricsHandler http.Handler

	// AdvisorLimiter throttles the endpoints that call the model. Nil disables it.
	AdvisorLimiter     *httpmiddleware.RateLimiter
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	throttle := func(next http.Handler) http.Handler { return next }
	pageThrottle := throttle
	if cfg.AdvisorLimiter != nil {
		throttle = httpmiddleware.RateLimit(cfg.AdvisorLimiter, cfg.Logger)
		if cfg.Pages != nil {
			pageThrottle = httpmiddleware.RateLimitWith(cfg.AdvisorLimiter, cfg.Logger, http.HandlerFunc(cfg.Pages.ConsultLimited))
		}
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Rendered site
	if cfg.Pages != nil {
		r.Get("/", cfg.Pages.Home)
		r.Get("/services", cfg.Pages.Services)
		r.With(pageThrottle).Post("/consultation", cfg.Pages.Consult)
		r.Post("/booking", cfg.Pages.OpenBooking)
		r.Post("/booking/{sessionID}", cfg.Pages.UpdateBooking)
	}

	// JSON API
	r.Route("/api", func(api chi.Router) {
		if cfg.CatalogHandler != nil {
			api.Get("/services", cfg.CatalogHandler.ListServices)
			api.Get("/services/{serviceID}", cfg.CatalogHandler.GetService)
			api.Get("/categories", cfg.CatalogHandler.ListCategories)
			api.Get("/social", cfg.CatalogHandler.ListSocialPosts)
		}
		if cfg.BookingHandler != nil {
			api.Route("/booking", func(b chi.Router) {
				b.Post("/", cfg.BookingHandler.Open)
				b.Route("/{sessionID}", func(s chi.Router) {
					s.Get("/", cfg.BookingHandler.Get)
					s.Delete("/", cfg.BookingHandler.Close)
					s.Post("/service", cfg.BookingHandler.SelectService)
					s.Post("/schedule", cfg.BookingHandler.SetSchedule)
					s.Post("/continue", cfg.BookingHandler.Continue)
					s.Post("/back", cfg.BookingHandler.Back)
					s.Post("/contact", cfg.BookingHandler.SetContact)
					s.Post("/confirm", cfg.BookingHandler.Confirm)
				})
			})
		}
		if cfg.AdvisorHandler != nil {
			api.With(throttle).Post("/consultation", cfg.AdvisorHandler.Consult)
			api.Get("/location/insights", cfg.AdvisorHandler.LocationInsights)
		}
	})

	return r
}

// healthCheck returns a simple health check response.
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
