package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wolfman30/tas-beauty-lounge/cmd/mainconfig"
	"github.com/wolfman30/tas-beauty-lounge/internal/advisor"
	"github.com/wolfman30/tas-beauty-lounge/internal/api/router"
	"github.com/wolfman30/tas-beauty-lounge/internal/app/bootstrap"
	"github.com/wolfman30/tas-beauty-lounge/internal/booking"
	"github.com/wolfman30/tas-beauty-lounge/internal/catalog"
	appconfig "github.com/wolfman30/tas-beauty-lounge/internal/config"
	httpmiddleware "github.com/wolfman30/tas-beauty-lounge/internal/http/middleware"
	"github.com/wolfman30/tas-beauty-lounge/internal/observability/metrics"
	"github.com/wolfman30/tas-beauty-lounge/internal/site"
	"github.com/wolfman30/tas-beauty-lounge/pkg/logging"
)

func main() {
	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting tas-beauty-lounge web server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()
	gemini, err := mainconfig.LoadGenerator(ctx, cfg)
	if err != nil {
		logger.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}
	var gen advisor.Generator
	if gemini != nil {
		gen = gemini
		defer gemini.Close()
	}

	handler, cleanup, err := buildHandler(ctx, cfg, gen, logger)
	if err != nil {
		logger.Error("failed to build handler", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// setupMetrics registers runtime collectors and the site metrics on a fresh
// registry and returns the /metrics handler for it.
func setupMetrics() (http.Handler, *metrics.SiteMetrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), metrics.NewSiteMetrics(reg)
}

// buildHandler wires stores, services and handlers into the router. gen may be
// nil, in which case the model-backed widgets are disabled.
func buildHandler(ctx context.Context, cfg *appconfig.Config, gen advisor.Generator, logger *logging.Logger) (http.Handler, func(), error) {
	metricsHandler, siteMetrics := setupMetrics()

	redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	cleanup := func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}

	cat := catalog.New()
	bookings := booking.NewService(bootstrap.BuildBookingStore(redisClient, cfg, logger), cat, siteMetrics, logger)

	adv, err := bootstrap.BuildAdvisor(gen, cfg, bootstrap.BuildInsightsCache(redisClient), siteMetrics, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	if adv.Insights != nil {
		adv.Insights.Warm(ctx)
	}

	lounge := site.DefaultLounge
	pages, err := site.NewPages(site.PagesConfig{
		Catalog:      cat,
		Bookings:     bookings,
		Consultant:   adv.Consultant,
		Insights:     adv.Insights,
		InsightsWait: cfg.LocationInsightsWait,
		Lounge:       &lounge,
		Logger:       logger,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	handler := router.New(&router.Config{
		Logger:             logger,
		Pages:              pages,
		CatalogHandler:     catalog.NewHandler(cat, logger),
		BookingHandler:     booking.NewHandler(bookings, logger),
		AdvisorHandler:     advisor.NewHandler(adv.Consultant, adv.Insights, logger),
		MetricsHandler:     metricsHandler,
		AdvisorLimiter:     httpmiddleware.NewRateLimiter(cfg.ConsultRatePerSec, cfg.ConsultRateBurst),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})
	return handler, cleanup, nil
}
