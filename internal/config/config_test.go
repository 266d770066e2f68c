package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "REDIS_ADDR", "GEMINI_CONSULT_MODEL", "BOOKING_SESSION_TTL", "LOCATION_INSIGHTS_WAIT", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("expected redis disabled by default, got %s", cfg.RedisAddr)
	}
	if cfg.GeminiConsultModel != "gemini-3-flash-preview" {
		t.Fatalf("unexpected consult model %s", cfg.GeminiConsultModel)
	}
	if cfg.GeminiLocationModel != "gemini-2.5-flash" {
		t.Fatalf("unexpected location model %s", cfg.GeminiLocationModel)
	}
	if cfg.BookingSessionTTL != 30*time.Minute {
		t.Fatalf("expected default session ttl, got %s", cfg.BookingSessionTTL)
	}
	if cfg.LocationInsightsWait != 2*time.Second {
		t.Fatalf("expected default insights wait, got %s", cfg.LocationInsightsWait)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Fatalf("expected no cors origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.IsProduction() {
		t.Fatalf("development config reported production")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "Production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("BOOKING_SESSION_TTL", "10m")
	t.Setenv("LOCATION_INSIGHTS_TTL", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://tasbeauty.co.za, ,https://www.tasbeauty.co.za")
	t.Setenv("CONSULT_RATE_PER_SEC", "1.5")
	t.Setenv("CONSULT_RATE_BURST", "x")

	cfg := Load()
	if cfg.Port != "9090" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected port/log level %s/%s", cfg.Port, cfg.LogLevel)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production env")
	}
	if cfg.RedisAddr != "localhost:6379" || !cfg.RedisTLS {
		t.Fatalf("unexpected redis config %+v", cfg)
	}
	if cfg.BookingSessionTTL != 10*time.Minute {
		t.Fatalf("expected 10m ttl, got %s", cfg.BookingSessionTTL)
	}
	if cfg.LocationInsightsTTL != 6*time.Hour {
		t.Fatalf("invalid duration should fall back to default, got %s", cfg.LocationInsightsTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://www.tasbeauty.co.za" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.ConsultRatePerSec != 1.5 {
		t.Fatalf("unexpected rate %v", cfg.ConsultRatePerSec)
	}
	if cfg.ConsultRateBurst != 3 {
		t.Fatalf("invalid burst should fall back to default, got %d", cfg.ConsultRateBurst)
	}
}
