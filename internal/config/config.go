package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	LogLevel      string

	// Gemini
	GeminiAPIKey        string
	GeminiConsultModel  string
	GeminiLocationModel string
	GeminiTimeout       time.Duration

	// Redis backs booking sessions and the location insights cache.
	// An empty address keeps both in process memory.
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	BookingSessionTTL   time.Duration
	LocationInsightsTTL time.Duration
	// LocationInsightsWait bounds how long a page render waits on a cold
	// insights fetch; the fetch itself keeps running and fills the cache.
	LocationInsightsWait time.Duration

	CORSAllowedOrigins []string
	ConsultRatePerSec  float64
	ConsultRateBurst   int

	LoungeAddress string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiConsultModel:  getEnv("GEMINI_CONSULT_MODEL", "gemini-3-flash-preview"),
		GeminiLocationModel: getEnv("GEMINI_LOCATION_MODEL", "gemini-2.5-flash"),
		GeminiTimeout:       getEnvAsDuration("GEMINI_TIMEOUT", 20*time.Second),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		BookingSessionTTL:    getEnvAsDuration("BOOKING_SESSION_TTL", 30*time.Minute),
		LocationInsightsTTL:  getEnvAsDuration("LOCATION_INSIGHTS_TTL", 6*time.Hour),
		LocationInsightsWait: getEnvAsDuration("LOCATION_INSIGHTS_WAIT", 2*time.Second),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
		ConsultRatePerSec:  getEnvAsFloat("CONSULT_RATE_PER_SEC", 0.2),
		ConsultRateBurst:   getEnvAsInt("CONSULT_RATE_BURST", 3),

		LoungeAddress: getEnv("LOUNGE_ADDRESS", "563 Seventh Road, Midrand"),
	}
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "production")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blank entries.
func getEnvAsList(key string) []string {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
