package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/wolfman30/tas-beauty-lounge/internal/advisor"
	"github.com/wolfman30/tas-beauty-lounge/internal/booking"
	appconfig "github.com/wolfman30/tas-beauty-lounge/internal/config"
	"github.com/wolfman30/tas-beauty-lounge/pkg/logging"
)

// BuildRedisClient returns a client for REDIS_ADDR, or nil when Redis is not
// configured (or unreachable and verify is set).
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

// BuildBookingStore keeps wizard sessions in Redis when a client is available
// and in process memory otherwise.
func BuildBookingStore(redisClient *redis.Client, cfg *appconfig.Config, logger *logging.Logger) booking.Store {
	if logger == nil {
		logger = logging.Default()
	}
	ttl := cfg.BookingSessionTTL
	if redisClient == nil {
		logger.Info("booking sessions stored in memory", "ttl", ttl.String())
		return booking.NewMemoryStore(ttl)
	}
	logger.Info("booking sessions stored in redis", "ttl", ttl.String())
	return booking.NewRedisStore(redisClient, ttl)
}

// BuildInsightsCache mirrors BuildBookingStore for location insights.
func BuildInsightsCache(redisClient *redis.Client) advisor.InsightsCache {
	if redisClient == nil {
		return advisor.NewMemoryInsightsCache()
	}
	return advisor.NewRedisInsightsCache(redisClient)
}
