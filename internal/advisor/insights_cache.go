package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// InsightsCache holds the last fetched location insights. Get returns nil on a miss.
type InsightsCache interface {
	Get(ctx context.Context, key string) (*LocationInsights, error)
	Set(ctx context.Context, key string, insights *LocationInsights, ttl time.Duration) error
}

// MemoryInsightsCache keeps insights in process memory.
type MemoryInsightsCache struct {
	mu      sync.RWMutex
	now     func() time.Time
	entries map[string]cachedInsights
}

type cachedInsights struct {
	insights  LocationInsights
	expiresAt time.Time
}

func NewMemoryInsightsCache() *MemoryInsightsCache {
	return &MemoryInsightsCache{now: time.Now, entries: make(map[string]cachedInsights)}
}

func (c *MemoryInsightsCache) Get(_ context.Context, key string) (*LocationInsights, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		return nil, nil
	}
	out := entry.insights
	out.Links = append([]Link(nil), entry.insights.Links...)
	return &out, nil
}

func (c *MemoryInsightsCache) Set(_ context.Context, key string, insights *LocationInsights, ttl time.Duration) error {
	entry := cachedInsights{insights: *insights}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// RedisInsightsCache shares insights across replicas.
type RedisInsightsCache struct {
	redis *redis.Client
}

func NewRedisInsightsCache(client *redis.Client) *RedisInsightsCache {
	if client == nil {
		panic("advisor: redis client cannot be nil")
	}
	return &RedisInsightsCache{redis: client}
}

func (c *RedisInsightsCache) Get(ctx context.Context, key string) (*LocationInsights, error) {
	data, err := c.redis.Get(ctx, insightsKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("advisor: failed to load insights: %w", err)
	}
	var insights LocationInsights
	if err := json.Unmarshal(data, &insights); err != nil {
		return nil, fmt.Errorf("advisor: failed to decode insights: %w", err)
	}
	return &insights, nil
}

func (c *RedisInsightsCache) Set(ctx context.Context, key string, insights *LocationInsights, ttl time.Duration) error {
	data, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("advisor: failed to marshal insights: %w", err)
	}
	if err := c.redis.Set(ctx, insightsKey(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("advisor: failed to persist insights: %w", err)
	}
	return nil
}

func insightsKey(key string) string {
	return fmt.Sprintf("location_insights:%s", key)
}
