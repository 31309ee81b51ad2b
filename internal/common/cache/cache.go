// internal/common/cache/cache.go
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"apify-workers/internal/common/config"
)

// RunCache memoizes full scraper results keyed by actor id and run input,
// so repeating an identical invocation of a paid actor does not trigger a
// second remote run. A nil *RunCache is a valid no-op cache.
type RunCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a run cache, or returns nil when no address is configured.
func New(cfg config.RedisConfig) *RunCache {
	if !cfg.Enabled() {
		return nil
	}

	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	return &RunCache{client: rdb, ttl: ttl}
}

// Ping tests the Redis connection.
func (c *RunCache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *RunCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Key derives a deterministic cache key from the actor id and its run input.
func Key(actorID string, input map[string]interface{}) string {
	// json.Marshal sorts map keys, so equal inputs hash equally.
	data, err := json.Marshal(input)
	if err != nil {
		data = []byte(fmt.Sprintf("%v", input))
	}
	sum := sha256.Sum256(append([]byte(actorID+"\x00"), data...))
	return "run:" + hex.EncodeToString(sum[:])
}

// Get returns the cached payload for key, or false on miss or backend error.
func (c *RunCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores the payload under key with the configured TTL. Backend errors
// are dropped: caching is best effort.
func (c *RunCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}
	_ = c.client.Set(ctx, key, payload, c.ttl).Err()
}
