// home.go provides a Valkey-backed cache for the marshaled /api/home
// payload. Assembling the payload touches every catalog table, so the
// encoded JSON is kept in Valkey and served directly until the TTL
// expires. All failures degrade to a cache miss; the cache never takes
// the API down.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// homeKey is the Valkey key holding the encoded home payload.
	homeKey = "catalog:home"

	// DefaultHomeTTL is how long the encoded home payload stays cached.
	DefaultHomeTTL = 5 * time.Minute
)

// HomeCache caches the encoded home payload in Valkey.
type HomeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewHomeCache creates a home payload cache backed by the given Valkey
// client. A zero ttl uses DefaultHomeTTL.
func NewHomeCache(client *redis.Client, ttl time.Duration) *HomeCache {
	if ttl == 0 {
		ttl = DefaultHomeTTL
	}
	return &HomeCache{client: client, ttl: ttl}
}

// Get retrieves the cached payload. Returns (nil, false) on miss or error.
func (hc *HomeCache) Get(ctx context.Context) ([]byte, bool) {
	val, err := hc.client.Get(ctx, homeKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("home cache get error", "error", err)
		return nil, false
	}
	slog.Debug("home cache hit")
	return val, true
}

// Set stores the encoded payload with the configured TTL.
func (hc *HomeCache) Set(ctx context.Context, payload []byte) {
	if err := hc.client.Set(ctx, homeKey, payload, hc.ttl).Err(); err != nil {
		slog.Warn("home cache set error", "error", err)
	}
}

// Invalidate removes the cached payload. Useful after reseeding.
func (hc *HomeCache) Invalidate(ctx context.Context) {
	if err := hc.client.Del(ctx, homeKey).Err(); err != nil {
		slog.Warn("home cache invalidate error", "error", err)
	}
	slog.Debug("home cache invalidated")
}
