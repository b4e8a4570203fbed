package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// MarkerCacheTTL bounds staleness between a write and the invalidation
// that follows it.
const MarkerCacheTTL = time.Minute

const markerCacheKey = "markers:all"

// CacheService provides a Redis cache-aside layer for the marker
// projection.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetMarkers retrieves the cached marker list. Returns nil if not cached
// or the cache is disabled.
func (c *CacheService) GetMarkers(ctx context.Context) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, markerCacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetMarkers stores the marker list in cache.
func (c *CacheService) SetMarkers(ctx context.Context, markers interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(markers)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, markerCacheKey, b, MarkerCacheTTL).Err()
}

// InvalidateMarkers drops the cached marker list (called after any write
// to the sighting collection).
func (c *CacheService) InvalidateMarkers(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, markerCacheKey).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
