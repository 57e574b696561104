// Package cache provides a Redis-backed TTL cache for public listing pages.
// It is best-effort: a miss or a Redis failure just falls through to the
// database.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis at the given URL (redis://host:port) and returns a
// Cache with the configured TTL.
func New(redisURL string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cache: invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping failed: %w", err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

// Get unmarshals the cached value for key into dest, reporting whether a
// valid entry existed.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// Set stores val under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, val any) error {
	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("cache: marshal error: %w", err)
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

// ListingKey builds the cache key for one page of the unfiltered public
// listing. Hashed to keep keys uniform.
func ListingKey(page int) string {
	hash := sha256.Sum256(fmt.Appendf(nil, "listing:%d", page))
	return fmt.Sprintf("gojobs:listing:%x", hash[:8])
}
