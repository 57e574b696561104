package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// unreachableCache points at a port nothing listens on, so every command
// fails at the transport layer.
func unreachableCache() *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	return &Cache{client: client, ttl: time.Minute}
}

func TestGet_UnreachableRedisIsAMiss(t *testing.T) {
	c := unreachableCache()
	defer c.Close()

	var dest []string
	ok := c.Get(context.Background(), ListingKey(1), &dest)
	assert.False(t, ok, "a failing client must read as a cache miss, not an error")
	assert.Nil(t, dest)
}

func TestSet_UnreachableRedisReturnsError(t *testing.T) {
	c := unreachableCache()
	defer c.Close()

	err := c.Set(context.Background(), ListingKey(1), []string{"x"})
	assert.Error(t, err, "callers log and move on; the value just is not cached")
}

func TestSet_UnmarshalableValue(t *testing.T) {
	c := unreachableCache()
	defer c.Close()

	err := c.Set(context.Background(), ListingKey(1), func() {})
	assert.Error(t, err)
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("not-a-redis-url", time.Minute)
	assert.Error(t, err)
}

func TestListingKey_StableAndPerPage(t *testing.T) {
	assert.Equal(t, ListingKey(2), ListingKey(2))
	assert.NotEqual(t, ListingKey(1), ListingKey(2))
}
