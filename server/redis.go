package server

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// cache wraps the go-redis client with a health check. The engine itself
// never touches the cache; this exists only for the readiness surface.
type cache struct {
	client *redis.Client
	addr   string
}

// newCache creates a cache client from a redis URL. Returns nil when the URL
// is empty (cache not configured); no connection is made until Health.
func newCache(url string) (*cache, error) {
	if url == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	return &cache{client: redis.NewClient(opts), addr: opts.Addr}, nil
}

// Health checks if the cache connection is healthy.
func (c *cache) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the cache connection.
func (c *cache) Close() error {
	return c.client.Close()
}
