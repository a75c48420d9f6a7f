package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client is a thin wrapper used as the response cache store. Cached entries
// are serialized JSON bodies keyed by the full request URI.
type Client struct {
	rdb *redis.Client
}

var ErrCacheMiss = fmt.Errorf("cache entry not found")

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) GetResponse(ctx context.Context, key string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, "response:"+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cached response: %w", err)
	}
	return val, nil
}

func (c *Client) SetResponse(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, "response:"+key, body, ttl).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
