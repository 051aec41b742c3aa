// Package redis caches catalog snapshots in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

var _ ports.ProductCache = (*ProductCache)(nil)

// ProductCache implements ports.ProductCache on a go-redis client.
type ProductCache struct {
	client *goredis.Client
}

// NewProductCache connects to the server at url (redis://host:port/db) and
// pings it.
func NewProductCache(ctx context.Context, url string) (*ProductCache, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := goredis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &ProductCache{client: client}, nil
}

func (c *ProductCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	return value, err
}

// Set stores value under key with SETEX semantics.
func (c *ProductCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *ProductCache) Close() error {
	return c.client.Close()
}
