package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by ProductCache.Get when the key is absent or
// expired.
var ErrCacheMiss = errors.New("cache miss")

// ProductCache stores serialized catalog snapshots with an expiry.
type ProductCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
