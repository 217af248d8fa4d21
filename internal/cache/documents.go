package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DocumentCache keeps generated PDFs in Redis so repeated downloads of the
// same document skip rendering and conversion.
type DocumentCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDocumentCache(rdb *redis.Client, ttl time.Duration) *DocumentCache {
	return &DocumentCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached PDF or nil when the key is absent.
func (c *DocumentCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (c *DocumentCache) Set(ctx context.Context, key string, pdf []byte) error {
	return c.rdb.Set(ctx, key, pdf, c.ttl).Err()
}
