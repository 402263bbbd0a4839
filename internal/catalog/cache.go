package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when the key is absent or the cache is disabled.
var ErrCacheMiss = errors.New("catalog: cache miss")

// Cache stores resource snapshots in Redis as JSON blobs. A nil client
// disables caching and every lookup misses.
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

// GetJSON fetches and decodes the value stored under key.
func (c Cache) GetJSON(ctx context.Context, key string, out any) error {
	if c.Client == nil {
		return ErrCacheMiss
	}
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// SetJSON encodes and stores the value under key with the configured TTL.
func (c Cache) SetJSON(ctx context.Context, key string, value any) error {
	if c.Client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, raw, c.TTL).Err()
}
