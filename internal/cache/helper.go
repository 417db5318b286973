package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetJSON reads key and unmarshals its value into dest.
// Returns redis.Nil on a cache miss.
func GetJSON(ctx context.Context, key string, dest interface{}) error {
	if client == nil {
		return redis.Nil
	}
	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

// SetJSON marshals value and stores it under key with the given TTL.
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, raw, ttl).Err()
}

// Aside implements the cache-aside pattern: return the cached value under key
// if present, otherwise call fetch to populate dest and write it back with the
// given TTL. Cache failures degrade to the fetch path; a fetch error is
// returned as-is and nothing is cached.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, fetch func() error) error {
	if err := GetJSON(ctx, key, dest); err == nil {
		return nil
	} else if !errors.Is(err, redis.Nil) {
		// Corrupt or unreachable cache entry. Refetch and overwrite.
		Invalidate(ctx, key)
	}

	if err := fetch(); err != nil {
		return err
	}

	// Best effort write-back, a failure here only costs a future miss.
	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}
