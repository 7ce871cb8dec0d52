// Package cache provides small cache-aside helpers over a Redis client.
// All helpers are nil-safe: with no client configured, writes are no-ops
// and reads miss.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable is returned by Get when no Redis client is configured.
var ErrUnavailable = errors.New("cache: redis client not available")

// Set marshals value as JSON and stores it under key with the given TTL.
func Set(ctx context.Context, client *redis.Client, key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %w", err)
	}

	return client.Set(ctx, key, data, ttl).Err()
}

// Get loads the JSON value stored under key into dest. Misses return an error.
func Get(ctx context.Context, client *redis.Client, key string, dest interface{}) error {
	if client == nil {
		return ErrUnavailable
	}

	data, err := client.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), dest)
}

// Delete removes the given keys.
func Delete(ctx context.Context, client *redis.Client, keys ...string) error {
	if client == nil || len(keys) == 0 {
		return nil
	}

	return client.Del(ctx, keys...).Err()
}

// InvalidatePattern removes every key matching the given patterns.
func InvalidatePattern(ctx context.Context, client *redis.Client, patterns ...string) error {
	if client == nil {
		return nil
	}

	for _, pattern := range patterns {
		keys, err := client.Keys(ctx, pattern).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
	}

	return nil
}
