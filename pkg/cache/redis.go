package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a Redis-backed cache for server deployments where multiple
// instances share computed networks and artifacts.
type RedisCache struct {
	client *redis.Client
}

// RedisConfig configures the Redis connection.
type RedisConfig struct {
	// Addr is the host:port of the Redis server.
	Addr string

	// Password is optional.
	Password string

	// DB selects the logical database (default 0).
	DB int
}

// NewRedisCache connects to Redis and verifies the connection with a ping.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	return &RedisCache{client: client}, nil
}

// Get retrieves a value from Redis. Transient failures are retried with
// backoff before surfacing.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := RetryWithBackoff(ctx, func() error {
		b, err := c.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		if err != nil {
			return Retryable(err)
		}
		data = b
		return nil
	})
	if errors.Is(err, ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value in Redis. Redis treats a zero ttl as no expiration,
// matching the Cache contract.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return RetryWithBackoff(ctx, func() error {
		if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
			return Retryable(err)
		}
		return nil
	})
}

// Delete removes a value from Redis.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ensure RedisCache implements Cache.
var _ Cache = (*RedisCache)(nil)
