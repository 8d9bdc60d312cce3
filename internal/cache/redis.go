package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "trans:"

// RedisCache is a Cache backend on Redis, shared across processes. Expiry is
// delegated to the key TTL.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCache creates a Redis-backed cache with the given TTL.
func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached content for (text, locale). An expired key has been
// dropped by Redis and reads as a miss.
func (c *RedisCache) Get(ctx context.Context, text, locale string) (string, bool, error) {
	content, err := c.rdb.Get(ctx, redisKeyPrefix+Key(text, locale)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return content, true, nil
}

// Set stores content for (text, locale) with the cache TTL, overwriting any
// previous value.
func (c *RedisCache) Set(ctx context.Context, text, locale, content string) error {
	return c.rdb.Set(ctx, redisKeyPrefix+Key(text, locale), content, c.ttl).Err()
}
