// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a networked cache backend. Retention is delegated to the
// remote service — this layer sets no TTL of its own.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a RedisCache from a connection URL
// ("redis://host:port/db").
func NewRedisCache(url string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisCache{client: redis.NewClient(opts)}, nil
}

// Get is best-effort: any error (network, miss, decode) is swallowed
// into a cache miss — the cache is never authoritative.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	v, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("cache get failed", "key", key, "error", err)
		return "", false
	}
	return v, true
}

// Set is best-effort: a failed write is logged and otherwise ignored.
func (c *RedisCache) Set(ctx context.Context, key, value string) {
	if err := c.client.Set(ctx, key, value, 0).Err(); err != nil {
		slog.Warn("cache set failed", "key", key, "error", err)
	}
}

// Delete reports true only when the key was known to exist before removal.
func (c *RedisCache) Delete(ctx context.Context, key string) bool {
	n, err := c.client.Del(ctx, key).Result()
	if err != nil {
		slog.Warn("cache delete failed", "key", key, "error", err)
		return false
	}
	return n > 0
}
