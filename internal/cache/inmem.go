// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"sync"
)

// InMemCache is a process-local map cache. It has no TTL or eviction and
// grows unboundedly — intended for testing or small deployments, not for
// production scale.
type InMemCache struct {
	mu    sync.RWMutex
	store map[string]string
}

// NewInMemCache creates an empty in-memory cache.
func NewInMemCache() *InMemCache {
	return &InMemCache{store: make(map[string]string)}
}

func (c *InMemCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.store[key]
	return v, ok
}

func (c *InMemCache) Set(_ context.Context, key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = value
}

func (c *InMemCache) Delete(_ context.Context, key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, existed := c.store[key]
	delete(c.store, key)
	return existed
}
