// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"fmt"
	"sync"
)

// Handle is a process-wide, hot-swappable cache slot. Readers fetch the
// current backend with Current; SetCache replaces it atomically under a
// reader-many/writer-one lock. A swap never invalidates work already
// borrowing the previous backend — the old Cache value simply stops
// being handed out to new callers.
type Handle struct {
	mu      sync.RWMutex
	current Cache
}

// NewHandle creates a Handle defaulting to an in-memory backend.
func NewHandle() *Handle {
	return &Handle{current: NewInMemCache()}
}

// Current returns the backend currently installed in the handle.
func (h *Handle) Current() Cache {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// SetCache replaces the installed backend. kind is "inmem" or "redis";
// url is required for "redis" and ignored otherwise.
func (h *Handle) SetCache(kind, url string) error {
	var next Cache
	switch kind {
	case "inmem", "":
		next = NewInMemCache()
	case "redis":
		rc, err := NewRedisCache(url)
		if err != nil {
			return fmt.Errorf("set cache: %w", err)
		}
		next = rc
	default:
		return fmt.Errorf("set cache: invalid backend %q", kind)
	}

	h.mu.Lock()
	h.current = next
	h.mu.Unlock()
	return nil
}
