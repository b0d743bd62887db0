// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cache provides the process-wide key→value cache used by the
// dynamic url_context widget. All operations are best-effort: failures
// degrade to a cache miss rather than propagating, so a mis-configured
// backend never blocks the rest of the system.
package cache

import "context"

// Cache is the capability set every backend implements.
type Cache interface {
	// Get returns the cached value for key, and whether it was present.
	Get(ctx context.Context, key string) (string, bool)
	// Set unconditionally overwrites the value stored at key.
	Set(ctx context.Context, key, value string)
	// Delete removes key and reports whether a value existed.
	Delete(ctx context.Context, key string) bool
}
