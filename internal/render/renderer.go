// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render assembles a Page's element tree into a RenderedPage:
// widget resolution, context-injecting widgets, class resolution, data
// pre-templating, and CSS aggregation, with a strict/debug failure
// switch at the top-level page call.
package render

import (
	"net/http"

	"smartpress/internal/cache"
	"smartpress/internal/store"
	"smartpress/internal/tmpl"
)

// Renderer owns one store federation and one template environment, and
// renders pages against the process-wide cache handle.
type Renderer struct {
	federation *store.Federation
	env        *tmpl.Env
	cache      *cache.Handle
	httpClient *http.Client
}

// NewRenderer wires a Renderer from its three collaborators.
func NewRenderer(federation *store.Federation, env *tmpl.Env, cacheHandle *cache.Handle) *Renderer {
	return &Renderer{
		federation: federation,
		env:        env,
		cache:      cacheHandle,
		httpClient: &http.Client{},
	}
}
