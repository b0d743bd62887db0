// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"smartpress/internal/model"
)

// injectStaticContext implements static_context: element.data["value"]
// is parsed as JSON and bound under element.data["key"] in a copy of
// rctx, which becomes the context for this element's subtree.
func injectStaticContext(el *model.Element, rctx map[string]any) (map[string]any, error) {
	key, ok := el.Data["key"]
	if !ok || key == "" {
		return nil, fmt.Errorf("static_context: missing \"key\"")
	}
	raw, ok := el.Data["value"]
	if !ok {
		raw = "null"
	}
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, fmt.Errorf("static_context: parse value: %w", err)
	}

	next := cloneContext(rctx)
	next[key] = value
	return next, nil
}

// injectURLContext implements url_context: the cache is checked first
// for element.data["url"]; on a miss, an HTTP GET fetches it, the raw
// body is cached, then parsed as JSON and bound under
// element.data["key"].
func (r *Renderer) injectURLContext(ctx context.Context, el *model.Element, rctx map[string]any) (map[string]any, error) {
	key, ok := el.Data["key"]
	if !ok || key == "" {
		return nil, fmt.Errorf("url_context: missing \"key\"")
	}
	url, ok := el.Data["url"]
	if !ok || url == "" {
		return nil, fmt.Errorf("url_context: missing \"url\"")
	}

	// Misses are not coalesced: concurrent renders that miss on the same
	// URL each fetch it, and the last Set wins.
	body, ok := r.cache.Current().Get(ctx, url)
	if !ok {
		fetched, err := r.fetchURL(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("url_context: fetch %s: %w", url, err)
		}
		body = fetched
		r.cache.Current().Set(ctx, url, body)
	}

	var value any
	if err := json.Unmarshal([]byte(body), &value); err != nil {
		return nil, fmt.Errorf("url_context: parse response from %s: %w", url, err)
	}

	next := cloneContext(rctx)
	next[key] = value
	return next, nil
}

func (r *Renderer) fetchURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "page-viewer")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
