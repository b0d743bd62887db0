// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"context"

	"smartpress/internal/model"
)

// RenderPage renders every top-level child element in order, appending
// each fragment to the body, then copies head.meta/head.link onto the
// result. In strict mode (debug=false) any error aborts the whole
// render; in debug mode, recoverable element-level errors are caught
// per element and surfaced via RenderedPage.Errors instead.
func (r *Renderer) RenderPage(ctx context.Context, page *model.Page, debug bool) (*model.RenderedPage, error) {
	rp := model.NewRenderedPage(page.Path, page.Store, page.Title)

	for i := range page.Children {
		fragment, err := r.renderElement(ctx, &page.Children[i], initialContext(), rp, debug)
		if err != nil {
			return nil, err
		}
		rp.Body += fragment
	}

	if page.Head != nil {
		rp.Head = *page.Head
	}

	return rp, nil
}

// initialContext is the empty rendering context seen by a page's
// top-level elements, before any context-injecting widget augments it.
func initialContext() map[string]any {
	return map[string]any{}
}
