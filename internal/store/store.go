// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the backend implementations (file, db, code) that
// load and persist widgets, pages, and CSS classes, plus the Federation
// that routes qualified paths across a named collection of them.
package store

import (
	"context"

	"smartpress/internal/model"
)

// Backend is the capability set every store implementation satisfies.
// A backend that doesn't support a capability no-ops it: nil/false/empty
// result, never an error, so the federation can fan out across a mixed
// set of backends without special-casing any one of them.
type Backend interface {
	LoadWidgetDefinition(ctx context.Context, localPath string) (*model.Widget, error)
	LoadPageDefinition(ctx context.Context, localPath string) (*model.Page, error)
	SavePageDefinition(ctx context.Context, localPath string, page *model.Page) error
	DeletePageDefinition(ctx context.Context, localPath string) (bool, error)
	GetPageList(ctx context.Context, offset, limit int, filter model.PageFilter) (model.PageListResult, error)
	GetWidgetList(ctx context.Context) (model.WidgetListResult, error)
	LoadCssClasses(ctx context.Context) (model.CssClassListResult, error)
	LoadCssClassDefinition(ctx context.Context, localPath string) (*model.CssClass, error)
}
