// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"

	"smartpress/internal/model"
)

// CodeStore is a pure in-process backend exposing exactly two built-in
// widgets, static_context and url_context. Their HTML bodies only emit
// their rendered children; their real effect is side-effectual context
// injection, carried out by the renderer (which owns the cache and HTTP
// client these widgets need) rather than by the store itself.
type CodeStore struct{}

// NewCodeStore constructs a CodeStore. It carries no state.
func NewCodeStore() *CodeStore { return &CodeStore{} }

var codeWidgets = map[string]model.Widget{
	"static_context": {
		Name:        "static_context",
		Description: "Binds a static JSON value into the context for its children.",
		HTML:        "{% for child in context.children %}{{ child|safe }}{% endfor %}",
		Icon:        "static_context",
		Editor: []model.WidgetEditor{
			{Type: "text", Name: "key", Label: "Variable name", Placeholder: "Enter variable name"},
			{Type: "textarea", Name: "value", Label: "Static JSON value", Placeholder: "Enter static JSON"},
		},
	},
	"url_context": {
		Name:        "url_context",
		Description: "Fetches JSON from a URL (cached) and binds it into the context for its children.",
		HTML:        "{% for child in context.children %}{{ child|safe }}{% endfor %}",
		Icon:        "url_context",
		Editor: []model.WidgetEditor{
			{Type: "text", Name: "key", Label: "Variable name", Placeholder: "Enter variable name"},
			{Type: "text", Name: "url", Label: "URL", Placeholder: "Enter URL"},
		},
	},
}

func (c *CodeStore) LoadWidgetDefinition(_ context.Context, localPath string) (*model.Widget, error) {
	w, ok := codeWidgets[localPath]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (c *CodeStore) GetWidgetList(_ context.Context) (model.WidgetListResult, error) {
	return model.WidgetListResult{
		Count: len(codeWidgets),
		Results: []model.WidgetSummary{
			{Name: "static_context", Description: codeWidgets["static_context"].Description, Icon: "static_context", Editor: codeWidgets["static_context"].Editor},
			{Name: "url_context", Description: codeWidgets["url_context"].Description, Icon: "url_context", Editor: codeWidgets["url_context"].Editor},
		},
	}, nil
}

func (c *CodeStore) LoadPageDefinition(_ context.Context, _ string) (*model.Page, error) {
	return nil, nil
}

func (c *CodeStore) SavePageDefinition(_ context.Context, _ string, _ *model.Page) error {
	return nil
}

func (c *CodeStore) DeletePageDefinition(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (c *CodeStore) GetPageList(_ context.Context, _, _ int, _ model.PageFilter) (model.PageListResult, error) {
	return model.PageListResult{}, nil
}

func (c *CodeStore) LoadCssClassDefinition(_ context.Context, _ string) (*model.CssClass, error) {
	return nil, nil
}

func (c *CodeStore) LoadCssClasses(_ context.Context) (model.CssClassListResult, error) {
	return model.CssClassListResult{}, nil
}
