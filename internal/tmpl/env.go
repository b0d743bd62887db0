// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package tmpl wraps pongo2 into the template environment the renderer
// needs: Jinja-style {{ }}/{% %} syntax, plus a markdown filter on top
// of pongo2's built-ins (join among them).
package tmpl

import (
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"smartpress/internal/markdown"
)

var registerOnce sync.Once

func registerFilters() {
	registerOnce.Do(func() {
		if err := pongo2.RegisterFilter("markdown", markdownFilter); err != nil {
			panic(fmt.Sprintf("tmpl: register markdown filter: %v", err))
		}
	})
}

// markdownFilter implements the "markdown" pongo2 filter: its input is
// Markdown source text, its output is safe HTML.
func markdownFilter(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	html, err := markdown.ToHTML(in.String())
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:markdown", OrigError: err}
	}
	return pongo2.AsSafeValue(html), nil
}

// Env compiles and executes widget templates and in-data mini-templates.
// Compiled templates are cached by source text since the same widget
// HTML is rendered once per element occurrence across a page.
type Env struct {
	mu    sync.Mutex
	cache map[string]*pongo2.Template
}

// NewEnv constructs a template environment with the markdown filter
// registered.
func NewEnv() *Env {
	registerFilters()
	return &Env{cache: make(map[string]*pongo2.Template)}
}

// Render compiles src (caching the compiled form) and executes it
// against ctx, a nested map as built by the rendering pass.
func (e *Env) Render(src string, ctx map[string]any) (string, error) {
	tpl, err := e.compile(src)
	if err != nil {
		return "", err
	}
	out, err := tpl.Execute(pongo2.Context(ctx))
	if err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return out, nil
}

func (e *Env) compile(src string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tpl, ok := e.cache[src]; ok {
		return tpl, nil
	}
	tpl, err := pongo2.FromString(src)
	if err != nil {
		return nil, fmt.Errorf("compile template: %w", err)
	}
	e.cache[src] = tpl
	return tpl, nil
}

// ContainsTemplateSyntax reports whether v looks like it needs
// templating before use — the rendering pass's data pre-templating step
// only compiles values that contain "{{" or "{%".
func ContainsTemplateSyntax(v string) bool {
	return strings.Contains(v, "{{") || strings.Contains(v, "{%")
}
