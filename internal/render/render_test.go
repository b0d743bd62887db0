// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"smartpress/internal/apperror"
	"smartpress/internal/cache"
	"smartpress/internal/model"
	"smartpress/internal/store"
	"smartpress/internal/tmpl"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	body := `
widgets:
  - name: text
    description: text link
    html: "<a class=\"test-link\" id=\"{{data.id}}\">Hello, {{data.text}}!</a>"
    css: ".test-link { background: red; }"
  - name: columns
    description: columns container
    html: "<div class=\"columns column-{{data.id}}\" id=\"{{data.id}}\">{{context.children|join:\"\"}}</div>"
    css: ""
  - name: broken
    description: references an undefined filter, forcing a template error
    html: "<div>{{data.text|this_filter_does_not_exist}}</div>"
    css: ""
`
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	federation, err := store.NewFederation([]model.StoreConfig{
		{Name: "test", Type: "file", Path: dir, Tags: []string{"widgets"}},
		{Name: "code", Type: "code"},
	})
	if err != nil {
		t.Fatalf("new federation: %v", err)
	}

	return NewRenderer(federation, tmpl.NewEnv(), cache.NewHandle())
}

func elWithID(id, widget string, data map[string]string) model.Element {
	return model.Element{ID: id, Widget: widget, Data: data}
}

// S1 — Flat text widget.
func TestS1FlatTextWidget(t *testing.T) {
	r := newTestRenderer(t)
	page := &model.Page{
		Children: []model.Element{
			elWithID("a", "test/text", map[string]string{"text": "world"}),
		},
	}

	rp, err := r.RenderPage(context.Background(), page, false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<a class="test-link" id="a">Hello, world!</a>`
	if rp.Body != want {
		t.Errorf("body = %q, want %q", rp.Body, want)
	}
	if !strings.Contains(rp.GetCSS(), ".test-link { background: red; }") {
		t.Errorf("css = %q, missing widget rule", rp.GetCSS())
	}
}

// S2 — Columns with children.
func TestS2ColumnsWithChildren(t *testing.T) {
	r := newTestRenderer(t)
	page := &model.Page{
		Children: []model.Element{
			{
				ID:     "c",
				Widget: "test/columns",
				Data:   map[string]string{},
				Children: []model.Element{
					elWithID("t1", "test/text", map[string]string{"text": "C1"}),
					elWithID("t2", "test/text", map[string]string{"text": "C2"}),
				},
			},
		},
	}

	rp, err := r.RenderPage(context.Background(), page, false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<div class="columns column-c" id="c"><a class="test-link" id="t1">Hello, C1!</a><a class="test-link" id="t2">Hello, C2!</a></div>`
	if rp.Body != want {
		t.Errorf("body = %q, want %q", rp.Body, want)
	}
}

// S3 — Per-element style → CSS.
func TestS3ElementStyleToCSS(t *testing.T) {
	r := newTestRenderer(t)
	page := &model.Page{
		Children: []model.Element{
			{
				ID:     "x",
				Widget: "test/text",
				Data:   map[string]string{"text": "styled"},
				Style:  map[string]string{"background": "red"},
			},
		},
	}

	rp, err := r.RenderPage(context.Background(), page, false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	css := rp.GetCSS()
	if !strings.Contains(css, ".test-link { background: red; }") {
		t.Errorf("css missing widget rule: %q", css)
	}
	if !strings.Contains(css, "#x {\n background: red;\n }") {
		t.Errorf("css missing element style rule: %q", css)
	}
}

// S3b — an element with 2+ style properties must emit its declarations
// in a fixed (key-sorted) order on every render, not map iteration order.
func TestS3ElementStyleMultiKeyOrderIsDeterministic(t *testing.T) {
	r := newTestRenderer(t)
	page := func() *model.Page {
		return &model.Page{
			Children: []model.Element{
				{
					ID:     "x",
					Widget: "test/text",
					Data:   map[string]string{"text": "styled"},
					Style: map[string]string{
						"background": "red",
						"color":      "white",
						"margin":     "0",
						"padding":    "4px",
					},
				},
			},
		}
	}

	want := "#x {\n background: red;\ncolor: white;\nmargin: 0;\npadding: 4px;\n }"
	for i := 0; i < 10; i++ {
		rp, err := r.RenderPage(context.Background(), page(), false)
		if err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
		css := rp.GetCSS()
		if !strings.Contains(css, want) {
			t.Fatalf("iteration %d: css declarations not in key-sorted order: %q", i, css)
		}
	}
}

// S4 — Missing widget: fatal in both strict and debug mode.
func TestS4MissingWidgetAlwaysFatal(t *testing.T) {
	r := newTestRenderer(t)
	page := &model.Page{
		Children: []model.Element{
			elWithID("a", "test/nope", nil),
		},
	}

	for _, debug := range []bool{false, true} {
		_, err := r.RenderPage(context.Background(), page, debug)
		if err == nil {
			t.Fatalf("debug=%v: expected WidgetNotFound error", debug)
		}
		appErr, ok := err.(*apperror.Error)
		if !ok || appErr.Kind != apperror.KindNotFound {
			t.Fatalf("debug=%v: expected NotFound, got %v", debug, err)
		}
	}
}

// S5 — Broken template: recovered in debug mode, fatal in strict mode.
func TestS5BrokenTemplateRecoveredInDebug(t *testing.T) {
	r := newTestRenderer(t)
	page := &model.Page{
		Children: []model.Element{
			elWithID("a", "test/broken", nil),
		},
	}

	rp, err := r.RenderPage(context.Background(), page, true)
	if err != nil {
		t.Fatalf("debug render should not fail: %v", err)
	}
	if !strings.Contains(rp.Body, `<pre style="color:red;">`) {
		t.Errorf("body missing error box: %q", rp.Body)
	}
	if len(rp.Errors) != 1 {
		t.Fatalf("expected 1 accumulated error, got %d", len(rp.Errors))
	}

	_, err = r.RenderPage(context.Background(), page, false)
	if err == nil {
		t.Fatal("strict render should fail")
	}
}

// S6 — static_context binds a value visible to descendants via the
// pre-templated data double-render.
func TestS6StaticContext(t *testing.T) {
	r := newTestRenderer(t)
	page := &model.Page{
		Children: []model.Element{
			{
				Widget: "code/static_context",
				Data:   map[string]string{"key": "user", "value": `{"name":"Ada"}`},
				Children: []model.Element{
					elWithID("greeting", "test/text", map[string]string{"text": "{{context.user.name}}"}),
				},
			},
		},
	}

	rp, err := r.RenderPage(context.Background(), page, false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(rp.Body, "Hello, Ada!") {
		t.Errorf("body = %q, want it to contain %q", rp.Body, "Hello, Ada!")
	}
}

// Invariant 1: determinism — same inputs produce the same body and CSS.
func TestInvariantDeterministic(t *testing.T) {
	r := newTestRenderer(t)
	page := func() *model.Page {
		return &model.Page{
			Children: []model.Element{
				{
					ID:     "c",
					Widget: "test/columns",
					Children: []model.Element{
						elWithID("t1", "test/text", map[string]string{"text": "C1"}),
						elWithID("t2", "test/text", map[string]string{"text": "C2"}),
					},
				},
			},
		}
	}

	rp1, err := r.RenderPage(context.Background(), page(), false)
	if err != nil {
		t.Fatalf("render 1: %v", err)
	}
	rp2, err := r.RenderPage(context.Background(), page(), false)
	if err != nil {
		t.Fatalf("render 2: %v", err)
	}
	if rp1.Body != rp2.Body {
		t.Errorf("body differs across identical renders")
	}
	if rp1.GetCSS() != rp2.GetCSS() {
		t.Errorf("css differs across identical renders")
	}
}

// Invariant 3: CSS emission is stable under child-order permutation. The
// same two elements (fixed id/data/style) are rendered in both orders —
// only their position in the slice changes — since CSS is aggregated by
// element id, not by position.
func TestInvariantCSSStableUnderChildPermutation(t *testing.T) {
	r := newTestRenderer(t)
	elP := model.Element{ID: "p", Widget: "test/text", Data: map[string]string{"text": "A"}, Style: map[string]string{"x": "1"}}
	elQ := model.Element{ID: "q", Widget: "test/text", Data: map[string]string{"text": "B"}, Style: map[string]string{"x": "2"}}

	pageWithChildren := func(children []model.Element) *model.Page {
		return &model.Page{
			Children: []model.Element{
				{ID: "c", Widget: "test/columns", Children: children},
			},
		}
	}

	rpA, err := r.RenderPage(context.Background(), pageWithChildren([]model.Element{elP, elQ}), false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	rpB, err := r.RenderPage(context.Background(), pageWithChildren([]model.Element{elQ, elP}), false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if rpA.GetCSS() != rpB.GetCSS() {
		t.Errorf("css should be stable under permuted child order: %q vs %q", rpA.GetCSS(), rpB.GetCSS())
	}
}

// Invariant 7: debug-mode error count matches recoverable failures.
func TestInvariantDebugErrorCount(t *testing.T) {
	r := newTestRenderer(t)
	page := &model.Page{
		Children: []model.Element{
			elWithID("a", "test/broken", nil),
			elWithID("b", "test/broken", nil),
			elWithID("c", "test/text", map[string]string{"text": "fine"}),
		},
	}

	rp, err := r.RenderPage(context.Background(), page, true)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(rp.Errors) != 2 {
		t.Fatalf("expected 2 accumulated errors, got %d", len(rp.Errors))
	}
}
