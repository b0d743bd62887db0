// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package tmpl

import "testing"

func TestRenderBasic(t *testing.T) {
	e := NewEnv()
	out, err := e.Render("{{ data.text }}", map[string]any{
		"data": map[string]any{"text": "hello"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "hello" {
		t.Errorf("got %q, want %q", out, "hello")
	}
}

func TestRenderJoinFilter(t *testing.T) {
	e := NewEnv()
	out, err := e.Render(`{{ context.children|join:"," }}`, map[string]any{
		"context": map[string]any{"children": []string{"a", "b", "c"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "a,b,c" {
		t.Errorf("got %q, want %q", out, "a,b,c")
	}
}

func TestRenderMarkdownFilter(t *testing.T) {
	e := NewEnv()
	out, err := e.Render("{{ data.text|markdown }}", map[string]any{
		"data": map[string]any{"text": "**bold**"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<p><strong>bold</strong></p>\n" {
		t.Errorf("got %q", out)
	}
}

func TestCompileCache(t *testing.T) {
	e := NewEnv()
	src := "{{ data.text }}"
	if _, err := e.Render(src, map[string]any{"data": map[string]any{"text": "x"}}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(e.cache) != 1 {
		t.Fatalf("expected 1 cached template, got %d", len(e.cache))
	}
	if _, err := e.Render(src, map[string]any{"data": map[string]any{"text": "y"}}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(e.cache) != 1 {
		t.Fatalf("expected cache reuse, got %d entries", len(e.cache))
	}
}

func TestContainsTemplateSyntax(t *testing.T) {
	cases := map[string]bool{
		"plain text":       false,
		"{{ data.text }}":  true,
		"{% if x %}y{% endif %}": true,
	}
	for in, want := range cases {
		if got := ContainsTemplateSyntax(in); got != want {
			t.Errorf("ContainsTemplateSyntax(%q) = %v, want %v", in, got, want)
		}
	}
}
