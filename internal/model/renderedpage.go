// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package model

import (
	"sort"
	"strings"
	"time"
)

// RenderedPage is the output of one render pass: the assembled body,
// aggregated CSS variables, and any non-fatal errors collected in debug
// mode. Owned by the caller once the pass completes.
type RenderedPage struct {
	Path         string
	Store        string
	Title        string
	Body         string
	Headers      map[string]string
	ResponseCode int
	Head         Head
	CSSVariables map[string]string
	Errors       []error
	ElapsedStart time.Time
}

// NewRenderedPage seeds a RenderedPage from a page's identity, stamping
// the monotonic start time used to compute elapsed render duration.
func NewRenderedPage(path, store, title string) *RenderedPage {
	return &RenderedPage{
		Path:         path,
		Store:        store,
		Title:        title,
		Headers:      make(map[string]string),
		ResponseCode: 200,
		CSSVariables: make(map[string]string),
		ElapsedStart: time.Now(),
	}
}

// GetCSS produces the aggregated CSS for the page: keys starting with
// "--" emit their value verbatim (a raw CSS fragment); any other key is
// treated as a selector and its value is wrapped in a "{ ... }" block.
// Fragments are sorted lexicographically by key before joining so the
// output is a pure function of the set of writes, independent of
// insertion order.
func (rp *RenderedPage) GetCSS() string {
	keys := make([]string, 0, len(rp.CSSVariables))
	for k := range rp.CSSVariables {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fragments := make([]string, 0, len(keys))
	for _, k := range keys {
		v := rp.CSSVariables[k]
		if strings.HasPrefix(k, "--") {
			fragments = append(fragments, v)
		} else {
			fragments = append(fragments, k+" {\n "+v+"\n }\n")
		}
	}
	return strings.Join(fragments, "\n")
}

// RenderFullHTMLPage wraps the body in a fixed document shell: doctype,
// meta viewport, a <style> block holding GetCSS's output, and the body.
func (rp *RenderedPage) RenderFullHTMLPage() string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<title>")
	b.WriteString(rp.Title)
	b.WriteString("</title>\n")
	for _, m := range rp.Head.Meta {
		b.WriteString("<meta name=\"" + m.Name + "\" content=\"" + m.Content + "\">\n")
	}
	for _, l := range rp.Head.Link {
		b.WriteString("<link href=\"" + l.Href + "\" rel=\"" + l.Rel + "\">\n")
	}
	b.WriteString("<style>\n")
	b.WriteString(rp.GetCSS())
	b.WriteString("\n</style>\n</head>\n<body>\n")
	b.WriteString(rp.Body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
