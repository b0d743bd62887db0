// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"context"
	"html"
	"sort"
	"strings"

	"smartpress/internal/apperror"
	"smartpress/internal/model"
	"smartpress/internal/tmpl"
)

// renderElement is the per-element rendering pass: resolve the widget,
// derive a child context for context-injecting widgets, render children
// left-to-right, resolve classes, pre-template data values, render the
// widget's own template, and aggregate CSS. It mutates rp in place for
// CSS variables and (in debug mode) accumulated errors.
func (r *Renderer) renderElement(ctx context.Context, el *model.Element, rctx map[string]any, rp *model.RenderedPage, debug bool) (string, error) {
	// Step 1: resolve widget. Missing widget is always fatal, even in
	// debug mode — a structural failure, not a template/data one.
	resolved, err := r.federation.LoadWidgetDefinition(ctx, el.Widget)
	if err != nil {
		return "", err
	}
	widget := resolved.Widget

	// Step 7 (widget CSS): depends only on widget resolution, so it is
	// safe to record now regardless of what happens downstream.
	rp.CSSVariables["--"+widget.Name] = widget.CSS
	if el.ID != "" && len(el.Style) > 0 {
		rp.CSSVariables["#"+el.ID] = joinStyleDeclarations(el.Style)
	}

	// Step 2: context-injecting widgets.
	childCtx := rctx
	if resolved.IsCodeStore {
		switch localWidgetName(el.Widget) {
		case "static_context":
			childCtx, err = injectStaticContext(el, rctx)
		case "url_context":
			childCtx, err = r.injectURLContext(ctx, el, rctx)
		}
		if err != nil {
			dataErr := apperror.Data("context injection for "+el.Widget, err)
			if debug {
				return recoverElement(rp, dataErr), nil
			}
			return "", dataErr
		}
	}

	// Step 3: render children first, left-to-right.
	childFragments := make([]string, 0, len(el.Children))
	for i := range el.Children {
		fragment, err := r.renderElement(ctx, &el.Children[i], childCtx, rp, debug)
		if err != nil {
			return "", err
		}
		childFragments = append(childFragments, fragment)
	}

	// Step 4: resolve classes. A missing class is structural — fatal
	// even in debug mode.
	classNames := make([]string, 0, len(el.Classes))
	for _, qualified := range el.Classes {
		class, err := r.federation.LoadCssClassDefinition(ctx, qualified)
		if err != nil {
			return "", err
		}
		rp.CSSVariables["--"+class.Name] = class.CSS
		classNames = append(classNames, class.Name)
	}

	augmentedCtx := cloneContext(childCtx)
	augmentedCtx["children"] = childFragments
	augmentedCtx["classes"] = classNames

	// Step 5: pre-template data values containing template syntax.
	preTemplateCtx := map[string]any{
		"data":    dataWithID(el.Data, el.ID),
		"context": childCtx,
	}
	preTemplated := make(map[string]string, len(el.Data))
	for k, v := range el.Data {
		if !tmpl.ContainsTemplateSyntax(v) {
			preTemplated[k] = v
			continue
		}
		rendered, err := r.env.Render(v, preTemplateCtx)
		if err != nil {
			dataErr := apperror.Data("pre-template data field "+k, err)
			if debug {
				return recoverElement(rp, dataErr), nil
			}
			return "", dataErr
		}
		preTemplated[k] = rendered
	}

	// Step 6: render the widget template.
	widgetCtx := map[string]any{
		"data":    dataWithID(preTemplated, el.ID),
		"context": augmentedCtx,
	}
	out, err := r.env.Render(widget.HTML, widgetCtx)
	if err != nil {
		tmplErr := apperror.Template("render widget "+el.Widget, err)
		if debug {
			return recoverElement(rp, tmplErr), nil
		}
		return "", tmplErr
	}

	return out, nil
}

// recoverElement substitutes the debug-mode error fragment for an
// element and appends the error to the page's accumulated error list.
func recoverElement(rp *model.RenderedPage, err error) string {
	rp.Errors = append(rp.Errors, err)
	return `<pre style="color:red;">` + html.EscapeString(err.Error()) + `</pre>`
}

func localWidgetName(qualified string) string {
	_, name, ok := strings.Cut(qualified, "/")
	if !ok {
		return qualified
	}
	return name
}

func joinStyleDeclarations(style map[string]string) string {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+": "+style[k]+";")
	}
	return strings.Join(lines, "\n")
}

func dataWithID(data map[string]string, id string) map[string]any {
	out := make(map[string]any, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	out["id"] = id
	return out
}

func cloneContext(ctx map[string]any) map[string]any {
	out := make(map[string]any, len(ctx)+2)
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
