// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package model holds the data types shared by the store federation and
// the renderer: widgets, page/element trees, CSS classes, and the
// rendered-page output.
package model

// Widget is a reusable HTML template plus CSS plus editor hints. It is
// immutable once loaded and identified globally by "store_name/widget_name".
type Widget struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Icon        string         `yaml:"icon" json:"icon"`
	HTML        string         `yaml:"html" json:"html_template"`
	CSS         string         `yaml:"css" json:"css"`
	Editor      []WidgetEditor `yaml:"editor" json:"editor_spec"`
}

// WidgetEditor describes one field of a widget's authoring form.
type WidgetEditor struct {
	Type        string               `yaml:"type" json:"type"`
	Label       string               `yaml:"label" json:"label"`
	Name        string               `yaml:"name" json:"name"`
	Placeholder string               `yaml:"placeholder" json:"placeholder,omitempty"`
	Options     []WidgetEditorOption `yaml:"options" json:"options,omitempty"`
}

// WidgetEditorOption is one selectable value in a WidgetEditor of type "select".
type WidgetEditorOption struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
	Icon  string `yaml:"icon" json:"icon,omitempty"`
}

// WidgetSummary is the catalog form of a Widget returned by listings: the
// qualified name, with HTML/CSS bodies cleared (the listing is a catalog,
// not a fetch).
type WidgetSummary struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Editor      []WidgetEditor `json:"editor_spec"`
}

// WidgetListResult is the response of a federation-wide widget listing.
type WidgetListResult struct {
	Count   int             `json:"count"`
	Results []WidgetSummary `json:"results"`
}
