// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package model

// CssClass is a reusable named block of CSS. Qualified as
// "store_name/class_name".
type CssClass struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	CSS         string    `yaml:"css" json:"css"`
	Tags        []string `yaml:"tags" json:"tags"`
}

// CssClassSummary is the listing form of a CssClass: name, description,
// and tags only (no CSS body).
type CssClassSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// CssClassListResult is the response of a federation-wide class listing.
type CssClassListResult struct {
	Count   int               `json:"count"`
	Results []CssClassSummary `json:"results"`
}
