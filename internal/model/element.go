// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package model

import (
	"unicode"

	"github.com/google/uuid"
)

// Element is one instance of a widget in a page, with data, children,
// style, and classes. widget holds the qualified "store/name" reference.
type Element struct {
	ID       string            `yaml:"id" json:"id"`
	Widget   string            `yaml:"widget" json:"widget"`
	Data     map[string]string `yaml:"data" json:"data"`
	Children []Element         `yaml:"children" json:"children"`
	Style    map[string]string `yaml:"style" json:"style"`
	Classes  []string          `yaml:"classes" json:"classes"`
}

// Fix normalizes an element in place and recursively over its children:
// an empty id is replaced with a freshly generated UUID, prefixed with
// "id_" when the first character would otherwise be a digit (ids must
// not start with a digit so they remain valid CSS identifiers).
func (e *Element) Fix() {
	if e.ID == "" {
		e.ID = uuid.New().String()
		if r := []rune(e.ID)[0]; unicode.IsDigit(r) {
			e.ID = "id_" + e.ID
		}
	}
	for i := range e.Children {
		e.Children[i].Fix()
	}
}
