// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package apperror holds the stable error taxonomy shared by the
// renderer, the store federation, and the HTTP surface. Every error the
// core returns across a package boundary is one of these kinds so the
// HTTP surface can build the JSON error envelope without inspecting
// error strings.
package apperror

import "fmt"

// Kind classifies an Error for HTTP-status mapping and for the renderer's
// strict/debug recovery decision.
type Kind int

const (
	// KindNotFound covers a missing page, widget, store, or CSS class.
	// Fatal at render time even in debug mode — it is a structural
	// failure, not a template/data failure.
	KindNotFound Kind = iota
	// KindInvalidPath covers a malformed path or request: a federation
	// path missing its "/" separator, a "|" fallback list given to a
	// write/delete, or an undecodable request body.
	KindInvalidPath
	// KindTemplate covers a template compile/render failure. Recovered
	// in debug mode.
	KindTemplate
	// KindData covers a JSON parse failure in static_context/url_context
	// data. Recovered in debug mode.
	KindData
	// KindBackend covers I/O, DB, HTTP fetch, or cache failures.
	KindBackend
	// KindConfig covers a configuration parse/read failure.
	KindConfig
	// KindInternal is the catch-all.
	KindInternal
)

// Error is a taxonomy-tagged error. Code and HTTPStatus give the HTTP
// surface everything it needs to build the stable error envelope from
// spec.md §6.3 without string-matching on Err.
type Error struct {
	Kind    Kind
	Subject string // "page", "widget", "store", "css_class" — disambiguates KindNotFound's Code
	Msg     string
	Err     error
	Path    string
	Store   string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Code returns the stable string code used in the JSON error envelope.
func (e *Error) Code() string {
	switch e.Kind {
	case KindNotFound:
		switch e.Subject {
		case "store":
			return "STORE_NOT_FOUND"
		case "widget":
			return "WIDGET_NOT_FOUND"
		case "css_class":
			return "CSS_CLASS_NOT_FOUND"
		default:
			return "PAGE_NOT_FOUND"
		}
	case KindInvalidPath:
		return "INVALID_PATH"
	case KindTemplate, KindData:
		return "RENDER_ERROR"
	case KindBackend:
		return "BACKEND_ERROR"
	case KindConfig:
		return "CONFIG_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// HTTPStatus returns the HTTP status code matching this error's kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return 404
	case KindInvalidPath:
		return 400
	default:
		return 500
	}
}

// Recoverable reports whether this error kind is one of the two
// recoverable points in the rendering pass (template render, dynamic
// context derivation) per spec.md §4.5's debug-mode failure switch.
func (e *Error) Recoverable() bool {
	return e.Kind == KindTemplate || e.Kind == KindData
}

// NotFound builds a KindNotFound error naming what subject ("page",
// "widget", "store", "css_class"), store, and path were missing.
func NotFound(subject, msg, store, path string) *Error {
	return &Error{Kind: KindNotFound, Subject: subject, Msg: msg, Store: store, Path: path}
}

// InvalidPath builds a KindInvalidPath error.
func InvalidPath(path string) *Error {
	return &Error{Kind: KindInvalidPath, Msg: "invalid path: missing store separator", Path: path}
}

// Template builds a KindTemplate error wrapping the underlying template
// engine failure.
func Template(msg string, err error) *Error {
	return &Error{Kind: KindTemplate, Msg: msg, Err: err}
}

// Data builds a KindData error wrapping a JSON-decode or missing-field
// failure from static_context/url_context.
func Data(msg string, err error) *Error {
	return &Error{Kind: KindData, Msg: msg, Err: err}
}

// Backend builds a KindBackend error wrapping an I/O/DB/HTTP/cache failure.
func Backend(msg string, err error) *Error {
	return &Error{Kind: KindBackend, Msg: msg, Err: err}
}

// Config builds a KindConfig error wrapping a parse/read failure.
func Config(msg string, err error) *Error {
	return &Error{Kind: KindConfig, Msg: msg, Err: err}
}

// Internal builds a catch-all KindInternal error.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}
