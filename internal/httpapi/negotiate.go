// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package httpapi

import (
	"net/http"
	"path"
	"strings"
)

// negotiateFormat picks a response format from, in priority order: an
// explicit extension on the path, the "format" query parameter, the
// Accept header, and finally the default of "json".
func negotiateFormat(r *http.Request, wildcardPath string) string {
	if ext := path.Ext(wildcardPath); ext != "" {
		if f, ok := formatsByExt[ext]; ok {
			return f
		}
	}
	if f := r.URL.Query().Get("format"); f != "" {
		return f
	}
	accept := r.Header.Get("Accept")
	for _, candidate := range []struct {
		mime, format string
	}{
		{"text/html", "html"},
		{"text/css", "css"},
		{"application/pdf", "pdf"},
	} {
		if strings.Contains(accept, candidate.mime) {
			return candidate.format
		}
	}
	return "json"
}

var formatsByExt = map[string]string{
	".html": "html",
	".css":  "css",
	".pdf":  "pdf",
	".json": "json",
}

// stripKnownExt removes a recognized format extension from p, since the
// extension is a format hint, not part of the store-relative path.
func stripKnownExt(p string) string {
	ext := path.Ext(p)
	if _, ok := formatsByExt[ext]; ok {
		return strings.TrimSuffix(p, ext)
	}
	return p
}
