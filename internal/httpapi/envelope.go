// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package httpapi is the thin HTTP surface that exercises the renderer
// and store federation: render/page/catalog routes, content negotiation,
// and the stable JSON error envelope.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"smartpress/internal/apperror"
	"smartpress/internal/model"
)

type headEnvelope struct {
	CSS  string          `json:"css"`
	JS   string          `json:"js"`
	Meta []model.MetaTag `json:"meta"`
	Link []model.LinkTag `json:"link"`
}

type httpEnvelope struct {
	Headers      map[string]string `json:"headers"`
	ResponseCode int               `json:"response_code"`
}

type renderEnvelope struct {
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	Store     string       `json:"store"`
	Path      string       `json:"path"`
	Head      headEnvelope `json:"head"`
	HTTP      httpEnvelope `json:"http"`
	ElapsedMs int64        `json:"elapsed_ms"`
}

func writeRenderedJSON(w http.ResponseWriter, rp *model.RenderedPage) {
	env := renderEnvelope{
		Title: rp.Title,
		Body:  rp.Body,
		Store: rp.Store,
		Path:  rp.Path,
		Head: headEnvelope{
			CSS:  rp.GetCSS(),
			Meta: rp.Head.Meta,
			Link: rp.Head.Link,
		},
		HTTP: httpEnvelope{
			Headers:      rp.Headers,
			ResponseCode: rp.ResponseCode,
		},
		ElapsedMs: time.Since(rp.ElapsedStart).Milliseconds(),
	}
	writeJSON(w, http.StatusOK, env)
}

// errorEnvelope is the stable error response shape: details, code,
// status, and the path/store that were involved, when known.
type errorEnvelope struct {
	Details string `json:"details"`
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Path    string `json:"path,omitempty"`
	Store   string `json:"store,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	appErr, ok := err.(*apperror.Error)
	if !ok {
		appErr = apperror.Internal("internal error", err)
	}
	if appErr.Kind == apperror.KindInternal {
		slog.Error("internal error serving request", "error", appErr.Err)
	}
	writeJSON(w, appErr.HTTPStatus(), errorEnvelope{
		Details: appErr.Error(),
		Code:    appErr.Code(),
		Status:  appErr.HTTPStatus(),
		Path:    appErr.Path,
		Store:   appErr.Store,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encode response", "error", err)
	}
}
