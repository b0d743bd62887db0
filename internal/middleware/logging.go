// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package middleware provides the HTTP ambient concerns shared by every
// route: structured request logging and panic recovery.
package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"smartpress/internal/apperror"
)

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.statusCode = http.StatusOK
		rw.written = true
	}
	return rw.ResponseWriter.Write(b)
}

// Logger records method, path, status code, and request duration for
// every HTTP request.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"duration", time.Since(start).String(),
			"remote", r.RemoteAddr,
		)
	})
}

// recoveryEnvelope mirrors httpapi's error envelope shape so a panic
// inside a render/page/catalog handler still returns the same
// {details, code, status} a handled apperror.Error would, instead of a
// plain-text body the rest of the API never produces.
type recoveryEnvelope struct {
	Details string `json:"details"`
	Code    string `json:"code"`
	Status  int    `json:"status"`
}

// Recoverer catches panics in downstream handlers, logs the stack trace,
// and writes the stable JSON error envelope instead of crashing the
// server or falling back to a bare 500 page.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				appErr := apperror.Internal("panic recovered", nil)
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(appErr.HTTPStatus())
				json.NewEncoder(w).Encode(recoveryEnvelope{
					Details: "internal error",
					Code:    appErr.Code(),
					Status:  appErr.HTTPStatus(),
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
