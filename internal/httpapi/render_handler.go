// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"smartpress/internal/model"
)

// handleRenderGet renders the page addressed by {store}/*, negotiating
// the response format from the path extension, "format" query
// parameter, or Accept header.
func (s *Server) handleRenderGet(w http.ResponseWriter, r *http.Request) {
	storeName := chi.URLParam(r, "store")
	wildcard := chi.URLParam(r, "*")
	qualified := storeName + "/" + stripKnownExt(wildcard)

	page, err := s.federation.LoadPageDefinition(r.Context(), qualified)
	if err != nil {
		writeError(w, err)
		return
	}
	s.renderAndRespond(w, r, page, wildcard)
}

// handleRenderPost renders a page supplied directly in the request body
// rather than loaded from a store.
func (s *Server) handleRenderPost(w http.ResponseWriter, r *http.Request) {
	var page model.Page
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		writeError(w, badRequest(err))
		return
	}
	s.renderAndRespond(w, r, &page, "")
}

func (s *Server) renderAndRespond(w http.ResponseWriter, r *http.Request, page *model.Page, wildcard string) {
	page.Fix()
	debug := r.URL.Query().Get("debug") == "true"

	rp, err := s.renderer.RenderPage(r.Context(), page, debug)
	if err != nil {
		writeError(w, err)
		return
	}

	switch negotiateFormat(r, wildcard) {
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(rp.RenderFullHTMLPage()))
	case "css":
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write([]byte(rp.GetCSS()))
	case "pdf":
		s.handlePDFExport(w, rp)
	default:
		writeRenderedJSON(w, rp)
	}
}
