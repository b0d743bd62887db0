// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"smartpress/internal/apperror"
	"smartpress/internal/model"
)

// badRequest wraps a malformed-input error (not a federation path
// error) as a 400, matching spec's InvalidPath status without
// pretending the failure was a missing store separator.
func badRequest(err error) *apperror.Error {
	return &apperror.Error{Kind: apperror.KindInvalidPath, Msg: "invalid request", Err: err}
}

func (s *Server) handlePageGet(w http.ResponseWriter, r *http.Request) {
	storeName := chi.URLParam(r, "store")
	wildcard := chi.URLParam(r, "*")
	qualified := storeName + "/" + wildcard

	page, err := s.federation.LoadPageDefinition(r.Context(), qualified)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handlePageSave(w http.ResponseWriter, r *http.Request) {
	storeName := chi.URLParam(r, "store")
	wildcard := chi.URLParam(r, "*")
	qualified := storeName + "/" + wildcard

	var page model.Page
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		writeError(w, badRequest(err))
		return
	}
	page.Fix()

	if err := s.federation.SavePageDefinition(r.Context(), qualified, &page); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handlePageDelete(w http.ResponseWriter, r *http.Request) {
	storeName := chi.URLParam(r, "store")
	wildcard := chi.URLParam(r, "*")
	qualified := storeName + "/" + wildcard

	existed, err := s.federation.DeletePageDefinition(r.Context(), qualified)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": existed})
}

func (s *Server) handlePageList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	offset, _ := strconv.Atoi(q.Get("offset"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := model.PageFilter{}
	if t := q.Get("type"); t != "" {
		filter["type"] = t
	}
	if store := q.Get("store"); store != "" {
		filter["store"] = store
	}

	result, err := s.federation.GetPageList(r.Context(), offset, limit, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
