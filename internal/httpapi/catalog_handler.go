// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleWidgetList(w http.ResponseWriter, r *http.Request) {
	result, err := s.federation.GetWidgetList(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleStoreList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"stores": s.federation.Stores()})
}

func (s *Server) handleClassList(w http.ResponseWriter, r *http.Request) {
	result, err := s.federation.LoadCssClasses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleClassGet(w http.ResponseWriter, r *http.Request) {
	storeName := chi.URLParam(r, "store")
	name := chi.URLParam(r, "name")

	class, err := s.federation.LoadCssClassDefinition(r.Context(), storeName+"/"+name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, class)
}
