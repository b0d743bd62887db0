// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package httpapi

import (
	"github.com/go-chi/chi/v5"

	"smartpress/internal/config"
	appmiddleware "smartpress/internal/middleware"
	"smartpress/internal/render"
	"smartpress/internal/store"
)

// Server holds the collaborators every handler needs.
type Server struct {
	federation *store.Federation
	renderer   *render.Renderer
	config     *config.Manager
}

// NewServer wires a Server from its collaborators.
func NewServer(federation *store.Federation, renderer *render.Renderer, cfg *config.Manager) *Server {
	return &Server{federation: federation, renderer: renderer, config: cfg}
}

// NewRouter builds the chi router exposing this server's handlers.
func NewRouter(s *Server) chi.Router {
	r := chi.NewRouter()
	r.Use(appmiddleware.Recoverer)
	r.Use(appmiddleware.Logger)

	r.Get("/render/{store}/*", s.handleRenderGet)
	r.Post("/render/", s.handleRenderPost)

	r.Get("/page/{store}/*", s.handlePageGet)
	r.Post("/page/{store}/*", s.handlePageSave)
	r.Put("/page/{store}/*", s.handlePageSave)
	r.Delete("/page/{store}/*", s.handlePageDelete)

	r.Get("/page", s.handlePageList)
	r.Get("/widget", s.handleWidgetList)
	r.Get("/store", s.handleStoreList)
	r.Get("/classes", s.handleClassList)
	r.Get("/classes/{store}/{name}", s.handleClassGet)

	return r
}
