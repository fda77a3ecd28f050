// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/api/version", h.getVersion)
	if h.gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	router.Route("/api/tree", func(r chi.Router) {
		r.Get("/", h.getTreeState)
		r.Get("/errors", h.getErrors)
		r.Put("/mode", h.setMode)
		r.Put("/builder", h.setBuilder)
		r.Post("/markers", h.markersChanged)
		r.Post("/busy", h.setBusy)
	})

	router.Route("/api/changesets", func(r chi.Router) {
		r.Get("/", h.listChangeSets)
		r.Post("/", h.registerChangeSet)
		r.Delete("/{name}", h.unregisterChangeSet)
		r.Post("/{name}/members", h.addMembers)
		r.Delete("/{name}/members", h.removeMembers)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
