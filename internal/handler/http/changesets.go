// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-diff-tree/models"
)

func (h *Handler) listChangeSets(w http.ResponseWriter, r *http.Request) {
	sets := h.tree.ChangeSets()
	if sets == nil {
		sets = []string{}
	}
	writeJSON(w, r, http.StatusOK, sets)
}

func (h *Handler) registerChangeSet(w http.ResponseWriter, r *http.Request) {
	var req models.ChangeSetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.registerChangeSet", err)
		return
	}

	def, err := req.Definition()
	if err != nil {
		writeError(w, r, "Handler.registerChangeSet", err)
		return
	}

	if err = h.tree.RegisterChangeSet(r.Context(), def); err != nil {
		writeError(w, r, "Handler.registerChangeSet", err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) unregisterChangeSet(w http.ResponseWriter, r *http.Request) {
	if err := h.tree.UnregisterChangeSet(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeError(w, r, "Handler.unregisterChangeSet", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addMembers(w http.ResponseWriter, r *http.Request) {
	req, err := decodePaths(r)
	if err != nil {
		writeError(w, r, "Handler.addMembers", err)
		return
	}

	if err = h.tree.AddToChangeSet(r.Context(), chi.URLParam(r, "name"), req.Paths...); err != nil {
		writeError(w, r, "Handler.addMembers", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeMembers(w http.ResponseWriter, r *http.Request) {
	req, err := decodePaths(r)
	if err != nil {
		writeError(w, r, "Handler.removeMembers", err)
		return
	}

	if err = h.tree.RemoveFromChangeSet(r.Context(), chi.URLParam(r, "name"), req.Paths...); err != nil {
		writeError(w, r, "Handler.removeMembers", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
