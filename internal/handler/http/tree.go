// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-diff-tree/models"
)

func (h *Handler) getTreeState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.TreeStateResponse{
		Mode:       h.tree.Mode().String(),
		Builder:    h.tree.Builder(),
		ChangeSets: h.tree.ChangeSets(),
	})
}

func (h *Handler) getErrors(w http.ResponseWriter, r *http.Request) {
	recs := h.tree.Errors()
	if recs == nil {
		recs = []models.ErrorRecord{}
	}
	writeJSON(w, r, http.StatusOK, recs)
}

func (h *Handler) setMode(w http.ResponseWriter, r *http.Request) {
	var req models.ModeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.setMode", err)
		return
	}

	mode, err := models.ParseMode(req.Mode)
	if err != nil {
		writeError(w, r, "Handler.setMode", err)
		return
	}

	h.tree.SetMode(mode)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setBuilder(w http.ResponseWriter, r *http.Request) {
	var req models.BuilderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.setBuilder", err)
		return
	}

	if err := h.tree.SetBuilder(req.Builder); err != nil {
		writeError(w, r, "Handler.setBuilder", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// markersChanged is the marker change notification: the markers of the
// paths and their descendants are queried again.
func (h *Handler) markersChanged(w http.ResponseWriter, r *http.Request) {
	req, err := decodePaths(r)
	if err != nil {
		writeError(w, r, "Handler.markersChanged", err)
		return
	}

	if err = h.tree.MarkersChanged(r.Context(), req.Paths...); err != nil {
		writeError(w, r, "Handler.markersChanged", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) setBusy(w http.ResponseWriter, r *http.Request) {
	req, err := decodePaths(r)
	if err != nil {
		writeError(w, r, "Handler.setBusy", err)
		return
	}

	if err = h.tree.SetBusy(r.Context(), req.Busy, req.Paths...); err != nil {
		writeError(w, r, "Handler.setBusy", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
