// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-diff-tree/internal/logger"
	"github.com/MKhiriev/go-diff-tree/models"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Err(err).Str("func", "writeJSON").Msg("cannot encode response")
	}
}

// writeError logs err and answers with the status it maps to.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)
	logger.FromContext(r.Context()).Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	http.Error(w, err.Error(), status)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// decodePaths reads a PathsRequest and normalizes its paths. Root paths are
// dropped.
func decodePaths(r *http.Request) (models.PathsRequest, error) {
	var req models.PathsRequest
	if err := decodeJSON(r, &req); err != nil {
		return req, err
	}

	paths := req.Paths[:0]
	for _, p := range req.Paths {
		if p = models.CleanPath(string(p)); !p.IsRoot() {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return req, ErrNoPaths
	}
	req.Paths = paths
	return req, nil
}
