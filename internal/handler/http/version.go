// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-diff-tree/models"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.VersionResponse{
		Version: h.info.BuildVersion(),
		Date:    h.info.BuildDate(),
		Commit:  h.info.BuildCommit(),
	})
}
