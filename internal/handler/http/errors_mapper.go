// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-diff-tree/internal/changeset"
	"github.com/MKhiriev/go-diff-tree/internal/serializer"
	"github.com/MKhiriev/go-diff-tree/internal/service"
	"github.com/MKhiriev/go-diff-tree/internal/tree"
	"github.com/MKhiriev/go-diff-tree/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,
	ErrNoPaths:     http.StatusBadRequest,

	models.ErrUnknownMode:      http.StatusBadRequest,
	models.ErrUnknownDirection: http.StatusBadRequest,
	tree.ErrUnknownStrategy:    http.StatusBadRequest,

	changeset.ErrBadPattern:     http.StatusBadRequest,
	changeset.ErrInvalidSetName: http.StatusBadRequest,
	changeset.ErrDuplicateSet:   http.StatusConflict,
	changeset.ErrUnknownSet:     http.StatusNotFound,

	service.ErrCanceled: http.StatusServiceUnavailable,
	serializer.ErrClosed: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
