// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-diff-tree/internal/logger"
	"github.com/MKhiriev/go-diff-tree/internal/service"
	"github.com/MKhiriev/go-diff-tree/models"
)

type Handler struct {
	tree     service.DiffTreeService
	gatherer prometheus.Gatherer
	info     models.AppBuildInfo

	logger *logger.Logger
}

// NewHandler creates the control handler. gatherer may be nil, in which
// case /metrics is not routed.
func NewHandler(tree service.DiffTreeService, gatherer prometheus.Gatherer, info models.AppBuildInfo, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	log.Info().Msg("http handler created")
	return &Handler{
		tree:     tree,
		gatherer: gatherer,
		info:     info,
		logger:   log,
	}
}
