// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects the diff tree to a comparison engine living
// outside the process.
//
// An [Engine] answers with whole snapshots. [RemoteSource] turns those
// snapshots into the delta stream the tree consumes: the first answer seeds
// its SyncSet with a reset, later answers are diffed by SyncSet.Replace so
// only changed items reach the tree. [PollJob] asks the engine again on a
// ticker.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so callers can use [errors.Is] regardless of transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-diff-tree/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_mock.go -package=mock

// Engine is a comparison engine reachable from this process.
type Engine interface {
	// States returns the current comparison result of every item the
	// engine knows about, in-sync items included.
	States(ctx context.Context) ([]models.SyncState, error)

	// Errors returns the items the engine failed to compare.
	Errors(ctx context.Context) ([]models.ErrorRecord, error)
}
