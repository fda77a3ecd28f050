// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package source holds the change-source side of the diff tree: the
// snapshot of per-item sync states reported by a comparison engine and the
// delta events announcing changes to that snapshot.
//
// SyncSet is the in-process implementation. Remote engines (see package
// adapter) feed a SyncSet, so everything downstream consumes one shape of
// snapshot and one stream of events.
package source

import (
	"context"

	"github.com/MKhiriev/go-diff-tree/internal/events"
	"github.com/MKhiriev/go-diff-tree/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

// Snapshot is the read side of a set of out-of-sync states, as seen by tree
// builders.
type Snapshot interface {
	// State returns the state recorded for path.
	State(path models.ItemPath) (models.SyncState, bool)

	// Descendants returns the states of every strict descendant of path,
	// ordered by path.
	Descendants(path models.ItemPath) []models.SyncState

	// All returns every state, ordered by path.
	All() []models.SyncState
}

// Source is a change source the diff tree connects to.
type Source interface {
	Snapshot

	// Connect registers fn for delta events. Delivery happens on the
	// producer's goroutine. Connecting may involve a long external call; it
	// honours ctx and returns ctx.Err() when canceled.
	Connect(ctx context.Context, fn events.Handler[models.DeltaEvent]) (unsubscribe func(), err error)

	// Errors returns the items the engine failed to compare.
	Errors() []models.ErrorRecord
}
