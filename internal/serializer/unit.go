// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"context"

	"github.com/MKhiriev/go-diff-tree/internal/utils"
	"github.com/MKhiriev/go-diff-tree/models"
)

type unitKind int

const (
	unitDelta unitKind = iota
	unitReset
	unitLabels
	unitBusy
	unitAction
	unitFlush
)

func (k unitKind) String() string {
	switch k {
	case unitDelta:
		return "delta"
	case unitReset:
		return "reset"
	case unitLabels:
		return "labels"
	case unitBusy:
		return "busy"
	case unitAction:
		return "action"
	case unitFlush:
		return "flush"
	default:
		return "unknown"
	}
}

// Action is a caller-supplied unit of work.
type Action func(ctx context.Context) error

// unit is one FIFO entry of the queue.
type unit struct {
	id   string
	kind unitKind

	// gen is the reset generation the unit was queued under.
	gen int64

	delta models.DeltaEvent
	keys  []models.NodeKey
	busy  bool

	action         Action
	onPresentation bool
	done           chan error
}

var ids = utils.NewUUIDGenerator()

func newUnit(kind unitKind, gen int64) *unit {
	return &unit{id: ids.Generate(), kind: kind, gen: gen}
}

// BatchSummary describes the units drained in one worker iteration. The
// delay policy uses it to choose how long to wait before flushing labels.
type BatchSummary struct {
	Units       int
	Deltas      int
	Labels      int
	BusyChanged bool
	Reset       bool
}

func (s *BatchSummary) add(u *unit) {
	s.Units++
	switch u.kind {
	case unitDelta:
		s.Deltas++
	case unitLabels:
		s.Labels++
	case unitBusy:
		s.BusyChanged = true
	case unitReset:
		s.Reset = true
	}
}
