// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"github.com/MKhiriev/go-diff-tree/models"
)

// ModeFunc returns the comparison mode currently selected by the host.
type ModeFunc func() models.Mode

// filtered hides the states the current mode does not accept.
type filtered struct {
	snap Snapshot
	mode ModeFunc
}

// Filtered wraps snap so that only states accepted by mode() are visible.
// The mode is read on every call, so a wrapper survives mode switches.
func Filtered(snap Snapshot, mode ModeFunc) Snapshot {
	return &filtered{snap: snap, mode: mode}
}

func (f *filtered) State(path models.ItemPath) (models.SyncState, bool) {
	st, ok := f.snap.State(path)
	if !ok || !f.mode().Accepts(st.Direction()) {
		return models.SyncState{}, false
	}
	return st, true
}

func (f *filtered) Descendants(path models.ItemPath) []models.SyncState {
	return f.keep(f.snap.Descendants(path))
}

func (f *filtered) All() []models.SyncState {
	return f.keep(f.snap.All())
}

func (f *filtered) keep(states []models.SyncState) []models.SyncState {
	mode := f.mode()
	out := states[:0:0]
	for _, st := range states {
		if mode.Accepts(st.Direction()) {
			out = append(out, st)
		}
	}
	return out
}
