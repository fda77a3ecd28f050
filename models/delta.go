// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DeltaEvent is one notification from a change source. A reset event
// invalidates everything previously reported; its other fields are ignored.
type DeltaEvent struct {
	Added   []SyncState `json:"added,omitempty"`
	Removed []ItemPath  `json:"removed,omitempty"`
	Changed []SyncState `json:"changed,omitempty"`
	Reset   bool        `json:"reset,omitempty"`
}

// ResetEvent returns a delta event carrying only the reset signal.
func ResetEvent() DeltaEvent {
	return DeltaEvent{Reset: true}
}

// IsEmpty reports whether the event carries nothing to apply.
func (e DeltaEvent) IsEmpty() bool {
	return !e.Reset && len(e.Added) == 0 && len(e.Removed) == 0 && len(e.Changed) == 0
}

// Size is the number of items the event touches.
func (e DeltaEvent) Size() int {
	return len(e.Added) + len(e.Removed) + len(e.Changed)
}
