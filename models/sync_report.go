// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncReport is the wire form of a comparison engine's answer: the per-item
// states and the items it failed to compare. Snapshot files use the same
// shape.
type SyncReport struct {
	States []SyncState   `json:"states"`
	Errors []ErrorRecord `json:"errors,omitempty"`
}
