// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangeSetDefinition describes a named grouping of out-of-sync items.
// An item belongs to the set when it matches one of Patterns (glob syntax,
// matched against the item path) or is listed in Members, and, when
// Directions is non-empty, its direction is one of Directions.
type ChangeSetDefinition struct {
	Name       string      `json:"name"`
	Patterns   []string    `json:"patterns,omitempty"`
	Members    []ItemPath  `json:"members,omitempty"`
	Directions []Direction `json:"directions,omitempty"`
}
