// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PathsRequest carries item paths for marker and busy notifications and
// for change-set membership edits.
type PathsRequest struct {
	// Paths are normalized with CleanPath before use.
	Paths []ItemPath `json:"paths"`

	// Busy is only read by the busy endpoint.
	Busy bool `json:"busy,omitempty"`
}

// ModeRequest switches the comparison mode. Mode is a ParseMode value.
type ModeRequest struct {
	Mode string `json:"mode"`
}

// BuilderRequest switches the builder variant.
type BuilderRequest struct {
	Builder string `json:"builder"`
}

// ChangeSetRequest registers a change set. Directions are ParseDirection
// values.
type ChangeSetRequest struct {
	Name       string     `json:"name"`
	Patterns   []string   `json:"patterns,omitempty"`
	Members    []ItemPath `json:"members,omitempty"`
	Directions []string   `json:"directions,omitempty"`
}

// Definition converts the request into a change-set definition.
func (r ChangeSetRequest) Definition() (ChangeSetDefinition, error) {
	def := ChangeSetDefinition{Name: r.Name, Patterns: r.Patterns}
	for _, m := range r.Members {
		def.Members = append(def.Members, CleanPath(string(m)))
	}
	for _, d := range r.Directions {
		dir, err := ParseDirection(d)
		if err != nil {
			return ChangeSetDefinition{}, err
		}
		def.Directions = append(def.Directions, dir)
	}
	return def, nil
}
