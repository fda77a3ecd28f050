// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownDirection is returned by ParseDirection for unrecognized names.
var ErrUnknownDirection = errors.New("unknown sync direction")

// Direction is the comparison result of an item between the local copy and
// the remote copy, relative to their common base.
type Direction int

const (
	// InSync means local and remote agree; such items are never presented.
	InSync Direction = iota
	// Incoming means only the remote side changed.
	Incoming
	// Outgoing means only the local side changed.
	Outgoing
	// Conflicting means both sides changed.
	Conflicting
)

func (d Direction) String() string {
	switch d {
	case InSync:
		return "in-sync"
	case Incoming:
		return "incoming"
	case Outgoing:
		return "outgoing"
	case Conflicting:
		return "conflicting"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts the String form of a direction back.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in-sync", "insync":
		return InSync, nil
	case "incoming":
		return Incoming, nil
	case "outgoing":
		return Outgoing, nil
	case "conflicting", "conflict":
		return Conflicting, nil
	default:
		return InSync, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// ChangeType qualifies a Direction with what happened to the item.
type ChangeType int

const (
	// Change means the item exists on both sides with different content.
	Change ChangeType = iota
	// Addition means the item exists only on the changed side.
	Addition
	// Deletion means the item was removed on the changed side.
	Deletion
)

func (c ChangeType) String() string {
	switch c {
	case Change:
		return "change"
	case Addition:
		return "addition"
	case Deletion:
		return "deletion"
	default:
		return fmt.Sprintf("change(%d)", int(c))
	}
}

// Kind is the full comparison classification of an item.
type Kind struct {
	Direction Direction  `json:"direction"`
	Change    ChangeType `json:"change"`
}

func (k Kind) String() string {
	if k.Direction == InSync {
		return k.Direction.String()
	}
	return k.Direction.String() + "/" + k.Change.String()
}

// ItemType tells files from folders. Top-level folders are projects.
type ItemType int

const (
	File ItemType = iota
	Folder
	Project
)

func (t ItemType) String() string {
	switch t {
	case File:
		return "file"
	case Folder:
		return "folder"
	case Project:
		return "project"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// IsContainer reports whether items of this type may have children.
func (t ItemType) IsContainer() bool {
	return t == Folder || t == Project
}

// Handle is a lightweight descriptor of one side of a comparison. A nil
// handle means the item does not exist on that side.
type Handle struct {
	Hash      string     `json:"hash"`
	Version   int64      `json:"version"`
	Deleted   bool       `json:"deleted"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// SyncState is the immutable comparison result for one item. Producers
// replace states wholesale; consumers never mutate them.
type SyncState struct {
	Path   ItemPath `json:"path"`
	Type   ItemType `json:"type"`
	Local  *Handle  `json:"local,omitempty"`
	Base   *Handle  `json:"base,omitempty"`
	Remote *Handle  `json:"remote,omitempty"`
	Kind   Kind     `json:"kind"`
}

// IsOutOfSync reports whether the item must be presented.
func (s SyncState) IsOutOfSync() bool {
	return s.Kind.Direction != InSync
}

// Direction is a shortcut for s.Kind.Direction.
func (s SyncState) Direction() Direction {
	return s.Kind.Direction
}

// IsConflicting reports whether both sides changed.
func (s SyncState) IsConflicting() bool {
	return s.Kind.Direction == Conflicting
}

func (s SyncState) String() string {
	return fmt.Sprintf("%s[%s]", s.Path, s.Kind)
}
