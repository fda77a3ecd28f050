// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("unknown comparison mode")

// Mode is the comparison mode chosen by the user. It filters which
// out-of-sync items are presented; it is applied when reading sync states
// and never stored on tree nodes.
type Mode int

const (
	ModeBoth Mode = iota
	ModeIncoming
	ModeOutgoing
	ModeConflicting
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeBoth, ModeIncoming, ModeOutgoing, ModeConflicting}

// Accepts reports whether an item with direction d is visible in mode m.
// Conflicts are visible in every mode.
func (m Mode) Accepts(d Direction) bool {
	switch d {
	case InSync:
		return false
	case Conflicting:
		return true
	}
	switch m {
	case ModeIncoming:
		return d == Incoming
	case ModeOutgoing:
		return d == Outgoing
	case ModeConflicting:
		return false
	default:
		return true
	}
}

// Next returns the mode following m in Modes, wrapping around.
func (m Mode) Next() Mode {
	for i, mode := range Modes {
		if mode == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModeBoth
}

func (m Mode) String() string {
	switch m {
	case ModeBoth:
		return "both"
	case ModeIncoming:
		return "incoming"
	case ModeOutgoing:
		return "outgoing"
	case ModeConflicting:
		return "conflicting"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a configuration value into a Mode. The empty string
// yields ModeBoth.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return ModeBoth, nil
	case "incoming":
		return ModeIncoming, nil
	case "outgoing":
		return ModeOutgoing, nil
	case "conflicting", "conflicts":
		return ModeConflicting, nil
	default:
		return ModeBoth, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
