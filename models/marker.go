// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSeverity = errors.New("unknown marker severity")

// Severity is the highest problem marker severity found on an item.
// Higher values outrank lower ones.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "none"
	}
}

// ParseSeverity parses the String form of a severity. The empty string is
// SeverityNone.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SeverityNone, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return SeverityNone, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Max returns the higher of s and o.
func (s Severity) Max(o Severity) Severity {
	if o > s {
		return o
	}
	return s
}

// ErrorRecord describes a problem the comparison engine found on an item.
// A record without a severity is an error: the item could not be compared.
type ErrorRecord struct {
	Path     ItemPath `json:"path"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity,omitempty"`
}

// Marker returns the marker severity the record puts on its item.
func (r ErrorRecord) Marker() Severity {
	if r.Severity == SeverityNone {
		return SeverityError
	}
	return r.Severity
}
