// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"context"

	"github.com/MKhiriev/go-diff-tree/internal/logger"
	"github.com/MKhiriev/go-diff-tree/models"
)

// transition is a change of the severity shown by a node.
type transition int

const (
	noTransition transition = iota
	noneToWarning
	noneToError
	warningToError
	errorToWarning
	warningToNone
	errorToNone
)

func transitionFor(prev, next models.Severity) transition {
	switch {
	case prev == next:
		return noTransition
	case prev == models.SeverityNone && next == models.SeverityWarning:
		return noneToWarning
	case prev == models.SeverityNone && next == models.SeverityError:
		return noneToError
	case prev == models.SeverityWarning && next == models.SeverityError:
		return warningToError
	case prev == models.SeverityError && next == models.SeverityWarning:
		return errorToWarning
	case prev == models.SeverityWarning && next == models.SeverityNone:
		return warningToNone
	default:
		return errorToNone
	}
}

// Propagator keeps the aggregate flags of ancestors in line with their
// descendants. Every walk stops at the first ancestor whose presented
// aggregate is unchanged.
type Propagator struct {
	log     *logger.Logger
	markers MarkerProvider
	dirty   func(n *Node)
}

// NewPropagator creates a propagator. markers may be nil, in which case
// every item has no marker. dirty is called for every node whose
// decoration changed.
func NewPropagator(markers MarkerProvider, dirty func(n *Node), log *logger.Logger) *Propagator {
	if log == nil {
		log = logger.Nop()
	}
	if dirty == nil {
		dirty = func(*Node) {}
	}
	return &Propagator{log: log, markers: markers, dirty: dirty}
}

// UpdateConflict re-derives the conflict flag of the ancestors of n after
// n's own state or flag changed.
func (p *Propagator) UpdateConflict(n *Node) {
	for cur := n; cur.parent != nil; cur = cur.parent {
		parent := cur.parent
		want := cur.Conflicting() || parent.anyChild((*Node).Conflicting)
		if parent.flags.DescendantConflict == want {
			return
		}
		parent.flags.DescendantConflict = want
		p.dirty(parent)
	}
}

// UpdateMarkers re-queries the own marker severity of n and pushes the
// change of its shown severity up the ancestor chain.
func (p *Propagator) UpdateMarkers(ctx context.Context, n *Node) {
	prev := n.Shown()
	if !p.query(ctx, n) {
		return
	}
	p.dirty(n)
	p.pushSeverity(n, prev)
}

// pushSeverity walks up from n whose shown severity was prev.
func (p *Propagator) pushSeverity(n *Node, prev models.Severity) {
	for cur := n; cur.parent != nil; cur = cur.parent {
		t := transitionFor(prev, cur.Shown())
		if t == noTransition {
			return
		}

		parent := cur.parent
		prev = parent.Shown()
		before := parent.flags

		switch t {
		case noneToWarning:
			parent.flags.DescendantWarning = true
		case noneToError:
			parent.flags.DescendantError = true
		case warningToError:
			parent.flags.DescendantError = true
			parent.flags.DescendantWarning = parent.anyChild(showsWarning)
		case errorToWarning:
			parent.flags.DescendantWarning = true
			parent.flags.DescendantError = parent.anyChild(showsError)
		case warningToNone:
			parent.flags.DescendantWarning = parent.anyChild(showsWarning)
		case errorToNone:
			parent.flags.DescendantError = parent.anyChild(showsError)
		}

		if parent.flags != before {
			p.dirty(parent)
		}
	}
}

// Refresh recomputes every aggregate flag of n from its children and walks
// up while the presented aggregate keeps changing. It is used after nodes
// were attached to or detached from n.
func (p *Propagator) Refresh(n *Node) {
	for cur := n; cur != nil; cur = cur.parent {
		conflicting, shown := cur.Conflicting(), cur.Shown()
		if cur.aggregate() {
			p.dirty(cur)
		}
		if cur.Conflicting() == conflicting && cur.Shown() == shown {
			return
		}
	}
}

// Query sets the own marker severity of a freshly created node.
func (p *Propagator) Query(ctx context.Context, n *Node) {
	p.query(ctx, n)
}

// query asks the marker provider for n's own severity and reports whether
// it changed. A failing query keeps the previous value.
func (p *Propagator) query(ctx context.Context, n *Node) bool {
	if p.markers == nil || n.IsRoot() {
		return false
	}
	sev, err := p.markers.Severity(ctx, n.path)
	if err != nil {
		p.log.Err(err).
			Str("func", "Propagator.query").
			Str("path", n.path.String()).
			Msg("marker query failed, keeping previous severity")
		return false
	}
	if sev == n.severity {
		return false
	}
	n.severity = sev
	return true
}

func showsWarning(n *Node) bool { return n.Shown() == models.SeverityWarning }
func showsError(n *Node) bool   { return n.Shown() == models.SeverityError }
