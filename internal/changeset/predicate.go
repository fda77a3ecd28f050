// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package changeset

import (
	"fmt"
	"sync"

	"github.com/gobwas/glob"

	"github.com/MKhiriev/go-diff-tree/models"
)

// Predicate decides whether an out-of-sync item belongs to a change set.
type Predicate interface {
	Match(st models.SyncState) bool
}

// GlobPredicate matches item paths against glob patterns, optionally
// restricted to some sync directions.
type GlobPredicate struct {
	patterns   []string
	globs      []glob.Glob
	directions map[models.Direction]struct{}
}

// NewGlobPredicate compiles patterns with '/' as the separator, so '*' stays
// within one path segment and '**' crosses segments.
func NewGlobPredicate(patterns []string, directions []models.Direction) (*GlobPredicate, error) {
	p := &GlobPredicate{patterns: patterns}
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBadPattern, pattern, err)
		}
		p.globs = append(p.globs, g)
	}
	if len(directions) > 0 {
		p.directions = make(map[models.Direction]struct{}, len(directions))
		for _, d := range directions {
			p.directions[d] = struct{}{}
		}
	}
	return p, nil
}

func (p *GlobPredicate) Match(st models.SyncState) bool {
	if p.directions != nil {
		if _, ok := p.directions[st.Direction()]; !ok {
			return false
		}
	}
	for _, g := range p.globs {
		if g.Match(string(st.Path)) {
			return true
		}
	}
	return false
}

// MemberPredicate matches an explicit list of items.
type MemberPredicate struct {
	mu      sync.RWMutex
	members map[models.ItemPath]struct{}
}

func NewMemberPredicate(paths ...models.ItemPath) *MemberPredicate {
	p := &MemberPredicate{members: make(map[models.ItemPath]struct{}, len(paths))}
	p.Add(paths...)
	return p
}

func (p *MemberPredicate) Add(paths ...models.ItemPath) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, path := range paths {
		p.members[path] = struct{}{}
	}
}

func (p *MemberPredicate) Remove(paths ...models.ItemPath) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, path := range paths {
		delete(p.members, path)
	}
}

func (p *MemberPredicate) Match(st models.SyncState) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.members[st.Path]
	return ok
}

// AnyPredicate matches when one of its predicates does.
type AnyPredicate []Predicate

func (a AnyPredicate) Match(st models.SyncState) bool {
	for _, p := range a {
		if p.Match(st) {
			return true
		}
	}
	return false
}

// PredicateFor builds the predicate described by def. Explicit members are
// returned separately so they can be edited later.
func PredicateFor(def models.ChangeSetDefinition) (Predicate, *MemberPredicate, error) {
	members := NewMemberPredicate(def.Members...)
	if len(def.Patterns) == 0 {
		return members, members, nil
	}

	globs, err := NewGlobPredicate(def.Patterns, def.Directions)
	if err != nil {
		return nil, nil, err
	}
	return AnyPredicate{globs, members}, members, nil
}
