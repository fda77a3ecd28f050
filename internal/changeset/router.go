// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package changeset partitions the diff tree into named change sets.
//
// A Router owns one tree.Provider per change set plus the default bucket,
// which holds every item no change set claims and always exists. An item
// may belong to several change sets at once. Change-set sub-trees are
// created the first time an item is routed to them and destroyed when they
// become empty.
package changeset

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diff-tree/internal/logger"
	"github.com/MKhiriev/go-diff-tree/internal/source"
	"github.com/MKhiriev/go-diff-tree/internal/tree"
	"github.com/MKhiriev/go-diff-tree/models"
)

// bucket is one partition: its subset of the snapshot and, once created,
// the provider presenting it.
type bucket struct {
	name      string
	predicate Predicate
	members   *MemberPredicate
	subset    *source.SyncSet
	provider  *tree.Provider
}

// Router routes items of a snapshot into change-set sub-trees.
type Router struct {
	log  *logger.Logger
	snap source.Snapshot
	deps tree.ProviderDeps
	root *tree.Node

	fallback *bucket
	sets     []*bucket
}

// NewRouter creates a router over snap. deps.Snapshot is ignored: every
// bucket reads its own subset.
func NewRouter(snap source.Snapshot, deps tree.ProviderDeps) *Router {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	r := &Router{
		log:  log.WithComponent("changeset"),
		snap: snap,
		deps: deps,
		root: tree.NewRoot(),
	}
	r.fallback = &bucket{subset: source.NewSyncSet(log)}
	r.fallback.provider = r.newProvider(r.root, r.fallback.subset)
	return r
}

func (r *Router) newProvider(root *tree.Node, subset *source.SyncSet) *tree.Provider {
	deps := r.deps
	deps.Snapshot = subset
	return tree.NewProvider(root, deps)
}

// Root returns the top of the whole tree.
func (r *Router) Root() *tree.Node {
	return r.root
}

// Sets returns the registered change-set names in registration order.
func (r *Router) Sets() []string {
	out := make([]string, 0, len(r.sets))
	for _, s := range r.sets {
		out = append(out, s.name)
	}
	return out
}

// Provider returns the provider of the named change set, or of the default
// bucket for the empty name. A registered set without items has none.
func (r *Router) Provider(name string) (*tree.Provider, bool) {
	if name == "" {
		return r.fallback.provider, true
	}
	b := r.find(name)
	if b == nil || b.provider == nil {
		return nil, false
	}
	return b.provider, true
}

// SetStrategy switches the builder variant of every bucket. The caller
// rebuilds afterwards.
func (r *Router) SetStrategy(s tree.Strategy) {
	r.deps.Strategy = s
	for _, b := range r.buckets() {
		if b.provider != nil {
			b.provider.SetStrategy(s)
		}
	}
}

// Register adds a change set and moves the items it matches out of the
// default bucket.
func (r *Router) Register(ctx context.Context, b *tree.Batch, def models.ChangeSetDefinition) error {
	name := strings.TrimSpace(def.Name)
	if name == "" || strings.ContainsAny(name, "[]") {
		return fmt.Errorf("%w: %q", ErrInvalidSetName, def.Name)
	}
	if r.find(name) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateSet, name)
	}

	predicate, members, err := PredicateFor(def)
	if err != nil {
		return err
	}
	r.sets = append(r.sets, &bucket{
		name:      name,
		predicate: predicate,
		members:   members,
		subset:    source.NewSyncSet(r.log),
	})

	for _, st := range r.snap.All() {
		if predicate.Match(st) {
			r.route(ctx, b, st.Path)
		}
	}
	return nil
}

// Unregister removes a change set and re-routes its items.
func (r *Router) Unregister(ctx context.Context, b *tree.Batch, name string) error {
	idx := -1
	for i, s := range r.sets {
		if s.name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownSet, name)
	}

	gone := r.sets[idx]
	r.sets = append(r.sets[:idx:idx], r.sets[idx+1:]...)
	if gone.provider != nil {
		gone.provider.Unmount(b)
	}
	for _, st := range gone.subset.All() {
		r.route(ctx, b, st.Path)
	}
	return nil
}

// AddMembers puts paths into the explicit member list of a change set and
// re-routes them.
func (r *Router) AddMembers(ctx context.Context, b *tree.Batch, name string, paths ...models.ItemPath) error {
	s := r.find(name)
	if s == nil {
		return fmt.Errorf("%w: %q", ErrUnknownSet, name)
	}
	s.members.Add(paths...)
	r.Reassign(ctx, b, paths)
	return nil
}

// RemoveMembers drops paths from the explicit member list of a change set
// and re-routes them.
func (r *Router) RemoveMembers(ctx context.Context, b *tree.Batch, name string, paths ...models.ItemPath) error {
	s := r.find(name)
	if s == nil {
		return fmt.Errorf("%w: %q", ErrUnknownSet, name)
	}
	s.members.Remove(paths...)
	r.Reassign(ctx, b, paths)
	return nil
}

// Reassign re-evaluates the membership of paths.
func (r *Router) Reassign(ctx context.Context, b *tree.Batch, paths []models.ItemPath) {
	for _, p := range paths {
		r.route(ctx, b, p)
	}
}

// ApplyDelta routes every item touched by evt. A reset rebuilds.
func (r *Router) ApplyDelta(ctx context.Context, b *tree.Batch, evt models.DeltaEvent) {
	if evt.Reset {
		r.Rebuild(ctx, b)
		return
	}
	for _, p := range evt.Removed {
		r.route(ctx, b, p)
	}
	for _, st := range evt.Changed {
		r.route(ctx, b, st.Path)
	}
	for _, st := range evt.Added {
		r.route(ctx, b, st.Path)
	}
}

// Rebuild discards every bucket's tree and rebuilds from the snapshot.
func (r *Router) Rebuild(ctx context.Context, b *tree.Batch) {
	r.fallback.provider.Clear(b)
	r.fallback.subset.Clear()
	for _, s := range r.sets {
		if s.provider != nil {
			s.provider.Unmount(b)
			s.provider = nil
		}
		s.subset.Clear()
	}

	for _, st := range r.snap.All() {
		for _, bk := range r.targets(st) {
			bk.subset.Put(st)
		}
	}

	r.fallback.provider.Build(ctx, b)
	for _, s := range r.sets {
		if s.subset.Len() == 0 {
			continue
		}
		r.mount(b, s)
		s.provider.Build(ctx, b)
	}
}

// MarkersChanged re-queries markers in every bucket.
func (r *Router) MarkersChanged(ctx context.Context, paths []models.ItemPath) {
	for _, bk := range r.buckets() {
		if bk.provider != nil {
			bk.provider.MarkersChanged(ctx, paths)
		}
	}
}

// SetBusy sets the busy flag of paths in every bucket.
func (r *Router) SetBusy(paths []models.ItemPath, busy bool) {
	for _, bk := range r.buckets() {
		if bk.provider != nil {
			bk.provider.SetBusy(paths, busy)
		}
	}
}

// Lookup resolves a node key.
func (r *Router) Lookup(key models.NodeKey) (*tree.Node, bool) {
	set, path := key.Split()
	if set != "" && path.IsRoot() {
		s := r.find(set)
		if s == nil || s.provider == nil {
			return nil, false
		}
		return s.provider.Root(), true
	}
	p, ok := r.Provider(set)
	if !ok {
		return nil, false
	}
	return p.Lookup(path)
}

// View returns the view of the node for key.
func (r *Router) View(key models.NodeKey) (tree.NodeView, bool) {
	n, ok := r.Lookup(key)
	if !ok {
		return tree.NodeView{}, false
	}
	return n.View(), true
}

// route moves one item into exactly the buckets it belongs to now.
func (r *Router) route(ctx context.Context, b *tree.Batch, path models.ItemPath) {
	st, visible := r.snap.State(path)

	want := make(map[*bucket]struct{})
	if visible {
		for _, bk := range r.targets(st) {
			want[bk] = struct{}{}
		}
	}

	for _, bk := range r.buckets() {
		_, target := want[bk]
		old, had := bk.subset.State(path)

		switch {
		case had && !target:
			bk.subset.Remove(path)
			bk.provider.ApplyRemovals(ctx, b, []models.ItemPath{path})
			r.destroyIfEmpty(b, bk)
		case target && had:
			if source.SameState(old, st) {
				continue
			}
			bk.subset.Put(st)
			if !bk.provider.ApplyChange(ctx, b, st) {
				bk.provider.ApplyAdditions(ctx, b, []models.SyncState{st})
			}
		case target:
			if bk.provider == nil {
				r.mount(b, bk)
			}
			bk.subset.Put(st)
			bk.provider.ApplyAdditions(ctx, b, []models.SyncState{st})
		}
	}
}

// targets returns the buckets st belongs to: every matching change set, or
// the default bucket when none matches.
func (r *Router) targets(st models.SyncState) []*bucket {
	var out []*bucket
	for _, s := range r.sets {
		if s.predicate.Match(st) {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		out = append(out, r.fallback)
	}
	return out
}

func (r *Router) mount(b *tree.Batch, s *bucket) {
	s.provider = r.newProvider(tree.NewSetRoot(s.name), s.subset)
	s.provider.Mount(r.root, b)
	r.log.Debug().
		Str("func", "Router.mount").
		Str("set", s.name).
		Msg("change set sub-tree created")
}

func (r *Router) destroyIfEmpty(b *tree.Batch, bk *bucket) {
	if bk == r.fallback || bk.subset.Len() > 0 {
		return
	}
	bk.provider.Unmount(b)
	bk.provider = nil
	r.log.Debug().
		Str("func", "Router.destroyIfEmpty").
		Str("set", bk.name).
		Msg("change set sub-tree destroyed")
}

func (r *Router) buckets() []*bucket {
	return append([]*bucket{r.fallback}, r.sets...)
}

func (r *Router) find(name string) *bucket {
	for _, s := range r.sets {
		if s.name == name {
			return s
		}
	}
	return nil
}
