// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tree maintains the diff tree: the node arena of a builder, the
// builder variants deciding its shape, the propagation of aggregate
// conflict and marker flags, and the instruction batches replayed onto the
// presentation sink.
//
// Everything in this package runs on the serializer worker. The only values
// leaving it are NodeView copies inside sealed batches.
package tree

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-diff-tree/internal/logger"
	"github.com/MKhiriev/go-diff-tree/internal/source"
	"github.com/MKhiriev/go-diff-tree/models"
)

// Provider builds and incrementally maintains one model from a snapshot.
type Provider struct {
	log      *logger.Logger
	strategy Strategy
	snap     source.Snapshot
	model    *Model
	prop     *Propagator
	dirty    func(keys ...models.NodeKey)
}

// ProviderDeps are the collaborators of a Provider.
type ProviderDeps struct {
	Strategy Strategy
	Snapshot source.Snapshot
	Markers  MarkerProvider
	// Dirty receives the keys of nodes whose labels must be refreshed.
	Dirty func(keys ...models.NodeKey)
	Log   *logger.Logger
}

// NewProvider creates a provider whose model hangs off root.
func NewProvider(root *Node, deps ProviderDeps) *Provider {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	dirty := deps.Dirty
	if dirty == nil {
		dirty = func(...models.NodeKey) {}
	}
	strategy := deps.Strategy
	if strategy == nil {
		strategy = Hierarchical{}
	}

	p := &Provider{
		log:      log.WithComponent("tree"),
		strategy: strategy,
		snap:     deps.Snapshot,
		model:    NewModel(root),
		dirty:    dirty,
	}
	p.prop = NewPropagator(deps.Markers, func(n *Node) { p.dirty(n.key) }, log)
	return p
}

func (p *Provider) Model() *Model { return p.model }
func (p *Provider) Root() *Node { return p.model.root }
func (p *Provider) Strategy() Strategy { return p.strategy }
func (p *Provider) Snapshot() source.Snapshot { return p.snap }

// SetStrategy switches the builder variant. The caller rebuilds afterwards.
func (p *Provider) SetStrategy(s Strategy) {
	p.strategy = s
}

// Lookup returns the node for path.
func (p *Provider) Lookup(path models.ItemPath) (*Node, bool) {
	return p.model.Lookup(path)
}

// View returns the view of the node for path.
func (p *Provider) View(path models.ItemPath) (NodeView, bool) {
	n, ok := p.model.Lookup(path)
	if !ok {
		return NodeView{}, false
	}
	return n.View(), true
}

// Build populates the model from the snapshot. Building an already built
// model only adds what is missing.
func (p *Provider) Build(ctx context.Context, b *Batch) {
	for _, st := range p.snap.All() {
		if ctx.Err() != nil {
			return
		}
		p.addItem(ctx, b, st)
	}
}

// Clear removes every node of the model.
func (p *Provider) Clear(b *Batch) {
	for _, n := range p.model.clear() {
		b.Remove(n.key)
	}
	p.prop.Refresh(p.model.root)
}

// Rebuild clears and builds the model.
func (p *Provider) Rebuild(ctx context.Context, b *Batch) {
	p.Clear(b)
	p.Build(ctx, b)
}

// ApplyAdditions presents newly out-of-sync items. An item that already has
// a node is removed and recreated with its out-of-sync descendants, which
// covers additions racing with a concurrent build. Items missing from the
// snapshot are skipped.
func (p *Provider) ApplyAdditions(ctx context.Context, b *Batch, items []models.SyncState) {
	for _, item := range items {
		st, ok := p.snap.State(item.Path)
		if !ok {
			p.log.Debug().
				Str("func", "Provider.ApplyAdditions").
				Str("path", item.Path.String()).
				Msg("added item is not in the snapshot, skipping")
			continue
		}

		if n, exists := p.model.Lookup(st.Path); exists && !n.IsRoot() {
			p.removeNode(b, n)
		}
		p.addItem(ctx, b, st)
		for _, desc := range p.snap.Descendants(st.Path) {
			p.addItem(ctx, b, desc)
		}
	}
}

// ApplyRemovals drops items from the tree. A removed item still holding
// presented descendants stays as a plain container, moved to wherever the
// strategy puts that container. Ancestors left empty are pruned unless they
// are a root or out-of-sync themselves.
func (p *Provider) ApplyRemovals(ctx context.Context, b *Batch, paths []models.ItemPath) {
	for _, path := range paths {
		n, ok := p.model.Lookup(path)
		if !ok || n.IsRoot() {
			continue
		}

		if n.ChildCount() > 0 {
			if n.state == nil {
				continue
			}
			n.state = nil
			if p.misplaced(n) {
				p.relocate(ctx, b, n)
				continue
			}
			p.dirty(n.key)
			p.prop.UpdateConflict(n)
			continue
		}
		p.removeNode(b, n)
	}
}

// ApplyChange replaces the state of the node for st.Path in place. A state
// no longer visible in the snapshot removes the item; an item without a
// node is skipped and reported as not applied.
func (p *Provider) ApplyChange(ctx context.Context, b *Batch, st models.SyncState) bool {
	n, ok := p.model.Lookup(st.Path)
	if !ok || n.IsRoot() {
		return false
	}

	cur, visible := p.snap.State(st.Path)
	if !visible || !cur.IsOutOfSync() {
		p.ApplyRemovals(ctx, b, []models.ItemPath{st.Path})
		return true
	}

	wasContainer := n.state == nil
	n.state = &cur
	if wasContainer && p.misplaced(n) {
		p.relocate(ctx, b, n)
		return true
	}
	p.dirty(n.key)
	p.prop.UpdateConflict(n)
	return true
}

// ApplyDelta applies a change-source delta: removals first, then changes,
// then additions. A reset rebuilds the model.
func (p *Provider) ApplyDelta(ctx context.Context, b *Batch, evt models.DeltaEvent) {
	if evt.Reset {
		p.Rebuild(ctx, b)
		return
	}

	p.ApplyRemovals(ctx, b, evt.Removed)

	var added []models.SyncState
	for _, st := range evt.Changed {
		if !p.ApplyChange(ctx, b, st) {
			added = append(added, st)
		}
	}
	added = append(added, evt.Added...)
	p.ApplyAdditions(ctx, b, added)
}

// MarkersChanged re-queries the markers of the nodes for paths and of their
// presented descendants. Paths without a node are ignored apart from their
// descendants.
func (p *Provider) MarkersChanged(ctx context.Context, paths []models.ItemPath) {
	for _, path := range paths {
		if n, ok := p.model.Lookup(path); ok && !n.IsRoot() {
			p.prop.UpdateMarkers(ctx, n)
		}
		prefix := path.DescendantPrefix()
		for _, n := range p.model.nodes {
			if strings.HasPrefix(string(n.path), prefix) {
				p.prop.UpdateMarkers(ctx, n)
			}
		}
	}
}

// SetBusy sets the busy flag of the nodes for paths.
func (p *Provider) SetBusy(paths []models.ItemPath, busy bool) {
	for _, path := range paths {
		n, ok := p.model.Lookup(path)
		if !ok || n.flags.Busy == busy {
			continue
		}
		n.flags.Busy = busy
		p.dirty(n.key)
	}
}

// addItem presents st, creating the containers the strategy asks for.
func (p *Provider) addItem(ctx context.Context, b *Batch, st models.SyncState) {
	if !st.IsOutOfSync() {
		return
	}

	parent := p.model.root
	for _, c := range p.strategy.Containers(st.Path, p.snap) {
		n, ok := p.model.Lookup(c.Path)
		if !ok {
			n = p.newNode(ctx, c.Path, c.Type, parent)
			if cst, has := p.snap.State(c.Path); has {
				n.state = &cst
			}
			p.attach(b, parent, n)
		}
		parent = n
	}

	if n, ok := p.model.Lookup(st.Path); ok {
		if n.state == nil || !source.SameState(*n.state, st) {
			n.state = &st
			p.dirty(n.key)
			p.prop.UpdateConflict(n)
		}
		return
	}

	n := p.newNode(ctx, st.Path, st.Type, parent)
	n.state = &st
	p.attach(b, parent, n)
}

func (p *Provider) newNode(ctx context.Context, path models.ItemPath, typ models.ItemType, parent *Node) *Node {
	n := newNode(p.model.Set(), path, typ)
	n.label = p.strategy.Label(path, parent.path)
	p.prop.Query(ctx, n)
	return n
}

func (p *Provider) attach(b *Batch, parent, n *Node) {
	p.model.attach(parent, n)
	b.Add(parent.key, n)
	p.prop.Refresh(parent)
}

// misplaced reports whether n hangs under another parent than the one the
// strategy gives it now. An item node is placed by its own container chain,
// a plain container by the chain of an item below it.
func (p *Provider) misplaced(n *Node) bool {
	if n.parent == nil {
		return false
	}
	want, ok := p.wantParent(n)
	return ok && want != n.parent.path
}

func (p *Provider) wantParent(n *Node) (models.ItemPath, bool) {
	if n.state != nil {
		chain := p.strategy.Containers(n.path, p.snap)
		if len(chain) == 0 {
			return p.model.root.path, true
		}
		return chain[len(chain)-1].Path, true
	}

	var (
		want  models.ItemPath
		found bool
	)
	Walk(n, func(d *Node) bool {
		if d == n || d.state == nil {
			return true
		}
		parent := p.model.root.path
		for _, c := range p.strategy.Containers(d.path, p.snap) {
			if c.Path == n.path {
				want, found = parent, true
				return false
			}
			parent = c.Path
		}
		return true
	})
	return want, found
}

// relocate removes n with its subtree and presents the item at n and the
// items below it again, the way ApplyAdditions does.
func (p *Provider) relocate(ctx context.Context, b *Batch, n *Node) {
	path := n.path
	p.log.Debug().
		Str("func", "Provider.relocate").
		Str("path", path.String()).
		Msg("node moved by the builder variant")

	p.removeNode(b, n)
	if st, ok := p.snap.State(path); ok {
		p.addItem(ctx, b, st)
	}
	for _, desc := range p.snap.Descendants(path) {
		p.addItem(ctx, b, desc)
	}
}

// removeNode detaches n with its subtree and prunes the ancestors it leaves
// empty. Only the topmost removed node is sent to the sink.
func (p *Provider) removeNode(b *Batch, n *Node) {
	top := n
	parent := n.parent
	p.model.detach(n)

	for parent != nil && !parent.IsRoot() && parent.state == nil && parent.ChildCount() == 0 {
		top = parent
		next := parent.parent
		p.model.detach(parent)
		parent = next
	}

	b.Remove(top.key)
	if parent != nil {
		p.prop.Refresh(parent)
	}
}

// NewSetRoot creates the root of the change-set sub-tree called name.
func NewSetRoot(name string) *Node {
	n := newNode(name, models.RootPath, models.Folder)
	n.label = name
	return n
}

// Mount attaches the root of a change-set provider under parent.
func (p *Provider) Mount(parent *Node, b *Batch) {
	root := p.model.root
	parent.addChild(root)
	b.Add(parent.key, root)
	p.prop.Refresh(parent)
}

// Unmount detaches the root of a change-set provider from its parent.
func (p *Provider) Unmount(b *Batch) {
	root := p.model.root
	parent := root.parent
	if parent == nil {
		return
	}
	parent.removeChild(root)
	b.Remove(root.key)
	p.prop.Refresh(parent)
}
