// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"context"

	"github.com/MKhiriev/go-diff-tree/models"
)

//go:generate mockgen -source=sink.go -destination=../mock/tree_mock.go -package=mock

// Sink is the visual surface presenting the tree. Every method is called on
// the presentation context.
type Sink interface {
	// Add inserts views as children of parent. Child order is the sink's
	// concern.
	Add(parent models.NodeKey, views ...NodeView)
	// Remove deletes the nodes and their subtrees.
	Remove(keys ...models.NodeKey)
	// Refresh updates labels and decorations of already presented nodes.
	Refresh(views ...NodeView)

	Expand(keys ...models.NodeKey)
	Select(keys ...models.NodeKey)
	SetChecked(keys ...models.NodeKey)
	ExpandedItems() []models.NodeKey
	SelectedItems() []models.NodeKey
	CheckedItems() []models.NodeKey

	// Contains reports whether a node with key is presented.
	Contains(key models.NodeKey) bool
	// SetRedraw suspends or resumes repainting.
	SetRedraw(on bool)
	// Disposed reports whether the surface is gone.
	Disposed() bool
}

// MarkerProvider answers the marker severity of an item.
type MarkerProvider interface {
	Severity(ctx context.Context, path models.ItemPath) (models.Severity, error)
}

type opKind int

const (
	opAdd opKind = iota
	opRemove
	opRefresh
)

type op struct {
	kind   opKind
	parent models.NodeKey
	nodes  []*Node
	views  []NodeView
	keys   []models.NodeKey
}

// Batch collects the sink instructions produced by one model operation, in
// order. Nodes are recorded on the worker and turned into views by Seal, so
// the views carry the flags reached at the end of the operation.
type Batch struct {
	ops    []op
	sealed bool
}

// NewBatch returns an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Add records the insertion of n under parent.
func (b *Batch) Add(parent models.NodeKey, n *Node) {
	if b == nil {
		return
	}
	if last := len(b.ops) - 1; last >= 0 && b.ops[last].kind == opAdd && b.ops[last].parent == parent {
		b.ops[last].nodes = append(b.ops[last].nodes, n)
		return
	}
	b.ops = append(b.ops, op{kind: opAdd, parent: parent, nodes: []*Node{n}})
}

// Remove records the removal of the node with key and its subtree.
func (b *Batch) Remove(key models.NodeKey) {
	if b == nil {
		return
	}
	if last := len(b.ops) - 1; last >= 0 && b.ops[last].kind == opRemove {
		b.ops[last].keys = append(b.ops[last].keys, key)
		return
	}
	b.ops = append(b.ops, op{kind: opRemove, keys: []models.NodeKey{key}})
}

// Refresh records a label refresh of n.
func (b *Batch) Refresh(n *Node) {
	if b == nil {
		return
	}
	if last := len(b.ops) - 1; last >= 0 && b.ops[last].kind == opRefresh {
		b.ops[last].nodes = append(b.ops[last].nodes, n)
		return
	}
	b.ops = append(b.ops, op{kind: opRefresh, nodes: []*Node{n}})
}

// Len returns the number of recorded instructions.
func (b *Batch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.ops)
}

// IsEmpty reports whether nothing was recorded.
func (b *Batch) IsEmpty() bool {
	return b.Len() == 0
}

// Structural reports whether the batch adds or removes nodes.
func (b *Batch) Structural() bool {
	if b == nil {
		return false
	}
	for _, o := range b.ops {
		if o.kind != opRefresh {
			return true
		}
	}
	return false
}

// Seal materializes node views. It must run on the goroutine owning the
// nodes, before the batch crosses to the presentation context.
func (b *Batch) Seal() *Batch {
	if b == nil || b.sealed {
		return b
	}
	for i := range b.ops {
		o := &b.ops[i]
		o.views = make([]NodeView, 0, len(o.nodes))
		for _, n := range o.nodes {
			o.views = append(o.views, n.View())
		}
		o.nodes = nil
	}
	b.sealed = true
	return b
}

// Apply replays the batch onto sink and returns the number of calls made.
// A disposed sink is checked before every call and skipped.
func (b *Batch) Apply(sink Sink) int {
	if b == nil {
		return 0
	}
	b.Seal()

	calls := 0
	for _, o := range b.ops {
		if sink.Disposed() {
			return calls
		}
		switch o.kind {
		case opAdd:
			sink.Add(o.parent, o.views...)
		case opRemove:
			sink.Remove(o.keys...)
		case opRefresh:
			sink.Refresh(o.views...)
		}
		calls++
	}
	return calls
}
