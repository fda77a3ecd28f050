// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"github.com/huandu/skiplist"

	"github.com/MKhiriev/go-diff-tree/models"
)

// Flags are the aggregate and transient markers of a node.
type Flags struct {
	// DescendantConflict is set when some child is conflicting or has the
	// flag itself.
	DescendantConflict bool
	// DescendantError is set when some child shows an error.
	DescendantError bool
	// DescendantWarning is set when some child shows a warning.
	DescendantWarning bool
	// Busy marks a node with an operation in progress.
	Busy bool
}

// Node is one element of the diff tree. Nodes are owned by the serializer
// worker; the presentation side only ever sees NodeView copies.
type Node struct {
	key   models.NodeKey
	path  models.ItemPath
	set   string
	typ   models.ItemType
	label string

	// state is nil for containers shown only because they hold changes.
	state *models.SyncState
	flags Flags
	// severity is the node's own marker severity.
	severity models.Severity

	parent   *Node
	children *skiplist.SkipList
}

func newNode(set string, path models.ItemPath, typ models.ItemType) *Node {
	return &Node{
		key:      models.KeyFor(set, path),
		path:     path,
		set:      set,
		typ:      typ,
		children: skiplist.New(skiplist.String),
	}
}

// NewRoot creates the top structural root.
func NewRoot() *Node {
	return newNode("", models.RootPath, models.Folder)
}

func (n *Node) Key() models.NodeKey { return n.key }
func (n *Node) Path() models.ItemPath { return n.path }
func (n *Node) Set() string { return n.set }
func (n *Node) Type() models.ItemType { return n.typ }
func (n *Node) Label() string { return n.label }
func (n *Node) Flags() Flags { return n.flags }
func (n *Node) Parent() *Node { return n.parent }
func (n *Node) OwnSeverity() models.Severity { return n.severity }

// State returns the node's sync state, or nil for unchanged containers.
func (n *Node) State() *models.SyncState {
	return n.state
}

// IsRoot reports whether n is a structural root: the top root or a
// change-set root.
func (n *Node) IsRoot() bool {
	return n.path.IsRoot()
}

// IsOutOfSync reports whether the node represents an out-of-sync item.
func (n *Node) IsOutOfSync() bool {
	return n.state != nil && n.state.IsOutOfSync()
}

// Conflicting reports whether the node is conflicting itself or holds a
// conflicting descendant.
func (n *Node) Conflicting() bool {
	return n.flags.DescendantConflict || (n.state != nil && n.state.IsConflicting())
}

// Shown is the severity presented for the node: the highest of its own
// marker and its descendants'.
func (n *Node) Shown() models.Severity {
	s := n.severity
	if n.flags.DescendantWarning {
		s = s.Max(models.SeverityWarning)
	}
	if n.flags.DescendantError {
		s = s.Max(models.SeverityError)
	}
	return s
}

// Children returns the children ordered by key.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, n.children.Len())
	for el := n.children.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*Node))
	}
	return out
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return n.children.Len()
}

func (n *Node) addChild(c *Node) {
	c.parent = n
	n.children.Set(string(c.key), c)
}

func (n *Node) removeChild(c *Node) {
	n.children.Remove(string(c.key))
	c.parent = nil
}

// aggregate recomputes the descendant flags from the children and reports
// whether they changed.
func (n *Node) aggregate() bool {
	var next Flags
	next.Busy = n.flags.Busy
	for el := n.children.Front(); el != nil; el = el.Next() {
		c := el.Value.(*Node)
		if c.Conflicting() {
			next.DescendantConflict = true
		}
		switch c.Shown() {
		case models.SeverityError:
			next.DescendantError = true
		case models.SeverityWarning:
			next.DescendantWarning = true
		}
	}
	changed := next != n.flags
	n.flags = next
	return changed
}

func (n *Node) anyChild(fn func(c *Node) bool) bool {
	for el := n.children.Front(); el != nil; el = el.Next() {
		if fn(el.Value.(*Node)) {
			return true
		}
	}
	return false
}

// NodeView is an immutable copy of a node handed to the presentation side.
type NodeView struct {
	Key       models.NodeKey
	Parent    models.NodeKey
	Path      models.ItemPath
	Set       string
	Type      models.ItemType
	Label     string
	State     *models.SyncState
	Flags     Flags
	Severity  models.Severity
	Container bool
}

// Direction returns the sync direction of the viewed item, InSync for plain
// containers.
func (v NodeView) Direction() models.Direction {
	if v.State == nil {
		return models.InSync
	}
	return v.State.Direction()
}

// Conflicting mirrors Node.Conflicting.
func (v NodeView) Conflicting() bool {
	return v.Flags.DescendantConflict || (v.State != nil && v.State.IsConflicting())
}

// View copies the node.
func (n *Node) View() NodeView {
	v := NodeView{
		Key:       n.key,
		Path:      n.path,
		Set:       n.set,
		Type:      n.typ,
		Label:     n.label,
		Flags:     n.flags,
		Severity:  n.Shown(),
		Container: n.typ.IsContainer() || n.IsRoot(),
	}
	if n.parent != nil {
		v.Parent = n.parent.key
	}
	if n.state != nil {
		st := *n.state
		v.State = &st
	}
	return v
}
