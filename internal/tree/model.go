// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"github.com/MKhiriev/go-diff-tree/models"
)

// Model is the arena of one builder: its root and an index of every node
// below it by item path. A model holds at most one node per item.
type Model struct {
	root  *Node
	nodes map[models.ItemPath]*Node
}

// NewModel creates an empty model under root.
func NewModel(root *Node) *Model {
	return &Model{root: root, nodes: make(map[models.ItemPath]*Node)}
}

// Root returns the model's structural root.
func (m *Model) Root() *Node {
	return m.root
}

// Set returns the change-set name of the model, empty for the default one.
func (m *Model) Set() string {
	return m.root.set
}

// Lookup returns the node for path. The root path resolves to the root.
func (m *Model) Lookup(path models.ItemPath) (*Node, bool) {
	if path.IsRoot() {
		return m.root, true
	}
	n, ok := m.nodes[path]
	return n, ok
}

// Len returns the number of nodes below the root.
func (m *Model) Len() int {
	return len(m.nodes)
}

// Nodes returns every node below the root, in no particular order.
func (m *Model) Nodes() []*Node {
	out := make([]*Node, 0, len(m.nodes))
	for _, n := range m.nodes {
		out = append(out, n)
	}
	return out
}

func (m *Model) attach(parent, n *Node) {
	parent.addChild(n)
	m.nodes[n.path] = n
}

// detach unlinks n from its parent and drops its whole subtree from the index.
func (m *Model) detach(n *Node) {
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	m.unindex(n)
}

func (m *Model) unindex(n *Node) {
	delete(m.nodes, n.path)
	for el := n.children.Front(); el != nil; el = el.Next() {
		m.unindex(el.Value.(*Node))
	}
}

// clear drops every node of this model's set below the root and returns the
// detached top-level nodes.
func (m *Model) clear() []*Node {
	var top []*Node
	for _, c := range m.root.Children() {
		if c.set != m.root.set || c.IsRoot() {
			continue
		}
		m.detach(c)
		top = append(top, c)
	}
	m.nodes = make(map[models.ItemPath]*Node)
	return top
}

// Walk visits n and its descendants depth first in child order until fn
// returns false.
func Walk(n *Node, fn func(n *Node) bool) bool {
	if !fn(n) {
		return false
	}
	for el := n.children.Front(); el != nil; el = el.Next() {
		if !Walk(el.Value.(*Node), fn) {
			return false
		}
	}
	return true
}
