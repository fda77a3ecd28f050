// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-diff-tree/internal/tree"
	"github.com/MKhiriev/go-diff-tree/models"
)

type row struct {
	view     tree.NodeView
	parent   models.NodeKey
	children []models.NodeKey
}

// visibleRow is one line of the rendered tree.
type visibleRow struct {
	view  tree.NodeView
	depth int
	// leaf reports that the row has nothing to expand.
	leaf bool
}

// Surface is the in-memory presentation of the diff tree. It implements
// tree.Sink and is only touched from the bubbletea event loop, or from the
// serializer worker once the program has exited.
type Surface struct {
	rows     map[models.NodeKey]*row
	top      []models.NodeKey
	expanded map[models.NodeKey]bool
	checked  map[models.NodeKey]bool
	cursor   models.NodeKey

	suspended int
	disposed  bool
}

var _ tree.Sink = (*Surface)(nil)

// NewSurface returns an empty surface.
func NewSurface() *Surface {
	return &Surface{
		rows:     make(map[models.NodeKey]*row),
		expanded: make(map[models.NodeKey]bool),
		checked:  make(map[models.NodeKey]bool),
	}
}

// Add implements tree.Sink. Children are kept with containers first, then
// by label.
func (s *Surface) Add(parent models.NodeKey, views ...tree.NodeView) {
	for _, v := range views {
		if old, ok := s.rows[v.Key]; ok {
			s.detach(v.Key, old.parent)
		}
		s.rows[v.Key] = &row{view: v, parent: parent, children: s.childrenOf(v.Key)}
		s.attach(parent, v.Key)
	}
}

// Remove implements tree.Sink.
func (s *Surface) Remove(keys ...models.NodeKey) {
	for _, k := range keys {
		r, ok := s.rows[k]
		if !ok {
			continue
		}
		s.detach(k, r.parent)
		s.drop(k)
	}
	if _, ok := s.rows[s.cursor]; !ok {
		s.cursor = ""
	}
}

// Refresh implements tree.Sink. Views of nodes that are not presented are
// ignored.
func (s *Surface) Refresh(views ...tree.NodeView) {
	for _, v := range views {
		r, ok := s.rows[v.Key]
		if !ok {
			continue
		}
		relabel := r.view.Label != v.Label || r.view.Container != v.Container
		r.view = v
		if relabel {
			s.sortChildren(r.parent)
		}
	}
}

func (s *Surface) Expand(keys ...models.NodeKey) {
	for _, k := range keys {
		if _, ok := s.rows[k]; ok {
			s.expanded[k] = true
		}
	}
}

// Collapse hides the children of the nodes.
func (s *Surface) Collapse(keys ...models.NodeKey) {
	for _, k := range keys {
		delete(s.expanded, k)
	}
}

// Select moves the cursor to the first presented key. The surface has a
// single selection.
func (s *Surface) Select(keys ...models.NodeKey) {
	for _, k := range keys {
		if _, ok := s.rows[k]; ok {
			s.cursor = k
			return
		}
	}
}

func (s *Surface) SetChecked(keys ...models.NodeKey) {
	for _, k := range keys {
		if _, ok := s.rows[k]; ok {
			s.checked[k] = true
		}
	}
}

// ToggleChecked flips the checked state of key.
func (s *Surface) ToggleChecked(key models.NodeKey) {
	if _, ok := s.rows[key]; !ok {
		return
	}
	if s.checked[key] {
		delete(s.checked, key)
		return
	}
	s.checked[key] = true
}

func (s *Surface) ExpandedItems() []models.NodeKey {
	return sortedKeys(s.expanded)
}

func (s *Surface) SelectedItems() []models.NodeKey {
	if _, ok := s.rows[s.cursor]; !ok {
		return nil
	}
	return []models.NodeKey{s.cursor}
}

func (s *Surface) CheckedItems() []models.NodeKey {
	return sortedKeys(s.checked)
}

func (s *Surface) Contains(key models.NodeKey) bool {
	_, ok := s.rows[key]
	return ok
}

// SetRedraw implements tree.Sink. Calls nest: redraw resumes when every
// suspension has been matched.
func (s *Surface) SetRedraw(on bool) {
	if on {
		if s.suspended > 0 {
			s.suspended--
		}
		return
	}
	s.suspended++
}

// Redrawing reports whether the surface may be repainted.
func (s *Surface) Redrawing() bool {
	return s.suspended == 0
}

func (s *Surface) Disposed() bool {
	return s.disposed
}

// Dispose marks the surface gone; sink instructions are skipped from then on.
func (s *Surface) Dispose() {
	s.disposed = true
}

// Len returns the number of presented nodes.
func (s *Surface) Len() int {
	return len(s.rows)
}

// View returns the presented view of key.
func (s *Surface) View(key models.NodeKey) (tree.NodeView, bool) {
	r, ok := s.rows[key]
	if !ok {
		return tree.NodeView{}, false
	}
	return r.view, true
}

// Cursor returns the selected key, or "" when nothing is selected.
func (s *Surface) Cursor() models.NodeKey {
	if _, ok := s.rows[s.cursor]; !ok {
		return ""
	}
	return s.cursor
}

// Visible returns the rows reachable through expanded nodes, in display
// order.
func (s *Surface) Visible() []visibleRow {
	var out []visibleRow
	var walk func(keys []models.NodeKey, depth int)
	walk = func(keys []models.NodeKey, depth int) {
		for _, k := range keys {
			r := s.rows[k]
			out = append(out, visibleRow{view: r.view, depth: depth, leaf: len(r.children) == 0})
			if s.expanded[k] {
				walk(r.children, depth+1)
			}
		}
	}
	walk(s.top, 0)
	return out
}

// MoveCursor moves the selection by delta visible rows and returns the new
// cursor key.
func (s *Surface) MoveCursor(delta int) models.NodeKey {
	rows := s.Visible()
	if len(rows) == 0 {
		s.cursor = ""
		return ""
	}
	idx := slices.IndexFunc(rows, func(r visibleRow) bool { return r.view.Key == s.cursor })
	switch {
	case idx < 0:
		idx = 0
	default:
		idx = min(max(idx+delta, 0), len(rows)-1)
	}
	s.cursor = rows[idx].view.Key
	return s.cursor
}

// Parent returns the presented parent of key.
func (s *Surface) Parent(key models.NodeKey) (models.NodeKey, bool) {
	r, ok := s.rows[key]
	if !ok {
		return "", false
	}
	_, presented := s.rows[r.parent]
	return r.parent, presented
}

// HasChildren reports whether key has presented children.
func (s *Surface) HasChildren(key models.NodeKey) bool {
	r, ok := s.rows[key]
	return ok && len(r.children) > 0
}

// IsExpanded reports whether key shows its children.
func (s *Surface) IsExpanded(key models.NodeKey) bool {
	return s.expanded[key]
}

// IsChecked reports whether key is checked.
func (s *Surface) IsChecked(key models.NodeKey) bool {
	return s.checked[key]
}

func (s *Surface) childrenOf(key models.NodeKey) []models.NodeKey {
	if r, ok := s.rows[key]; ok {
		return r.children
	}
	return nil
}

func (s *Surface) attach(parent, key models.NodeKey) {
	if p, ok := s.rows[parent]; ok {
		p.children = append(p.children, key)
	} else {
		s.top = append(s.top, key)
	}
	s.sortChildren(parent)
}

func (s *Surface) detach(key, parent models.NodeKey) {
	remove := func(list []models.NodeKey) []models.NodeKey {
		return slices.DeleteFunc(list, func(k models.NodeKey) bool { return k == key })
	}
	if p, ok := s.rows[parent]; ok {
		p.children = remove(p.children)
		return
	}
	s.top = remove(s.top)
}

// drop forgets key and its subtree, including their view state.
func (s *Surface) drop(key models.NodeKey) {
	r, ok := s.rows[key]
	if !ok {
		return
	}
	for _, c := range r.children {
		s.drop(c)
	}
	delete(s.rows, key)
	delete(s.expanded, key)
	delete(s.checked, key)
}

func (s *Surface) sortChildren(parent models.NodeKey) {
	list := s.top
	if p, ok := s.rows[parent]; ok {
		list = p.children
	}
	slices.SortStableFunc(list, func(a, b models.NodeKey) int {
		va, vb := s.rows[a].view, s.rows[b].view
		if va.Container != vb.Container {
			if va.Container {
				return -1
			}
			return 1
		}
		if c := strings.Compare(strings.ToLower(va.Label), strings.ToLower(vb.Label)); c != 0 {
			return c
		}
		return strings.Compare(string(a), string(b))
	})
}

func sortedKeys(m map[models.NodeKey]bool) []models.NodeKey {
	out := make([]models.NodeKey, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
