// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"strings"
)

// NodeKey is the stable presentation identity of a tree node. It is derived
// from the item path (and, inside a change-set sub-tree, the change-set
// name), so it survives a node being destroyed and recreated by a rebuild.
//
// Keys in the default tree are the item path itself; keys inside a change
// set look like "[name]/p/a/x.txt" and the change-set node is "[name]".
type NodeKey string

// KeyFor builds the key of the node presenting path inside set. An empty set
// is the default tree.
func KeyFor(set string, path ItemPath) NodeKey {
	if set == "" {
		return NodeKey(path)
	}
	return NodeKey("[" + set + "]" + string(path))
}

// ChangeSetKey is the key of the node presenting the change set itself.
func ChangeSetKey(name string) NodeKey {
	return KeyFor(name, RootPath)
}

// Split returns the set and path the key was built from.
func (k NodeKey) Split() (set string, path ItemPath) {
	s := string(k)
	if !strings.HasPrefix(s, "[") {
		return "", ItemPath(s)
	}
	end := strings.Index(s, "]")
	if end < 0 {
		return "", ItemPath(s)
	}
	return s[1:end], ItemPath(s[end+1:])
}

func (k NodeKey) String() string {
	return string(k)
}

// ViewState is the user-visible state of the tree surface, captured by key.
type ViewState struct {
	Expanded []NodeKey `json:"expanded,omitempty"`
	Selected []NodeKey `json:"selected,omitempty"`
	Checked  []NodeKey `json:"checked,omitempty"`
}

// IsEmpty reports whether no key is recorded.
func (v ViewState) IsEmpty() bool {
	return len(v.Expanded) == 0 && len(v.Selected) == 0 && len(v.Checked) == 0
}

// Merge returns the union of v and o. Each list is de-duplicated and sorted
// so merged states compare and persist deterministically.
func (v ViewState) Merge(o ViewState) ViewState {
	return ViewState{
		Expanded: UniqueKeys(v.Expanded, o.Expanded),
		Selected: UniqueKeys(v.Selected, o.Selected),
		Checked:  UniqueKeys(v.Checked, o.Checked),
	}
}

// UniqueKeys concatenates the lists, drops duplicates and sorts the result.
func UniqueKeys(lists ...[]NodeKey) []NodeKey {
	seen := make(map[NodeKey]struct{})
	var out []NodeKey
	for _, list := range lists {
		for _, k := range list {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
