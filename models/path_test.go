// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanPath(t *testing.T) {
	tests := []struct {
		in   string
		want ItemPath
	}{
		{"", RootPath},
		{"/", RootPath},
		{"p/a", "/p/a"},
		{"/p//a/", "/p/a"},
		{"/p/./a/../b", "/p/b"},
		{"  /p ", "/p"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanPath(tt.in))
		})
	}
}

func TestItemPath_Navigation(t *testing.T) {
	p := ItemPath("/p/a/x.txt")

	assert.Equal(t, ItemPath("/p/a"), p.Parent())
	assert.Equal(t, ItemPath("/p"), p.Parent().Parent())
	assert.Equal(t, RootPath, ItemPath("/p").Parent())
	assert.Equal(t, RootPath, RootPath.Parent())
	assert.Equal(t, "x.txt", p.Name())
	assert.Equal(t, []string{"p", "a", "x.txt"}, p.Segments())
	assert.Equal(t, 3, p.Depth())
	assert.Equal(t, 0, RootPath.Depth())
	assert.Equal(t, ItemPath("/p"), p.Project())
	assert.Equal(t, ItemPath("/p"), ItemPath("/p").Project())
	assert.Equal(t, []ItemPath{"/p", "/p/a"}, p.Ancestors())
	assert.Empty(t, ItemPath("/p").Ancestors())
}

func TestItemPath_IsAncestorOf(t *testing.T) {
	assert.True(t, ItemPath("/p").IsAncestorOf("/p/a/x.txt"))
	assert.True(t, RootPath.IsAncestorOf("/p"))
	assert.False(t, ItemPath("/p").IsAncestorOf("/p"))
	assert.False(t, ItemPath("/p").IsAncestorOf("/pp/a"))
	assert.False(t, ItemPath("/p/a").IsAncestorOf("/p"))
}

func TestItemPath_Rel(t *testing.T) {
	assert.Equal(t, "a/b", ItemPath("/p/a/b").Rel("/p"))
	assert.Equal(t, "p/a/b", ItemPath("/p/a/b").Rel(RootPath))
	assert.Equal(t, "q/a", ItemPath("/q/a").Rel("/p"))
}

func TestMode_Accepts(t *testing.T) {
	assert.True(t, ModeBoth.Accepts(Incoming))
	assert.True(t, ModeBoth.Accepts(Outgoing))
	assert.False(t, ModeBoth.Accepts(InSync))
	assert.True(t, ModeIncoming.Accepts(Incoming))
	assert.False(t, ModeIncoming.Accepts(Outgoing))
	assert.True(t, ModeIncoming.Accepts(Conflicting))
	assert.True(t, ModeOutgoing.Accepts(Outgoing))
	assert.False(t, ModeConflicting.Accepts(Outgoing))
	assert.True(t, ModeConflicting.Accepts(Conflicting))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Outgoing")
	assert.NoError(t, err)
	assert.Equal(t, ModeOutgoing, m)

	m, err = ParseMode("")
	assert.NoError(t, err)
	assert.Equal(t, ModeBoth, m)

	_, err = ParseMode("sideways")
	assert.ErrorIs(t, err, ErrUnknownMode)

	assert.Equal(t, ModeIncoming, ModeBoth.Next())
	assert.Equal(t, ModeBoth, ModeConflicting.Next())
}

func TestNodeKey(t *testing.T) {
	assert.Equal(t, NodeKey("/p/a"), KeyFor("", "/p/a"))
	assert.Equal(t, NodeKey("[fix]/p/a"), KeyFor("fix", "/p/a"))
	assert.Equal(t, NodeKey("[fix]"), ChangeSetKey("fix"))

	set, p := NodeKey("[fix]/p/a").Split()
	assert.Equal(t, "fix", set)
	assert.Equal(t, ItemPath("/p/a"), p)

	set, p = NodeKey("/p/a").Split()
	assert.Empty(t, set)
	assert.Equal(t, ItemPath("/p/a"), p)
}

func TestViewState_Merge(t *testing.T) {
	a := ViewState{Expanded: []NodeKey{"/p", "/q"}, Selected: []NodeKey{"/p/x"}}
	b := ViewState{Expanded: []NodeKey{"/q", "/a"}, Checked: []NodeKey{"/p/x"}}

	got := a.Merge(b)
	assert.Equal(t, []NodeKey{"/a", "/p", "/q"}, got.Expanded)
	assert.Equal(t, []NodeKey{"/p/x"}, got.Selected)
	assert.Equal(t, []NodeKey{"/p/x"}, got.Checked)
	assert.True(t, ViewState{}.IsEmpty())
}
