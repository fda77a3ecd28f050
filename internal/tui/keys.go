// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	check    key.Binding
	mode     key.Binding
	builder  key.Binding
	copy     key.Binding
	errors   key.Binding
	info     key.Binding
	esc      key.Binding
	quit     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l", "enter")),
	pageUp:   key.NewBinding(key.WithKeys("pgup")),
	pageDown: key.NewBinding(key.WithKeys("pgdown")),
	check:    key.NewBinding(key.WithKeys(" ", "space", "x")),
	mode:     key.NewBinding(key.WithKeys("m")),
	builder:  key.NewBinding(key.WithKeys("b")),
	copy:     key.NewBinding(key.WithKeys("c")),
	errors:   key.NewBinding(key.WithKeys("e")),
	info:     key.NewBinding(key.WithKeys("i")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
