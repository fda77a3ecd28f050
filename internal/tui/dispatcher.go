// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// dispatchMsg carries a closure into the bubbletea event loop.
type dispatchMsg struct {
	fn func()
}

// Dispatcher runs closures on the bubbletea event loop, which is the
// presentation context of the Surface. While no program is attached,
// closures run on the caller's goroutine.
type Dispatcher struct {
	mu      sync.Mutex
	program *tea.Program
}

// NewDispatcher returns a detached dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Attach routes closures to p. Send blocks until p's event loop runs, so
// attach right before p.Run.
func (d *Dispatcher) Attach(p *tea.Program) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.program = p
}

// Detach makes closures run inline again. Call it once the program exited.
func (d *Dispatcher) Detach() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.program = nil
}

// Dispatch implements serializer.Dispatcher.
func (d *Dispatcher) Dispatch(fn func()) {
	d.mu.Lock()
	p := d.program
	d.mu.Unlock()

	if p == nil {
		fn()
		return
	}
	p.Send(dispatchMsg{fn: fn})
}
