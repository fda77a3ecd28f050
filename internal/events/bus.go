// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events provides the typed publish/subscribe primitive used to fan
// notifications out to observers: change-source deltas, host property
// changes and marker notifications.
//
// A Bus keeps its subscribers in a copy-on-write slice. Publish iterates the
// slice that was current when it started, so observers may subscribe or
// unsubscribe from any goroutine (including from inside a callback) without
// affecting an in-flight notification. Every callback runs isolated: a
// returned error or a panic is logged and the remaining observers are still
// notified.
package events

import (
	"sync"

	"github.com/MKhiriev/go-diff-tree/internal/logger"
)

// Handler observes events of type T.
type Handler[T any] func(evt T) error

type subscription[T any] struct {
	id int64
	fn Handler[T]
}

// Bus is a copy-on-write registry of typed handlers.
type Bus[T any] struct {
	name string
	log  *logger.Logger

	mu     sync.Mutex
	nextID int64
	subs   []subscription[T]
}

// NewBus creates a bus; name appears in log entries for failing handlers.
func NewBus[T any](name string, log *logger.Logger) *Bus[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Bus[T]{name: name, log: log}
}

// Subscribe registers fn and returns a function that removes it. The
// returned function is idempotent.
func (b *Bus[T]) Subscribe(fn Handler[T]) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	next := make([]subscription[T], len(b.subs), len(b.subs)+1)
	copy(next, b.subs)
	b.subs = append(next, subscription[T]{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus[T]) remove(id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := make([]subscription[T], 0, len(b.subs))
	for _, s := range b.subs {
		if s.id != id {
			next = append(next, s)
		}
	}
	b.subs = next
}

// Len returns the number of registered handlers.
func (b *Bus[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Publish delivers evt to every handler registered when Publish started and
// returns how many handlers failed.
func (b *Bus[T]) Publish(evt T) (failed int) {
	b.mu.Lock()
	subs := b.subs
	b.mu.Unlock()

	for _, s := range subs {
		fn := s.fn
		if err := SafeRun(func() error { return fn(evt) }); err != nil {
			failed++
			b.log.Err(err).
				Str("func", "Bus.Publish").
				Str("bus", b.name).
				Int64("subscriber", s.id).
				Msg("event handler failed")
		}
	}
	return failed
}
