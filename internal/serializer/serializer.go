// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package serializer runs every mutation of the diff-tree model on one
// worker goroutine.
//
// Producers on any goroutine queue units (delta events, resets, label
// refresh requests, busy-state changes and caller actions). The worker
// drains the queue in FIFO batches and hands each unit to a Handler, so the
// model is never touched concurrently. Label refreshes are coalesced into a
// pending dirty set that is flushed once per delay window; the window
// shrinks while busy-state changes are pending.
//
// A failing or panicking unit is logged and counted, and the worker moves on
// to the next one.
package serializer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cheggaaa/mb/v3"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"

	"github.com/MKhiriev/go-diff-tree/internal/events"
	"github.com/MKhiriev/go-diff-tree/internal/logger"
	"github.com/MKhiriev/go-diff-tree/models"
)

//go:generate mockgen -source=serializer.go -destination=../mock/serializer_mock.go -package=mock

// Handler applies units on the worker goroutine.
type Handler interface {
	// HandleDelta applies a change-source delta to the model.
	HandleDelta(ctx context.Context, evt models.DeltaEvent) error
	// HandleReset discards the model and rebuilds it from the snapshot.
	HandleReset(ctx context.Context) error
	// HandleBusy updates the busy flag of the given nodes.
	HandleBusy(ctx context.Context, keys []models.NodeKey, busy bool) error
	// FlushLabels pushes refreshed labels of the given nodes to the sink.
	FlushLabels(ctx context.Context, keys []models.NodeKey) error
}

// Dispatcher runs functions on the presentation context.
type Dispatcher interface {
	Dispatch(fn func())
}

// Serializer is the single-threaded FIFO worker for model mutations.
type Serializer struct {
	log        *logger.Logger
	handler    Handler
	dispatcher Dispatcher
	policy     DelayPolicy
	queueSize  int
	metrics    *metrics
	registerer prometheus.Registerer

	queue *mb.MB[*unit]

	resetGen atomic.Int64
	pending  atomic.Int64
	active   atomic.Bool
	closed   atomic.Bool

	dirtyMu sync.Mutex
	dirty   map[models.NodeKey]int64

	flushMu  sync.Mutex
	timer    *time.Timer
	deadline time.Time
	armed    bool
}

// New creates a serializer. Run must be called to start the worker.
func New(handler Handler, log *logger.Logger, opts ...Option) (*Serializer, error) {
	if handler == nil {
		return nil, ErrNoHandler
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &Serializer{
		log:     log,
		handler: handler,
		policy:  NewDelayPolicy(DefaultDispatchDelay, DefaultBusyDispatchDelay),
		dirty:   make(map[models.NodeKey]int64),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.queue = mb.New[*unit](s.queueSize)

	if s.metrics != nil {
		for _, c := range s.metrics.collectors() {
			if err := s.registerer.Register(c); err != nil {
				return nil, fmt.Errorf("register serializer metrics: %w", err)
			}
		}
	}
	return s, nil
}

// Run drains the queue until ctx is canceled or Close is called.
func (s *Serializer) Run(ctx context.Context) error {
	log := s.log.GetChildLogger()
	log.Debug().Str("func", "Serializer.Run").Msg("worker started")
	defer log.Debug().Str("func", "Serializer.Run").Msg("worker stopped")

	for {
		units, err := s.queue.Wait(ctx)
		if err != nil {
			if errors.Is(err, mb.ErrClosed) {
				s.abandon(s.queue.GetAll(), ErrClosed)
				return nil
			}
			return err
		}
		s.processBatch(ctx, units)
	}
}

// Close stops the worker after the units already drained. Units still queued
// are dropped; a Submit waiting on one of them returns ErrClosed.
func (s *Serializer) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	s.flushMu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.armed = false
	s.flushMu.Unlock()

	err := s.queue.Close()
	s.abandon(s.queue.GetAll(), ErrClosed)
	return err
}

// abandon settles units that will never be processed.
func (s *Serializer) abandon(units []*unit, err error) {
	if len(units) == 0 {
		return
	}
	for _, u := range units {
		if u.done != nil {
			u.done <- err
		}
		s.pending.Dec()
	}
	s.log.Debug().
		Str("func", "Serializer.abandon").
		Int("units", len(units)).
		Msg("queued units dropped")
}

// QueueDelta enqueues a change-source delta.
func (s *Serializer) QueueDelta(ctx context.Context, evt models.DeltaEvent) error {
	if evt.Reset {
		return s.QueueReset(ctx)
	}
	u := newUnit(unitDelta, s.resetGen.Load())
	u.delta = evt
	return s.enqueue(ctx, u)
}

// QueueReset enqueues a full rebuild. Label refresh units queued before it
// are discarded when they are reached; deltas are kept.
func (s *Serializer) QueueReset(ctx context.Context) error {
	return s.enqueue(ctx, newUnit(unitReset, s.resetGen.Inc()))
}

// QueueLabels enqueues a label refresh request for keys.
func (s *Serializer) QueueLabels(ctx context.Context, keys ...models.NodeKey) error {
	if len(keys) == 0 {
		return nil
	}
	u := newUnit(unitLabels, s.resetGen.Load())
	u.keys = keys
	return s.enqueue(ctx, u)
}

// QueueBusy enqueues a busy-state change for keys.
func (s *Serializer) QueueBusy(ctx context.Context, keys []models.NodeKey, busy bool) error {
	if len(keys) == 0 {
		return nil
	}
	u := newUnit(unitBusy, s.resetGen.Load())
	u.keys = keys
	u.busy = busy
	return s.enqueue(ctx, u)
}

// Submit enqueues action. When onPresentation is set the action runs on the
// presentation context and Submit blocks until it has completed, returning
// its error; it must therefore not be called from the presentation context
// itself. Otherwise Submit returns once the action is queued.
func (s *Serializer) Submit(ctx context.Context, action Action, onPresentation bool) error {
	u := newUnit(unitAction, s.resetGen.Load())
	u.action = action
	u.onPresentation = onPresentation
	if onPresentation {
		u.done = make(chan error, 1)
	}

	if err := s.enqueue(ctx, u); err != nil {
		return err
	}
	if !onPresentation {
		return nil
	}

	select {
	case err := <-u.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// MarkDirty records keys whose labels must be refreshed at the next flush.
// It may be called from any goroutine.
func (s *Serializer) MarkDirty(keys ...models.NodeKey) {
	if len(keys) == 0 {
		return
	}
	gen := s.resetGen.Load()

	s.dirtyMu.Lock()
	for _, k := range keys {
		s.dirty[k] = gen
	}
	s.dirtyMu.Unlock()

	s.arm(s.policy(BatchSummary{}))
}

// IsBusy reports whether units are queued or being processed, or label
// refreshes are waiting for a flush.
func (s *Serializer) IsBusy() bool {
	if s.pending.Load() > 0 || s.active.Load() {
		return true
	}
	s.dirtyMu.Lock()
	defer s.dirtyMu.Unlock()
	return len(s.dirty) > 0
}

// WaitIdle blocks until IsBusy reports false or ctx is done.
func (s *Serializer) WaitIdle(ctx context.Context) error {
	t := time.NewTicker(5 * time.Millisecond)
	defer t.Stop()

	for s.IsBusy() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	return nil
}

func (s *Serializer) enqueue(ctx context.Context, u *unit) error {
	if s.closed.Load() {
		return ErrClosed
	}
	s.pending.Inc()
	if err := s.queue.Add(ctx, u); err != nil {
		s.pending.Dec()
		if errors.Is(err, mb.ErrClosed) {
			return ErrClosed
		}
		return err
	}
	return nil
}

func (s *Serializer) processBatch(ctx context.Context, units []*unit) {
	s.active.Store(true)

	var summary BatchSummary
	for _, u := range units {
		summary.add(u)
		s.process(ctx, u)
		s.pending.Dec()
	}
	s.metrics.batchSize(len(units))

	s.active.Store(false)
	s.arm(s.policy(summary))
}

func (s *Serializer) process(ctx context.Context, u *unit) {
	if u.kind == unitLabels && u.gen < s.resetGen.Load() {
		s.metrics.discard()
		s.log.Debug().
			Str("func", "Serializer.process").
			Str("unit", u.id).
			Int("keys", len(u.keys)).
			Msg("label refresh discarded by reset")
		return
	}

	s.metrics.unit(u.kind)
	err := events.SafeRun(func() error { return s.apply(ctx, u) })
	if err != nil {
		s.metrics.failure(u.kind)
		s.log.Err(err).
			Str("func", "Serializer.process").
			Str("unit", u.id).
			Str("kind", u.kind.String()).
			Msg("unit failed")
	}
}

func (s *Serializer) apply(ctx context.Context, u *unit) error {
	switch u.kind {
	case unitDelta:
		return s.handler.HandleDelta(ctx, u.delta)
	case unitReset:
		s.dropDirtyBefore(u.gen)
		return s.handler.HandleReset(ctx)
	case unitLabels:
		s.dirtyMu.Lock()
		for _, k := range u.keys {
			s.dirty[k] = u.gen
		}
		s.dirtyMu.Unlock()
		return nil
	case unitBusy:
		return s.handler.HandleBusy(ctx, u.keys, u.busy)
	case unitAction:
		return s.runAction(ctx, u)
	case unitFlush:
		return s.flush(ctx)
	default:
		return fmt.Errorf("unknown unit kind %d", u.kind)
	}
}

func (s *Serializer) runAction(ctx context.Context, u *unit) error {
	if !u.onPresentation || s.dispatcher == nil {
		err := events.SafeRun(func() error { return u.action(ctx) })
		if u.done != nil {
			u.done <- err
		}
		return err
	}

	finished := make(chan error, 1)
	s.dispatcher.Dispatch(func() {
		finished <- events.SafeRun(func() error { return u.action(ctx) })
	})

	select {
	case err := <-finished:
		u.done <- err
		return err
	case <-ctx.Done():
		u.done <- ctx.Err()
		return ctx.Err()
	}
}

func (s *Serializer) dropDirtyBefore(gen int64) {
	s.dirtyMu.Lock()
	defer s.dirtyMu.Unlock()

	for k, g := range s.dirty {
		if g < gen {
			delete(s.dirty, k)
		}
	}
}

// arm schedules a flush unit after delay, or pulls an armed flush forward
// when delay ends earlier than its current deadline.
func (s *Serializer) arm(delay time.Duration) {
	s.dirtyMu.Lock()
	empty := len(s.dirty) == 0
	s.dirtyMu.Unlock()
	if empty || s.closed.Load() {
		return
	}

	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	deadline := time.Now().Add(delay)
	if s.armed && !deadline.Before(s.deadline) {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.armed = true
	s.deadline = deadline
	s.timer = time.AfterFunc(delay, s.fire)
}

func (s *Serializer) fire() {
	if err := s.enqueue(context.Background(), newUnit(unitFlush, s.resetGen.Load())); err != nil && !errors.Is(err, ErrClosed) {
		s.log.Err(err).Str("func", "Serializer.fire").Msg("failed to queue label flush")
	}
}

func (s *Serializer) flush(ctx context.Context) error {
	s.flushMu.Lock()
	s.armed = false
	s.flushMu.Unlock()

	s.dirtyMu.Lock()
	keys := make([]models.NodeKey, 0, len(s.dirty))
	for k := range s.dirty {
		keys = append(keys, k)
	}
	s.dirty = make(map[models.NodeKey]int64)
	s.dirtyMu.Unlock()

	if len(keys) == 0 {
		return nil
	}
	s.metrics.flush()
	return s.handler.FlushLabels(ctx, models.UniqueKeys(keys))
}
