// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-diff-tree/internal/logger"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if s, ok := w.workers[i].(Stopper); ok {
			s.Stop()
		}
	}
}

// Loop runs a blocking function, such as Serializer.Run, as a Worker.
type Loop struct {
	name   string
	ctx    context.Context
	fn     func(ctx context.Context) error
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// NewLoop creates a loop running fn under a child of ctx.
func NewLoop(ctx context.Context, name string, fn func(ctx context.Context) error, log *logger.Logger) *Loop {
	if log == nil {
		log = logger.Nop()
	}
	return &Loop{
		name:   name,
		ctx:    ctx,
		fn:     fn,
		logger: log.WithComponent("workers"),
	}
}

// Run starts fn in a goroutine. A running loop is left alone.
func (l *Loop) Run() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done != nil {
		return
	}

	ctx, cancel := context.WithCancel(l.ctx)
	l.cancel = cancel
	l.done = make(chan struct{})
	done := l.done

	go func() {
		defer close(done)
		err := l.fn(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			l.logger.Err(err).
				Str("func", "Loop.Run").
				Str("worker", l.name).
				Msg("worker stopped with error")
		}
		l.mu.Lock()
		l.err = err
		l.mu.Unlock()
	}()
}

// Stop cancels fn and waits for it to return.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Wait blocks until fn returns and reports its error.
func (l *Loop) Wait() error {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()
	if done == nil {
		return nil
	}
	<-done

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}
