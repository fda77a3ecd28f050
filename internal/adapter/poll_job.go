// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-diff-tree/internal/logger"
)

// DefaultPollInterval is used when a job is started with a non-positive
// interval.
const DefaultPollInterval = 5 * time.Second

// Poller refreshes a source from its engine.
type Poller interface {
	Poll(ctx context.Context) error
}

// PollJob calls Poll on a ticker. The job is idle until Start or Run is
// called.
type PollJob struct {
	poller   Poller
	ctx      context.Context
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPollJob creates a job polling p every interval. ctx bounds the job
// started by Run.
func NewPollJob(ctx context.Context, p Poller, interval time.Duration, log *logger.Logger) *PollJob {
	if log == nil {
		log = logger.Nop()
	}
	return &PollJob{
		poller:   p,
		ctx:      ctx,
		interval: interval,
		logger:   log.WithComponent("poll-job"),
	}
}

// Run starts the job with the context and interval given to NewPollJob. It
// returns immediately.
func (j *PollJob) Run() {
	j.Start(j.ctx, j.interval)
}

// Start stops any previously running job, then launches a goroutine calling
// Poll every interval until ctx is canceled or Stop is called. A failed poll
// is logged and retried on the next tick.
func (j *PollJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.poll(jobCtx)
			}
		}
	}()
}

// Stop cancels the running job and waits until its goroutine exits. It is a
// no-op when the job is not running.
func (j *PollJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *PollJob) poll(ctx context.Context) {
	err := j.poller.Poll(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	j.logger.Warn().
		Str("func", "PollJob.poll").
		Err(err).
		Msg("poll failed")
}
