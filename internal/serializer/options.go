// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	DefaultDispatchDelay     = 150 * time.Millisecond
	DefaultBusyDispatchDelay = 20 * time.Millisecond
)

// DelayPolicy chooses how long to wait after a batch before flushing the
// pending label refreshes.
type DelayPolicy func(summary BatchSummary) time.Duration

// NewDelayPolicy returns the standard policy: busy-state changes shorten the
// wait so busy indicators appear promptly.
func NewDelayPolicy(delay, busyDelay time.Duration) DelayPolicy {
	if delay <= 0 {
		delay = DefaultDispatchDelay
	}
	if busyDelay <= 0 || busyDelay > delay {
		busyDelay = min(DefaultBusyDispatchDelay, delay)
	}
	return func(summary BatchSummary) time.Duration {
		if summary.BusyChanged {
			return busyDelay
		}
		return delay
	}
}

// Option configures a Serializer.
type Option func(s *Serializer)

// WithDelayPolicy replaces the default delay policy.
func WithDelayPolicy(policy DelayPolicy) Option {
	return func(s *Serializer) {
		if policy != nil {
			s.policy = policy
		}
	}
}

// WithQueueSize bounds the queue; producers block while it is full.
func WithQueueSize(size int) Option {
	return func(s *Serializer) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDispatcher sets the presentation context used by Submit.
func WithDispatcher(d Dispatcher) Option {
	return func(s *Serializer) {
		s.dispatcher = d
	}
}

// WithPrometheus registers serializer metrics on reg.
func WithPrometheus(reg prometheus.Registerer, namespace string) Option {
	if reg == nil {
		return nil
	}
	return func(s *Serializer) {
		s.metrics = newMetrics(namespace, s)
		s.registerer = reg
	}
}
