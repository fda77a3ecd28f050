// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	units     *prometheus.CounterVec
	failures  *prometheus.CounterVec
	discarded prometheus.Counter
	flushes   prometheus.Counter
	batch     prometheus.Histogram
	queue     prometheus.GaugeFunc
}

func newMetrics(namespace string, s *Serializer) *metrics {
	namespace = strings.Join(strings.Split(namespace, "."), "_")
	const subsystem = "serializer"

	return &metrics{
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "units_total",
			Help:      "processed units by kind",
		}, []string{"kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "failures_total",
			Help:      "failed units by kind",
		}, []string{"kind"}),
		discarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "discarded_total",
			Help:      "label units discarded by a later reset",
		}),
		flushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "flushes_total",
			Help:      "label flushes dispatched",
		}),
		batch: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "batch_units",
			Help:      "units drained per worker iteration",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		queue: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "queue_len",
			Help:      "units waiting in the queue",
		}, func() float64 {
			return float64(s.queue.Len())
		}),
	}
}

func (m *metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.units, m.failures, m.discarded, m.flushes, m.batch, m.queue}
}

func (m *metrics) unit(kind unitKind) {
	if m != nil {
		m.units.WithLabelValues(kind.String()).Inc()
	}
}

func (m *metrics) failure(kind unitKind) {
	if m != nil {
		m.failures.WithLabelValues(kind.String()).Inc()
	}
}

func (m *metrics) discard() {
	if m != nil {
		m.discarded.Inc()
	}
}

func (m *metrics) flush() {
	if m != nil {
		m.flushes.Inc()
	}
}

func (m *metrics) batchSize(n int) {
	if m != nil {
		m.batch.Observe(float64(n))
	}
}
