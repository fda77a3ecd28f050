// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-diff-tree/internal/events"
	"github.com/MKhiriev/go-diff-tree/internal/logger"
	"github.com/MKhiriev/go-diff-tree/internal/source"
	"github.com/MKhiriev/go-diff-tree/internal/tree"
	"github.com/MKhiriev/go-diff-tree/models"
)

// RemoteSource is a source.Source fed by an [Engine]. It keeps the last
// answer in a SyncSet and publishes the difference between answers.
type RemoteSource struct {
	engine Engine
	set    *source.SyncSet
	logger *logger.Logger

	mu        sync.Mutex
	connected bool
	onMarkers func(ctx context.Context, paths ...models.ItemPath) error
}

var _ tree.MarkerProvider = (*RemoteSource)(nil)

// NewRemoteSource creates a source that is empty until Connect succeeds.
func NewRemoteSource(engine Engine, log *logger.Logger) *RemoteSource {
	if log == nil {
		log = logger.Nop()
	}
	return &RemoteSource{
		engine: engine,
		set:    source.NewSyncSet(log),
		logger: log.WithComponent("remote-source"),
	}
}

// Connect asks the engine for the full snapshot, subscribes fn and seeds
// the snapshot with a reset, so fn's first event is the reset. It returns
// the context error when ctx is canceled while waiting for the engine.
func (r *RemoteSource) Connect(ctx context.Context, fn events.Handler[models.DeltaEvent]) (func(), error) {
	states, recs, err := r.fetch(ctx)
	if err != nil {
		return func() {}, err
	}

	unsubscribe, err := r.set.Connect(ctx, fn)
	if err != nil {
		return unsubscribe, err
	}

	r.mu.Lock()
	r.connected = true
	r.mu.Unlock()

	r.set.SetErrors(recs)
	r.set.Reset(states)

	r.logger.Info().
		Str("func", "RemoteSource.Connect").
		Int("items", r.set.Len()).
		Int("errors", len(recs)).
		Msg("connected to comparison engine")
	return unsubscribe, nil
}

// Poll asks the engine again and publishes what changed since the last
// answer.
func (r *RemoteSource) Poll(ctx context.Context) error {
	r.mu.Lock()
	connected := r.connected
	r.mu.Unlock()
	if !connected {
		return ErrNotConnected
	}

	states, recs, err := r.fetch(ctx)
	if err != nil {
		return err
	}

	marked := errorPathsChanged(r.set.Errors(), recs)
	r.set.SetErrors(recs)
	evt := r.set.Replace(states)

	r.mu.Lock()
	onMarkers := r.onMarkers
	r.mu.Unlock()
	if onMarkers != nil && len(marked) > 0 {
		if err := onMarkers(ctx, marked...); err != nil {
			return fmt.Errorf("notify marker change: %w", err)
		}
	}

	if !evt.IsEmpty() {
		r.logger.Debug().
			Str("func", "RemoteSource.Poll").
			Int("added", len(evt.Added)).
			Int("changed", len(evt.Changed)).
			Int("removed", len(evt.Removed)).
			Msg("engine snapshot changed")
	}
	return nil
}

// OnMarkersChanged registers fn to be told which paths gained or lost an
// error record after a poll.
func (r *RemoteSource) OnMarkersChanged(fn func(ctx context.Context, paths ...models.ItemPath) error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onMarkers = fn
}

// Severity implements tree.MarkerProvider: an item carries the marker of
// its error record, warnings included.
func (r *RemoteSource) Severity(_ context.Context, path models.ItemPath) (models.Severity, error) {
	rec, ok := r.set.Error(path)
	if !ok {
		return models.SeverityNone, nil
	}
	return rec.Marker(), nil
}

// State implements source.Snapshot.
func (r *RemoteSource) State(path models.ItemPath) (models.SyncState, bool) {
	return r.set.State(path)
}

// Descendants implements source.Snapshot.
func (r *RemoteSource) Descendants(path models.ItemPath) []models.SyncState {
	return r.set.Descendants(path)
}

// All implements source.Snapshot.
func (r *RemoteSource) All() []models.SyncState {
	return r.set.All()
}

// Errors implements source.Source.
func (r *RemoteSource) Errors() []models.ErrorRecord {
	return r.set.Errors()
}

func (r *RemoteSource) fetch(ctx context.Context) ([]models.SyncState, []models.ErrorRecord, error) {
	states, err := r.engine.States(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch states: %w", err)
	}

	recs, err := r.engine.Errors(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, nil, fmt.Errorf("fetch errors: %w", err)
		}
		// States are usable without the error list.
		r.logger.Warn().
			Str("func", "RemoteSource.fetch").
			Err(err).
			Msg("cannot fetch comparison errors")
		recs = r.set.Errors()
	}

	return normalizeStates(states), normalizeErrors(recs), nil
}

func normalizeStates(states []models.SyncState) []models.SyncState {
	out := make([]models.SyncState, 0, len(states))
	for _, st := range states {
		st.Path = models.CleanPath(string(st.Path))
		if st.Path.IsRoot() {
			continue
		}
		out = append(out, st)
	}
	return out
}

func normalizeErrors(recs []models.ErrorRecord) []models.ErrorRecord {
	out := make([]models.ErrorRecord, 0, len(recs))
	for _, rec := range recs {
		rec.Path = models.CleanPath(string(rec.Path))
		if rec.Path.IsRoot() {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// errorPathsChanged returns the paths whose marker differs between two
// error lists, sorted.
func errorPathsChanged(old, cur []models.ErrorRecord) []models.ItemPath {
	before := make(map[models.ItemPath]models.Severity, len(old))
	for _, rec := range old {
		before[rec.Path] = before[rec.Path].Max(rec.Marker())
	}
	after := make(map[models.ItemPath]models.Severity, len(cur))
	for _, rec := range cur {
		after[rec.Path] = after[rec.Path].Max(rec.Marker())
	}

	var out []models.ItemPath
	for p, sev := range before {
		if after[p] != sev {
			out = append(out, p)
		}
	}
	for p := range after {
		if _, ok := before[p]; !ok {
			out = append(out, p)
		}
	}
	slices.Sort(out)
	return out
}
