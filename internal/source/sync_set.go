// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/huandu/skiplist"

	"github.com/MKhiriev/go-diff-tree/internal/events"
	"github.com/MKhiriev/go-diff-tree/internal/logger"
	"github.com/MKhiriev/go-diff-tree/models"
)

// pathOrder orders skiplist keys of type models.ItemPath.
type pathOrder struct{}

// Compare implements skiplist interface
func (pathOrder) Compare(lhs, rhs interface{}) int {
	return strings.Compare(string(lhs.(models.ItemPath)), string(rhs.(models.ItemPath)))
}

// CalcScore implements skiplist interface
func (pathOrder) CalcScore(key interface{}) float64 {
	return 0
}

// SyncSet is a concurrency-safe set of out-of-sync states ordered by path.
// In-sync states are never stored: putting one removes the path.
//
// The mutating methods Apply, Replace and Reset publish the resulting
// DeltaEvent to connected listeners after the set has been updated, so a
// listener reading the set always sees a snapshot at least as new as the
// event. Put and Remove mutate silently; they are used by owners that
// publish their own events (such as the change-set router's subsets).
type SyncSet struct {
	log *logger.Logger
	bus *events.Bus[models.DeltaEvent]

	mu     sync.RWMutex
	states *skiplist.SkipList
	errs   map[models.ItemPath]models.ErrorRecord
}

// NewSyncSet creates an empty set.
func NewSyncSet(log *logger.Logger) *SyncSet {
	if log == nil {
		log = logger.Nop()
	}
	return &SyncSet{
		log:    log,
		bus:    events.NewBus[models.DeltaEvent]("sync-set", log),
		states: skiplist.New(pathOrder{}),
		errs:   make(map[models.ItemPath]models.ErrorRecord),
	}
}

// Connect implements Source.
func (s *SyncSet) Connect(ctx context.Context, fn events.Handler[models.DeltaEvent]) (func(), error) {
	if err := ctx.Err(); err != nil {
		return func() {}, err
	}
	return s.bus.Subscribe(fn), nil
}

// State implements Snapshot.
func (s *SyncSet) State(path models.ItemPath) (models.SyncState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	el := s.states.Get(path)
	if el == nil {
		return models.SyncState{}, false
	}
	return el.Value.(models.SyncState), true
}

// Has reports whether path is in the set.
func (s *SyncSet) Has(path models.ItemPath) bool {
	_, ok := s.State(path)
	return ok
}

// Descendants implements Snapshot. The scan starts at the first key not
// below the descendant prefix and stops at the first key outside it.
func (s *SyncSet) Descendants(path models.ItemPath) []models.SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := path.DescendantPrefix()
	var out []models.SyncState
	for el := s.states.Find(models.ItemPath(prefix)); el != nil; el = el.Next() {
		if !strings.HasPrefix(string(el.Key().(models.ItemPath)), prefix) {
			break
		}
		out = append(out, el.Value.(models.SyncState))
	}
	return out
}

// All implements Snapshot.
func (s *SyncSet) All() []models.SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SyncState, 0, s.states.Len())
	for el := s.states.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(models.SyncState))
	}
	return out
}

// Len returns the number of out-of-sync items.
func (s *SyncSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states.Len()
}

// Put stores states without publishing. In-sync states remove their path.
func (s *SyncSet) Put(states ...models.SyncState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range states {
		if !st.IsOutOfSync() {
			s.states.Remove(st.Path)
			continue
		}
		s.states.Set(st.Path, st)
	}
}

// Remove deletes paths without publishing and reports how many were present.
func (s *SyncSet) Remove(paths ...models.ItemPath) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, p := range paths {
		if s.states.Remove(p) != nil {
			removed++
		}
	}
	return removed
}

// Clear empties the set without publishing.
func (s *SyncSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states.Init()
	s.errs = make(map[models.ItemPath]models.ErrorRecord)
}

// Apply records changed states and removed paths, then publishes the
// resulting delta. A state for an unknown path is an addition, for a known
// path a change, and an in-sync state for a known path a removal.
func (s *SyncSet) Apply(states []models.SyncState, removed []models.ItemPath) models.DeltaEvent {
	var evt models.DeltaEvent

	s.mu.Lock()
	for _, st := range states {
		_, known := s.get(st.Path)
		switch {
		case !st.IsOutOfSync() && known:
			s.states.Remove(st.Path)
			evt.Removed = append(evt.Removed, st.Path)
		case !st.IsOutOfSync():
		case known:
			s.states.Set(st.Path, st)
			evt.Changed = append(evt.Changed, st)
		default:
			s.states.Set(st.Path, st)
			evt.Added = append(evt.Added, st)
		}
	}
	for _, p := range removed {
		if s.states.Remove(p) != nil {
			evt.Removed = append(evt.Removed, p)
		}
	}
	s.mu.Unlock()

	s.publish(evt)
	return evt
}

// Replace swaps the whole snapshot for states and publishes the minimal
// delta between the old and the new snapshot.
func (s *SyncSet) Replace(states []models.SyncState) models.DeltaEvent {
	next := make(map[models.ItemPath]models.SyncState, len(states))
	for _, st := range states {
		if st.IsOutOfSync() {
			next[st.Path] = st
		}
	}

	var evt models.DeltaEvent

	s.mu.Lock()
	for el := s.states.Front(); el != nil; {
		p := el.Key().(models.ItemPath)
		old := el.Value.(models.SyncState)
		el = el.Next()

		st, ok := next[p]
		if !ok {
			s.states.Remove(p)
			evt.Removed = append(evt.Removed, p)
			continue
		}
		if !SameState(old, st) {
			s.states.Set(p, st)
			evt.Changed = append(evt.Changed, st)
		}
		delete(next, p)
	}
	for _, st := range next {
		s.states.Set(st.Path, st)
		evt.Added = append(evt.Added, st)
	}
	s.mu.Unlock()

	sort.Slice(evt.Added, func(i, j int) bool { return evt.Added[i].Path < evt.Added[j].Path })
	s.publish(evt)
	return evt
}

// Reset replaces the snapshot with states and publishes a reset event.
func (s *SyncSet) Reset(states []models.SyncState) {
	s.mu.Lock()
	s.states.Init()
	for _, st := range states {
		if st.IsOutOfSync() {
			s.states.Set(st.Path, st)
		}
	}
	s.mu.Unlock()

	s.publish(models.ResetEvent())
}

// Error returns the comparison failure recorded for path.
func (s *SyncSet) Error(path models.ItemPath) (models.ErrorRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.errs[path]
	return rec, ok
}

// SetErrors replaces every recorded comparison failure. Of several records
// for one path the most severe is kept.
func (s *SyncSet) SetErrors(recs []models.ErrorRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errs = make(map[models.ItemPath]models.ErrorRecord, len(recs))
	for _, rec := range recs {
		if prev, ok := s.errs[rec.Path]; ok && prev.Marker() >= rec.Marker() {
			continue
		}
		s.errs[rec.Path] = rec
	}
}

// Errors implements Source.
func (s *SyncSet) Errors() []models.ErrorRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ErrorRecord, 0, len(s.errs))
	for _, rec := range s.errs {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func (s *SyncSet) get(path models.ItemPath) (models.SyncState, bool) {
	el := s.states.Get(path)
	if el == nil {
		return models.SyncState{}, false
	}
	return el.Value.(models.SyncState), true
}

func (s *SyncSet) publish(evt models.DeltaEvent) {
	if evt.IsEmpty() {
		return
	}
	if failed := s.bus.Publish(evt); failed > 0 {
		s.log.Warn().
			Str("func", "SyncSet.publish").
			Int("failed", failed).
			Int("size", evt.Size()).
			Bool("reset", evt.Reset).
			Msg("some delta listeners failed")
	}
}

// SameState reports whether two states describe the same comparison result.
func SameState(a, b models.SyncState) bool {
	return a.Path == b.Path &&
		a.Type == b.Type &&
		a.Kind == b.Kind &&
		sameHandle(a.Local, b.Local) &&
		sameHandle(a.Base, b.Base) &&
		sameHandle(a.Remote, b.Remote)
}

func sameHandle(a, b *models.Handle) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Hash == b.Hash && a.Version == b.Version && a.Deleted == b.Deleted
}
