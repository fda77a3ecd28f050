// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package viewstate preserves what the user sees in the tree (expanded,
// selected and checked nodes) across partial and full rebuilds and across
// sessions.
//
// State is keyed by models.NodeKey, never by node pointers, so it survives
// nodes being destroyed and recreated. Keys that are not presented when
// state is restored stay in the cache until the surface has live state of
// the same kind; live state always wins over cached keys.
package viewstate

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-diff-tree/internal/logger"
	"github.com/MKhiriev/go-diff-tree/models"
)

// Surface is the part of the presentation sink the keeper reads and writes.
// tree.Sink satisfies it.
type Surface interface {
	Expand(keys ...models.NodeKey)
	Select(keys ...models.NodeKey)
	SetChecked(keys ...models.NodeKey)
	ExpandedItems() []models.NodeKey
	SelectedItems() []models.NodeKey
	CheckedItems() []models.NodeKey
	Contains(key models.NodeKey) bool
	SetRedraw(on bool)
	Disposed() bool
}

// Keeper captures and restores view state around tree rebuilds. All
// Surface calls must happen on the presentation context; the cache itself
// is safe for concurrent use.
type Keeper struct {
	log     *logger.Logger
	store   Store
	session string

	mu     sync.Mutex
	cached models.ViewState
}

// NewKeeper creates a keeper persisting into store under session. store may
// be nil, in which case Save and Load are no-ops.
func NewKeeper(store Store, session string, log *logger.Logger) *Keeper {
	if log == nil {
		log = logger.Nop()
	}
	return &Keeper{
		log:     log.WithComponent("viewstate"),
		store:   store,
		session: session,
	}
}

// Capture returns the live state of surface. Cached keys only stand in for
// a kind (expanded, selected, checked) the surface has no live state of;
// cached keys of the other kinds are stale and dropped.
func (k *Keeper) Capture(surface Surface) models.ViewState {
	live := models.ViewState{}
	if surface != nil && !surface.Disposed() {
		live = models.ViewState{
			Expanded: surface.ExpandedItems(),
			Selected: surface.SelectedItems(),
			Checked:  surface.CheckedItems(),
		}
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	return models.ViewState{
		Expanded: prefer(live.Expanded, &k.cached.Expanded),
		Selected: prefer(live.Selected, &k.cached.Selected),
		Checked:  prefer(live.Checked, &k.cached.Checked),
	}
}

func prefer(live []models.NodeKey, cached *[]models.NodeKey) []models.NodeKey {
	if len(live) > 0 {
		*cached = nil
		return models.UniqueKeys(live)
	}
	return models.UniqueKeys(*cached)
}

// Restore applies state to surface and returns how many keys were not
// presented. Those keys are cached for the next restore; everything else
// clears from the cache.
func (k *Keeper) Restore(surface Surface, state models.ViewState) (dropped int) {
	if surface == nil || surface.Disposed() {
		k.Cache(state)
		return len(state.Expanded) + len(state.Selected) + len(state.Checked)
	}

	var pending models.ViewState
	split := func(keys []models.NodeKey, missing *[]models.NodeKey) []models.NodeKey {
		var present []models.NodeKey
		for _, key := range keys {
			if surface.Contains(key) {
				present = append(present, key)
			} else {
				*missing = append(*missing, key)
			}
		}
		return present
	}

	// Parents first, so selected and checked nodes below them are reachable.
	if keys := split(models.UniqueKeys(state.Expanded), &pending.Expanded); len(keys) > 0 {
		surface.Expand(keys...)
	}
	if keys := split(models.UniqueKeys(state.Checked), &pending.Checked); len(keys) > 0 {
		surface.SetChecked(keys...)
	}
	if keys := split(models.UniqueKeys(state.Selected), &pending.Selected); len(keys) > 0 {
		surface.Select(keys...)
	}

	k.mu.Lock()
	k.cached = pending
	k.mu.Unlock()

	dropped = len(pending.Expanded) + len(pending.Selected) + len(pending.Checked)
	if dropped > 0 {
		k.log.Debug().
			Str("func", "Keeper.Restore").
			Int("dropped", dropped).
			Msg("view state keys not presented, kept for later")
	}
	return dropped
}

// Around captures the view state, suspends redraw, runs fn, restores the
// state and resumes redraw. Redraw is resumed even when fn panics.
func (k *Keeper) Around(surface Surface, fn func()) {
	if surface == nil || surface.Disposed() {
		fn()
		return
	}

	state := k.Capture(surface)
	surface.SetRedraw(false)
	defer func() {
		if !surface.Disposed() {
			surface.SetRedraw(true)
		}
	}()

	fn()
	k.Restore(surface, state)
}

// Cache merges state into the cache without touching any surface. It is
// used to seed state loaded before the tree is presented.
func (k *Keeper) Cache(state models.ViewState) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.cached = k.cached.Merge(state)
}

// Save persists state for the keeper's session.
func (k *Keeper) Save(ctx context.Context, state models.ViewState) error {
	if k.store == nil {
		return nil
	}
	if err := k.store.SaveViewState(ctx, k.session, state); err != nil {
		return fmt.Errorf("save view state: %w", err)
	}
	return nil
}

// Load reads the persisted state of the keeper's session and caches it.
func (k *Keeper) Load(ctx context.Context) (models.ViewState, error) {
	if k.store == nil {
		return models.ViewState{}, nil
	}
	state, err := k.store.LoadViewState(ctx, k.session)
	if err != nil {
		return models.ViewState{}, fmt.Errorf("load view state: %w", err)
	}
	k.Cache(state)

	k.log.Debug().
		Str("func", "Keeper.Load").
		Str("session", k.session).
		Int("expanded", len(state.Expanded)).
		Int("selected", len(state.Selected)).
		Int("checked", len(state.Checked)).
		Msg("view state loaded")
	return state, nil
}
