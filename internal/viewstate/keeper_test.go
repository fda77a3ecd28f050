// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package viewstate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-diff-tree/internal/mock"
	"github.com/MKhiriev/go-diff-tree/internal/viewstate"
	"github.com/MKhiriev/go-diff-tree/models"
)

// fakeSurface presents a fixed set of keys.
type fakeSurface struct {
	present  map[models.NodeKey]bool
	expanded map[models.NodeKey]bool
	selected map[models.NodeKey]bool
	checked  map[models.NodeKey]bool
	redraw   []bool
	disposed bool
}

func newFakeSurface(keys ...models.NodeKey) *fakeSurface {
	s := &fakeSurface{
		present:  make(map[models.NodeKey]bool),
		expanded: make(map[models.NodeKey]bool),
		selected: make(map[models.NodeKey]bool),
		checked:  make(map[models.NodeKey]bool),
	}
	for _, k := range keys {
		s.present[k] = true
	}
	return s
}

func (s *fakeSurface) set(m map[models.NodeKey]bool, keys []models.NodeKey) {
	for _, k := range keys {
		m[k] = true
	}
}

func (s *fakeSurface) list(m map[models.NodeKey]bool) []models.NodeKey {
	var out []models.NodeKey
	for k := range m {
		if s.present[k] {
			out = append(out, k)
		}
	}
	return models.UniqueKeys(out)
}

func (s *fakeSurface) Expand(keys ...models.NodeKey)     { s.set(s.expanded, keys) }
func (s *fakeSurface) Select(keys ...models.NodeKey)     { s.set(s.selected, keys) }
func (s *fakeSurface) SetChecked(keys ...models.NodeKey) { s.set(s.checked, keys) }
func (s *fakeSurface) ExpandedItems() []models.NodeKey   { return s.list(s.expanded) }
func (s *fakeSurface) SelectedItems() []models.NodeKey   { return s.list(s.selected) }
func (s *fakeSurface) CheckedItems() []models.NodeKey    { return s.list(s.checked) }
func (s *fakeSurface) Contains(key models.NodeKey) bool  { return s.present[key] }
func (s *fakeSurface) SetRedraw(on bool)                 { s.redraw = append(s.redraw, on) }
func (s *fakeSurface) Disposed() bool                    { return s.disposed }

// rebuild drops every presented node and its view state, then presents keys.
func (s *fakeSurface) rebuild(keys ...models.NodeKey) {
	*s = *newFakeSurface(keys...)
}

func TestKeeper_RestoreAfterRebuild(t *testing.T) {
	surface := newFakeSurface("/p", "/p/a", "/p/a/x.txt", "/p/b", "/p/b/y.txt")
	surface.Expand("/p", "/p/a", "/p/b")
	surface.Select("/p/a/x.txt")
	surface.SetChecked("/p/b/y.txt")

	k := viewstate.NewKeeper(nil, "test", nil)

	k.Around(surface, func() {
		surface.rebuild("/p", "/p/a", "/p/a/x.txt", "/p/b", "/p/b/y.txt")
	})

	assert.Equal(t, []models.NodeKey{"/p", "/p/a", "/p/b"}, surface.ExpandedItems())
	assert.Equal(t, []models.NodeKey{"/p/a/x.txt"}, surface.SelectedItems())
	assert.Equal(t, []models.NodeKey{"/p/b/y.txt"}, surface.CheckedItems())
	assert.True(t, k.Capture(nil).IsEmpty())
}

func TestKeeper_MissingKeysDroppedOnceLiveStateRead(t *testing.T) {
	surface := newFakeSurface("/p", "/p/a", "/p/b")
	surface.Expand("/p", "/p/a", "/p/b")

	k := viewstate.NewKeeper(nil, "test", nil)
	k.Around(surface, func() {
		surface.rebuild("/p", "/p/a")
	})

	assert.Equal(t, []models.NodeKey{"/p", "/p/a"}, surface.ExpandedItems())
	assert.Equal(t, []models.NodeKey{"/p/b"}, k.Capture(nil).Expanded)

	// The surface has live expansion by now, so /p/b comes back collapsed.
	k.Around(surface, func() {
		surface.rebuild("/p", "/p/a", "/p/b")
	})
	assert.Equal(t, []models.NodeKey{"/p", "/p/a"}, surface.ExpandedItems())
	assert.True(t, k.Capture(nil).IsEmpty())
}

func TestKeeper_LiveSelectionWinsOverStaleCache(t *testing.T) {
	surface := newFakeSurface("/p/a/x.txt", "/p/z.txt")
	surface.Select("/p/a/x.txt")

	k := viewstate.NewKeeper(nil, "test", nil)
	k.Around(surface, func() {
		surface.rebuild("/p/z.txt")
	})
	assert.Empty(t, surface.SelectedItems())

	surface.Select("/p/z.txt")
	k.Around(surface, func() {
		surface.rebuild("/p/a/x.txt", "/p/z.txt")
	})

	assert.Equal(t, []models.NodeKey{"/p/z.txt"}, surface.SelectedItems())
	assert.True(t, k.Capture(nil).IsEmpty())
}

func TestKeeper_CacheWaitsForEmptySurface(t *testing.T) {
	surface := newFakeSurface()
	k := viewstate.NewKeeper(nil, "test", nil)
	k.Cache(models.ViewState{Expanded: []models.NodeKey{"/p"}, Selected: []models.NodeKey{"/p/x"}})

	// Nothing is presented yet, the loaded state waits.
	k.Around(surface, func() {})
	assert.Equal(t, []models.NodeKey{"/p"}, k.Capture(nil).Expanded)

	k.Around(surface, func() {
		surface.rebuild("/p", "/p/x")
	})
	assert.Equal(t, []models.NodeKey{"/p"}, surface.ExpandedItems())
	assert.Equal(t, []models.NodeKey{"/p/x"}, surface.SelectedItems())
	assert.True(t, k.Capture(nil).IsEmpty())
}

func TestKeeper_RestoreReportsDropped(t *testing.T) {
	surface := newFakeSurface("/p")
	k := viewstate.NewKeeper(nil, "test", nil)

	dropped := k.Restore(surface, models.ViewState{
		Expanded: []models.NodeKey{"/p", "/q"},
		Selected: []models.NodeKey{"/q/x"},
	})

	assert.Equal(t, 2, dropped)
	assert.Equal(t, []models.NodeKey{"/p"}, surface.ExpandedItems())
	assert.Empty(t, surface.SelectedItems())
}

func TestKeeper_AroundTogglesRedraw(t *testing.T) {
	surface := newFakeSurface()
	k := viewstate.NewKeeper(nil, "test", nil)

	ran := false
	k.Around(surface, func() { ran = true })

	assert.True(t, ran)
	assert.Equal(t, []bool{false, true}, surface.redraw)
}

func TestKeeper_AroundResumesRedrawOnPanic(t *testing.T) {
	surface := newFakeSurface()
	k := viewstate.NewKeeper(nil, "test", nil)

	assert.Panics(t, func() {
		k.Around(surface, func() { panic("boom") })
	})
	assert.Equal(t, []bool{false, true}, surface.redraw)
}

func TestKeeper_DisposedSurface(t *testing.T) {
	surface := newFakeSurface("/p")
	surface.disposed = true
	k := viewstate.NewKeeper(nil, "test", nil)

	ran := false
	k.Around(surface, func() { ran = true })
	assert.True(t, ran)
	assert.Empty(t, surface.redraw)

	dropped := k.Restore(surface, models.ViewState{Expanded: []models.NodeKey{"/p"}})
	assert.Equal(t, 1, dropped)
	assert.Equal(t, []models.NodeKey{"/p"}, k.Capture(nil).Expanded)
}

func TestKeeper_CaptureFillsFromCache(t *testing.T) {
	surface := newFakeSurface("/p")
	surface.Expand("/p")

	k := viewstate.NewKeeper(nil, "test", nil)
	k.Cache(models.ViewState{Expanded: []models.NodeKey{"/q"}, Checked: []models.NodeKey{"/q/z"}})

	got := k.Capture(surface)
	assert.Equal(t, []models.NodeKey{"/p"}, got.Expanded)
	assert.Equal(t, []models.NodeKey{"/q/z"}, got.Checked)

	cached := k.Capture(nil)
	assert.Empty(t, cached.Expanded, "live expansion replaced the cached one")
	assert.Equal(t, []models.NodeKey{"/q/z"}, cached.Checked)
}

func TestKeeper_SaveAndLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	store := mock.NewMockStore(ctrl)
	k := viewstate.NewKeeper(store, "session-1", nil)

	state := models.ViewState{Expanded: []models.NodeKey{"/p"}, Selected: []models.NodeKey{"/p/x"}}
	store.EXPECT().SaveViewState(ctx, "session-1", state).Return(nil)
	require.NoError(t, k.Save(ctx, state))

	store.EXPECT().LoadViewState(ctx, "session-1").Return(state, nil)
	loaded, err := k.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
	assert.Equal(t, state, k.Capture(nil))
}

func TestKeeper_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	boom := errors.New("disk full")
	store := mock.NewMockStore(ctrl)
	k := viewstate.NewKeeper(store, "s", nil)

	store.EXPECT().SaveViewState(gomock.Any(), "s", gomock.Any()).Return(boom)
	assert.ErrorIs(t, k.Save(ctx, models.ViewState{}), boom)

	store.EXPECT().LoadViewState(gomock.Any(), "s").Return(models.ViewState{}, boom)
	_, err := k.Load(ctx)
	assert.ErrorIs(t, err, boom)
	assert.True(t, k.Capture(nil).IsEmpty())
}

func TestKeeper_NilStore(t *testing.T) {
	k := viewstate.NewKeeper(nil, "s", nil)
	require.NoError(t, k.Save(context.Background(), models.ViewState{Expanded: []models.NodeKey{"/p"}}))

	state, err := k.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, state.IsEmpty())
}
