// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-diff-tree/internal/tree"
	"github.com/MKhiriev/go-diff-tree/models"
)

// The methods below implement serializer.Handler and run on the worker.

func (d *DiffTree) HandleDelta(ctx context.Context, evt models.DeltaEvent) error {
	b := tree.NewBatch()
	d.router.ApplyDelta(ctx, b, evt)
	d.present(b)
	return nil
}

// HandleReset picks up the current host properties and rebuilds every
// change-set sub-tree from the snapshot.
func (d *DiffTree) HandleReset(ctx context.Context) error {
	strategy, err := tree.StrategyFor(d.props.Builder())
	if err != nil {
		return err
	}
	d.mode = d.props.Mode()
	d.router.SetStrategy(strategy)

	b := tree.NewBatch()
	d.router.Rebuild(ctx, b)
	d.present(b)

	d.log.Debug().
		Str("func", "DiffTree.HandleReset").
		Str("mode", d.mode.String()).
		Str("builder", strategy.Name()).
		Int("instructions", b.Len()).
		Msg("tree rebuilt")
	return nil
}

func (d *DiffTree) HandleBusy(_ context.Context, keys []models.NodeKey, busy bool) error {
	paths := make([]models.ItemPath, 0, len(keys))
	for _, k := range keys {
		_, p := k.Split()
		paths = append(paths, p)
	}
	d.router.SetBusy(paths, busy)
	return nil
}

// FlushLabels refreshes the presented nodes for keys. Keys whose nodes are
// gone are skipped.
func (d *DiffTree) FlushLabels(_ context.Context, keys []models.NodeKey) error {
	views := make([]tree.NodeView, 0, len(keys))
	for _, k := range keys {
		// The structural root is never presented.
		if v, ok := d.router.View(k); ok && v.Key != "" {
			views = append(views, v)
		}
	}
	if len(views) == 0 {
		return nil
	}

	d.dispatch(func() {
		if !d.sink.Disposed() {
			d.sink.Refresh(views...)
		}
	})
	return nil
}

// present seals b on the worker and replays it on the presentation context.
// Batches adding or removing nodes are replayed under the keeper so the
// expansion, selection and checked state survive the restructuring.
func (d *DiffTree) present(b *tree.Batch) {
	if b.IsEmpty() {
		return
	}
	b.Seal()
	structural := b.Structural()

	d.dispatch(func() {
		if d.sink.Disposed() {
			return
		}
		if structural {
			d.keeper.Around(d.sink, func() { b.Apply(d.sink) })
			return
		}
		b.Apply(d.sink)
	})
}

func (d *DiffTree) dispatch(fn func()) {
	if d.dispatcher == nil {
		fn()
		return
	}
	d.dispatcher.Dispatch(fn)
}
