// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-diff-tree/internal/mock"
	"github.com/MKhiriev/go-diff-tree/internal/source"
	"github.com/MKhiriev/go-diff-tree/internal/tree"
	"github.com/MKhiriev/go-diff-tree/models"
)

func outgoing(p string) models.SyncState {
	return models.SyncState{Path: models.ItemPath(p), Type: models.File, Kind: models.Kind{Direction: models.Outgoing}}
}

func keysOf(views []tree.NodeView) []models.NodeKey {
	out := make([]models.NodeKey, 0, len(views))
	for _, v := range views {
		out = append(out, v.Key)
	}
	return out
}

func TestBatch_ApplyReplaysInstructionsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	set := source.NewSyncSet(nil)
	set.Put(outgoing("/p/a/x.txt"))

	markers := mock.NewMockMarkerProvider(ctrl)
	markers.EXPECT().Severity(gomock.Any(), gomock.Any()).Return(models.SeverityNone, nil).AnyTimes()

	p := tree.NewProvider(tree.NewRoot(), tree.ProviderDeps{Snapshot: set, Markers: markers})
	b := tree.NewBatch()
	p.Build(context.Background(), b)

	sink := mock.NewMockSink(ctrl)
	var added [][]models.NodeKey
	gomock.InOrder(
		sink.EXPECT().Disposed().Return(false),
		sink.EXPECT().Add(models.NodeKey(""), gomock.Any()).Do(func(_ models.NodeKey, views ...tree.NodeView) {
			added = append(added, keysOf(views))
		}),
		sink.EXPECT().Disposed().Return(false),
		sink.EXPECT().Add(models.NodeKey("/p"), gomock.Any()).Do(func(_ models.NodeKey, views ...tree.NodeView) {
			added = append(added, keysOf(views))
		}),
		sink.EXPECT().Disposed().Return(false),
		sink.EXPECT().Add(models.NodeKey("/p/a"), gomock.Any()).Do(func(_ models.NodeKey, views ...tree.NodeView) {
			added = append(added, keysOf(views))
		}),
	)

	calls := b.Apply(sink)

	assert.Equal(t, 3, calls)
	assert.Equal(t, [][]models.NodeKey{{"/p"}, {"/p/a"}, {"/p/a/x.txt"}}, added)
}

func TestBatch_DisposedSinkIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	set := source.NewSyncSet(nil)
	set.Put(outgoing("/p/a/x.txt"), outgoing("/q/y.txt"))

	p := tree.NewProvider(tree.NewRoot(), tree.ProviderDeps{Snapshot: set})
	b := tree.NewBatch()
	p.Build(context.Background(), b)
	require.True(t, b.Structural())

	sink := mock.NewMockSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().Disposed().Return(false),
		sink.EXPECT().Add(gomock.Any(), gomock.Any()),
		sink.EXPECT().Disposed().Return(true),
	)

	assert.Equal(t, 1, b.Apply(sink))
}

func TestBatch_SealCapturesFinalFlags(t *testing.T) {
	set := source.NewSyncSet(nil)
	p := tree.NewProvider(tree.NewRoot(), tree.ProviderDeps{Snapshot: set})

	b := tree.NewBatch()
	evt := set.Apply([]models.SyncState{
		outgoing("/p/a/x.txt"),
		{Path: "/p/a/y.txt", Type: models.File, Kind: models.Kind{Direction: models.Conflicting}},
	}, nil)
	p.ApplyDelta(context.Background(), b, evt)
	b.Seal()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sink := mock.NewMockSink(ctrl)
	sink.EXPECT().Disposed().Return(false).AnyTimes()

	views := make(map[models.NodeKey]tree.NodeView)
	sink.EXPECT().Add(gomock.Any(), gomock.Any()).Do(func(_ models.NodeKey, vs ...tree.NodeView) {
		for _, v := range vs {
			views[v.Key] = v
		}
	}).AnyTimes()

	b.Apply(sink)

	require.Contains(t, views, models.NodeKey("/p"))
	assert.True(t, views["/p"].Flags.DescendantConflict, "the view of /p is taken after y.txt was attached")
}

func TestProvider_MarkerQueryErrorIsTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	set := source.NewSyncSet(nil)
	set.Put(outgoing("/p/x.txt"))

	markers := mock.NewMockMarkerProvider(ctrl)
	markers.EXPECT().Severity(gomock.Any(), models.ItemPath("/p")).Return(models.SeverityNone, nil)
	markers.EXPECT().Severity(gomock.Any(), models.ItemPath("/p/x.txt")).Return(models.SeverityNone, errors.New("unavailable"))

	p := tree.NewProvider(tree.NewRoot(), tree.ProviderDeps{Snapshot: set, Markers: markers})
	p.Build(context.Background(), tree.NewBatch())

	n, ok := p.Lookup("/p/x.txt")
	require.True(t, ok)
	assert.Equal(t, models.SeverityNone, n.OwnSeverity())
	assert.NoError(t, tree.CheckInvariants(p.Root()))
}
