// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diff-tree/models"
)

func writeSnapshot(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestFileEngine_ReadsReport(t *testing.T) {
	path := writeSnapshot(t, `{
		"states": [{"path": "/p/a.txt", "type": 0, "kind": {"direction": 1, "change": 0}}],
		"errors": [{"path": "/p/b.txt", "message": "unreadable"}]
	}`)
	e := NewFileEngine(path)

	states, err := e.States(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.SyncState{state("/p/a.txt", models.Incoming)}, states)

	recs, err := e.Errors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.ErrorRecord{{Path: "/p/b.txt", Message: "unreadable"}}, recs)
}

func TestFileEngine_PicksUpEdits(t *testing.T) {
	path := writeSnapshot(t, `{"states": []}`)
	e := NewFileEngine(path)

	states, err := e.States(context.Background())
	require.NoError(t, err)
	assert.Empty(t, states)

	require.NoError(t, os.WriteFile(path, []byte(`{"states": [{"path": "/q", "type": 2, "kind": {"direction": 2}}]}`), 0o600))

	states, err = e.States(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, models.ItemPath("/q"), states[0].Path)
	assert.Equal(t, models.Project, states[0].Type)
}

func TestFileEngine_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileEngine(filepath.Join(t.TempDir(), "absent.json")).States(context.Background())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad json", func(t *testing.T) {
		_, err := NewFileEngine(writeSnapshot(t, "[")).States(context.Background())
		assert.ErrorIs(t, err, ErrDecodeResponse)
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewFileEngine(writeSnapshot(t, "{}")).Errors(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
