// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON must be valid for time.ParseDuration (string, e.g. "30s").
	jsonBody := `{
		"app": { "session": "work", "version": "1.2.3" },
		"tree": { "builder": "flat", "mode": "conflicting" },
		"serializer": {
			"dispatch_delay": "200ms",
			"busy_dispatch_delay": "10ms",
			"queue_size": 32
		},
		"source": {
			"address": "localhost:8080",
			"request_timeout": "30s",
			"poll_interval": "1m"
		},
		"storage": {
			"db": { "dsn": "/var/lib/difftree.db" }
		},
		"server": { "address": "localhost:9090" },
		"change_sets": [
			{ "name": "docs", "patterns": ["**.md"] },
			{ "name": "conflicts", "patterns": ["**"], "directions": ["conflicting"] }
		]
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "work", cfg.App.Session)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "flat", cfg.Tree.Builder)
	assert.Equal(t, "conflicting", cfg.Tree.Mode)

	assert.Equal(t, 200*time.Millisecond, cfg.Serializer.DispatchDelay)
	assert.Equal(t, 10*time.Millisecond, cfg.Serializer.BusyDispatchDelay)
	assert.Equal(t, 32, cfg.Serializer.QueueSize)

	assert.Equal(t, "localhost:8080", cfg.Source.Address)
	assert.Equal(t, 30*time.Second, cfg.Source.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Source.PollInterval)

	assert.Equal(t, "/var/lib/difftree.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9090", cfg.Server.Address)

	require.Len(t, cfg.ChangeSets, 2)
	assert.Equal(t, "docs", cfg.ChangeSets[0].Name)
	assert.Equal(t, []string{"conflicting"}, cfg.ChangeSets[1].Directions)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	jsonBody := `{
		"source": { "poll_interval": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"source": { "snapshot_file": "/tmp/states.json" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tmp/states.json", cfg.Source.SnapshotFile)
	assert.Empty(t, cfg.Source.Address)
	assert.Zero(t, cfg.Source.PollInterval)

	// Others remain zero
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Tree{}, cfg.Tree)
	assert.Equal(t, Storage{}, cfg.Storage)
}
