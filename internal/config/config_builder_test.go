// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diff-tree/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func withSource() *StructuredConfig {
	return &StructuredConfig{Source: Source{Address: "localhost:8080"}}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a config without any source fails
// validation even after defaults are applied.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidSourceConfigs)
}

// TestBuild_AppliesDefaults verifies that unset fields receive defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, withSource())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultSession, cfg.App.Session)
	assert.Equal(t, DefaultBuilder, cfg.Tree.Builder)
	assert.Equal(t, DefaultMode, cfg.Tree.Mode)
	assert.Equal(t, DefaultDispatchDelay, cfg.Serializer.DispatchDelay)
	assert.Equal(t, DefaultBusyDispatchDelay, cfg.Serializer.BusyDispatchDelay)
	assert.Equal(t, DefaultRequestTimeout, cfg.Source.RequestTimeout)
	assert.Equal(t, DefaultPollInterval, cfg.Source.PollInterval)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result and that earlier configs win.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Tree: Tree{Mode: "incoming"}},
		&StructuredConfig{Tree: Tree{Mode: "outgoing", Builder: "flat"}, Source: Source{SnapshotFile: "/tmp/s.json"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "incoming", cfg.Tree.Mode)
	assert.Equal(t, "flat", cfg.Tree.Builder)
	assert.Equal(t, "/tmp/s.json", cfg.Source.SnapshotFile)
}

// TestBuild_Validation covers every validation sentinel.
func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  *StructuredConfig
		want error
	}{
		{
			name: "unknown builder",
			cfg:  &StructuredConfig{Tree: Tree{Builder: "radial"}, Source: Source{Address: "localhost:1"}},
			want: ErrInvalidTreeConfigs,
		},
		{
			name: "unknown mode",
			cfg:  &StructuredConfig{Tree: Tree{Mode: "sideways"}, Source: Source{Address: "localhost:1"}},
			want: ErrInvalidTreeConfigs,
		},
		{
			name: "negative delay",
			cfg:  &StructuredConfig{Serializer: Serializer{DispatchDelay: -time.Second}, Source: Source{Address: "localhost:1"}},
			want: ErrInvalidSerializerConfigs,
		},
		{
			name: "negative poll interval",
			cfg:  &StructuredConfig{Source: Source{Address: "localhost:1", PollInterval: -time.Second}},
			want: ErrInvalidSourceConfigs,
		},
		{
			name: "unnamed change set",
			cfg:  &StructuredConfig{Source: Source{Address: "localhost:1"}, ChangeSets: []ChangeSet{{Patterns: []string{"**"}}}},
			want: ErrInvalidChangeSetConfigs,
		},
		{
			name: "unknown direction",
			cfg:  &StructuredConfig{Source: Source{Address: "localhost:1"}, ChangeSets: []ChangeSet{{Name: "x", Directions: []string{"up"}}}},
			want: ErrInvalidChangeSetConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)
			_, err := b.build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestChangeSetDefinitions verifies the conversion into model definitions.
func TestChangeSetDefinitions(t *testing.T) {
	cfg := &StructuredConfig{ChangeSets: []ChangeSet{
		{Name: "docs", Patterns: []string{"**.md"}, Members: []string{"p/readme"}},
		{Name: "conflicts", Patterns: []string{"**"}, Directions: []string{"conflicting", "incoming"}},
	}}

	defs, err := cfg.ChangeSetDefinitions()
	require.NoError(t, err)
	assert.Equal(t, []models.ChangeSetDefinition{
		{Name: "docs", Patterns: []string{"**.md"}, Members: []models.ItemPath{"/p/readme"}},
		{Name: "conflicts", Patterns: []string{"**"}, Directions: []models.Direction{models.Conflicting, models.Incoming}},
	}, defs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_SESSION", "env-session")
	t.Setenv("TREE_BUILDER", "compressed")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-session", b.configs[0].App.Session)
	assert.Equal(t, "compressed", b.configs[0].Tree.Builder)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Session = "json-session"
	payload.Tree.Mode = "conflicting"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-session", b.configs[1].App.Session)
	assert.Equal(t, "conflicting", b.configs[1].Tree.Mode)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Session = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Session)
}

// TestBuild_JSONFillsGaps verifies that JSON values only fill fields the
// earlier sources left empty, change sets included.
func TestBuild_JSONFillsGaps(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Tree.Mode = "outgoing"
	payload.Source.Address = "localhost:9000"
	payload.ChangeSets = []ChangeSet{{Name: "docs", Patterns: []string{"**.md"}}}
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Tree: Tree{Mode: "incoming"}, JSONFilePath: path})
	b.withJSON()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "incoming", cfg.Tree.Mode)
	assert.Equal(t, "localhost:9000", cfg.Source.Address)
	require.Len(t, cfg.ChangeSets, 1)
	assert.Equal(t, "docs", cfg.ChangeSets[0].Name)
}
