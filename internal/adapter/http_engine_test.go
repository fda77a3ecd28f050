// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diff-tree/internal/config"
	"github.com/MKhiriev/go-diff-tree/models"
)

func state(p string, d models.Direction) models.SyncState {
	return models.SyncState{
		Path: models.ItemPath(p),
		Type: models.File,
		Kind: models.Kind{Direction: d},
	}
}

// newFakeEngineServer serves report on both engine endpoints.
func newFakeEngineServer(t *testing.T, report *models.SyncReport) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Get(statesPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SyncReport{States: report.States})
	})
	r.Get(errorsPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SyncReport{Errors: report.Errors})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newTestEngine(t *testing.T, serverURL string) Engine {
	t.Helper()
	e, err := NewHTTPEngine(config.Source{Address: serverURL, RequestTimeout: 2 * time.Second}, nil)
	require.NoError(t, err)
	return e
}

// ── States / Errors ─────────────────────────────────────────────────────────

func TestHTTPEngine_States(t *testing.T) {
	report := &models.SyncReport{States: []models.SyncState{
		state("/p/a.txt", models.Incoming),
		state("/p/b.txt", models.Conflicting),
	}}
	srv := newFakeEngineServer(t, report)

	got, err := newTestEngine(t, srv.URL).States(context.Background())

	require.NoError(t, err)
	assert.Equal(t, report.States, got)
}

func TestHTTPEngine_Errors(t *testing.T) {
	report := &models.SyncReport{Errors: []models.ErrorRecord{
		{Path: "/p/broken.bin", Message: "permission denied"},
		{Path: "/p/slow.bin", Message: "checksum pending", Severity: models.SeverityWarning},
	}}
	srv := newFakeEngineServer(t, report)

	got, err := newTestEngine(t, srv.URL).Errors(context.Background())

	require.NoError(t, err)
	assert.Equal(t, report.Errors, got)
}

func TestHTTPEngine_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"bad gateway", http.StatusBadGateway, ErrBadGateway},
		{"unavailable", http.StatusServiceUnavailable, ErrUnavailable},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("engine says no"))
			}))
			defer srv.Close()

			_, err := newTestEngine(t, srv.URL).States(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "engine says no")
		})
	}
}

func TestHTTPEngine_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestEngine(t, srv.URL).Errors(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestHTTPEngine_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := newTestEngine(t, srv.URL).States(context.Background())

	assert.ErrorIs(t, err, ErrDecodeResponse)
}

func TestHTTPEngine_CanceledContext(t *testing.T) {
	srv := newFakeEngineServer(t, &models.SyncReport{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestEngine(t, srv.URL).States(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPEngine_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestEngine(t, url).States(context.Background())

	assert.ErrorIs(t, err, ErrUnavailable)
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "scheme kept", raw: "https://engine.local/", want: "https://engine.local"},
		{name: "spaces trimmed", raw: "  127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "   ", wantErr: ErrEmptyAddress},
		{name: "no host", raw: "http://", wantErr: ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPEngine_EmptyAddress(t *testing.T) {
	_, err := NewHTTPEngine(config.Source{}, nil)
	assert.ErrorIs(t, err, ErrEmptyAddress)
}
