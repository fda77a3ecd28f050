// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-diff-tree/internal/changeset"
	"github.com/MKhiriev/go-diff-tree/internal/mock"
	"github.com/MKhiriev/go-diff-tree/internal/service"
	"github.com/MKhiriev/go-diff-tree/internal/tree"
	"github.com/MKhiriev/go-diff-tree/models"
)

func newTestRouter(t *testing.T) (http.Handler, *mock.MockDiffTreeService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockDiffTreeService(ctrl)

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "difftree_test_total", Help: "test"}))

	h := NewHandler(svc, reg, models.NewAppBuildInfo("v0.3.0", "2026-10-19", "deadbeef"), nil)
	return h.Init(), svc
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── Tree ─────────────────────────────────────────────────────────────────────

func TestHandler_GetTreeState(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().Mode().Return(models.ModeIncoming)
	svc.EXPECT().Builder().Return(tree.StrategyFlat)
	svc.EXPECT().ChangeSets().Return([]string{"docs"})

	rr := do(router, http.MethodGet, "/api/tree", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got models.TreeStateResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, models.TreeStateResponse{Mode: "incoming", Builder: "flat", ChangeSets: []string{"docs"}}, got)
}

func TestHandler_GetErrors(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().Errors().Return(nil)

	rr := do(router, http.MethodGet, "/api/tree/errors", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	svc.EXPECT().Errors().Return([]models.ErrorRecord{{Path: "/p/x.bin", Message: "unreadable"}})
	rr = do(router, http.MethodGet, "/api/tree/errors", "")
	assert.JSONEq(t, `[{"path":"/p/x.bin","message":"unreadable"}]`, rr.Body.String())
}

func TestHandler_SetMode(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(svc *mock.MockDiffTreeService)
		wantStatus int
	}{
		{
			name: "valid mode",
			body: `{"mode":"outgoing"}`,
			setup: func(svc *mock.MockDiffTreeService) {
				svc.EXPECT().SetMode(models.ModeOutgoing)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "unknown mode",
			body:       `{"mode":"sideways"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "broken JSON",
			body:       `{"mode":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newTestRouter(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rr := do(router, http.MethodPut, "/api/tree/mode", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestHandler_SetBuilder(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().SetBuilder("compressed").Return(nil)
	rr := do(router, http.MethodPut, "/api/tree/builder", `{"builder":"compressed"}`)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	svc.EXPECT().SetBuilder("radial").Return(fmt.Errorf("%w: %q", tree.ErrUnknownStrategy, "radial"))
	rr = do(router, http.MethodPut, "/api/tree/builder", `{"builder":"radial"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_MarkersChanged(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().MarkersChanged(gomock.Any(), models.ItemPath("/p/a.txt"), models.ItemPath("/q")).Return(nil)
	rr := do(router, http.MethodPost, "/api/tree/markers", `{"paths":["p/a.txt","/q/","/"]}`)
	assert.Equal(t, http.StatusAccepted, rr.Code)

	rr = do(router, http.MethodPost, "/api/tree/markers", `{"paths":["/"]}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	svc.EXPECT().MarkersChanged(gomock.Any(), gomock.Any()).Return(service.ErrCanceled)
	rr = do(router, http.MethodPost, "/api/tree/markers", `{"paths":["/p"]}`)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestHandler_SetBusy(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().SetBusy(gomock.Any(), true, models.ItemPath("/p/a.txt")).Return(nil)
	rr := do(router, http.MethodPost, "/api/tree/busy", `{"paths":["/p/a.txt"],"busy":true}`)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

// ── Change sets ──────────────────────────────────────────────────────────────

func TestHandler_ListChangeSets(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().ChangeSets().Return(nil)

	rr := do(router, http.MethodGet, "/api/changesets", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestHandler_RegisterChangeSet(t *testing.T) {
	router, svc := newTestRouter(t)

	want := models.ChangeSetDefinition{
		Name:       "docs",
		Patterns:   []string{"**.md"},
		Members:    []models.ItemPath{"/p/notes.txt"},
		Directions: []models.Direction{models.Incoming},
	}
	svc.EXPECT().RegisterChangeSet(gomock.Any(), want).Return(nil)
	rr := do(router, http.MethodPost, "/api/changesets",
		`{"name":"docs","patterns":["**.md"],"members":["p/notes.txt"],"directions":["incoming"]}`)
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = do(router, http.MethodPost, "/api/changesets", `{"name":"docs","directions":["upwards"]}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	svc.EXPECT().RegisterChangeSet(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: %q", changeset.ErrDuplicateSet, "docs"))
	rr = do(router, http.MethodPost, "/api/changesets", `{"name":"docs"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestHandler_UnregisterChangeSet(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().UnregisterChangeSet(gomock.Any(), "docs").Return(nil)
	rr := do(router, http.MethodDelete, "/api/changesets/docs", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	svc.EXPECT().UnregisterChangeSet(gomock.Any(), "nope").Return(changeset.ErrUnknownSet)
	rr = do(router, http.MethodDelete, "/api/changesets/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_Members(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().AddToChangeSet(gomock.Any(), "docs", models.ItemPath("/p/a.txt")).Return(nil)
	rr := do(router, http.MethodPost, "/api/changesets/docs/members", `{"paths":["/p/a.txt"]}`)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	svc.EXPECT().RemoveFromChangeSet(gomock.Any(), "docs", models.ItemPath("/p/a.txt")).Return(nil)
	rr = do(router, http.MethodDelete, "/api/changesets/docs/members", `{"paths":["/p/a.txt"]}`)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(router, http.MethodPost, "/api/changesets/docs/members", `{"paths":[]}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ── Misc ─────────────────────────────────────────────────────────────────────

func TestHandler_Version(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := do(router, http.MethodGet, "/api/version", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"v0.3.0","date":"2026-10-19","commit":"deadbeef"}`, rr.Body.String())
}

func TestHandler_Metrics(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := do(router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "difftree_test_total 0")
}

func TestHandler_MetricsDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewHandler(mock.NewMockDiffTreeService(ctrl), nil, models.AppBuildInfo{}, nil)

	rr := do(h.Init(), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_WrongMethodIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodPost, "/api/version", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodDelete, "/api/tree/mode", "").Code)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrap: %w", ErrInvalidJSON), http.StatusBadRequest},
		{models.ErrUnknownMode, http.StatusBadRequest},
		{changeset.ErrBadPattern, http.StatusBadRequest},
		{changeset.ErrDuplicateSet, http.StatusConflict},
		{changeset.ErrUnknownSet, http.StatusNotFound},
		{service.ErrCanceled, http.StatusServiceUnavailable},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
