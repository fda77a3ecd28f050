// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-diff-tree/internal/adapter"
	"github.com/MKhiriev/go-diff-tree/internal/config"
	httphandler "github.com/MKhiriev/go-diff-tree/internal/handler/http"
	"github.com/MKhiriev/go-diff-tree/internal/logger"
	"github.com/MKhiriev/go-diff-tree/internal/serializer"
	"github.com/MKhiriev/go-diff-tree/internal/server"
	"github.com/MKhiriev/go-diff-tree/internal/service"
	"github.com/MKhiriev/go-diff-tree/internal/store"
	"github.com/MKhiriev/go-diff-tree/internal/tui"
	"github.com/MKhiriev/go-diff-tree/internal/viewstate"
	"github.com/MKhiriev/go-diff-tree/internal/workers"
	"github.com/MKhiriev/go-diff-tree/models"
)

const (
	metricsNamespace = "difftree"
	shutdownTimeout  = 5 * time.Second
)

// App owns every long-lived component of the process.
type App struct {
	cfg      *config.StructuredConfig
	log      *logger.Logger
	storages *store.Storages
	source   *adapter.RemoteSource
	tree     *service.DiffTree
	surface  *tui.Surface
	ui       *tui.TUI
	registry *prometheus.Registry

	// control is nil when no control endpoint address is configured.
	control server.Server
}

var _ Client = (*App)(nil)

// NewApp opens the settings store and builds the diff tree on top of the
// configured comparison engine. Nothing runs until Run is called.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, info models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	engine, err := newEngine(cfg.Source, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create comparison engine client: %w", err)
	}
	src := adapter.NewRemoteSource(engine, log)

	props, err := config.NewProperties(cfg.Tree, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create tree properties: %w", err)
	}

	defs, err := cfg.ChangeSetDefinitions()
	if err != nil {
		storages.Close()
		return nil, err
	}

	registry := prometheus.NewRegistry()
	surface := tui.NewSurface()
	dispatcher := tui.NewDispatcher()

	tree, err := service.NewDiffTree(service.Deps{
		Source:     src,
		Sink:       surface,
		Properties: props,
		Keeper:     viewstate.NewKeeper(storages.ViewState, cfg.App.Session, log),
		Markers:    src,
		Dispatcher: dispatcher,
		ChangeSets: defs,
		SerializerOptions: []serializer.Option{
			serializer.WithDelayPolicy(serializer.NewDelayPolicy(cfg.Serializer.DispatchDelay, cfg.Serializer.BusyDispatchDelay)),
			serializer.WithQueueSize(cfg.Serializer.QueueSize),
			serializer.WithPrometheus(registry, metricsNamespace),
		},
		Log: log,
	})
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create diff tree: %w", err)
	}
	src.OnMarkersChanged(tree.MarkersChanged)

	var control server.Server
	if cfg.Server.Address != "" {
		handler := httphandler.NewHandler(tree, registry, info, log)
		control, err = server.NewServer(handler.Init(), cfg.Server, log)
		if err != nil {
			storages.Close()
			return nil, fmt.Errorf("create control endpoint: %w", err)
		}
	}

	return &App{
		cfg:      cfg,
		log:      log.WithComponent("client"),
		storages: storages,
		source:   src,
		tree:     tree,
		surface:  surface,
		ui:       tui.New(tree, surface, dispatcher, info, log),
		registry: registry,
		control:  control,
	}, nil
}

func newEngine(cfg config.Source, log *logger.Logger) (adapter.Engine, error) {
	if cfg.Address != "" {
		return adapter.NewHTTPEngine(cfg, log)
	}
	return adapter.NewFileEngine(cfg.SnapshotFile), nil
}

// Run starts the workers, connects the tree and shows it until the user
// quits. The view state is saved on the way out.
func (a *App) Run(ctx context.Context) error {
	defer a.storages.Close()

	// The serializer outlives ctx so the view state can still be saved.
	loop := workers.NewLoop(context.WithoutCancel(ctx), "serializer", a.tree.Run, a.log)
	poll := adapter.NewPollJob(ctx, a.source, a.cfg.Source.PollInterval, a.log)
	ws := workers.NewWorkers(loop, poll)
	if a.control != nil {
		ws = workers.NewWorkers(loop, poll, a.control)
	}
	ws.Run()
	defer ws.Stop()

	if err := a.tree.Start(ctx); err != nil {
		a.tree.Close()
		if errors.Is(err, service.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("start diff tree: %w", err)
	}

	uiErr := a.ui.Run(ctx)

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := a.tree.SaveViewState(saveCtx); err != nil {
		a.log.Err(err).Str("func", "App.Run").Msg("cannot save view state")
	}

	a.tree.Close()
	a.surface.Dispose()
	a.logMetrics()

	return uiErr
}

// logMetrics writes the final serializer counters to the log.
func (a *App) logMetrics() {
	families, err := a.registry.Gather()
	if err != nil {
		a.log.Warn().Err(err).Str("func", "App.logMetrics").Msg("cannot gather metrics")
		return
	}

	evt := a.log.Info().Str("func", "App.logMetrics")
	for _, mf := range families {
		var total float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			}
		}
		evt = evt.Float64(mf.GetName(), total)
	}
	evt.Msg("serializer metrics")
}
