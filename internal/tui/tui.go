// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal presentation of the diff tree. The Surface
// holds what is shown and receives sink instructions; the Dispatcher carries
// them into the bubbletea event loop, which is the only goroutine touching
// the Surface while the program runs.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-diff-tree/internal/logger"
	"github.com/MKhiriev/go-diff-tree/internal/service"
	"github.com/MKhiriev/go-diff-tree/models"
)

type TUI struct {
	svc        service.DiffTreeService
	surface    *Surface
	dispatcher *Dispatcher
	info       models.AppBuildInfo
	logger     *logger.Logger
}

func New(svc service.DiffTreeService, surface *Surface, dispatcher *Dispatcher, info models.AppBuildInfo, log *logger.Logger) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{
		svc:        svc,
		surface:    surface,
		dispatcher: dispatcher,
		info:       info,
		logger:     log.WithComponent("tui"),
	}
}

// Run shows the tree until the user quits or ctx is canceled. When it
// returns, sink instructions run inline on the serializer worker again.
func (t *TUI) Run(ctx context.Context) error {
	model := newTreeModel(t.svc, t.surface, t.info)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.dispatcher.Attach(p)
	_, err := p.Run()
	t.dispatcher.Detach()

	if err != nil && ctx.Err() == nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal UI failed")
		return err
	}
	return nil
}
