// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-diff-tree/internal/service"
	"github.com/MKhiriev/go-diff-tree/models"
)

const (
	statusTimeout = 3 * time.Second
	chromeLines   = 8
	minPageSize   = 5
)

type overlay int

const (
	overlayNone overlay = iota
	overlayErrors
	overlayInfo
)

type treeModel struct {
	svc     service.DiffTreeService
	surface *Surface
	info    models.AppBuildInfo
	spinner spinner.Model

	// copyText writes to the system clipboard.
	copyText func(text string) error

	overlay overlay
	status  string
	errMsg  string
	height  int
	offset  int
}

func newTreeModel(svc service.DiffTreeService, surface *Surface, info models.AppBuildInfo) treeModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return treeModel{
		svc:      svc,
		surface:  surface,
		info:     info,
		spinner:  s,
		copyText: clipboard.WriteAll,
	}
}

func (m treeModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m treeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatchMsg:
		msg.fn()
		m.keepCursorVisible()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.keepCursorVisible()
		return m, nil
	case statusMsg:
		return m.setStatus(msg.text, msg.err)
	case copiedMsg:
		if msg.err != nil {
			return m.setStatus("", fmt.Errorf("копирование в буфер обмена: %w", msg.err))
		}
		return m.setStatus("Скопировано: "+msg.path, nil)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m treeModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.overlay != overlayNone {
		if key.Matches(msg, keys.esc, keys.errors, keys.info) {
			m.overlay = overlayNone
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		m.surface.MoveCursor(-1)
	case key.Matches(msg, keys.down):
		m.surface.MoveCursor(1)
	case key.Matches(msg, keys.pageUp):
		m.surface.MoveCursor(-m.pageSize())
	case key.Matches(msg, keys.pageDown):
		m.surface.MoveCursor(m.pageSize())
	case key.Matches(msg, keys.right):
		m.expand()
	case key.Matches(msg, keys.left):
		m.collapse()
	case key.Matches(msg, keys.check):
		if cur := m.surface.Cursor(); cur != "" {
			m.surface.ToggleChecked(cur)
		}
	case key.Matches(msg, keys.mode):
		return m, m.cmdCycleMode()
	case key.Matches(msg, keys.builder):
		return m, m.cmdCycleBuilder()
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyPath()
	case key.Matches(msg, keys.errors):
		m.overlay = overlayErrors
	case key.Matches(msg, keys.info):
		m.overlay = overlayInfo
	}

	m.keepCursorVisible()
	return m, nil
}

func (m *treeModel) expand() {
	cur := m.surface.Cursor()
	if cur == "" {
		m.surface.MoveCursor(0)
		return
	}
	if !m.surface.HasChildren(cur) {
		return
	}
	if !m.surface.IsExpanded(cur) {
		m.surface.Expand(cur)
		return
	}
	m.surface.MoveCursor(1)
}

func (m *treeModel) collapse() {
	cur := m.surface.Cursor()
	if cur == "" {
		return
	}
	if m.surface.IsExpanded(cur) && m.surface.HasChildren(cur) {
		m.surface.Collapse(cur)
		return
	}
	if parent, ok := m.surface.Parent(cur); ok {
		m.surface.Select(parent)
	}
}

func (m treeModel) cmdCycleMode() tea.Cmd {
	return func() tea.Msg {
		mode := m.svc.CycleMode()
		return statusMsg{text: "Режим: " + mode.String()}
	}
}

func (m treeModel) cmdCycleBuilder() tea.Cmd {
	return func() tea.Msg {
		builder := m.svc.CycleBuilder()
		return statusMsg{text: "Вид: " + builder}
	}
}

func (m treeModel) cmdCopyPath() tea.Cmd {
	cur := m.surface.Cursor()
	v, ok := m.surface.View(cur)
	if !ok {
		return nil
	}
	text := string(v.Path)
	if v.Path.IsRoot() {
		text = v.Set
	}
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{path: text, err: copyText(text)}
	}
}

func (m treeModel) setStatus(text string, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.errMsg = ""
	m.status = text
	return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m treeModel) pageSize() int {
	return max(m.height-chromeLines, minPageSize)
}

// keepCursorVisible scrolls the window so the cursor row stays on screen.
func (m *treeModel) keepCursorVisible() {
	rows := m.surface.Visible()
	idx := slices.IndexFunc(rows, func(r visibleRow) bool { return r.view.Key == m.surface.Cursor() })
	page := m.pageSize()

	switch {
	case idx < 0:
	case idx < m.offset:
		m.offset = idx
	case idx >= m.offset+page:
		m.offset = idx - page + 1
	}
	m.offset = max(min(m.offset, len(rows)-page), 0)
}
