// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diff-tree/internal/tree"
	"github.com/MKhiriev/go-diff-tree/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

const hotKeys = "↑/↓: навигация  →/←: раскрыть/свернуть  space: отметить  m: режим  b: вид  c: копировать путь  e: ошибки  i: о программе  q: выход"

func (m treeModel) View() string {
	switch m.overlay {
	case overlayErrors:
		return appStyle.Render(overlayBoxStyle.Render(renderErrors(m.svc.Errors())))
	case overlayInfo:
		return appStyle.Render(overlayBoxStyle.Render(renderBuildInfo(m.info)))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ДЕРЕВО ИЗМЕНЕНИЙ"))
	b.WriteString(helpStyle.Render(fmt.Sprintf("   режим: %s   вид: %s", m.svc.Mode(), m.svc.Builder())))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	rows := m.surface.Visible()
	if len(rows) == 0 {
		b.WriteString(helpStyle.Render("  нет изменений"))
		b.WriteString("\n")
	}

	end := min(m.offset+m.pageSize(), len(rows))
	cursor := m.surface.Cursor()
	for _, r := range rows[min(m.offset, end):end] {
		line := m.renderRow(r)
		if r.view.Key == cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(uiDivider)
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(hotKeys))

	return appStyle.Render(b.String())
}

func (m treeModel) renderRow(r visibleRow) string {
	v := r.view

	var b strings.Builder
	b.WriteString(strings.Repeat("  ", r.depth))

	switch {
	case r.leaf:
		b.WriteString("  ")
	case m.surface.IsExpanded(v.Key):
		b.WriteString("▾ ")
	default:
		b.WriteString("▸ ")
	}

	if m.surface.IsChecked(v.Key) {
		b.WriteString("[x] ")
	} else {
		b.WriteString("[ ] ")
	}

	if glyph := directionGlyph(v); glyph != "" {
		b.WriteString(glyph)
		b.WriteString(" ")
	}

	if v.Set != "" && v.Path.IsRoot() {
		b.WriteString(setStyle.Render(v.Label))
	} else {
		b.WriteString(v.Label)
	}

	if mark := decoration(v); mark != "" {
		b.WriteString(" ")
		b.WriteString(mark)
	}
	if v.Flags.Busy {
		b.WriteString(" ")
		b.WriteString(m.spinner.View())
	}
	return b.String()
}

// directionGlyph shows which side changed and how.
func directionGlyph(v tree.NodeView) string {
	if v.State == nil {
		return ""
	}

	var glyph string
	switch v.Direction() {
	case models.Incoming:
		glyph = incomingStyle.Render("←")
	case models.Outgoing:
		glyph = outgoingStyle.Render("→")
	case models.Conflicting:
		glyph = conflictStyle.Render("↔")
	default:
		return ""
	}

	switch v.State.Kind.Change {
	case models.Addition:
		glyph += "+"
	case models.Deletion:
		glyph += "-"
	default:
		glyph += " "
	}
	return glyph
}

func decoration(v tree.NodeView) string {
	var parts []string
	if v.Flags.DescendantConflict {
		parts = append(parts, conflictStyle.Render("!"))
	}
	switch v.Severity {
	case models.SeverityError:
		parts = append(parts, errorStyle.Render("✖"))
	case models.SeverityWarning:
		parts = append(parts, warningStyle.Render("⚠"))
	}
	return strings.Join(parts, " ")
}

func renderErrors(recs []models.ErrorRecord) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ОШИБКИ СРАВНЕНИЯ"))
	b.WriteString("\n\n")
	if len(recs) == 0 {
		b.WriteString("  -\n")
	}
	for _, rec := range recs {
		b.WriteString("  ")
		b.WriteString(string(rec.Path))
		b.WriteString(": ")
		b.WriteString(rec.Message)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc: назад"))
	return b.String()
}

func renderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ИНФОРМАЦИЯ О ПРОГРАММЕ"))
	b.WriteString("\n\n")
	b.WriteString("Название приложения: go-diff-tree\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("esc: назад"))
	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
