// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type copiedMsg struct {
	path string
	err  error
}

type clearStatusMsg struct{}

type statusMsg struct {
	text string
	err  error
}
