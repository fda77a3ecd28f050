// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive diff tree application runtime.
//
// It wires the settings store, the comparison engine, the diff tree service,
// the terminal UI and the background workers into a single process
// lifecycle. When a server address is configured, the local control
// endpoint runs as one more worker.
package client
