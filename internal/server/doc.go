// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the optional local control endpoint of the diff tree.
//
// The server is a background worker: Run starts serving on the listener
// opened by NewServer and returns, Stop shuts it down gracefully.
package server
