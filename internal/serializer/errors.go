// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import "errors"

var (
	// ErrClosed is returned when queueing into a closed serializer.
	ErrClosed = errors.New("serializer is closed")

	// ErrNoHandler is returned by New when no handler is supplied.
	ErrNoHandler = errors.New("serializer handler is required")
)
