// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrCanceled is returned by Start when its context is canceled while
	// connecting to the change source.
	ErrCanceled = errors.New("diff tree start canceled")

	ErrAlreadyStarted = errors.New("diff tree already started")
	ErrNoSource       = errors.New("change source is required")
	ErrNoSink         = errors.New("presentation sink is required")
)
