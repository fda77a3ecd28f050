// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrPanic wraps a value recovered from a panicking callback.
var ErrPanic = errors.New("callback panicked")

// SafeRun calls fn and converts a panic into an error wrapping ErrPanic.
func SafeRun(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v\n%s", ErrPanic, r, debug.Stack())
		}
	}()
	return fn()
}
