// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package changeset

import "errors"

var (
	ErrBadPattern     = errors.New("invalid change set pattern")
	ErrDuplicateSet   = errors.New("change set already registered")
	ErrUnknownSet     = errors.New("unknown change set")
	ErrInvalidSetName = errors.New("invalid change set name")
)
