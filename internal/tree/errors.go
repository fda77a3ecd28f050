// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import "errors"

var (
	ErrUnknownStrategy = errors.New("unknown tree builder")
	ErrInvariant       = errors.New("tree invariant violated")
)
