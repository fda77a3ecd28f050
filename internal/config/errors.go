// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidTreeConfigs indicates an unknown builder variant or
	// comparison mode.
	ErrInvalidTreeConfigs = errors.New("invalid tree configuration")
	// ErrInvalidSerializerConfigs indicates negative delays or queue size.
	ErrInvalidSerializerConfigs = errors.New("invalid serializer configuration")
	// ErrInvalidSourceConfigs indicates that neither an engine address nor
	// a snapshot file is configured.
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidStorageConfigs indicates an empty settings database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidChangeSetConfigs indicates an unnamed change set or an
	// unknown direction filter.
	ErrInvalidChangeSetConfigs = errors.New("invalid change set configuration")
)
