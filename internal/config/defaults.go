// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultSession           = "default"
	DefaultBuilder           = "hierarchical"
	DefaultMode              = "both"
	DefaultDispatchDelay     = 150 * time.Millisecond
	DefaultBusyDispatchDelay = 20 * time.Millisecond
	DefaultRequestTimeout    = 10 * time.Second
	DefaultPollInterval      = 5 * time.Second
	DefaultDSN               = "difftree.db"
)

// applyDefaults fills every unset field that has a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Session == "" {
		cfg.App.Session = DefaultSession
	}
	if cfg.Tree.Builder == "" {
		cfg.Tree.Builder = DefaultBuilder
	}
	if cfg.Tree.Mode == "" {
		cfg.Tree.Mode = DefaultMode
	}
	if cfg.Serializer.DispatchDelay == 0 {
		cfg.Serializer.DispatchDelay = DefaultDispatchDelay
	}
	if cfg.Serializer.BusyDispatchDelay == 0 {
		cfg.Serializer.BusyDispatchDelay = DefaultBusyDispatchDelay
	}
	if cfg.Source.RequestTimeout == 0 {
		cfg.Source.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Source.PollInterval == 0 {
		cfg.Source.PollInterval = DefaultPollInterval
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
}
