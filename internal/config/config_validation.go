// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-diff-tree/internal/tree"
	"github.com/MKhiriev/go-diff-tree/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if _, err := tree.StrategyFor(cfg.Tree.Builder); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTreeConfigs, err)
	}
	if _, err := models.ParseMode(cfg.Tree.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTreeConfigs, err)
	}

	if cfg.Serializer.DispatchDelay < 0 || cfg.Serializer.BusyDispatchDelay < 0 || cfg.Serializer.QueueSize < 0 {
		return ErrInvalidSerializerConfigs
	}

	if cfg.Source.Address == "" && cfg.Source.SnapshotFile == "" {
		return ErrInvalidSourceConfigs
	}
	if cfg.Source.RequestTimeout < 0 || cfg.Source.PollInterval < 0 {
		return ErrInvalidSourceConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if _, err := cfg.ChangeSetDefinitions(); err != nil {
		return err
	}

	return nil
}

// ChangeSetDefinitions converts the configured change sets into their model
// form.
func (cfg *StructuredConfig) ChangeSetDefinitions() ([]models.ChangeSetDefinition, error) {
	defs := make([]models.ChangeSetDefinition, 0, len(cfg.ChangeSets))
	for i, cs := range cfg.ChangeSets {
		if cs.Name == "" {
			return nil, fmt.Errorf("%w: change set #%d has no name", ErrInvalidChangeSetConfigs, i)
		}

		def := models.ChangeSetDefinition{Name: cs.Name, Patterns: cs.Patterns}
		for _, m := range cs.Members {
			def.Members = append(def.Members, models.CleanPath(m))
		}
		for _, d := range cs.Directions {
			dir, err := models.ParseDirection(d)
			if err != nil {
				return nil, fmt.Errorf("%w: change set %q: %w", ErrInvalidChangeSetConfigs, cs.Name, err)
			}
			def.Directions = append(def.Directions, dir)
		}
		defs = append(defs, def)
	}
	return defs, nil
}
