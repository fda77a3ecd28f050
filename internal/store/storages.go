// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diff-tree/internal/config"
	"github.com/MKhiriev/go-diff-tree/internal/logger"
)

// Storages groups the storage repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	// ViewState persists the tree view state per session.
	ViewState *ViewStateRepository

	db *DB
}

// NewStorages opens the SQLite settings database at cfg.DB.DSN, creating
// the file when missing, runs pending migrations and wires the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		ViewState: NewViewStateRepository(db, logger),
		db:        db,
	}, nil
}

// Close closes the database.
func (s *Storages) Close() error {
	return s.db.Close()
}
