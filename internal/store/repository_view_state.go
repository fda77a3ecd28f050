// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diff-tree/internal/logger"
	"github.com/MKhiriev/go-diff-tree/models"
)

const (
	saveAttempts = 3
	retryBackoff = 20 * time.Millisecond
)

// ViewStateRepository stores view state as ordered lists of node keys under
// the names "expanded", "selected" and "checked" of a session.
type ViewStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewViewStateRepository(db *DB, logger *logger.Logger) *ViewStateRepository {
	return &ViewStateRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveViewState replaces the stored state of session in one transaction.
// A busy database is retried a few times.
func (r *ViewStateRepository) SaveViewState(ctx context.Context, session string, state models.ViewState) error {
	var err error
	for attempt := 1; attempt <= saveAttempts; attempt++ {
		err = r.saveViewState(ctx, session, state)
		if err == nil || r.errorClassificator.Classify(err) != Retryable {
			return err
		}

		r.logger.Warn().Err(err).
			Str("func", "ViewStateRepository.SaveViewState").
			Str("session", session).
			Int("attempt", attempt).
			Msg("database busy, retrying")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
	return err
}

func (r *ViewStateRepository) saveViewState(ctx context.Context, session string, state models.ViewState) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := deleteViewStateQuery(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, hasRows, err := insertViewStateQuery(session, state)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "ViewStateRepository.saveViewState").
			Str("session", session).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "ViewStateRepository.saveViewState").
			Str("session", session).
			Msg("failed to delete previous view state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if hasRows {
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", "ViewStateRepository.saveViewState").
				Str("session", session).
				Msg("failed to insert view state")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "ViewStateRepository.saveViewState").
			Str("session", session).
			Msg("failed to commit view state")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// LoadViewState returns the stored state of session. An unknown session
// yields an empty state.
func (r *ViewStateRepository) LoadViewState(ctx context.Context, session string) (models.ViewState, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectViewStateQuery(session)
	if err != nil {
		return models.ViewState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "ViewStateRepository.LoadViewState").
			Str("session", session).
			Msg("failed to query view state")
		return models.ViewState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var state models.ViewState
	for rows.Next() {
		var name string
		var item sql.NullString
		if err = rows.Scan(&name, &item); err != nil {
			log.Err(err).
				Str("func", "ViewStateRepository.LoadViewState").
				Str("session", session).
				Msg("failed to scan view state row")
			return models.ViewState{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		key := models.NodeKey(item.String)
		switch name {
		case listExpanded:
			state.Expanded = append(state.Expanded, key)
		case listSelected:
			state.Selected = append(state.Selected, key)
		case listChecked:
			state.Checked = append(state.Checked, key)
		}
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "ViewStateRepository.LoadViewState").
			Str("session", session).
			Msg("error iterating view state rows")
		return models.ViewState{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return state, nil
}
