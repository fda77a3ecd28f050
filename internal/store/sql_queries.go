// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-diff-tree/models"
)

const viewStateTable = "view_state"

// Names of the ordered lists making up a view state.
const (
	listExpanded = "expanded"
	listSelected = "selected"
	listChecked  = "checked"
)

// sqlite uses "?" placeholders.
var statements = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func deleteViewStateQuery(session string) (string, []any, error) {
	return statements.Delete(viewStateTable).
		Where(sq.Eq{"session": session}).
		ToSql()
}

// insertViewStateQuery inserts every key of state, keeping list order in
// the position column. ok is false when state is empty.
func insertViewStateQuery(session string, state models.ViewState) (query string, args []any, ok bool, err error) {
	insert := statements.Insert(viewStateTable).Columns("session", "name", "position", "item")

	rows := 0
	for _, list := range []struct {
		name string
		keys []models.NodeKey
	}{
		{listExpanded, state.Expanded},
		{listSelected, state.Selected},
		{listChecked, state.Checked},
	} {
		for i, key := range list.keys {
			insert = insert.Values(session, list.name, i, string(key))
			rows++
		}
	}
	if rows == 0 {
		return "", nil, false, nil
	}

	query, args, err = insert.ToSql()
	return query, args, err == nil, err
}

func selectViewStateQuery(session string) (string, []any, error) {
	return statements.Select("name", "item").
		From(viewStateTable).
		Where(sq.Eq{"session": session}).
		OrderBy("name", "position").
		ToSql()
}
