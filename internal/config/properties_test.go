// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diff-tree/internal/tree"
	"github.com/MKhiriev/go-diff-tree/models"
)

func TestNewProperties(t *testing.T) {
	p, err := NewProperties(Tree{Builder: "compressed-folders", Mode: "incoming"}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ModeIncoming, p.Mode())
	assert.Equal(t, tree.StrategyCompressed, p.Builder())

	_, err = NewProperties(Tree{Builder: "radial"}, nil)
	assert.ErrorIs(t, err, ErrInvalidTreeConfigs)

	_, err = NewProperties(Tree{Mode: "sideways"}, nil)
	assert.ErrorIs(t, err, ErrInvalidTreeConfigs)
}

func TestProperties_PublishesChanges(t *testing.T) {
	p, err := NewProperties(Tree{}, nil)
	require.NoError(t, err)

	var got []PropertyChange
	unsubscribe := p.Subscribe(func(c PropertyChange) error {
		got = append(got, c)
		return nil
	})

	p.SetMode(models.ModeConflicting)
	p.SetMode(models.ModeConflicting)
	require.NoError(t, p.SetBuilder("flat"))
	require.NoError(t, p.SetBuilder(tree.StrategyFlat))
	assert.ErrorIs(t, p.SetBuilder("radial"), tree.ErrUnknownStrategy)

	assert.Equal(t, []PropertyChange{
		{Name: PropertyMode, Old: "both", New: "conflicting"},
		{Name: PropertyBuilder, Old: tree.StrategyHierarchical, New: tree.StrategyFlat},
	}, got)

	unsubscribe()
	p.SetMode(models.ModeBoth)
	assert.Len(t, got, 2)
	assert.Equal(t, models.ModeBoth, p.Mode())
}
