// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service wires the diff tree together: the change source feeds the
// update serializer, the serializer worker drives the change-set router, and
// the resulting sink instructions are replayed on the presentation context
// under the view-state keeper.
package service

import (
	"context"

	"github.com/MKhiriev/go-diff-tree/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DiffTreeService is what a presentation layer drives.
type DiffTreeService interface {
	// Start connects the change source and queues the initial build.
	Start(ctx context.Context) error

	// Mode returns the current comparison mode.
	Mode() models.Mode
	// SetMode switches the comparison mode and rebuilds the tree.
	SetMode(mode models.Mode)
	// CycleMode switches to the next comparison mode.
	CycleMode() models.Mode

	// Builder returns the name of the current builder variant.
	Builder() string
	// SetBuilder switches the builder variant and rebuilds the tree.
	SetBuilder(name string) error
	// CycleBuilder switches to the next builder variant.
	CycleBuilder() string

	// MarkersChanged re-queries the markers of paths and their descendants.
	MarkersChanged(ctx context.Context, paths ...models.ItemPath) error
	// SetBusy shows or hides the busy indicator of paths.
	SetBusy(ctx context.Context, busy bool, paths ...models.ItemPath) error

	RegisterChangeSet(ctx context.Context, def models.ChangeSetDefinition) error
	UnregisterChangeSet(ctx context.Context, name string) error
	AddToChangeSet(ctx context.Context, name string, paths ...models.ItemPath) error
	RemoveFromChangeSet(ctx context.Context, name string, paths ...models.ItemPath) error
	ChangeSets() []string

	// Errors returns the items the engine failed to compare.
	Errors() []models.ErrorRecord

	// SaveViewState persists what the user currently sees.
	SaveViewState(ctx context.Context) error

	Close() error
}
