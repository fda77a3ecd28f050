// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package viewstate

import (
	"context"

	"github.com/MKhiriev/go-diff-tree/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/viewstate_mock.go -package=mock

// Store persists view state per session.
type Store interface {
	SaveViewState(ctx context.Context, session string, state models.ViewState) error
	LoadViewState(ctx context.Context, session string) (models.ViewState, error)
}
