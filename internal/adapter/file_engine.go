// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-diff-tree/models"
)

type fileEngine struct {
	path string
}

// NewFileEngine returns an [Engine] reading a JSON encoded
// [models.SyncReport] from path on every call, so a poll picks up edits to
// the file.
func NewFileEngine(path string) Engine {
	return &fileEngine{path: path}
}

func (f *fileEngine) States(ctx context.Context) ([]models.SyncState, error) {
	report, err := f.read(ctx)
	if err != nil {
		return nil, err
	}
	return report.States, nil
}

func (f *fileEngine) Errors(ctx context.Context) ([]models.ErrorRecord, error) {
	report, err := f.read(ctx)
	if err != nil {
		return nil, err
	}
	return report.Errors, nil
}

func (f *fileEngine) read(ctx context.Context) (models.SyncReport, error) {
	if err := ctx.Err(); err != nil {
		return models.SyncReport{}, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("read snapshot file: %w", err)
	}

	var report models.SyncReport
	if err = json.Unmarshal(data, &report); err != nil {
		return models.SyncReport{}, fmt.Errorf("%w: %s: %w", ErrDecodeResponse, f.path, err)
	}
	return report, nil
}
