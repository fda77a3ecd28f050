// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-diff-tree/internal/config"
	"github.com/MKhiriev/go-diff-tree/internal/logger"
	"github.com/MKhiriev/go-diff-tree/models"
	"github.com/go-resty/resty/v2"
)

const (
	statesPath = "/api/sync/states"
	errorsPath = "/api/sync/errors"
)

type httpEngine struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPEngine constructs an HTTP/JSON implementation of [Engine] talking
// to cfg.Address. A bare "host:port" address is treated as plain HTTP.
// cfg.RequestTimeout bounds every request.
func NewHTTPEngine(cfg config.Source, log *logger.Logger) (Engine, error) {
	if log == nil {
		log = logger.Nop()
	}

	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpEngine{client: client, logger: log.WithComponent("adapter")}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q must include host and scheme", ErrInvalidAddress, raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// States implements [Engine]. It GETs /api/sync/states.
func (h *httpEngine) States(ctx context.Context) ([]models.SyncState, error) {
	report, err := h.get(ctx, statesPath)
	if err != nil {
		return nil, fmt.Errorf("get states: %w", err)
	}
	return report.States, nil
}

// Errors implements [Engine]. It GETs /api/sync/errors.
func (h *httpEngine) Errors(ctx context.Context) ([]models.ErrorRecord, error) {
	report, err := h.get(ctx, errorsPath)
	if err != nil {
		return nil, fmt.Errorf("get errors: %w", err)
	}
	return report.Errors, nil
}

func (h *httpEngine) get(ctx context.Context, path string) (models.SyncReport, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		// resty wraps the transport error; keep context errors matchable.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.SyncReport{}, ctxErr
		}
		return models.SyncReport{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().
			Str("func", "httpEngine.get").
			Str("path", path).
			Int("status", resp.StatusCode()).
			Err(err).
			Msg("engine answered with an error")
		return models.SyncReport{}, err
	}

	var report models.SyncReport
	if err = json.Unmarshal(resp.Body(), &report); err != nil {
		return models.SyncReport{}, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return report, nil
}
