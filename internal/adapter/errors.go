// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("engine unavailable")
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyAddress   = errors.New("empty engine address")
	ErrInvalidAddress = errors.New("invalid engine address")
	ErrDecodeResponse = errors.New("cannot decode engine response")
	ErrNotConnected   = errors.New("source is not connected")
)
