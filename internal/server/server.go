// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-diff-tree/internal/config"
	"github.com/MKhiriev/go-diff-tree/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	once sync.Once
	done chan struct{}

	logger *logger.Logger
}

// NewServer opens the listener for cfg.Address so a busy port is reported
// before anything starts.
func NewServer(handler http.Handler, cfg config.Server, log *logger.Logger) (Server, error) {
	if cfg.Address == "" {
		return nil, ErrNoAddress
	}
	if log == nil {
		log = logger.Nop()
	}

	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Address, err)
	}

	log = log.WithComponent("server")
	log.Info().Str("addr", listener.Addr().String()).Msg("control endpoint created")

	return &httpServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		listener: listener,
		done:     make(chan struct{}),
		logger:   log,
	}, nil
}

func (s *httpServer) Addr() string {
	return s.listener.Addr().String()
}

func (s *httpServer) Run() {
	s.once.Do(func() {
		s.logger.Info().Str("addr", s.Addr()).Msg("launching control endpoint")
		go func() {
			defer close(s.done)
			if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Err(err).Str("func", "httpServer.Run").Msg("control endpoint stopped")
			}
		}()
	})
}

func (s *httpServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Err(err).Str("func", "httpServer.Stop").Msg("control endpoint shutdown")
	}

	started := true
	s.once.Do(func() {
		started = false
		_ = s.listener.Close()
	})
	if started {
		<-s.done
	}
	s.logger.Info().Msg("control endpoint shut down gracefully")
}
