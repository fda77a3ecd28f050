// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the control endpoint. It satisfies
// workers.Worker and workers.Stopper.
type Server interface {
	// Run starts serving requests in the background.
	Run()

	// Stop gracefully shuts the server down and waits for Serve to return.
	Stop()

	// Addr is the address the server listens on.
	Addr() string
}
