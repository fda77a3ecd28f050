// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the application: the update
// serializer loop and the change-source poller.
package workers

// Worker is a background job. Run must not block: implementations spawn
// their own goroutines.
type Worker interface {
	Run()
}

// Stopper is implemented by workers that can be stopped and waited for.
type Stopper interface {
	Stop()
}
