// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing background workers
// of the client process.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one.
package workers

import "context"

// Worker is a background loop with an explicit lifecycle.
//
// Start must return promptly, running the loop in its own goroutine until
// ctx is done or Stop is called. Stop blocks until the loop has exited and
// is safe to call on a worker that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
