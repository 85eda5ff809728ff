// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by the App.
type UI interface {
	Run(ctx context.Context) error
}

// Favorites is the part of the favorites view-model the App manages.
type Favorites interface {
	Refresh(ctx context.Context)
	Wait()
}

// Workers is a set of background workers started around the UI.
type Workers interface {
	StartAll(ctx context.Context)
	StopAll()
}
