// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/washu/internal/logger"
)

type App struct {
	ui        UI
	favorites Favorites
	workers   Workers
	closer    func() error
	logger    *logger.Logger
}

// NewApp assembles the runtime. closer releases local storage and may be
// nil.
func NewApp(ui UI, favorites Favorites, workers Workers, closer func() error, log *logger.Logger) (*App, error) {
	if ui == nil || favorites == nil || workers == nil {
		return nil, errors.New("client: ui, favorites and workers are required")
	}
	return &App{ui: ui, favorites: favorites, workers: workers, closer: closer, logger: log}, nil
}

// Run loads favorites, starts the workers and shows the UI until the user
// quits or the process is interrupted. Pending favorite writes are flushed
// before storage is closed.
func (a *App) Run(ctx context.Context) (err error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer func() {
		a.favorites.Wait()
		if a.closer != nil {
			if closeErr := a.closer(); closeErr != nil {
				a.logger.Err(closeErr).Msg("closing local storage")
				err = errors.Join(err, closeErr)
			}
		}
	}()

	a.favorites.Refresh(ctx)

	a.workers.StartAll(ctx)
	defer a.workers.StopAll()

	a.logger.Info().Msg("client started")
	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	a.logger.Info().Msg("client stopped")
	return nil
}
