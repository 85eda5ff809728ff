// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/washu/internal/config"
	"github.com/MKhiriev/washu/internal/logger"
)

const memoryDSN = ":memory:"

// ClientStorages groups the client repositories.
type ClientStorages struct {
	Recent   RecentRepository
	Favorite FavoriteRepository

	// Persistent is false when records only live as long as the process or
	// are not kept at all.
	Persistent bool

	closers []func() error
}

// NewClientStorages selects the backend from cfg.DB.DSN:
//   - empty: nothing is persisted, every read is empty;
//   - ":memory:": records live in process memory;
//   - anything else: a SQLite file, locked and migrated before use.
//
// When the SQLite file cannot be used the storages fall back to the no-op
// backend and the reason is logged, so the client keeps running.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) *ClientStorages {
	switch cfg.DB.DSN {
	case "":
		log.Warn().Msg("no database configured, recent and favorite lists will not be kept")
		return newStorages(NewNoopRecordStore(), NewNoopRecordStore(), log)
	case memoryDSN:
		log.Info().Msg("using in-memory storages")
		return newStorages(NewMemoryRecordStore(), NewMemoryRecordStore(), log)
	}

	storages, err := newSQLiteStorages(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Str("dsn", cfg.DB.DSN).Msg("local storage unavailable, continuing without persistence")
		return newStorages(NewNoopRecordStore(), NewNoopRecordStore(), log)
	}
	return storages
}

func newStorages(recent, favorite RecordStore, log *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Recent:   NewRecentRepository(recent, log),
		Favorite: NewFavoriteRepository(favorite, log),
	}
}

func newSQLiteStorages(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	lock, err := AcquireLock(cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, errors.Join(err, lock.Unlock())
	}

	if err = db.Migrate(); err != nil {
		return nil, errors.Join(fmt.Errorf("%w: migration failed: %w", ErrStorageUnavailable, err), db.Close(), lock.Unlock())
	}

	storages := newStorages(
		NewSQLiteRecordStore(db, RecentStoreName),
		NewSQLiteRecordStore(db, FavoriteStoreName),
		log,
	)
	storages.Persistent = true
	storages.closers = []func() error{db.Close, lock.Unlock}
	return storages, nil
}

// Close releases the database and its file lock.
func (s *ClientStorages) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		errs = append(errs, closeFn())
	}
	s.closers = nil
	return errors.Join(errs...)
}
