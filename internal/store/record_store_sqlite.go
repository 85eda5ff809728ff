// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/washu/internal/logger"
)

type sqliteRecordStore struct {
	*DB
	storeName string
	now       func() time.Time
}

// NewSQLiteRecordStore returns the logical store storeName inside db.
func NewSQLiteRecordStore(db *DB, storeName string) RecordStore {
	return &sqliteRecordStore{DB: db, storeName: storeName, now: time.Now}
}

func (s *sqliteRecordStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(s.storeName, key)
	if err != nil {
		return nil, false, err
	}

	var value []byte
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteRecordStore.Get").
			Str("store", s.storeName).
			Str("key", key).
			Msg("failed to read record")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *sqliteRecordStore) Set(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetRecordQuery(s.storeName, key, value, s.now().UnixMilli())
	if err != nil {
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteRecordStore.Set").
			Str("store", s.storeName).
			Str("key", key).
			Msg("failed to upsert record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteRecordStore) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRemoveRecordQuery(s.storeName, key)
	if err != nil {
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteRecordStore.Remove").
			Str("store", s.storeName).
			Str("key", key).
			Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteRecordStore) Keys(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListKeysQuery(s.storeName)
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteRecordStore.Keys").
			Str("store", s.storeName).
			Msg("failed to list keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}
