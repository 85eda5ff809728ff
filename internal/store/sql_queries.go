// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	recordsTable = "kv_records"

	upsertRecordSuffix = "ON CONFLICT (store_name, record_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

func recordKeyPredicate(storeName, key string) sq.And {
	return sq.And{
		sq.Eq{"store_name": storeName},
		sq.Eq{"record_key": key},
	}
}

func buildGetRecordQuery(storeName, key string) (string, []any, error) {
	query, args, err := sq.Select("value").
		From(recordsTable).
		Where(recordKeyPredicate(storeName, key)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSetRecordQuery(storeName, key string, value []byte, updatedAt int64) (string, []any, error) {
	query, args, err := sq.Insert(recordsTable).
		Columns("store_name", "record_key", "value", "updated_at").
		Values(storeName, key, value, updatedAt).
		Suffix(upsertRecordSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildRemoveRecordQuery(storeName, key string) (string, []any, error) {
	query, args, err := sq.Delete(recordsTable).
		Where(recordKeyPredicate(storeName, key)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListKeysQuery(storeName string) (string, []any, error) {
	query, args, err := sq.Select("record_key").
		From(recordsTable).
		Where(sq.Eq{"store_name": storeName}).
		OrderBy("record_key").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
