// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by record stores and repositories. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable is returned when the backing database cannot be
	// opened or used at all.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrStorageLocked is returned when another process already holds the
	// database file.
	ErrStorageLocked = errors.New("storage is locked by another process")

	// ErrMalformedRecord is returned when a stored value does not have the
	// expected shape.
	ErrMalformedRecord = errors.New("malformed record")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when reading result rows fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
