// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the typed client for the sake catalog REST API.
//
// The primary abstraction is [SakeAPI], which decouples the service layer
// from the transport. The HTTP implementation ([NewHTTPSakeAPI]) validates
// every response against a fixed shape and classifies failures into three
// kinds that callers can tell apart with [errors.Is] and [errors.As]:
//
//   - [ErrNetworkUnreachable]: no response arrived at all;
//   - [*HTTPError]: the server answered with a non-2xx status;
//   - [ErrParse]: the server answered 2xx but the body had the wrong shape.
//
// Successful GET bodies are kept in a [ResponseCache] and replayed only when
// the backend is unreachable.
package adapter

import (
	"context"

	"github.com/MKhiriev/washu/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sake_api_mock.go -package=mock

// SakeAPI is the catalog backend as seen by the service layer.
// Every call honours ctx cancellation; a cancelled call returns an error
// wrapping ctx.Err().
type SakeAPI interface {
	// Search returns one page of sake matching params.
	Search(ctx context.Context, params models.SearchParams) (models.SearchResult, error)

	// GetDetail returns the full entry for id.
	GetDetail(ctx context.Context, id int64) (models.SakeDetail, error)

	// GetRegions returns the region names usable as a search filter.
	GetRegions(ctx context.Context) ([]string, error)

	// GetTasteTags returns the taste tag vocabulary.
	GetTasteTags(ctx context.Context) ([]string, error)

	// Ping checks the backend health endpoint.
	Ping(ctx context.Context) error
}

// ResponseCache stores raw response bodies keyed by request URL.
type ResponseCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}
