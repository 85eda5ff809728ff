// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/washu/internal/adapter"
	"github.com/MKhiriev/washu/internal/app"
)

// UserMessage renders a catalog error for the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var httpErr *adapter.HTTPError
	switch {
	case errors.Is(err, context.Canceled):
		return app.MsgRequestCanceled
	case errors.Is(err, adapter.ErrNetworkUnreachable):
		return app.MsgNetworkUnreachable
	case errors.As(err, &httpErr):
		return httpErr.Detail
	case errors.Is(err, adapter.ErrParse):
		return app.MsgParseFailed
	default:
		return app.MsgUnexpected
	}
}

// IsAbandoned reports whether err only means the caller went away.
func IsAbandoned(err error) bool {
	return errors.Is(err, context.Canceled)
}
