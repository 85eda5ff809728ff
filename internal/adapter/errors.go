// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrNetworkUnreachable = errors.New("network unreachable")
	ErrParse              = errors.New("response parse failed")
	ErrInvalidAddress     = errors.New("invalid adapter http address")
)

// HTTPError is a non-2xx response. Detail is the server-provided message
// when the body carried one, otherwise the per-endpoint fallback.
type HTTPError struct {
	StatusCode int
	Detail     string
	// FromServer is true when Detail came from the response body.
	FromServer bool
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Detail)
}
