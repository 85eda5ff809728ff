// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// mapHTTPError returns nil for a 2xx response and an *HTTPError otherwise.
func mapHTTPError(resp *resty.Response, fallback string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if detail, ok := parseErrorDetail(resp.Body()); ok {
		return &HTTPError{StatusCode: resp.StatusCode(), Detail: detail, FromServer: true}
	}

	return &HTTPError{StatusCode: resp.StatusCode(), Detail: fallback}
}

// parseErrorDetail extracts {"detail": "..."} or {"detail": {"message": "..."}}.
func parseErrorDetail(body []byte) (string, bool) {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return "", false
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		return detail, detail != ""
	}

	var nested struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(payload.Detail, &nested); err == nil && nested.Message != nil {
		return *nested.Message, *nested.Message != ""
	}

	return "", false
}

// mapTransportError classifies an error returned before any response
// arrived. Cancellation by the caller is kept distinct from an unreachable
// network so that abandoned requests are never reported to the user.
func mapTransportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("request abandoned: %w", ctxErr)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("request abandoned: %w", err)
	}
	return fmt.Errorf("%w: %w", ErrNetworkUnreachable, err)
}
