// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

func (h *httpSakeAPI) useMiddlewares() {
	h.client.OnBeforeRequest(h.withTraceID)
	h.client.OnAfterResponse(h.withLogging)
	h.client.OnError(h.logTransportError)
}

// withTraceID tags every outgoing request so it can be matched with the
// backend logs.
func (h *httpSakeAPI) withTraceID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(traceIDHeader) == "" {
		r.SetHeader(traceIDHeader, uuid.NewString())
	}
	return nil
}

func (h *httpSakeAPI) withLogging(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("trace_id", resp.Request.Header.Get(traceIDHeader)).
		Str("uri", resp.Request.URL).
		Str("method", resp.Request.Method).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Int64("size", resp.Size()).
		Send()
	return nil
}

func (h *httpSakeAPI) logTransportError(r *resty.Request, err error) {
	h.logger.Debug().
		Err(err).
		Str("trace_id", r.Header.Get(traceIDHeader)).
		Str("uri", r.URL).
		Str("method", r.Method).
		Msg("request failed without response")
}
