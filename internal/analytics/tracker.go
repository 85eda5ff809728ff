// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package analytics records product events. Nothing is sent anywhere: events
// are written to the client log at debug level.
package analytics

import (
	"maps"
	"slices"

	"github.com/MKhiriev/washu/internal/logger"
)

// Event names a product event.
type Event string

const (
	EventScreenView        Event = "screen_view"
	EventSearchExec        Event = "search_exec"
	EventDetailView        Event = "detail_view"
	EventFavoriteAdd       Event = "fav_add"
	EventFavoriteRemove    Event = "fav_remove"
	EventOfflineBannerShow Event = "offline_banner_show"
	EventError             Event = "error"
)

// Params are free-form event attributes.
type Params map[string]any

//go:generate mockgen -source=tracker.go -destination=../mock/tracker_mock.go -package=mock

// Tracker records events.
type Tracker interface {
	Track(event Event, params Params)
}

type idGenerator interface {
	Generate() string
}

type logTracker struct {
	logger *logger.Logger
	ids    idGenerator
}

// NewLogTracker returns a Tracker writing each event as one debug entry
// carrying a fresh event id.
func NewLogTracker(log *logger.Logger, ids idGenerator) Tracker {
	return &logTracker{logger: log, ids: ids}
}

func (t *logTracker) Track(event Event, params Params) {
	entry := t.logger.Debug()
	if !entry.Enabled() {
		return
	}

	entry = entry.Str("event", string(event)).Str("event_id", t.ids.Generate())
	for _, key := range slices.Sorted(maps.Keys(params)) {
		entry = entry.Interface(key, params[key])
	}
	entry.Msg("[track]")
}

// Nop returns a tracker that drops every event.
func Nop() Tracker {
	return nopTracker{}
}

type nopTracker struct{}

func (nopTracker) Track(Event, Params) {}
