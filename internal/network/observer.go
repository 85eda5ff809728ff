// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network tracks whether the catalog backend is reachable.
package network

import (
	"sync"
	"time"

	"github.com/MKhiriev/washu/models"
)

// Observer holds the connectivity state. Notify is the single entry point
// for transitions; any connectivity source (the Probe, a test) calls it.
type Observer struct {
	now func() time.Time

	mu            sync.RWMutex
	online        bool
	lastChangedAt *int64
	subs          map[chan models.NetworkStatus]struct{}
}

// NewObserver starts in the given state with no recorded transition.
func NewObserver(initialOnline bool) *Observer {
	return &Observer{
		now:    time.Now,
		online: initialOnline,
		subs:   make(map[chan models.NetworkStatus]struct{}),
	}
}

// Notify records a reported connectivity state. Every call stamps
// LastChangedAt with a value strictly greater than the previous stamp.
func (o *Observer) Notify(online bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	stamp := o.now().UnixMilli()
	if o.lastChangedAt != nil && stamp <= *o.lastChangedAt {
		stamp = *o.lastChangedAt + 1
	}

	o.online = online
	o.lastChangedAt = &stamp

	status := o.statusLocked()
	for ch := range o.subs {
		select {
		case ch <- status:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- status:
		default:
		}
	}
}

// Status returns a snapshot of the current state.
func (o *Observer) Status() models.NetworkStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.statusLocked()
}

// IsOnline is a shortcut for Status().IsOnline.
func (o *Observer) IsOnline() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.online
}

// Subscribe delivers the latest status after each Notify. The returned
// function ends the subscription and closes the channel.
func (o *Observer) Subscribe() (<-chan models.NetworkStatus, func()) {
	ch := make(chan models.NetworkStatus, 1)

	o.mu.Lock()
	o.subs[ch] = struct{}{}
	o.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.subs, ch)
			o.mu.Unlock()
			close(ch)
		})
	}
}

func (o *Observer) statusLocked() models.NetworkStatus {
	status := models.NetworkStatus{IsOnline: o.online}
	if o.lastChangedAt != nil {
		stamp := *o.lastChangedAt
		status.LastChangedAt = &stamp
	}
	return status
}
