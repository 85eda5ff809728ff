// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/washu/internal/adapter"
	"github.com/MKhiriev/washu/internal/logger"
)

const defaultProbeInterval = 15 * time.Second

// Pinger checks that the backend answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe polls the backend health endpoint and reports reachability changes
// to an Observer. It is idle until Start is called.
type Probe struct {
	pinger   Pinger
	observer *Observer
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProbe returns a probe checking every interval. A non-positive interval
// defaults to 15 seconds.
func NewProbe(pinger Pinger, observer *Observer, interval time.Duration, log *logger.Logger) *Probe {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &Probe{pinger: pinger, observer: observer, interval: interval, logger: log}
}

// Start stops any running loop, checks once right away and then keeps
// checking on a ticker until ctx is done or Stop is called.
func (p *Probe) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.Check(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.Check(jobCtx)
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. Safe to call when idle.
func (p *Probe) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// Check pings once and notifies the observer if reachability changed.
// Only a transport failure counts as offline: a server answering with an
// error status is still reachable.
func (p *Probe) Check(ctx context.Context) {
	err := p.pinger.Ping(ctx)
	if ctx.Err() != nil {
		return
	}

	online := !errors.Is(err, adapter.ErrNetworkUnreachable)
	if online == p.observer.IsOnline() {
		return
	}

	p.logger.Info().Bool("online", online).Err(err).Msg("backend reachability changed")
	p.observer.Notify(online)
}
