// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/washu/internal/adapter"
	"github.com/MKhiriev/washu/internal/logger"
	"github.com/MKhiriev/washu/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// spyPinger counts pings and answers with err.
type spyPinger struct {
	calls atomic.Int64
	err   atomic.Value
}

func (s *spyPinger) Ping(context.Context) error {
	s.calls.Add(1)
	if err, ok := s.err.Load().(error); ok {
		return err
	}
	return nil
}

var errUnreachable = fmt.Errorf("ping: %w: dial tcp: connection refused", adapter.ErrNetworkUnreachable)

func TestProbe_Check(t *testing.T) {
	tests := []struct {
		name        string
		initial     bool
		err         error
		wantOnline  bool
		wantChanged bool
	}{
		{name: "stays online", initial: true, err: nil, wantOnline: true},
		{name: "goes offline", initial: true, err: errUnreachable, wantOnline: false, wantChanged: true},
		{name: "stays offline", initial: false, err: errUnreachable, wantOnline: false},
		{name: "comes back", initial: false, err: nil, wantOnline: true, wantChanged: true},
		{
			name:       "server error is still reachable",
			initial:    true,
			err:        &adapter.HTTPError{StatusCode: 503, Detail: "down for maintenance", FromServer: true},
			wantOnline: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api := mock.NewMockSakeAPI(ctrl)
			api.EXPECT().Ping(gomock.Any()).Return(tt.err)

			o := NewObserver(tt.initial)
			p := NewProbe(api, o, time.Minute, logger.Nop())

			p.Check(context.Background())

			status := o.Status()
			assert.Equal(t, tt.wantOnline, status.IsOnline)
			assert.Equal(t, tt.wantChanged, status.LastChangedAt != nil)
		})
	}
}

func TestProbe_Check_CanceledIsIgnored(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	spy := &spyPinger{}
	spy.err.Store(fmt.Errorf("ping: request abandoned: %w", context.Canceled))

	o := NewObserver(true)
	NewProbe(spy, o, time.Minute, logger.Nop()).Check(ctx)

	assert.True(t, o.IsOnline())
	assert.Nil(t, o.Status().LastChangedAt)
}

func TestProbe_StartStop(t *testing.T) {
	spy := &spyPinger{}
	o := NewObserver(true)
	p := NewProbe(spy, o, 10*time.Millisecond, logger.Nop())

	p.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	p.Stop()

	calls := spy.calls.Load()
	assert.GreaterOrEqual(t, calls, int64(3))

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, spy.calls.Load(), "no pings after Stop")
}

func TestProbe_ReportsTransition(t *testing.T) {
	spy := &spyPinger{}
	spy.err.Store(errUnreachable)
	o := NewObserver(true)
	p := NewProbe(spy, o, 10*time.Millisecond, logger.Nop())

	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return !o.IsOnline() }, time.Second, 5*time.Millisecond)
	first := *o.Status().LastChangedAt

	// repeated failures are not transitions
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, first, *o.Status().LastChangedAt)
}

func TestProbe_StopBeforeStart(t *testing.T) {
	p := NewProbe(&spyPinger{}, NewObserver(true), 0, logger.Nop())
	assert.Equal(t, defaultProbeInterval, p.interval)
	assert.NotPanics(t, p.Stop)
}

func TestProbe_RestartReplacesLoop(t *testing.T) {
	spy := &spyPinger{}
	p := NewProbe(spy, NewObserver(true), 10*time.Millisecond, logger.Nop())

	ctx := context.Background()
	p.Start(ctx)
	p.Start(ctx)
	p.Stop()

	calls := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, spy.calls.Load())
}

func TestProbe_ContextCancelStopsLoop(t *testing.T) {
	spy := &spyPinger{}
	p := NewProbe(spy, NewObserver(true), 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	cancel()
	p.wg.Wait()

	calls := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, spy.calls.Load())
}
