// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NetworkStatus is a snapshot of the connectivity state. It is never
// persisted.
type NetworkStatus struct {
	IsOnline bool

	// LastChangedAt is the epoch-millisecond time of the last observed
	// transition, or nil if no transition has happened since start.
	LastChangedAt *int64
}
