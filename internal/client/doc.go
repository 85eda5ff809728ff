// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the favorites view-model, local storage and the
// background workers into a single process lifecycle.
package client
