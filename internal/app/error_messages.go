// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants and the error
// policy used across the washu client.
//
// All Msg* constants are human-readable strings shown to the user when an
// operation fails. Keeping them in one place ensures consistent wording
// throughout the UI.
package app

const (
	// MsgNetworkUnreachable is shown when the backend could not be reached
	// at all (no response arrived).
	MsgNetworkUnreachable = "Cannot reach the API server. Check your connection or that the backend is running."

	// MsgParseFailed is shown when the backend answered but the response
	// did not have the expected shape.
	MsgParseFailed = "Failed to read the server response."

	// MsgSearchFailed is the fallback for a failed search request.
	MsgSearchFailed = "Failed to load search results."

	// MsgDetailFailed is the fallback for a failed detail request.
	MsgDetailFailed = "Failed to load sake details."

	// MsgRegionsFailed is the fallback for a failed region list request.
	MsgRegionsFailed = "Failed to load the region list."

	// MsgTasteTagsFailed is the fallback for a failed taste tag request.
	MsgTasteTagsFailed = "Failed to load taste tags."

	// MsgHealthFailed is the fallback for a failed health probe.
	MsgHealthFailed = "API server is not healthy."

	// MsgRequestCanceled is used when the user left the page before the
	// request completed. It is never rendered.
	MsgRequestCanceled = "Request canceled."

	// MsgUnexpected is shown for failures outside the known categories.
	MsgUnexpected = "Something went wrong."

	// MsgOffline is rendered in the offline banner.
	MsgOffline = "You are offline. Favorites and recently viewed items are still available."
)
