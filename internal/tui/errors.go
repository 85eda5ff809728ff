// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/washu/internal/service"
)

// errorText renders a failed remote call with its retry hint.
func errorText(err error) string {
	if err == nil {
		return ""
	}
	return errorStyle.Render(service.UserMessage(err)) + "\n" + helpStyle.Render("r: retry")
}
