// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/washu/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, persistent bool) string {
	var b strings.Builder

	b.WriteString("Application: washu\n")
	b.WriteString("Version: " + valueOrNA(info.Version) + "\n")
	b.WriteString("Date: " + valueOrNA(info.Date) + "\n")
	b.WriteString("Commit: " + valueOrNA(info.Commit) + "\n")
	if persistent {
		b.WriteString("Storage: on disk")
	} else {
		b.WriteString("Storage: this session only")
	}

	return renderPage("ABOUT", boxStyle.Render(b.String()), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
