// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage lays out a titled page body with its hotkey line.
func renderPage(title, body, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(body) == "" {
		b.WriteString("  -\n")
	} else {
		for line := range strings.SplitSeq(body, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n  ")
	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys + " │ ctrl+c: quit"))
	} else {
		b.WriteString(helpStyle.Render("ctrl+c: quit"))
	}

	return b.String()
}

// renderRows draws one line per row with a cursor on the selected one.
func renderRows(rows []string, selected int) string {
	var b strings.Builder
	for i, row := range rows {
		if i == selected {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func sakeLine(name, brewery, region string, favorite bool) string {
	star := " "
	if favorite {
		star = starStyle.Render("★")
	}
	return fmt.Sprintf("%s %s  %s", star, fitText(name, 32), helpStyle.Render(fitText(brewery+" · "+region, 40)))
}

func valueOrDash(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "-"
	}
	return *v
}

func numberOrDash(v *float64, unit string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g%s", *v, unit)
}

func listOrDash(v []string) string {
	if len(v) == 0 {
		return "-"
	}
	return strings.Join(v, ", ")
}

// fitText cuts v to at most max display cells.
func fitText(v string, max int) string {
	if max <= 0 || lipgloss.Width(v) <= max {
		return v
	}
	runes := []rune(v)
	if max <= 3 {
		return string(runes[:min(max, len(runes))])
	}
	for lipgloss.Width(string(runes))+3 > max && len(runes) > 0 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func clampCursor(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
