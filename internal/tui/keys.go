// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	back       key.Binding
	quit       key.Binding
	version    key.Binding
	nextRegion key.Binding
	prevRegion key.Binding
	nextPage   key.Binding
	prevPage   key.Binding
	editQuery  key.Binding
	retry      key.Binding
	favorite   key.Binding
	copy       key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	back:       key.NewBinding(key.WithKeys("esc")),
	quit:       key.NewBinding(key.WithKeys("q")),
	version:    key.NewBinding(key.WithKeys("v")),
	nextRegion: key.NewBinding(key.WithKeys("tab")),
	prevRegion: key.NewBinding(key.WithKeys("shift+tab")),
	nextPage:   key.NewBinding(key.WithKeys("n", "pgdown")),
	prevPage:   key.NewBinding(key.WithKeys("p", "pgup")),
	editQuery:  key.NewBinding(key.WithKeys("/")),
	retry:      key.NewBinding(key.WithKeys("r")),
	favorite:   key.NewBinding(key.WithKeys("f")),
	copy:       key.NewBinding(key.WithKeys("c")),
}
