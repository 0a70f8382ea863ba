// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	newMemo key.Binding
	search  key.Binding
	tag     key.Binding
	delete  key.Binding
	theme   key.Binding
	about   key.Binding
	yes     key.Binding
	no      key.Binding

	save   key.Binding
	attach key.Binding
	copy   key.Binding
	bold   key.Binding
	font   key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newMemo: key.NewBinding(key.WithKeys("n")),
	search:  key.NewBinding(key.WithKeys("/")),
	tag:     key.NewBinding(key.WithKeys("t")),
	delete:  key.NewBinding(key.WithKeys("d")),
	theme:   key.NewBinding(key.WithKeys("T")),
	about:   key.NewBinding(key.WithKeys("i")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),

	save:   key.NewBinding(key.WithKeys("ctrl+s")),
	attach: key.NewBinding(key.WithKeys("ctrl+o")),
	copy:   key.NewBinding(key.WithKeys("ctrl+y")),
	bold:   key.NewBinding(key.WithKeys("ctrl+b")),
	font:   key.NewBinding(key.WithKeys("ctrl+f")),
}
