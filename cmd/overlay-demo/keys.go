// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the demo's own keys. Scrolling and focus keys belong to
// the screen's key map.
type keyMap struct {
	Quit      key.Binding
	Manual    key.Binding
	Placement key.Binding
	Theme     key.Binding
	Arrow     key.Binding
	Embedded  key.Binding
	Search    key.Binding

	// Search box keys, active while it has focus.
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Leave  key.Binding
}

var defaultKeyMap = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Manual: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "manual tooltip"),
	),
	Placement: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "placement"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Arrow: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "arrow"),
	),
	Embedded: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "embedded"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "next"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "use placement"),
	),
	Leave: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "leave search"),
	),
}

// ShortHelp is the status line help for the page.
func (keys keyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Manual, keys.Placement, keys.Theme, keys.Arrow, keys.Embedded, keys.Search, keys.Quit}
}

// SearchHelp is the status line help while the search box has focus.
func (keys keyMap) SearchHelp() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Select, keys.Leave}
}
