// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorerui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the explorer's key bindings.
type KeyMap struct {
	// Navigation. In the list these move the row cursor, in the sidebar
	// the control cursor, in the detail view they scroll the body.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Left/Right step through missions in the detail view and nudge
	// cost bounds in the sidebar.
	Left  key.Binding
	Right key.Binding

	FocusToggle key.Binding

	Search         key.Binding
	AgencyDropdown key.Binding
	SortDropdown   key.Binding
	FavoritesOnly  key.Binding
	ClearAll       key.Binding

	ToggleFavorite key.Binding
	Open           key.Binding
	Toggle         key.Binding // Sidebar: flip the chip or checkbox under the cursor.
	Close          key.Binding

	Quit key.Binding
}

// DefaultKeyMap pairs vim-style keys with the arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "filters/list"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	AgencyDropdown: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "agency"),
	),
	SortDropdown: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	FavoritesOnly: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "favorites only"),
	),
	ClearAll: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear all"),
	),
	ToggleFavorite: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "favorite"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "details"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("Space", "toggle"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
