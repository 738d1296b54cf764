// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorerui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/orbitdeck/missions/lib/tui"
)

// SearchBar is the text query input above the list. The query itself
// lives in the session; the bar only holds the text being typed and
// whether it has keyboard focus.
type SearchBar struct {
	Input  string
	Active bool
}

// HandleRune appends a typed character.
func (search *SearchBar) HandleRune(character rune) {
	search.Input += string(character)
}

// HandleBackspace removes the last character and reports whether the
// input changed.
func (search *SearchBar) HandleBackspace() bool {
	if search.Input == "" {
		return false
	}
	runes := []rune(search.Input)
	search.Input = string(runes[:len(runes)-1])
	return true
}

// Clear empties the input and drops focus.
func (search *SearchBar) Clear() {
	search.Input = ""
	search.Active = false
}

// View renders the bar as a single line. The bar is always shown so
// the layout does not shift when searching starts; an idle, empty bar
// shows a faint placeholder.
func (search SearchBar) View(theme tui.Theme, width int) string {
	line := lipgloss.NewStyle().Width(width).MaxWidth(width)
	if search.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("▎")
		return line.Foreground(theme.NormalText).Render(" / " + search.Input + cursor)
	}
	if search.Input == "" {
		return line.Foreground(theme.FaintText).Render(" / search missions by name")
	}
	return line.Foreground(theme.FaintText).Render(" search: " + search.Input)
}
