// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DropdownOption is one row of a dropdown.
type DropdownOption struct {
	Label string
	Value string

	// Checked marks the option as selected in a multi-select dropdown.
	Checked bool
}

// DropdownOverlay is a floating menu anchored at a screen position.
// While it is open the model routes every key to it: up/down move,
// space toggles (multi-select), enter confirms, escape dismisses.
type DropdownOverlay struct {
	Options []DropdownOption
	Cursor  int
	AnchorX int
	AnchorY int

	// Field names what the dropdown edits, e.g. "agency" or "sort".
	Field string

	// Multi renders checkboxes and enables Toggle.
	Multi bool
}

// MoveUp moves the cursor up one option, wrapping to the bottom.
func (dropdown *DropdownOverlay) MoveUp() {
	if len(dropdown.Options) == 0 {
		return
	}
	dropdown.Cursor--
	if dropdown.Cursor < 0 {
		dropdown.Cursor = len(dropdown.Options) - 1
	}
}

// MoveDown moves the cursor down one option, wrapping to the top.
func (dropdown *DropdownOverlay) MoveDown() {
	if len(dropdown.Options) == 0 {
		return
	}
	dropdown.Cursor++
	if dropdown.Cursor >= len(dropdown.Options) {
		dropdown.Cursor = 0
	}
}

// Selected returns the option under the cursor. ok is false when the
// dropdown has no options.
func (dropdown *DropdownOverlay) Selected() (DropdownOption, bool) {
	if dropdown.Cursor < 0 || dropdown.Cursor >= len(dropdown.Options) {
		return DropdownOption{}, false
	}
	return dropdown.Options[dropdown.Cursor], true
}

// Toggle flips the checked state of the option under the cursor and
// returns its value. Single-select dropdowns ignore it.
func (dropdown *DropdownOverlay) Toggle() (string, bool) {
	if !dropdown.Multi {
		return "", false
	}
	if dropdown.Cursor < 0 || dropdown.Cursor >= len(dropdown.Options) {
		return "", false
	}
	option := &dropdown.Options[dropdown.Cursor]
	option.Checked = !option.Checked
	return option.Value, true
}

// CheckedValues returns the values of every checked option in display
// order.
func (dropdown *DropdownOverlay) CheckedValues() []string {
	var values []string
	for _, option := range dropdown.Options {
		if option.Checked {
			values = append(values, option.Value)
		}
	}
	return values
}

// Width is the rendered width in columns, used for hit-testing and
// placement.
func (dropdown *DropdownOverlay) Width() int {
	widest := 0
	for _, option := range dropdown.Options {
		widest = max(widest, ansi.StringWidth(option.Label))
	}
	// " > " marker, optional "[x] " box, label, one column right pad.
	width := 3 + widest + 1
	if dropdown.Multi {
		width += 4
	}
	return width
}

// Contains reports whether (x, y) falls inside the dropdown.
func (dropdown *DropdownOverlay) Contains(x, y int) bool {
	return dropdown.OptionAtY(y) >= 0 && x >= dropdown.AnchorX && x < dropdown.AnchorX+dropdown.Width()
}

// OptionAtY maps a screen row to an option index, or -1.
func (dropdown *DropdownOverlay) OptionAtY(y int) int {
	index := y - dropdown.AnchorY
	if index < 0 || index >= len(dropdown.Options) {
		return -1
	}
	return index
}

// Render returns the dropdown lines for SpliceOverlay. Every line has
// the same visible width. An empty dropdown renders a single
// placeholder row.
func (dropdown *DropdownOverlay) Render(theme Theme) []string {
	normal := lipgloss.NewStyle().
		Foreground(theme.TooltipForeground).
		Background(theme.TooltipBackground)
	highlighted := lipgloss.NewStyle().
		Foreground(theme.SelectedForeground).
		Background(theme.SelectedBackground)

	if len(dropdown.Options) == 0 {
		return []string{normal.Render(" (none) ")}
	}

	width := dropdown.Width()
	lines := make([]string, 0, len(dropdown.Options))
	for index, option := range dropdown.Options {
		marker := "   "
		style := normal
		if index == dropdown.Cursor {
			marker = " > "
			style = highlighted
		}
		box := ""
		if dropdown.Multi {
			box = "[ ] "
			if option.Checked {
				box = "[x] "
			}
		}
		content := marker + box + option.Label
		if pad := width - ansi.StringWidth(content); pad > 0 {
			content += strings.Repeat(" ", pad)
		}
		lines = append(lines, style.Render(content))
	}
	return lines
}
