// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FieldModal is a centered single-line editor used for numeric filter
// inputs (year bounds, cost bounds). It only edits text; the model
// handles enter and escape and decides what the value means. A
// rejected value is reported back through Error, which is drawn under
// the input until the next edit.
type FieldModal struct {
	// Title is shown on the top line, e.g. "Year from".
	Title string

	// Field identifies which filter input is being edited.
	Field string

	// Hint is the faint footer text.
	Hint string

	// Error is the inline validation message, empty when valid.
	Error string

	value  []rune
	cursor int
	theme  Theme
}

// fieldModalWidth is the inner width of the input box.
const fieldModalWidth = 32

// NewFieldModal opens an editor pre-filled with initial and the cursor
// at the end.
func NewFieldModal(title, field, initial string, theme Theme) FieldModal {
	value := []rune(initial)
	return FieldModal{
		Title:  title,
		Field:  field,
		Hint:   "Enter apply  Esc cancel  empty clears",
		value:  value,
		cursor: len(value),
		theme:  theme,
	}
}

// Value returns the current text.
func (modal FieldModal) Value() string {
	return string(modal.value)
}

// Update applies an editing key. Enter and Esc are left to the caller.
func (modal *FieldModal) Update(message tea.KeyMsg) {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			modal.value = append(modal.value[:modal.cursor], append([]rune{character}, modal.value[modal.cursor:]...)...)
			modal.cursor++
		}
		modal.Error = ""

	case tea.KeyBackspace:
		if modal.cursor > 0 {
			modal.value = append(modal.value[:modal.cursor-1], modal.value[modal.cursor:]...)
			modal.cursor--
			modal.Error = ""
		}

	case tea.KeyDelete:
		if modal.cursor < len(modal.value) {
			modal.value = append(modal.value[:modal.cursor], modal.value[modal.cursor+1:]...)
			modal.Error = ""
		}

	case tea.KeyCtrlU:
		modal.value = modal.value[:0]
		modal.cursor = 0
		modal.Error = ""

	case tea.KeyLeft:
		if modal.cursor > 0 {
			modal.cursor--
		}

	case tea.KeyRight:
		if modal.cursor < len(modal.value) {
			modal.cursor++
		}

	case tea.KeyHome, tea.KeyCtrlA:
		modal.cursor = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		modal.cursor = len(modal.value)
	}
}

// Render returns the bordered modal lines and the anchor that centers
// them on a screen of the given size.
func (modal FieldModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := min(fieldModalWidth, max(screenWidth-4, 8))

	background := lipgloss.NewStyle().Background(modal.theme.TooltipBackground)
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.HeaderForeground).
		Background(modal.theme.TooltipBackground)
	text := lipgloss.NewStyle().
		Foreground(modal.theme.NormalText).
		Background(modal.theme.SelectedBackground)
	cursorStyle := lipgloss.NewStyle().Reverse(true)
	errorStyle := lipgloss.NewStyle().
		Foreground(modal.theme.ErrorText).
		Background(modal.theme.TooltipBackground)
	hint := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.TooltipBackground)

	pad := func(rendered string, style lipgloss.Style) string {
		if gap := innerWidth - ansi.StringWidth(rendered); gap > 0 {
			rendered += style.Render(strings.Repeat(" ", gap))
		}
		return rendered
	}

	// Scroll the input horizontally so the cursor stays in view.
	start := max(modal.cursor-innerWidth+1, 0)
	visible := modal.value[start:]
	if len(visible) > innerWidth {
		visible = visible[:innerWidth]
	}
	at := modal.cursor - start
	var input string
	if at >= len(visible) {
		input = text.Render(string(visible)) + cursorStyle.Render(" ")
	} else {
		input = text.Render(string(visible[:at])) +
			cursorStyle.Render(string(visible[at])) +
			text.Render(string(visible[at+1:]))
	}

	errorLine := ""
	if modal.Error != "" {
		errorLine = errorStyle.Render(Truncate(modal.Error, innerWidth))
	}

	inner := strings.Join([]string{
		pad(title.Render(Truncate(modal.Title, innerWidth)), background),
		pad(input, text),
		pad(errorLine, background),
		pad(hint.Render(Truncate(modal.Hint, innerWidth)), background),
	}, "\n")

	rendered := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor).
		Background(modal.theme.TooltipBackground).
		Render(inner)

	lines := strings.Split(rendered, "\n")
	anchorX, anchorY := CenterAnchor(screenWidth, screenHeight, ansi.StringWidth(lines[0]), len(lines))
	return lines, anchorX, anchorY
}
