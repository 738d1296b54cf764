// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar draws a one-column scrollbar height rows tall. The
// thumb covers the visible share of total and sits at offset. When
// everything fits, the thumb fills the track. The thumb takes the
// accent color while its pane has focus.
func RenderScrollbar(theme Theme, height, total, visible, offset int, focused bool) string {
	if height <= 0 {
		return ""
	}

	thumbColor := theme.BorderColor
	if focused {
		thumbColor = theme.Accent
	}
	track := lipgloss.NewStyle().Foreground(theme.BorderColor).Render("│")
	thumb := lipgloss.NewStyle().Foreground(thumbColor).Render("┃")

	thumbStart, thumbSize := 0, height
	if total > visible && total > 0 {
		thumbSize = max(height*visible/total, 1)
		scrollable := total - visible
		if free := height - thumbSize; free > 0 {
			thumbStart = min(offset*free/scrollable, free)
		}
	}

	lines := make([]string, height)
	for row := range lines {
		if row >= thumbStart && row < thumbStart+thumbSize {
			lines[row] = thumb
		} else {
			lines[row] = track
		}
	}
	return strings.Join(lines, "\n")
}
