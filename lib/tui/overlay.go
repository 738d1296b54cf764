// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay draws overlayLines over view with the top-left corner
// at (anchorX, anchorY). Cells of view left and right of the overlay
// keep their escape sequences; lines outside the view are skipped.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	for offset, overlayLine := range overlayLines {
		row := anchorY + offset
		if row < 0 || row >= len(viewLines) {
			continue
		}
		base := viewLines[row]

		var line strings.Builder
		if anchorX > 0 {
			left := ansi.Truncate(base, anchorX, "")
			line.WriteString(left)
			// Short base lines leave a gap before the overlay.
			if gap := anchorX - ansi.StringWidth(left); gap > 0 {
				line.WriteString(strings.Repeat(" ", gap))
			}
		}
		line.WriteString("\x1b[0m")
		line.WriteString(overlayLine)
		line.WriteString("\x1b[0m")
		if rightStart := anchorX + overlayWidth; rightStart < ansi.StringWidth(base) {
			line.WriteString(ansi.TruncateLeft(base, rightStart, ""))
		}
		viewLines[row] = line.String()
	}

	return strings.Join(viewLines, "\n")
}

// PadOverlayLine wraps styled content in one column of padding on the
// left and pads the right so the line is totalWidth wide, painting the
// padding with backgroundStyle.
func PadOverlayLine(styledContent string, innerWidth, totalWidth int, backgroundStyle lipgloss.Style) string {
	rightPad := max(innerWidth-ansi.StringWidth(styledContent), 0)
	line := backgroundStyle.Render(" ") + styledContent + backgroundStyle.Render(strings.Repeat(" ", rightPad+1))
	if short := totalWidth - ansi.StringWidth(line); short > 0 {
		line += backgroundStyle.Render(strings.Repeat(" ", short))
	}
	return line
}

// Excerpt returns the first non-blank line of body with leading
// markdown heading and list markers removed, truncated to maxWidth.
func Excerpt(body string, maxWidth int) string {
	for line := range strings.SplitSeq(body, "\n") {
		trimmed := strings.TrimSpace(line)
		trimmed = strings.TrimLeft(trimmed, "#>*-+ ")
		if trimmed == "" {
			continue
		}
		return Truncate(trimmed, maxWidth)
	}
	return ""
}

// CenterAnchor returns the top-left corner that centers a block of
// the given size on the screen, never negative.
func CenterAnchor(screenWidth, screenHeight, blockWidth, blockHeight int) (int, int) {
	return max((screenWidth-blockWidth)/2, 0), max((screenHeight-blockHeight)/2, 0)
}
