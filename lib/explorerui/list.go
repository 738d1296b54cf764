// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorerui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/orbitdeck/missions/lib/mission"
	"github.com/orbitdeck/missions/lib/tui"
)

// Fixed list columns. The name column takes what is left; at wide
// widths a description excerpt follows the name.
const (
	columnWidthStar   = 3  // " ★ "
	columnWidthYear   = 6  // "1969  "
	columnWidthAgency = 14 // agency + gap
	columnWidthStatus = 10

	// nameColumnMin is the narrowest the name column gets.
	nameColumnMin = 12

	// excerptThreshold is the row width above which the name column is
	// capped and a description excerpt fills the rest.
	excerptThreshold = 100
	nameColumnCapped = 28
)

// ListRenderer renders result rows at a fixed width.
type ListRenderer struct {
	theme tui.Theme
	width int
}

// NewListRenderer creates a renderer for rows width columns wide.
func NewListRenderer(theme tui.Theme, width int) ListRenderer {
	return ListRenderer{theme: theme, width: width}
}

// RowState carries the per-row decorations.
type RowState struct {
	Selected bool
	Favorite bool

	// MatchPositions are rune indices of the query match in the name.
	MatchPositions []int
}

func (renderer ListRenderer) nameWidth() int {
	fixed := columnWidthStar + columnWidthYear + columnWidthAgency + columnWidthStatus
	width := max(renderer.width-fixed, nameColumnMin)
	if renderer.width >= excerptThreshold {
		width = nameColumnCapped
	}
	return width
}

// RenderRow renders one mission:
//
//	★ 1969  Apollo 11                 NASA          Success
func (renderer ListRenderer) RenderRow(record mission.Mission, state RowState) string {
	theme := renderer.theme
	base := lipgloss.NewStyle().Foreground(theme.NormalText)
	highlight := base.Background(theme.SearchHighlightBackground)
	if state.Selected {
		base = lipgloss.NewStyle().
			Foreground(theme.SelectedForeground).
			Background(theme.SelectedBackground)
		highlight = base.Bold(true).Underline(true)
	}

	star := base.Render("   ")
	if state.Favorite {
		star = base.Render(" ") + base.Foreground(theme.Favorite).Render("★") + base.Render(" ")
	}

	year := base.Width(columnWidthYear).Render(strconv.Itoa(record.Year))

	nameWidth := renderer.nameWidth()
	name := tui.Truncate(record.Name, nameWidth-1)
	positions := tui.ClipPositions(state.MatchPositions, strings.TrimSuffix(name, "…"))
	nameCell := tui.Highlight(name, positions, base, highlight)
	if pad := nameWidth - lipgloss.Width(name); pad > 0 {
		nameCell += base.Render(strings.Repeat(" ", pad))
	}

	agency := base.Width(columnWidthAgency).Render(tui.Truncate(record.Agency, columnWidthAgency-1))

	statusStyle := base.Width(columnWidthStatus)
	if !state.Selected {
		statusStyle = statusStyle.Foreground(theme.StatusColor(record.Status))
	}
	status := statusStyle.Render(tui.Truncate(record.Status, columnWidthStatus-1))

	row := star + year + nameCell + agency + status
	if renderer.width >= excerptThreshold {
		remaining := renderer.width - lipgloss.Width(row) - 1
		if excerpt := tui.Excerpt(record.Description, remaining); excerpt != "" {
			excerptStyle := base
			if !state.Selected {
				excerptStyle = excerptStyle.Foreground(theme.FaintText)
			}
			row += base.Render(" ") + excerptStyle.Render(excerpt)
		}
	}

	return base.Width(renderer.width).MaxWidth(renderer.width).Render(row)
}

// RenderColumnHeader renders the faint column titles above the rows.
func (renderer ListRenderer) RenderColumnHeader() string {
	style := lipgloss.NewStyle().Foreground(renderer.theme.HelpText)
	header := strings.Repeat(" ", columnWidthStar) +
		padRight("Year", columnWidthYear) +
		padRight("Name", renderer.nameWidth()) +
		padRight("Agency", columnWidthAgency) +
		padRight("Status", columnWidthStatus)
	if renderer.width >= excerptThreshold {
		header += " Description"
	}
	return style.Width(renderer.width).MaxWidth(renderer.width).Render(header)
}

func padRight(text string, width int) string {
	if gap := width - lipgloss.Width(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}
