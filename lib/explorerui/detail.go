// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorerui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/orbitdeck/missions/lib/mission"
	"github.com/orbitdeck/missions/lib/tui"
)

// detailHeaderLines is the height of the fixed header above the
// scrollable description:
//
//	Line 1: ★ Apollo 11                                  3 of 9
//	Line 2: NASA · Crewed Landing · Success · 1969
//	Line 3: Launch 07/16/1969   Cost 25000
//	Line 4: Crew Neil Armstrong, Buzz Aldrin, Michael Collins
//	Line 5: separator
const detailHeaderLines = 5

// detailFooterLines is the prev/next navigation line under the body.
const detailFooterLines = 1

// DetailContext is what the detail view shows about the mission's
// place in the current view.
type DetailContext struct {
	Favorite bool
	Position int // 1-based index in the visible list.
	Count    int // Size of the visible list.
	HasPrev  bool
	HasNext  bool
}

// DetailPane shows one mission: a fixed header, the rendered
// description in a scrollable viewport, and a footer with prev/next
// availability.
type DetailPane struct {
	viewport viewport.Model
	theme    tui.Theme
	width    int
	height   int

	hasMission bool
	mission    mission.Mission
	context    DetailContext
	header     string
}

// NewDetailPane creates an empty pane.
func NewDetailPane(theme tui.Theme) DetailPane {
	return DetailPane{theme: theme}
}

func (pane DetailPane) bodyHeight() int {
	return max(pane.height-detailHeaderLines-detailFooterLines, 1)
}

// contentWidth leaves one column of left padding and one for the
// scrollbar.
func (pane DetailPane) contentWidth() int {
	return max(pane.width-2, 10)
}

// SetSize resizes the pane, re-rendering at the new width.
func (pane *DetailPane) SetSize(width, height int) {
	previousWidth := pane.width
	pane.width = width
	pane.height = height
	pane.viewport.Width = pane.contentWidth()
	pane.viewport.Height = pane.bodyHeight()
	if pane.hasMission && width != previousWidth {
		pane.render(false)
	}
}

// SetContent shows record. The scroll position resets when the
// mission changes and is kept when the same mission is refreshed, for
// example after toggling its favorite.
func (pane *DetailPane) SetContent(record mission.Mission, context DetailContext) {
	sameMission := pane.hasMission && pane.mission.ID == record.ID
	pane.hasMission = true
	pane.mission = record
	pane.context = context
	pane.render(!sameMission)
}

// Clear empties the pane.
func (pane *DetailPane) Clear() {
	pane.hasMission = false
	pane.mission = mission.Mission{}
	pane.context = DetailContext{}
	pane.header = ""
	pane.viewport.SetContent("")
}

// MissionID returns the displayed mission's ID, or "" when empty.
func (pane DetailPane) MissionID() string {
	if !pane.hasMission {
		return ""
	}
	return pane.mission.ID
}

func (pane *DetailPane) render(resetScroll bool) {
	previousOffset := pane.viewport.YOffset
	width := pane.contentWidth()

	pane.header = pane.renderHeader(width)

	body := renderDescription(pane.mission.Description, pane.theme, width)
	if body == "" {
		body = lipgloss.NewStyle().Foreground(pane.theme.FaintText).Render("No description.")
	}
	pane.viewport.SetContent(lipgloss.NewStyle().Width(width).Render(body))

	if resetScroll {
		pane.viewport.GotoTop()
		return
	}
	maxOffset := max(pane.viewport.TotalLineCount()-pane.viewport.Height, 0)
	pane.viewport.SetYOffset(min(previousOffset, maxOffset))
}

func (pane DetailPane) renderHeader(width int) string {
	record := pane.mission
	theme := pane.theme

	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	normal := lipgloss.NewStyle().Foreground(theme.NormalText)
	label := lipgloss.NewStyle().Foreground(theme.HelpText)

	// Line 1: name, favorite star, position on the right.
	star := "  "
	if pane.context.Favorite {
		star = lipgloss.NewStyle().Foreground(theme.Favorite).Render("★") + " "
	}
	position := ""
	if pane.context.Count > 0 {
		position = fmt.Sprintf("%d of %d", pane.context.Position, pane.context.Count)
	}
	nameWidth := max(width-2-ansi.StringWidth(position)-1, 1)
	name := nameStyle.Render(tui.Truncate(record.Name, nameWidth))
	gap := max(width-2-ansi.StringWidth(name)-ansi.StringWidth(position), 1)
	line1 := star + name + strings.Repeat(" ", gap) + faint.Render(position)

	// Line 2: facets.
	separator := faint.Render(" · ")
	facets := []string{
		normal.Render(record.Agency),
		normal.Render(record.MissionType),
		lipgloss.NewStyle().Foreground(theme.StatusColor(record.Status)).Render(record.Status),
		normal.Render(fmt.Sprintf("%d", record.Year)),
	}
	line2 := ansi.Truncate(strings.Join(facets, separator), width, "…")

	// Lines 3-4: launch date, cost, crew.
	line3 := label.Render("Launch ") + normal.Render(record.LaunchLabel()) +
		"   " + label.Render("Cost ") + normal.Render(record.CostLabel())
	line4 := label.Render("Crew ") + normal.Render(tui.Truncate(record.CrewLabel(), max(width-5, 1)))

	rule := lipgloss.NewStyle().Foreground(theme.BorderColor).Render(strings.Repeat("─", width))

	return strings.Join([]string{line1, line2, line3, line4, rule}, "\n")
}

func (pane DetailPane) renderFooter(width int) string {
	enabled := lipgloss.NewStyle().Foreground(pane.theme.NormalText)
	disabled := lipgloss.NewStyle().Foreground(pane.theme.BorderColor)

	previous := disabled.Render("← prev")
	if pane.context.HasPrev {
		previous = enabled.Render("← prev")
	}
	next := disabled.Render("next →")
	if pane.context.HasNext {
		next = enabled.Render("next →")
	}
	hint := lipgloss.NewStyle().Foreground(pane.theme.HelpText).Render("f favorite  Esc close")
	gap := max(width-ansi.StringWidth(previous)-ansi.StringWidth(next)-ansi.StringWidth(hint)-4, 1)
	return previous + "  " + next + strings.Repeat(" ", gap) + hint
}

// View renders the pane at its full size.
func (pane DetailPane) View(focused bool) string {
	width := pane.contentWidth()
	padded := lipgloss.NewStyle().PaddingLeft(1).Width(pane.width - 1)

	if !pane.hasMission {
		empty := lipgloss.Place(width, pane.height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(pane.theme.FaintText).Render("No mission selected"))
		return lipgloss.JoinHorizontal(lipgloss.Top,
			padded.Height(pane.height).Render(empty),
			tui.RenderScrollbar(pane.theme, pane.height, 0, pane.height, 0, focused))
	}

	bodyHeight := pane.bodyHeight()
	content := padded.Height(detailHeaderLines).Render(pane.header) + "\n" +
		padded.Height(bodyHeight).Render(pane.viewport.View()) + "\n" +
		padded.Height(detailFooterLines).Render(pane.renderFooter(width))

	// The scrollbar only spans the body.
	blank := lipgloss.NewStyle().Width(1).Height(detailHeaderLines).Render("")
	footerBlank := lipgloss.NewStyle().Width(1).Height(detailFooterLines).Render("")
	scrollbar := tui.RenderScrollbar(pane.theme, bodyHeight,
		pane.viewport.TotalLineCount(), pane.viewport.Height, pane.viewport.YOffset, focused)

	return lipgloss.JoinHorizontal(lipgloss.Top, content, blank+"\n"+scrollbar+"\n"+footerBlank)
}

// ScrollUp scrolls half a page up.
func (pane *DetailPane) ScrollUp() {
	pane.viewport.HalfViewUp()
}

// ScrollDown scrolls half a page down.
func (pane *DetailPane) ScrollDown() {
	pane.viewport.HalfViewDown()
}
