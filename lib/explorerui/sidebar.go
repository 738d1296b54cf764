// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorerui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/orbitdeck/missions/lib/explorer"
	"github.com/orbitdeck/missions/lib/tui"
)

// sidebarWidth is the fixed width of the filter sidebar, divider
// excluded.
const sidebarWidth = 30

// controlKind identifies a sidebar control.
type controlKind int

const (
	controlAgency controlKind = iota
	controlSort
	controlMissionType
	controlStatus
	controlYearFrom
	controlYearTo
	controlCostMin
	controlCostMax
	controlFavoritesOnly
	controlClearAll
)

// sidebarControl is one selectable row of the sidebar. value carries
// the facet value for chip controls.
type sidebarControl struct {
	kind  controlKind
	value string
}

// sidebarRow is one rendered line: a control, or a section heading or
// message that the cursor skips.
type sidebarRow struct {
	text    string
	control int // Index into the control list, or -1.
}

// sidebarControls lists the session's controls in display order. Chip
// controls come from the dataset's derived options, so the list
// changes when the dataset is replaced.
func sidebarControls(session *explorer.Session) []sidebarControl {
	options := session.Options()
	controls := []sidebarControl{{kind: controlAgency}, {kind: controlSort}}
	for _, missionType := range options.MissionTypes {
		controls = append(controls, sidebarControl{kind: controlMissionType, value: missionType})
	}
	for _, status := range options.Statuses {
		controls = append(controls, sidebarControl{kind: controlStatus, value: status})
	}
	return append(controls,
		sidebarControl{kind: controlYearFrom},
		sidebarControl{kind: controlYearTo},
		sidebarControl{kind: controlCostMin},
		sidebarControl{kind: controlCostMax},
		sidebarControl{kind: controlFavoritesOnly},
		sidebarControl{kind: controlClearAll},
	)
}

// agencySummary describes the agency selection in a few words.
func agencySummary(selected []string) string {
	switch len(selected) {
	case 0:
		return "All"
	case 1:
		return selected[0]
	default:
		return fmt.Sprintf("%s +%d", selected[0], len(selected)-1)
	}
}

// formatCost renders a cost bound without trailing zeros.
func formatCost(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatYear(year *int) string {
	if year == nil {
		return "any"
	}
	return strconv.Itoa(*year)
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// sidebarRows lays out the sidebar for the session's current state.
func sidebarRows(session *explorer.Session, controls []sidebarControl, theme tui.Theme) []sidebarRow {
	filter := session.Filter()
	options := session.Options()

	heading := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	accent := lipgloss.NewStyle().Foreground(theme.Accent)

	var rows []sidebarRow
	addHeading := func(text string) {
		if len(rows) > 0 {
			rows = append(rows, sidebarRow{control: -1})
		}
		rows = append(rows, sidebarRow{text: heading.Render(text), control: -1})
	}

	for index, control := range controls {
		switch control.kind {
		case controlAgency:
			rows = append(rows, sidebarRow{control: index,
				text: "Agency  " + agencySummary(filter.Agencies.Values())})
		case controlSort:
			rows = append(rows, sidebarRow{control: index,
				text: "Sort    " + session.SortKey().Label()})
		case controlMissionType:
			if index == 0 || controls[index-1].kind != controlMissionType {
				addHeading("Mission type")
			}
			rows = append(rows, sidebarRow{control: index,
				text: checkbox(filter.MissionTypes.Has(control.value)) + " " + control.value})
		case controlStatus:
			if index == 0 || controls[index-1].kind != controlStatus {
				addHeading("Status")
			}
			status := lipgloss.NewStyle().Foreground(theme.StatusColor(control.value)).Render(control.value)
			rows = append(rows, sidebarRow{control: index,
				text: checkbox(filter.Statuses.Has(control.value)) + " " + status})
		case controlYearFrom:
			addHeading("Launch year")
			rows = append(rows, sidebarRow{control: index, text: "From  " + formatYear(filter.Years.From)})
		case controlYearTo:
			rows = append(rows, sidebarRow{control: index, text: "To    " + formatYear(filter.Years.To)})
			if message := session.YearError(); message != "" {
				rows = append(rows, sidebarRow{control: -1,
					text: lipgloss.NewStyle().Foreground(theme.ErrorText).Render("! " + message)})
			}
		case controlCostMin:
			addHeading(fmt.Sprintf("Cost (step %s)", formatCost(options.CostStep)))
			rows = append(rows, sidebarRow{control: index,
				text: "Min  " + accent.Render("‹") + " " + formatCost(filter.Cost.Min) + " " + accent.Render("›")})
		case controlCostMax:
			rows = append(rows, sidebarRow{control: index,
				text: "Max  " + accent.Render("‹") + " " + formatCost(filter.Cost.Max) + " " + accent.Render("›")})
			rows = append(rows, sidebarRow{control: -1,
				text: faint.Render(fmt.Sprintf("range %s – %s", formatCost(options.CostMin), formatCost(options.CostMax)))})
			if message := session.CostError(); message != "" {
				rows = append(rows, sidebarRow{control: -1,
					text: lipgloss.NewStyle().Foreground(theme.ErrorText).Render("! " + message)})
			}
		case controlFavoritesOnly:
			rows = append(rows, sidebarRow{control: -1})
			rows = append(rows, sidebarRow{control: index,
				text: checkbox(filter.FavoritesOnly) + " Favorites only"})
		case controlClearAll:
			rows = append(rows, sidebarRow{control: index, text: "Clear all"})
		}
	}

	rows = append(rows, sidebarRow{control: -1})
	rows = append(rows, sidebarRow{control: -1,
		text: faint.Render(explorer.FilterCountLabel(session.ActiveFilterCount()))})
	return rows
}

// renderSidebar draws the sidebar height rows tall, scrolled so the
// cursor row is visible.
func renderSidebar(rows []sidebarRow, cursor int, focused bool, theme tui.Theme, height int) string {
	if height <= 0 {
		return ""
	}

	cursorRow := 0
	for index, row := range rows {
		if row.control == cursor {
			cursorRow = index
			break
		}
	}
	offset := 0
	if cursorRow >= height {
		offset = cursorRow - height + 1
	}

	rowStyle := lipgloss.NewStyle().Width(sidebarWidth).MaxWidth(sidebarWidth)
	selected := rowStyle.
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	lines := make([]string, 0, height)
	for index := offset; index < len(rows) && len(lines) < height; index++ {
		row := rows[index]
		marker := "  "
		if row.control >= 0 && row.control == cursor && focused {
			marker = lipgloss.NewStyle().Foreground(theme.Accent).Render("▸ ")
			lines = append(lines, selected.Render(marker+tui.Truncate(row.text, sidebarWidth-2)))
			continue
		}
		lines = append(lines, rowStyle.Render(marker+tui.Truncate(row.text, sidebarWidth-2)))
	}
	for len(lines) < height {
		lines = append(lines, rowStyle.Render(""))
	}
	return strings.Join(lines, "\n")
}
