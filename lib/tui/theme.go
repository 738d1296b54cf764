// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the color palette for the explorer. All colors are ANSI
// 256-color codes so the UI renders the same in tmux, over ssh, and in
// plain xterm.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Mission status colors. Statuses are free text in the dataset;
	// StatusColor maps the common ones onto these.
	StatusSuccess lipgloss.Color
	StatusFailed  lipgloss.Color
	StatusOngoing lipgloss.Color
	StatusPlanned lipgloss.Color

	// Accent marks focus, the active chip, and the scrollbar thumb.
	Accent lipgloss.Color

	// Favorite is the star shown next to favorited missions.
	Favorite lipgloss.Color

	// ErrorText is used for inline field errors.
	ErrorText lipgloss.Color

	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Background tints for rows that changed recently. HotAccentPut
	// marks favorites added and reloaded records; HotAccentRemove marks
	// favorites removed.
	HotAccentPut    lipgloss.Color
	HotAccentRemove lipgloss.Color

	// Query match highlighting in mission names.
	SearchHighlightBackground lipgloss.Color

	LinkForeground lipgloss.Color

	// Floating surfaces: dropdowns, the field editor, the toast.
	TooltipForeground lipgloss.Color
	TooltipBackground lipgloss.Color
}

// StatusColor returns the color for a mission status. Matching is
// case-insensitive; unrecognized statuses render in FaintText.
func (theme Theme) StatusColor(status string) lipgloss.Color {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "success", "successful", "completed":
		return theme.StatusSuccess
	case "failed", "failure", "lost":
		return theme.StatusFailed
	case "ongoing", "active", "in progress":
		return theme.StatusOngoing
	case "planned", "scheduled":
		return theme.StatusPlanned
	default:
		return theme.FaintText
	}
}

// DefaultTheme is tuned for dark 256-color terminals.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusSuccess: lipgloss.Color("114"), // green
	StatusFailed:  lipgloss.Color("196"), // red
	StatusOngoing: lipgloss.Color("75"),  // blue
	StatusPlanned: lipgloss.Color("245"), // gray

	Accent:    lipgloss.Color("220"), // amber
	Favorite:  lipgloss.Color("214"), // gold
	ErrorText: lipgloss.Color("203"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	HotAccentPut:    lipgloss.Color("58"),
	HotAccentRemove: lipgloss.Color("52"),

	SearchHighlightBackground: lipgloss.Color("58"),

	LinkForeground: lipgloss.Color("75"),

	TooltipForeground: lipgloss.Color("252"),
	TooltipBackground: lipgloss.Color("237"),
}
