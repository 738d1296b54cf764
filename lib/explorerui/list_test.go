// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorerui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/orbitdeck/missions/lib/tui"
)

func TestRenderRowColumns(t *testing.T) {
	renderer := NewListRenderer(tui.DefaultTheme, 80)
	row := renderer.RenderRow(testMissions()[0], RowState{Favorite: true})

	if width := ansi.StringWidth(row); width != 80 {
		t.Errorf("row width = %d, expected 80", width)
	}
	plain := ansi.Strip(row)
	if !strings.HasPrefix(plain, " ★ 1969  Apollo 11") {
		t.Errorf("row = %q", plain)
	}
	for _, want := range []string{"NASA", "Success"} {
		if !strings.Contains(plain, want) {
			t.Errorf("row %q missing %q", plain, want)
		}
	}
}

func TestRenderRowNotFavorite(t *testing.T) {
	renderer := NewListRenderer(tui.DefaultTheme, 80)
	plain := ansi.Strip(renderer.RenderRow(testMissions()[1], RowState{Selected: true}))
	if strings.Contains(plain, "★") {
		t.Errorf("non-favorite row shows a star: %q", plain)
	}
	if !strings.HasPrefix(plain, "   1981  STS-1") {
		t.Errorf("row = %q", plain)
	}
}

func TestRenderRowExcerptAtWideWidths(t *testing.T) {
	renderer := NewListRenderer(tui.DefaultTheme, 120)
	row := renderer.RenderRow(testMissions()[0], RowState{})
	if width := ansi.StringWidth(row); width != 120 {
		t.Errorf("row width = %d, expected 120", width)
	}
	if !strings.Contains(ansi.Strip(row), "First crewed") {
		t.Errorf("wide row missing excerpt: %q", ansi.Strip(row))
	}
	if !strings.Contains(ansi.Strip(renderer.RenderColumnHeader()), "Description") {
		t.Error("wide header should label the excerpt column")
	}
}

func TestRenderRowTruncatesLongNames(t *testing.T) {
	renderer := NewListRenderer(tui.DefaultTheme, 50)
	record := testMissions()[0]
	record.Name = strings.Repeat("Very Long Mission Name ", 4)
	row := renderer.RenderRow(record, RowState{MatchPositions: []int{0, 1, 2, 90}})
	if width := ansi.StringWidth(row); width != 50 {
		t.Errorf("row width = %d, expected 50", width)
	}
	if !strings.Contains(ansi.Strip(row), "…") {
		t.Errorf("long name should be truncated: %q", ansi.Strip(row))
	}
}

func TestRenderColumnHeader(t *testing.T) {
	header := ansi.Strip(NewListRenderer(tui.DefaultTheme, 80).RenderColumnHeader())
	for _, want := range []string{"Year", "Name", "Agency", "Status"} {
		if !strings.Contains(header, want) {
			t.Errorf("header %q missing %q", header, want)
		}
	}
	if strings.Contains(header, "Description") {
		t.Error("narrow header should not label an excerpt column")
	}
}
