// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"slices"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func agencyDropdown() *DropdownOverlay {
	return &DropdownOverlay{
		Options: []DropdownOption{
			{Label: "ISRO", Value: "ISRO"},
			{Label: "NASA", Value: "NASA", Checked: true},
			{Label: "Soviet Union", Value: "Soviet Union"},
		},
		AnchorX: 5,
		AnchorY: 2,
		Field:   "agency",
		Multi:   true,
	}
}

func TestDropdownCursorWraps(t *testing.T) {
	dropdown := agencyDropdown()
	dropdown.MoveUp()
	if dropdown.Cursor != 2 {
		t.Errorf("MoveUp from top = %d, expected 2", dropdown.Cursor)
	}
	dropdown.MoveDown()
	if dropdown.Cursor != 0 {
		t.Errorf("MoveDown from bottom = %d, expected 0", dropdown.Cursor)
	}
}

func TestDropdownToggle(t *testing.T) {
	dropdown := agencyDropdown()
	value, ok := dropdown.Toggle()
	if !ok || value != "ISRO" {
		t.Errorf("Toggle = (%q, %v)", value, ok)
	}
	if got := dropdown.CheckedValues(); !slices.Equal(got, []string{"ISRO", "NASA"}) {
		t.Errorf("CheckedValues = %v", got)
	}
	dropdown.MoveDown()
	dropdown.Toggle()
	if got := dropdown.CheckedValues(); !slices.Equal(got, []string{"ISRO"}) {
		t.Errorf("after unchecking NASA CheckedValues = %v", got)
	}

	single := &DropdownOverlay{Options: []DropdownOption{{Label: "x", Value: "x"}}}
	if _, ok := single.Toggle(); ok {
		t.Error("single-select Toggle should be ignored")
	}
}

func TestDropdownEmpty(t *testing.T) {
	dropdown := &DropdownOverlay{}
	dropdown.MoveDown()
	dropdown.MoveUp()
	if _, ok := dropdown.Selected(); ok {
		t.Error("empty dropdown should have no selection")
	}
	if lines := dropdown.Render(DefaultTheme); len(lines) != 1 {
		t.Errorf("empty dropdown rendered %d lines, expected 1", len(lines))
	}
}

func TestDropdownRenderUniformWidth(t *testing.T) {
	dropdown := agencyDropdown()
	lines := dropdown.Render(DefaultTheme)
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	for index, line := range lines {
		if width := ansi.StringWidth(line); width != dropdown.Width() {
			t.Errorf("line %d width = %d, expected %d", index, width, dropdown.Width())
		}
	}
	if got := ansi.Strip(lines[1]); got != "   [x] NASA         " {
		t.Errorf("checked row = %q", got)
	}
}

func TestDropdownHitTesting(t *testing.T) {
	dropdown := agencyDropdown()
	if !dropdown.Contains(5, 2) || !dropdown.Contains(5+dropdown.Width()-1, 4) {
		t.Error("corners should be inside")
	}
	if dropdown.Contains(4, 2) || dropdown.Contains(5, 5) {
		t.Error("points outside should not be contained")
	}
	if dropdown.OptionAtY(3) != 1 || dropdown.OptionAtY(1) != -1 {
		t.Error("OptionAtY mapping is wrong")
	}
}
