// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorerui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/orbitdeck/missions/lib/tui"
)

// plainDescription renders markdown and strips the styling.
func plainDescription(input string, width int) string {
	return ansi.Strip(renderDescription(input, tui.DefaultTheme, width))
}

func TestRenderDescriptionEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n"} {
		if result := renderDescription(input, tui.DefaultTheme, 80); result != "" {
			t.Errorf("renderDescription(%q) = %q, expected empty", input, result)
		}
	}
}

func TestRenderDescriptionReflowsSoftBreaks(t *testing.T) {
	input := "First crewed landing\non the Moon, launched\nfrom Kennedy Space Center."
	result := plainDescription(input, 120)
	if strings.Contains(result, "\n") {
		t.Errorf("expected one line at width 120, got:\n%s", result)
	}
	if !strings.Contains(result, "landing on the Moon") {
		t.Errorf("soft break not converted to a space:\n%s", result)
	}
}

func TestRenderDescriptionWrapsToWidth(t *testing.T) {
	input := "The probe returned the first images of the far side of the Moon and relayed them to ground stations."
	for _, line := range strings.Split(plainDescription(input, 30), "\n") {
		if ansi.StringWidth(line) > 30 {
			t.Errorf("line exceeds width 30: %q", line)
		}
	}
}

func TestRenderDescriptionHardBreak(t *testing.T) {
	result := plainDescription("Commander  \nPilot", 80)
	if !strings.Contains(result, "Commander\nPilot") {
		t.Errorf("hard line break lost:\n%s", result)
	}
}

func TestRenderDescriptionBlocks(t *testing.T) {
	input := strings.Join([]string{
		"## Objectives",
		"",
		"- Land two astronauts",
		"- Return them **safely**",
		"",
		"1. Launch",
		"2. Landing",
		"",
		"> One small step",
		"",
		"Visit <https://nasa.gov> or [the archive](https://example.org/archive).",
	}, "\n")
	result := plainDescription(input, 80)

	for _, want := range []string{
		"Objectives",
		"• Land two astronauts",
		"• Return them safely",
		"1. Launch",
		"2. Landing",
		"│ One small step",
		"https://nasa.gov",
		"the archive (https://example.org/archive)",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("missing %q in:\n%s", want, result)
		}
	}
	if strings.Contains(result, "**") || strings.Contains(result, "##") {
		t.Errorf("markdown syntax leaked into output:\n%s", result)
	}
}

func TestRenderDescriptionCodeBlock(t *testing.T) {
	input := "Telemetry:\n\n```json\n{\"alt\": 110}\n```\n\nDone."
	result := plainDescription(input, 80)
	if !strings.Contains(result, `{"alt": 110}`) {
		t.Errorf("code block content missing:\n%s", result)
	}
	if strings.Contains(result, "```") {
		t.Errorf("fence markers leaked:\n%s", result)
	}
	if !strings.HasSuffix(result, "Done.") {
		t.Errorf("paragraph after code block missing:\n%s", result)
	}
}

func TestRenderDescriptionTable(t *testing.T) {
	input := "| Stage | Engine |\n|---|---|\n| S-IC | F-1 |\n| S-II | J-2 |"
	result := plainDescription(input, 80)
	for _, want := range []string{"Stage  Engine", "S-IC   F-1", "S-II   J-2"} {
		if !strings.Contains(result, want) {
			t.Errorf("missing table row %q in:\n%s", want, result)
		}
	}
}

func TestRenderDescriptionStripsHTML(t *testing.T) {
	result := plainDescription("Launch <b>delayed</b> twice.", 80)
	if !strings.Contains(result, "Launch delayed twice.") {
		t.Errorf("inline HTML not stripped:\n%s", result)
	}
}
