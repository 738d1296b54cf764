// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// NewMatchSlab allocates scratch space for MatchPositions. A model
// keeps one slab and reuses it for every row it renders.
func NewMatchSlab() *util.Slab {
	return util.MakeSlab(100*1024, 2048)
}

// MatchPositions returns the rune indices of text covered by a
// case-insensitive substring match of query, or nil when the trimmed
// query is empty or does not occur. The positions drive highlighting
// only; whether a record matches is decided by the filter engine.
func MatchPositions(text, query string, slab *util.Slab) []int {
	query = strings.TrimSpace(query)
	if query == "" || text == "" {
		return nil
	}
	pattern := []rune(strings.Map(unicode.ToLower, query))
	chars := util.ToChars([]byte(text))
	result, _ := algo.ExactMatchNaive(false, false, true, &chars, pattern, false, slab)
	if result.Start < 0 || result.End <= result.Start {
		return nil
	}
	positions := make([]int, 0, result.End-result.Start)
	for index := result.Start; index < result.End; index++ {
		positions = append(positions, index)
	}
	return positions
}

// Highlight renders text with the runes at positions drawn in
// highlightStyle and the rest in baseStyle. Adjacent runes in the same
// state are rendered as one segment to keep escape output small.
func Highlight(text string, positions []int, baseStyle, highlightStyle lipgloss.Style) string {
	if len(positions) == 0 {
		return baseStyle.Render(text)
	}
	marked := make(map[int]bool, len(positions))
	for _, position := range positions {
		marked[position] = true
	}

	var result strings.Builder
	var run []rune
	runHighlighted := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runHighlighted {
			result.WriteString(highlightStyle.Render(string(run)))
		} else {
			result.WriteString(baseStyle.Render(string(run)))
		}
		run = run[:0]
	}

	for index, character := range []rune(text) {
		if marked[index] != runHighlighted {
			flush()
			runHighlighted = marked[index]
		}
		run = append(run, character)
	}
	flush()
	return result.String()
}

// Truncate shortens plain text to maxWidth display columns, ending
// with an ellipsis when anything was cut.
func Truncate(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= maxWidth {
		return text
	}
	if maxWidth == 1 {
		return "…"
	}
	return ansi.Truncate(text, maxWidth-1, "") + "…"
}

// ClipPositions drops positions at or beyond the first runeCount runes,
// for highlighting a name that was truncated.
func ClipPositions(positions []int, text string) []int {
	runeCount := utf8.RuneCountInString(text)
	clipped := positions[:0:0]
	for _, position := range positions {
		if position < runeCount {
			clipped = append(clipped, position)
		}
	}
	return clipped
}
