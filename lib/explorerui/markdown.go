// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorerui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/orbitdeck/missions/lib/tui"
)

// wrapBreakpoints are the characters ansi.Wrap may break after in
// addition to spaces.
const wrapBreakpoints = " ,.;-+|"

var (
	markdownOnce   sync.Once
	markdownParser goldmark.Markdown
)

func getMarkdownParser() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownParser = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownParser
}

// renderDescription renders a mission description as styled terminal
// text wrapped to width. Paragraph soft breaks become spaces, so
// descriptions hard-wrapped in the dataset reflow to the pane.
func renderDescription(input string, theme tui.Theme, width int) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	source := []byte(input)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	// The output always lands in the TUI, so skip terminal detection.
	// SetColorProfile is needed as well: the renderer otherwise
	// re-detects from the environment.
	lipRenderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	renderer := &descriptionRenderer{
		source:      source,
		theme:       theme,
		width:       width,
		lipRenderer: lipRenderer,
	}
	_ = ast.Walk(document, renderer.walk)
	return strings.TrimRight(renderer.output.String(), "\n")
}

// descriptionRenderer walks the goldmark AST directly. Inline content
// accumulates until its block closes and is then wrapped as a unit.
type descriptionRenderer struct {
	source      []byte
	theme       tui.Theme
	width       int
	lipRenderer *lipgloss.Renderer

	output   strings.Builder
	inline   strings.Builder
	trailing int // Newlines at the end of output.

	prefix        string
	prefixLengths []int
	pendingBullet string

	bold, italic, strike int

	lists []listLevel
}

type listLevel struct {
	ordered bool
	next    int
	tight   bool
}

func (renderer *descriptionRenderer) style() lipgloss.Style {
	return renderer.lipRenderer.NewStyle()
}

func (renderer *descriptionRenderer) contentWidth() int {
	return max(renderer.width-ansi.StringWidth(renderer.prefix), 10)
}

func (renderer *descriptionRenderer) write(s string) {
	if s == "" {
		return
	}
	renderer.output.WriteString(s)
	trimmed := strings.TrimRight(s, "\n")
	newlines := len(s) - len(trimmed)
	if trimmed == "" {
		renderer.trailing += newlines
	} else {
		renderer.trailing = newlines
	}
}

func (renderer *descriptionRenderer) newline() {
	if renderer.trailing < 1 {
		renderer.write("\n")
	}
}

func (renderer *descriptionRenderer) blankLine() {
	if renderer.output.Len() == 0 {
		return
	}
	for renderer.trailing < 2 {
		renderer.write("\n")
	}
}

func (renderer *descriptionRenderer) pushPrefix(prefix string) {
	renderer.prefix += prefix
	renderer.prefixLengths = append(renderer.prefixLengths, len(prefix))
}

func (renderer *descriptionRenderer) popPrefix() {
	if len(renderer.prefixLengths) == 0 {
		return
	}
	last := renderer.prefixLengths[len(renderer.prefixLengths)-1]
	renderer.prefixLengths = renderer.prefixLengths[:len(renderer.prefixLengths)-1]
	renderer.prefix = renderer.prefix[:len(renderer.prefix)-last]
}

func (renderer *descriptionRenderer) tightList() bool {
	return len(renderer.lists) > 0 && renderer.lists[len(renderer.lists)-1].tight
}

// emitLines writes content with the current prefix on each line. The
// first line takes the pending list bullet instead, if one is waiting.
func (renderer *descriptionRenderer) emitLines(content string) {
	for index, line := range strings.Split(content, "\n") {
		if index > 0 {
			renderer.write("\n")
		}
		if index == 0 && renderer.pendingBullet != "" {
			renderer.write(renderer.pendingBullet + line)
			renderer.pendingBullet = ""
			continue
		}
		renderer.write(renderer.prefix + line)
	}
	renderer.newline()
}

func (renderer *descriptionRenderer) flushInline() {
	content := renderer.inline.String()
	renderer.inline.Reset()
	if strings.TrimSpace(ansi.Strip(content)) == "" {
		return
	}
	renderer.emitLines(ansi.Wrap(content, renderer.contentWidth(), wrapBreakpoints))
}

func (renderer *descriptionRenderer) styledText(content string) string {
	style := renderer.style().Foreground(renderer.theme.NormalText)
	if renderer.bold > 0 {
		style = style.Bold(true)
	}
	if renderer.italic > 0 {
		style = style.Italic(true)
	}
	if renderer.strike > 0 {
		style = style.Strikethrough(true)
	}
	return style.Render(content)
}

func (renderer *descriptionRenderer) faint(content string) string {
	return renderer.style().Foreground(renderer.theme.FaintText).Render(content)
}

func (renderer *descriptionRenderer) blockText(lines *text.Segments) string {
	var code strings.Builder
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		code.Write(segment.Value(renderer.source))
	}
	return code.String()
}

func (renderer *descriptionRenderer) emitCode(code, language string) {
	highlighted := ""
	if language != "" {
		var buffer strings.Builder
		if err := quick.Highlight(&buffer, code, language, "terminal256", "monokai"); err == nil {
			highlighted = buffer.String()
		}
	}
	if highlighted == "" {
		highlighted = renderer.faint(strings.TrimRight(code, "\n"))
	}
	renderer.blankLine()
	renderer.emitLines(strings.TrimRight(highlighted, "\n"))
	renderer.blankLine()
}

func (renderer *descriptionRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		if entering {
			renderer.inline.Reset()
			break
		}
		renderer.flushInline()
		if !renderer.tightList() {
			renderer.blankLine()
		}

	case ast.KindHeading:
		if entering {
			renderer.inline.Reset()
			break
		}
		content := ansi.Strip(renderer.inline.String())
		renderer.inline.Reset()
		if content == "" {
			break
		}
		style := renderer.style().Bold(true).Foreground(renderer.theme.NormalText)
		if node.(*ast.Heading).Level <= 2 {
			style = style.Foreground(renderer.theme.HeaderForeground).Underline(true)
		}
		renderer.blankLine()
		renderer.emitLines(ansi.Wrap(style.Render(content), renderer.contentWidth(), wrapBreakpoints))
		renderer.blankLine()

	case ast.KindFencedCodeBlock:
		if entering {
			block := node.(*ast.FencedCodeBlock)
			renderer.emitCode(renderer.blockText(block.Lines()), string(block.Language(renderer.source)))
		}
		return ast.WalkSkipChildren, nil

	case ast.KindCodeBlock:
		if entering {
			renderer.emitCode(renderer.blockText(node.Lines()), "")
		}
		return ast.WalkSkipChildren, nil

	case ast.KindBlockquote:
		if entering {
			renderer.pushPrefix("│ ")
		} else {
			renderer.popPrefix()
			renderer.blankLine()
		}

	case ast.KindList:
		if entering {
			list := node.(*ast.List)
			renderer.lists = append(renderer.lists, listLevel{ordered: list.IsOrdered(), next: list.Start, tight: list.IsTight})
			break
		}
		renderer.lists = renderer.lists[:len(renderer.lists)-1]
		if !renderer.tightList() {
			renderer.blankLine()
		}

	case ast.KindListItem:
		if len(renderer.lists) == 0 {
			break
		}
		if !entering {
			renderer.popPrefix()
			renderer.newline()
			break
		}
		level := &renderer.lists[len(renderer.lists)-1]
		bullet := "• "
		if level.ordered {
			bullet = fmt.Sprintf("%d. ", level.next)
			level.next++
		}
		renderer.pendingBullet = renderer.prefix + bullet
		renderer.pushPrefix(strings.Repeat(" ", ansi.StringWidth(bullet)))

	case ast.KindThematicBreak:
		if entering {
			rule := renderer.style().Foreground(renderer.theme.BorderColor).
				Render(strings.Repeat("─", renderer.contentWidth()))
			renderer.blankLine()
			renderer.emitLines(rule)
			renderer.blankLine()
		}

	case ast.KindHTMLBlock:
		if entering {
			if stripped := strings.TrimSpace(stripTags(renderer.blockText(node.Lines()))); stripped != "" {
				renderer.emitLines(renderer.faint(stripped))
				renderer.blankLine()
			}
		}
		return ast.WalkSkipChildren, nil

	case ast.KindText:
		if entering {
			textNode := node.(*ast.Text)
			renderer.inline.WriteString(renderer.styledText(string(textNode.Segment.Value(renderer.source))))
			if textNode.HardLineBreak() {
				renderer.inline.WriteString("\n")
			} else if textNode.SoftLineBreak() {
				renderer.inline.WriteString(" ")
			}
		}

	case ast.KindString:
		if entering {
			renderer.inline.WriteString(renderer.styledText(string(node.(*ast.String).Value)))
		}

	case ast.KindEmphasis:
		delta := -1
		if entering {
			delta = 1
		}
		if node.(*ast.Emphasis).Level >= 2 {
			renderer.bold += delta
		} else {
			renderer.italic += delta
		}

	case extast.KindStrikethrough:
		if entering {
			renderer.strike++
		} else {
			renderer.strike--
		}

	case ast.KindCodeSpan:
		if entering {
			var code strings.Builder
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				switch child := child.(type) {
				case *ast.Text:
					code.Write(child.Segment.Value(renderer.source))
				case *ast.String:
					code.Write(child.Value)
				}
			}
			renderer.inline.WriteString(renderer.style().Foreground(renderer.theme.Accent).Render(code.String()))
		}
		return ast.WalkSkipChildren, nil

	case ast.KindLink:
		if !entering {
			link := node.(*ast.Link)
			if destination := string(link.Destination); destination != "" {
				renderer.inline.WriteString(" " + renderer.faint("("+destination+")"))
			}
		}

	case ast.KindAutoLink:
		if entering {
			url := string(node.(*ast.AutoLink).URL(renderer.source))
			renderer.inline.WriteString(renderer.style().Foreground(renderer.theme.LinkForeground).Render(url))
		}
		return ast.WalkSkipChildren, nil

	case ast.KindImage:
		if entering {
			image := node.(*ast.Image)
			alt := ansi.Strip(string(image.Text(renderer.source)))
			renderer.inline.WriteString(renderer.faint("[image: " + alt + "]"))
		}
		return ast.WalkSkipChildren, nil

	case ast.KindRawHTML:
		if entering {
			raw := node.(*ast.RawHTML)
			var html strings.Builder
			for index := 0; index < raw.Segments.Len(); index++ {
				segment := raw.Segments.At(index)
				html.Write(segment.Value(renderer.source))
			}
			if stripped := stripTags(html.String()); stripped != "" {
				renderer.inline.WriteString(renderer.faint(stripped))
			}
		}

	case extast.KindTaskCheckBox:
		if entering {
			box := "[ ] "
			if node.(*extast.TaskCheckBox).IsChecked {
				box = "[x] "
			}
			renderer.inline.WriteString(renderer.styledText(box))
		}

	case extast.KindTable:
		if entering {
			renderer.emitTable(node)
		}
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

// emitTable renders a GFM table as left-aligned columns. Cells wider
// than the pane are truncated rather than wrapped.
func (renderer *descriptionRenderer) emitTable(table ast.Node) {
	var rows [][]string
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, strings.TrimSpace(string(cell.Text(renderer.source))))
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return
	}

	columns := 0
	for _, row := range rows {
		columns = max(columns, len(row))
	}
	widths := make([]int, columns)
	for _, row := range rows {
		for index, cell := range row {
			widths[index] = max(widths[index], ansi.StringWidth(cell))
		}
	}

	header := renderer.style().Bold(true).Foreground(renderer.theme.NormalText)
	body := renderer.style().Foreground(renderer.theme.NormalText)
	renderer.blankLine()
	for rowIndex, row := range rows {
		parts := make([]string, columns)
		for index := range parts {
			cell := ""
			if index < len(row) {
				cell = row[index]
			}
			parts[index] = cell + strings.Repeat(" ", widths[index]-ansi.StringWidth(cell))
		}
		line := tui.Truncate(strings.TrimRight(strings.Join(parts, "  "), " "), renderer.contentWidth())
		if rowIndex == 0 {
			renderer.emitLines(header.Render(line))
			continue
		}
		renderer.emitLines(body.Render(line))
	}
	renderer.blankLine()
}

// stripTags drops anything between angle brackets.
func stripTags(html string) string {
	var result strings.Builder
	inTag := false
	for _, character := range html {
		switch {
		case character == '<':
			inTag = true
		case character == '>':
			inTag = false
		case !inTag:
			result.WriteRune(character)
		}
	}
	return result.String()
}
