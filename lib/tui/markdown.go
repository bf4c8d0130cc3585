// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"io"
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
)

// The parser configuration never changes and a goldmark parser is safe
// to share; per-call state lives in Parse(reader).
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownParserInstance
}

// codeStyle is the chroma style for fenced code in tooltips.
const codeStyle = "monokai"

// RenderMarkdown renders tooltip content as styled lines at most width
// columns wide. Soft line breaks become spaces so hard-wrapped source
// reflows to the tooltip's width. Supported: paragraphs, headings,
// emphasis, strikethrough, code spans, fenced code (highlighted),
// lists, block quotes, links, and thematic breaks.
func RenderMarkdown(input string, colors TooltipColors, width int) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	width = max(width, 1)

	source := []byte(input)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	// Tooltips always render into the bubbletea frame, so the profile
	// is forced rather than detected; detection yields no color when
	// there is no TTY.
	lipRenderer := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	renderer := &markdownRenderer{
		source:      source,
		colors:      colors,
		width:       width,
		lipRenderer: lipRenderer,
		background:  backgroundSequence(colors.Background),
	}
	_ = ast.Walk(document, renderer.walk)
	renderer.flush()

	lines := renderer.lines
	for len(lines) > 0 && strings.TrimSpace(ansi.Strip(lines[len(lines)-1])) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// backgroundSequence returns the SGR sequence that sets color as the
// background, or "" for an empty or unparseable color.
func backgroundSequence(color lipgloss.Color) string {
	if color == "" {
		return ""
	}
	parsed := termenv.ANSI256.Color(string(color))
	if parsed == nil {
		return ""
	}
	return termenv.CSI + parsed.Sequence(true) + "m"
}

// markdownRenderer walks a goldmark AST. Inline content accumulates
// until its block closes and is then word-wrapped as a unit.
type markdownRenderer struct {
	source      []byte
	colors      TooltipColors
	width       int
	lipRenderer *lipgloss.Renderer
	background  string

	lines  []string
	inline strings.Builder

	// Counters rather than booleans so nested emphasis unwinds
	// correctly.
	boldCount          int
	italicCount        int
	strikethroughCount int
	underlineCount     int

	quoteDepth    int
	lists         []listState
	pendingBullet string
	blankPending  bool
}

type listState struct {
	ordered bool
	counter int
}

func (renderer *markdownRenderer) style() lipgloss.Style {
	style := renderer.lipRenderer.NewStyle().
		Foreground(renderer.colors.Foreground).
		Background(renderer.colors.Background)
	if renderer.boldCount > 0 {
		style = style.Bold(true)
	}
	if renderer.italicCount > 0 {
		style = style.Italic(true)
	}
	if renderer.strikethroughCount > 0 {
		style = style.Strikethrough(true)
	}
	if renderer.underlineCount > 0 {
		style = style.Underline(true)
	}
	return style
}

func (renderer *markdownRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		if !entering {
			renderer.flush()
			renderer.endBlock(node)
		}

	case *ast.Heading:
		if entering {
			renderer.boldCount++
		} else {
			renderer.boldCount--
			renderer.flush()
			renderer.endBlock(node)
		}

	case *ast.Text:
		if entering {
			renderer.inline.WriteString(renderer.style().Render(string(node.Segment.Value(renderer.source))))
			switch {
			case node.HardLineBreak():
				renderer.inline.WriteString("\n")
			case node.SoftLineBreak():
				renderer.inline.WriteString(renderer.style().Render(" "))
			}
		}

	case *ast.String:
		if entering {
			renderer.inline.WriteString(renderer.style().Render(string(node.Value)))
		}

	case *ast.Emphasis:
		delta := 1
		if !entering {
			delta = -1
		}
		if node.Level >= 2 {
			renderer.boldCount += delta
		} else {
			renderer.italicCount += delta
		}

	case *extast.Strikethrough:
		if entering {
			renderer.strikethroughCount++
		} else {
			renderer.strikethroughCount--
		}

	case *ast.CodeSpan:
		if entering {
			var code strings.Builder
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				if segment, ok := child.(*ast.Text); ok {
					code.Write(segment.Segment.Value(renderer.source))
				}
			}
			renderer.inline.WriteString(renderer.style().Foreground(renderer.colors.Code).Render(code.String()))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Link:
		if entering {
			renderer.underlineCount++
		} else {
			renderer.underlineCount--
		}

	case *ast.AutoLink:
		if entering {
			renderer.underlineCount++
			renderer.inline.WriteString(renderer.style().Render(string(node.URL(renderer.source))))
			renderer.underlineCount--
			return ast.WalkSkipChildren, nil
		}

	case *ast.FencedCodeBlock:
		if entering {
			renderer.flush()
			renderer.codeBlock(node, string(node.Language(renderer.source)))
			renderer.endBlock(node)
			return ast.WalkSkipChildren, nil
		}

	case *ast.CodeBlock:
		if entering {
			renderer.flush()
			renderer.codeBlock(node, "")
			renderer.endBlock(node)
			return ast.WalkSkipChildren, nil
		}

	case *ast.List:
		if entering {
			renderer.flush()
			renderer.lists = append(renderer.lists, listState{ordered: node.IsOrdered(), counter: node.Start})
		} else {
			renderer.lists = renderer.lists[:len(renderer.lists)-1]
			renderer.endBlock(node)
		}

	case *ast.ListItem:
		if entering {
			renderer.flush()
			list := &renderer.lists[len(renderer.lists)-1]
			if list.ordered {
				renderer.pendingBullet = fmt.Sprintf("%d. ", list.counter)
				list.counter++
			} else {
				renderer.pendingBullet = "• "
			}
		}

	case *ast.Blockquote:
		if entering {
			renderer.flush()
			renderer.quoteDepth++
		} else {
			renderer.flush()
			renderer.quoteDepth--
			renderer.endBlock(node)
		}

	case *ast.ThematicBreak:
		if entering {
			renderer.flush()
			renderer.emit(renderer.lipRenderer.NewStyle().
				Foreground(renderer.colors.Border).
				Background(renderer.colors.Background).
				Render(strings.Repeat("─", renderer.width)))
			renderer.endBlock(node)
		}
	}
	return ast.WalkContinue, nil
}

// prefix returns the first-line and continuation prefixes for the
// current nesting.
func (renderer *markdownRenderer) prefix() (first, rest string) {
	quote := strings.Repeat("│ ", renderer.quoteDepth)
	indent := ""
	if depth := len(renderer.lists); depth > 1 {
		indent = strings.Repeat("  ", depth-1)
	}
	rest = quote + indent
	first = rest
	if renderer.pendingBullet != "" {
		first = rest + renderer.pendingBullet
		rest += strings.Repeat(" ", ansi.StringWidth(renderer.pendingBullet))
	} else if len(renderer.lists) > 0 {
		rest += "  "
		first = rest
	}
	return first, rest
}

// flush word-wraps the accumulated inline content and emits it.
func (renderer *markdownRenderer) flush() {
	content := renderer.inline.String()
	renderer.inline.Reset()
	if content == "" {
		return
	}

	first, rest := renderer.prefix()
	renderer.pendingBullet = ""
	limit := max(renderer.width-ansi.StringWidth(first), 1)
	style := renderer.style()

	for index, line := range strings.Split(ansi.Wrap(content, limit, ""), "\n") {
		prefix := rest
		if index == 0 {
			prefix = first
		}
		renderer.emit(style.Render(prefix) + line)
	}
}

// codeBlock emits highlighted code, one source line per row, truncated
// at the tooltip width.
func (renderer *markdownRenderer) codeBlock(node ast.Node, language string) {
	var code strings.Builder
	lines := node.Lines()
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		code.Write(segment.Value(renderer.source))
	}
	source := strings.TrimRight(code.String(), "\n")
	if language == "" {
		language = "plaintext"
	}

	var highlighted strings.Builder
	if err := quick.Highlight(&highlighted, source, language, "terminal256", codeStyle); err != nil {
		highlighted.Reset()
		highlighted.WriteString(source)
	}

	first, _ := renderer.prefix()
	renderer.pendingBullet = ""
	limit := max(renderer.width-ansi.StringWidth(first), 1)
	for _, line := range strings.Split(strings.TrimRight(highlighted.String(), "\n"), "\n") {
		// Chroma resets all attributes after each token; restore the
		// tooltip background so code sits on the same box color.
		line = strings.ReplaceAll(line, reset, reset+renderer.background)
		renderer.emit(first + renderer.background + ansi.Truncate(line, limit, "…") + reset)
	}
}

// endBlock requests a blank line before the next top-level block.
func (renderer *markdownRenderer) endBlock(node ast.Node) {
	if _, top := node.Parent().(*ast.Document); top {
		renderer.blankPending = true
	}
}

func (renderer *markdownRenderer) emit(line string) {
	if renderer.blankPending && len(renderer.lines) > 0 {
		renderer.lines = append(renderer.lines, "")
	}
	renderer.blankPending = false
	renderer.lines = append(renderer.lines, line)
}
