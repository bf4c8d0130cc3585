// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/placement"
)

// DefaultPanelRows is how many suggestions a panel shows at once.
const DefaultPanelRows = 6

// Suggestion is one entry in a suggestion panel.
type Suggestion struct {
	Label string

	// Positions are rune indices of Label to highlight, typically
	// fuzzy match positions.
	Positions []int
}

// SuggestionPanel is the list that opens under (or over) a search box.
// It draws a header row, then up to Rows suggestions with a cursor and
// a scrollbar. The owning model routes keys and clicks to it while it
// is open.
type SuggestionPanel struct {
	Title string
	Items []Suggestion

	Cursor int
	Offset int // Index of the first visible item.
	Rows   int

	// Origin is the panel's top-left corner in document coordinates,
	// set by Place.
	Origin geometry.Point
}

// SetItems replaces the suggestions and resets the cursor.
func (panel *SuggestionPanel) SetItems(items []Suggestion) {
	panel.Items = items
	panel.Cursor = 0
	panel.Offset = 0
}

func (panel *SuggestionPanel) rows() int {
	if panel.Rows <= 0 {
		return DefaultPanelRows
	}
	return panel.Rows
}

// visibleRows is the number of list rows actually drawn.
func (panel *SuggestionPanel) visibleRows() int {
	return max(min(len(panel.Items), panel.rows()), 1)
}

// MaxHeight is the tallest the panel gets: the header plus a full
// page of rows. It is the clearance the panel needs below its input.
func (panel *SuggestionPanel) MaxHeight() int { return 1 + panel.rows() }

// Height returns the rendered height in rows.
func (panel *SuggestionPanel) Height() int { return 1 + panel.visibleRows() }

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (panel *SuggestionPanel) MoveUp() {
	if len(panel.Items) == 0 {
		return
	}
	panel.Cursor--
	if panel.Cursor < 0 {
		panel.Cursor = len(panel.Items) - 1
	}
	panel.follow()
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (panel *SuggestionPanel) MoveDown() {
	if len(panel.Items) == 0 {
		return
	}
	panel.Cursor++
	if panel.Cursor >= len(panel.Items) {
		panel.Cursor = 0
	}
	panel.follow()
}

// follow scrolls so the cursor row is visible.
func (panel *SuggestionPanel) follow() {
	rows := panel.rows()
	if panel.Cursor < panel.Offset {
		panel.Offset = panel.Cursor
	}
	if panel.Cursor >= panel.Offset+rows {
		panel.Offset = panel.Cursor - rows + 1
	}
}

// Selected returns the highlighted suggestion.
func (panel *SuggestionPanel) Selected() (Suggestion, bool) {
	if panel.Cursor < 0 || panel.Cursor >= len(panel.Items) {
		return Suggestion{}, false
	}
	return panel.Items[panel.Cursor], true
}

// Place positions the panel against its input: directly below for
// placement.Bottom, directly above otherwise, left edges aligned.
func (panel *SuggestionPanel) Place(input geometry.Rect, value placement.Placement) {
	panel.Origin = geometry.Point{X: input.Left, Y: input.Bottom()}
	if value.Edge() == placement.EdgeTop {
		panel.Origin.Y = input.Top - panel.Height()
	}
}

// Bounds returns the panel rectangle for a given width.
func (panel *SuggestionPanel) Bounds(width int) geometry.Rect {
	return geometry.Rect{Top: panel.Origin.Y, Left: panel.Origin.X, Width: width, Height: panel.Height()}
}

// ItemAt returns the suggestion index at a document point, or -1 when
// the point is outside the list rows.
func (panel *SuggestionPanel) ItemAt(point geometry.Point, width int) int {
	if !panel.Bounds(width).Contains(point) {
		return -1
	}
	row := point.Y - panel.Origin.Y - 1
	if row < 0 {
		return -1
	}
	index := panel.Offset + row
	if index >= len(panel.Items) {
		return -1
	}
	return index
}

// Render produces the panel lines, each exactly width columns: a
// header, then the visible rows with a scrollbar in the last column.
func (panel *SuggestionPanel) Render(theme Theme, width int) []string {
	width = max(width, 6)
	innerWidth := width - 3 // One column padding each side, plus scrollbar.

	background := lipgloss.NewStyle().Background(theme.PanelBackground)
	header := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Background(theme.PanelBackground).
		Bold(true)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText).Background(theme.PanelBackground)

	title := panel.Title
	if title == "" {
		title = "Suggestions"
	}
	count := fmt.Sprintf("%d", len(panel.Items))
	titleWidth := max(innerWidth-ansi.StringWidth(count)-1, 1)
	if ansi.StringWidth(title) > titleWidth {
		title = ansi.Truncate(title, titleWidth-1, "…")
	}
	headerContent := header.Render(title) +
		background.Render(strings.Repeat(" ", max(innerWidth-ansi.StringWidth(title)-ansi.StringWidth(count), 1))) +
		faint.Render(count)
	lines := []string{FitLine(padLine(headerContent, innerWidth, background)+background.Render(" "), width)}

	rows := panel.visibleRows()
	scrollbar := RenderScrollbar(theme, rows, len(panel.Items), panel.rows(), panel.Offset, true)

	if len(panel.Items) == 0 {
		empty := faint.Italic(true).Render("no matches")
		lines = append(lines, FitLine(padLine(empty, innerWidth, background)+scrollbar[0], width))
		return lines
	}

	for row := 0; row < rows; row++ {
		index := panel.Offset + row
		if index >= len(panel.Items) {
			break
		}
		selected := index == panel.Cursor
		normal := lipgloss.NewStyle().Foreground(theme.NormalText).Background(theme.PanelBackground)
		match := lipgloss.NewStyle().Foreground(theme.MatchForeground).Background(theme.PanelBackground).Bold(true)
		rowBackground := background
		marker := "  "
		if selected {
			normal = normal.Foreground(theme.SelectedForeground).Background(theme.SelectedBackground)
			match = match.Background(theme.SelectedBackground)
			rowBackground = lipgloss.NewStyle().Background(theme.SelectedBackground)
			marker = "> "
		}

		label := highlight(panel.Items[index], innerWidth-2, normal, match)
		content := normal.Render(marker) + label
		lines = append(lines, FitLine(padLine(content, innerWidth, rowBackground)+scrollbar[row], width))
	}
	return lines
}

// highlight renders a label with its matched runes in the match style,
// truncated to width.
func highlight(item Suggestion, width int, normal, match lipgloss.Style) string {
	label := item.Label
	if ansi.StringWidth(label) > width {
		label = ansi.Truncate(label, max(width-1, 0), "…")
	}
	matched := make(map[int]bool, len(item.Positions))
	for _, position := range item.Positions {
		matched[position] = true
	}

	var result strings.Builder
	for index, r := range []rune(label) {
		if matched[index] {
			result.WriteString(match.Render(string(r)))
		} else {
			result.WriteString(normal.Render(string(r)))
		}
	}
	return result.String()
}
