// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// reset ends any SGR state a spliced segment may have left open.
const reset = "\x1b[0m"

// Splice writes layer lines over frame lines starting at screen column
// x and row y, in place. Rows outside the frame are skipped and
// columns left of zero or right of width are clipped, so a layer that
// hangs off the screen edge shows its visible part. ANSI sequences in
// the frame survive on both sides of the layer.
func Splice(frame []string, layer []string, x, y, width int) {
	for index, layerLine := range layer {
		row := y + index
		if row < 0 || row >= len(frame) {
			continue
		}

		left := x
		if left < 0 {
			layerLine = ansi.TruncateLeft(layerLine, -left, "")
			left = 0
		}
		if left >= width {
			continue
		}
		layerWidth := ansi.StringWidth(layerLine)
		if left+layerWidth > width {
			layerLine = ansi.Truncate(layerLine, width-left, "")
			layerWidth = width - left
		}
		if layerWidth <= 0 {
			continue
		}

		frameLine := frame[row]
		frameWidth := ansi.StringWidth(frameLine)

		var line strings.Builder
		if left > 0 {
			line.WriteString(ansi.Truncate(frameLine, left, ""))
			if frameWidth < left {
				line.WriteString(strings.Repeat(" ", left-frameWidth))
			}
		}
		line.WriteString(reset)
		line.WriteString(layerLine)
		line.WriteString(reset)
		if suffixStart := left + layerWidth; suffixStart < frameWidth {
			line.WriteString(ansi.TruncateLeft(frameLine, suffixStart, ""))
		}
		frame[row] = line.String()
	}
}

// FitLine truncates or pads line to exactly width visible columns.
func FitLine(line string, width int) string {
	lineWidth := ansi.StringWidth(line)
	switch {
	case lineWidth > width:
		return ansi.Truncate(line, width, "")
	case lineWidth < width:
		return line + strings.Repeat(" ", width-lineWidth)
	default:
		return line
	}
}

// Embolden applies bold to columns [startX, endX) of one frame row.
//
// lipgloss ends every styled segment with a full SGR reset, so a single
// bold-on at startX would not survive the first segment boundary. Bold
// is re-asserted after every escape sequence inside the range.
func Embolden(frame []string, row, startX, endX int) {
	if startX >= endX || row < 0 || row >= len(frame) {
		return
	}
	line := frame[row]
	if startX >= ansi.StringWidth(line) {
		return
	}

	var result strings.Builder
	result.Grow(len(line) + 40)

	column := 0
	inBold := false
	var state byte
	remaining := line
	for len(remaining) > 0 {
		sequence, displayWidth, byteCount, newState := ansi.DecodeSequence(remaining, state, nil)
		state = newState
		remaining = remaining[byteCount:]

		if displayWidth == 0 {
			result.WriteString(sequence)
			if inBold {
				result.WriteString("\x1b[1m")
			}
			continue
		}
		if inBold && column >= endX {
			result.WriteString("\x1b[22m")
			inBold = false
		}
		if !inBold && column >= startX && column < endX {
			result.WriteString("\x1b[1m")
			inBold = true
		}
		result.WriteString(sequence)
		column += displayWidth
	}
	if inBold {
		result.WriteString("\x1b[22m")
	}
	frame[row] = result.String()
}

// padLine renders " content " padded to innerWidth with the background
// style, so a box row has a solid background edge to edge.
func padLine(styledContent string, innerWidth int, background lipgloss.Style) string {
	rightPad := max(innerWidth-ansi.StringWidth(styledContent), 0)
	return background.Render(" ") +
		styledContent +
		background.Render(strings.Repeat(" ", rightPad+1))
}
