// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar produces a single-column scrollbar of the given
// height, one cell per line. The thumb indicates the visible window
// within the total items.
//
// When everything fits the thumb spans the whole height. The thumb uses
// the accent color when focused and the border color otherwise.
func RenderScrollbar(theme Theme, height, totalItems, visibleItems, scrollOffset int, focused bool) []string {
	if height <= 0 {
		return nil
	}

	thumbColor := theme.BorderColor
	if focused {
		thumbColor = theme.Accent
	}
	trackStyle := lipgloss.NewStyle().Foreground(theme.BorderColor).Background(theme.PanelBackground)
	thumbStyle := lipgloss.NewStyle().Foreground(thumbColor).Background(theme.PanelBackground)

	offset, size := scrollThumb(height, totalItems, visibleItems, scrollOffset)
	cells := make([]string, height)
	for index := range cells {
		if index >= offset && index < offset+size {
			cells[index] = thumbStyle.Render("┃")
		} else {
			cells[index] = trackStyle.Render("│")
		}
	}
	return cells
}

// scrollThumb returns the thumb's first row and length: proportional
// to visible/total with a minimum of one row.
func scrollThumb(height, totalItems, visibleItems, scrollOffset int) (offset, size int) {
	if totalItems <= visibleItems || totalItems <= 0 {
		return 0, height
	}

	size = max(height*visibleItems/totalItems, 1)
	scrollableRange := totalItems - visibleItems
	trackRange := height - size
	if trackRange > 0 {
		offset = scrollOffset * trackRange / scrollableRange
	}
	offset = min(max(offset, 0), height-size)
	return offset, size
}
