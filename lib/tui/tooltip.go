// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/overlay"
	"github.com/bureau-foundation/overlay/lib/placement"
)

// DefaultTooltipWidth is the widest a tooltip box grows, in columns,
// including its border and padding.
const DefaultTooltipWidth = 44

// minTooltipWidth leaves room for the border, padding, and an arrow.
const minTooltipWidth = 8

// Tooltip is a floating layer drawn as a bordered box of markdown
// content. With HasArrow set, a pointer glyph replaces one border cell
// on the side facing the anchor, so the box size does not depend on
// placement and the arrow flips with the layer.
type Tooltip struct {
	theme    Theme
	maxWidth int

	content string
	options overlay.LayerOptions

	body       []string
	innerWidth int

	position placement.Position
	visible  bool
}

// NewTooltip creates a hidden, unplaced tooltip. maxWidth bounds the
// box width; values below the minimum are raised to it.
func NewTooltip(content string, options overlay.LayerOptions, theme Theme, maxWidth int) *Tooltip {
	tooltip := &Tooltip{
		theme:    theme,
		maxWidth: max(maxWidth, minTooltipWidth),
		content:  content,
		options:  options,
	}
	tooltip.layout()
	return tooltip
}

// layout renders the content at the widest allowed width, then
// shrinks the box to the widest rendered line.
func (tooltip *Tooltip) layout() {
	available := tooltip.maxWidth - 4
	tooltip.body = RenderMarkdown(tooltip.content, tooltip.colors(), available)
	if len(tooltip.body) == 0 {
		tooltip.body = []string{""}
	}
	tooltip.innerWidth = 1
	for _, line := range tooltip.body {
		tooltip.innerWidth = max(tooltip.innerWidth, ansi.StringWidth(line))
	}
	// Room for an end-aligned arrow two cells in from each corner.
	if tooltip.options.HasArrow {
		tooltip.innerWidth = max(tooltip.innerWidth, 3)
	}
}

func (tooltip *Tooltip) colors() TooltipColors {
	return tooltip.theme.Tooltip(tooltip.options.Theme)
}

// Size returns the box size: content plus one column of padding and a
// border on each side.
func (tooltip *Tooltip) Size() geometry.Size {
	return geometry.Size{Width: tooltip.innerWidth + 4, Height: len(tooltip.body) + 2}
}

// Place records the resolved position.
func (tooltip *Tooltip) Place(position placement.Position) { tooltip.position = position }

// SetVisible shows or hides the box.
func (tooltip *Tooltip) SetVisible(visible bool) { tooltip.visible = visible }

// SetContent re-renders with new content.
func (tooltip *Tooltip) SetContent(content string) {
	tooltip.content = content
	tooltip.layout()
}

// SetOptions re-renders with new presentation settings.
func (tooltip *Tooltip) SetOptions(options overlay.LayerOptions) {
	tooltip.options = options
	tooltip.layout()
}

// Bounds returns the box in document coordinates.
func (tooltip *Tooltip) Bounds() geometry.Rect {
	size := tooltip.Size()
	return geometry.Rect{
		Top:    tooltip.position.Y,
		Left:   tooltip.position.X,
		Width:  size.Width,
		Height: size.Height,
	}
}

// Visible reports whether the box is shown.
func (tooltip *Tooltip) Visible() bool { return tooltip.visible }

// Embedded reports whether the box renders in the content flow.
func (tooltip *Tooltip) Embedded() bool { return tooltip.options.Embedded }

// Position returns the last placed position.
func (tooltip *Tooltip) Position() placement.Position { return tooltip.position }

// Render returns the box lines, each exactly Size().Width columns.
func (tooltip *Tooltip) Render() []string {
	colors := tooltip.colors()
	size := tooltip.Size()
	border := lipgloss.NewStyle().Foreground(colors.Border).Background(colors.Background)
	arrowStyle := border.Bold(true)
	background := lipgloss.NewStyle().Background(colors.Background)

	arrowSide, arrowOffset, hasArrow := tooltip.arrow(size)

	edge := func(left, right string, side placement.Edge) string {
		cells := make([]string, size.Width-2)
		for index := range cells {
			cells[index] = border.Render("─")
		}
		if hasArrow && side == arrowSide {
			cells[arrowOffset-1] = arrowStyle.Render(arrowGlyph(side))
		}
		return border.Render(left) + strings.Join(cells, "") + border.Render(right)
	}

	lines := make([]string, 0, size.Height)
	// A layer below its anchor points up from its top border.
	lines = append(lines, edge("╭", "╮", placement.EdgeBottom))
	for row, content := range tooltip.body {
		left, right := border.Render("│"), border.Render("│")
		if hasArrow && row+1 == arrowOffset {
			switch arrowSide {
			case placement.EdgeRight:
				left = arrowStyle.Render(arrowGlyph(arrowSide))
			case placement.EdgeLeft:
				right = arrowStyle.Render(arrowGlyph(arrowSide))
			}
		}
		lines = append(lines, left+padLine(content, tooltip.innerWidth, background)+right)
	}
	lines = append(lines, edge("╰", "╯", placement.EdgeTop))
	return lines
}

// arrow returns the effective placement's edge and the arrow's cell
// offset along the border it sits on. The boolean is false when the
// tooltip has no arrow. The offset follows the placement's alignment: start and
// plain placements point near the leading corner, end placements near
// the trailing one.
func (tooltip *Tooltip) arrow(size geometry.Size) (placement.Edge, int, bool) {
	if !tooltip.options.HasArrow {
		return 0, 0, false
	}
	value := tooltip.position.Placement
	if !value.Valid() {
		value = placement.Default
	}
	length := size.Width
	if !value.Vertical() {
		length = size.Height
	}
	offset := 2
	if value.Align() == placement.AlignEnd {
		offset = length - 3
	}
	if !value.Vertical() {
		offset = min(max(offset, 1), size.Height-2)
	}
	return value.Edge(), offset, true
}

// arrowGlyph points from the box toward the anchor.
func arrowGlyph(edge placement.Edge) string {
	switch edge {
	case placement.EdgeBottom:
		return "▲"
	case placement.EdgeTop:
		return "▼"
	case placement.EdgeRight:
		return "◀"
	default:
		return "▶"
	}
}
