// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/overlay/lib/overlay"
	"github.com/bureau-foundation/overlay/lib/placement"
)

// renderPlain renders tooltip and checks every line matches Size().Width.
func renderPlain(t *testing.T, tooltip *Tooltip) []string {
	t.Helper()
	lines := tooltip.Render()
	size := tooltip.Size()
	if len(lines) != size.Height {
		t.Fatalf("rendered %d lines, Size().Height = %d", len(lines), size.Height)
	}
	plain := make([]string, len(lines))
	for index, line := range lines {
		if width := ansi.StringWidth(line); width != size.Width {
			t.Errorf("line %d: width %d, want %d: %q", index, width, size.Width, ansi.Strip(line))
		}
		plain[index] = ansi.Strip(line)
	}
	return plain
}

func TestTooltip_SizeAndBox(t *testing.T) {
	tooltip := NewTooltip("hello", overlay.LayerOptions{}, DefaultTheme, DefaultTooltipWidth)

	size := tooltip.Size()
	if size.Width != 9 || size.Height != 3 {
		t.Errorf("size = %+v, want 9x3", size)
	}
	lines := renderPlain(t, tooltip)
	if lines[0] != "╭───────╮" || lines[1] != "│ hello │" || lines[2] != "╰───────╯" {
		t.Errorf("box = %q", lines)
	}
}

func TestTooltip_WrapsAtMaxWidth(t *testing.T) {
	tooltip := NewTooltip(strings.Repeat("word ", 20), overlay.LayerOptions{}, DefaultTheme, 20)
	if size := tooltip.Size(); size.Width > 20 || size.Height < 4 {
		t.Errorf("size = %+v, want wrapped within 20 columns", size)
	}
	renderPlain(t, tooltip)
}

func TestTooltip_MinimumWidth(t *testing.T) {
	tooltip := NewTooltip("x", overlay.LayerOptions{}, DefaultTheme, 2)
	if tooltip.maxWidth != minTooltipWidth {
		t.Errorf("maxWidth = %d, want %d", tooltip.maxWidth, minTooltipWidth)
	}
}

func TestTooltip_ArrowFollowsPlacement(t *testing.T) {
	tests := []struct {
		placement placement.Placement
		row       func(lines []string) int
		column    func(width int) int
		glyph     string
	}{
		{placement.Bottom, func([]string) int { return 0 }, func(int) int { return 2 }, "▲"},
		{placement.BottomEnd, func([]string) int { return 0 }, func(width int) int { return width - 3 }, "▲"},
		{placement.Top, func(lines []string) int { return len(lines) - 1 }, func(int) int { return 2 }, "▼"},
		{placement.TopEnd, func(lines []string) int { return len(lines) - 1 }, func(width int) int { return width - 3 }, "▼"},
		{placement.Right, func([]string) int { return 2 }, func(int) int { return 0 }, "◀"},
		{placement.Left, func([]string) int { return 2 }, func(width int) int { return width - 1 }, "▶"},
	}

	for _, test := range tests {
		t.Run(test.placement.String(), func(t *testing.T) {
			// Three body lines so side arrows have room at offset 2.
			tooltip := NewTooltip("first\n\nsecond", overlay.LayerOptions{HasArrow: true}, DefaultTheme, 30)
			tooltip.Place(placement.Position{Placement: test.placement})

			lines := renderPlain(t, tooltip)
			row := []rune(lines[test.row(lines)])
			column := test.column(tooltip.Size().Width)
			if got := string(row[column]); got != test.glyph {
				t.Errorf("cell (%d,%d) = %q, want %q in %q", test.row(lines), column, got, test.glyph, lines)
			}
			if count := strings.Count(strings.Join(lines, ""), test.glyph); count != 1 {
				t.Errorf("found %d arrows, want 1", count)
			}
		})
	}
}

func TestTooltip_ArrowFlipsWithoutResizing(t *testing.T) {
	tooltip := NewTooltip("flip", overlay.LayerOptions{HasArrow: true}, DefaultTheme, 30)
	tooltip.Place(placement.Position{Placement: placement.Bottom})
	before := tooltip.Size()

	tooltip.Place(placement.Position{Placement: placement.Top, Flipped: true})
	if tooltip.Size() != before {
		t.Errorf("size changed on flip: %+v -> %+v", before, tooltip.Size())
	}
	lines := renderPlain(t, tooltip)
	if !strings.Contains(lines[len(lines)-1], "▼") || strings.Contains(lines[0], "▲") {
		t.Errorf("arrow did not move to the bottom border: %q", lines)
	}
}

func TestTooltip_NoArrowByDefault(t *testing.T) {
	tooltip := NewTooltip("plain", overlay.LayerOptions{}, DefaultTheme, 30)
	tooltip.Place(placement.Position{Placement: placement.Top})
	for _, line := range renderPlain(t, tooltip) {
		if strings.ContainsAny(line, "▲▼◀▶") {
			t.Errorf("unexpected arrow in %q", line)
		}
	}
}

func TestTooltip_SetContentResizes(t *testing.T) {
	tooltip := NewTooltip("a", overlay.LayerOptions{}, DefaultTheme, 40)
	small := tooltip.Size()

	tooltip.SetContent("a much longer line of content")
	if tooltip.Size().Width <= small.Width {
		t.Errorf("width did not grow: %d -> %d", small.Width, tooltip.Size().Width)
	}
	lines := renderPlain(t, tooltip)
	if !strings.Contains(lines[1], "a much longer line of content") {
		t.Errorf("content not rendered: %q", lines)
	}
}

func TestTooltip_BoundsFollowPlacement(t *testing.T) {
	tooltip := NewTooltip("hello", overlay.LayerOptions{}, DefaultTheme, 30)
	tooltip.Place(placement.Position{X: 4, Y: 7})

	bounds := tooltip.Bounds()
	if bounds.Left != 4 || bounds.Top != 7 || bounds.Width != 9 || bounds.Height != 3 {
		t.Errorf("bounds = %+v", bounds)
	}
}

func TestTooltip_ThemesDiffer(t *testing.T) {
	base := NewTooltip("x", overlay.LayerOptions{Theme: overlay.DefaultTheme}, DefaultTheme, 20).Render()
	pink := NewTooltip("x", overlay.LayerOptions{Theme: overlay.ThemePink}, DefaultTheme, 20).Render()
	if strings.Join(base, "\n") == strings.Join(pink, "\n") {
		t.Error("pink theme rendered identically to the default theme")
	}
	unknown := NewTooltip("x", overlay.LayerOptions{Theme: "mauve"}, DefaultTheme, 20).Render()
	if strings.Join(base, "\n") != strings.Join(unknown, "\n") {
		t.Error("unknown theme did not fall back to the default scheme")
	}
}
