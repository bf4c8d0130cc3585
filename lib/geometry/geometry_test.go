// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package geometry

import "testing"

func TestRectContains(t *testing.T) {
	t.Parallel()

	rect := Rect{Top: 2, Left: 3, Width: 4, Height: 2}
	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"top-left corner", Point{X: 3, Y: 2}, true},
		{"last cell", Point{X: 6, Y: 3}, true},
		{"right edge exclusive", Point{X: 7, Y: 2}, false},
		{"bottom edge exclusive", Point{X: 3, Y: 4}, false},
		{"left of rect", Point{X: 2, Y: 2}, false},
		{"above rect", Point{X: 3, Y: 1}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := rect.Contains(test.point); got != test.want {
				t.Errorf("Contains(%+v) = %v, want %v", test.point, got, test.want)
			}
		})
	}
}

func TestEmptyRectContainsNothing(t *testing.T) {
	t.Parallel()

	rect := Rect{Top: 0, Left: 0, Width: 0, Height: 5}
	if rect.Contains(Point{}) {
		t.Error("zero-width rect should contain no points")
	}
}

func TestViewportCoordinateConversion(t *testing.T) {
	t.Parallel()

	viewport := Viewport{Width: 80, Height: 24, ScrollX: 5, ScrollY: 100}
	document := Point{X: 10, Y: 110}

	screen := viewport.ToScreen(document)
	if screen != (Point{X: 5, Y: 10}) {
		t.Fatalf("ToScreen = %+v, want {5 10}", screen)
	}
	if back := viewport.ToDocument(screen); back != document {
		t.Fatalf("ToDocument(ToScreen(p)) = %+v, want %+v", back, document)
	}

	visible := viewport.Visible()
	if visible.Top != 100 || visible.Left != 5 || visible.Bottom() != 124 || visible.Right() != 85 {
		t.Errorf("Visible() = %+v", visible)
	}
}
