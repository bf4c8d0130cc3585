// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package geometry holds the value types shared by the overlay engine:
// rectangles in document coordinates, sizes, points, and the viewport
// window through which the document is seen.
//
// All coordinates are terminal cells. A document coordinate is a row or
// column of the full scrollable content; the viewport is the window
// [ScrollY, ScrollY+Height) x [ScrollX, ScrollX+Width) into it.
package geometry

// Point is a cell position in document coordinates.
type Point struct {
	X int
	Y int
}

// Size is the extent of a floating layer.
type Size struct {
	Width  int
	Height int
}

// Rect is an axis-aligned rectangle in document coordinates. It is the
// bounding box of an anchor element at the moment it was queried.
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Bottom returns the first row below the rectangle.
func (rect Rect) Bottom() int { return rect.Top + rect.Height }

// Right returns the first column right of the rectangle.
func (rect Rect) Right() int { return rect.Left + rect.Width }

// Empty reports whether the rectangle covers no cells.
func (rect Rect) Empty() bool { return rect.Width <= 0 || rect.Height <= 0 }

// Contains reports whether point falls inside the rectangle. The right
// and bottom edges are exclusive.
func (rect Rect) Contains(point Point) bool {
	if rect.Empty() {
		return false
	}
	return point.X >= rect.Left && point.X < rect.Right() &&
		point.Y >= rect.Top && point.Y < rect.Bottom()
}

// Viewport describes the visible window: its size and how far the
// document has been scrolled underneath it.
type Viewport struct {
	Width   int
	Height  int
	ScrollX int
	ScrollY int
}

// Visible returns the viewport as a rectangle in document coordinates.
func (viewport Viewport) Visible() Rect {
	return Rect{
		Top:    viewport.ScrollY,
		Left:   viewport.ScrollX,
		Width:  viewport.Width,
		Height: viewport.Height,
	}
}

// ToScreen converts a document point into a viewport-relative (screen)
// point.
func (viewport Viewport) ToScreen(point Point) Point {
	return Point{X: point.X - viewport.ScrollX, Y: point.Y - viewport.ScrollY}
}

// ToDocument converts a screen point into document coordinates.
func (viewport Viewport) ToDocument(point Point) Point {
	return Point{X: point.X + viewport.ScrollX, Y: point.Y + viewport.ScrollY}
}
