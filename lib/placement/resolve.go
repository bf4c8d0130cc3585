// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package placement

import "github.com/bureau-foundation/overlay/lib/geometry"

// Position is the outcome of resolving a placement: the layer's
// top-left corner in document coordinates and the placement that
// produced it.
type Position struct {
	X int
	Y int

	// Placement is the effective placement. It differs from the
	// requested one only when Flipped is set.
	Placement Placement

	// Flipped is true when the requested edge overflowed the
	// viewport and the opposite edge was used instead.
	Flipped bool
}

// Point returns the layer's top-left corner.
func (position Position) Point() geometry.Point {
	return geometry.Point{X: position.X, Y: position.Y}
}

// Bounds returns the rectangle the layer occupies at this position.
func (position Position) Bounds(layer geometry.Size) geometry.Rect {
	return geometry.Rect{Top: position.Y, Left: position.X, Width: layer.Width, Height: layer.Height}
}

// Resolver computes a Position. The lifecycle manager depends on this
// interface rather than on Resolve so hosts can substitute their own
// strategy (and tests can observe calls).
type Resolver interface {
	Resolve(anchor geometry.Rect, layer geometry.Size, requested Placement, viewport geometry.Viewport) Position
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(anchor geometry.Rect, layer geometry.Size, requested Placement, viewport geometry.Viewport) Position

// Resolve calls the function.
func (function ResolverFunc) Resolve(anchor geometry.Rect, layer geometry.Size, requested Placement, viewport geometry.Viewport) Position {
	return function(anchor, layer, requested, viewport)
}

// DefaultResolver is the edge-alignment resolver with single-flip
// overflow handling.
var DefaultResolver Resolver = ResolverFunc(Resolve)

// Resolve places a layer of the given size next to anchor.
//
// The candidate for the requested placement is computed first. If it
// overflows the viewport on the placement's primary axis (vertical for
// top/bottom, horizontal for left/right), the opposite edge is tried
// once. The flip is taken only if the flipped candidate fits; a layer
// that fits on neither side stays where it was requested.
func Resolve(anchor geometry.Rect, layer geometry.Size, requested Placement, viewport geometry.Viewport) Position {
	if !requested.Valid() {
		requested = Default
	}

	candidate := Candidate(anchor, layer, requested)
	if !overflows(candidate, layer, requested, viewport) {
		return candidate
	}

	flipped := Candidate(anchor, layer, requested.Opposite())
	if overflows(flipped, layer, flipped.Placement, viewport) {
		return candidate
	}
	flipped.Flipped = true
	return flipped
}

// Candidate computes the position for value without any overflow
// handling. Embedded layers, which scroll with the content, use it
// directly.
func Candidate(anchor geometry.Rect, layer geometry.Size, value Placement) Position {
	if !value.Valid() {
		value = Default
	}
	position := Position{Placement: value}

	switch value.Edge() {
	case EdgeBottom:
		position.Y = anchor.Bottom()
	case EdgeTop:
		position.Y = anchor.Top - layer.Height
	case EdgeRight:
		position.X = anchor.Right()
	case EdgeLeft:
		position.X = anchor.Left - layer.Width
	}

	if value.Vertical() {
		position.X = anchor.Left
		if value.Align() == AlignEnd {
			position.X = anchor.Right() - layer.Width
		}
	} else {
		position.Y = anchor.Top
		if value.Align() == AlignEnd {
			position.Y = anchor.Bottom() - layer.Height
		}
	}

	return position
}

// overflows tests the primary axis of value only.
func overflows(position Position, layer geometry.Size, value Placement, viewport geometry.Viewport) bool {
	visible := viewport.Visible()
	if value.Vertical() {
		return position.Y < visible.Top || position.Y+layer.Height > visible.Bottom()
	}
	return position.X < visible.Left || position.X+layer.Width > visible.Right()
}
