// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package placement

import (
	"testing"

	"github.com/bureau-foundation/overlay/lib/geometry"
)

func TestResolveBottomFits(t *testing.T) {
	t.Parallel()

	anchor := geometry.Rect{Top: 500, Left: 100, Width: 80, Height: 30}
	layer := geometry.Size{Width: 120, Height: 40}
	viewport := geometry.Viewport{Width: 800, Height: 600}

	got := Resolve(anchor, layer, Bottom, viewport)
	want := Position{X: 100, Y: 530, Placement: Bottom}
	if got != want {
		t.Fatalf("Resolve = %+v, want %+v", got, want)
	}
}

func TestResolveBottomFlipsToTop(t *testing.T) {
	t.Parallel()

	anchor := geometry.Rect{Top: 500, Left: 100, Width: 80, Height: 30}
	layer := geometry.Size{Width: 120, Height: 40}
	viewport := geometry.Viewport{Width: 800, Height: 550}

	got := Resolve(anchor, layer, Bottom, viewport)
	// anchor.Top - layer.Height
	want := Position{X: 100, Y: 460, Placement: Top, Flipped: true}
	if got != want {
		t.Fatalf("Resolve = %+v, want %+v", got, want)
	}
}

func TestResolveScrollOffsetsVisibleWindow(t *testing.T) {
	t.Parallel()

	// The anchor sits near the top of the document but the viewport
	// has scrolled past it: a top layer would start above the visible
	// window, so it flips to bottom.
	anchor := geometry.Rect{Top: 205, Left: 10, Width: 10, Height: 1}
	layer := geometry.Size{Width: 20, Height: 8}
	viewport := geometry.Viewport{Width: 80, Height: 24, ScrollY: 200}

	got := Resolve(anchor, layer, Top, viewport)
	if got.Placement != Bottom || !got.Flipped || got.Y != 206 {
		t.Fatalf("Resolve = %+v, want flipped to bottom at y=206", got)
	}
}

func TestResolveKeepsRequestedWhenNeitherSideFits(t *testing.T) {
	t.Parallel()

	anchor := geometry.Rect{Top: 10, Left: 10, Width: 5, Height: 2}
	layer := geometry.Size{Width: 10, Height: 15}
	viewport := geometry.Viewport{Width: 80, Height: 24}

	got := Resolve(anchor, layer, Bottom, viewport)
	want := Position{X: 10, Y: 12, Placement: Bottom}
	if got != want {
		t.Fatalf("Resolve = %+v, want %+v (no flip when flipped side overflows too)", got, want)
	}
}

func TestResolveInvalidPlacementDefaultsToBottom(t *testing.T) {
	t.Parallel()

	anchor := geometry.Rect{Top: 5, Left: 5, Width: 4, Height: 1}
	layer := geometry.Size{Width: 6, Height: 2}
	viewport := geometry.Viewport{Width: 80, Height: 24}

	got := Resolve(anchor, layer, Placement(200), viewport)
	if got.Placement != Bottom || got.Y != 6 || got.X != 5 {
		t.Fatalf("Resolve with invalid placement = %+v, want bottom at (5, 6)", got)
	}
}

func TestResolveAllPlacements(t *testing.T) {
	t.Parallel()

	anchor := geometry.Rect{Top: 10, Left: 30, Width: 8, Height: 2}
	layer := geometry.Size{Width: 12, Height: 3}
	roomy := geometry.Viewport{Width: 80, Height: 24}

	tests := []struct {
		requested Placement
		wantX     int
		wantY     int
	}{
		{Bottom, 30, 12},
		{BottomStart, 30, 12},
		{BottomEnd, 26, 12},
		{Top, 30, 7},
		{TopStart, 30, 7},
		{TopEnd, 26, 7},
		{Left, 18, 10},
		{LeftStart, 18, 10},
		{LeftEnd, 18, 9},
		{Right, 38, 10},
		{RightStart, 38, 10},
		{RightEnd, 38, 9},
	}
	for _, test := range tests {
		t.Run(test.requested.String(), func(t *testing.T) {
			got := Resolve(anchor, layer, test.requested, roomy)
			if got.X != test.wantX || got.Y != test.wantY {
				t.Errorf("position = (%d, %d), want (%d, %d)", got.X, got.Y, test.wantX, test.wantY)
			}
			if got.Placement != test.requested || got.Flipped {
				t.Errorf("placement = %v flipped=%v, want %v unflipped", got.Placement, got.Flipped, test.requested)
			}
		})
	}
}

// TestResolveFlipKeepsLayerInside checks every placement against a
// viewport that is too tight for the requested edge but roomy on the
// opposite one: the result must be the opposite edge, the same side
// alignment, and fully inside the viewport on the flip axis.
func TestResolveFlipKeepsLayerInside(t *testing.T) {
	t.Parallel()

	layer := geometry.Size{Width: 10, Height: 4}
	viewport := geometry.Viewport{Width: 60, Height: 20}

	// Anchors hugging each viewport edge so the placement toward
	// that edge overflows.
	anchorFor := map[Edge]geometry.Rect{
		EdgeBottom: {Top: 17, Left: 25, Width: 6, Height: 2},
		EdgeTop:    {Top: 1, Left: 25, Width: 6, Height: 2},
		EdgeRight:  {Top: 8, Left: 52, Width: 6, Height: 2},
		EdgeLeft:   {Top: 8, Left: 2, Width: 6, Height: 2},
	}

	for _, requested := range All() {
		t.Run(requested.String(), func(t *testing.T) {
			anchor := anchorFor[requested.Edge()]
			got := Resolve(anchor, layer, requested, viewport)

			if !got.Flipped {
				t.Fatalf("expected flip for %v, got %+v", requested, got)
			}
			if got.Placement != requested.Opposite() {
				t.Errorf("placement = %v, want %v", got.Placement, requested.Opposite())
			}
			if got.Placement.Align() != requested.Align() {
				t.Errorf("alignment changed from %v to %v", requested.Align(), got.Placement.Align())
			}
			bounds := got.Bounds(layer)
			visible := viewport.Visible()
			if requested.Vertical() {
				if bounds.Top < visible.Top || bounds.Bottom() > visible.Bottom() {
					t.Errorf("layer rows [%d, %d) outside viewport", bounds.Top, bounds.Bottom())
				}
			} else if bounds.Left < visible.Left || bounds.Right() > visible.Right() {
				t.Errorf("layer columns [%d, %d) outside viewport", bounds.Left, bounds.Right())
			}
		})
	}
}

func TestResolveSideAxisNeverFlips(t *testing.T) {
	t.Parallel()

	// Bottom-end with an anchor at the left edge pushes the layer
	// off-screen horizontally. Only the primary (vertical) axis is
	// checked, so the result stays bottom-end.
	anchor := geometry.Rect{Top: 2, Left: 0, Width: 3, Height: 1}
	layer := geometry.Size{Width: 10, Height: 2}
	viewport := geometry.Viewport{Width: 40, Height: 20}

	got := Resolve(anchor, layer, BottomEnd, viewport)
	want := Position{X: -7, Y: 3, Placement: BottomEnd}
	if got != want {
		t.Fatalf("Resolve = %+v, want %+v", got, want)
	}
}

func TestResolverFuncAdapter(t *testing.T) {
	t.Parallel()

	called := false
	var resolver Resolver = ResolverFunc(func(geometry.Rect, geometry.Size, Placement, geometry.Viewport) Position {
		called = true
		return Position{X: 1, Y: 2, Placement: Left}
	})
	got := resolver.Resolve(geometry.Rect{}, geometry.Size{}, Bottom, geometry.Viewport{})
	if !called || got.Placement != Left {
		t.Fatalf("ResolverFunc did not delegate: called=%v got=%+v", called, got)
	}
}
