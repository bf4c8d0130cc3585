// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/placement"
)

// Theme names a tooltip color scheme. Hosts decide what each name
// looks like; unknown names render with DefaultTheme.
type Theme string

// Built-in themes.
const (
	// DefaultTheme is the gray scheme used when none is configured.
	DefaultTheme Theme = "default"
	ThemeWhite   Theme = "white"
	ThemePink    Theme = "pink"
	ThemeYellow  Theme = "yellow"
)

// Themes lists the built-in themes.
func Themes() []Theme {
	return []Theme{DefaultTheme, ThemeWhite, ThemePink, ThemeYellow}
}

// Known reports whether theme is one of the built-in themes.
func (theme Theme) Known() bool {
	for _, known := range Themes() {
		if theme == known {
			return true
		}
	}
	return false
}

// LayerOptions are the presentation settings a layer is created with
// and later updated through the overlay's setters.
type LayerOptions struct {
	// HasArrow draws a pointer from the layer toward its anchor. The
	// arrow follows the effective placement, so it flips with the
	// layer.
	HasArrow bool

	// Embedded renders the layer in the host's content flow instead
	// of floating over the viewport.
	Embedded bool

	Theme Theme
}

// Layer is one floating visual instance. The overlay that created it
// owns it exclusively; a layer is never shared between overlays.
//
// Place and SetVisible change only the layer's own geometry and
// presentation, never the anchor's.
type Layer interface {
	// Size returns the extent the layer needs, including any arrow.
	Size() geometry.Size

	// Place moves the layer to a resolved position. The position's
	// Placement tells the layer which edge it is attached to, for
	// arrow direction and styling.
	Place(position placement.Position)

	// SetVisible shows or hides the layer without detaching it.
	SetVisible(visible bool)

	// SetContent replaces the layer's content.
	SetContent(content string)

	// SetOptions replaces the layer's presentation settings.
	SetOptions(options LayerOptions)

	// Bounds returns the rectangle the layer currently occupies in
	// document coordinates.
	Bounds() geometry.Rect
}

// Factory instantiates layers. It is the capability the host provides
// for creating floating content outside the normal layout.
type Factory interface {
	Create(content string, options LayerOptions) (Layer, error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(content string, options LayerOptions) (Layer, error)

// Create calls the function.
func (function FactoryFunc) Create(content string, options LayerOptions) (Layer, error) {
	return function(content, options)
}

// Host is the container floating layers are attached to. Attach and
// Detach are synchronous: when Detach returns the layer is gone from
// the host.
type Host interface {
	Attach(layer Layer) error
	Detach(layer Layer)
}

// Anchor is the element an overlay is positioned against. Rect returns
// false when the element is not currently available (unmounted,
// collapsed), in which case positioning is skipped for that tick.
type Anchor interface {
	Rect() (geometry.Rect, bool)
}

// ViewportQuery supplies the current viewport on demand.
type ViewportQuery interface {
	Viewport() geometry.Viewport
}
