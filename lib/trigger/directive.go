// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package trigger

import (
	"log/slog"

	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/overlay"
	"github.com/bureau-foundation/overlay/lib/placement"
)

// DirectiveConfig describes a tooltip attached to one element.
type DirectiveConfig struct {
	Mode    Mode
	Element Element

	// Body receives outside clicks for click mode. Nil disables
	// close-on-outside-click.
	Body *BodyDispatcher

	// Overlay configures the floating layer. A nil Anchor defaults to
	// Element, which is the usual case.
	Overlay overlay.Config

	Logger *slog.Logger
}

// Directive is a complete tooltip: an overlay anchored to an element
// and a trigger binding that drives it.
type Directive struct {
	element Element
	body    *BodyDispatcher
	logger  *slog.Logger

	overlay   *overlay.Overlay
	binding   *Binding
	destroyed bool
}

// NewDirective creates the overlay and binds the trigger. The layer is
// not created until the tooltip is first shown.
func NewDirective(config DirectiveConfig) *Directive {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	overlayConfig := config.Overlay
	if overlayConfig.Anchor == nil {
		overlayConfig.Anchor = config.Element
	}
	if overlayConfig.Logger == nil {
		overlayConfig.Logger = logger
	}

	layer := overlay.New(overlayConfig)
	directive := &Directive{
		element: config.Element,
		body:    config.Body,
		logger:  logger.With("overlay", layer.ID()),
		overlay: layer,
	}
	directive.binding = directive.bind(config.Mode)
	return directive
}

// Overlay returns the underlying overlay for setters and queries.
func (directive *Directive) Overlay() *overlay.Overlay { return directive.overlay }

// Mode returns the active trigger mode.
func (directive *Directive) Mode() Mode { return directive.binding.Mode() }

// SetMode releases the current binding and binds mode in its place.
// The tooltip is hidden first so no listener that could close it is
// lost while it is open.
func (directive *Directive) SetMode(mode Mode) {
	if directive.destroyed || mode == directive.binding.Mode() {
		return
	}
	directive.overlay.Hide()
	directive.binding.Release()
	directive.binding = directive.bind(mode)
}

// Show, Hide, Toggle, and Visible forward to the overlay.
func (directive *Directive) Show() { directive.overlay.Show() }
func (directive *Directive) Hide() { directive.overlay.Hide() }
func (directive *Directive) Toggle() { directive.overlay.Toggle() }
func (directive *Directive) Visible() bool { return directive.overlay.Visible() }

// Contains reports whether point lies inside the visible layer.
func (directive *Directive) Contains(point geometry.Point) bool {
	return directive.overlay.Contains(point)
}

// SetContent replaces the tooltip content.
func (directive *Directive) SetContent(content string) { directive.overlay.SetContent(content) }

// SetPlacement changes the requested placement.
func (directive *Directive) SetPlacement(value placement.Placement) {
	directive.overlay.SetPlacement(value)
}

// Destroy releases the trigger listeners and then destroys the
// overlay. Calling it more than once is harmless.
func (directive *Directive) Destroy() {
	if directive.destroyed {
		return
	}
	directive.destroyed = true
	directive.binding.Release()
	directive.overlay.Destroy()
	directive.logger.Debug("directive destroyed")
}

func (directive *Directive) bind(mode Mode) *Binding {
	return Bind(mode, directive.element, directive,
		WithBody(directive.body),
		WithLogger(directive.logger))
}
