// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/placement"
	"github.com/bureau-foundation/overlay/lib/viewport"
)

// ErrDestroyed is returned by Create after Destroy. Every other
// operation on a destroyed overlay is a silent no-op.
var ErrDestroyed = errors.New("overlay destroyed")

// State is the lifecycle state of an overlay.
type State uint8

const (
	// Unattached: no layer exists yet.
	Unattached State = iota
	// Hidden: the layer is attached to its host but not shown.
	Hidden
	// Visible: the layer is shown and tracks viewport changes.
	Visible
	// Destroyed is terminal. The layer has been detached and the
	// overlay will never create another.
	Destroyed
)

// String returns the state name.
func (state State) String() string {
	switch state {
	case Unattached:
		return "unattached"
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	case Destroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("state(%d)", uint8(state))
	}
}

// Config wires an overlay to its collaborators.
type Config struct {
	Factory Factory
	Host    Host
	Anchor  Anchor

	// Viewport answers viewport queries for immediate positioning
	// on Show and after setter calls.
	Viewport ViewportQuery

	// Stream delivers resize and scroll changes while the layer is
	// visible. Nil disables re-positioning on viewport changes.
	Stream viewport.Subscriber

	// Throttle is the subscription's throttle window. Zero delivers
	// every raw event; callers normally pass viewport.DefaultThrottle.
	Throttle time.Duration

	// Resolver computes positions. Defaults to placement.DefaultResolver.
	Resolver placement.Resolver

	Content   string
	Placement placement.Placement
	Options   LayerOptions

	Logger *slog.Logger
}

// Overlay manages one floating layer for one anchor: lazy creation,
// show/hide, re-positioning while visible, and teardown.
//
// An Overlay is driven from a single UI loop and is not safe for
// concurrent use. Viewport deliveries reach it through the stream's
// dispatcher, which hosts point at the same loop.
type Overlay struct {
	id       string
	factory  Factory
	host     Host
	anchor   Anchor
	query    ViewportQuery
	stream   viewport.Subscriber
	throttle time.Duration
	resolver placement.Resolver
	logger   *slog.Logger

	content   string
	requested placement.Placement
	options   LayerOptions

	state        State
	layer        Layer
	subscription *viewport.Subscription
	position     placement.Position
	positioned   bool
}

// New creates an overlay in the Unattached state. No layer is created
// until Create or Show is called.
func New(config Config) *Overlay {
	resolver := config.Resolver
	if resolver == nil {
		resolver = placement.DefaultResolver
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	options := config.Options
	if options.Theme == "" {
		options.Theme = DefaultTheme
	}
	requested := config.Placement
	if !requested.Valid() {
		requested = placement.Default
	}

	id := uuid.NewString()
	return &Overlay{
		id:        id,
		factory:   config.Factory,
		host:      config.Host,
		anchor:    config.Anchor,
		query:     config.Viewport,
		stream:    config.Stream,
		throttle:  config.Throttle,
		resolver:  resolver,
		logger:    logger.With("overlay", id),
		content:   config.Content,
		requested: requested,
		options:   options,
	}
}

// ID returns the overlay's unique identifier, used in log records.
func (overlay *Overlay) ID() string { return overlay.id }

// State returns the lifecycle state.
func (overlay *Overlay) State() State { return overlay.state }

// Visible reports whether the layer is currently shown.
func (overlay *Overlay) Visible() bool { return overlay.state == Visible }

// Placement returns the requested placement.
func (overlay *Overlay) Placement() placement.Placement { return overlay.requested }

// Options returns the current presentation settings.
func (overlay *Overlay) Options() LayerOptions { return overlay.options }

// Position returns the most recently resolved position. The boolean is
// false until the layer has been positioned at least once.
func (overlay *Overlay) Position() (placement.Position, bool) {
	return overlay.position, overlay.positioned
}

// Create instantiates the layer with content and attaches it to the
// host, leaving it hidden. Only the first call does anything: once a
// layer exists, Create reuses it and returns nil. After Destroy it
// returns ErrDestroyed.
//
// A factory or host failure leaves the overlay Unattached, so a later
// Show can retry.
func (overlay *Overlay) Create(content string) error {
	switch overlay.state {
	case Destroyed:
		return ErrDestroyed
	case Hidden, Visible:
		return nil
	}

	layer, err := overlay.factory.Create(content, overlay.options)
	if err != nil {
		return fmt.Errorf("creating layer: %w", err)
	}
	if err := overlay.host.Attach(layer); err != nil {
		return fmt.Errorf("attaching layer to host: %w", err)
	}
	layer.SetVisible(false)

	overlay.layer = layer
	overlay.content = content
	overlay.state = Hidden
	overlay.logger.Debug("layer created", "placement", overlay.requested.String())
	return nil
}

// Show makes the layer visible, creating it first if needed. The layer
// is positioned immediately and re-positioned on every throttled
// viewport change until Hide or Destroy. Showing a visible or destroyed
// overlay does nothing.
func (overlay *Overlay) Show() {
	switch overlay.state {
	case Visible, Destroyed:
		return
	case Unattached:
		if err := overlay.Create(overlay.content); err != nil {
			overlay.logger.Warn("overlay not shown", "error", err)
			return
		}
	}

	overlay.state = Visible
	overlay.layer.SetVisible(true)
	overlay.reposition(overlay.currentViewport())
	overlay.syncSubscription()
}

// Hide hides the layer and stops tracking viewport changes. The layer
// stays attached for the next Show.
func (overlay *Overlay) Hide() {
	if overlay.state != Visible {
		return
	}
	overlay.state = Hidden
	overlay.layer.SetVisible(false)
	overlay.cancelSubscription()
}

// Toggle hides a visible overlay and shows any other non-destroyed
// one.
func (overlay *Overlay) Toggle() {
	if overlay.state == Visible {
		overlay.Hide()
		return
	}
	overlay.Show()
}

// Destroy cancels viewport tracking, detaches the layer from its host,
// and releases it. The overlay cannot be shown again. Calling Destroy
// more than once is harmless.
func (overlay *Overlay) Destroy() {
	if overlay.state == Destroyed {
		return
	}
	overlay.cancelSubscription()
	if overlay.layer != nil {
		overlay.layer.SetVisible(false)
		overlay.host.Detach(overlay.layer)
		overlay.layer = nil
	}
	overlay.state = Destroyed
	overlay.positioned = false
	overlay.logger.Debug("overlay destroyed")
}

// Contains reports whether point (document coordinates) falls inside
// the visible layer.
func (overlay *Overlay) Contains(point geometry.Point) bool {
	if overlay.state != Visible {
		return false
	}
	return overlay.layer.Bounds().Contains(point)
}

// Reposition re-resolves the layer's position against the current
// anchor and viewport. It is a no-op unless the layer is visible.
func (overlay *Overlay) Reposition() {
	overlay.reposition(overlay.currentViewport())
}

// SetPlacement changes the requested placement and re-positions a
// visible layer right away.
func (overlay *Overlay) SetPlacement(value placement.Placement) {
	if !value.Valid() {
		value = placement.Default
	}
	overlay.requested = value
	overlay.Reposition()
}

// SetContent replaces the layer's content. A visible layer is
// re-positioned since its size may have changed.
func (overlay *Overlay) SetContent(content string) {
	overlay.content = content
	if overlay.layer == nil {
		return
	}
	overlay.layer.SetContent(content)
	overlay.Reposition()
}

// SetHasArrow turns the anchor arrow on or off.
func (overlay *Overlay) SetHasArrow(hasArrow bool) {
	options := overlay.options
	options.HasArrow = hasArrow
	overlay.setOptions(options)
}

// SetEmbedded switches between floating and embedded rendering.
// Embedded layers do not track viewport changes.
func (overlay *Overlay) SetEmbedded(embedded bool) {
	options := overlay.options
	options.Embedded = embedded
	overlay.setOptions(options)
}

// SetTheme changes the color scheme.
func (overlay *Overlay) SetTheme(theme Theme) {
	if theme == "" {
		theme = DefaultTheme
	}
	options := overlay.options
	options.Theme = theme
	overlay.setOptions(options)
}

func (overlay *Overlay) setOptions(options LayerOptions) {
	overlay.options = options
	if overlay.state == Destroyed || overlay.layer == nil {
		return
	}
	overlay.layer.SetOptions(options)
	if overlay.state == Visible {
		overlay.syncSubscription()
		overlay.Reposition()
	}
}

func (overlay *Overlay) currentViewport() geometry.Viewport {
	if overlay.query == nil {
		return geometry.Viewport{}
	}
	return overlay.query.Viewport()
}

// reposition places the layer for the given viewport. A missing anchor
// skips this tick; the next viewport change or explicit call retries.
func (overlay *Overlay) reposition(current geometry.Viewport) {
	if overlay.state != Visible {
		return
	}
	anchorRect, ok := overlay.anchor.Rect()
	if !ok {
		overlay.logger.Debug("anchor unavailable, skipping reposition")
		return
	}

	size := overlay.layer.Size()
	var position placement.Position
	if overlay.options.Embedded {
		position = placement.Candidate(anchorRect, size, overlay.requested)
	} else {
		position = overlay.resolver.Resolve(anchorRect, size, overlay.requested, current)
	}

	overlay.layer.Place(position)
	overlay.position = position
	overlay.positioned = true
	if position.Flipped {
		overlay.logger.Debug("placement flipped",
			"requested", overlay.requested.String(),
			"effective", position.Placement.String())
	}
}

// syncSubscription makes the subscription match the current mode:
// floating visible layers subscribe, everything else does not.
func (overlay *Overlay) syncSubscription() {
	wanted := overlay.state == Visible && !overlay.options.Embedded && overlay.stream != nil
	switch {
	case wanted && overlay.subscription == nil:
		overlay.subscription = overlay.stream.Subscribe(overlay.throttle, overlay.handleViewportChange)
	case !wanted:
		overlay.cancelSubscription()
	}
}

func (overlay *Overlay) cancelSubscription() {
	if overlay.subscription == nil {
		return
	}
	overlay.subscription.Cancel()
	overlay.subscription = nil
}

func (overlay *Overlay) handleViewportChange(event viewport.Event) {
	overlay.reposition(event.Viewport)
}
