// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package suggestion

import (
	"log/slog"
	"time"

	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/placement"
	"github.com/bureau-foundation/overlay/lib/viewport"
)

// DefaultClearance is the panel chrome height in pixels the browser
// search box reserved: 36 for the header, 110 for the list, and 10 of
// margin. Terminal hosts pass their own clearance in rows.
const DefaultClearance = 36 + 110 + 10

// Decide returns placement.Bottom when the viewport bottom, less
// clearance, is still below offsetTop, and placement.Top otherwise.
// offsetTop is the input's top edge in document coordinates.
func Decide(current geometry.Viewport, offsetTop, clearance int) placement.Placement {
	if current.ScrollY+current.Height-offsetTop-clearance > 0 {
		return placement.Bottom
	}
	return placement.Top
}

// Anchor is the input the panel attaches to.
type Anchor interface {
	Rect() (geometry.Rect, bool)
}

// ViewportQuery supplies the current viewport.
type ViewportQuery interface {
	Viewport() geometry.Viewport
}

// Config wires a Positioner.
type Config struct {
	Anchor   Anchor
	Viewport ViewportQuery
	Stream   viewport.Subscriber

	// Clearance is the panel height to reserve. Zero means
	// DefaultClearance.
	Clearance int

	// Throttle is the subscription window. Zero means
	// viewport.DefaultThrottle.
	Throttle time.Duration

	// OnChange is called with each new decision that differs from the
	// previous one.
	OnChange func(placement.Placement)

	Logger *slog.Logger
}

// Positioner keeps a suggestion panel's placement current while its
// widget is mounted. It runs on the UI loop and is not safe for
// concurrent use.
type Positioner struct {
	anchor    Anchor
	query     ViewportQuery
	stream    viewport.Subscriber
	clearance int
	throttle  time.Duration
	onChange  func(placement.Placement)
	logger    *slog.Logger

	current      placement.Placement
	subscription *viewport.Subscription
}

// NewPositioner creates an unmounted positioner whose initial decision
// is placement.Bottom.
func NewPositioner(config Config) *Positioner {
	clearance := config.Clearance
	if clearance == 0 {
		clearance = DefaultClearance
	}
	throttle := config.Throttle
	if throttle == 0 {
		throttle = viewport.DefaultThrottle
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Positioner{
		anchor:    config.Anchor,
		query:     config.Viewport,
		stream:    config.Stream,
		clearance: clearance,
		throttle:  throttle,
		onChange:  config.OnChange,
		logger:    logger,
		current:   placement.Bottom,
	}
}

// Placement returns the current decision.
func (positioner *Positioner) Placement() placement.Placement { return positioner.current }

// Mounted reports whether the positioner is tracking viewport changes.
func (positioner *Positioner) Mounted() bool { return positioner.subscription != nil }

// Clearance returns the reserved panel height.
func (positioner *Positioner) Clearance() int { return positioner.clearance }

// Mount decides immediately and subscribes to viewport changes.
// Mounting twice keeps the one subscription.
func (positioner *Positioner) Mount() {
	if positioner.subscription != nil {
		return
	}
	positioner.Update()
	if positioner.stream != nil {
		positioner.subscription = positioner.stream.Subscribe(positioner.throttle, func(event viewport.Event) {
			positioner.decide(event.Viewport)
		})
	}
}

// Unmount releases the viewport subscription. The last decision is
// kept.
func (positioner *Positioner) Unmount() {
	if positioner.subscription == nil {
		return
	}
	positioner.subscription.Cancel()
	positioner.subscription = nil
}

// Update re-decides against the current viewport. Widgets call it when
// their input changes, since a panel about to open must not wait for
// the next viewport event.
func (positioner *Positioner) Update() {
	if positioner.query == nil {
		return
	}
	positioner.decide(positioner.query.Viewport())
}

func (positioner *Positioner) decide(current geometry.Viewport) {
	rect, ok := positioner.anchor.Rect()
	if !ok {
		positioner.logger.Debug("suggestion anchor unavailable, keeping placement",
			"placement", positioner.current.String())
		return
	}
	next := Decide(current, rect.Top, positioner.clearance)
	if next == positioner.current {
		return
	}
	positioner.current = next
	positioner.logger.Debug("suggestion panel placement changed", "placement", next.String())
	if positioner.onChange != nil {
		positioner.onChange(next)
	}
}
