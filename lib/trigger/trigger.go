// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package trigger

import (
	"log/slog"
	"strings"

	"github.com/bureau-foundation/overlay/lib/geometry"
)

// Mode selects which element events drive a target.
type Mode uint8

const (
	// Hover shows on mouseenter and hides on mouseleave.
	Hover Mode = iota
	// Click toggles on click; clicks elsewhere close the target.
	Click
	// Focus shows on focus and hides on blur.
	Focus
	// Manual attaches nothing; the caller drives the target.
	Manual
)

// DefaultMode is used when no mode is configured or the configured one
// is not recognized.
const DefaultMode = Hover

// ParseMode converts a configuration string. Unrecognized input yields
// DefaultMode and false.
func ParseMode(name string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hover":
		return Hover, true
	case "click":
		return Click, true
	case "focus":
		return Focus, true
	case "manual":
		return Manual, true
	default:
		return DefaultMode, false
	}
}

// String returns the mode name.
func (mode Mode) String() string {
	switch mode {
	case Click:
		return "click"
	case Focus:
		return "focus"
	case Manual:
		return "manual"
	default:
		return "hover"
	}
}

// Event names an Element must support.
const (
	EventMouseEnter = "mouseenter"
	EventMouseLeave = "mouseleave"
	EventClick      = "click"
	EventFocus      = "focus"
	EventBlur       = "blur"
)

// Event is a raw element event. Point is the pointer position in
// document coordinates for mouse events and zero otherwise.
type Event struct {
	Name  string
	Point geometry.Point

	stopped bool
}

// StopPropagation keeps the event from reaching ancestor listeners,
// most importantly the body-level click listener.
func (event *Event) StopPropagation() { event.stopped = true }

// Stopped reports whether StopPropagation was called.
func (event *Event) Stopped() bool { return event.stopped }

// Handler receives element events.
type Handler func(*Event)

// Element is an event source with a position: a trigger element or
// the document body.
type Element interface {
	// On registers handler for events named name. The returned
	// function removes exactly that registration; calling it more
	// than once is harmless.
	On(name string, handler Handler) (unregister func())

	// Rect returns the element's bounding box, or false when the
	// element is not currently laid out.
	Rect() (geometry.Rect, bool)
}

// Target is what a binding drives.
type Target interface {
	Show()
	Hide()
	Toggle()
	Visible() bool

	// Contains reports whether point lies inside the target's
	// visible layer.
	Contains(point geometry.Point) bool
}

// Option configures a Binding.
type Option func(*Binding)

// WithBody routes outside clicks for click-mode bindings through a
// shared body dispatcher.
func WithBody(body *BodyDispatcher) Option {
	return func(binding *Binding) { binding.body = body }
}

// WithLogger sets the binding's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(binding *Binding) { binding.logger = logger }
}

// Binding is the set of listeners one trigger mode attached to one
// element. The mode is fixed at Bind time; to change it, Release and
// Bind again.
type Binding struct {
	mode     Mode
	element  Element
	target   Target
	body     *BodyDispatcher
	logger   *slog.Logger
	disposer Disposer
}

// Bind attaches the listener set for mode to element, driving target:
//
//	hover:  mouseenter -> Show, mouseleave -> Hide
//	click:  click -> Toggle (propagation stopped), outside click -> Hide
//	focus:  focus -> Show, blur -> Hide
//	manual: nothing
func Bind(mode Mode, element Element, target Target, options ...Option) *Binding {
	binding := &Binding{
		mode:    mode,
		element: element,
		target:  target,
		logger:  slog.Default(),
	}
	for _, option := range options {
		option(binding)
	}

	switch mode {
	case Hover:
		binding.listen(EventMouseEnter, func(*Event) { target.Show() })
		binding.listen(EventMouseLeave, func(*Event) { target.Hide() })
	case Click:
		binding.listen(EventClick, func(event *Event) {
			target.Toggle()
			event.StopPropagation()
		})
		if binding.body != nil {
			binding.disposer.Add(binding.body.register(binding))
		}
	case Focus:
		binding.listen(EventFocus, func(*Event) { target.Show() })
		binding.listen(EventBlur, func(*Event) { target.Hide() })
	case Manual:
	}

	binding.logger.Debug("trigger bound", "mode", mode.String(), "listeners", binding.disposer.Len())
	return binding
}

// Mode returns the mode the binding was created with.
func (binding *Binding) Mode() Mode { return binding.mode }

// Listeners returns how many registrations the binding still holds.
func (binding *Binding) Listeners() int { return binding.disposer.Len() }

// Release removes every listener the binding attached. It is safe to
// call more than once.
func (binding *Binding) Release() {
	binding.disposer.Dispose()
}

func (binding *Binding) listen(name string, handler Handler) {
	binding.disposer.Add(binding.element.On(name, handler))
}

// outside reports whether point is outside both the trigger element
// and the target's layer.
func (binding *Binding) outside(point geometry.Point) bool {
	if rect, ok := binding.element.Rect(); ok && rect.Contains(point) {
		return false
	}
	return !binding.target.Contains(point)
}
