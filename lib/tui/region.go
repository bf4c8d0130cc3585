// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/trigger"
)

// Region is a rectangle of the document that receives pointer and
// focus events: a button, an input, or the document body. It is the
// terminal counterpart of a DOM element and serves as both a trigger
// element and an overlay anchor.
type Region struct {
	name      string
	rect      geometry.Rect
	mounted   bool
	focusable bool

	handlers []registration
	nextID   int
}

type registration struct {
	id      int
	name    string
	handler trigger.Handler
}

// Name returns the region's name, used in logs.
func (region *Region) Name() string { return region.name }

// Rect returns the region's document rectangle, or false while the
// region is unmounted.
func (region *Region) Rect() (geometry.Rect, bool) {
	if !region.mounted {
		return geometry.Rect{}, false
	}
	return region.rect, true
}

// SetRect moves the region. Overlays anchored to it pick up the change
// on their next reposition.
func (region *Region) SetRect(rect geometry.Rect) { region.rect = rect }

// SetMounted mounts or unmounts the region. An unmounted region is
// skipped by hit-testing and reports no rectangle.
func (region *Region) SetMounted(mounted bool) { region.mounted = mounted }

// Mounted reports whether the region is mounted.
func (region *Region) Mounted() bool { return region.mounted }

// SetFocusable controls whether clicks and Tab can focus the region.
func (region *Region) SetFocusable(focusable bool) { region.focusable = focusable }

// Focusable reports whether the region can take focus.
func (region *Region) Focusable() bool { return region.focusable }

// On registers handler for events named name and returns the function
// that removes the registration.
func (region *Region) On(name string, handler trigger.Handler) func() {
	region.nextID++
	id := region.nextID
	region.handlers = append(region.handlers, registration{id: id, name: name, handler: handler})
	return func() {
		for index, entry := range region.handlers {
			if entry.id == id {
				region.handlers = append(region.handlers[:index], region.handlers[index+1:]...)
				return
			}
		}
	}
}

// Listeners returns the number of live registrations.
func (region *Region) Listeners() int { return len(region.handlers) }

// fire runs the handlers registered for event.Name in registration
// order. A handler removed by an earlier one during the same dispatch
// does not run.
func (region *Region) fire(event *trigger.Event) {
	handlers := make([]registration, 0, len(region.handlers))
	for _, entry := range region.handlers {
		if entry.name == event.Name {
			handlers = append(handlers, entry)
		}
	}
	for _, entry := range handlers {
		if region.registered(entry.id) {
			entry.handler(event)
		}
	}
}

func (region *Region) registered(id int) bool {
	for _, entry := range region.handlers {
		if entry.id == id {
			return true
		}
	}
	return false
}
