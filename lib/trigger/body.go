// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package trigger

import (
	"log/slog"
)

// BodyDispatcher owns the one document-level click listener shared by
// every click-mode binding on a page. A click that reaches the body
// closes each open click-mode target the click landed outside of.
//
// The listener is registered on the body when the first binding
// registers and removed when the last one releases.
type BodyDispatcher struct {
	body   Element
	logger *slog.Logger

	bindings []*Binding
	unlisten func()
	installs int
}

// NewBodyDispatcher creates a dispatcher over body. Nothing is
// registered on body until a click-mode binding uses the dispatcher.
func NewBodyDispatcher(body Element, logger *slog.Logger) *BodyDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &BodyDispatcher{body: body, logger: logger}
}

// Bindings returns the number of registered click-mode bindings.
func (dispatcher *BodyDispatcher) Bindings() int { return len(dispatcher.bindings) }

// Listening reports whether the body listener is installed.
func (dispatcher *BodyDispatcher) Listening() bool { return dispatcher.unlisten != nil }

// Installs returns how many times the body listener has been installed.
func (dispatcher *BodyDispatcher) Installs() int { return dispatcher.installs }

// register adds binding and returns the function that removes it.
func (dispatcher *BodyDispatcher) register(binding *Binding) func() {
	dispatcher.bindings = append(dispatcher.bindings, binding)
	if dispatcher.unlisten == nil {
		dispatcher.unlisten = dispatcher.body.On(EventClick, dispatcher.handle)
		dispatcher.installs++
		dispatcher.logger.Debug("body click listener installed")
	}

	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		dispatcher.unregister(binding)
	}
}

func (dispatcher *BodyDispatcher) unregister(binding *Binding) {
	for index, candidate := range dispatcher.bindings {
		if candidate == binding {
			dispatcher.bindings = append(dispatcher.bindings[:index], dispatcher.bindings[index+1:]...)
			break
		}
	}
	if len(dispatcher.bindings) == 0 && dispatcher.unlisten != nil {
		dispatcher.unlisten()
		dispatcher.unlisten = nil
		dispatcher.logger.Debug("body click listener released")
	}
}

func (dispatcher *BodyDispatcher) handle(event *Event) {
	if event.Stopped() {
		return
	}
	// Hide may release bindings (a target that destroys itself on
	// close), so iterate over a snapshot.
	bindings := append([]*Binding(nil), dispatcher.bindings...)
	for _, binding := range bindings {
		if !binding.target.Visible() {
			continue
		}
		if binding.outside(event.Point) {
			binding.target.Hide()
		}
	}
}
