// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package trigger maps a trigger mode to the element listeners that
// show and hide a target.
//
// [Bind] attaches the listeners for one [Mode] and returns a [Binding]
// whose Release removes exactly those listeners. Every mode's listener
// set is collected in a [Disposer], so no mode can leave a listener
// behind on release.
//
// Click mode closes on outside clicks. Rather than registering one
// document listener per binding, click-mode bindings share a
// [BodyDispatcher] that owns a single body-level listener. A click on a
// trigger element stops propagation so the same click that opens a
// target does not immediately close it.
//
// Everything here runs on the UI loop and is not safe for concurrent
// use.
package trigger
