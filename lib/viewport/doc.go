// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package viewport broadcasts window resize and scroll events to the
// overlays that need to re-position when the visible area changes.
//
// A [Stream] wraps one [Source] (a window). Each [Stream.Subscribe]
// call gets an independent trailing-edge throttle: within one throttle
// window only the most recent event is delivered. Subscriptions are
// cheap; the source listener is shared and installed only while at
// least one subscription exists.
//
// Throttle timers come from an injected [clock.Clock]. When the real
// clock fires a timer on its own goroutine, the delivery is handed to
// the stream's [Dispatcher] so hosts with a single UI loop can run
// handlers there. A zero throttle delivers each event synchronously
// from the source callback, which already runs on that loop.
package viewport
