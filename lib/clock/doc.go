// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for the overlay
// engine's timers.
//
// Production code holds a Clock field initialized with Real(). Tests
// use Fake(), whose time stands still until Advance is called:
//
//	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	stream := viewport.NewStream(source, viewport.WithClock(fake))
//	// ... emit events ...
//	fake.Advance(50 * time.Millisecond) // throttle window closes here
//
// AfterFunc callbacks registered on a FakeClock run synchronously in
// the goroutine that calls Advance, in deadline order, so a test can
// assert on their effects immediately after Advance returns.
package clock
