// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// [Mailbox] stands in for a running bubbletea program: it collects the
// messages a screen, dispatcher, or log handler sends and feeds them
// back through an Update function when the test drains it. Tests drive
// time with clock.Fake and drain after each Advance, so throttled
// deliveries run on the test goroutine exactly where a program would
// run them.
//
// [RequireReceive] bounds waits on real timers with a timeout so a
// broken delivery fails the test instead of hanging it.
//
// Helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil
