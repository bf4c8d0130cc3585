// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock is the slice of the time package the overlay engine needs:
// reading the current time and scheduling a one-shot callback. The
// viewport stream's throttle is built on AfterFunc, so swapping in
// Fake makes throttle windows fully deterministic in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc calls f once duration d has elapsed. The returned
	// Timer cancels the pending call. With a real clock f runs on its
	// own goroutine; with a fake clock f runs synchronously inside
	// Advance.
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a pending AfterFunc call.
type Timer struct {
	stop func() bool
}

// Stop cancels the call. It returns false if the callback already ran
// or the timer was already stopped.
func (timer *Timer) Stop() bool {
	if timer == nil || timer.stop == nil {
		return false
	}
	return timer.stop()
}
