// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"time"
)

// TB is the subset of testing.TB the helpers need.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// RequireReceive reads one value from ch within timeout, or fails the
// test.
//
//	run := testutil.RequireReceive(t, loop, 5*time.Second, "waiting for throttled delivery")
func RequireReceive[T any](t TB, ch <-chan T, timeout time.Duration, msgAndArgs ...any) T {
	t.Helper()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatalf("channel closed before a value arrived: %s", describe(msgAndArgs))
		}
		return v
	case <-timer.C:
		t.Fatalf("timed out after %v: %s", timeout, describe(msgAndArgs))
	}
	panic("unreachable")
}

// RequireMessage returns the only message in mailbox, which must be a
// T, and empties the mailbox.
func RequireMessage[T any](t TB, mailbox *Mailbox) T {
	t.Helper()
	messages := mailbox.Take()
	if len(messages) != 1 {
		t.Fatalf("mailbox holds %d messages, want exactly one %T", len(messages), *new(T))
	}
	message, ok := messages[0].(T)
	if !ok {
		t.Fatalf("mailbox holds %T, want %T", messages[0], *new(T))
	}
	return message
}

// describe formats optional message arguments: a single value, or a
// format string followed by its args.
func describe(msgAndArgs []any) string {
	switch {
	case len(msgAndArgs) == 0:
		return "(no message)"
	case len(msgAndArgs) == 1:
		return fmt.Sprint(msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs...)
}
