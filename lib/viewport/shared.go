// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package viewport

import "sync"

var (
	sharedMu      sync.Mutex
	sharedStreams = map[Source]*Stream{}
)

// For returns the process-wide stream for source, creating it on first
// use with the given options. Later calls for the same source return
// the existing stream and ignore options, so every overlay in a window
// shares one listener set. Source values must be comparable; hosts pass
// a pointer.
func For(source Source, options ...Option) *Stream {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if stream, ok := sharedStreams[source]; ok {
		return stream
	}
	stream := NewStream(source, options...)
	sharedStreams[source] = stream
	return stream
}

// Forget drops the shared stream for source, typically when the window
// it belongs to closes. Existing subscriptions keep working against the
// dropped stream; the next For call creates a fresh one.
func Forget(source Source) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	delete(sharedStreams, source)
}
