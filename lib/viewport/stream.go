// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package viewport

import (
	"log/slog"
	"sync"
	"time"

	"github.com/bureau-foundation/overlay/lib/clock"
	"github.com/bureau-foundation/overlay/lib/geometry"
)

// DefaultThrottle is the throttle window overlays use unless
// configured otherwise.
const DefaultThrottle = 50 * time.Millisecond

// Kind distinguishes the raw event types merged into the stream.
type Kind uint8

const (
	Resize Kind = iota
	Scroll
)

// String returns "resize" or "scroll".
func (kind Kind) String() string {
	if kind == Scroll {
		return "scroll"
	}
	return "resize"
}

// Event is one viewport change, carrying the viewport as it was right
// after the change.
type Event struct {
	Kind     Kind
	Viewport geometry.Viewport
}

// Source is the window whose resize and scroll events feed a stream.
type Source interface {
	// Viewport returns the current viewport.
	Viewport() geometry.Viewport

	// Listen registers handler for every raw resize and scroll
	// event. The returned function removes the registration.
	Listen(handler func(Event)) (unlisten func())
}

// Dispatcher runs a throttled delivery on the UI loop. Those deliveries
// are produced on timer goroutines; a host with a single-threaded loop
// passes a Dispatcher that enqueues the function there. Unthrottled
// deliveries bypass it and run inside the source's callback.
type Dispatcher func(func())

// Subscriber is the subscription capability overlays depend on.
// *Stream implements it.
type Subscriber interface {
	Subscribe(throttle time.Duration, handler func(Event)) *Subscription
}

// Option configures a Stream.
type Option func(*Stream)

// WithClock sets the clock used for throttle timers.
func WithClock(c clock.Clock) Option {
	return func(stream *Stream) { stream.clock = c }
}

// WithDispatcher sets how deliveries reach subscribers.
func WithDispatcher(dispatch Dispatcher) Option {
	return func(stream *Stream) { stream.dispatch = dispatch }
}

// WithLogger sets the stream's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(stream *Stream) { stream.logger = logger }
}

// Stream merges a source's resize and scroll events and broadcasts
// them to any number of independent subscribers, each with its own
// trailing-edge throttle.
//
// The source listener is installed when the first subscription is
// created and removed when the last one is cancelled, so a window with
// many open overlays still has exactly one listener.
type Stream struct {
	source   Source
	clock    clock.Clock
	dispatch Dispatcher
	logger   *slog.Logger

	mu          sync.Mutex
	nextID      uint64
	subscribers map[uint64]*Subscription
	unlisten    func()
	installs    int
}

// NewStream creates a stream over source.
func NewStream(source Source, options ...Option) *Stream {
	stream := &Stream{
		source:      source,
		clock:       clock.Real(),
		dispatch:    func(function func()) { function() },
		logger:      slog.Default(),
		subscribers: make(map[uint64]*Subscription),
	}
	for _, option := range options {
		option(stream)
	}
	return stream
}

// Viewport returns the source's current viewport.
func (stream *Stream) Viewport() geometry.Viewport {
	return stream.source.Viewport()
}

// Subscribe registers handler for viewport changes.
//
// With a positive throttle, events are coalesced: the first event of a
// quiet period opens a window of that length, later events in the
// window replace it, and when the window closes the handler receives
// the latest one. With throttle <= 0 every raw event is delivered as it
// arrives.
func (stream *Stream) Subscribe(throttle time.Duration, handler func(Event)) *Subscription {
	stream.mu.Lock()
	defer stream.mu.Unlock()

	stream.nextID++
	subscription := &Subscription{
		stream:   stream,
		id:       stream.nextID,
		throttle: throttle,
		handler:  handler,
	}
	stream.subscribers[subscription.id] = subscription

	if stream.unlisten == nil {
		stream.unlisten = stream.source.Listen(stream.broadcast)
		stream.installs++
		stream.logger.Debug("viewport listener installed", "subscribers", len(stream.subscribers))
	}
	return subscription
}

// Subscribers returns the number of live subscriptions.
func (stream *Stream) Subscribers() int {
	stream.mu.Lock()
	defer stream.mu.Unlock()
	return len(stream.subscribers)
}

// Listening reports whether the source listener is installed.
func (stream *Stream) Listening() bool {
	stream.mu.Lock()
	defer stream.mu.Unlock()
	return stream.unlisten != nil
}

// Installs returns how many times the source listener has been
// installed over the stream's lifetime.
func (stream *Stream) Installs() int {
	stream.mu.Lock()
	defer stream.mu.Unlock()
	return stream.installs
}

// broadcast is the single listener registered on the source.
func (stream *Stream) broadcast(event Event) {
	stream.mu.Lock()
	var immediate []*Subscription
	for _, subscription := range stream.subscribers {
		if subscription.throttle <= 0 {
			immediate = append(immediate, subscription)
			continue
		}
		subscription.latest = event
		if subscription.timer == nil {
			subscription.timer = stream.clock.AfterFunc(subscription.throttle, subscription.flush)
		}
	}
	stream.mu.Unlock()

	// The source fires on the UI loop, so unthrottled subscribers run
	// here rather than through the dispatcher.
	for _, subscription := range immediate {
		subscription.run(event)
	}
}

// remove drops a subscription and releases the source listener when it
// was the last one.
func (stream *Stream) remove(subscription *Subscription) {
	stream.mu.Lock()
	if _, ok := stream.subscribers[subscription.id]; !ok {
		stream.mu.Unlock()
		return
	}
	delete(stream.subscribers, subscription.id)
	if subscription.timer != nil {
		subscription.timer.Stop()
		subscription.timer = nil
	}

	var unlisten func()
	if len(stream.subscribers) == 0 && stream.unlisten != nil {
		unlisten = stream.unlisten
		stream.unlisten = nil
	}
	stream.mu.Unlock()

	if unlisten != nil {
		unlisten()
		stream.logger.Debug("viewport listener released")
	}
}

// Subscription is a cancellable registration on a Stream.
type Subscription struct {
	stream   *Stream
	id       uint64
	throttle time.Duration
	handler  func(Event)

	// Guarded by stream.mu.
	latest    Event
	timer     *clock.Timer
	cancelled bool
}

// Cancel removes the subscription. Pending throttled deliveries are
// dropped, and a delivery already handed to the dispatcher becomes a
// no-op. Cancel is idempotent.
func (subscription *Subscription) Cancel() {
	if subscription == nil {
		return
	}
	subscription.stream.mu.Lock()
	if subscription.cancelled {
		subscription.stream.mu.Unlock()
		return
	}
	subscription.cancelled = true
	subscription.stream.mu.Unlock()

	subscription.stream.remove(subscription)
}

// Active reports whether Cancel has not been called.
func (subscription *Subscription) Active() bool {
	if subscription == nil {
		return false
	}
	subscription.stream.mu.Lock()
	defer subscription.stream.mu.Unlock()
	return !subscription.cancelled
}

// flush runs when the throttle window closes.
func (subscription *Subscription) flush() {
	stream := subscription.stream
	stream.mu.Lock()
	if subscription.cancelled {
		stream.mu.Unlock()
		return
	}
	event := subscription.latest
	subscription.timer = nil
	stream.mu.Unlock()

	subscription.deliver(event)
}

func (subscription *Subscription) deliver(event Event) {
	subscription.stream.dispatch(func() { subscription.run(event) })
}

func (subscription *Subscription) run(event Event) {
	if !subscription.Active() {
		return
	}
	subscription.handler(event)
}
