// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package suggestion

import (
	"testing"
	"time"

	"github.com/bureau-foundation/overlay/lib/clock"
	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/placement"
	"github.com/bureau-foundation/overlay/lib/viewport"
)

func TestDecide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		viewport  geometry.Viewport
		offsetTop int
		clearance int
		want      placement.Placement
	}{
		{
			name:      "not enough room below",
			viewport:  geometry.Viewport{Width: 1024, Height: 700},
			offsetTop: 600,
			clearance: 156,
			want:      placement.Top,
		},
		{
			name:      "room below",
			viewport:  geometry.Viewport{Width: 1024, Height: 700},
			offsetTop: 300,
			clearance: 156,
			want:      placement.Bottom,
		},
		{
			name:      "exactly zero opens above",
			viewport:  geometry.Viewport{Height: 700},
			offsetTop: 544,
			clearance: 156,
			want:      placement.Top,
		},
		{
			name:      "scrolling down makes room",
			viewport:  geometry.Viewport{Height: 700, ScrollY: 100},
			offsetTop: 600,
			clearance: 156,
			want:      placement.Bottom,
		},
		{
			name:      "terminal rows",
			viewport:  geometry.Viewport{Width: 80, Height: 24},
			offsetTop: 18,
			clearance: 8,
			want:      placement.Top,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := Decide(test.viewport, test.offsetTop, test.clearance)
			if got != test.want {
				t.Errorf("Decide = %v, want %v", got, test.want)
			}
		})
	}
}

func TestDefaultClearance(t *testing.T) {
	t.Parallel()

	if DefaultClearance != 156 {
		t.Errorf("DefaultClearance = %d, want 156", DefaultClearance)
	}
}

type window struct {
	viewport geometry.Viewport
	handlers map[int]func(viewport.Event)
	nextID   int
}

func (w *window) Viewport() geometry.Viewport { return w.viewport }

func (w *window) Listen(handler func(viewport.Event)) func() {
	w.nextID++
	id := w.nextID
	w.handlers[id] = handler
	return func() { delete(w.handlers, id) }
}

func (w *window) scrollTo(y int) {
	w.viewport.ScrollY = y
	for _, handler := range w.handlers {
		handler(viewport.Event{Kind: viewport.Scroll, Viewport: w.viewport})
	}
}

type input struct {
	rect    geometry.Rect
	present bool
}

func (i *input) Rect() (geometry.Rect, bool) { return i.rect, i.present }

func newHarness(t *testing.T) (*Positioner, *window, *viewport.Stream, *clock.FakeClock, *[]placement.Placement) {
	t.Helper()

	w := &window{
		viewport: geometry.Viewport{Width: 1024, Height: 700},
		handlers: make(map[int]func(viewport.Event)),
	}
	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	stream := viewport.NewStream(w, viewport.WithClock(fake))
	var changes []placement.Placement
	positioner := NewPositioner(Config{
		Anchor:   &input{rect: geometry.Rect{Top: 600, Left: 20, Width: 300, Height: 30}, present: true},
		Viewport: w,
		Stream:   stream,
		OnChange: func(value placement.Placement) { changes = append(changes, value) },
	})
	return positioner, w, stream, fake, &changes
}

func TestPositionerMountDecidesImmediately(t *testing.T) {
	t.Parallel()

	positioner, _, stream, _, changes := newHarness(t)
	if positioner.Placement() != placement.Bottom {
		t.Fatalf("initial placement = %v, want bottom", positioner.Placement())
	}

	positioner.Mount()
	positioner.Mount()

	if positioner.Placement() != placement.Top {
		t.Errorf("placement after mount = %v, want top", positioner.Placement())
	}
	if len(*changes) != 1 || (*changes)[0] != placement.Top {
		t.Errorf("changes = %v, want [top]", *changes)
	}
	if stream.Subscribers() != 1 {
		t.Errorf("Subscribers = %d, want 1", stream.Subscribers())
	}
	if positioner.Clearance() != DefaultClearance {
		t.Errorf("Clearance = %d, want %d", positioner.Clearance(), DefaultClearance)
	}
}

func TestPositionerFollowsThrottledScroll(t *testing.T) {
	t.Parallel()

	positioner, w, _, fake, changes := newHarness(t)
	positioner.Mount()

	w.scrollTo(40)
	w.scrollTo(120)
	if positioner.Placement() != placement.Top {
		t.Fatal("placement changed before the throttle window closed")
	}

	fake.Advance(viewport.DefaultThrottle)
	if positioner.Placement() != placement.Bottom {
		t.Fatalf("placement = %v after scrolling down, want bottom", positioner.Placement())
	}
	if len(*changes) != 2 {
		t.Errorf("changes = %v, want [top bottom]", *changes)
	}
}

func TestPositionerUnmountReleasesSubscription(t *testing.T) {
	t.Parallel()

	positioner, w, stream, fake, _ := newHarness(t)
	positioner.Mount()
	positioner.Unmount()
	positioner.Unmount()

	if positioner.Mounted() || stream.Subscribers() != 0 || stream.Listening() {
		t.Fatalf("unmount left subscribers=%d listening=%v", stream.Subscribers(), stream.Listening())
	}

	w.scrollTo(200)
	fake.Advance(time.Second)
	if positioner.Placement() != placement.Top {
		t.Error("unmounted positioner reacted to a scroll")
	}
}

func TestPositionerKeepsPlacementWithoutAnchor(t *testing.T) {
	t.Parallel()

	anchor := &input{}
	positioner := NewPositioner(Config{
		Anchor:    anchor,
		Viewport:  &window{viewport: geometry.Viewport{Height: 10}},
		Clearance: 4,
	})
	positioner.Update()
	if positioner.Placement() != placement.Bottom {
		t.Errorf("placement = %v with no anchor, want the initial bottom", positioner.Placement())
	}

	anchor.rect = geometry.Rect{Top: 8, Height: 1}
	anchor.present = true
	positioner.Update()
	if positioner.Placement() != placement.Top {
		t.Errorf("placement = %v, want top", positioner.Placement())
	}
}
