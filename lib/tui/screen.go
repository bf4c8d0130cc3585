// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/overlay"
	"github.com/bureau-foundation/overlay/lib/trigger"
	"github.com/bureau-foundation/overlay/lib/viewport"
)

// ErrUnsupportedLayer is returned by Attach for layers the screen does
// not know how to draw.
var ErrUnsupportedLayer = errors.New("layer is not renderable")

// Renderable is a layer the screen can draw.
type Renderable interface {
	overlay.Layer
	Render() []string
	Visible() bool
	Embedded() bool
}

// dispatchMsg carries a viewport delivery onto the bubbletea loop.
type dispatchMsg struct {
	run func()
}

// ScreenOption configures a Screen.
type ScreenOption func(*Screen)

// WithTheme sets the palette for tooltips the screen's factory creates.
func WithTheme(theme Theme) ScreenOption {
	return func(screen *Screen) { screen.theme = theme }
}

// WithLogger sets the screen's logger.
func WithLogger(logger *slog.Logger) ScreenOption {
	return func(screen *Screen) { screen.logger = logger }
}

// WithReservedRows keeps rows at the bottom of the terminal out of the
// viewport, for a status or help line the caller draws.
func WithReservedRows(rows int) ScreenOption {
	return func(screen *Screen) { screen.reserved = max(rows, 0) }
}

// WithKeyMap replaces DefaultKeyMap.
func WithKeyMap(keys KeyMap) ScreenOption {
	return func(screen *Screen) { screen.keys = keys }
}

// WithScrollStep sets how many rows a wheel notch or arrow key
// scrolls.
func WithScrollStep(rows int) ScreenOption {
	return func(screen *Screen) { screen.scrollStep = max(rows, 1) }
}

// Screen is the terminal host for floating layers. It is the window a
// viewport stream listens to, the container tooltips attach to, and
// the event source for regions: mouse motion becomes mouseenter and
// mouseleave, presses become focus changes and clicks that bubble to
// the body region, and Tab moves focus.
//
// A Screen lives on the bubbletea loop. Only the dispatcher it hands
// out may be called from other goroutines.
type Screen struct {
	theme      Theme
	keys       KeyMap
	logger     *slog.Logger
	reserved   int
	scrollStep int

	width    int
	height   int
	document geometry.Size
	scrollX  int
	scrollY  int

	listeners    []sourceListener
	nextListener int

	body    *Region
	regions []*Region
	hovered *Region
	focused *Region
	layers  []Renderable

	send atomic.Pointer[func(tea.Msg)]
}

type sourceListener struct {
	id      int
	handler func(viewport.Event)
}

// NewScreen creates a screen of the given terminal size. The size is
// normally corrected by the first tea.WindowSizeMsg.
func NewScreen(width, height int, options ...ScreenOption) *Screen {
	screen := &Screen{
		theme:      DefaultTheme,
		keys:       DefaultKeyMap,
		logger:     slog.Default(),
		scrollStep: 1,
		width:      max(width, 0),
		height:     max(height, 0),
		body:       &Region{name: "body", mounted: true},
	}
	for _, option := range options {
		option(screen)
	}
	screen.layoutBody()
	return screen
}

// Theme returns the screen's palette.
func (screen *Screen) Theme() Theme { return screen.theme }

// KeyMap returns the keys the screen handles.
func (screen *Screen) KeyMap() KeyMap { return screen.keys }

// Body returns the region covering the whole document. Clicks that are
// not stopped by a region's handlers reach it.
func (screen *Screen) Body() *Region { return screen.body }

// Viewport returns the visible part of the document: the terminal
// minus reserved rows, offset by the scroll position.
func (screen *Screen) Viewport() geometry.Viewport {
	return geometry.Viewport{
		Width:   screen.width,
		Height:  max(screen.height-screen.reserved, 0),
		ScrollX: screen.scrollX,
		ScrollY: screen.scrollY,
	}
}

// Listen registers handler for every resize and scroll.
func (screen *Screen) Listen(handler func(viewport.Event)) func() {
	screen.nextListener++
	id := screen.nextListener
	screen.listeners = append(screen.listeners, sourceListener{id: id, handler: handler})
	return func() {
		for index, listener := range screen.listeners {
			if listener.id == id {
				screen.listeners = append(screen.listeners[:index], screen.listeners[index+1:]...)
				return
			}
		}
	}
}

// Dispatcher returns the function viewport streams use to run
// throttled deliveries on the bubbletea loop. Those arrive on timer
// goroutines, so a blocking program.Send is safe. Deliveries made
// before SetProgram or SetSender are dropped.
func (screen *Screen) Dispatcher() viewport.Dispatcher {
	return func(run func()) {
		send := screen.send.Load()
		if send == nil {
			screen.logger.Debug("dropping viewport delivery, no program attached")
			return
		}
		(*send)(dispatchMsg{run: run})
	}
}

// SetProgram routes dispatched deliveries through program.Send.
func (screen *Screen) SetProgram(program *tea.Program) {
	screen.SetSender(program.Send)
}

// SetSender routes dispatched deliveries through send.
func (screen *Screen) SetSender(send func(tea.Msg)) {
	screen.send.Store(&send)
}

// SetDocumentSize sets the scrollable extent and clamps the scroll
// position to it.
func (screen *Screen) SetDocumentSize(size geometry.Size) {
	screen.document = size
	screen.layoutBody()
	x, y := screen.clamp(screen.scrollX, screen.scrollY)
	if x != screen.scrollX || y != screen.scrollY {
		screen.scrollX, screen.scrollY = x, y
		screen.emit(viewport.Scroll)
	}
}

// Resize changes the terminal size and notifies listeners.
func (screen *Screen) Resize(width, height int) {
	screen.width = max(width, 0)
	screen.height = max(height, 0)
	screen.scrollX, screen.scrollY = screen.clamp(screen.scrollX, screen.scrollY)
	screen.layoutBody()
	screen.emit(viewport.Resize)
}

// ScrollTo moves the viewport, clamped to the document. It reports
// whether the position changed; listeners hear only actual changes.
func (screen *Screen) ScrollTo(x, y int) bool {
	x, y = screen.clamp(x, y)
	if x == screen.scrollX && y == screen.scrollY {
		return false
	}
	screen.scrollX, screen.scrollY = x, y
	screen.emit(viewport.Scroll)
	return true
}

// ScrollBy moves the viewport by a delta.
func (screen *Screen) ScrollBy(dx, dy int) bool {
	return screen.ScrollTo(screen.scrollX+dx, screen.scrollY+dy)
}

func (screen *Screen) clamp(x, y int) (int, int) {
	view := screen.Viewport()
	maxX := max(screen.document.Width-view.Width, 0)
	maxY := max(screen.document.Height-view.Height, 0)
	return min(max(x, 0), maxX), min(max(y, 0), maxY)
}

func (screen *Screen) layoutBody() {
	view := screen.Viewport()
	screen.body.rect = geometry.Rect{
		Width:  max(screen.document.Width, view.Width),
		Height: max(screen.document.Height, view.Height),
	}
}

func (screen *Screen) emit(kind viewport.Kind) {
	event := viewport.Event{Kind: kind, Viewport: screen.Viewport()}
	listeners := append([]sourceListener(nil), screen.listeners...)
	for _, listener := range listeners {
		listener.handler(event)
	}
}

// Attach adds a layer to the screen. Only Renderable layers can be
// attached; attaching the same layer twice is harmless.
func (screen *Screen) Attach(layer overlay.Layer) error {
	renderable, ok := layer.(Renderable)
	if !ok {
		return fmt.Errorf("attaching %T: %w", layer, ErrUnsupportedLayer)
	}
	for _, attached := range screen.layers {
		if attached == renderable {
			return nil
		}
	}
	screen.layers = append(screen.layers, renderable)
	return nil
}

// Detach removes a layer. It is gone from the next View.
func (screen *Screen) Detach(layer overlay.Layer) {
	for index, attached := range screen.layers {
		if overlay.Layer(attached) == layer {
			screen.layers = append(screen.layers[:index], screen.layers[index+1:]...)
			return
		}
	}
}

// Layers returns the number of attached layers.
func (screen *Screen) Layers() int { return len(screen.layers) }

// Factory returns a layer factory that creates tooltips in the screen's
// theme, at most maxWidth columns wide.
func (screen *Screen) Factory(maxWidth int) overlay.Factory {
	return overlay.FactoryFunc(func(content string, options overlay.LayerOptions) (overlay.Layer, error) {
		return NewTooltip(content, options, screen.theme, maxWidth), nil
	})
}

// AddRegion creates a mounted region over rect. Regions added later
// sit on top of earlier ones for hit-testing.
func (screen *Screen) AddRegion(name string, rect geometry.Rect) *Region {
	region := &Region{name: name, rect: rect, mounted: true}
	screen.regions = append(screen.regions, region)
	return region
}

// RemoveRegion unmounts region and forgets it. Hover and focus on it
// are dropped without events, as when an element leaves the DOM.
func (screen *Screen) RemoveRegion(region *Region) {
	region.mounted = false
	for index, candidate := range screen.regions {
		if candidate == region {
			screen.regions = append(screen.regions[:index], screen.regions[index+1:]...)
			break
		}
	}
	if screen.hovered == region {
		screen.hovered = nil
	}
	if screen.focused == region {
		screen.focused = nil
	}
}

// RegionAt returns the topmost mounted region containing point, or nil.
func (screen *Screen) RegionAt(point geometry.Point) *Region {
	for index := len(screen.regions) - 1; index >= 0; index-- {
		region := screen.regions[index]
		if region.mounted && region.rect.Contains(point) {
			return region
		}
	}
	return nil
}

// Hovered returns the region under the pointer, or nil.
func (screen *Screen) Hovered() *Region { return screen.hovered }

// Focused returns the focused region, or nil.
func (screen *Screen) Focused() *Region { return screen.focused }

// Hover moves the pointer to point in document coordinates, firing
// mouseleave on the region it left and mouseenter on the one it
// entered.
func (screen *Screen) Hover(point geometry.Point) {
	screen.hoverRegion(screen.RegionAt(point), point)
}

func (screen *Screen) hoverRegion(target *Region, point geometry.Point) {
	if target == screen.hovered {
		return
	}
	previous := screen.hovered
	screen.hovered = target
	if previous != nil {
		previous.fire(&trigger.Event{Name: trigger.EventMouseLeave, Point: point})
	}
	if target != nil {
		target.fire(&trigger.Event{Name: trigger.EventMouseEnter, Point: point})
	}
}

// Click presses at point in document coordinates. Focus moves first,
// to the clicked region when it is focusable and away from the current
// one otherwise. The click then fires on the region and, unless a
// handler stopped propagation, on the body.
func (screen *Screen) Click(point geometry.Point) {
	target := screen.RegionAt(point)
	screen.hoverRegion(target, point)
	if target != nil && target.focusable {
		screen.Focus(target)
	} else {
		screen.Focus(nil)
	}
	screen.dispatchClick(target, point)
}

func (screen *Screen) dispatchClick(target *Region, point geometry.Point) {
	event := &trigger.Event{Name: trigger.EventClick, Point: point}
	if target != nil {
		target.fire(event)
	}
	if !event.Stopped() {
		screen.body.fire(event)
	}
}

// Focus moves focus to region, firing blur on the previously focused
// region and focus on the new one. A nil region clears focus.
func (screen *Screen) Focus(region *Region) {
	if region == screen.focused {
		return
	}
	previous := screen.focused
	screen.focused = region
	if previous != nil {
		previous.fire(&trigger.Event{Name: trigger.EventBlur})
	}
	if region != nil {
		region.fire(&trigger.Event{Name: trigger.EventFocus})
	}
}

// FocusNext moves focus by delta through the mounted focusable regions
// in the order they were added, wrapping at either end.
func (screen *Screen) FocusNext(delta int) {
	var focusable []*Region
	current := -1
	for _, region := range screen.regions {
		if !region.mounted || !region.focusable {
			continue
		}
		if region == screen.focused {
			current = len(focusable)
		}
		focusable = append(focusable, region)
	}
	if len(focusable) == 0 {
		return
	}
	next := 0
	if current >= 0 {
		next = ((current+delta)%len(focusable) + len(focusable)) % len(focusable)
	} else if delta < 0 {
		next = len(focusable) - 1
	}
	screen.Focus(focusable[next])
}

// Activate clicks the focused region without moving the pointer.
func (screen *Screen) Activate() {
	if screen.focused == nil {
		return
	}
	point := geometry.Point{X: screen.focused.rect.Left, Y: screen.focused.rect.Top}
	screen.dispatchClick(screen.focused, point)
}

// Update handles the messages the screen owns. It returns true when
// the message was consumed; window size messages are handled and
// still reported as unconsumed so the caller can lay out too.
func (screen *Screen) Update(message tea.Msg) bool {
	switch message := message.(type) {
	case dispatchMsg:
		message.run()
		return true
	case tea.WindowSizeMsg:
		screen.Resize(message.Width, message.Height)
		return false
	case tea.MouseMsg:
		return screen.HandleMouse(message)
	case tea.KeyMsg:
		return screen.HandleKey(message)
	}
	return false
}

// HandleMouse converts a terminal mouse event into scrolling, hover,
// focus, and click events. Events in the reserved rows leave the
// document: the pointer un-hovers and presses there are ignored.
func (screen *Screen) HandleMouse(message tea.MouseMsg) bool {
	view := screen.Viewport()
	cell := geometry.Point{X: message.X, Y: message.Y}
	inside := cell.X >= 0 && cell.X < view.Width && cell.Y >= 0 && cell.Y < view.Height
	point := view.ToDocument(cell)

	switch {
	case message.Button == tea.MouseButtonWheelUp:
		screen.ScrollBy(0, -screen.scrollStep)
	case message.Button == tea.MouseButtonWheelDown:
		screen.ScrollBy(0, screen.scrollStep)
	case message.Action == tea.MouseActionMotion:
		if inside {
			screen.Hover(point)
		} else {
			screen.hoverRegion(nil, point)
		}
	case message.Button == tea.MouseButtonLeft && message.Action == tea.MouseActionPress:
		if !inside {
			return false
		}
		screen.Click(point)
	default:
		return false
	}
	return true
}

// HandleKey applies the screen's key map.
func (screen *Screen) HandleKey(message tea.KeyMsg) bool {
	switch {
	case key.Matches(message, screen.keys.ScrollUp):
		screen.ScrollBy(0, -screen.scrollStep)
	case key.Matches(message, screen.keys.ScrollDown):
		screen.ScrollBy(0, screen.scrollStep)
	case key.Matches(message, screen.keys.ScrollLeft):
		screen.ScrollBy(-screen.scrollStep, 0)
	case key.Matches(message, screen.keys.ScrollRight):
		screen.ScrollBy(screen.scrollStep, 0)
	case key.Matches(message, screen.keys.PageUp):
		screen.ScrollBy(0, -max(screen.Viewport().Height-1, 1))
	case key.Matches(message, screen.keys.PageDown):
		screen.ScrollBy(0, max(screen.Viewport().Height-1, 1))
	case key.Matches(message, screen.keys.FocusNext):
		screen.FocusNext(1)
	case key.Matches(message, screen.keys.FocusPrevious):
		screen.FocusNext(-1)
	case key.Matches(message, screen.keys.Activate):
		if screen.focused == nil {
			return false
		}
		screen.Activate()
	default:
		return false
	}
	return true
}

// View renders the viewport: the visible slice of document, the
// hovered region in bold, embedded layers, then floating layers on
// top. document holds one rendered line per document row.
func (screen *Screen) View(document []string) string {
	view := screen.Viewport()
	frame := make([]string, view.Height)
	for row := range frame {
		line := ""
		if index := view.ScrollY + row; index < len(document) {
			line = document[index]
		}
		if view.ScrollX > 0 {
			line = ansi.TruncateLeft(line, view.ScrollX, "")
		}
		frame[row] = FitLine(line, view.Width)
	}

	if screen.hovered != nil {
		rect := screen.hovered.rect
		origin := view.ToScreen(geometry.Point{X: rect.Left, Y: rect.Top})
		for row := origin.Y; row < origin.Y+rect.Height; row++ {
			Embolden(frame, row, max(origin.X, 0), origin.X+rect.Width)
		}
	}

	for _, embedded := range []bool{true, false} {
		for _, layer := range screen.layers {
			if !layer.Visible() || layer.Embedded() != embedded {
				continue
			}
			bounds := layer.Bounds()
			origin := view.ToScreen(geometry.Point{X: bounds.Left, Y: bounds.Top})
			Splice(frame, layer.Render(), origin.X, origin.Y, view.Width)
		}
	}

	return strings.Join(frame, "\n")
}
