// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/junegunn/fzf/src/util"

	"github.com/bureau-foundation/overlay/lib/config"
	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/overlay"
	"github.com/bureau-foundation/overlay/lib/placement"
	"github.com/bureau-foundation/overlay/lib/suggestion"
	"github.com/bureau-foundation/overlay/lib/trigger"
	"github.com/bureau-foundation/overlay/lib/tui"
	"github.com/bureau-foundation/overlay/lib/viewport"
)

// Page layout in document rows and columns.
const (
	documentHeight = 64
	buttonRow      = 3
	searchRow      = 18
	searchWidth    = 32
	flipRow        = documentHeight - 3

	// panelClearance is a full suggestion panel plus the input row.
	panelClearance = tui.DefaultPanelRows + 2
)

// button is a document region with a tooltip attached.
type button struct {
	label     string
	region    *tui.Region
	directive *trigger.Directive
}

type model struct {
	screen *tui.Screen
	keys   keyMap
	help   help.Model
	logger *slog.Logger

	settings config.Tooltip
	buttons  []*button
	manual   *button
	flip     *button

	search       textinput.Model
	searchRegion *tui.Region
	panel        tui.SuggestionPanel
	panelRegion  *tui.Region
	positioner   *suggestion.Positioner
	searching    bool
	candidates   []string
	slab         *util.Slab

	// pending collects commands produced inside region event handlers,
	// which cannot return them directly.
	pending []tea.Cmd

	status      string
	statusLevel slog.Level
	statusUntil time.Time
}

func newModel(screen *tui.Screen, stream *viewport.Stream, settings config.Tooltip, clearance int, logger *slog.Logger) *model {
	m := &model{
		screen:   screen,
		keys:     defaultKeyMap,
		help:     help.New(),
		logger:   logger,
		settings: settings,
		slab:     util.MakeSlab(100*1024, 2048),
	}
	for _, value := range placement.All() {
		m.candidates = append(m.candidates, value.String())
	}

	body := trigger.NewBodyDispatcher(screen.Body(), logger)
	newButton := func(label string, mode trigger.Mode, focusable bool, content string) *button {
		region := screen.AddRegion(label, geometry.Rect{Height: 1, Width: ansi.StringWidth(label)})
		region.SetFocusable(focusable)
		directive := trigger.NewDirective(trigger.DirectiveConfig{
			Mode:    mode,
			Element: region,
			Body:    body,
			Overlay: overlay.Config{
				Factory:   screen.Factory(tui.DefaultTooltipWidth),
				Host:      screen,
				Viewport:  screen,
				Stream:    stream,
				Throttle:  settings.Throttle,
				Content:   content,
				Placement: settings.Placement,
				Options:   settings.Options,
			},
			Logger: logger,
		})
		created := &button{label: label, region: region, directive: directive}
		m.buttons = append(m.buttons, created)
		return created
	}

	newButton("[ hover ]", trigger.Hover, false,
		"**Hover** trigger\n\nShown while the pointer is over the button.")
	newButton("[ click ]", trigger.Click, true,
		"**Click** trigger\n\nClick again, or anywhere outside, to close.")
	newButton("[ focus ]", trigger.Focus, true,
		"**Focus** trigger\n\nPress `Tab` to move focus here and away.")
	m.manual = newButton("[ manual ]", trigger.Manual, false,
		"**Manual** trigger\n\nOnly the `m` key opens and closes this one.")
	m.flip = newButton("[ flip ]", settings.Mode, true,
		"Near the bottom of the page there is no room below, so this tooltip flips above the button.\n\n"+
			"- scroll with the wheel\n- resize the terminal")

	m.search = textinput.New()
	m.search.Prompt = "> "
	m.search.Placeholder = "filter placements"
	m.search.Width = searchWidth - 3
	m.searchRegion = screen.AddRegion("search", geometry.Rect{Height: 1, Width: searchWidth})
	m.searchRegion.SetFocusable(true)
	m.searchRegion.On(trigger.EventFocus, func(*trigger.Event) { m.openSearch() })
	m.searchRegion.On(trigger.EventBlur, func(*trigger.Event) { m.closeSearch() })

	m.panel.Title = "Placements"
	m.panelRegion = screen.AddRegion("suggestions", geometry.Rect{})
	m.panelRegion.SetMounted(false)
	m.panelRegion.On(trigger.EventClick, func(event *trigger.Event) { m.pickAt(event.Point) })

	m.positioner = suggestion.NewPositioner(suggestion.Config{
		Anchor:    m.searchRegion,
		Viewport:  screen,
		Stream:    stream,
		Clearance: clearance,
		Throttle:  settings.Throttle,
		Logger:    logger,
	})

	m.layout()
	return m
}

func (m *model) Init() tea.Cmd { return nil }

// Close destroys every tooltip and releases the panel's subscription.
func (m *model) Close() {
	m.positioner.Unmount()
	for _, b := range m.buttons {
		b.directive.Destroy()
	}
}

func (m *model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(message)
	m.placePanel()
	if len(m.pending) > 0 {
		cmd = tea.Batch(append(m.pending, cmd)...)
		m.pending = nil
	}
	return m, cmd
}

func (m *model) update(message tea.Msg) tea.Cmd {
	switch message := message.(type) {
	case tui.LogRecordMsg:
		return m.notify(message.Summary, message.Level)

	case tui.LogRecordFadeMsg:
		if !time.Now().Before(m.statusUntil) {
			m.status = ""
		}
		return nil

	case tea.WindowSizeMsg:
		m.screen.Update(message)
		m.help.Width = message.Width
		m.layout()
		return nil

	case tea.KeyMsg:
		if message.Type == tea.KeyCtrlC {
			return tea.Quit
		}
		if m.searching {
			return m.handleSearchKey(message)
		}
		return m.handleKey(message)
	}

	m.screen.Update(message)
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(message)
		return cmd
	}
	return nil
}

func (m *model) handleKey(message tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(message, m.keys.Quit):
		return tea.Quit
	case key.Matches(message, m.keys.Manual):
		m.manual.directive.Toggle()
	case key.Matches(message, m.keys.Placement):
		all := placement.All()
		next := all[(slices.Index(all, m.settings.Placement)+1)%len(all)]
		m.setPlacement(next)
		return m.notify("placement: "+next.String(), slog.LevelInfo)
	case key.Matches(message, m.keys.Theme):
		themes := overlay.Themes()
		next := themes[(slices.Index(themes, m.settings.Options.Theme)+1)%len(themes)]
		m.settings.Options.Theme = next
		for _, b := range m.buttons {
			b.directive.Overlay().SetTheme(next)
		}
		return m.notify("theme: "+string(next), slog.LevelInfo)
	case key.Matches(message, m.keys.Arrow):
		m.settings.Options.HasArrow = !m.settings.Options.HasArrow
		for _, b := range m.buttons {
			b.directive.Overlay().SetHasArrow(m.settings.Options.HasArrow)
		}
		return m.notify(fmt.Sprintf("arrow: %t", m.settings.Options.HasArrow), slog.LevelInfo)
	case key.Matches(message, m.keys.Embedded):
		m.settings.Options.Embedded = !m.settings.Options.Embedded
		for _, b := range m.buttons {
			b.directive.Overlay().SetEmbedded(m.settings.Options.Embedded)
		}
		return m.notify(fmt.Sprintf("embedded: %t", m.settings.Options.Embedded), slog.LevelInfo)
	case key.Matches(message, m.keys.Search):
		m.screen.Focus(m.searchRegion)
	default:
		m.screen.Update(message)
	}
	return nil
}

func (m *model) handleSearchKey(message tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(message, m.keys.Leave):
		m.screen.Focus(nil)
	case key.Matches(message, m.keys.Up):
		m.panel.MoveUp()
	case key.Matches(message, m.keys.Down):
		m.panel.MoveDown()
	case key.Matches(message, m.keys.Select):
		if selected, ok := m.panel.Selected(); ok {
			return m.choose(selected)
		}
	case key.Matches(message, m.screen.KeyMap().FocusNext, m.screen.KeyMap().FocusPrevious):
		m.screen.Update(message)
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(message)
		m.refreshSuggestions()
		return cmd
	}
	return nil
}

// openSearch runs when the search region gains focus.
func (m *model) openSearch() {
	m.searching = true
	m.pending = append(m.pending, m.search.Focus())
	m.refreshSuggestions()
	m.positioner.Mount()
	m.panelRegion.SetMounted(true)
}

// closeSearch runs when the search region loses focus. The panel's
// last position is kept so a click that caused the blur can still
// pick the row under it.
func (m *model) closeSearch() {
	m.searching = false
	m.search.Blur()
	m.positioner.Unmount()
	m.panelRegion.SetMounted(false)
}

func (m *model) refreshSuggestions() {
	ranked := tui.RankFuzzy(m.candidates, m.search.Value(), m.slab)
	items := make([]tui.Suggestion, len(ranked))
	for index, entry := range ranked {
		items[index] = tui.Suggestion{Label: entry.Text, Positions: entry.Positions}
	}
	m.panel.SetItems(items)
	m.positioner.Update()
}

func (m *model) pickAt(point geometry.Point) {
	index := m.panel.ItemAt(point, searchWidth)
	if index < 0 {
		return
	}
	m.pending = append(m.pending, m.choose(m.panel.Items[index]))
}

// choose applies a suggestion and leaves the search box.
func (m *model) choose(selected tui.Suggestion) tea.Cmd {
	value, ok := placement.Parse(selected.Label)
	if !ok {
		m.logger.Warn("suggestion is not a placement", "label", selected.Label)
		return nil
	}
	m.setPlacement(value)
	m.search.SetValue("")
	m.screen.Focus(nil)
	return m.notify("placement: "+value.String(), slog.LevelInfo)
}

func (m *model) setPlacement(value placement.Placement) {
	m.settings.Placement = value
	for _, b := range m.buttons {
		b.directive.SetPlacement(value)
	}
}

// notify shows text on the status line until it fades.
func (m *model) notify(text string, level slog.Level) tea.Cmd {
	m.status = text
	m.statusLevel = level
	m.statusUntil = time.Now().Add(tui.LogRecordFadeDelay)
	return tea.Tick(tui.LogRecordFadeDelay, func(time.Time) tea.Msg { return tui.LogRecordFadeMsg{} })
}

// layout positions regions for the current terminal width and moves
// any open tooltip with them.
func (m *model) layout() {
	width := max(m.screen.Viewport().Width, searchWidth+4)
	m.screen.SetDocumentSize(geometry.Size{Width: width, Height: documentHeight})

	column := 2
	for _, b := range m.buttons {
		if b == m.flip {
			continue
		}
		b.region.SetRect(geometry.Rect{Top: buttonRow, Left: column, Width: ansi.StringWidth(b.label), Height: 1})
		column += ansi.StringWidth(b.label) + 2
	}
	flipWidth := ansi.StringWidth(m.flip.label)
	m.flip.region.SetRect(geometry.Rect{Top: flipRow, Left: max(width-flipWidth-4, 0), Width: flipWidth, Height: 1})
	m.searchRegion.SetRect(geometry.Rect{Top: searchRow, Left: 2, Width: searchWidth, Height: 1})

	for _, b := range m.buttons {
		b.directive.Overlay().Reposition()
	}
	m.positioner.Update()
}

// placePanel moves the suggestion panel next to the search box on the
// side the positioner chose.
func (m *model) placePanel() {
	if !m.searching {
		return
	}
	rect, _ := m.searchRegion.Rect()
	m.panel.Place(rect, m.positioner.Placement())
	m.panelRegion.SetRect(m.panel.Bounds(searchWidth))
}

func (m *model) View() string {
	return m.screen.View(m.document()) + "\n" + m.statusLine()
}

// document renders the page, one line per document row.
func (m *model) document() []string {
	theme := m.screen.Theme()
	width := max(m.screen.Viewport().Width, searchWidth+4)
	lines := make([]string, documentHeight)
	for index := range lines {
		lines[index] = strings.Repeat(" ", width)
	}

	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	title := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	tui.Splice(lines, []string{title.Render("overlay demo")}, 2, 0, width)
	tui.Splice(lines, []string{faint.Render("hover, click, or tab to a button; scroll to watch tooltips flip")}, 2, 1, width)

	for row := 8; row < documentHeight-4; row += 8 {
		tui.Splice(lines, []string{faint.Render(fmt.Sprintf("·· row %d", row))}, 2, row, width)
	}

	for _, b := range m.buttons {
		style := lipgloss.NewStyle().Foreground(theme.NormalText).Background(theme.SelectedBackground)
		if m.screen.Focused() == b.region {
			style = style.Foreground(theme.Accent).Bold(true)
		}
		if b.directive.Visible() {
			style = style.Foreground(theme.SelectedForeground)
		}
		rect, _ := b.region.Rect()
		tui.Splice(lines, []string{style.Render(b.label)}, rect.Left, rect.Top, width)
	}

	searchRect, _ := m.searchRegion.Rect()
	tui.Splice(lines, []string{faint.Render("search placements (/)")}, searchRect.Left, searchRect.Top-1, width)
	input := lipgloss.NewStyle().Background(theme.PanelBackground).Render(tui.FitLine(m.search.View(), searchWidth))
	tui.Splice(lines, []string{input}, searchRect.Left, searchRect.Top, width)

	if m.searching {
		tui.Splice(lines, m.panel.Render(theme, searchWidth), m.panel.Origin.X, m.panel.Origin.Y, width)
	}
	return lines
}

// statusLine is the reserved bottom row: a fading notice or key help.
func (m *model) statusLine() string {
	theme := m.screen.Theme()
	width := m.screen.Viewport().Width
	if m.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.HelpText)
		switch {
		case m.statusLevel >= slog.LevelError:
			style = style.Foreground(lipgloss.Color("196"))
		case m.statusLevel >= slog.LevelWarn:
			style = style.Foreground(theme.Accent)
		}
		return tui.FitLine(style.Render(m.status), width)
	}
	bindings := m.keys.ShortHelp()
	if m.searching {
		bindings = m.keys.SearchHelp()
	}
	return tui.FitLine(m.help.ShortHelpView(bindings), width)
}
