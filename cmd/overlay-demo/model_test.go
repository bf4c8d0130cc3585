// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/overlay/lib/clock"
	"github.com/bureau-foundation/overlay/lib/config"
	"github.com/bureau-foundation/overlay/lib/placement"
	"github.com/bureau-foundation/overlay/lib/testutil"
	"github.com/bureau-foundation/overlay/lib/tui"
	"github.com/bureau-foundation/overlay/lib/viewport"
)

func newTestModel(t *testing.T, height int) (*model, *clock.FakeClock, *testutil.Mailbox) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
	screen := tui.NewScreen(80, height, tui.WithReservedRows(1), tui.WithLogger(logger))
	fake := clock.Fake(time.Unix(0, 0))
	inbox := &testutil.Mailbox{}
	screen.SetSender(inbox.Send)
	stream := viewport.NewStream(screen,
		viewport.WithClock(fake),
		viewport.WithDispatcher(screen.Dispatcher()))

	settings := config.Default().Tooltip(logger)
	m := newModel(screen, stream, settings, panelClearance, logger)
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: height})
	return m, fake, inbox
}

func typeText(m *model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestModel_ManualKeyTogglesTooltip(t *testing.T) {
	m, _, _ := newTestModel(t, 24)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	if !m.manual.directive.Visible() {
		t.Fatal("m did not open the manual tooltip")
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Manual trigger") {
		t.Errorf("manual tooltip not drawn:\n%s", view)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	if m.manual.directive.Visible() {
		t.Error("second m did not close the manual tooltip")
	}
}

func TestModel_SearchSelectsPlacement(t *testing.T) {
	m, _, _ := newTestModel(t, 40)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.searching || !m.positioner.Mounted() {
		t.Fatal("slash did not open the search box")
	}
	if m.positioner.Placement() != placement.Bottom {
		t.Errorf("panel placement = %v, want below the input on a tall screen", m.positioner.Placement())
	}

	typeText(m, "lefte")
	selected, ok := m.panel.Selected()
	if !ok || selected.Label != "left-end" {
		t.Fatalf("best suggestion = %+v, want left-end", selected)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.searching || m.positioner.Mounted() {
		t.Error("choosing a suggestion left the search box open")
	}
	for _, b := range m.buttons {
		if b.directive.Overlay().Placement() != placement.LeftEnd {
			t.Errorf("%s placement = %v, want left-end", b.label, b.directive.Overlay().Placement())
		}
	}
}

func TestModel_PanelOpensAboveOnShortScreen(t *testing.T) {
	// The input sits on row 18; a 20-row terminal leaves no room for
	// the panel below it.
	m, _, _ := newTestModel(t, 20)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if m.positioner.Placement() != placement.Top {
		t.Fatalf("panel placement = %v, want top", m.positioner.Placement())
	}
	if bottom := m.panel.Bounds(searchWidth).Bottom(); bottom != searchRow {
		t.Errorf("panel bottom = %d, want flush with the input at row %d", bottom, searchRow)
	}
}

func TestModel_PanelMovesBelowAfterScroll(t *testing.T) {
	m, fake, inbox := newTestModel(t, 20)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})

	m.screen.ScrollTo(0, 10)
	fake.Advance(viewport.DefaultThrottle)
	if inbox.Drain(func(message tea.Msg) { m.Update(message) }) == 0 {
		t.Fatal("scroll produced no throttled delivery")
	}

	if m.positioner.Placement() != placement.Bottom {
		t.Errorf("panel placement after scroll = %v, want bottom", m.positioner.Placement())
	}
}

func TestModel_EscapeLeavesSearch(t *testing.T) {
	m, _, _ := newTestModel(t, 40)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	typeText(m, "q")
	if m.search.Value() != "q" {
		t.Fatalf("search value = %q, want typed text", m.search.Value())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching || m.screen.Focused() != nil {
		t.Error("esc did not leave the search box")
	}
}

func TestModel_PlacementKeyCycles(t *testing.T) {
	m, _, _ := newTestModel(t, 24)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})

	if m.settings.Placement != placement.BottomStart {
		t.Errorf("placement = %v, want bottom-start", m.settings.Placement)
	}
	if !strings.Contains(ansi.Strip(m.statusLine()), "placement: bottom-start") {
		t.Errorf("status line = %q", ansi.Strip(m.statusLine()))
	}
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	if err := os.WriteFile(path, []byte("placement: left\ntheme: pink\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var options flags
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.StringVar(&options.placement, "placement", "", "")
	flagSet.StringVar(&options.theme, "theme", "", "")
	flagSet.StringVar(&options.trigger, "trigger", "", "")
	flagSet.DurationVar(&options.throttle, "throttle", 0, "")
	flagSet.BoolVar(&options.hasArrow, "has-arrow", false, "")
	flagSet.BoolVar(&options.embedded, "embedded", false, "")
	if err := flagSet.Parse([]string{"--placement", "top-end", "--has-arrow", "--throttle", "0s"}); err != nil {
		t.Fatal(err)
	}
	options.configPath = path

	cfg, err := loadConfig(flagSet, options)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Placement != "top-end" || cfg.Theme != "pink" || !cfg.HasArrow || cfg.ThrottleMS != 0 {
		t.Errorf("config = %+v", cfg)
	}
}

func TestLoadConfig_RejectsNegativeThrottle(t *testing.T) {
	t.Setenv(config.EnvironmentVariable, "")

	var options flags
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.DurationVar(&options.throttle, "throttle", 0, "")
	if err := flagSet.Parse([]string{"--throttle=-5ms"}); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(flagSet, options); err == nil {
		t.Error("negative throttle accepted")
	}
}
