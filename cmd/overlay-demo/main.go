// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// overlay-demo is an interactive terminal page of tooltip buttons and a
// search box with a suggestion panel. It exercises every trigger mode,
// placement flipping on scroll and resize, and the panel's above/below
// decision.
//
// Settings come from a YAML, JSONC, or TOML file (--config, or the
// OVERLAY_CONFIG environment variable) and individual flags override
// the file. Log records at warn and above appear on the status line;
// --log-output additionally writes every record to a file or another
// terminal.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/overlay/lib/config"
	"github.com/bureau-foundation/overlay/lib/tui"
	"github.com/bureau-foundation/overlay/lib/version"
	"github.com/bureau-foundation/overlay/lib/viewport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	placement  string
	trigger    string
	theme      string
	throttle   time.Duration
	hasArrow   bool
	embedded   bool
	logOutput  string
	logFormat  string
}

func run() error {
	var options flags
	flagSet := pflag.NewFlagSet("overlay-demo", pflag.ContinueOnError)
	flagSet.StringVar(&options.configPath, "config", "", "config file (.yaml, .jsonc, .json, or .toml); overrides "+config.EnvironmentVariable)
	flagSet.StringVar(&options.placement, "placement", "", "tooltip placement, e.g. bottom, top-start, left-end")
	flagSet.StringVar(&options.trigger, "trigger", "", "trigger mode for the flip button: hover, click, focus, or manual")
	flagSet.StringVar(&options.theme, "theme", "", "tooltip theme: default, white, pink, or yellow")
	flagSet.DurationVar(&options.throttle, "throttle", 0, "viewport throttle window (0 delivers every event)")
	flagSet.BoolVar(&options.hasArrow, "has-arrow", false, "draw an arrow toward the anchor")
	flagSet.BoolVar(&options.embedded, "embedded", false, "render tooltips in the content flow")
	flagSet.StringVar(&options.logOutput, "log-output", "", "also write log records to this file or terminal")
	flagSet.StringVar(&options.logFormat, "log-format", "auto", "log-output format: auto, text, or json")
	flagSet.BoolP("help", "h", false, "show help")
	flagSet.Bool("version", false, "print version information and exit")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if showVersion, _ := flagSet.GetBool("version"); showVersion {
		version.Print("overlay-demo")
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("overlay-demo needs a terminal on stdout")
	}

	cfg, err := loadConfig(flagSet, options)
	if err != nil {
		return err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	logs, err := openLogs(options.logOutput, options.logFormat, level)
	if err != nil {
		return err
	}
	defer logs.Close()

	// The program does not own the terminal yet, so unrecognized
	// settings are reported on stderr.
	settings := cfg.Tooltip(logs.startup)

	screen := tui.NewScreen(80, 24, tui.WithLogger(logs.runtime), tui.WithReservedRows(1))
	stream := viewport.For(screen,
		viewport.WithDispatcher(screen.Dispatcher()),
		viewport.WithLogger(logs.runtime))
	defer viewport.Forget(screen)

	model := newModel(screen, stream, settings, cfg.SuggestionClearance(panelClearance), logs.runtime)
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	screen.SetProgram(program)
	logs.status.SetProgram(program)

	_, err = program.Run()
	return err
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(flagSet *pflag.FlagSet, options flags) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if options.configPath != "" {
		cfg, err = config.LoadFile(options.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if flagSet.Changed("placement") {
		cfg.Placement = options.placement
	}
	if flagSet.Changed("trigger") {
		cfg.Trigger = options.trigger
	}
	if flagSet.Changed("theme") {
		cfg.Theme = options.theme
	}
	if flagSet.Changed("throttle") {
		cfg.ThrottleMS = int(options.throttle / time.Millisecond)
	}
	if flagSet.Changed("has-arrow") {
		cfg.HasArrow = options.hasArrow
	}
	if flagSet.Changed("embedded") {
		cfg.Embedded = options.embedded
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `overlay-demo: tooltips and a suggestion panel in the terminal.

Hover, click, or Tab to the buttons to open their tooltips. Scroll with
the mouse wheel or arrow keys to watch tooltips flip when they would
leave the screen. Focus the search box (/) and type to filter
placements; the panel opens above the box when there is no room below.

Usage:
  overlay-demo [flags]

Examples:
  # Default settings
  overlay-demo

  # Arrows, top placement, pink theme
  overlay-demo --placement top --has-arrow --theme pink

  # Read settings from a file and stream logs to another terminal
  overlay-demo --config overlay.toml --log-output /dev/pts/3

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
