// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/overlay/lib/overlay"
	"github.com/bureau-foundation/overlay/lib/placement"
	"github.com/bureau-foundation/overlay/lib/suggestion"
	"github.com/bureau-foundation/overlay/lib/trigger"
	"github.com/bureau-foundation/overlay/lib/viewport"
)

// EnvironmentVariable names the file [Load] reads.
const EnvironmentVariable = "OVERLAY_CONFIG"

// ErrUnknownFormat is returned for a config file whose extension is not
// one of .yaml, .yml, .json, .jsonc, or .toml.
var ErrUnknownFormat = errors.New("unknown config format")

// Format is a config file encoding.
type Format string

const (
	YAML  Format = "yaml"
	JSONC Format = "jsonc"
	TOML  Format = "toml"
)

// FormatFromPath picks the format from path's extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json", ".jsonc":
		return JSONC, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Config is the tooltip configuration surface plus the suggestion panel
// and logging settings.
type Config struct {
	// Placement is the requested placement name, e.g. "bottom" or
	// "top-start". Unknown names fall back to bottom.
	Placement string `yaml:"placement" json:"placement" toml:"placement"`

	// Trigger is hover, click, focus, or manual. Unknown names fall
	// back to hover.
	Trigger string `yaml:"trigger" json:"trigger" toml:"trigger"`

	HasArrow bool `yaml:"has_arrow" json:"has_arrow" toml:"has_arrow"`
	Embedded bool `yaml:"embedded" json:"embedded" toml:"embedded"`

	// Theme is default, white, pink, or yellow.
	Theme string `yaml:"theme" json:"theme" toml:"theme"`

	// ThrottleMS is the viewport throttle window in milliseconds. Zero
	// delivers every raw viewport event.
	ThrottleMS int `yaml:"throttle_ms" json:"throttle_ms" toml:"throttle_ms"`

	Suggestion SuggestionConfig `yaml:"suggestion" json:"suggestion" toml:"suggestion"`
	Log        LogConfig        `yaml:"log" json:"log" toml:"log"`
}

// SuggestionConfig configures the search box suggestion panel.
type SuggestionConfig struct {
	// Clearance is the panel height to reserve below the input, in
	// the host's units. Zero leaves the choice to the host; see
	// [Config.SuggestionClearance].
	Clearance int `yaml:"clearance" json:"clearance" toml:"clearance"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is debug, info, warn, or error.
	Level string `yaml:"level" json:"level" toml:"level"`
}

// Default returns the configuration used when no file is given. Files
// are decoded on top of it, so absent keys keep these values.
func Default() *Config {
	return &Config{
		Placement:  placement.Default.String(),
		Trigger:    trigger.DefaultMode.String(),
		Theme:      string(overlay.DefaultTheme),
		ThrottleMS: int(viewport.DefaultThrottle / time.Millisecond),
		Log:        LogConfig{Level: "info"},
	}
}

// Load reads the file named by OVERLAY_CONFIG. When the variable is
// unset the defaults are returned.
func Load() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates a config file. The format is chosen by
// extension.
func LoadFile(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over the defaults and validates the result.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, cfg)
	case JSONC:
		err = json.Unmarshal(jsonc.ToJSON(data), cfg)
	case TOML:
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("format %q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s config: %w", format, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings that cannot be recovered locally. Unknown
// placement, trigger, and theme names are not errors; [Config.Tooltip]
// replaces them with defaults.
func (c *Config) Validate() error {
	var errs []error
	if c.ThrottleMS < 0 {
		errs = append(errs, fmt.Errorf("throttle_ms must not be negative, got %d", c.ThrottleMS))
	}
	if c.Suggestion.Clearance < 0 {
		errs = append(errs, fmt.Errorf("suggestion.clearance must not be negative, got %d", c.Suggestion.Clearance))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LogLevel parses Log.Level. An empty level is info.
func (c *Config) LogLevel() (slog.Level, error) {
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Throttle returns ThrottleMS as a duration.
func (c *Config) Throttle() time.Duration {
	return time.Duration(c.ThrottleMS) * time.Millisecond
}

// SuggestionClearance returns the configured clearance, or hostDefault
// when none is configured. A host with no default of its own passes
// zero and gets suggestion.DefaultClearance.
func (c *Config) SuggestionClearance(hostDefault int) int {
	switch {
	case c.Suggestion.Clearance > 0:
		return c.Suggestion.Clearance
	case hostDefault > 0:
		return hostDefault
	default:
		return suggestion.DefaultClearance
	}
}

// Tooltip is the resolved, typed form of the tooltip settings.
type Tooltip struct {
	Placement placement.Placement
	Mode      trigger.Mode
	Options   overlay.LayerOptions
	Throttle  time.Duration
}

// Tooltip resolves the string settings. Unrecognized values are logged
// at warn level and replaced by their defaults; they never fail.
func (c *Config) Tooltip(logger *slog.Logger) Tooltip {
	if logger == nil {
		logger = slog.Default()
	}

	value, ok := placement.Parse(c.Placement)
	if !ok {
		logger.Warn("unknown placement, using default",
			"placement", c.Placement, "default", placement.Default.String())
	}
	mode, ok := trigger.ParseMode(c.Trigger)
	if !ok {
		logger.Warn("unknown trigger, using default",
			"trigger", c.Trigger, "default", trigger.DefaultMode.String())
	}
	theme := overlay.Theme(strings.ToLower(strings.TrimSpace(c.Theme)))
	if !theme.Known() {
		logger.Warn("unknown theme, using default",
			"theme", c.Theme, "default", string(overlay.DefaultTheme))
		theme = overlay.DefaultTheme
	}

	return Tooltip{
		Placement: value,
		Mode:      mode,
		Options: overlay.LayerOptions{
			HasArrow: c.HasArrow,
			Embedded: c.Embedded,
			Theme:    theme,
		},
		Throttle: c.Throttle(),
	}
}
