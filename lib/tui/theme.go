// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/overlay/lib/overlay"
)

// Theme defines the color palette for the terminal host. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
//
// The chrome fields color the document and the suggestion panel;
// Tooltips holds one scheme per tooltip theme name.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row in the suggestion panel.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	PanelBackground  lipgloss.Color

	// Accent marks focus: the focused region's border and the
	// suggestion panel's scrollbar thumb.
	Accent lipgloss.Color

	// MatchForeground highlights fuzzy-matched characters.
	MatchForeground lipgloss.Color

	// Tooltips maps tooltip theme names to their schemes. Lookups of
	// unknown names return the overlay.DefaultTheme entry.
	Tooltips map[overlay.Theme]TooltipColors
}

// TooltipColors is one tooltip color scheme.
type TooltipColors struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	Border     lipgloss.Color

	// Code colors inline code spans.
	Code lipgloss.Color
}

// Tooltip returns the scheme for a tooltip theme.
func (theme Theme) Tooltip(name overlay.Theme) TooltipColors {
	if colors, ok := theme.Tooltips[name]; ok {
		return colors
	}
	return theme.Tooltips[overlay.DefaultTheme]
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	PanelBackground:  lipgloss.Color("235"),

	Accent:          lipgloss.Color("220"), // yellow/amber
	MatchForeground: lipgloss.Color("75"),  // blue

	Tooltips: map[overlay.Theme]TooltipColors{
		overlay.DefaultTheme: {
			Foreground: lipgloss.Color("252"),
			Background: lipgloss.Color("238"), // gray
			Border:     lipgloss.Color("243"),
			Code:       lipgloss.Color("180"),
		},
		overlay.ThemeWhite: {
			Foreground: lipgloss.Color("235"),
			Background: lipgloss.Color("255"),
			Border:     lipgloss.Color("250"),
			Code:       lipgloss.Color("125"),
		},
		overlay.ThemePink: {
			Foreground: lipgloss.Color("53"),
			Background: lipgloss.Color("218"),
			Border:     lipgloss.Color("205"),
			Code:       lipgloss.Color("89"),
		},
		overlay.ThemeYellow: {
			Foreground: lipgloss.Color("94"),
			Background: lipgloss.Color("229"),
			Border:     lipgloss.Color("220"),
			Code:       lipgloss.Color("130"),
		},
	},
}
