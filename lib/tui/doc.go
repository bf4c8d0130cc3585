// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui is the terminal host for the overlay engine, built on
// bubbletea.
//
// [Screen] plays the part a browser window plays for a web tooltip: it
// is the viewport source (resize from tea.WindowSizeMsg, scroll from
// the wheel and keys), the container floating layers attach to, and
// the event source for [Region] values, which stand in for DOM
// elements. [Tooltip] is the layer the screen's factory creates: a
// bordered box of markdown content in one of the tooltip themes, with
// an optional arrow that follows the effective placement.
// [SuggestionPanel] renders a search box's suggestion list, and
// [RankFuzzy] orders its entries.
//
// Layers are composited over the document with ANSI-aware splicing,
// so escape sequences on either side of a layer survive.
package tui
