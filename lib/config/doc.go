// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads tooltip configuration.
//
// Configuration is read from a single file named by either the
// OVERLAY_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no discovery: with neither set, [Default]
// applies. The file format follows the extension: YAML (.yaml, .yml),
// JSON with comments and trailing commas (.json, .jsonc), or TOML
// (.toml). Files are decoded over the defaults, so a file only needs
// the keys it changes.
//
// Recoverable mistakes are not errors. An unknown placement, trigger,
// or theme is logged by [Config.Tooltip] and replaced by its default.
// Only values that have no sensible reading fail validation: a
// negative throttle or clearance, or an unparseable log level.
//
// Key exports:
//
//   - [Config] -- the raw settings as written in the file
//   - [Tooltip] -- the typed settings overlays and bindings consume
//   - [Load], [LoadFile], and [Parse] -- the entry points
package config
