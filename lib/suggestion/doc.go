// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package suggestion decides whether a search box's suggestion panel
// opens below or above its input.
//
// The decision is a single comparison: if the space between the input
// and the bottom of the viewport, minus the panel's fixed height
// ([Decide]'s clearance), is positive the panel opens below, otherwise
// above. There is no flip-back logic. A [Positioner] re-runs the
// decision on every throttled viewport change while its widget is
// mounted.
package suggestion
