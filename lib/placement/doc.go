// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package placement computes where a floating layer goes relative to
// the element that anchors it.
//
// [Resolve] is a pure function: given the anchor's bounding box, the
// layer's size, the requested [Placement], and the current viewport it
// returns the layer's top-left corner and the placement actually used.
// When the requested edge would push the layer out of the viewport on
// the primary axis, the resolver tries the opposite edge once. If that
// fits, the flipped placement wins; otherwise the original is kept.
// Side alignment (start/end) is never flipped.
//
// The placement set is closed. Configuration strings go through
// [Parse], which maps anything unrecognized to [Default].
package placement
