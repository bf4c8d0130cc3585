// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package overlay manages the lifecycle of a floating layer: the
// detached visual instance behind a tooltip or popover.
//
// An [Overlay] moves through four states:
//
//	Unattached --Create/Show--> Hidden <--Show/Hide--> Visible
//	     \                        |                      /
//	      `---------------------Destroy-----------------'--> Destroyed
//
// The layer is created lazily by an injected [Factory] and attached to
// an injected [Host]. While visible, the overlay holds one viewport
// subscription and re-resolves its position on every throttled change.
// Hide and Destroy cancel that subscription, so no callback outlives
// the layer. Destroyed is terminal: later Show, Hide, Toggle, and
// setter calls do nothing.
//
// Positioning goes through a [placement.Resolver] and only ever
// touches the layer's own geometry.
package overlay
