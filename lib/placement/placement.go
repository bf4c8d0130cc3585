// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package placement

import "strings"

// Placement is a requested edge and alignment for a floating layer
// relative to its anchor. The set is closed: twelve values, one per
// combination of edge (top, bottom, left, right) and side alignment
// (plain, start, end). The zero value is Bottom.
type Placement uint8

const (
	Bottom Placement = iota
	BottomStart
	BottomEnd
	Top
	TopStart
	TopEnd
	Left
	LeftStart
	LeftEnd
	Right
	RightStart
	RightEnd

	placementCount
)

// Default is the placement used when none is configured or the
// configured value is not recognized.
const Default = Bottom

// Edge is the side of the anchor the layer attaches to.
type Edge uint8

const (
	EdgeBottom Edge = iota
	EdgeTop
	EdgeLeft
	EdgeRight
)

// Align is the alignment along the edge. AlignNone and AlignStart
// both line up the leading edges of anchor and layer; AlignEnd lines
// up the trailing edges.
type Align uint8

const (
	AlignNone Align = iota
	AlignStart
	AlignEnd
)

var placementNames = [placementCount]string{
	Bottom:      "bottom",
	BottomStart: "bottom-start",
	BottomEnd:   "bottom-end",
	Top:         "top",
	TopStart:    "top-start",
	TopEnd:      "top-end",
	Left:        "left",
	LeftStart:   "left-start",
	LeftEnd:     "left-end",
	Right:       "right",
	RightStart:  "right-start",
	RightEnd:    "right-end",
}

// aliases maps the physical-direction spellings (a top layer aligned
// to the anchor's left edge is "top-left") onto the canonical values.
var aliases = map[string]Placement{
	"top-left":     TopStart,
	"top-right":    TopEnd,
	"bottom-left":  BottomStart,
	"bottom-right": BottomEnd,
	"left-top":     LeftStart,
	"left-bottom":  LeftEnd,
	"right-top":    RightStart,
	"right-bottom": RightEnd,
}

// All returns the twelve placements in declaration order.
func All() []Placement {
	all := make([]Placement, 0, placementCount)
	for value := Placement(0); value < placementCount; value++ {
		all = append(all, value)
	}
	return all
}

// Parse converts a configuration string into a Placement. Both the
// canonical names ("top-start") and the physical aliases ("top-left")
// are accepted, case-insensitively. Unrecognized input returns Default
// and false.
func Parse(name string) (Placement, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for value, candidate := range placementNames {
		if candidate == normalized {
			return Placement(value), true
		}
	}
	if value, ok := aliases[normalized]; ok {
		return value, true
	}
	return Default, false
}

// MustParse is Parse without the recognition flag. Unknown names
// silently become Default.
func MustParse(name string) Placement {
	value, _ := Parse(name)
	return value
}

// Valid reports whether the value is one of the twelve placements.
func (value Placement) Valid() bool { return value < placementCount }

// String returns the canonical name.
func (value Placement) String() string {
	if !value.Valid() {
		return placementNames[Default]
	}
	return placementNames[value]
}

// Edge returns the anchor edge the placement attaches to.
func (value Placement) Edge() Edge {
	if !value.Valid() {
		return EdgeBottom
	}
	return Edge(value / 3)
}

// Align returns the side-axis alignment.
func (value Placement) Align() Align {
	if !value.Valid() {
		return AlignNone
	}
	return Align(value % 3)
}

// Vertical reports whether the placement's primary axis is vertical
// (top or bottom).
func (value Placement) Vertical() bool {
	edge := value.Edge()
	return edge == EdgeTop || edge == EdgeBottom
}

// Opposite returns the placement on the other edge of the same axis
// with the same alignment: bottom-end becomes top-end, left becomes
// right.
func (value Placement) Opposite() Placement {
	return compose(value.Edge().opposite(), value.Align())
}

func compose(edge Edge, align Align) Placement {
	return Placement(uint8(edge)*3 + uint8(align))
}

func (edge Edge) opposite() Edge {
	switch edge {
	case EdgeTop:
		return EdgeBottom
	case EdgeBottom:
		return EdgeTop
	case EdgeLeft:
		return EdgeRight
	default:
		return EdgeLeft
	}
}

// String returns the edge name.
func (edge Edge) String() string {
	switch edge {
	case EdgeTop:
		return "top"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "bottom"
	}
}
