package geometry

import (
	"strings"

	floatkiterrors "github.com/alexisbeaulieu97/floatkit/pkg/errors"
)

// Side is the main-axis side of the reference a floating panel is attached to.
type Side int

const (
	SideBottom Side = iota
	SideTop
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "bottom"
	}
}

// Opposite returns the side across the reference.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

// Vertical reports whether the main axis is the y axis.
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

// Align positions the panel along the cross axis.
type Align int

const (
	AlignCenter Align = iota
	AlignStart
	AlignEnd
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	default:
		return "center"
	}
}

// Placement names where a floating panel sits relative to its reference.
// The zero value is "bottom" (centered).
type Placement struct {
	Side  Side
	Align Align
}

// Common placements.
var (
	Top         = Placement{Side: SideTop}
	TopStart    = Placement{Side: SideTop, Align: AlignStart}
	TopEnd      = Placement{Side: SideTop, Align: AlignEnd}
	Bottom      = Placement{Side: SideBottom}
	BottomStart = Placement{Side: SideBottom, Align: AlignStart}
	BottomEnd   = Placement{Side: SideBottom, Align: AlignEnd}
	Left        = Placement{Side: SideLeft}
	LeftStart   = Placement{Side: SideLeft, Align: AlignStart}
	LeftEnd     = Placement{Side: SideLeft, Align: AlignEnd}
	Right       = Placement{Side: SideRight}
	RightStart  = Placement{Side: SideRight, Align: AlignStart}
	RightEnd    = Placement{Side: SideRight, Align: AlignEnd}
)

// String renders the placement as "side" or "side-align"; center is implied.
func (p Placement) String() string {
	if p.Align == AlignCenter {
		return p.Side.String()
	}
	return p.Side.String() + "-" + p.Align.String()
}

// Flipped returns the placement mirrored across the reference on the main axis.
func (p Placement) Flipped() Placement {
	return Placement{Side: p.Side.Opposite(), Align: p.Align}
}

// ParsePlacement parses names such as "top", "bottom-start" or "left-center".
func ParsePlacement(value string) (Placement, error) {
	raw := strings.ToLower(strings.TrimSpace(value))
	sidePart, alignPart, hasAlign := strings.Cut(raw, "-")

	var p Placement
	switch sidePart {
	case "top":
		p.Side = SideTop
	case "bottom":
		p.Side = SideBottom
	case "left":
		p.Side = SideLeft
	case "right":
		p.Side = SideRight
	default:
		return Placement{}, floatkiterrors.NewPlacementError(value)
	}

	if !hasAlign {
		return p, nil
	}
	switch alignPart {
	case "start":
		p.Align = AlignStart
	case "end":
		p.Align = AlignEnd
	case "center":
		p.Align = AlignCenter
	default:
		return Placement{}, floatkiterrors.NewPlacementError(value)
	}
	return p, nil
}

// MustParsePlacement is ParsePlacement for literals known to be valid.
func MustParsePlacement(value string) Placement {
	p, err := ParsePlacement(value)
	if err != nil {
		panic(err)
	}
	return p
}

// Placements lists all twelve placements, centered variants first per side.
func Placements() []Placement {
	out := make([]Placement, 0, 12)
	for _, side := range []Side{SideTop, SideBottom, SideLeft, SideRight} {
		for _, align := range []Align{AlignCenter, AlignStart, AlignEnd} {
			out = append(out, Placement{Side: side, Align: align})
		}
	}
	return out
}
