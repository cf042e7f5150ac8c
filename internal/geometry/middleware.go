package geometry

// State is the working position threaded through the middleware pipeline.
type State struct {
	X         int
	Y         int
	Placement Placement
	// Initial is the placement the computation started from.
	Initial   Placement
	Reference Rect
	Floating  Size
	Viewport  Rect
	// MainOffset is the distance already pushed along the main axis.
	MainOffset int
}

// Middleware adjusts a State. Returning reset=true restarts the pipeline from
// base coordinates for the returned placement.
type Middleware interface {
	Name() string
	Apply(state State) (next State, reset bool)
}

type offsetMiddleware struct {
	gap int
}

// Offset pushes the panel away from the reference along the main axis.
func Offset(gap int) Middleware {
	return offsetMiddleware{gap: gap}
}

func (offsetMiddleware) Name() string { return "offset" }

func (m offsetMiddleware) Apply(s State) (State, bool) {
	switch s.Placement.Side {
	case SideBottom:
		s.Y += m.gap
	case SideTop:
		s.Y -= m.gap
	case SideRight:
		s.X += m.gap
	case SideLeft:
		s.X -= m.gap
	}
	s.MainOffset += m.gap
	return s, false
}

type flipMiddleware struct {
	padding int
}

// Flip moves the panel to the opposite side when it overflows the viewport on
// its main axis and the opposite side has room.
func Flip() Middleware {
	return flipMiddleware{}
}

// FlipWithPadding is Flip with a margin kept clear at the viewport edge.
func FlipWithPadding(padding int) Middleware {
	return flipMiddleware{padding: padding}
}

func (flipMiddleware) Name() string { return "flip" }

func (m flipMiddleware) Apply(s State) (State, bool) {
	// One flip per computation; a flipped placement is never flipped back.
	if s.Placement != s.Initial {
		return s, false
	}
	if mainAxisOverflow(s, m.padding) <= 0 {
		return s, false
	}
	if !fitsOpposite(s, m.padding) {
		return s, false
	}
	s.Placement = s.Placement.Flipped()
	return s, true
}

func mainAxisOverflow(s State, padding int) int {
	vp := s.Viewport
	switch s.Placement.Side {
	case SideBottom:
		return s.Y + s.Floating.Height - (vp.Bottom() - padding)
	case SideTop:
		return vp.Y + padding - s.Y
	case SideRight:
		return s.X + s.Floating.Width - (vp.Right() - padding)
	default:
		return vp.X + padding - s.X
	}
}

func fitsOpposite(s State, padding int) bool {
	vp, ref, fl := s.Viewport, s.Reference, s.Floating
	switch s.Placement.Side {
	case SideBottom:
		return ref.Y-fl.Height-s.MainOffset >= vp.Y+padding
	case SideTop:
		return ref.Bottom()+s.MainOffset+fl.Height <= vp.Bottom()-padding
	case SideRight:
		return ref.X-fl.Width-s.MainOffset >= vp.X+padding
	default:
		return ref.Right()+s.MainOffset+fl.Width <= vp.Right()-padding
	}
}

// DefaultShiftPadding is the margin Shift keeps from the viewport edge.
const DefaultShiftPadding = 8

type shiftMiddleware struct {
	padding int
}

// Shift clamps the cross axis so the panel stays inside the viewport minus
// padding. It never changes the placement.
func Shift(padding int) Middleware {
	return shiftMiddleware{padding: padding}
}

func (shiftMiddleware) Name() string { return "shift" }

func (m shiftMiddleware) Apply(s State) (State, bool) {
	vp := s.Viewport
	if s.Placement.Side.Vertical() {
		s.X = clamp(s.X, vp.X+m.padding, vp.Right()-m.padding-s.Floating.Width)
	} else {
		s.Y = clamp(s.Y, vp.Y+m.padding, vp.Bottom()-m.padding-s.Floating.Height)
	}
	return s, false
}

// clamp prefers the lower bound when the panel is larger than the range.
func clamp(value, lo, hi int) int {
	if value > hi {
		value = hi
	}
	if value < lo {
		value = lo
	}
	return value
}
