package geometry

import (
	"github.com/alexisbeaulieu97/floatkit/internal/logger"
)

// Geometry is the computed absolute position of a floating panel.
type Geometry struct {
	X         int
	Y         int
	Placement Placement
}

// Engine computes floating panel positions for a preferred placement and a
// fixed middleware pipeline.
type Engine struct {
	placement  Placement
	middleware []Middleware
	log        *logger.Logger
}

// NewEngine creates an engine. Middleware runs in the order given.
func NewEngine(placement Placement, middleware ...Middleware) *Engine {
	return &Engine{
		placement:  placement,
		middleware: middleware,
	}
}

// WithLogger attaches a logger used for placement diagnostics.
func (e *Engine) WithLogger(log *logger.Logger) *Engine {
	e.log = log.WithComponent("geometry")
	return e
}

// Placement returns the preferred placement.
func (e *Engine) Placement() Placement {
	return e.placement
}

// Compute positions a panel of the given size against reference inside viewport.
// It reports false when either element has no measurable size yet.
func (e *Engine) Compute(reference Rect, floating Size, viewport Rect) (Geometry, bool) {
	if reference.Empty() || floating.Empty() {
		return Geometry{}, false
	}

	state := baseState(reference, floating, viewport, e.placement, e.placement)
	maxResets := len(e.middleware) + 1

	for resets := 0; ; {
		restarted := false
		for _, mw := range e.middleware {
			next, reset := mw.Apply(state)
			if reset && resets < maxResets {
				resets++
				if e.log.DebugEnabled() {
					e.log.WithFields(map[string]any{
						"middleware": mw.Name(),
						"from":       state.Placement.String(),
						"to":         next.Placement.String(),
					}).Debug("placement reset")
				}
				state = baseState(reference, floating, viewport, next.Placement, e.placement)
				restarted = true
				break
			}
			state = next
		}
		if !restarted {
			break
		}
	}

	return Geometry{X: state.X, Y: state.Y, Placement: state.Placement}, true
}

// Compute is a one-shot computation with an explicit placement and pipeline.
func Compute(reference Rect, floating Size, placement Placement, viewport Rect, middleware ...Middleware) (Geometry, bool) {
	return NewEngine(placement, middleware...).Compute(reference, floating, viewport)
}

func baseState(reference Rect, floating Size, viewport Rect, placement, initial Placement) State {
	x, y := baseCoords(reference, floating, placement)
	return State{
		X:         x,
		Y:         y,
		Placement: placement,
		Initial:   initial,
		Reference: reference,
		Floating:  floating,
		Viewport:  viewport,
	}
}

func baseCoords(ref Rect, fl Size, p Placement) (int, int) {
	var x, y int
	switch p.Side {
	case SideBottom:
		y = ref.Bottom()
	case SideTop:
		y = ref.Y - fl.Height
	case SideRight:
		x = ref.Right()
	case SideLeft:
		x = ref.X - fl.Width
	}

	if p.Side.Vertical() {
		x = crossAxis(ref.X, ref.Width, fl.Width, p.Align)
	} else {
		y = crossAxis(ref.Y, ref.Height, fl.Height, p.Align)
	}
	return x, y
}

func crossAxis(start, refLength, floatLength int, align Align) int {
	switch align {
	case AlignStart:
		return start
	case AlignEnd:
		return start + refLength - floatLength
	default:
		return start + (refLength-floatLength)/2
	}
}
