package geometry

// ChangeReason describes why a tracked position is being recomputed.
type ChangeReason int

const (
	ReasonInitial ChangeReason = iota
	ReasonReferenceResize
	ReasonReferenceMove
	ReasonViewportResize
	ReasonFloatingResize
)

func (r ChangeReason) String() string {
	switch r {
	case ReasonReferenceResize:
		return "reference-resize"
	case ReasonReferenceMove:
		return "reference-move"
	case ReasonViewportResize:
		return "viewport-resize"
	case ReasonFloatingResize:
		return "floating-resize"
	default:
		return "initial"
	}
}

// RectSource reports the current bounds of a mounted element, or false when
// the element is not mounted.
type RectSource func() (Rect, bool)

// SizeSource reports the current measured size of a floating panel.
type SizeSource func() (Size, bool)

// Tracker keeps a floating panel's geometry in sync with its reference and
// the viewport. Callers forward resize/scroll notifications to Notify and
// release the tracker with Stop when the panel closes.
type Tracker struct {
	engine    *Engine
	reference RectSource
	floating  SizeSource
	viewport  func() Rect
	onChange  func(Geometry)

	last    Geometry
	valid   bool
	stopped bool
}

// Track starts tracking and performs the initial computation.
func Track(engine *Engine, reference RectSource, floating SizeSource, viewport func() Rect, onChange func(Geometry)) *Tracker {
	t := &Tracker{
		engine:    engine,
		reference: reference,
		floating:  floating,
		viewport:  viewport,
		onChange:  onChange,
	}
	t.Notify(ReasonInitial)
	return t
}

// Notify recomputes the geometry. The change callback only runs when the
// result differs from the previous computation.
func (t *Tracker) Notify(reason ChangeReason) (Geometry, bool) {
	if t == nil || t.stopped {
		return Geometry{}, false
	}

	ref, ok := t.reference()
	if !ok {
		t.valid = false
		return Geometry{}, false
	}
	size, ok := t.floating()
	if !ok {
		t.valid = false
		return Geometry{}, false
	}

	next, ok := t.engine.Compute(ref, size, t.viewport())
	if !ok {
		t.valid = false
		return Geometry{}, false
	}

	changed := !t.valid || next != t.last
	t.last = next
	t.valid = true
	if changed && t.onChange != nil {
		t.onChange(next)
	}
	return next, true
}

// Geometry returns the last computed position.
func (t *Tracker) Geometry() (Geometry, bool) {
	if t == nil || t.stopped {
		return Geometry{}, false
	}
	return t.last, t.valid
}

// Stop releases the tracker. Further notifications are ignored.
func (t *Tracker) Stop() {
	if t == nil {
		return
	}
	t.stopped = true
	t.valid = false
	t.onChange = nil
}

// Active reports whether the tracker has not been stopped.
func (t *Tracker) Active() bool {
	return t != nil && !t.stopped
}
