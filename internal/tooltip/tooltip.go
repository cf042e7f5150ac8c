// Package tooltip implements hover intent for tooltips: delayed open,
// immediate close, focus open and continuous position tracking while shown.
package tooltip

import (
	"time"

	"github.com/alexisbeaulieu97/floatkit/internal/disclosure"
	"github.com/alexisbeaulieu97/floatkit/internal/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/input"
	"github.com/alexisbeaulieu97/floatkit/internal/logger"
)

const (
	DefaultDelay   = 200 * time.Millisecond
	DefaultOffset  = 8
	DefaultPadding = geometry.DefaultShiftPadding
)

// Options configures an Intent. Zero is honoured for every field, so a zero
// Delay opens without waiting; negative values take the defaults.
type Options struct {
	Delay     time.Duration
	Placement geometry.Placement
	Offset    int
	Padding   int
	Logger    *logger.Logger
}

// DefaultOptions returns options carrying the default delay, offset and
// padding.
func DefaultOptions() Options {
	return Options{Delay: DefaultDelay, Offset: DefaultOffset, Padding: DefaultPadding}
}

// Pending is an outstanding hover-open timer. The caller sleeps for Delay
// and reports back through Elapsed.
type Pending struct {
	Generation uint64
	Delay      time.Duration
}

// Intent tracks whether a tooltip is shown.
type Intent struct {
	disclosure *disclosure.Controller
	engine     *geometry.Engine
	delay      time.Duration

	generation uint64
	pending    bool

	reference geometry.RectSource
	floating  geometry.SizeSource
	viewport  func() geometry.Rect
	tracker   *geometry.Tracker

	log *logger.Logger
}

// New creates an Intent.
func New(opts Options) *Intent {
	delay := opts.Delay
	if delay < 0 {
		delay = DefaultDelay
	}
	offset := opts.Offset
	if offset < 0 {
		offset = DefaultOffset
	}
	padding := opts.Padding
	if padding < 0 {
		padding = DefaultPadding
	}

	i := &Intent{
		disclosure: disclosure.New(disclosure.Options{Logger: opts.Logger}),
		engine: geometry.NewEngine(opts.Placement,
			geometry.Offset(offset),
			geometry.Flip(),
			geometry.Shift(padding),
		).WithLogger(opts.Logger),
		delay: delay,
		log:   opts.Logger.WithComponent("tooltip"),
	}
	i.disclosure.OnChange(i.openChanged)
	return i
}

// Mount registers the elements the tooltip is positioned against.
func (i *Intent) Mount(reference geometry.RectSource, floating geometry.SizeSource, viewport func() geometry.Rect) {
	i.reference = reference
	i.floating = floating
	i.viewport = viewport
	i.disclosure.SetReference(reference)
	if i.IsOpen() {
		i.startTracking()
	}
}

// IsOpen reports whether the tooltip is shown.
func (i *Intent) IsOpen() bool {
	return i.disclosure.IsOpen()
}

// Delay returns the hover-open delay.
func (i *Intent) Delay() time.Duration {
	return i.delay
}

// Placement returns the preferred placement.
func (i *Intent) Placement() geometry.Placement {
	return i.engine.Placement()
}

// PointerEnter starts the hover-open delay. It returns false when no timer
// is needed because the tooltip is already shown or opens immediately.
func (i *Intent) PointerEnter() (Pending, bool) {
	if i.IsOpen() {
		return Pending{}, false
	}
	if i.delay <= 0 {
		i.cancel()
		i.disclosure.Open(disclosure.ReasonHover)
		return Pending{}, false
	}
	i.generation++
	i.pending = true
	return Pending{Generation: i.generation, Delay: i.delay}, true
}

// Elapsed completes a hover-open timer. Stale generations are ignored.
func (i *Intent) Elapsed(generation uint64) bool {
	if !i.pending || generation != i.generation {
		return false
	}
	i.pending = false
	i.disclosure.Open(disclosure.ReasonHover)
	return i.IsOpen()
}

// PointerLeave cancels a pending open and hides the tooltip immediately.
func (i *Intent) PointerLeave() {
	i.cancel()
	i.disclosure.Dismiss(disclosure.ReasonHover)
}

// Focus shows the tooltip without delay.
func (i *Intent) Focus() {
	i.cancel()
	i.disclosure.Open(disclosure.ReasonFocus)
}

// Blur cancels a pending open and hides the tooltip.
func (i *Intent) Blur() {
	i.cancel()
	i.disclosure.Dismiss(disclosure.ReasonFocus)
}

// HandleKey dismisses on Escape.
func (i *Intent) HandleKey(ev input.Event) bool {
	if ev.Key != input.KeyEscape {
		return false
	}
	i.cancel()
	return i.disclosure.HandleKey(ev)
}

// Notify forwards a layout change to the position tracker while shown.
func (i *Intent) Notify(reason geometry.ChangeReason) (geometry.Geometry, bool) {
	return i.tracker.Notify(reason)
}

// Geometry returns the current position while shown.
func (i *Intent) Geometry() (geometry.Geometry, bool) {
	return i.tracker.Geometry()
}

func (i *Intent) cancel() {
	if i.pending {
		i.generation++
		i.pending = false
	}
}

func (i *Intent) openChanged(open bool, reason disclosure.Reason) {
	if open {
		i.startTracking()
		return
	}
	i.tracker.Stop()
	i.tracker = nil
}

func (i *Intent) startTracking() {
	if i.reference == nil || i.floating == nil || i.viewport == nil {
		return
	}
	i.tracker.Stop()
	i.tracker = geometry.Track(i.engine, i.reference, i.floating, i.viewport, func(g geometry.Geometry) {
		i.log.WithFields(map[string]any{
			"x":         g.X,
			"y":         g.Y,
			"placement": g.Placement.String(),
		}).Debug("tooltip positioned")
	})
}
