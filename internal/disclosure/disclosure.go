// Package disclosure implements the open/closed state shared by dropdowns,
// tooltips and dialogs. Every dismiss source funnels into Dismiss.
package disclosure

import (
	"github.com/alexisbeaulieu97/floatkit/internal/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/input"
	"github.com/alexisbeaulieu97/floatkit/internal/logger"
)

// Reason identifies what requested an open state change.
type Reason string

const (
	ReasonTriggerClick Reason = "trigger-click"
	ReasonEscape       Reason = "escape"
	ReasonOutsidePress Reason = "outside-press"
	ReasonExplicit     Reason = "explicit"
	ReasonHover        Reason = "hover"
	ReasonFocus        Reason = "focus"
)

// Options configures a Controller. A non-nil Open puts the controller in
// controlled mode for its whole lifetime.
type Options struct {
	Open         *bool
	DefaultOpen  bool
	OnOpenChange func(open bool, reason Reason)
	Logger       *logger.Logger
}

// Controller tracks whether a floating panel is shown.
type Controller struct {
	open       bool
	controlled bool
	onChange   func(bool, Reason)

	reference geometry.RectSource
	floating  geometry.RectSource

	listeners []changeListener
	nextID    uint64

	log *logger.Logger
}

type changeListener struct {
	id uint64
	fn func(open bool, reason Reason)
}

// New creates a controller.
func New(opts Options) *Controller {
	c := &Controller{
		open:     opts.DefaultOpen,
		onChange: opts.OnOpenChange,
		log:      opts.Logger.WithComponent("disclosure"),
	}
	if opts.Open != nil {
		c.controlled = true
		c.open = *opts.Open
	}
	return c
}

// Bool returns a pointer to v, for Options.Open.
func Bool(v bool) *bool {
	return &v
}

// IsOpen reports the current state.
func (c *Controller) IsOpen() bool {
	return c.open
}

// Controlled reports whether the caller owns the open state.
func (c *Controller) Controlled() bool {
	return c.controlled
}

// Open requests the OPEN state. It is a no-op when already open.
func (c *Controller) Open(reason Reason) {
	if c.open {
		return
	}
	c.request(true, reason)
}

// Dismiss requests the CLOSED state. It is a no-op when already closed.
func (c *Controller) Dismiss(reason Reason) {
	if !c.open {
		return
	}
	c.request(false, reason)
}

// Toggle flips the current state.
func (c *Controller) Toggle(reason Reason) {
	if c.open {
		c.Dismiss(reason)
		return
	}
	c.Open(reason)
}

// Sync applies the caller's state in controlled mode. Internal controllers
// ignore it.
func (c *Controller) Sync(open bool) {
	if !c.controlled || c.open == open {
		return
	}
	c.open = open
	c.notify(open, ReasonExplicit)
}

// HandleKey dismisses on Escape while open. It reports whether the key was
// consumed.
func (c *Controller) HandleKey(ev input.Event) bool {
	if ev.Key != input.KeyEscape || !c.open {
		return false
	}
	c.Dismiss(ReasonEscape)
	return true
}

// HandlePointerDown dismisses when the press lands outside both the reference
// and the floating panel. Presses on the reference belong to the trigger.
func (c *Controller) HandlePointerDown(x, y int) bool {
	if !c.open {
		return false
	}
	if inside(c.reference, x, y) || inside(c.floating, x, y) {
		return false
	}
	c.Dismiss(ReasonOutsidePress)
	return true
}

// SetReference registers the trigger bounds.
func (c *Controller) SetReference(src geometry.RectSource) {
	c.reference = src
}

// SetFloating registers the floating panel bounds.
func (c *Controller) SetFloating(src geometry.RectSource) {
	c.floating = src
}

// Reference returns the registered trigger bounds source.
func (c *Controller) Reference() geometry.RectSource {
	return c.reference
}

// OnChange registers fn to run after every applied state change. The
// returned function removes it.
func (c *Controller) OnChange(fn func(open bool, reason Reason)) func() {
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, changeListener{id: id, fn: fn})
	return func() {
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) request(next bool, reason Reason) {
	c.log.WithFields(map[string]any{
		"open":       next,
		"reason":     string(reason),
		"controlled": c.controlled,
	}).Debug("open state change requested")

	if c.onChange != nil {
		c.onChange(next, reason)
	}
	if c.controlled {
		return
	}
	c.open = next
	c.notify(next, reason)
}

func (c *Controller) notify(open bool, reason Reason) {
	for _, l := range append([]changeListener(nil), c.listeners...) {
		l.fn(open, reason)
	}
}

func inside(src geometry.RectSource, x, y int) bool {
	if src == nil {
		return false
	}
	rect, ok := src()
	return ok && rect.Contains(x, y)
}
