package focus

import (
	"github.com/alexisbeaulieu97/floatkit/internal/input"
	"github.com/alexisbeaulieu97/floatkit/internal/logger"
)

// Session records what a trap needs to undo on deactivation.
type Session struct {
	Container         *Element
	PreviouslyFocused *Element

	madeFocusable bool
}

// Trap keeps focus inside a container while active.
type Trap struct {
	doc     *Document
	session *Session
	release func()
	log     *logger.Logger
}

// NewTrap creates an inactive trap bound to doc.
func NewTrap(doc *Document) *Trap {
	return &Trap{doc: doc}
}

// WithLogger attaches a logger.
func (t *Trap) WithLogger(log *logger.Logger) *Trap {
	t.log = log.WithComponent("focus-trap")
	return t
}

// Active reports whether the trap currently holds a container.
func (t *Trap) Active() bool {
	return t.session != nil
}

// Session returns the active session.
func (t *Trap) Session() (Session, bool) {
	if t.session == nil {
		return Session{}, false
	}
	return *t.session, true
}

// Activate starts trapping focus inside container and returns Deactivate so
// callers can defer it. Activating an already active trap first releases the
// previous container.
func (t *Trap) Activate(container *Element) func() {
	if t.session != nil {
		if t.session.Container == container {
			return t.Deactivate
		}
		t.Deactivate()
	}

	session := &Session{
		Container:         container,
		PreviouslyFocused: t.doc.ActiveElement(),
	}
	t.session = session

	tabbable := container.TabbableDescendants()
	if len(tabbable) == 0 && !container.programmatic {
		container.SetProgrammaticFocus(true)
		session.madeFocusable = true
	}

	t.release = t.doc.OnFocusIn(t.redirect)

	if !container.Contains(t.doc.ActiveElement()) {
		t.focusFirst()
	}

	t.log.WithFields(map[string]any{
		"container": container.ID,
		"tabbable":  len(tabbable),
	}).Debug("focus trap activated")

	return t.Deactivate
}

// Deactivate stops trapping and restores focus to the element focused before
// activation when it is still attached. It is safe to call repeatedly and
// after the container has been removed from the document.
func (t *Trap) Deactivate() {
	session := t.session
	if session == nil {
		return
	}
	t.session = nil
	if t.release != nil {
		t.release()
		t.release = nil
	}
	if session.madeFocusable {
		session.Container.SetProgrammaticFocus(false)
	}

	prev := session.PreviouslyFocused
	restored := prev != nil && t.doc.Focus(prev)
	if !restored {
		active := t.doc.ActiveElement()
		if active == nil || session.Container.Contains(active) {
			t.doc.Blur()
		}
	}

	t.log.WithFields(map[string]any{
		"container": session.Container.ID,
		"restored":  restored,
	}).Debug("focus trap released")
}

// HandleKey wraps Tab and Shift+Tab inside the container. It reports whether
// the key was consumed.
func (t *Trap) HandleKey(ev input.Event) bool {
	if t.session == nil {
		return false
	}
	switch ev.Key {
	case input.KeyTab:
		t.cycle(1)
		return true
	case input.KeyShiftTab:
		t.cycle(-1)
		return true
	default:
		return false
	}
}

func (t *Trap) cycle(delta int) {
	container := t.session.Container
	if len(container.TabbableDescendants()) == 0 {
		t.doc.Focus(container)
		return
	}
	moveWithin(t.doc, container, delta)
}

func (t *Trap) focusFirst() {
	container := t.session.Container
	tabbable := container.TabbableDescendants()
	if len(tabbable) > 0 {
		t.doc.Focus(tabbable[0])
		return
	}
	t.doc.Focus(container)
}

// redirect pulls focus that escaped the container back to its first
// tabbable descendant.
func (t *Trap) redirect(target *Element) {
	if t.session == nil || t.session.Container.Contains(target) {
		return
	}
	if !t.doc.Attached(t.session.Container) {
		return
	}
	t.focusFirst()
}
