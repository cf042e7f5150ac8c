// Package focus models a focus tree and constrains keyboard focus to a
// subtree while a modal surface is open.
package focus

// Element is a node in a focus tree.
type Element struct {
	ID string

	focusable    bool
	disabled     bool
	programmatic bool

	parent   *Element
	children []*Element
}

// NewElement creates a detached, non-focusable element.
func NewElement(id string) *Element {
	return &Element{ID: id}
}

// NewFocusable creates a detached element that participates in tab order.
func NewFocusable(id string) *Element {
	return &Element{ID: id, focusable: true}
}

// SetFocusable toggles participation in tab order.
func (e *Element) SetFocusable(focusable bool) *Element {
	e.focusable = focusable
	return e
}

// SetDisabled marks the element disabled; disabled elements cannot take focus.
func (e *Element) SetDisabled(disabled bool) *Element {
	e.disabled = disabled
	return e
}

// SetProgrammaticFocus lets an element receive focus from code without
// joining tab order (the tabindex=-1 analogue).
func (e *Element) SetProgrammaticFocus(enabled bool) *Element {
	e.programmatic = enabled
	return e
}

// Append attaches children in order, detaching them from any prior parent.
func (e *Element) Append(children ...*Element) *Element {
	for _, child := range children {
		if child == nil || child == e {
			continue
		}
		child.Remove()
		child.parent = e
		e.children = append(e.children, child)
	}
	return e
}

// Remove detaches the element (and its subtree) from its parent.
func (e *Element) Remove() {
	if e.parent == nil {
		return
	}
	siblings := e.parent.children
	for i, sibling := range siblings {
		if sibling == e {
			e.parent.children = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// Parent returns the element's parent, or nil when detached or root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the element's children in document order.
func (e *Element) Children() []*Element {
	return append([]*Element(nil), e.children...)
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for node := other; node != nil; node = node.parent {
		if node == e {
			return true
		}
	}
	return false
}

// Tabbable reports whether the element participates in tab order.
func (e *Element) Tabbable() bool {
	return e != nil && e.focusable && !e.disabled
}

// CanFocus reports whether the element accepts focus at all.
func (e *Element) CanFocus() bool {
	return e != nil && !e.disabled && (e.focusable || e.programmatic)
}

// TabbableDescendants lists tabbable descendants in document order.
func (e *Element) TabbableDescendants() []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(node *Element) {
		for _, child := range node.children {
			if child.Tabbable() {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(e)
	return out
}

// Document owns a focus tree and tracks its active element.
type Document struct {
	root   *Element
	active *Element

	listeners []focusListener
	nextID    uint64
}

type focusListener struct {
	id uint64
	fn func(target *Element)
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{root: NewElement("document")}
}

// Root returns the document root element.
func (d *Document) Root() *Element {
	return d.root
}

// Attached reports whether e is part of this document's tree.
func (d *Document) Attached(e *Element) bool {
	return e != nil && d.root.Contains(e)
}

// ActiveElement returns the focused element. Elements removed from the tree
// lose focus implicitly.
func (d *Document) ActiveElement() *Element {
	if d.active != nil && !d.Attached(d.active) {
		d.active = nil
	}
	return d.active
}

// Focus moves focus to e and notifies focus-in listeners. It reports false
// when e cannot take focus.
func (d *Document) Focus(e *Element) bool {
	if !d.Attached(e) || !e.CanFocus() {
		return false
	}
	if d.active == e {
		return true
	}
	d.active = e

	for _, l := range append([]focusListener(nil), d.listeners...) {
		l.fn(e)
		if d.active != e {
			// A listener redirected focus; its own Focus call already
			// notified the remaining listeners.
			break
		}
	}
	return true
}

// Blur clears focus.
func (d *Document) Blur() {
	d.active = nil
}

// OnFocusIn registers fn to run whenever an element gains focus. The returned
// function removes the listener.
func (d *Document) OnFocusIn(fn func(target *Element)) func() {
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, focusListener{id: id, fn: fn})
	return func() {
		for i, l := range d.listeners {
			if l.id == id {
				d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
				return
			}
		}
	}
}

// MoveFocus advances focus through the document's tab order by delta,
// wrapping at either end.
func (d *Document) MoveFocus(delta int) bool {
	return moveWithin(d, d.root, delta)
}

func moveWithin(d *Document, scope *Element, delta int) bool {
	order := scope.TabbableDescendants()
	if len(order) == 0 {
		return false
	}

	current := -1
	active := d.ActiveElement()
	for i, el := range order {
		if el == active {
			current = i
			break
		}
	}

	var next int
	switch {
	case current < 0 && delta >= 0:
		next = 0
	case current < 0:
		next = len(order) - 1
	default:
		next = ((current+delta)%len(order) + len(order)) % len(order)
	}
	return d.Focus(order[next])
}
