package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floatkit/internal/input"
)

type fixture struct {
	doc       *Document
	opener    *Element
	container *Element
	a, b, c   *Element
}

func newFixture() fixture {
	doc := NewDocument()
	opener := NewFocusable("opener")
	container := NewElement("dialog")
	a, b, c := NewFocusable("a"), NewFocusable("b"), NewFocusable("c")
	container.Append(NewElement("title"), a, NewElement("body").Append(b), c)
	doc.Root().Append(opener, container)
	return fixture{doc: doc, opener: opener, container: container, a: a, b: b, c: c}
}

func TestTrapWrapsShiftTabAndRestoresFocus(t *testing.T) {
	f := newFixture()
	require.True(t, f.doc.Focus(f.opener))

	trap := NewTrap(f.doc)
	release := trap.Activate(f.container)
	require.True(t, trap.Active())
	assert.Same(t, f.a, f.doc.ActiveElement(), "first tabbable descendant receives focus")

	require.True(t, f.doc.Focus(f.a))
	require.True(t, trap.HandleKey(input.Press(input.KeyShiftTab)))
	assert.Same(t, f.c, f.doc.ActiveElement())

	require.True(t, trap.HandleKey(input.Press(input.KeyTab)))
	assert.Same(t, f.a, f.doc.ActiveElement())

	require.True(t, trap.HandleKey(input.Press(input.KeyTab)))
	assert.Same(t, f.b, f.doc.ActiveElement())

	assert.False(t, trap.HandleKey(input.Press(input.KeyEnter)))

	release()
	assert.False(t, trap.Active())
	assert.Same(t, f.opener, f.doc.ActiveElement())
}

func TestTrapRedirectsProgrammaticFocusEscapes(t *testing.T) {
	f := newFixture()
	f.doc.Focus(f.opener)

	trap := NewTrap(f.doc)
	defer trap.Activate(f.container)()

	f.doc.Focus(f.c)
	f.doc.Focus(f.opener)
	assert.Same(t, f.a, f.doc.ActiveElement())
}

func TestTrapKeepsExistingFocusInside(t *testing.T) {
	f := newFixture()
	f.doc.Focus(f.b)

	trap := NewTrap(f.doc)
	trap.Activate(f.container)
	assert.Same(t, f.b, f.doc.ActiveElement())

	session, ok := trap.Session()
	require.True(t, ok)
	assert.Same(t, f.b, session.PreviouslyFocused)
	assert.Same(t, f.container, session.Container)
}

func TestTrapSkipsDisabledElements(t *testing.T) {
	f := newFixture()
	f.c.SetDisabled(true)
	f.doc.Focus(f.opener)

	trap := NewTrap(f.doc)
	trap.Activate(f.container)
	f.doc.Focus(f.a)

	trap.HandleKey(input.Press(input.KeyShiftTab))
	assert.Same(t, f.b, f.doc.ActiveElement())
}

func TestTrapFocusesContainerWithoutTabbables(t *testing.T) {
	doc := NewDocument()
	opener := NewFocusable("opener")
	empty := NewElement("empty-dialog").Append(NewElement("text"))
	doc.Root().Append(opener, empty)
	doc.Focus(opener)

	trap := NewTrap(doc)
	trap.Activate(empty)
	assert.Same(t, empty, doc.ActiveElement())

	assert.True(t, trap.HandleKey(input.Press(input.KeyTab)))
	assert.Same(t, empty, doc.ActiveElement())

	trap.Deactivate()
	assert.Same(t, opener, doc.ActiveElement())
	assert.False(t, empty.CanFocus(), "temporary focusability is reverted")
}

func TestTrapLeavesFocusUnsetWhenPreviousElementDetached(t *testing.T) {
	f := newFixture()
	f.doc.Focus(f.opener)

	trap := NewTrap(f.doc)
	trap.Activate(f.container)
	f.opener.Remove()

	trap.Deactivate()
	assert.Nil(t, f.doc.ActiveElement())
}

func TestTrapDeactivateSurvivesRemovedContainer(t *testing.T) {
	f := newFixture()
	f.doc.Focus(f.opener)

	trap := NewTrap(f.doc)
	trap.Activate(f.container)
	f.container.Remove()

	require.NotPanics(t, trap.Deactivate)
	require.NotPanics(t, trap.Deactivate)
	assert.Same(t, f.opener, f.doc.ActiveElement())

	// The focus-in listener is gone: focus moves freely again.
	other := NewFocusable("other")
	f.doc.Root().Append(other)
	f.doc.Focus(other)
	assert.Same(t, other, f.doc.ActiveElement())
}

func TestDocumentMoveFocusWraps(t *testing.T) {
	f := newFixture()
	require.True(t, f.doc.MoveFocus(1))
	assert.Same(t, f.opener, f.doc.ActiveElement())

	require.True(t, f.doc.MoveFocus(-1))
	assert.Same(t, f.c, f.doc.ActiveElement())
}
