package widgets

import (
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floatkit/internal/clock"
	"github.com/alexisbeaulieu97/floatkit/internal/focus"
	"github.com/alexisbeaulieu97/floatkit/internal/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/toast"
	"github.com/alexisbeaulieu97/floatkit/internal/tooltip"
	"github.com/alexisbeaulieu97/floatkit/internal/ui/components"
)

func newSaveTooltip() *Tooltip {
	tip := NewTooltip(TooltipConfig{
		ID:        "save-tip",
		Content:   "Save",
		Placement: geometry.Top,
		Delay:     5 * time.Millisecond,
		Offset:    tooltip.DefaultOffset,
		Padding:   tooltip.DefaultPadding,
	})
	tip.SetViewport(geometry.Viewport(80, 24))
	tip.SetAnchor(geometry.Rect{X: 30, Y: 10, Width: 10, Height: 1})
	return tip
}

func TestTooltipOpensAfterHoverDelay(t *testing.T) {
	tip := newSaveTooltip()

	_, cmd := tip.Update(motion(32, 10))
	require.NotNil(t, cmd)
	assert.False(t, tip.Visible(), "hover waits for the delay")

	tip.Update(cmd())
	require.True(t, tip.Visible())

	layer, ok := tip.Layer()
	require.True(t, ok)
	assert.Equal(t, 1, layer.Y, "eight rows of gap above the anchor")
	assert.Equal(t, "Save", strings.TrimSpace(ansi.Strip(layer.Content)))

	sem, ok := tip.Semantics()
	require.True(t, ok)
	assert.Equal(t, "tooltip", sem.Role)

	tip.Update(motion(0, 0))
	assert.False(t, tip.Visible(), "leaving closes immediately")
	_, ok = tip.Semantics()
	assert.False(t, ok)
}

func TestTooltipZeroDelayAndOffset(t *testing.T) {
	tip := NewTooltip(TooltipConfig{ID: "flush-tip", Content: "Save", Placement: geometry.Top})
	tip.SetViewport(geometry.Viewport(80, 24))
	tip.SetAnchor(geometry.Rect{X: 30, Y: 10, Width: 10, Height: 1})

	_, cmd := tip.Update(motion(32, 10))
	assert.Nil(t, cmd, "no timer without a delay")
	require.True(t, tip.Visible())

	layer, ok := tip.Layer()
	require.True(t, ok)
	assert.Equal(t, 9, layer.Y, "directly above the anchor")
}

func TestTooltipIgnoresStaleTimer(t *testing.T) {
	tip := newSaveTooltip()

	_, first := tip.Update(motion(32, 10))
	tip.Update(motion(0, 0))
	_, second := tip.Update(motion(33, 10))
	require.NotNil(t, first)
	require.NotNil(t, second)

	tip.Update(first())
	assert.False(t, tip.Visible())

	tip.Update(second())
	assert.True(t, tip.Visible())
}

func TestTooltipFocusAndEscape(t *testing.T) {
	tip := newSaveTooltip()

	tip.Focus()
	assert.True(t, tip.Visible())

	tip.Update(keyMsg(tea.KeyEsc))
	assert.False(t, tip.Visible())

	tip.Focus()
	tip.Blur()
	assert.False(t, tip.Visible())
}

func TestTooltipFollowsAnchor(t *testing.T) {
	tip := newSaveTooltip()
	tip.Focus()

	before, ok := tip.Layer()
	require.True(t, ok)

	tip.SetAnchor(geometry.Rect{X: 40, Y: 10, Width: 10, Height: 1})
	after, ok := tip.Layer()
	require.True(t, ok)
	assert.Equal(t, before.X+10, after.X)
}

type modalFixture struct {
	doc    *focus.Document
	opener *focus.Element
	modal  *Modal
	closes int
}

func newModalFixture() *modalFixture {
	f := &modalFixture{doc: focus.NewDocument(), opener: focus.NewFocusable("open-dialog")}
	f.doc.Root().Append(f.opener)
	f.doc.Focus(f.opener)
	f.modal = NewModal(ModalConfig{
		ID:       "confirm",
		Title:    "Delete file?",
		Body:     "This cannot be undone.",
		Actions:  []string{"Cancel", "Delete"},
		Document: f.doc,
		OnClose:  func() { f.closes++ },
	})
	f.modal.SetViewport(geometry.Viewport(80, 24))
	return f
}

func TestModalTrapsFocusAndRestoresOpener(t *testing.T) {
	f := newModalFixture()
	f.modal.SetOpen(true)

	action, ok := f.modal.FocusedAction()
	require.True(t, ok)
	assert.Equal(t, "Cancel", action)

	f.modal.Update(keyMsg(tea.KeyTab))
	action, _ = f.modal.FocusedAction()
	assert.Equal(t, "Delete", action)

	f.modal.Update(keyMsg(tea.KeyTab))
	action, _ = f.modal.FocusedAction()
	assert.Equal(t, "Cancel", action, "tab wraps to the first control")

	f.modal.Update(keyMsg(tea.KeyShiftTab))
	action, _ = f.modal.FocusedAction()
	assert.Equal(t, "Delete", action)

	_, cmd := f.modal.Update(keyMsg(tea.KeyEnter))
	assert.Equal(t, []tea.Msg{ModalActionMsg{ID: "confirm", Action: "Delete"}}, collect(cmd))

	f.modal.SetOpen(false)
	assert.Same(t, f.opener, f.doc.ActiveElement())
	assert.False(t, f.doc.Attached(f.modal.container))
}

func TestModalEscapeAndBackdropRequestClose(t *testing.T) {
	f := newModalFixture()

	f.modal.Update(keyMsg(tea.KeyEsc))
	assert.Zero(t, f.closes, "closed dialog ignores keys")

	f.modal.SetOpen(true)
	f.modal.Update(keyMsg(tea.KeyEsc))
	assert.Equal(t, 1, f.closes)
	assert.True(t, f.modal.Open(), "the owner decides when to close")

	layer, ok := f.modal.Layer()
	require.True(t, ok)
	f.modal.Update(press(layer.X+1, layer.Y+1))
	assert.Equal(t, 1, f.closes, "press inside the dialog does not close")

	f.modal.Update(press(0, 0))
	assert.Equal(t, 2, f.closes)
}

func TestModalLayerCentredWithBackdrop(t *testing.T) {
	f := newModalFixture()
	_, ok := f.modal.Layer()
	assert.False(t, ok)

	f.modal.SetOpen(true)
	layer, ok := f.modal.Layer()
	require.True(t, ok)
	assert.True(t, layer.Backdrop)

	bounds := layer.Bounds()
	assert.InDelta(t, 80-bounds.Right(), bounds.X, 1)
	assert.InDelta(t, 24-bounds.Bottom(), bounds.Y, 1)
	assert.Contains(t, ansi.Strip(layer.Content), "Delete file?")
}

func TestModalFooterClickActivatesAction(t *testing.T) {
	f := newModalFixture()
	f.modal.SetOpen(true)
	layer, _ := f.modal.Layer()

	lines := plainLines(layer.Content)
	row := -1
	col := -1
	for i, line := range lines {
		if idx := strings.Index(line, "Delete"); idx >= 0 && !strings.Contains(line, "file?") {
			row = i
			col = ansi.StringWidth(line[:idx])
		}
	}
	require.GreaterOrEqual(t, row, 0)

	_, cmd := f.modal.Update(press(layer.X+col, layer.Y+row))
	assert.Equal(t, []tea.Msg{ModalActionMsg{ID: "confirm", Action: "Delete"}}, collect(cmd))
	action, _ := f.modal.FocusedAction()
	assert.Equal(t, "Delete", action)
}

func TestModalSemantics(t *testing.T) {
	f := newModalFixture()
	_, ok := f.modal.Semantics()
	assert.False(t, ok)

	f.modal.SetOpen(true)
	sem, ok := f.modal.Semantics()
	require.True(t, ok)
	assert.Equal(t, "dialog", sem.Role)
	assert.True(t, sem.Modal)
	assert.Equal(t, "Delete file?", sem.Label)
	require.Len(t, sem.Children, 2)
	assert.True(t, sem.Children[0].Selected)
}

func receive(t *testing.T, c *ToastContainer) {
	t.Helper()
	msg := c.wait()()
	received, ok := msg.(toastReceivedMsg)
	require.True(t, ok)
	c.Update(received)
}

func TestToastContainerExpiresFromDisplayTime(t *testing.T) {
	queue := toast.NewQueue(nil)
	clk := clock.NewFake()
	c := NewToastContainer(ToastConfig{ID: "toaster", Queue: queue, Clock: clk})
	defer c.Close()
	c.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	queue.Emit(toast.Entry{Title: "Saved", Variant: toast.VariantSuccess})
	receive(t, c)
	require.Len(t, c.Items(), 1)
	first, ok := c.list.Deadline()
	require.True(t, ok)
	assert.Equal(t, clk.Now().Add(toast.DefaultDuration), first.At)

	clk.Advance(time.Second)
	queue.Emit(toast.Entry{Title: "Synced"})
	receive(t, c)
	require.Len(t, c.Items(), 2)

	c.Update(toastExpiredMsg{id: "toaster", deadline: first})
	assert.Len(t, c.Items(), 2, "superseded deadline is ignored")

	latest, ok := c.list.Deadline()
	require.True(t, ok)
	_, cmd := c.Update(toastExpiredMsg{id: "toaster", deadline: latest})
	assert.NotNil(t, cmd, "the remaining entry is rescheduled")
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "Saved", c.Items()[0].Title)

	c.Update(toastExpiredMsg{id: "other", deadline: latest})
	assert.Len(t, c.Items(), 1)
}

func TestToastContainerCloseButton(t *testing.T) {
	queue := toast.NewQueue(nil)
	c := NewToastContainer(ToastConfig{ID: "toaster", Queue: queue, Clock: clock.NewFake()})
	defer c.Close()
	c.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	queue.Emit(toast.Entry{Title: "Heads up", Description: "Disk almost full"})
	receive(t, c)

	layer, ok := c.Layer()
	require.True(t, ok)
	assert.Equal(t, 80-1, layer.Bounds().Right())
	assert.Equal(t, 24-1, layer.Bounds().Bottom())

	lines := plainLines(layer.Content)
	row, col := -1, -1
	for i, line := range lines {
		if idx := strings.Index(line, components.DismissGlyph); idx >= 0 {
			row, col = i, ansi.StringWidth(line[:idx])
			break
		}
	}
	require.GreaterOrEqual(t, row, 0)

	c.Update(press(layer.X+col, layer.Y+row))
	assert.Empty(t, c.Items())
	_, ok = c.Layer()
	assert.False(t, ok)
}

func TestToastContainerBurstKeepsOrderWithoutGoroutines(t *testing.T) {
	queue := toast.NewQueue(nil)
	c := NewToastContainer(ToastConfig{ID: "toaster", Queue: queue, Clock: clock.NewFake()})
	before := runtime.NumGoroutine()

	const burst = 100
	for i := 0; i < burst; i++ {
		queue.Emit(toast.Entry{Title: "burst"})
	}
	assert.LessOrEqual(t, runtime.NumGoroutine(), before+5, "emitting never parks a goroutine per entry")

	for i := 1; i <= burst; i++ {
		msg, ok := c.wait()().(toastReceivedMsg)
		require.True(t, ok)
		require.Equal(t, strconv.Itoa(i), msg.entry.ID)
	}

	queue.Emit(toast.Entry{Title: "dropped"})
	c.Close()
	c.Close()
	assert.Nil(t, c.wait()(), "a closed container yields nothing")
	assert.Zero(t, queue.Subscribers())

	queue.Emit(toast.Entry{Title: "after close"})
	assert.Nil(t, c.wait()())
}

func TestToastContainerCloseReleasesWaiter(t *testing.T) {
	c := NewToastContainer(ToastConfig{ID: "toaster", Queue: toast.NewQueue(nil), Clock: clock.NewFake()})
	got := make(chan tea.Msg, 1)
	go func() { got <- c.wait()() }()

	c.Close()
	select {
	case msg := <-got:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("wait did not return after Close")
	}
}

func TestToastContainerSemanticsAndLateSubscription(t *testing.T) {
	queue := toast.NewQueue(nil)
	queue.Emit(toast.Entry{Title: "before mount"})

	c := NewToastContainer(ToastConfig{ID: "toaster", Queue: queue, Clock: clock.NewFake(), MaxVisible: 1})
	defer c.Close()

	sem := c.Semantics()
	assert.Equal(t, "region", sem.Role)
	assert.Empty(t, sem.Children)

	queue.Emit(toast.Entry{Title: "one"})
	queue.Emit(toast.Entry{Title: "two"})
	receive(t, c)
	receive(t, c)

	sem = c.Semantics()
	require.Len(t, sem.Children, 1, "only the newest entries are shown")
	assert.Equal(t, "status", sem.Children[0].Role)
	assert.Equal(t, "two", sem.Children[0].Label)
	assert.Len(t, c.Items(), 2)
}
