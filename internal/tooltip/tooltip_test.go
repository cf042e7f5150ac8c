package tooltip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floatkit/internal/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/input"
)

func TestHoverOpensAfterDelay(t *testing.T) {
	intent := New(DefaultOptions())
	assert.Equal(t, DefaultDelay, intent.Delay())

	pending, ok := intent.PointerEnter()
	require.True(t, ok)
	assert.Equal(t, 200*time.Millisecond, pending.Delay)
	assert.False(t, intent.IsOpen())

	assert.True(t, intent.Elapsed(pending.Generation))
	assert.True(t, intent.IsOpen())

	_, ok = intent.PointerEnter()
	assert.False(t, ok, "already shown")
}

func TestLeaveCancelsPendingOpen(t *testing.T) {
	intent := New(Options{Delay: 50 * time.Millisecond})
	pending, _ := intent.PointerEnter()
	intent.PointerLeave()

	assert.False(t, intent.Elapsed(pending.Generation))
	assert.False(t, intent.IsOpen())
}

func TestReenterInvalidatesEarlierTimer(t *testing.T) {
	intent := New(DefaultOptions())
	first, _ := intent.PointerEnter()
	intent.Blur()
	second, _ := intent.PointerEnter()

	assert.False(t, intent.Elapsed(first.Generation))
	assert.True(t, intent.Elapsed(second.Generation))
}

func TestFocusOpensImmediatelyAndEscapeCloses(t *testing.T) {
	intent := New(Options{})
	intent.Focus()
	assert.True(t, intent.IsOpen())

	assert.False(t, intent.HandleKey(input.Press(input.KeyEnter)))
	assert.True(t, intent.HandleKey(input.Press(input.KeyEscape)))
	assert.False(t, intent.IsOpen())
}

func TestZeroDelayOpensOnEnter(t *testing.T) {
	intent := New(Options{Delay: 0})
	assert.Zero(t, intent.Delay())
	_, ok := intent.PointerEnter()
	assert.False(t, ok)
	assert.True(t, intent.IsOpen())

	intent.PointerLeave()
	assert.False(t, intent.IsOpen())
}

func TestNegativeOptionsTakeDefaults(t *testing.T) {
	intent := New(Options{Delay: -1, Offset: -1, Padding: -1})
	assert.Equal(t, DefaultDelay, intent.Delay())
}

func TestZeroOffsetTouchesReference(t *testing.T) {
	ref := geometry.Rect{X: 30, Y: 10, Width: 8, Height: 1}
	intent := New(Options{Placement: geometry.Top, Offset: 0, Padding: 0})
	intent.Mount(
		func() (geometry.Rect, bool) { return ref, true },
		func() (geometry.Size, bool) { return geometry.Size{Width: 8, Height: 1}, true },
		func() geometry.Rect { return geometry.Viewport(80, 24) },
	)
	intent.Focus()
	g, ok := intent.Geometry()
	require.True(t, ok)
	assert.Equal(t, 9, g.Y, "no gap between tooltip and reference")
}

func TestTracksPositionWhileShown(t *testing.T) {
	ref := geometry.Rect{X: 30, Y: 10, Width: 8, Height: 1}
	viewport := geometry.Viewport(80, 24)

	intent := New(Options{Placement: geometry.Top, Offset: 1, Padding: 1})
	intent.Mount(
		func() (geometry.Rect, bool) { return ref, true },
		func() (geometry.Size, bool) { return geometry.Size{Width: 12, Height: 1}, true },
		func() geometry.Rect { return viewport },
	)

	_, ok := intent.Geometry()
	assert.False(t, ok, "hidden tooltips are not positioned")

	intent.Focus()
	g, ok := intent.Geometry()
	require.True(t, ok)
	assert.Equal(t, geometry.Top, g.Placement)
	assert.Equal(t, 8, g.Y)
	assert.Equal(t, 28, g.X)

	ref.Y = 1
	g, ok = intent.Notify(geometry.ReasonReferenceMove)
	require.True(t, ok)
	assert.Equal(t, geometry.Bottom, g.Placement)
	assert.Equal(t, 3, g.Y)

	intent.Blur()
	_, ok = intent.Notify(geometry.ReasonViewportResize)
	assert.False(t, ok)
}
