package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardPipeline(gap int) []Middleware {
	return []Middleware{Offset(gap), Flip(), Shift(DefaultShiftPadding)}
}

func TestComputeBottomPlacement(t *testing.T) {
	const gap = 8
	trigger := Rect{X: 100, Y: 200, Width: 50, Height: 30}
	panel := Size{Width: 200, Height: 80}

	geo, ok := Compute(trigger, panel, Bottom, Viewport(1000, 400), standardPipeline(gap)...)
	require.True(t, ok)

	assert.Equal(t, Bottom, geo.Placement)
	assert.Equal(t, 200+30+gap, geo.Y)
	assert.Equal(t, 25, geo.X, "centered under the trigger")
}

func TestComputeFlipsToTopWhenBottomOverflows(t *testing.T) {
	const gap = 8
	trigger := Rect{X: 100, Y: 200, Width: 50, Height: 30}
	panel := Size{Width: 200, Height: 80}

	geo, ok := Compute(trigger, panel, Bottom, Viewport(1000, 220), standardPipeline(gap)...)
	require.True(t, ok)

	assert.Equal(t, Top, geo.Placement)
	assert.Equal(t, 200-80-gap, geo.Y)
}

func TestComputeKeepsPlacementWhenNeitherSideFits(t *testing.T) {
	trigger := Rect{X: 10, Y: 100, Width: 20, Height: 30}
	panel := Size{Width: 20, Height: 200}

	geo, ok := Compute(trigger, panel, Bottom, Viewport(400, 250), standardPipeline(4)...)
	require.True(t, ok)

	assert.Equal(t, Bottom, geo.Placement)
	assert.Equal(t, 134, geo.Y)
}

func TestComputeFlipsHorizontalSides(t *testing.T) {
	trigger := Rect{X: 10, Y: 10, Width: 10, Height: 2}
	panel := Size{Width: 20, Height: 3}

	geo, ok := Compute(trigger, panel, Left, Viewport(100, 50), Offset(2), Flip(), Shift(0))
	require.True(t, ok)

	assert.Equal(t, Right, geo.Placement)
	assert.Equal(t, 22, geo.X)
	assert.Equal(t, 10, geo.Y)
}

func TestShiftClampsCrossAxisWithoutChangingPlacement(t *testing.T) {
	trigger := Rect{X: 950, Y: 10, Width: 50, Height: 1}
	panel := Size{Width: 200, Height: 5}

	geo, ok := Compute(trigger, panel, BottomStart, Viewport(1000, 400), standardPipeline(1)...)
	require.True(t, ok)

	assert.Equal(t, BottomStart, geo.Placement)
	assert.Equal(t, 1000-DefaultShiftPadding-200, geo.X)

	geo, ok = Compute(Rect{X: 0, Y: 10, Width: 4, Height: 1}, panel, BottomEnd, Viewport(1000, 400), standardPipeline(1)...)
	require.True(t, ok)
	assert.Equal(t, DefaultShiftPadding, geo.X)
}

func TestShiftPrefersLeadingEdgeForOversizedPanels(t *testing.T) {
	geo, ok := Compute(Rect{X: 5, Y: 5, Width: 4, Height: 1}, Size{Width: 80, Height: 2}, Bottom, Viewport(40, 20), Shift(2))
	require.True(t, ok)
	assert.Equal(t, 2, geo.X)
}

func TestAlignment(t *testing.T) {
	trigger := Rect{X: 20, Y: 5, Width: 10, Height: 1}
	panel := Size{Width: 4, Height: 2}

	cases := map[Placement]int{
		BottomStart: 20,
		Bottom:      23,
		BottomEnd:   26,
	}
	for placement, wantX := range cases {
		geo, ok := Compute(trigger, panel, placement, Viewport(100, 100))
		require.True(t, ok)
		assert.Equal(t, wantX, geo.X, placement.String())
		assert.Equal(t, 6, geo.Y, placement.String())
	}
}

func TestComputeWithoutMeasurementsNoOps(t *testing.T) {
	_, ok := Compute(Rect{}, Size{Width: 10, Height: 2}, Bottom, Viewport(80, 24))
	assert.False(t, ok)

	_, ok = Compute(Rect{X: 1, Y: 1, Width: 3, Height: 1}, Size{}, Bottom, Viewport(80, 24))
	assert.False(t, ok)
}

func TestParsePlacement(t *testing.T) {
	cases := map[string]Placement{
		"top":           Top,
		"bottom-start":  BottomStart,
		"left-center":   Left,
		" Right-End ":   RightEnd,
		"bottom":        Bottom,
		"top-start":     TopStart,
		"right-start":   RightStart,
		"left-end":      LeftEnd,
		"bottom-center": Bottom,
	}
	for input, want := range cases {
		got, err := ParsePlacement(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	for _, bad := range []string{"", "middle", "top-middle", "bottom-"} {
		_, err := ParsePlacement(bad)
		assert.Error(t, err, bad)
	}
}

func TestPlacementRoundTripsThroughString(t *testing.T) {
	all := Placements()
	require.Len(t, all, 12)
	for _, p := range all {
		parsed, err := ParsePlacement(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
}
