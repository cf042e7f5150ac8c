// Package geometry positions floating panels (dropdowns, tooltips) next to
// the element that opened them. Coordinates are terminal cells.
package geometry

// Size is a width/height pair.
type Size struct {
	Width  int
	Height int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle with its origin at the top-left cell.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect builds a Rect from an origin and a size.
func NewRect(x, y int, size Size) Rect {
	return Rect{X: x, Y: y, Width: size.Width, Height: size.Height}
}

// Viewport returns a rectangle anchored at the origin.
func Viewport(width, height int) Rect {
	return Rect{Width: width, Height: height}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
