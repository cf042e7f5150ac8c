// Package widgets renders the overlay state machines as bubbletea models and
// composites their floating panels over the base view.
package widgets

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/floatkit/internal/geometry"
)

const sgrReset = "\x1b[0m"

// Layer is a floating panel ready to be drawn at absolute cell coordinates.
type Layer struct {
	ID      string
	X       int
	Y       int
	Z       int
	Content string
	// Backdrop dims everything drawn beneath the layer.
	Backdrop      bool
	BackdropStyle lipgloss.Style
}

// Bounds returns the cells covered by the layer.
func (l Layer) Bounds() geometry.Rect {
	return geometry.Rect{X: l.X, Y: l.Y, Width: lipgloss.Width(l.Content), Height: lipgloss.Height(l.Content)}
}

// Stage is the top-level mount point floating panels are drawn into,
// regardless of which widget owns them.
type Stage struct {
	Width  int
	Height int
}

// NewStage creates a stage covering a terminal of the given size.
func NewStage(width, height int) Stage {
	return Stage{Width: width, Height: height}
}

// Viewport returns the stage bounds.
func (s Stage) Viewport() geometry.Rect {
	return geometry.Viewport(s.Width, s.Height)
}

// Compose draws layers over base in ascending Z order. Layers are clipped to
// the stage; cells they do not cover keep the base content and styling.
func (s Stage) Compose(base string, layers ...Layer) string {
	lines := strings.Split(base, "\n")
	if s.Height > 0 {
		for len(lines) < s.Height {
			lines = append(lines, "")
		}
		lines = lines[:s.Height]
	}

	ordered := append([]Layer(nil), layers...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Z < ordered[j].Z })

	for _, layer := range ordered {
		if layer.Content == "" {
			continue
		}
		if layer.Backdrop {
			dim(lines, layer.BackdropStyle)
		}
		for i, row := range strings.Split(layer.Content, "\n") {
			y := layer.Y + i
			if y < 0 || y >= len(lines) {
				continue
			}
			lines[y] = s.overlayLine(lines[y], row, layer.X)
		}
	}
	return strings.Join(lines, "\n")
}

func (s Stage) overlayLine(base, row string, x int) string {
	if x < 0 {
		row = ansi.TruncateLeft(row, -x, "")
		x = 0
	}
	if s.Width > 0 {
		if x >= s.Width {
			return base
		}
		row = ansi.Truncate(row, s.Width-x, "")
	}
	width := ansi.StringWidth(row)
	if width == 0 {
		return base
	}

	left := ansi.Truncate(base, x, "")
	if gap := x - ansi.StringWidth(left); gap > 0 {
		left += strings.Repeat(" ", gap)
	}
	right := ansi.TruncateLeft(base, x+width, "")

	var b strings.Builder
	b.WriteString(left)
	b.WriteString(sgrReset)
	b.WriteString(row)
	b.WriteString(sgrReset)
	b.WriteString(right)
	return b.String()
}

func dim(lines []string, style lipgloss.Style) {
	for i, line := range lines {
		lines[i] = style.Render(ansi.Strip(line))
	}
}
