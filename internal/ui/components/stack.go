package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in one direction with a fixed gap. Children that
// render to nothing are skipped and do not get a gap.
type Stack struct {
	children  []Renderable
	direction Direction
	gap       int
	align     lipgloss.Position
}

// NewStack creates a vertical, start-aligned stack.
func NewStack(children ...Renderable) *Stack {
	return &Stack{
		children:  children,
		direction: DirectionVertical,
		align:     lipgloss.Left,
	}
}

// VStack creates a vertical stack.
func VStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack aligned to the top row.
func HStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal).WithAlign(lipgloss.Top)
}

// View renders the stack with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every child with ctx and joins the results.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		var view string
		if contextual, ok := child.(ContextualRenderable); ok {
			view = contextual.ViewWithContext(ctx)
		} else {
			view = child.View()
		}
		if view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return ""
	}

	if s.direction == DirectionHorizontal {
		return lipgloss.JoinHorizontal(s.align, withGap(views, strings.Repeat(" ", s.gap), s.gap)...)
	}
	// A spacer of n-1 newlines is n empty rows.
	return lipgloss.JoinVertical(s.align, withGap(views, strings.Repeat("\n", max(s.gap-1, 0)), s.gap)...)
}

func withGap(views []string, spacer string, gap int) []string {
	if gap <= 0 {
		return views
	}
	out := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			out = append(out, spacer)
		}
		out = append(out, view)
	}
	return out
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the blank cells (horizontal) or rows (vertical) between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross-axis alignment, e.g. lipgloss.Right to right-align
// the rows of a vertical stack.
func (s *Stack) WithAlign(align lipgloss.Position) *Stack {
	s.align = align
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []Renderable {
	return s.children
}
