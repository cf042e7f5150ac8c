package widgets

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/floatkit/internal/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/ids"
	"github.com/alexisbeaulieu97/floatkit/internal/input"
	"github.com/alexisbeaulieu97/floatkit/internal/logger"
	"github.com/alexisbeaulieu97/floatkit/internal/tooltip"
	"github.com/alexisbeaulieu97/floatkit/internal/ui/components"
)

type tooltipElapsedMsg struct {
	id         string
	generation uint64
}

// TooltipConfig configures a Tooltip. Delay, Offset and Padding honour zero;
// negative values take the tooltip package defaults.
type TooltipConfig struct {
	ID        string
	Content   string
	Placement geometry.Placement
	Delay     time.Duration
	Offset    int
	Padding   int
	Theme     components.Theme
	KeyMap    input.KeyMap
	Logger    *logger.Logger
}

// Tooltip shows content next to an anchor on hover or focus.
type Tooltip struct {
	id      string
	content string
	intent  *tooltip.Intent
	theme   components.Theme
	keys    input.KeyMap

	anchor   geometry.Rect
	viewport geometry.Rect
	hovering bool
}

// NewTooltip creates a Tooltip. The anchor is registered with SetAnchor once
// the wrapped element has been laid out.
func NewTooltip(cfg TooltipConfig) *Tooltip {
	t := &Tooltip{
		id:      ids.Resolve(cfg.ID, "tooltip"),
		content: cfg.Content,
		theme:   cfg.Theme,
		keys:    cfg.KeyMap,
		intent: tooltip.New(tooltip.Options{
			Delay:     cfg.Delay,
			Placement: cfg.Placement,
			Offset:    cfg.Offset,
			Padding:   cfg.Padding,
			Logger:    cfg.Logger,
		}),
	}
	if t.theme.Variants == nil {
		t.theme = components.DefaultTheme()
	}
	if t.keys.Dismiss.Keys() == nil {
		t.keys = input.DefaultKeyMap()
	}
	t.intent.Mount(
		func() (geometry.Rect, bool) { return t.anchor, !t.anchor.Empty() },
		func() (geometry.Size, bool) { return t.size(), t.content != "" },
		func() geometry.Rect { return t.viewport },
	)
	return t
}

// ID returns the tooltip id.
func (t *Tooltip) ID() string {
	return t.id
}

// Intent exposes the hover intent state.
func (t *Tooltip) Intent() *tooltip.Intent {
	return t.intent
}

// SetAnchor records where the wrapped element was drawn and repositions the
// tooltip if it moved or resized.
func (t *Tooltip) SetAnchor(anchor geometry.Rect) {
	prev := t.anchor
	t.anchor = anchor
	switch {
	case prev.Size() != anchor.Size():
		t.intent.Notify(geometry.ReasonReferenceResize)
	case prev != anchor:
		t.intent.Notify(geometry.ReasonReferenceMove)
	}
}

// SetViewport records the terminal size.
func (t *Tooltip) SetViewport(viewport geometry.Rect) {
	t.viewport = viewport
	t.intent.Notify(geometry.ReasonViewportResize)
}

// SetContent replaces the tooltip text.
func (t *Tooltip) SetContent(content string) {
	t.content = content
	t.intent.Notify(geometry.ReasonFloatingResize)
}

// Focus opens the tooltip immediately, as keyboard focus on the anchor does.
func (t *Tooltip) Focus() {
	t.intent.Focus()
}

// Blur hides the tooltip.
func (t *Tooltip) Blur() {
	t.intent.Blur()
}

// Init implements tea.Model.
func (t *Tooltip) Init() tea.Cmd {
	return nil
}

// Update handles hover, focus timers, Escape and resizes.
func (t *Tooltip) Update(msg tea.Msg) (*Tooltip, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.SetViewport(geometry.Viewport(msg.Width, msg.Height))
	case tooltipElapsedMsg:
		if msg.id == t.id {
			t.intent.Elapsed(msg.generation)
		}
	case tea.KeyMsg:
		t.intent.HandleKey(t.keys.Translate(msg))
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionMotion {
			return t, nil
		}
		over := t.anchor.Contains(msg.X, msg.Y)
		switch {
		case over && !t.hovering:
			t.hovering = true
			if pending, ok := t.intent.PointerEnter(); ok {
				return t, t.wait(pending)
			}
		case !over && t.hovering:
			t.hovering = false
			t.intent.PointerLeave()
		}
	}
	return t, nil
}

func (t *Tooltip) wait(pending tooltip.Pending) tea.Cmd {
	id := t.id
	return tea.Tick(pending.Delay, func(time.Time) tea.Msg {
		return tooltipElapsedMsg{id: id, generation: pending.Generation}
	})
}

// Visible reports whether the tooltip is shown and positioned.
func (t *Tooltip) Visible() bool {
	_, ok := t.intent.Geometry()
	return t.intent.IsOpen() && ok
}

// Layer returns the positioned tooltip while shown.
func (t *Tooltip) Layer() (Layer, bool) {
	g, ok := t.intent.Geometry()
	if !t.intent.IsOpen() || !ok {
		return Layer{}, false
	}
	return Layer{ID: t.id, X: g.X, Y: g.Y, Z: 20, Content: t.render()}, true
}

// Semantics exposes role=tooltip only while shown.
func (t *Tooltip) Semantics() (Semantics, bool) {
	if !t.Visible() {
		return Semantics{}, false
	}
	return Semantics{ID: t.id, Role: "tooltip", Label: t.content}, true
}

func (t *Tooltip) render() string {
	return components.ResolveSurface(t.theme, components.SurfaceTooltip).Render(t.content)
}

func (t *Tooltip) size() geometry.Size {
	rendered := t.render()
	return geometry.Size{Width: lipgloss.Width(rendered), Height: lipgloss.Height(rendered)}
}
