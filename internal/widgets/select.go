package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/floatkit/internal/combobox"
	"github.com/alexisbeaulieu97/floatkit/internal/disclosure"
	"github.com/alexisbeaulieu97/floatkit/internal/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/ids"
	"github.com/alexisbeaulieu97/floatkit/internal/input"
	"github.com/alexisbeaulieu97/floatkit/internal/ui/components"
)

// DefaultSelectOffset is the gap between trigger and list, in rows.
const DefaultSelectOffset = 1

// SelectChangedMsg reports a committed value.
type SelectChangedMsg struct {
	ID    string
	Value string
}

// SelectConfig configures a Select. The embedded options carry the value and
// open state semantics. Offset honours zero; a negative Offset takes
// DefaultSelectOffset.
type SelectConfig struct {
	combobox.Options

	ID        string
	Width     int
	Offset    int
	Placement geometry.Placement
	Theme     components.Theme
	KeyMap    input.KeyMap
}

// Select is a combobox trigger with a floating listbox.
type Select struct {
	id      string
	machine *combobox.Machine
	engine  *geometry.Engine
	keys    input.KeyMap
	theme   components.Theme
	width   int

	origin   geometry.Rect
	viewport geometry.Rect
	focused  bool

	geometry geometry.Geometry
	placed   bool

	committed []string
}

// NewSelect creates a Select.
func NewSelect(cfg SelectConfig) *Select {
	s := &Select{
		id:    ids.Resolve(cfg.ID, "select"),
		keys:  cfg.KeyMap,
		theme: cfg.Theme,
		width: cfg.Width,
	}
	if s.theme.Variants == nil {
		s.theme = components.DefaultTheme()
	}
	if s.keys.Down.Keys() == nil {
		s.keys = input.DefaultKeyMap()
	}
	if s.width <= 0 {
		s.width = 24
	}
	offset := cfg.Offset
	if offset < 0 {
		offset = DefaultSelectOffset
	}

	opts := cfg.Options
	onChange := opts.OnChange
	opts.OnChange = func(value string) {
		s.committed = append(s.committed, value)
		if onChange != nil {
			onChange(value)
		}
	}
	s.machine = combobox.New(opts)
	s.engine = geometry.NewEngine(cfg.Placement,
		geometry.Offset(offset),
		geometry.Flip(),
		geometry.Shift(0),
	).WithLogger(opts.Logger)

	d := s.machine.Disclosure()
	d.SetReference(func() (geometry.Rect, bool) { return s.reference() })
	d.SetFloating(func() (geometry.Rect, bool) { return s.panelBounds() })
	d.OnChange(func(open bool, _ disclosure.Reason) {
		s.placed = false
		if open {
			s.place()
		}
	})
	if s.machine.IsOpen() {
		s.place()
	}
	return s
}

// ID returns the trigger id.
func (s *Select) ID() string {
	return s.id
}

// Machine exposes the underlying state machine.
func (s *Select) Machine() *combobox.Machine {
	return s.machine
}

// SetOptions replaces the option list. An open list is placed again so its
// bounds follow the new row count.
func (s *Select) SetOptions(items []combobox.Option) {
	s.machine.SetOptions(items)
	if s.machine.IsOpen() {
		s.place()
	}
}

// Focus gives the trigger keyboard focus.
func (s *Select) Focus() {
	s.focused = true
}

// Blur removes keyboard focus and closes the list.
func (s *Select) Blur() {
	s.focused = false
	s.machine.Close(disclosure.ReasonFocus)
}

// Focused reports whether the trigger has keyboard focus.
func (s *Select) Focused() bool {
	return s.focused
}

// SetOrigin records where the trigger was drawn on screen.
func (s *Select) SetOrigin(x, y int) {
	s.origin = geometry.Rect{X: x, Y: y, Width: lipgloss.Width(s.renderTrigger()), Height: lipgloss.Height(s.renderTrigger())}
}

// SetViewport records the terminal size.
func (s *Select) SetViewport(viewport geometry.Rect) {
	s.viewport = viewport
	if s.machine.IsOpen() {
		s.place()
	}
}

// Init implements tea.Model.
func (s *Select) Init() tea.Cmd {
	return nil
}

// Update handles key and mouse input.
func (s *Select) Update(msg tea.Msg) (*Select, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetViewport(geometry.Viewport(msg.Width, msg.Height))
	case tea.KeyMsg:
		if !s.focused {
			return s, nil
		}
		s.machine.HandleKey(s.keys.Translate(msg))
	case tea.MouseMsg:
		s.handleMouse(msg)
	}
	return s, s.flush()
}

func (s *Select) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if s.origin.Contains(msg.X, msg.Y) {
			s.focused = true
			s.machine.Toggle()
			return
		}
		if row, ok := s.rowAt(msg.X, msg.Y); ok {
			s.machine.Click(row)
			return
		}
		s.machine.Disclosure().HandlePointerDown(msg.X, msg.Y)
	case msg.Action == tea.MouseActionMotion:
		if row, ok := s.rowAt(msg.X, msg.Y); ok {
			s.machine.Hover(row)
		}
	}
}

func (s *Select) flush() tea.Cmd {
	if len(s.committed) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.committed))
	for _, value := range s.committed {
		msg := SelectChangedMsg{ID: s.id, Value: value}
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	s.committed = nil
	return tea.Batch(cmds...)
}

// View renders the trigger and, when set, the error message.
func (s *Select) View() string {
	trigger := s.renderTrigger()
	if msg := s.machine.Error(); msg != "" {
		errText := components.ResolveSurface(s.theme, components.SurfaceErrorText).Render(msg)
		return lipgloss.JoinVertical(lipgloss.Left, trigger, errText)
	}
	return trigger
}

// Layer returns the floating listbox while open.
func (s *Select) Layer() (Layer, bool) {
	if !s.machine.IsOpen() || !s.placed {
		return Layer{}, false
	}
	return Layer{
		ID:      ids.Related(s.id, "listbox"),
		X:       s.geometry.X,
		Y:       s.geometry.Y,
		Z:       10,
		Content: s.renderList(),
	}, true
}

// Geometry returns the list position computed when it opened.
func (s *Select) Geometry() (geometry.Geometry, bool) {
	return s.geometry, s.placed && s.machine.IsOpen()
}

// Semantics describes the combobox and, while open, its listbox.
func (s *Select) Semantics() Semantics {
	listID := ids.Related(s.id, "listbox")
	node := Semantics{
		ID:       s.id,
		Role:     "combobox",
		Label:    s.machine.Label(),
		Expanded: s.machine.IsOpen(),
		Disabled: s.machine.Disabled(),
		Invalid:  s.machine.Error() != "",
		Controls: listID,
	}
	if !s.machine.IsOpen() {
		return node
	}

	value, hasValue := s.machine.Value()
	listbox := Semantics{ID: listID, Role: "listbox", LabelledBy: s.id}
	for _, opt := range s.machine.Items() {
		listbox.Children = append(listbox.Children, Semantics{
			Role:     "option",
			Label:    opt.Text(),
			Selected: hasValue && opt.Value == value,
			Disabled: opt.Disabled,
		})
	}
	node.Children = []Semantics{listbox}
	return node
}

func (s *Select) triggerState() components.TriggerState {
	switch {
	case s.machine.Disabled():
		return components.TriggerDisabled
	case s.machine.Error() != "":
		return components.TriggerInvalid
	case s.machine.IsOpen():
		return components.TriggerOpen
	case s.focused:
		return components.TriggerFocused
	default:
		return components.TriggerIdle
	}
}

func (s *Select) renderTrigger() string {
	style := components.ResolveTrigger(s.theme, s.triggerState())
	inner := max(s.width-style.GetHorizontalFrameSize(), 3)

	label := s.machine.Label()
	if _, ok := s.machine.Selected(); !ok {
		label = components.ResolveSurface(s.theme, components.SurfacePlaceholder).Render(label)
	}
	caret := "▾"
	if s.machine.IsOpen() {
		caret = "▴"
	}
	fill := max(inner-lipgloss.Width(label)-lipgloss.Width(caret), 1)
	return style.Render(label + strings.Repeat(" ", fill) + caret)
}

func (s *Select) renderList() string {
	ctx := components.RenderContext{Theme: s.theme}
	inner := s.listWidth() - components.ResolveCard(s.theme, components.CardVariantPanel).GetHorizontalFrameSize()

	value, hasValue := s.machine.Value()
	_, activeRow, _ := s.machine.Active()

	list := components.NewCard().WithVariant(components.CardVariantPanel)
	for i, opt := range s.machine.Items() {
		var state components.OptionState
		marker := "  "
		if hasValue && opt.Value == value {
			state |= components.OptionSelected
			marker = "✓ "
		}
		if i == activeRow {
			state |= components.OptionActive
		}
		if opt.Disabled {
			state |= components.OptionDisabled
		}
		list.Add(components.NewText(components.ResolveOption(s.theme, state).Width(inner).Render(marker + opt.Text())))
	}
	if len(s.machine.Items()) == 0 {
		list.Add(components.NewText(components.ResolveSurface(s.theme, components.SurfacePlaceholder).Width(inner).Render("No options")))
	}
	return list.ViewWithContext(ctx)
}

func (s *Select) listWidth() int {
	widest := 0
	for _, opt := range s.machine.Items() {
		widest = max(widest, lipgloss.Width(opt.Text()))
	}
	// marker, option padding and border
	return max(s.origin.Width, s.width, widest+6)
}

func (s *Select) listSize() geometry.Size {
	return geometry.Size{Width: s.listWidth(), Height: max(len(s.machine.Items()), 1) + 2}
}

func (s *Select) reference() (geometry.Rect, bool) {
	return s.origin, !s.origin.Empty()
}

func (s *Select) panelBounds() (geometry.Rect, bool) {
	if !s.placed {
		return geometry.Rect{}, false
	}
	return geometry.NewRect(s.geometry.X, s.geometry.Y, s.listSize()), true
}

// place positions the list once per open; the trigger cannot move while its
// own list is open.
func (s *Select) place() {
	ref, ok := s.reference()
	if !ok {
		s.placed = false
		return
	}
	viewport := s.viewport
	if viewport.Empty() {
		viewport = geometry.Viewport(ref.Right()+s.listWidth(), ref.Bottom()+s.listSize().Height+1)
	}
	s.geometry, s.placed = s.engine.Compute(ref, s.listSize(), viewport)
}

// rowAt maps a cell inside the open list to an option index.
func (s *Select) rowAt(x, y int) (int, bool) {
	bounds, ok := s.panelBounds()
	if !ok || !s.machine.IsOpen() || !bounds.Contains(x, y) {
		return 0, false
	}
	row := y - bounds.Y - 1
	if row < 0 || row >= len(s.machine.Items()) {
		return 0, false
	}
	return row, true
}
