package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/floatkit/internal/focus"
	"github.com/alexisbeaulieu97/floatkit/internal/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/ids"
	"github.com/alexisbeaulieu97/floatkit/internal/input"
	"github.com/alexisbeaulieu97/floatkit/internal/logger"
	"github.com/alexisbeaulieu97/floatkit/internal/ui/components"
)

// ModalActionMsg reports an activated footer action.
type ModalActionMsg struct {
	ID     string
	Action string
}

// ModalConfig configures a Modal.
type ModalConfig struct {
	ID         string
	Title      string
	Body       string
	Actions    []string
	Label      string
	LabelledBy string
	Width      int
	// OnClose runs on Escape and backdrop presses. The caller decides
	// whether to close by calling SetOpen(false).
	OnClose  func()
	Document *focus.Document
	Theme    components.Theme
	KeyMap   input.KeyMap
	Logger   *logger.Logger
}

// Modal is a dialog drawn over a dimmed backdrop with focus trapped inside.
type Modal struct {
	cfg   ModalConfig
	id    string
	theme components.Theme
	keys  input.KeyMap

	doc       *focus.Document
	container *focus.Element
	actions   []*focus.Element
	trap      *focus.Trap

	open     bool
	viewport geometry.Rect
}

// NewModal creates a closed Modal. Without a Document it owns a private one.
func NewModal(cfg ModalConfig) *Modal {
	m := &Modal{
		cfg:   cfg,
		id:    ids.Resolve(cfg.ID, "modal"),
		theme: cfg.Theme,
		keys:  cfg.KeyMap,
		doc:   cfg.Document,
	}
	if m.theme.Variants == nil {
		m.theme = components.DefaultTheme()
	}
	if m.keys.Next.Keys() == nil {
		m.keys = input.DefaultKeyMap()
	}
	if m.doc == nil {
		m.doc = focus.NewDocument()
	}
	m.trap = focus.NewTrap(m.doc).WithLogger(cfg.Logger)

	m.container = focus.NewElement(m.id)
	for _, action := range cfg.Actions {
		el := focus.NewFocusable(ids.Related(m.id, action))
		m.actions = append(m.actions, el)
		m.container.Append(el)
	}
	return m
}

// ID returns the dialog id.
func (m *Modal) ID() string {
	return m.id
}

// Open reports whether the dialog is shown.
func (m *Modal) Open() bool {
	return m.open
}

// Document returns the focus tree the dialog mounts into.
func (m *Modal) Document() *focus.Document {
	return m.doc
}

// SetOpen shows or hides the dialog. Opening mounts the dialog at the
// document root and traps focus; closing releases the trap, restoring focus
// to whatever held it before.
func (m *Modal) SetOpen(open bool) {
	if open == m.open {
		return
	}
	m.open = open
	if open {
		m.doc.Root().Append(m.container)
		m.trap.Activate(m.container)
		return
	}
	m.trap.Deactivate()
	m.container.Remove()
}

// SetViewport records the terminal size.
func (m *Modal) SetViewport(viewport geometry.Rect) {
	m.viewport = viewport
}

// FocusedAction returns the footer action holding focus.
func (m *Modal) FocusedAction() (string, bool) {
	active := m.doc.ActiveElement()
	for i, el := range m.actions {
		if el == active {
			return m.cfg.Actions[i], true
		}
	}
	return "", false
}

// Init implements tea.Model.
func (m *Modal) Init() tea.Cmd {
	return nil
}

// Update handles keys and pointer presses while open.
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetViewport(geometry.Viewport(msg.Width, msg.Height))
		return m, nil
	}
	if !m.open {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		ev := m.keys.Translate(msg)
		switch ev.Key {
		case input.KeyEscape:
			m.requestClose()
		case input.KeyTab, input.KeyShiftTab:
			m.trap.HandleKey(ev)
		case input.KeyEnter, input.KeySpace:
			if action, ok := m.FocusedAction(); ok {
				return m, m.activate(action)
			}
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		layer, _ := m.Layer()
		if !layer.Bounds().Contains(msg.X, msg.Y) {
			m.requestClose()
			return m, nil
		}
		if i, ok := m.actionAt(layer, msg.X, msg.Y); ok {
			m.doc.Focus(m.actions[i])
			return m, m.activate(m.cfg.Actions[i])
		}
	}
	return m, nil
}

func (m *Modal) requestClose() {
	if m.cfg.OnClose != nil {
		m.cfg.OnClose()
	}
}

func (m *Modal) activate(action string) tea.Cmd {
	msg := ModalActionMsg{ID: m.id, Action: action}
	return func() tea.Msg { return msg }
}

// View renders nothing; the dialog is drawn as a stage layer.
func (m *Modal) View() string {
	return ""
}

// Layer returns the centred dialog with its backdrop while open.
func (m *Modal) Layer() (Layer, bool) {
	if !m.open {
		return Layer{}, false
	}
	content := m.render()
	w, h := lipgloss.Width(content), lipgloss.Height(content)
	x, y := 0, 0
	if !m.viewport.Empty() {
		x = m.viewport.X + max((m.viewport.Width-w)/2, 0)
		y = m.viewport.Y + max((m.viewport.Height-h)/2, 0)
	}
	return Layer{
		ID:            m.id,
		X:             x,
		Y:             y,
		Z:             30,
		Content:       content,
		Backdrop:      true,
		BackdropStyle: components.ResolveSurface(m.theme, components.SurfaceBackdrop),
	}, true
}

// Semantics describes the dialog while open.
func (m *Modal) Semantics() (Semantics, bool) {
	if !m.open {
		return Semantics{}, false
	}
	node := Semantics{
		ID:         m.id,
		Role:       "dialog",
		Modal:      true,
		Label:      m.cfg.Label,
		LabelledBy: m.cfg.LabelledBy,
	}
	if node.Label == "" && node.LabelledBy == "" {
		node.Label = m.cfg.Title
	}
	focused, _ := m.FocusedAction()
	for _, action := range m.cfg.Actions {
		node.Children = append(node.Children, Semantics{Role: "button", Label: action, Selected: action == focused})
	}
	return node, true
}

func (m *Modal) render() string {
	card := components.NewCard(components.BodyText(m.cfg.Body)).
		WithVariant(components.CardVariantDialog).
		WithTitle(m.cfg.Title).
		WithWidth(m.cfg.Width)
	if len(m.cfg.Actions) > 0 {
		card.WithFooter(m.footer())
	}
	return card.ViewWithContext(components.RenderContext{Theme: m.theme})
}

// footer lays the actions out left to right, one cell apart. The last action
// is the primary one.
func (m *Modal) footer() *components.Stack {
	focused, _ := m.FocusedAction()
	row := components.HStack().WithGap(1)
	for i, action := range m.cfg.Actions {
		state := components.ButtonStateIdle
		if action == focused {
			state = components.ButtonStateFocused
		}
		variant := components.ButtonVariantMuted
		if i == len(m.cfg.Actions)-1 {
			variant = components.ButtonVariantPrimary
		}
		row.Add(components.NewButton(action).WithVariant(variant).WithState(state))
	}
	return row
}

// actionAt maps a press inside the dialog to a footer action by column on
// the footer row.
func (m *Modal) actionAt(layer Layer, x, y int) (int, bool) {
	if len(m.actions) == 0 {
		return 0, false
	}
	surface := components.ResolveCard(m.theme, components.CardVariantDialog)
	footerRow := layer.Y + lipgloss.Height(layer.Content) - 1 - surface.GetBorderBottomSize()
	if y != footerRow {
		return 0, false
	}
	col := x - layer.X - surface.GetBorderLeftSize() - surface.GetPaddingLeft()
	for i, action := range m.cfg.Actions {
		width := lipgloss.Width(components.NewButton(action).ViewWithContext(components.RenderContext{Theme: m.theme}))
		if col >= 0 && col < width {
			return i, true
		}
		col -= width + 1
	}
	return 0, false
}
