// Package tui is the interactive showcase for the overlay widgets: a select,
// a tooltip on a button, a confirmation dialog and a toast stack composited
// on one stage.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/floatkit/internal/clock"
	"github.com/alexisbeaulieu97/floatkit/internal/combobox"
	"github.com/alexisbeaulieu97/floatkit/internal/config"
	"github.com/alexisbeaulieu97/floatkit/internal/focus"
	"github.com/alexisbeaulieu97/floatkit/internal/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/input"
	"github.com/alexisbeaulieu97/floatkit/internal/logger"
	"github.com/alexisbeaulieu97/floatkit/internal/toast"
	"github.com/alexisbeaulieu97/floatkit/internal/ui/components"
	"github.com/alexisbeaulieu97/floatkit/internal/widgets"
)

// Button ids double as focus element ids.
const (
	buttonSave   = "save"
	buttonDelete = "delete"
	buttonNotify = "notify"
)

var buttonOrder = []string{buttonSave, buttonDelete, buttonNotify}

var fruits = []combobox.Option{
	{Value: "apple", Label: "Apple"},
	{Value: "apricot", Label: "Apricot"},
	{Value: "banana", Label: "Banana", Disabled: true},
	{Value: "blueberry", Label: "Blueberry"},
	{Value: "cherry", Label: "Cherry"},
	{Value: "grape", Label: "Grape"},
}

// Options configures the showcase.
type Options struct {
	Config config.Config
	Logger *logger.Logger
	// Queue defaults to toast.Default.
	Queue *toast.Queue
	Clock clock.Clock
}

// Model is the showcase state.
type Model struct {
	cfg    config.Config
	theme  components.Theme
	keys   input.KeyMap
	help   help.Model
	queue  *toast.Queue
	log    *logger.Logger
	width  int
	height int

	doc      *focus.Document
	selectEl *focus.Element
	buttons  map[string]*focus.Element
	regions  map[string]geometry.Rect

	fruit   *widgets.Select
	hint    *widgets.Tooltip
	confirm *widgets.Modal
	toaster *widgets.ToastContainer

	hintFocused bool
	status      string
	statusTag   string
	statusTone  components.BadgeVariant
	quitting    bool
}

// NewModel builds the showcase. Call Close when the program exits.
func NewModel(opts Options) *Model {
	theme, err := components.ThemeByName(opts.Config.Theme)
	if err != nil {
		theme = components.DefaultTheme()
	}
	queue := opts.Queue
	if queue == nil {
		queue = toast.Default
	}

	m := &Model{
		cfg:     opts.Config,
		theme:   theme,
		keys:    input.DefaultKeyMap(),
		help:    help.New(),
		queue:   queue,
		log:     opts.Logger.WithComponent("demo"),
		doc:     focus.NewDocument(),
		buttons: make(map[string]*focus.Element, len(buttonOrder)),
		regions: make(map[string]geometry.Rect, len(buttonOrder)),
	}
	m.setStatus(components.BadgeVariantDefault, "idle", "Nothing selected yet")

	m.selectEl = focus.NewFocusable("fruit")
	m.doc.Root().Append(m.selectEl)
	for _, id := range buttonOrder {
		el := focus.NewFocusable(id)
		m.buttons[id] = el
		m.doc.Root().Append(el)
	}
	m.doc.OnFocusIn(func(*focus.Element) { m.syncFocus() })

	// The showcase owns the selected value; the select only requests changes.
	m.fruit = widgets.NewSelect(widgets.SelectConfig{
		Options: combobox.Options{
			Items:       fruits,
			Value:       new(string),
			Placeholder: "Pick a fruit",
			Logger:      opts.Logger,
		},
		ID:        "fruit",
		Width:     28,
		Offset:    opts.Config.Select.Offset,
		Placement: opts.Config.SelectPlacement(),
		Theme:     theme,
		KeyMap:    m.keys,
	})
	m.hint = widgets.NewTooltip(widgets.TooltipConfig{
		ID:        "save-hint",
		Content:   "Writes the current selection",
		Placement: opts.Config.TooltipPlacement(),
		Delay:     opts.Config.Tooltip.Delay,
		Offset:    opts.Config.Tooltip.Offset,
		Padding:   opts.Config.Tooltip.Padding,
		Theme:     theme,
		KeyMap:    m.keys,
		Logger:    opts.Logger,
	})
	m.confirm = widgets.NewModal(widgets.ModalConfig{
		ID:       "confirm-delete",
		Title:    "Delete selection?",
		Body:     "The chosen fruit will be cleared.",
		Actions:  []string{"Cancel", "Delete"},
		Document: m.doc,
		OnClose:  func() { m.confirm.SetOpen(false) },
		Theme:    theme,
		KeyMap:   m.keys,
		Logger:   opts.Logger,
	})
	m.toaster = widgets.NewToastContainer(widgets.ToastConfig{
		ID:         "toaster",
		Queue:      queue,
		Clock:      opts.Clock,
		MaxVisible: opts.Config.Toast.MaxVisible,
		Theme:      theme,
		Logger:     opts.Logger,
	})

	m.doc.Focus(m.selectEl)
	m.layout()
	return m
}

// Init starts listening for notifications.
func (m *Model) Init() tea.Cmd {
	return m.toaster.Init()
}

// Close releases the notification subscription.
func (m *Model) Close() {
	m.toaster.Close()
}

// Status returns the line shown under the controls.
func (m *Model) Status() string {
	return m.status
}

// StatusBadge returns the tag drawn before the status line and its tone.
func (m *Model) StatusBadge() (string, components.BadgeVariant) {
	return m.statusTag, m.statusTone
}

func (m *Model) setStatus(tone components.BadgeVariant, tag, text string) {
	m.statusTone, m.statusTag, m.status = tone, tag, text
}

// Quitting reports whether the user asked to leave.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Focused returns the id of the focused control.
func (m *Model) Focused() string {
	if el := m.doc.ActiveElement(); el != nil {
		return el.ID
	}
	return ""
}

// Semantics returns the accessibility tree of every mounted widget.
func (m *Model) Semantics() []widgets.Semantics {
	nodes := []widgets.Semantics{m.fruit.Semantics()}
	if node, ok := m.hint.Semantics(); ok {
		nodes = append(nodes, node)
	}
	if node, ok := m.confirm.Semantics(); ok {
		nodes = append(nodes, node)
	}
	return append(nodes, m.toaster.Semantics())
}

// syncFocus mirrors document focus onto the widgets that react to it.
func (m *Model) syncFocus() {
	active := m.doc.ActiveElement()

	switch {
	case active == m.selectEl && !m.fruit.Focused():
		m.fruit.Focus()
	case active != m.selectEl && m.fruit.Focused():
		m.fruit.Blur()
	}

	onSave := active == m.buttons[buttonSave]
	switch {
	case onSave && !m.hintFocused:
		m.hintFocused = true
		m.hint.Focus()
	case !onSave && m.hintFocused:
		m.hintFocused = false
		m.hint.Blur()
	}
}

func (m *Model) notify(variant toast.Variant, title, description string) tea.Cmd {
	queue, duration := m.queue, m.cfg.Toast.Duration
	return func() tea.Msg {
		queue.Emit(toast.Entry{Variant: variant, Title: title, Description: description, Duration: duration})
		return nil
	}
}
