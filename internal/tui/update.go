package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/floatkit/internal/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/input"
	"github.com/alexisbeaulieu97/floatkit/internal/toast"
	"github.com/alexisbeaulieu97/floatkit/internal/ui/components"
	"github.com/alexisbeaulieu97/floatkit/internal/widgets"
)

var quitKeys = key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit"))

// Update routes input to the topmost interested widget.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		var cmds []tea.Cmd
		_, cmd := m.fruit.Update(msg)
		cmds = append(cmds, cmd)
		m.hint.Update(msg)
		m.confirm.Update(msg)
		m.toaster.Update(msg)
		m.layout()
		return m, tea.Batch(cmds...)

	case widgets.SelectChangedMsg:
		m.fruit.Machine().SyncValue(msg.Value)
		m.setStatus(components.BadgeVariantSuccess, "selected", "Selected: "+msg.Value)
		m.log.WithFields(map[string]any{"value": msg.Value}).Info("fruit selected")
		return m, m.notify(toast.VariantSuccess, "Fruit selected", msg.Value)

	case widgets.ModalActionMsg:
		m.confirm.SetOpen(false)
		if msg.Action == "Delete" {
			m.fruit.Machine().SyncValue("")
			m.setStatus(components.BadgeVariantWarning, "cleared", "Selection cleared")
			return m, m.notify(toast.VariantWarning, "Selection cleared", "")
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Timers and toast deliveries.
	_, tipCmd := m.hint.Update(msg)
	_, toastCmd := m.toaster.Update(msg)
	return m, tea.Batch(tipCmd, toastCmd)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.confirm.Open() {
		_, cmd := m.confirm.Update(msg)
		return m, cmd
	}

	ev := m.keys.Translate(msg)

	if m.fruit.Machine().IsOpen() {
		_, cmd := m.fruit.Update(msg)
		if ev.Key == input.KeyTab || ev.Key == input.KeyShiftTab {
			m.moveFocus(ev.Key)
		}
		return m, cmd
	}

	if key.Matches(msg, quitKeys) {
		m.quitting = true
		return m, tea.Quit
	}

	switch ev.Key {
	case input.KeyTab, input.KeyShiftTab:
		m.moveFocus(ev.Key)
		return m, nil
	case input.KeyEscape:
		m.hint.Update(msg)
		return m, nil
	case input.KeyEnter, input.KeySpace:
		if id := m.Focused(); id != m.selectEl.ID {
			return m, m.activate(id)
		}
	}

	if m.doc.ActiveElement() == m.selectEl {
		_, cmd := m.fruit.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) moveFocus(k input.Key) {
	delta := 1
	if k == input.KeyShiftTab {
		delta = -1
	}
	m.doc.MoveFocus(delta)
}

// activate runs a button's action.
func (m *Model) activate(id string) tea.Cmd {
	switch id {
	case buttonSave:
		label := m.fruit.Machine().Label()
		if _, ok := m.fruit.Machine().Selected(); !ok {
			m.setStatus(components.BadgeVariantError, "error", "Pick a fruit before saving")
			return m.notify(toast.VariantError, "Nothing to save", "Pick a fruit first")
		}
		m.setStatus(components.BadgeVariantSuccess, "saved", "Saved "+label)
		return m.notify(toast.VariantSuccess, "Saved", label)
	case buttonDelete:
		m.confirm.SetOpen(true)
		return nil
	case buttonNotify:
		return m.notify(toast.VariantInfo, "Hello from a background producer", "The stack clears once the newest notification expires.")
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.confirm.Open() {
		_, cmd := m.confirm.Update(msg)
		return m, cmd
	}

	_, toastCmd := m.toaster.Update(msg)
	_, tipCmd := m.hint.Update(msg)

	wasOpen := m.fruit.Machine().IsOpen()
	_, selectCmd := m.fruit.Update(msg)
	if m.fruit.Focused() && m.doc.ActiveElement() != m.selectEl {
		m.doc.Focus(m.selectEl)
	}

	var buttonCmd tea.Cmd
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !wasOpen {
		if id, ok := m.buttonAt(msg.X, msg.Y); ok {
			m.doc.Focus(m.buttons[id])
			buttonCmd = m.activate(id)
		}
	}
	return m, tea.Batch(toastCmd, tipCmd, selectCmd, buttonCmd)
}

func (m *Model) buttonAt(x, y int) (string, bool) {
	for _, id := range buttonOrder {
		if m.regions[id].Contains(x, y) {
			return id, true
		}
	}
	return "", false
}

// layout records where the controls are drawn so overlays can anchor to
// them. It must agree with View.
func (m *Model) layout() {
	m.fruit.SetOrigin(contentIndent, selectRow)

	x := contentIndent
	for _, id := range buttonOrder {
		width := buttonWidth(m.theme, buttonLabels[id])
		m.regions[id] = geometry.Rect{X: x, Y: buttonRow, Width: width, Height: 1}
		x += width + buttonGap
	}
	m.hint.SetAnchor(m.regions[buttonSave])
}
