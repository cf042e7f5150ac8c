// Package input translates terminal key messages into the small set of
// semantic keys the overlay state machines understand.
package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Key is a semantic key understood by the overlay state machines.
type Key int

const (
	KeyNone Key = iota
	KeyArrowDown
	KeyArrowUp
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	KeyShiftTab
	KeyHome
	KeyEnd
	KeyBackspace
	KeyRune
)

func (k Key) String() string {
	switch k {
	case KeyArrowDown:
		return "down"
	case KeyArrowUp:
		return "up"
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	case KeyEscape:
		return "esc"
	case KeyTab:
		return "tab"
	case KeyShiftTab:
		return "shift+tab"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyBackspace:
		return "backspace"
	case KeyRune:
		return "rune"
	default:
		return "none"
	}
}

// Event is a translated key press. Rune is set for KeyRune.
type Event struct {
	Key  Key
	Rune rune
}

// Press builds an Event for a non-printable key.
func Press(k Key) Event {
	return Event{Key: k}
}

// Type builds an Event for a printable character.
func Type(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// KeyMap binds terminal keys to semantic keys. It doubles as a help.KeyMap.
type KeyMap struct {
	Down     key.Binding
	Up       key.Binding
	Select   key.Binding
	Toggle   key.Binding
	Dismiss  key.Binding
	Next     key.Binding
	Previous key.Binding
	First    key.Binding
	Last     key.Binding
	Erase    key.Binding
}

// DefaultKeyMap uses the usual listbox and dialog keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next option")),
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous option")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "open")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Previous: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		First:    key.NewBinding(key.WithKeys("home")),
		Last:     key.NewBinding(key.WithKeys("end")),
		Erase:    key.NewBinding(key.WithKeys("backspace")),
	}
}

// Translate maps a bubbletea key message onto a semantic Event.
func (m KeyMap) Translate(msg tea.KeyMsg) Event {
	switch {
	case key.Matches(msg, m.Down):
		return Press(KeyArrowDown)
	case key.Matches(msg, m.Up):
		return Press(KeyArrowUp)
	case key.Matches(msg, m.Select):
		return Press(KeyEnter)
	case key.Matches(msg, m.Toggle):
		return Press(KeySpace)
	case key.Matches(msg, m.Dismiss):
		return Press(KeyEscape)
	case key.Matches(msg, m.Next):
		return Press(KeyTab)
	case key.Matches(msg, m.Previous):
		return Press(KeyShiftTab)
	case key.Matches(msg, m.First):
		return Press(KeyHome)
	case key.Matches(msg, m.Last):
		return Press(KeyEnd)
	case key.Matches(msg, m.Erase):
		return Press(KeyBackspace)
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		return Type(msg.Runes[0])
	}
	return Event{}
}

// ShortHelp implements help.KeyMap.
func (m KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{m.Down, m.Up, m.Select, m.Dismiss, m.Next}
}

// FullHelp implements help.KeyMap.
func (m KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Down, m.Up, m.Select, m.Toggle},
		{m.Dismiss, m.Next, m.Previous},
	}
}
