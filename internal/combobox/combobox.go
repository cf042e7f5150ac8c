// Package combobox layers keyboard navigation and a committed value on top of
// a disclosure controller.
package combobox

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/alexisbeaulieu97/floatkit/internal/disclosure"
	"github.com/alexisbeaulieu97/floatkit/internal/input"
	"github.com/alexisbeaulieu97/floatkit/internal/logger"
)

// Option is one entry of the list. Values are unique per list.
type Option struct {
	Value    string
	Label    string
	Disabled bool
}

// Text returns the label, falling back to the value.
func (o Option) Text() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

// Options configures a Machine. A non-nil Value makes the committed value
// controlled for the machine's lifetime; Open does the same for the open
// state.
type Options struct {
	Items        []Option
	Value        *string
	DefaultValue string
	OnChange     func(value string)
	Placeholder  string
	Disabled     bool
	Error        string

	Open         *bool
	DefaultOpen  bool
	OnOpenChange func(open bool, reason disclosure.Reason)

	Logger *logger.Logger
}

// Machine is the select state machine. ActiveIndex indexes the enabled
// options only; -1 means nothing is highlighted.
type Machine struct {
	disclosure *disclosure.Controller

	items       []Option
	value       string
	hasValue    bool
	controlled  bool
	onChange    func(string)
	placeholder string
	disabled    bool
	errText     string

	activeIndex int
	query       string

	log *logger.Logger
}

// New creates a machine.
func New(opts Options) *Machine {
	m := &Machine{
		items:       append([]Option(nil), opts.Items...),
		onChange:    opts.OnChange,
		placeholder: opts.Placeholder,
		disabled:    opts.Disabled,
		errText:     opts.Error,
		activeIndex: -1,
		log:         opts.Logger.WithComponent("select"),
	}
	switch {
	case opts.Value != nil:
		m.controlled = true
		m.value, m.hasValue = *opts.Value, *opts.Value != ""
	case opts.DefaultValue != "":
		m.value, m.hasValue = opts.DefaultValue, true
	}

	m.disclosure = disclosure.New(disclosure.Options{
		Open:         opts.Open,
		DefaultOpen:  opts.DefaultOpen,
		OnOpenChange: opts.OnOpenChange,
		Logger:       opts.Logger,
	})
	m.disclosure.OnChange(func(bool, disclosure.Reason) {
		// Highlight never carries over between open sessions.
		m.activeIndex = -1
		m.query = ""
	})
	return m
}

// Disclosure exposes the underlying open state controller.
func (m *Machine) Disclosure() *disclosure.Controller {
	return m.disclosure
}

// IsOpen reports whether the list is shown.
func (m *Machine) IsOpen() bool {
	return m.disclosure.IsOpen()
}

// Items returns the full option list.
func (m *Machine) Items() []Option {
	return append([]Option(nil), m.items...)
}

// SetOptions replaces the option list, clamping the highlight into the new
// enabled range.
func (m *Machine) SetOptions(items []Option) {
	m.items = append([]Option(nil), items...)
	if n := m.EnabledCount(); m.activeIndex >= n {
		m.activeIndex = n - 1
	}
}

// Value returns the committed value, if any.
func (m *Machine) Value() (string, bool) {
	return m.value, m.hasValue
}

// SyncValue applies the caller's value in controlled mode.
func (m *Machine) SyncValue(value string) {
	if !m.controlled {
		return
	}
	m.value, m.hasValue = value, value != ""
}

// Controlled reports whether the caller owns the committed value.
func (m *Machine) Controlled() bool {
	return m.controlled
}

// Selected returns the option matching the committed value.
func (m *Machine) Selected() (Option, bool) {
	if !m.hasValue {
		return Option{}, false
	}
	for _, o := range m.items {
		if o.Value == m.value {
			return o, true
		}
	}
	return Option{}, false
}

// Label is the trigger text: the selected option or the placeholder.
func (m *Machine) Label() string {
	if o, ok := m.Selected(); ok {
		return o.Text()
	}
	return m.placeholder
}

// Placeholder returns the text shown when nothing is selected.
func (m *Machine) Placeholder() string {
	return m.placeholder
}

// Disabled reports whether the control ignores input.
func (m *Machine) Disabled() bool {
	return m.disabled
}

// SetDisabled toggles the control; disabling closes an open list.
func (m *Machine) SetDisabled(disabled bool) {
	m.disabled = disabled
	if disabled {
		m.disclosure.Dismiss(disclosure.ReasonExplicit)
	}
}

// Error returns the validation message, if any.
func (m *Machine) Error() string {
	return m.errText
}

// SetError replaces the validation message.
func (m *Machine) SetError(msg string) {
	m.errText = msg
}

// ActiveIndex returns the highlighted position among enabled options.
func (m *Machine) ActiveIndex() int {
	return m.activeIndex
}

// Active returns the highlighted option and its index in the full list.
func (m *Machine) Active() (Option, int, bool) {
	if m.activeIndex < 0 {
		return Option{}, -1, false
	}
	full := m.fullIndex(m.activeIndex)
	if full < 0 {
		return Option{}, -1, false
	}
	return m.items[full], full, true
}

// EnabledCount returns the number of options reachable from the keyboard.
func (m *Machine) EnabledCount() int {
	n := 0
	for _, o := range m.items {
		if !o.Disabled {
			n++
		}
	}
	return n
}

// Query returns the pending typeahead text.
func (m *Machine) Query() string {
	return m.query
}

// Open shows the list.
func (m *Machine) Open(reason disclosure.Reason) {
	if m.disabled {
		return
	}
	m.disclosure.Open(reason)
}

// Close hides the list without committing.
func (m *Machine) Close(reason disclosure.Reason) {
	m.disclosure.Dismiss(reason)
}

// Toggle is the trigger click path.
func (m *Machine) Toggle() {
	if m.disabled {
		return
	}
	m.disclosure.Toggle(disclosure.ReasonTriggerClick)
}

// HandleKey applies a key press and reports whether it was consumed.
func (m *Machine) HandleKey(ev input.Event) bool {
	if m.disabled {
		return false
	}
	if !m.IsOpen() {
		switch ev.Key {
		case input.KeyEnter, input.KeySpace:
			m.disclosure.Open(disclosure.ReasonTriggerClick)
			return true
		}
		return false
	}

	switch ev.Key {
	case input.KeyArrowDown:
		m.query = ""
		m.move(1)
	case input.KeyArrowUp:
		m.query = ""
		m.move(-1)
	case input.KeyHome:
		m.query = ""
		m.highlight(0)
	case input.KeyEnd:
		m.query = ""
		m.highlight(m.EnabledCount() - 1)
	case input.KeyEnter:
		m.commitActive()
	case input.KeySpace:
		if m.query != "" {
			m.typeahead(' ')
			break
		}
		m.commitActive()
	case input.KeyEscape:
		return m.disclosure.HandleKey(ev)
	case input.KeyTab, input.KeyShiftTab:
		m.disclosure.Dismiss(disclosure.ReasonExplicit)
		return false
	case input.KeyBackspace:
		if m.query == "" {
			return false
		}
		runes := []rune(m.query)
		m.query = string(runes[:len(runes)-1])
	case input.KeyRune:
		m.typeahead(ev.Rune)
	default:
		return false
	}
	return true
}

// Click commits the option at index in the full list. Clicks on disabled
// options change nothing.
func (m *Machine) Click(index int) bool {
	if m.disabled || !m.IsOpen() || index < 0 || index >= len(m.items) {
		return false
	}
	if m.items[index].Disabled {
		return false
	}
	m.commit(m.items[index])
	return true
}

// Hover moves the highlight to the enabled option at index in the full list.
func (m *Machine) Hover(index int) {
	if m.disabled || !m.IsOpen() {
		return
	}
	if pos := m.enabledPosition(index); pos >= 0 {
		m.activeIndex = pos
	}
}

func (m *Machine) move(delta int) {
	m.highlight(m.activeIndex + delta)
}

func (m *Machine) highlight(pos int) {
	n := m.EnabledCount()
	if n == 0 {
		return
	}
	m.activeIndex = min(max(pos, 0), n-1)
}

func (m *Machine) commitActive() {
	if opt, _, ok := m.Active(); ok {
		m.commit(opt)
	}
}

func (m *Machine) commit(opt Option) {
	if !m.controlled {
		m.value, m.hasValue = opt.Value, true
	}
	m.log.WithFields(map[string]any{"value": opt.Value}).Debug("option committed")
	if m.onChange != nil {
		m.onChange(opt.Value)
	}
	m.disclosure.Dismiss(disclosure.ReasonExplicit)
}

// typeahead extends the query and highlights the best match: the first
// enabled option whose text starts with the query, otherwise the closest by
// edit distance.
func (m *Machine) typeahead(r rune) {
	m.query += strings.ToLower(string(r))

	best, bestDistance := -1, 0
	pos := 0
	for _, o := range m.items {
		if o.Disabled {
			continue
		}
		text := strings.ToLower(o.Text())
		if strings.HasPrefix(text, m.query) {
			m.activeIndex = pos
			return
		}
		if d := levenshtein.ComputeDistance(m.query, text); best < 0 || d < bestDistance {
			best, bestDistance = pos, d
		}
		pos++
	}
	if best >= 0 {
		m.activeIndex = best
	}
}

func (m *Machine) fullIndex(pos int) int {
	seen := 0
	for i, o := range m.items {
		if o.Disabled {
			continue
		}
		if seen == pos {
			return i
		}
		seen++
	}
	return -1
}

func (m *Machine) enabledPosition(index int) int {
	if index < 0 || index >= len(m.items) || m.items[index].Disabled {
		return -1
	}
	pos := 0
	for _, o := range m.items[:index] {
		if !o.Disabled {
			pos++
		}
	}
	return pos
}
