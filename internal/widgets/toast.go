package widgets

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/floatkit/internal/clock"
	"github.com/alexisbeaulieu97/floatkit/internal/ids"
	"github.com/alexisbeaulieu97/floatkit/internal/logger"
	"github.com/alexisbeaulieu97/floatkit/internal/toast"
	"github.com/alexisbeaulieu97/floatkit/internal/ui/components"
)

// DefaultToastWidth is the width of one rendered notification.
const DefaultToastWidth = 36

type toastReceivedMsg struct {
	id    string
	entry toast.Entry
}

type toastExpiredMsg struct {
	id       string
	deadline toast.Deadline
}

// ToastConfig configures a ToastContainer.
type ToastConfig struct {
	ID string
	// Queue defaults to the process-wide toast.Default.
	Queue *toast.Queue
	// Clock stamps display times; deadlines still fire through tea.Tick.
	Clock      clock.Clock
	MaxVisible int
	Width      int
	Theme      components.Theme
	Logger     *logger.Logger
}

// ToastContainer renders queued notifications in the bottom-right corner and
// removes them when the most recent one expires.
type ToastContainer struct {
	id      string
	list    toast.List
	clock   clock.Clock
	theme   components.Theme
	width   int
	max     int
	log     *logger.Logger
	release func()

	mu        sync.Mutex
	pending   []toast.Entry
	wake      chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	viewW int
	viewH int
}

// NewToastContainer subscribes to the queue. Only entries emitted after this
// call are displayed.
func NewToastContainer(cfg ToastConfig) *ToastContainer {
	c := &ToastContainer{
		id:    ids.Resolve(cfg.ID, "toaster"),
		clock: cfg.Clock,
		theme: cfg.Theme,
		width: cfg.Width,
		max:   cfg.MaxVisible,
		log:   cfg.Logger.WithComponent("toaster"),
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	if c.clock == nil {
		c.clock = clock.Real{}
	}
	if c.theme.Variants == nil {
		c.theme = components.DefaultTheme()
	}
	if c.width <= 0 {
		c.width = DefaultToastWidth
	}
	queue := cfg.Queue
	if queue == nil {
		queue = toast.Default
	}
	c.release = queue.Subscribe(c.enqueue)
	return c
}

// enqueue runs on the producer's goroutine and must not block it. Entries
// are kept in emission order until the update loop takes them.
func (c *ToastContainer) enqueue(entry toast.Entry) {
	c.mu.Lock()
	select {
	case <-c.done:
		c.mu.Unlock()
		return
	default:
	}
	c.pending = append(c.pending, entry)
	c.mu.Unlock()
	c.signal()
}

func (c *ToastContainer) signal() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// next blocks until an entry is pending or the container is closed.
func (c *ToastContainer) next() (toast.Entry, bool) {
	for {
		c.mu.Lock()
		if len(c.pending) > 0 {
			entry := c.pending[0]
			c.pending = c.pending[1:]
			more := len(c.pending) > 0
			c.mu.Unlock()
			if more {
				c.signal()
			}
			return entry, true
		}
		c.mu.Unlock()

		select {
		case <-c.wake:
		case <-c.done:
			return toast.Entry{}, false
		}
	}
}

// ID returns the region id.
func (c *ToastContainer) ID() string {
	return c.id
}

// Items returns the displayed notifications, oldest first.
func (c *ToastContainer) Items() []toast.Item {
	return c.list.Items()
}

// Close stops listening to the queue, discards pending entries and releases
// any waiting command. It is safe to call more than once.
func (c *ToastContainer) Close() {
	c.closeOnce.Do(func() {
		c.release()
		c.mu.Lock()
		c.pending = nil
		close(c.done)
		c.mu.Unlock()
	})
}

// Init starts waiting for entries.
func (c *ToastContainer) Init() tea.Cmd {
	return c.wait()
}

// wait returns a command that yields the next entry, or nil once closed.
func (c *ToastContainer) wait() tea.Cmd {
	id := c.id
	return func() tea.Msg {
		entry, ok := c.next()
		if !ok {
			return nil
		}
		return toastReceivedMsg{id: id, entry: entry}
	}
}

func (c *ToastContainer) schedule(d toast.Deadline, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	id := c.id
	return tea.Tick(d.Wait(c.clock.Now()), func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id, deadline: d}
	})
}

// Update displays received entries and applies deadlines.
func (c *ToastContainer) Update(msg tea.Msg) (*ToastContainer, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.viewW, c.viewH = msg.Width, msg.Height
	case toastReceivedMsg:
		if msg.id != c.id {
			return c, nil
		}
		d := c.list.Append(msg.entry, c.clock.Now())
		c.log.WithFields(map[string]any{"toast_id": msg.entry.ID, "variant": string(msg.entry.Variant)}).Debug("toast displayed")
		return c, tea.Batch(c.schedule(d, true), c.wait())
	case toastExpiredMsg:
		if msg.id != c.id {
			return c, nil
		}
		next, scheduled, removed := c.list.Expire(msg.deadline)
		if !removed {
			return c, nil
		}
		c.log.WithFields(map[string]any{"toast_id": msg.deadline.ID}).Debug("toast expired")
		return c, c.schedule(next, scheduled)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return c, nil
		}
		if id, ok := c.closeAt(msg.X, msg.Y); ok {
			return c, c.Dismiss(id)
		}
	}
	return c, nil
}

// Dismiss removes a notification before its deadline and returns the
// rescheduled timer, if any.
func (c *ToastContainer) Dismiss(id string) tea.Cmd {
	next, scheduled, removed := c.list.Dismiss(id)
	if !removed {
		return nil
	}
	return c.schedule(next, scheduled)
}

// View renders nothing; notifications are drawn as a stage layer.
func (c *ToastContainer) View() string {
	return ""
}

// Layer stacks the visible notifications in the bottom-right corner.
func (c *ToastContainer) Layer() (Layer, bool) {
	cards, _ := c.cards()
	if len(cards) == 0 {
		return Layer{}, false
	}
	stack := components.VStack().WithAlign(lipgloss.Right)
	for _, card := range cards {
		stack.Add(card)
	}
	content := stack.ViewWithContext(c.context())
	return Layer{
		ID:      c.id,
		X:       max(c.viewW-lipgloss.Width(content)-1, 0),
		Y:       max(c.viewH-lipgloss.Height(content)-1, 0),
		Z:       40,
		Content: content,
	}, true
}

// Semantics describes the notification region. It is present even when
// empty so assistive tooling can find it before the first notification.
func (c *ToastContainer) Semantics() Semantics {
	node := Semantics{ID: c.id, Role: "region", Label: "Notifications"}
	for _, item := range c.list.Visible(c.max) {
		node.Children = append(node.Children, Semantics{ID: item.ID, Role: "status", Label: item.Title})
	}
	return node
}

func (c *ToastContainer) context() components.RenderContext {
	return components.RenderContext{Theme: c.theme}
}

func (c *ToastContainer) cards() ([]*components.Alert, []toast.Item) {
	items := c.list.Visible(c.max)
	cards := make([]*components.Alert, 0, len(items))
	for _, item := range items {
		cards = append(cards, c.card(item))
	}
	return cards, items
}

func (c *ToastContainer) card(item toast.Item) *components.Alert {
	return components.NewAlert(item.Description).
		WithTitle(item.Title).
		WithVariant(components.ParseAlertVariant(string(item.Variant))).
		WithDismiss(true).
		WithWidth(c.width)
}

// closeAt maps a press to the dismiss control of a card.
func (c *ToastContainer) closeAt(x, y int) (string, bool) {
	layer, ok := c.Layer()
	if !ok || !layer.Bounds().Contains(x, y) {
		return "", false
	}
	ctx := c.context()
	cards, items := c.cards()
	glyph := lipgloss.Width(components.DismissGlyph)
	right := layer.X + lipgloss.Width(layer.Content)
	top := layer.Y
	for i, card := range cards {
		frame, _ := components.ResolveAlert(c.theme, components.ParseAlertVariant(string(items[i].Variant)))
		row := top + frame.GetBorderTopSize() + frame.GetPaddingTop()
		col := right - frame.GetBorderRightSize() - frame.GetPaddingRight() - glyph
		if y == row && x >= col && x < col+glyph {
			return items[i].ID, true
		}
		top += lipgloss.Height(card.ViewWithContext(ctx))
	}
	return "", false
}
