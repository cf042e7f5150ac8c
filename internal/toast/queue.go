package toast

import (
	"strconv"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/floatkit/internal/logger"
	floatkiterrors "github.com/alexisbeaulieu97/floatkit/pkg/errors"
)

// Listener receives every entry emitted after it subscribed.
type Listener func(Entry)

// Queue assigns ids and fans entries out to subscribers synchronously. There
// is no buffering: subscribers never see entries emitted before they joined.
// Producers may call Emit from any goroutine.
type Queue struct {
	mu        sync.Mutex
	listeners []listenerEntry
	nextSub   uint64
	lastID    uint64
	log       *logger.Logger
}

type listenerEntry struct {
	id uint64
	fn Listener
}

// NewQueue creates an empty queue. A nil logger discards listener failures.
func NewQueue(log *logger.Logger) *Queue {
	return &Queue{log: log.WithComponent("toast")}
}

// SetLogger replaces the logger used for listener failures.
func (q *Queue) SetLogger(log *logger.Logger) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.log = log.WithComponent("toast")
}

// Emit assigns the next id to entry and notifies every current subscriber.
// A panicking subscriber is recovered and logged; the rest still run.
func (q *Queue) Emit(entry Entry) Entry {
	q.mu.Lock()
	q.lastID++
	entry.ID = strconv.FormatUint(q.lastID, 10)
	listeners := append([]listenerEntry(nil), q.listeners...)
	log := q.log
	q.mu.Unlock()

	for _, l := range listeners {
		deliver(log, l, entry)
	}
	return entry
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (q *Queue) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	q.mu.Lock()
	q.nextSub++
	id := q.nextSub
	q.listeners = append(q.listeners, listenerEntry{id: id, fn: fn})
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		for i, l := range q.listeners {
			if l.id == id {
				q.listeners = append(q.listeners[:i:i], q.listeners[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of registered listeners.
func (q *Queue) Subscribers() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.listeners)
}

func deliver(log *logger.Logger, l listenerEntry, entry Entry) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]any{"toast_id": entry.ID}).
				Error(floatkiterrors.NewListenerError(l.id, r), "toast listener failed")
		}
	}()
	l.fn(entry)
}

// Default is the process-wide queue behind the package-level producer API.
var Default = NewQueue(nil)

// Info emits an informational notification on the Default queue.
func Info(title string, description ...string) {
	emit(VariantInfo, title, description)
}

// Success emits a success notification on the Default queue.
func Success(title string, description ...string) {
	emit(VariantSuccess, title, description)
}

// Warning emits a warning notification on the Default queue.
func Warning(title string, description ...string) {
	emit(VariantWarning, title, description)
}

// Error emits an error notification on the Default queue.
func Error(title string, description ...string) {
	emit(VariantError, title, description)
}

// Subscribe registers fn on the Default queue.
func Subscribe(fn Listener) func() {
	return Default.Subscribe(fn)
}

func emit(variant Variant, title string, description []string) {
	Default.Emit(Entry{
		Variant:     variant,
		Title:       title,
		Description: strings.Join(description, " "),
	})
}
