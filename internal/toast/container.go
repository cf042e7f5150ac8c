package toast

import (
	"sync"

	"github.com/alexisbeaulieu97/floatkit/internal/clock"
)

// Container is a headless consumer that subscribes to a queue and expires
// entries on a clock. Timer callbacks may run on other goroutines, so all
// state is guarded.
type Container struct {
	mu       sync.Mutex
	list     List
	clock    clock.Clock
	timer    clock.Timer
	release  func()
	onChange func([]Item)
}

// NewContainer subscribes to queue. onChange, when set, runs after every
// list change with a snapshot of the displayed entries.
func NewContainer(queue *Queue, clk clock.Clock, onChange func([]Item)) *Container {
	if clk == nil {
		clk = clock.Real{}
	}
	c := &Container{clock: clk, onChange: onChange}
	c.release = queue.Subscribe(c.receive)
	return c
}

// Items returns the displayed entries, oldest first.
func (c *Container) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Items()
}

// Dismiss removes an entry before its deadline.
func (c *Container) Dismiss(id string) bool {
	c.mu.Lock()
	d, scheduled, removed := c.list.Dismiss(id)
	if removed {
		c.scheduleLocked(d, scheduled)
	}
	snapshot := c.list.Items()
	c.mu.Unlock()

	if removed {
		c.changed(snapshot)
	}
	return removed
}

// Close unsubscribes and cancels the pending timer.
func (c *Container) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.release != nil {
		c.release()
		c.release = nil
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Container) receive(entry Entry) {
	c.mu.Lock()
	d := c.list.Append(entry, c.clock.Now())
	c.scheduleLocked(d, true)
	snapshot := c.list.Items()
	c.mu.Unlock()

	c.changed(snapshot)
}

func (c *Container) expire(d Deadline) {
	c.mu.Lock()
	next, scheduled, removed := c.list.Expire(d)
	if removed {
		c.scheduleLocked(next, scheduled)
	}
	snapshot := c.list.Items()
	c.mu.Unlock()

	if removed {
		c.changed(snapshot)
	}
}

func (c *Container) scheduleLocked(d Deadline, ok bool) {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if !ok {
		return
	}
	c.timer = c.clock.AfterFunc(d.Wait(c.clock.Now()), func() { c.expire(d) })
}

func (c *Container) changed(items []Item) {
	if c.onChange != nil {
		c.onChange(items)
	}
}
