package toast

import "time"

// Item is an entry together with the moment it was displayed.
type Item struct {
	Entry
	AddedAt time.Time
}

// ExpiresAt is when the item should leave the list.
func (i Item) ExpiresAt() time.Time {
	return i.AddedAt.Add(i.Lifetime())
}

// Deadline is the single outstanding removal timer of a List. A deadline
// whose Generation no longer matches the list is stale and must be ignored.
type Deadline struct {
	Generation uint64
	ID         string
	At         time.Time
}

// Wait returns how long to sleep from now until the deadline.
func (d Deadline) Wait(now time.Time) time.Duration {
	if wait := d.At.Sub(now); wait > 0 {
		return wait
	}
	return 0
}

// List is the presentational side of the queue: entries in arrival order
// with one removal timer driven by the most recently appended entry.
type List struct {
	items      []Item
	generation uint64
}

// Append displays entry and returns the rescheduled deadline.
func (l *List) Append(entry Entry, now time.Time) Deadline {
	l.items = append(l.items, Item{Entry: entry, AddedAt: now})
	d, _ := l.reschedule()
	return d
}

// Dismiss removes the entry with id. It reports false when no such entry is
// displayed; otherwise it returns the rescheduled deadline, if any remains.
func (l *List) Dismiss(id string) (Deadline, bool, bool) {
	for i, item := range l.items {
		if item.ID == id {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			d, ok := l.reschedule()
			return d, ok, true
		}
	}
	return Deadline{}, false, false
}

// Expire handles a fired deadline. Stale generations are ignored. It reports
// whether an entry was removed and returns the next deadline, if any.
func (l *List) Expire(d Deadline) (next Deadline, scheduled bool, removed bool) {
	if d.Generation != l.generation || len(l.items) == 0 {
		return Deadline{}, false, false
	}
	next, scheduled, removed = l.Dismiss(d.ID)
	return next, scheduled, removed
}

// Deadline returns the current outstanding deadline.
func (l *List) Deadline() (Deadline, bool) {
	if len(l.items) == 0 {
		return Deadline{}, false
	}
	latest := l.items[len(l.items)-1]
	return Deadline{Generation: l.generation, ID: latest.ID, At: latest.ExpiresAt()}, true
}

// Items returns the displayed entries, oldest first.
func (l *List) Items() []Item {
	return append([]Item(nil), l.items...)
}

// Visible returns at most max of the newest entries, oldest first. A
// non-positive max returns everything.
func (l *List) Visible(max int) []Item {
	if max <= 0 || len(l.items) <= max {
		return l.Items()
	}
	return append([]Item(nil), l.items[len(l.items)-max:]...)
}

// Len returns the number of displayed entries.
func (l *List) Len() int {
	return len(l.items)
}

// Generation identifies the current list state.
func (l *List) Generation() uint64 {
	return l.generation
}

// reschedule invalidates every outstanding deadline.
func (l *List) reschedule() (Deadline, bool) {
	l.generation++
	return l.Deadline()
}
