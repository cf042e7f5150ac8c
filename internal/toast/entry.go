// Package toast is a process-wide notification queue decoupled from any
// rendered container, plus the timing contract containers follow.
package toast

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDuration is how long an entry stays visible once displayed.
const DefaultDuration = 5 * time.Second

// Variant selects the tone of a notification.
type Variant string

const (
	VariantInfo    Variant = "info"
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantError   Variant = "error"
)

// ParseVariant maps a name onto a Variant.
func ParseVariant(value string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(value))); v {
	case VariantInfo, VariantSuccess, VariantWarning, VariantError:
		return v, nil
	}
	return "", fmt.Errorf("unknown toast variant %q", value)
}

// Entry is one notification. ID is assigned by the queue.
type Entry struct {
	ID          string
	Variant     Variant
	Title       string
	Description string
	Duration    time.Duration
}

// Lifetime returns the entry's visible duration, applying the default.
func (e Entry) Lifetime() time.Duration {
	if e.Duration <= 0 {
		return DefaultDuration
	}
	return e.Duration
}
