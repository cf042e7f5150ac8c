// Package ids generates stable identifiers for widgets and their floating
// panels so messages can be routed back to the instance that scheduled them.
package ids

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a fresh identifier with the given prefix.
func New(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}

// Resolve returns explicit when set, otherwise a fresh identifier.
func Resolve(explicit, prefix string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit
	}
	return New(prefix)
}

// Related derives the id of an element owned by id, such as a listbox owned
// by its combobox trigger.
func Related(id, part string) string {
	return id + "-" + part
}
