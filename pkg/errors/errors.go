package errors

import (
	"fmt"
)

// ParseError represents a configuration parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PlacementError reports a placement name that does not map to a side/alignment pair.
type PlacementError struct {
	Value string
}

// NewPlacementError constructs a PlacementError for the rejected value.
func NewPlacementError(value string) error {
	return &PlacementError{Value: value}
}

func (e *PlacementError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid placement %q: want <top|bottom|left|right>[-start|-center|-end]", e.Value)
}

// ListenerError wraps a value recovered from a panicking subscriber.
// It is logged by the publisher and never returned to producers.
type ListenerError struct {
	Listener  uint64
	Recovered any
}

// NewListenerError constructs a ListenerError.
func NewListenerError(listener uint64, recovered any) error {
	return &ListenerError{Listener: listener, Recovered: recovered}
}

func (e *ListenerError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("listener %d panicked: %v", e.Listener, e.Recovered)
}

// Unwrap exposes the recovered value when it is itself an error.
func (e *ListenerError) Unwrap() error {
	if e == nil {
		return nil
	}
	if err, ok := e.Recovered.(error); ok {
		return err
	}
	return nil
}
