package event

import (
	"errors"
	"fmt"
)

// Sentinel errors for event dispatch.
var (
	// ErrNilSink is returned when a dispatch helper is built around a nil sink.
	ErrNilSink = errors.New("sink cannot be nil")

	// ErrQueueFull is returned by ChanSink when its buffer cannot accept
	// another event.
	ErrQueueFull = errors.New("event queue is full")

	// ErrSinkClosed is returned when dispatching to a closed sink.
	ErrSinkClosed = errors.New("sink is closed")
)

// DispatchError wraps a sink failure with the event that triggered it.
type DispatchError struct {
	// Type is the type of the event that failed to dispatch.
	Type Type

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch %s: %v", e.Type, e.Err)
}

// Unwrap returns the underlying error.
func (e *DispatchError) Unwrap() error {
	return e.Err
}
