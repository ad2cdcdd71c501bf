package event

import "sync"

// Sink consumes normalized events. Dispatch is called synchronously from
// the capture goroutine for every produced event, in arrival order, one at
// a time. Implementations must be bounded-time; hand off to another
// goroutine for anything expensive.
type Sink interface {
	Dispatch(Event) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event) error

// Dispatch implements Sink.
func (f SinkFunc) Dispatch(e Event) error {
	return f(e)
}

// ChanSink forwards events to a buffered channel so consumers can process
// them off the capture goroutine. Dispatch never blocks: when the buffer is
// full the event is dropped and ErrQueueFull reported.
type ChanSink struct {
	mu     sync.Mutex
	ch     chan Event
	closed bool
}

// NewChanSink creates a channel sink with the given buffer size.
// A non-positive size gets a default of 128.
func NewChanSink(size int) *ChanSink {
	if size <= 0 {
		size = 128
	}
	return &ChanSink{ch: make(chan Event, size)}
}

// Dispatch implements Sink.
func (s *ChanSink) Dispatch(e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSinkClosed
	}
	select {
	case s.ch <- e:
		return nil
	default:
		return &DispatchError{Type: e.Type, Err: ErrQueueFull}
	}
}

// FilteredSink forwards events that pass a predicate to an inner sink and
// silently drops the rest. A nil predicate passes everything.
type FilteredSink struct {
	inner Sink
	allow func(Event) bool
}

// NewFilteredSink wraps inner with the given predicate. The inner sink is
// required; the predicate is not.
func NewFilteredSink(inner Sink, allow func(Event) bool) (*FilteredSink, error) {
	if inner == nil {
		return nil, ErrNilSink
	}
	return &FilteredSink{inner: inner, allow: allow}, nil
}

// Dispatch implements Sink.
func (s *FilteredSink) Dispatch(e Event) error {
	if s.allow != nil && !s.allow(e) {
		return nil
	}
	return s.inner.Dispatch(e)
}

// Events returns the receive side of the sink.
func (s *ChanSink) Events() <-chan Event {
	return s.ch
}

// Close closes the sink. Further dispatches return ErrSinkClosed.
func (s *ChanSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}
