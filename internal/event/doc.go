// Package event defines the normalized input events produced by the capture
// engine and the Sink interface that consumes them.
//
// Events are immutable value types constructed once per raw platform event,
// handed to the sink synchronously from the capture goroutine, and then
// discarded. Sinks must not block indefinitely; a sink that needs to do real
// work should hand events off to another goroutine (see ChanSink).
package event
