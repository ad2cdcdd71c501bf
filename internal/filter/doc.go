// Package filter runs user-supplied Lua predicates over normalized input
// events before they reach the sink.
//
// A filter script defines a global function accept(ev) that receives the
// event as a table and returns a truthy value to keep it. Scripts run on
// the capture goroutine, so a slow filter stalls interception; filters
// are expected to be cheap predicates, not handlers.
package filter
