// Package gesture classifies raw pointer events into semantic click, drag,
// and move gestures.
//
// The Tracker maintains the multi-click count and the drag flag across a
// stream of button and motion events. It is intentionally not safe for
// concurrent use: exactly one capture goroutine feeds it, so internal
// locking would only add overhead. This single-writer invariant is part of
// the package contract, not an oversight.
package gesture
