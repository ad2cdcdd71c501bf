// Package monitor renders a live terminal view of the event stream using
// tcell. It shows per-type counters and a scrolling tail of recent
// events, which is the quickest way to verify that interception is
// actually seeing input.
package monitor
