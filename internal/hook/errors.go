package hook

import "errors"

// Sentinel errors for hook lifecycle operations. Setup failures are
// terminal for the Start call but never for the process; every partially
// acquired resource is released before the error is returned.
var (
	// ErrConnection is returned when a server connection cannot be opened.
	ErrConnection = errors.New("cannot open display connection")

	// ErrExtensionUnavailable is returned when the capture extension is not
	// installed or enabled on the server.
	ErrExtensionUnavailable = errors.New("record extension unavailable")

	// ErrRangeAlloc is returned when the event-range descriptor cannot be
	// allocated.
	ErrRangeAlloc = errors.New("event range allocation failed")

	// ErrContextCreate is returned when the interception context cannot be
	// created.
	ErrContextCreate = errors.New("interception context creation failed")

	// ErrEnable is returned when the capture goroutine fails to enable the
	// interception context.
	ErrEnable = errors.New("interception context enable failed")

	// ErrAlreadyRunning is returned by Start while the hook is running.
	// Informational, not fatal: the running hook is left untouched.
	ErrAlreadyRunning = errors.New("hook is already running")

	// ErrNotRunning is returned by Stop while the hook is idle.
	// Informational, not fatal.
	ErrNotRunning = errors.New("hook is not running")
)
