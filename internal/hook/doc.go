// Package hook owns the lifecycle of the global input hook: the connection
// to the capture backend, the interception context, and the dedicated
// capture goroutine.
//
// A Hook moves through four states: Idle, Starting, Running, Stopping, and
// back to Idle; it is restartable. Two mutexes provide all synchronization.
// The control mutex serializes Start and Stop against each other. The
// running mutex is held by the capture goroutine for the entire Running
// state; IsRunning probes it with a non-blocking try-lock, and the capture
// callback uses the same probe to drop events that arrive after teardown
// has begun.
package hook
