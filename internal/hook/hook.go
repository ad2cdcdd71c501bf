package hook

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/hookstorm/internal/event"
	"github.com/dshills/hookstorm/internal/gesture"
	"github.com/dshills/hookstorm/internal/logging"
)

// Filter decides whether a normalized event reaches the sink. Allow runs on
// the capture goroutine and must be bounded-time.
type Filter interface {
	Allow(event.Event) bool
}

// Hook is the global input hook. One instance owns one backend; Start and
// Stop may be called repeatedly over its lifetime.
type Hook struct {
	backend Backend
	sink    event.Sink
	filter  Filter
	tracker *gesture.Tracker
	log     *logging.Logger
	display string

	// controlMu serializes Start and Stop against each other and against
	// the startup handshake with the capture goroutine.
	controlMu sync.Mutex

	// runningMu is held by the capture goroutine for the entire Running
	// state. IsRunning and the late-event guard probe it with TryLock.
	runningMu sync.Mutex

	// done carries the capture goroutine's final status to Stop.
	done chan error

	dispatchFailures atomic.Uint64

	errMu           sync.Mutex
	lastDispatchErr error
}

// Option configures a Hook.
type Option func(*Hook)

// WithSink sets the event sink. A nil sink is tolerated: events are
// captured and discarded.
func WithSink(s event.Sink) Option {
	return func(h *Hook) {
		h.sink = s
	}
}

// WithFilter sets an optional event filter.
func WithFilter(f Filter) Option {
	return func(h *Hook) {
		h.filter = f
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(h *Hook) {
		h.log = l
	}
}

// WithDisplay sets the display name to capture from. Empty selects the
// platform default.
func WithDisplay(name string) Option {
	return func(h *Hook) {
		h.display = name
	}
}

// WithMultiClickInterval sets the maximum gap between presses that extends
// a click sequence.
func WithMultiClickInterval(d time.Duration) Option {
	return func(h *Hook) {
		h.tracker = gesture.NewTracker(d)
	}
}

// New creates a hook bound to the given backend.
func New(backend Backend, opts ...Option) *Hook {
	h := &Hook{
		backend: backend,
		tracker: gesture.NewTracker(gesture.DefaultMultiClickInterval),
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Start opens the backend connections, creates the interception context,
// and spawns the capture goroutine. It returns once the goroutine has
// enabled the context and events are flowing, or with an error after
// releasing every partially acquired resource. Calling Start on a running
// hook returns ErrAlreadyRunning and changes nothing.
func (h *Hook) Start() error {
	h.controlMu.Lock()
	defer h.controlMu.Unlock()

	if h.IsRunning() {
		return ErrAlreadyRunning
	}

	if err := h.backend.Open(h.display); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	major, minor, err := h.backend.QueryVersion()
	if err != nil {
		h.backend.Close()
		return fmt.Errorf("%w: %v", ErrExtensionUnavailable, err)
	}
	h.log.Debug("record extension version %d.%d", major, minor)

	rng, err := h.backend.AllocRange()
	if err != nil {
		h.backend.Close()
		return fmt.Errorf("%w: %v", ErrRangeAlloc, err)
	}

	if err := h.backend.CreateContext(rng); err != nil {
		h.backend.Close()
		return fmt.Errorf("%w: %v", ErrContextCreate, err)
	}

	started := make(chan error, 1)
	h.done = make(chan error, 1)
	go h.run(started)

	// Handshake: the capture goroutine signals once the context is enabled
	// and the first delivery observed, or reports the enable failure.
	if err := <-started; err != nil {
		<-h.done // join the failed goroutine
		h.backend.FreeContext()
		h.backend.Close()
		return err
	}

	h.log.Info("hook started")
	return nil
}

// run is the capture goroutine. It blocks inside the backend's Enable call
// for the entire Running state; the backend invokes the callback
// synchronously for each matching event.
func (h *Hook) run(started chan<- error) {
	var (
		signalled bool
		running   bool
	)

	err := h.backend.Enable(func(c Capture) {
		switch c.Category {
		case CaptureStartOfData:
			h.runningMu.Lock()
			running = true
			if !signalled {
				signalled = true
				started <- nil
			}
		case CaptureEndOfData:
			if running {
				running = false
				h.runningMu.Unlock()
			}
		case CaptureEvent:
			h.process(c.Raw)
		}
	})

	// The running mutex must never outlive the capture goroutine,
	// whichever way Enable unwound.
	if running {
		h.runningMu.Unlock()
	}
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrEnable, err)
	}
	if !signalled {
		// Enable returned without ever delivering data; report a failure
		// even if the backend claimed success.
		if err == nil {
			err = ErrEnable
		}
		started <- err
	}
	h.done <- err
}

// Stop disables the interception context, joins the capture goroutine, and
// releases the context and connections. It returns the capture goroutine's
// final status. Calling Stop on an idle hook returns ErrNotRunning and
// changes nothing.
func (h *Hook) Stop() error {
	h.controlMu.Lock()
	defer h.controlMu.Unlock()

	if !h.IsRunning() {
		return ErrNotRunning
	}

	// Cooperative cancellation: Disable makes the blocked Enable call
	// drain and return. There is no forced interruption, so this waits for
	// the capture goroutine to genuinely finish.
	if err := h.backend.Disable(); err != nil {
		return err
	}
	err := <-h.done

	h.backend.FreeContext()
	h.backend.Close()

	h.log.Info("hook stopped")
	return err
}

// IsRunning reports whether the capture goroutine currently holds the
// running mutex. The try-lock probe is non-blocking and safe to call from
// any goroutine.
func (h *Hook) IsRunning() bool {
	if h.runningMu.TryLock() {
		h.runningMu.Unlock()
		return false
	}
	return true
}

// DispatchFailures returns the number of events the sink rejected since the
// hook was created. Rejections never stop capture.
func (h *Hook) DispatchFailures() uint64 {
	return h.dispatchFailures.Load()
}

// LastDispatchError returns the most recent sink error, or nil.
func (h *Hook) LastDispatchError() error {
	h.errMu.Lock()
	defer h.errMu.Unlock()
	return h.lastDispatchErr
}
