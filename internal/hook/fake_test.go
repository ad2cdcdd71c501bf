package hook

import (
	"errors"
	"sync"

	"github.com/dshills/hookstorm/internal/event"
)

// fakeBackend is a scriptable Backend for lifecycle and pipeline tests.
// Failures can be injected at every setup step, and a scripted stream of
// raw events is delivered after the start-of-data handshake.
type fakeBackend struct {
	mu sync.Mutex

	openErr    error
	versionErr error
	rangeErr   error
	contextErr error
	enableErr  error

	script []RawEvent

	opens    int
	closes   int
	creates  int
	frees    int
	enables  int
	disables int

	stop chan struct{}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{}
}

func (b *fakeBackend) Open(display string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.openErr != nil {
		return b.openErr
	}
	b.opens++
	b.stop = make(chan struct{})
	return nil
}

func (b *fakeBackend) QueryVersion() (uint16, uint16, error) {
	if b.versionErr != nil {
		return 0, 0, b.versionErr
	}
	return 1, 13, nil
}

func (b *fakeBackend) AllocRange() (*EventRange, error) {
	if b.rangeErr != nil {
		return nil, b.rangeErr
	}
	return &EventRange{First: RawKeyPress, Last: RawMotion}, nil
}

func (b *fakeBackend) CreateContext(r *EventRange) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.contextErr != nil {
		return b.contextErr
	}
	if r == nil {
		return errors.New("nil range")
	}
	b.creates++
	return nil
}

func (b *fakeBackend) Enable(fn CaptureFunc) error {
	b.mu.Lock()
	if b.enableErr != nil {
		b.mu.Unlock()
		return b.enableErr
	}
	b.enables++
	stop := b.stop
	script := b.script
	b.mu.Unlock()

	fn(Capture{Category: CaptureStartOfData})
	for _, raw := range script {
		fn(Capture{Category: CaptureEvent, Raw: raw})
	}

	<-stop
	fn(Capture{Category: CaptureEndOfData})
	return nil
}

func (b *fakeBackend) Disable() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.disables++
	close(b.stop)
	return nil
}

func (b *fakeBackend) FreeContext() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.frees++
	return nil
}

func (b *fakeBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closes++
	return nil
}

// collectSink records every dispatched event and optionally fails each
// dispatch.
type collectSink struct {
	mu     sync.Mutex
	events []event.Event
	err    error
}

func (s *collectSink) Dispatch(e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, e)
	return s.err
}

func (s *collectSink) all() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]event.Event, len(s.events))
	copy(out, s.events)
	return out
}
