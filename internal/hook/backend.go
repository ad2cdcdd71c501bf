package hook

// RawKind identifies the kind of a platform-native event.
type RawKind uint8

const (
	// RawKeyPress is a native key-down event.
	RawKeyPress RawKind = iota
	// RawKeyRelease is a native key-up event.
	RawKeyRelease
	// RawButtonPress is a native button-down event.
	RawButtonPress
	// RawButtonRelease is a native button-up event.
	RawButtonRelease
	// RawMotion is a native pointer-motion event.
	RawMotion
)

// String returns a string representation of the raw event kind.
func (k RawKind) String() string {
	switch k {
	case RawKeyPress:
		return "key-press"
	case RawKeyRelease:
		return "key-release"
	case RawButtonPress:
		return "button-press"
	case RawButtonRelease:
		return "button-release"
	case RawMotion:
		return "motion"
	default:
		return "unknown"
	}
}

// RawEvent is a decoded platform-native event. It is produced by the
// backend, consumed synchronously by the capture callback, and never
// persisted.
type RawEvent struct {
	// Kind is the native event kind.
	Kind RawKind

	// Code is the native keycode or button ordinal.
	Code uint8

	// State is the native modifier bitmask at the time of the event.
	State uint16

	// Keysym is the key symbol the keycode resolves to under State.
	// Only meaningful for key events.
	Keysym uint32

	// RootX and RootY are the pointer coordinates relative to the root
	// window.
	RootX int16
	RootY int16

	// When is the arrival timestamp in Unix milliseconds.
	When int64
}

// Category classifies a capture delivery from the backend.
type Category uint8

const (
	// CaptureEvent carries a decoded raw event.
	CaptureEvent Category = iota
	// CaptureStartOfData marks the first delivery after the interception
	// context is enabled. It carries no event.
	CaptureStartOfData
	// CaptureEndOfData marks the final delivery after the context is
	// disabled. It carries no event.
	CaptureEndOfData
)

// Capture is one delivery from the backend to the capture callback.
type Capture struct {
	Category Category
	Raw      RawEvent
}

// EventRange describes which native event kinds an interception context
// should report.
type EventRange struct {
	First RawKind
	Last  RawKind
}

// CaptureFunc is invoked by the backend once per capture delivery, always
// from the goroutine that called Enable, never concurrently with itself.
type CaptureFunc func(Capture)

// Backend abstracts the platform's event-interception mechanism. The
// lifecycle contract follows the X11 RECORD extension but contains nothing
// X-specific: open connections, verify the extension, allocate an event
// range, create a context, then Enable blocks delivering events until
// Disable is called from another goroutine.
//
// A Backend instance is not safe for concurrent use except where noted:
// Disable may be called while Enable is blocked.
type Backend interface {
	// Open establishes the server connections. An empty display name selects
	// the platform default.
	Open(display string) error

	// QueryVersion verifies the interception extension is available and
	// returns its version.
	QueryVersion() (major, minor uint16, err error)

	// AllocRange allocates an event-range descriptor.
	AllocRange() (*EventRange, error)

	// CreateContext creates the interception context for the given range.
	CreateContext(r *EventRange) error

	// Enable activates the context and blocks, invoking fn for every
	// matching event, until Disable is called. The first delivery is
	// CaptureStartOfData; the last is CaptureEndOfData.
	Enable(fn CaptureFunc) error

	// Disable deactivates the context, causing the blocked Enable call to
	// drain and return. Safe to call from a goroutine other than Enable's.
	Disable() error

	// FreeContext releases the interception context.
	FreeContext() error

	// Close tears down the server connections.
	Close() error
}
