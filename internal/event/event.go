package event

import (
	"fmt"

	"github.com/dshills/hookstorm/internal/keycode"
)

// Type identifies the kind of a normalized event.
type Type uint8

const (
	// TypeNone is the zero value; no valid event carries it.
	TypeNone Type = iota
	// KeyPressed is a key-down event.
	KeyPressed
	// KeyReleased is a key-up event.
	KeyReleased
	// KeyTyped is synthesized after KeyPressed for printable keys.
	KeyTyped
	// MousePressed is a button-down event.
	MousePressed
	// MouseReleased is a button-up event.
	MouseReleased
	// MouseClicked is synthesized after MouseReleased when no drag occurred.
	MouseClicked
	// MouseMoved is pointer motion with no button held.
	MouseMoved
	// MouseDragged is pointer motion with a button held.
	MouseDragged
	// MouseWheel is a scroll-wheel notch.
	MouseWheel
)

// String returns a string representation of the event type.
func (t Type) String() string {
	switch t {
	case KeyPressed:
		return "key-pressed"
	case KeyReleased:
		return "key-released"
	case KeyTyped:
		return "key-typed"
	case MousePressed:
		return "mouse-pressed"
	case MouseReleased:
		return "mouse-released"
	case MouseClicked:
		return "mouse-clicked"
	case MouseMoved:
		return "mouse-moved"
	case MouseDragged:
		return "mouse-dragged"
	case MouseWheel:
		return "mouse-wheel"
	default:
		return "none"
	}
}

// IsKey reports whether the type is a keyboard event.
func (t Type) IsKey() bool {
	return t == KeyPressed || t == KeyReleased || t == KeyTyped
}

// IsMouse reports whether the type is a pointer event.
func (t Type) IsMouse() bool {
	return t >= MousePressed && t <= MouseWheel
}

// Scroll descriptor constants for MouseWheel events. X11 exposes no scroll
// configuration, so the wheel descriptor is fixed: unit scrolling, three
// units per notch.
const (
	// WheelUnitScroll is the only scroll type this backend reports.
	WheelUnitScroll = 1
	// WheelScrollAmount is the fixed number of units per wheel notch.
	WheelScrollAmount = 3
)

// Event is a normalized input event. Kind-specific fields are valid
// according to Type: Key/Location/Rune for key events, X/Y/Clicks/Button for
// mouse events, plus Rotation/ScrollType/ScrollAmount for wheel events.
type Event struct {
	// Type is the event kind.
	Type Type

	// When is the event arrival timestamp in Unix milliseconds.
	When int64

	// Mask is the portable modifier state at the time of the event.
	Mask keycode.Modifier

	// RawCode is the platform-native key or button code.
	RawCode uint16

	// Key payload.
	Key      keycode.Key
	Location keycode.Location
	Rune     rune

	// Mouse payload.
	X      int16
	Y      int16
	Clicks int
	Button keycode.Button

	// Wheel payload.
	Rotation     int
	ScrollType   int
	ScrollAmount int
}

// NewKeyEvent constructs a key event. For KeyTyped events the caller sets
// Rune; pressed/released events carry the virtual key instead.
func NewKeyEvent(t Type, when int64, mask keycode.Modifier, raw uint16, vk keycode.VirtualKey) Event {
	return Event{
		Type:     t,
		When:     when,
		Mask:     mask,
		RawCode:  raw,
		Key:      vk.Key,
		Location: vk.Location,
	}
}

// NewTypedEvent constructs the KeyTyped event synthesized for a printable
// key press.
func NewTypedEvent(when int64, mask keycode.Modifier, raw uint16, loc keycode.Location, r rune) Event {
	return Event{
		Type:     KeyTyped,
		When:     when,
		Mask:     mask,
		RawCode:  raw,
		Key:      keycode.KeyUndefined,
		Location: loc,
		Rune:     r,
	}
}

// NewMouseEvent constructs a button or motion event.
func NewMouseEvent(t Type, when int64, mask keycode.Modifier, x, y int16, clicks int, button keycode.Button) Event {
	return Event{
		Type:   t,
		When:   when,
		Mask:   mask,
		X:      x,
		Y:      y,
		Clicks: clicks,
		Button: button,
	}
}

// NewWheelEvent constructs a scroll-wheel event. Rotation is -1 for a notch
// away from the user and +1 for a notch toward the user.
func NewWheelEvent(when int64, mask keycode.Modifier, x, y int16, clicks, rotation int) Event {
	return Event{
		Type:         MouseWheel,
		When:         when,
		Mask:         mask,
		X:            x,
		Y:            y,
		Clicks:       clicks,
		Rotation:     rotation,
		ScrollType:   WheelUnitScroll,
		ScrollAmount: WheelScrollAmount,
	}
}

// String returns a compact single-line description, suitable for logging.
func (e Event) String() string {
	switch {
	case e.Type == KeyTyped:
		return fmt.Sprintf("%s %q mask=%s", e.Type, e.Rune, e.Mask)
	case e.Type.IsKey():
		return fmt.Sprintf("%s %s (%s) mask=%s", e.Type, e.Key, e.Location, e.Mask)
	case e.Type == MouseWheel:
		return fmt.Sprintf("%s rotation=%+d at (%d,%d)", e.Type, e.Rotation, e.X, e.Y)
	case e.Type == MouseMoved || e.Type == MouseDragged:
		return fmt.Sprintf("%s to (%d,%d) mask=%s", e.Type, e.X, e.Y, e.Mask)
	default:
		return fmt.Sprintf("%s %s clicks=%d at (%d,%d)", e.Type, e.Button, e.Clicks, e.X, e.Y)
	}
}
