package keycode

// Button is a portable mouse button.
type Button uint8

const (
	// ButtonNone is the sentinel for unmapped button codes.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonBack is the back navigation button (native button 8).
	ButtonBack
	// ButtonForward is the forward navigation button (native button 9).
	ButtonForward
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return "none"
	}
}

// Native wheel-notch button codes. X11 reports scroll wheel motion as
// button presses on these codes; they are never ordinary buttons.
const (
	WheelUp    = 4
	WheelDown  = 5
	WheelLeft  = 6
	WheelRight = 7
)

// FromNativeButton maps a native button ordinal to its portable button.
// Wheel-notch codes and unknown ordinals return ButtonNone.
func FromNativeButton(code uint8) Button {
	switch code {
	case 1:
		return ButtonLeft
	case 2:
		return ButtonMiddle
	case 3:
		return ButtonRight
	case 8:
		return ButtonBack
	case 9:
		return ButtonForward
	default:
		return ButtonNone
	}
}

// IsWheel reports whether a native button code is a scroll-wheel notch.
func IsWheel(code uint8) bool {
	return code >= WheelUp && code <= WheelRight
}

// IsVerticalWheel reports whether a native button code is a vertical
// scroll-wheel notch. Only vertical notches produce wheel events; the
// horizontal pair is recognized and dropped.
func IsVerticalWheel(code uint8) bool {
	return code == WheelUp || code == WheelDown
}
