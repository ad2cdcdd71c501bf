package keycode

// Key is a portable virtual key code.
type Key uint16

const (
	// KeyUndefined is the sentinel for keysyms with no portable mapping.
	KeyUndefined Key = iota

	// Letter keys
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digit keys (top row)
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Whitespace and editing
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyEscape

	// Navigation
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Modifier keys
	KeyShift
	KeyControl
	KeyAlt
	KeyMeta
	KeyCapsLock
	KeyNumLock
	KeyScrollLock

	// Punctuation
	KeyMinus
	KeyEquals
	KeyBracketLeft
	KeyBracketRight
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyBackquote
	KeyComma
	KeyPeriod
	KeySlash

	// Keypad
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPAdd
	KeyKPSubtract
	KeyKPMultiply
	KeyKPDivide
	KeyKPDecimal
	KeyKPSeparator
	KeyKPEquals
	KeyKPEnter

	// Misc
	KeyPrintScreen
	KeyPause
	KeyMenu
)

// Location classifies where on the keyboard a key sits. Keys with
// location-sensitive variants (Shift, Control, Enter) report Left, Right, or
// Numpad; everything else is Standard.
type Location uint8

const (
	// LocationUnknown is the sentinel location for unmapped keysyms.
	LocationUnknown Location = iota
	// LocationStandard is the default location.
	LocationStandard
	// LocationLeft is the left-hand variant of a key.
	LocationLeft
	// LocationRight is the right-hand variant of a key.
	LocationRight
	// LocationNumpad is the numeric keypad.
	LocationNumpad
)

// String returns a human-readable name for the location.
func (l Location) String() string {
	switch l {
	case LocationStandard:
		return "standard"
	case LocationLeft:
		return "left"
	case LocationRight:
		return "right"
	case LocationNumpad:
		return "numpad"
	default:
		return "unknown"
	}
}

// VirtualKey pairs a portable key code with its keyboard location.
// It is an immutable value type derived per-event from a native keysym.
type VirtualKey struct {
	Key      Key
	Location Location
}

// Undefined is the VirtualKey sentinel returned for unmapped keysyms.
var Undefined = VirtualKey{Key: KeyUndefined, Location: LocationUnknown}

// IsUndefined reports whether the key has no portable mapping.
func (v VirtualKey) IsUndefined() bool {
	return v.Key == KeyUndefined
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if k >= KeyA && k <= KeyZ {
		return string(rune('A' + (k - KeyA)))
	}
	if k >= Key0 && k <= Key9 {
		return string(rune('0' + (k - Key0)))
	}
	if k >= KeyKP0 && k <= KeyKP9 {
		return "KP" + string(rune('0'+(k-KeyKP0)))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Undefined"
}

var keyNames = map[Key]string{
	KeySpace:        "Space",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyDelete:       "Delete",
	KeyInsert:       "Insert",
	KeyEscape:       "Escape",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyShift:        "Shift",
	KeyControl:      "Control",
	KeyAlt:          "Alt",
	KeyMeta:         "Meta",
	KeyCapsLock:     "CapsLock",
	KeyNumLock:      "NumLock",
	KeyScrollLock:   "ScrollLock",
	KeyMinus:        "Minus",
	KeyEquals:       "Equals",
	KeyBracketLeft:  "BracketLeft",
	KeyBracketRight: "BracketRight",
	KeyBackslash:    "Backslash",
	KeySemicolon:    "Semicolon",
	KeyQuote:        "Quote",
	KeyBackquote:    "Backquote",
	KeyComma:        "Comma",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeyKPAdd:        "KPAdd",
	KeyKPSubtract:   "KPSubtract",
	KeyKPMultiply:   "KPMultiply",
	KeyKPDivide:     "KPDivide",
	KeyKPDecimal:    "KPDecimal",
	KeyKPSeparator:  "KPSeparator",
	KeyKPEquals:     "KPEquals",
	KeyKPEnter:      "KPEnter",
	KeyPrintScreen:  "PrintScreen",
	KeyPause:        "Pause",
	KeyMenu:         "Menu",
}
