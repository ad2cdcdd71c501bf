package keycode

import "strings"

// Modifier is the portable modifier bitmask attached to every normalized
// event. The bit layout is stable across platforms: bits 0-3 carry the left
// modifier variants, bits 4-7 the right variants, and bits 8-12 the mouse
// buttons. The button bits double as the drag signal for pointer motion.
type Modifier uint16

// MaskNone indicates no modifiers.
const MaskNone Modifier = 0

const (
	// MaskShiftL indicates the left Shift key.
	MaskShiftL Modifier = 1 << iota

	// MaskCtrlL indicates the left Control key.
	MaskCtrlL

	// MaskMetaL indicates the left Meta (Super/Cmd/Win) key.
	MaskMetaL

	// MaskAltL indicates the left Alt key.
	MaskAltL

	// MaskShiftR indicates the right Shift key.
	MaskShiftR

	// MaskCtrlR indicates the right Control key.
	MaskCtrlR

	// MaskMetaR indicates the right Meta key.
	MaskMetaR

	// MaskAltR indicates the right Alt key.
	MaskAltR

	// MaskButton1 indicates mouse button 1 is held.
	MaskButton1

	// MaskButton2 indicates mouse button 2 is held.
	MaskButton2

	// MaskButton3 indicates mouse button 3 is held.
	MaskButton3

	// MaskButton4 indicates mouse button 4 is held.
	MaskButton4

	// MaskButton5 indicates mouse button 5 is held.
	MaskButton5
)

// Combined masks for location-insensitive checks.
const (
	MaskShift = MaskShiftL | MaskShiftR
	MaskCtrl  = MaskCtrlL | MaskCtrlR
	MaskMeta  = MaskMetaL | MaskMetaR
	MaskAlt   = MaskAltL | MaskAltR

	// MaskButtonAny covers the mouse-button bits; a pointer motion with any
	// of these set is a drag rather than a move.
	MaskButtonAny = MaskButton1 | MaskButton2 | MaskButton3 | MaskButton4 | MaskButton5
)

// Native X11 state-field bits.
const (
	nativeShift   = 1 << 0
	nativeLock    = 1 << 1
	nativeControl = 1 << 2
	nativeMod1    = 1 << 3 // Alt
	nativeMod4    = 1 << 6 // Super/Meta
	nativeButton1 = 1 << 8
	nativeButton2 = 1 << 9
	nativeButton3 = 1 << 10
	nativeButton4 = 1 << 11
	nativeButton5 = 1 << 12
)

// FromNativeMask reinterprets a native modifier state bit-for-bit into the
// portable layout. The native state cannot distinguish left from right, so
// keyboard modifiers resolve to their left-variant bits. Idempotent over
// equal inputs and free of hidden state.
func FromNativeMask(state uint16) Modifier {
	var m Modifier
	if state&nativeShift != 0 {
		m |= MaskShiftL
	}
	if state&nativeControl != 0 {
		m |= MaskCtrlL
	}
	if state&nativeMod1 != 0 {
		m |= MaskAltL
	}
	if state&nativeMod4 != 0 {
		m |= MaskMetaL
	}
	if state&nativeButton1 != 0 {
		m |= MaskButton1
	}
	if state&nativeButton2 != 0 {
		m |= MaskButton2
	}
	if state&nativeButton3 != 0 {
		m |= MaskButton3
	}
	if state&nativeButton4 != 0 {
		m |= MaskButton4
	}
	if state&nativeButton5 != 0 {
		m |= MaskButton5
	}
	return m
}

// Has returns true if m contains any bit of the specified mask.
func (m Modifier) Has(mask Modifier) bool {
	return m&mask != 0
}

// HasShift returns true if either Shift is held.
func (m Modifier) HasShift() bool {
	return m.Has(MaskShift)
}

// HasCtrl returns true if either Control is held.
func (m Modifier) HasCtrl() bool {
	return m.Has(MaskCtrl)
}

// HasAlt returns true if either Alt is held.
func (m Modifier) HasAlt() bool {
	return m.Has(MaskAlt)
}

// HasMeta returns true if either Meta is held.
func (m Modifier) HasMeta() bool {
	return m.Has(MaskMeta)
}

// AnyButton returns true if any mouse button is held. This is the signal
// that a pointer motion is a drag.
func (m Modifier) AnyButton() bool {
	return m.Has(MaskButtonAny)
}

// With returns a new mask with the specified bits added.
func (m Modifier) With(mask Modifier) Modifier {
	return m | mask
}

// Without returns a new mask with the specified bits removed.
func (m Modifier) Without(mask Modifier) Modifier {
	return m &^ mask
}

// IsEmpty returns true if no bits are set.
func (m Modifier) IsEmpty() bool {
	return m == MaskNone
}

// String returns a human-readable representation like "Ctrl+Alt+Button1".
func (m Modifier) String() string {
	if m == MaskNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	for i, b := range []Modifier{MaskButton1, MaskButton2, MaskButton3, MaskButton4, MaskButton5} {
		if m.Has(b) {
			parts = append(parts, "Button"+string(rune('1'+i)))
		}
	}
	return strings.Join(parts, "+")
}
