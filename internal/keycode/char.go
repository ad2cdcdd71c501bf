package keycode

// KeysymRune returns the printable character a keysym produces, or false for
// non-printable keys (function keys, modifiers, navigation). The result
// decides whether a key press additionally synthesizes a typed event.
func KeysymRune(keysym uint32) (rune, bool) {
	switch {
	// Printable Latin-1, minus the control ranges.
	case keysym >= 0x20 && keysym <= 0x7e:
		return rune(keysym), true
	case keysym >= 0xa0 && keysym <= 0xff:
		return rune(keysym), true

	// Directly encoded Unicode codepoints (keysym = 0x01000000 | ucs).
	case keysym&0xff000000 == 0x01000000:
		return rune(keysym & 0x00ffffff), true

	// Keypad digits and operators.
	case keysym >= xkKP0 && keysym <= xkKP9:
		return rune('0' + (keysym - xkKP0)), true
	case keysym == xkKPSpace:
		return ' ', true
	case keysym == xkKPMultiply:
		return '*', true
	case keysym == xkKPAdd:
		return '+', true
	case keysym == xkKPSeparator:
		return ',', true
	case keysym == xkKPSubtract:
		return '-', true
	case keysym == xkKPDecimal:
		return '.', true
	case keysym == xkKPDivide:
		return '/', true
	case keysym == xkKPEqual:
		return '=', true
	}

	return 0, false
}
