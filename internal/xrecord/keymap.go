package xrecord

import (
	"errors"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Native modifier state bits consulted when picking a keysym column.
const (
	stateShift = 1 << 0 // Shift
	stateLock  = 1 << 1 // Caps Lock
	stateMod2  = 1 << 4 // Num Lock on stock server configs
)

// Keypad keysyms occupy a contiguous block; Num Lock only applies there.
const (
	keypadFirst = 0xff80
	keypadLast  = 0xffbd
)

var errEmptyKeymap = errors.New("server returned empty keyboard mapping")

// keymap caches the server's keycode-to-keysym table, fetched once when
// the backend opens. Intercepted key events resolve through it without a
// round trip.
type keymap struct {
	min     xproto.Keycode
	perCode int
	syms    []xproto.Keysym
}

func loadKeymap(conn *xgb.Conn) (*keymap, error) {
	setup := xproto.Setup(conn)
	min, max := setup.MinKeycode, setup.MaxKeycode
	reply, err := xproto.GetKeyboardMapping(conn, min, byte(max-min)+1).Reply()
	if err != nil {
		return nil, err
	}
	if reply.KeysymsPerKeycode == 0 || len(reply.Keysyms) == 0 {
		return nil, errEmptyKeymap
	}
	return &keymap{
		min:     min,
		perCode: int(reply.KeysymsPerKeycode),
		syms:    reply.Keysyms,
	}, nil
}

// Lookup resolves a keycode to a keysym under the given modifier state.
// Column 1 is selected by Shift, or by Num Lock for keypad keys; a blank
// shifted column falls back to the unshifted one, and Caps Lock
// upcases letters the way the core protocol specifies.
func (k *keymap) Lookup(code uint8, state uint16) uint32 {
	idx := (int(code) - int(k.min)) * k.perCode
	if idx < 0 || idx+k.perCode > len(k.syms) {
		return 0
	}
	plain := uint32(k.syms[idx])
	shifted := plain
	if k.perCode > 1 {
		shifted = uint32(k.syms[idx+1])
	}
	if shifted == 0 {
		shifted = plain
	}

	if state&stateMod2 != 0 && shifted >= keypadFirst && shifted <= keypadLast {
		// Num Lock selects the keypad digit; Shift undoes it.
		if state&stateShift != 0 {
			return plain
		}
		return shifted
	}
	sym := plain
	if state&stateShift != 0 {
		sym = shifted
	}
	if state&stateLock != 0 {
		sym = capsFold(sym, plain, shifted)
	}
	return sym
}

// capsFold applies Caps Lock to alphabetic keysyms only: a locked
// lowercase letter becomes its shifted partner, and Shift+Lock undoes
// the fold back to lowercase.
func capsFold(sym, plain, shifted uint32) uint32 {
	switch sym {
	case plain:
		if isLowerLatin(plain) {
			return shifted
		}
	case shifted:
		if isLowerLatin(plain) {
			return plain
		}
	}
	return sym
}

func isLowerLatin(sym uint32) bool {
	return (sym >= 'a' && sym <= 'z') || (sym >= 0xe0 && sym <= 0xfe && sym != 0xf7)
}
