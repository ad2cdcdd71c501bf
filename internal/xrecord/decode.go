package xrecord

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/dshills/hookstorm/internal/hook"
)

// Every core protocol event occupies 32 bytes on the wire. The RECORD
// data stream concatenates them back to back.
const wireEventSize = 32

// Offsets into a core input event (KeyPress .. MotionNotify share the
// same layout).
const (
	offCode   = 0
	offDetail = 1
	offRootX  = 20
	offRootY  = 22
	offState  = 28
)

// The server sets the top bit of the opcode on events generated by
// SendEvent rather than a device.
const syntheticBit = 0x80

// decodeEvents splits a RECORD data blob into raw backend events,
// stamping each with the given wall-clock time in milliseconds. Keyboard
// events get their keysym resolved through the mapping; unknown opcodes
// and trailing partial data are skipped.
func decodeEvents(data []byte, km *keymap, now int64) []hook.RawEvent {
	out := make([]hook.RawEvent, 0, len(data)/wireEventSize)
	for len(data) >= wireEventSize {
		buf := data[:wireEventSize]
		data = data[wireEventSize:]

		var kind hook.RawKind
		switch buf[offCode] &^ syntheticBit {
		case xproto.KeyPress:
			kind = hook.RawKeyPress
		case xproto.KeyRelease:
			kind = hook.RawKeyRelease
		case xproto.ButtonPress:
			kind = hook.RawButtonPress
		case xproto.ButtonRelease:
			kind = hook.RawButtonRelease
		case xproto.MotionNotify:
			kind = hook.RawMotion
		default:
			continue
		}

		raw := hook.RawEvent{
			Kind:  kind,
			Code:  buf[offDetail],
			State: xgb.Get16(buf[offState:]),
			RootX: int16(xgb.Get16(buf[offRootX:])),
			RootY: int16(xgb.Get16(buf[offRootY:])),
			When:  now,
		}
		if kind == hook.RawKeyPress || kind == hook.RawKeyRelease {
			raw.Keysym = km.Lookup(raw.Code, raw.State)
		}
		out = append(out, raw)
	}
	return out
}
