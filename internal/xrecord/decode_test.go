package xrecord

import (
	"testing"

	"github.com/jezek/xgb/xproto"

	"github.com/dshills/hookstorm/internal/hook"
)

func testKeymap() *keymap {
	// Keycode 8 -> a/A, keycode 9 -> 1/!, keycode 10 -> KP_End/KP_1,
	// keycode 11 -> Return (blank shifted column).
	return &keymap{
		min:     8,
		perCode: 2,
		syms: []xproto.Keysym{
			'a', 'A',
			'1', '!',
			0xff9c, 0xffb1,
			0xff0d, 0,
		},
	}
}

func wireEvent(code, detail byte, rootX, rootY int16, state uint16) []byte {
	buf := make([]byte, wireEventSize)
	buf[offCode] = code
	buf[offDetail] = detail
	buf[offRootX] = byte(rootX)
	buf[offRootX+1] = byte(uint16(rootX) >> 8)
	buf[offRootY] = byte(rootY)
	buf[offRootY+1] = byte(uint16(rootY) >> 8)
	buf[offState] = byte(state)
	buf[offState+1] = byte(state >> 8)
	return buf
}

func TestDecodeKeyPress(t *testing.T) {
	data := wireEvent(xproto.KeyPress, 8, 100, 200, 0)
	got := decodeEvents(data, testKeymap(), 42)
	if len(got) != 1 {
		t.Fatalf("decoded %d events, want 1", len(got))
	}
	want := hook.RawEvent{
		Kind:   hook.RawKeyPress,
		Code:   8,
		Keysym: 'a',
		RootX:  100,
		RootY:  200,
		When:   42,
	}
	if got[0] != want {
		t.Errorf("decoded %+v, want %+v", got[0], want)
	}
}

func TestDecodeConcatenatedEvents(t *testing.T) {
	var data []byte
	data = append(data, wireEvent(xproto.ButtonPress, 1, 10, 20, 0)...)
	data = append(data, wireEvent(xproto.MotionNotify, 0, 11, 21, 1<<8)...)
	data = append(data, wireEvent(xproto.ButtonRelease, 1, 12, 22, 1<<8)...)
	got := decodeEvents(data, testKeymap(), 1)
	if len(got) != 3 {
		t.Fatalf("decoded %d events, want 3", len(got))
	}
	kinds := []hook.RawKind{hook.RawButtonPress, hook.RawMotion, hook.RawButtonRelease}
	for i, kind := range kinds {
		if got[i].Kind != kind {
			t.Errorf("event %d kind = %v, want %v", i, got[i].Kind, kind)
		}
	}
	if got[1].State != 1<<8 {
		t.Errorf("motion state = %#x, want %#x", got[1].State, 1<<8)
	}
}

func TestDecodeNegativeCoordinates(t *testing.T) {
	// Pointer coordinates go negative left of or above the primary screen.
	data := wireEvent(xproto.MotionNotify, 0, -5, -17, 0)
	got := decodeEvents(data, testKeymap(), 1)
	if len(got) != 1 {
		t.Fatalf("decoded %d events, want 1", len(got))
	}
	if got[0].RootX != -5 || got[0].RootY != -17 {
		t.Errorf("coordinates = (%d, %d), want (-5, -17)", got[0].RootX, got[0].RootY)
	}
}

func TestDecodeSyntheticBitStripped(t *testing.T) {
	data := wireEvent(xproto.KeyPress|syntheticBit, 8, 0, 0, 0)
	got := decodeEvents(data, testKeymap(), 1)
	if len(got) != 1 || got[0].Kind != hook.RawKeyPress {
		t.Fatalf("synthetic key press not decoded: %+v", got)
	}
}

func TestDecodeSkipsUnknownAndPartial(t *testing.T) {
	var data []byte
	data = append(data, wireEvent(33, 0, 0, 0, 0)...) // not an input event
	data = append(data, wireEvent(xproto.KeyRelease, 9, 0, 0, 0)...)
	data = append(data, 0x02, 0x08) // truncated trailing event
	got := decodeEvents(data, testKeymap(), 1)
	if len(got) != 1 {
		t.Fatalf("decoded %d events, want 1", len(got))
	}
	if got[0].Kind != hook.RawKeyRelease || got[0].Keysym != '1' {
		t.Errorf("decoded %+v, want key release of '1'", got[0])
	}
}

func TestKeymapLookup(t *testing.T) {
	km := testKeymap()
	tests := []struct {
		name  string
		code  uint8
		state uint16
		want  uint32
	}{
		{"plain letter", 8, 0, 'a'},
		{"shifted letter", 8, stateShift, 'A'},
		{"caps locked letter", 8, stateLock, 'A'},
		{"shift undoes caps", 8, stateShift | stateLock, 'a'},
		{"caps does not shift digits", 9, stateLock, '1'},
		{"shifted digit", 9, stateShift, '!'},
		{"keypad without numlock", 10, 0, 0xff9c},
		{"keypad with numlock", 10, stateMod2, 0xffb1},
		{"shift undoes numlock", 10, stateMod2 | stateShift, 0xff9c},
		{"blank shifted column falls back", 11, stateShift, 0xff0d},
		{"keycode below minimum", 3, 0, 0},
		{"keycode past table", 200, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Lookup(tt.code, tt.state); got != tt.want {
				t.Errorf("Lookup(%d, %#x) = %#x, want %#x", tt.code, tt.state, got, tt.want)
			}
		})
	}
}
