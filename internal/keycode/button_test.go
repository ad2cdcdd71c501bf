package keycode

import "testing"

func TestFromNativeButton(t *testing.T) {
	tests := []struct {
		code uint8
		want Button
	}{
		{1, ButtonLeft},
		{2, ButtonMiddle},
		{3, ButtonRight},
		{8, ButtonBack},
		{9, ButtonForward},
		{0, ButtonNone},
		{4, ButtonNone}, // wheel notch, never an ordinary button
		{5, ButtonNone},
		{6, ButtonNone},
		{7, ButtonNone},
		{10, ButtonNone},
	}

	for _, tt := range tests {
		if got := FromNativeButton(tt.code); got != tt.want {
			t.Errorf("FromNativeButton(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestIsWheel(t *testing.T) {
	for code := uint8(0); code < 12; code++ {
		want := code >= 4 && code <= 7
		if got := IsWheel(code); got != want {
			t.Errorf("IsWheel(%d) = %v, want %v", code, got, want)
		}
		wantVert := code == 4 || code == 5
		if got := IsVerticalWheel(code); got != wantVert {
			t.Errorf("IsVerticalWheel(%d) = %v, want %v", code, got, wantVert)
		}
	}
}

func TestButtonString(t *testing.T) {
	tests := []struct {
		button Button
		want   string
	}{
		{ButtonLeft, "left"},
		{ButtonMiddle, "middle"},
		{ButtonRight, "right"},
		{ButtonBack, "back"},
		{ButtonForward, "forward"},
		{ButtonNone, "none"},
	}
	for _, tt := range tests {
		if got := tt.button.String(); got != tt.want {
			t.Errorf("Button(%d).String() = %q, want %q", tt.button, got, tt.want)
		}
	}
}
