package filter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/hookstorm/internal/event"
	"github.com/dshills/hookstorm/internal/keycode"
)

func mustLoad(t *testing.T, src string) *LuaFilter {
	t.Helper()
	f, err := NewFromString(src, nil)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	t.Cleanup(f.Close)
	return f
}

func TestAllowByType(t *testing.T) {
	f := mustLoad(t, `
		function accept(ev)
			return ev.type ~= "mouse-moved"
		end
	`)
	moved := event.NewMouseEvent(event.MouseMoved, 1, 0, 10, 10, 0, keycode.ButtonNone)
	pressed := event.NewMouseEvent(event.MousePressed, 1, 0, 10, 10, 1, keycode.ButtonLeft)
	if f.Allow(moved) {
		t.Error("mouse-moved passed a filter that rejects it")
	}
	if !f.Allow(pressed) {
		t.Error("mouse-pressed rejected by a filter that only drops motion")
	}
}

func TestAllowSeesKeyFields(t *testing.T) {
	f := mustLoad(t, `
		function accept(ev)
			return ev.key == "A"
		end
	`)
	a := event.NewKeyEvent(event.KeyPressed, 1, 0, 38, keycode.VirtualKey{Key: keycode.KeyA})
	b := event.NewKeyEvent(event.KeyPressed, 1, 0, 56, keycode.VirtualKey{Key: keycode.KeyB})
	if !f.Allow(a) {
		t.Error("filter on key name rejected matching key")
	}
	if f.Allow(b) {
		t.Error("filter on key name passed non-matching key")
	}
}

func TestAllowSeesWheelRotation(t *testing.T) {
	f := mustLoad(t, `
		function accept(ev)
			return ev.rotation == nil or ev.rotation > 0
		end
	`)
	up := event.NewWheelEvent(1, 0, 0, 0, 1, -1)
	down := event.NewWheelEvent(1, 0, 0, 0, 1, 1)
	if f.Allow(up) {
		t.Error("negative rotation passed")
	}
	if !f.Allow(down) {
		t.Error("positive rotation rejected")
	}
}

func TestScriptErrorFailsOpen(t *testing.T) {
	f := mustLoad(t, `
		function accept(ev)
			error("boom")
		end
	`)
	ev := event.NewKeyEvent(event.KeyPressed, 1, 0, 38, keycode.VirtualKey{Key: keycode.KeyA})
	if !f.Allow(ev) {
		t.Error("erroring filter dropped the event; errors must fail open")
	}
	if f.Errors() != 1 {
		t.Errorf("Errors() = %d, want 1", f.Errors())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := NewFromString(`this is not lua`, nil); !errors.Is(err, ErrScriptLoad) {
		t.Errorf("parse failure error = %v, want ErrScriptLoad", err)
	}
	if _, err := NewFromString(`x = 1`, nil); !errors.Is(err, ErrNoAcceptFunction) {
		t.Errorf("missing accept error = %v, want ErrNoAcceptFunction", err)
	}
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter.lua")
	script := []byte(`function accept(ev) return true end`)
	if err := os.WriteFile(path, script, 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	f, err := NewFromFile(path, nil)
	if err != nil {
		t.Fatalf("NewFromFile failed: %v", err)
	}
	defer f.Close()
	ev := event.NewKeyEvent(event.KeyPressed, 1, 0, 38, keycode.VirtualKey{Key: keycode.KeyA})
	if !f.Allow(ev) {
		t.Error("accept-all filter rejected an event")
	}
}
