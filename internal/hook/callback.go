package hook

import (
	"github.com/dshills/hookstorm/internal/event"
	"github.com/dshills/hookstorm/internal/gesture"
	"github.com/dshills/hookstorm/internal/keycode"
)

// process translates one raw event into normalized events and hands them to
// the sink. It runs on the capture goroutine only, never concurrently with
// itself.
func (h *Hook) process(raw RawEvent) {
	// Late-arrival guard: if the running mutex can be acquired, teardown
	// has begun and hook state may already be released; drop the event.
	if h.runningMu.TryLock() {
		h.runningMu.Unlock()
		return
	}

	mask := keycode.FromNativeMask(raw.State)

	switch raw.Kind {
	case RawKeyPress:
		vk := keycode.FromKeysym(raw.Keysym)
		h.emit(event.NewKeyEvent(event.KeyPressed, raw.When, mask, uint16(raw.Code), vk))

		// Printable keys additionally synthesize a typed event.
		if r, ok := keycode.KeysymRune(raw.Keysym); ok {
			h.emit(event.NewTypedEvent(raw.When, mask, uint16(raw.Code), vk.Location, r))
		}

	case RawKeyRelease:
		vk := keycode.FromKeysym(raw.Keysym)
		h.emit(event.NewKeyEvent(event.KeyReleased, raw.When, mask, uint16(raw.Code), vk))

	case RawButtonPress:
		clicks := h.tracker.Press(raw.When)

		switch {
		case keycode.IsWheel(raw.Code):
			// Vertical notches become wheel events; the horizontal pair is
			// recognized and dropped.
			if keycode.IsVerticalWheel(raw.Code) {
				rotation := 1
				if raw.Code == keycode.WheelUp {
					rotation = -1
				}
				h.emit(event.NewWheelEvent(raw.When, mask, raw.RootX, raw.RootY, clicks, rotation))
			}
		default:
			if b := keycode.FromNativeButton(raw.Code); b != keycode.ButtonNone {
				h.emit(event.NewMouseEvent(event.MousePressed, raw.When, mask, raw.RootX, raw.RootY, clicks, b))
			}
		}

	case RawButtonRelease:
		if keycode.IsWheel(raw.Code) {
			return
		}
		b := keycode.FromNativeButton(raw.Code)
		if b == keycode.ButtonNone {
			return
		}

		clicks := h.tracker.ClickCount()
		h.emit(event.NewMouseEvent(event.MouseReleased, raw.When, mask, raw.RootX, raw.RootY, clicks, b))

		// A release that was not preceded by a drag is also a click,
		// regardless of how long the button was held.
		if h.tracker.Release() {
			h.emit(event.NewMouseEvent(event.MouseClicked, raw.When, mask, raw.RootX, raw.RootY, clicks, b))
		}

	case RawMotion:
		motion := h.tracker.Motion(raw.When, mask)
		typ := event.MouseMoved
		if motion == gesture.Dragged {
			typ = event.MouseDragged
		}
		h.emit(event.NewMouseEvent(typ, raw.When, mask, raw.RootX, raw.RootY, h.tracker.ClickCount(), keycode.ButtonNone))
	}
}

// emit filters and dispatches one normalized event. Sink failures are
// recorded for the caller to observe; capture continues regardless. A nil
// sink is a no-op, guarding the window between goroutine start and full
// initialization.
func (h *Hook) emit(e event.Event) {
	if h.sink == nil {
		return
	}
	if h.filter != nil && !h.filter.Allow(e) {
		return
	}

	if err := h.sink.Dispatch(e); err != nil {
		h.dispatchFailures.Add(1)
		h.errMu.Lock()
		h.lastDispatchErr = err
		h.errMu.Unlock()
		h.log.Warn("sink rejected %s event: %v", e.Type, err)
	}
}
