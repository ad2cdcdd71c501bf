package gesture

import (
	"time"

	"github.com/dshills/hookstorm/internal/keycode"
)

// DefaultMultiClickInterval is the maximum gap between presses that still
// extends a click sequence. Matches the X server's default multi-click time.
const DefaultMultiClickInterval = 200 * time.Millisecond

// Motion is the classification of a pointer motion event.
type Motion uint8

const (
	// Moved is pointer motion with no button held.
	Moved Motion = iota
	// Dragged is pointer motion with at least one button held.
	Dragged
)

// String returns a string representation of the motion kind.
func (m Motion) String() string {
	if m == Dragged {
		return "dragged"
	}
	return "moved"
}

// Tracker disambiguates button and motion events into click counts and
// drag/move classifications. Timestamps are event arrival times in
// milliseconds, as carried by raw events.
type Tracker struct {
	interval time.Duration

	clickCount    int
	lastClickTime int64
	dragging      bool
}

// NewTracker creates a tracker with the given multi-click interval.
// A non-positive interval falls back to DefaultMultiClickInterval.
func NewTracker(interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = DefaultMultiClickInterval
	}
	return &Tracker{interval: interval}
}

// Press records a button press at the given timestamp and returns the
// resulting click count. A press within the multi-click interval of the
// previous press extends the sequence; otherwise the count resets to 1.
// Pressing also clears the drag flag, so Release reports a click unless a
// drag happened after this press.
func (t *Tracker) Press(when int64) int {
	if t.clickCount > 0 && t.gap(when) <= t.interval {
		t.clickCount++
	} else {
		t.clickCount = 1
	}
	t.lastClickTime = when
	t.dragging = false
	return t.clickCount
}

// Release records a button release and reports whether a clicked event
// should accompany the released event. A drag since the last press
// suppresses the click; hold duration does not.
func (t *Tracker) Release() bool {
	return !t.dragging
}

// Motion records a pointer motion at the given timestamp under the given
// modifier mask and classifies it. An idle gap longer than the multi-click
// interval invalidates the pending click sequence.
func (t *Tracker) Motion(when int64, mask keycode.Modifier) Motion {
	if t.clickCount != 0 && t.gap(when) > t.interval {
		t.clickCount = 0
	}

	t.dragging = mask.AnyButton()
	if t.dragging {
		return Dragged
	}
	return Moved
}

// ClickCount returns the current click count.
func (t *Tracker) ClickCount() int {
	return t.clickCount
}

// Dragging returns true if the pointer is currently dragging.
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// Reset clears all gesture state.
func (t *Tracker) Reset() {
	t.clickCount = 0
	t.lastClickTime = 0
	t.dragging = false
}

// gap returns the elapsed time since the last recorded click. A timestamp
// that runs backwards reports an over-interval gap so the sequence resets.
func (t *Tracker) gap(when int64) time.Duration {
	d := when - t.lastClickTime
	if d < 0 {
		return t.interval + time.Second
	}
	return time.Duration(d) * time.Millisecond
}
