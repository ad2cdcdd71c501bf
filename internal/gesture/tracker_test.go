package gesture

import (
	"testing"
	"time"

	"github.com/dshills/hookstorm/internal/keycode"
)

const interval = 200 * time.Millisecond

func TestClickCounting(t *testing.T) {
	tr := NewTracker(interval)

	// Three presses within the interval count 1, 2, 3.
	if got := tr.Press(1000); got != 1 {
		t.Errorf("first press count = %d, want 1", got)
	}
	if got := tr.Press(1100); got != 2 {
		t.Errorf("second press count = %d, want 2", got)
	}
	if got := tr.Press(1200); got != 3 {
		t.Errorf("third press count = %d, want 3", got)
	}

	// A fourth press after the interval elapses resets to 1.
	if got := tr.Press(1200 + 201); got != 1 {
		t.Errorf("late press count = %d, want 1", got)
	}
}

func TestClickCountBoundary(t *testing.T) {
	tr := NewTracker(interval)

	tr.Press(1000)
	// A gap of exactly the interval still extends the sequence.
	if got := tr.Press(1200); got != 2 {
		t.Errorf("press at exact interval = %d, want 2", got)
	}
}

func TestMotionClassification(t *testing.T) {
	tr := NewTracker(interval)

	if got := tr.Motion(1000, keycode.MaskNone); got != Moved {
		t.Errorf("motion without buttons = %v, want moved", got)
	}
	if got := tr.Motion(1010, keycode.MaskButton1); got != Dragged {
		t.Errorf("motion with button = %v, want dragged", got)
	}
	// Keyboard modifiers alone never indicate a drag.
	if got := tr.Motion(1020, keycode.MaskCtrlL|keycode.MaskShiftL); got != Moved {
		t.Errorf("motion with keyboard modifiers = %v, want moved", got)
	}
}

func TestReleaseAfterDragSuppressesClick(t *testing.T) {
	tr := NewTracker(interval)

	tr.Press(1000)
	tr.Motion(1010, keycode.MaskButton1)
	if tr.Release() {
		t.Error("release after drag should not report a click")
	}
}

func TestReleaseWithoutDragReportsClick(t *testing.T) {
	tr := NewTracker(interval)

	tr.Press(1000)
	if !tr.Release() {
		t.Error("release without drag should report a click")
	}
}

func TestPressClearsStaleDragFlag(t *testing.T) {
	tr := NewTracker(interval)

	// Complete a drag gesture.
	tr.Press(1000)
	tr.Motion(1010, keycode.MaskButton1)
	if tr.Release() {
		t.Fatal("drag release should not click")
	}

	// The next press starts a fresh gesture; a motionless press-release is
	// a click again.
	tr.Press(2000)
	if !tr.Release() {
		t.Error("press must clear the drag flag from the previous gesture")
	}
}

func TestLongHoldStillClicks(t *testing.T) {
	tr := NewTracker(interval)

	tr.Press(1000)
	// A long hold with no motion still counts as a click on release.
	if !tr.Release() {
		t.Error("hold-then-release without motion should click")
	}
}

func TestIdleMotionResetsClickCount(t *testing.T) {
	tr := NewTracker(interval)

	tr.Press(1000)
	tr.Press(1100)
	if tr.ClickCount() != 2 {
		t.Fatalf("click count = %d, want 2", tr.ClickCount())
	}

	// Motion within the interval keeps the sequence alive.
	tr.Motion(1250, keycode.MaskNone)
	if tr.ClickCount() != 2 {
		t.Errorf("click count after prompt motion = %d, want 2", tr.ClickCount())
	}

	// Motion after the interval invalidates it.
	tr.Motion(1100+250, keycode.MaskNone)
	if tr.ClickCount() != 0 {
		t.Errorf("click count after idle motion = %d, want 0", tr.ClickCount())
	}
}

func TestBackwardsClockResets(t *testing.T) {
	tr := NewTracker(interval)

	tr.Press(5000)
	if got := tr.Press(4000); got != 1 {
		t.Errorf("press with backwards clock = %d, want 1", got)
	}
}

func TestReset(t *testing.T) {
	tr := NewTracker(interval)

	tr.Press(1000)
	tr.Motion(1010, keycode.MaskButton1)
	tr.Reset()

	if tr.ClickCount() != 0 || tr.Dragging() {
		t.Error("reset did not clear state")
	}
}

func TestDefaultInterval(t *testing.T) {
	tr := NewTracker(0)
	tr.Press(1000)
	if got := tr.Press(1000 + 150); got != 2 {
		t.Errorf("press within the default interval = %d, want 2", got)
	}
}
