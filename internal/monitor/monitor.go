package monitor

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hookstorm/internal/event"
)

// maxTail is how many recent events the scrollback retains.
const maxTail = 64

// Monitor displays the live event stream in the terminal.
//
// Keys: q or Esc quits, p pauses the tail, c clears the counters.
type Monitor struct {
	screen tcell.Screen

	mu     sync.Mutex
	tail   []string
	counts map[event.Type]uint64
	total  uint64
	paused bool
}

// New creates a monitor on the process terminal.
func New() (*Monitor, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newWithScreen(screen), nil
}

func newWithScreen(screen tcell.Screen) *Monitor {
	return &Monitor{
		screen: screen,
		counts: make(map[event.Type]uint64),
	}
}

// Run takes over the terminal and renders events until the user quits or
// the channel closes. It blocks the calling goroutine.
func (m *Monitor) Run(events <-chan event.Event) error {
	if err := m.screen.Init(); err != nil {
		return err
	}
	defer m.screen.Fini()

	quit := make(chan struct{})
	go m.inputLoop(quit)
	m.draw()

	for {
		select {
		case <-quit:
			return nil
		case ev, ok := <-events:
			if !ok {
				<-quit
				return nil
			}
			m.record(ev)
			m.draw()
		}
	}
}

// Stop unblocks Run as if the user had quit.
func (m *Monitor) Stop() {
	_ = m.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (m *Monitor) inputLoop(quit chan struct{}) {
	defer close(quit)
	for {
		switch ev := m.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
				m.togglePause()
				m.draw()
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'c':
				m.clearCounts()
				m.draw()
			}
		case *tcell.EventResize:
			m.screen.Sync()
			m.draw()
		case *tcell.EventInterrupt:
			return
		case nil:
			// Screen finalized under us.
			return
		}
	}
}

// record folds an event into the counters and the tail.
func (m *Monitor) record(ev event.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counts[ev.Type]++
	m.total++
	if m.paused {
		return
	}
	m.tail = append(m.tail, formatRow(ev))
	if len(m.tail) > maxTail {
		m.tail = m.tail[len(m.tail)-maxTail:]
	}
}

func (m *Monitor) togglePause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = !m.paused
}

func (m *Monitor) clearCounts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts = make(map[event.Type]uint64)
	m.total = 0
}

func (m *Monitor) draw() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.screen.Clear()
	width, height := m.screen.Size()

	header := tcell.StyleDefault.Bold(true)
	m.putString(0, 0, header, m.headerLine())
	m.putString(0, 1, tcell.StyleDefault.Dim(true), "q quit  p pause  c clear counters")

	rows := height - 3
	start := 0
	if len(m.tail) > rows {
		start = len(m.tail) - rows
	}
	for i, line := range m.tail[start:] {
		if len(line) > width {
			line = line[:width]
		}
		m.putString(0, 3+i, tcell.StyleDefault, line)
	}
	m.screen.Show()
}

func (m *Monitor) headerLine() string {
	state := "capturing"
	if m.paused {
		state = "paused"
	}
	return fmt.Sprintf("hookstorm  %s  total %d  key %d  mouse %d  motion %d  wheel %d",
		state, m.total,
		m.counts[event.KeyPressed]+m.counts[event.KeyReleased]+m.counts[event.KeyTyped],
		m.counts[event.MousePressed]+m.counts[event.MouseReleased]+m.counts[event.MouseClicked],
		m.counts[event.MouseMoved]+m.counts[event.MouseDragged],
		m.counts[event.MouseWheel])
}

func (m *Monitor) putString(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		m.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// formatRow renders one event as a fixed-prefix line for the tail.
func formatRow(ev event.Event) string {
	stamp := time.UnixMilli(ev.When).Format("15:04:05.000")
	return fmt.Sprintf("%s  %s", stamp, ev)
}
