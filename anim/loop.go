// Package anim contains the frame-driven parts of the site: the cursor
// follower, a cancellable frame loop and eased transitions.
package anim

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg is sent once per frame to the loop that scheduled it.
type FrameMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Loop is a repeating per-frame task with a start/stop handle. Frames
// scheduled before a Stop are dropped when they arrive, so stopping is
// immediate even though a tick may already be in flight.
type Loop struct {
	id       int
	tag      int
	interval time.Duration
	running  bool
}

// NewLoop creates a stopped loop running at fps frames per second.
func NewLoop(fps int) *Loop {
	if fps < 1 {
		fps = 1
	}
	return &Loop{
		id:       nextID(),
		interval: time.Second / time.Duration(fps),
	}
}

// ID returns the loop's identifier.
func (l *Loop) ID() int {
	return l.id
}

// Interval returns the time between frames.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Running reports whether the loop is started.
func (l *Loop) Running() bool {
	return l.running
}

// Start schedules the first frame. Starting a running loop restarts it and
// drops the pending frame.
func (l *Loop) Start() tea.Cmd {
	l.running = true
	l.tag++
	return l.tick()
}

// Stop cancels the loop.
func (l *Loop) Stop() {
	l.running = false
	l.tag++
}

// Update reports whether msg is a live frame of this loop. When it is, the
// returned command schedules the next frame.
func (l *Loop) Update(msg tea.Msg) (bool, tea.Cmd) {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != l.id {
		return false, nil
	}
	if !l.running || frame.tag != l.tag {
		return false, nil
	}
	return true, l.tick()
}

func (l *Loop) tick() tea.Cmd {
	id, tag := l.id, l.tag
	return tea.Tick(l.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t, tag: tag}
	})
}
