package anim

import (
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFollowerMovesSeventeenPercent(t *testing.T) {
	var f Follower
	f.MoveTo(100, 50)
	f.Step()

	pos := f.Position()
	assert.InDelta(t, 17.0, pos.X, 1e-9)
	assert.InDelta(t, 8.5, pos.Y, 1e-9)

	f.Step()
	pos = f.Position()
	assert.InDelta(t, 17+(100-17)*0.17, pos.X, 1e-9)
}

func TestFollowerConverges(t *testing.T) {
	var f Follower
	f.MoveTo(40, 12)
	for i := 0; i < 200; i++ {
		f.Step()
	}
	assert.True(t, f.Settled())
	assert.InDelta(t, 40, f.Position().X, 0.01)
	assert.InDelta(t, 12, f.Position().Y, 0.01)
}

func TestFollowerVelocityIsCapped(t *testing.T) {
	var f Follower
	f.MoveTo(3, 4) // displacement 5, velocity 20
	f.Step()
	assert.InDelta(t, 20, f.Velocity(), 1e-9)

	f.MoveTo(1003, 4)
	f.Step()
	assert.Equal(t, MaxVelocity, f.Velocity())
}

func TestFollowerScaleIsSmoothedAndBounded(t *testing.T) {
	var f Follower
	f.MoveTo(1000, 0)
	f.Step()
	along, across := f.Scale()
	// target 0.5, smoothed once
	assert.InDelta(t, 1+0.5*0.17, along, 1e-9)
	assert.InDelta(t, 1-0.5*0.17, across, 1e-9)

	for i := 0; i < 100; i++ {
		f.MoveTo(f.Pointer().X+1000, 0)
		f.Step()
		along, across = f.Scale()
		assert.LessOrEqual(t, along, 1+MaxSquash+1e-9)
		assert.GreaterOrEqual(t, across, 1-MaxSquash-1e-9)
	}

	// Pointer stops: scale relaxes back to 1.
	for i := 0; i < 200; i++ {
		f.Step()
	}
	along, _ = f.Scale()
	assert.InDelta(t, 1, along, 0.001)
}

func TestFollowerAngleOnlyUpdatesAboveThreshold(t *testing.T) {
	var f Follower
	f.MoveTo(0, 100) // straight down, fast
	f.Step()
	assert.InDelta(t, 90, f.Angle(), 1e-9)

	// Slow move to the right: velocity 4, heading unchanged.
	f.MoveTo(1, 100)
	f.Step()
	assert.InDelta(t, 4, f.Velocity(), 1e-9)
	assert.InDelta(t, 90, f.Angle(), 1e-9)

	// Exactly at the threshold does not update either.
	f.MoveTo(6, 100)
	f.Step()
	assert.InDelta(t, AngleThreshold, f.Velocity(), 1e-9)
	assert.InDelta(t, 90, f.Angle(), 1e-9)

	// Fast move to the left.
	f.MoveTo(-100, 100)
	f.Step()
	assert.InDelta(t, 180, math.Abs(f.Angle()), 1e-9)
}

func TestLoopStartStop(t *testing.T) {
	l := NewLoop(1000)
	assert.False(t, l.Running())
	assert.Equal(t, time.Millisecond, l.Interval())

	cmd := l.Start()
	require.NotNil(t, cmd)
	assert.True(t, l.Running())

	msg := cmd()
	frame, ok := msg.(FrameMsg)
	require.True(t, ok)
	assert.Equal(t, l.ID(), frame.ID)

	handled, next := l.Update(frame)
	assert.True(t, handled)
	require.NotNil(t, next)

	pending := next()
	l.Stop()
	handled, next = l.Update(pending)
	assert.False(t, handled, "frames scheduled before Stop are dropped")
	assert.Nil(t, next)
}

func TestLoopRestartDropsStaleFrames(t *testing.T) {
	l := NewLoop(1000)
	stale := l.Start()()
	fresh := l.Start()()

	handled, _ := l.Update(stale)
	assert.False(t, handled)
	handled, next := l.Update(fresh)
	assert.True(t, handled)
	assert.NotNil(t, next)
}

func TestLoopIgnoresOtherLoops(t *testing.T) {
	a := NewLoop(1000)
	b := NewLoop(1000)
	frame := a.Start()()
	b.Start()

	handled, cmd := b.Update(frame)
	assert.False(t, handled)
	assert.Nil(t, cmd)

	handled, _ = b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, handled)
}

func TestTransitionReachesTarget(t *testing.T) {
	tr := NewTransition(60)
	tr.Animate(0, 12)
	assert.True(t, tr.Active())

	frames := 0
	for !tr.Step() {
		frames++
		require.Less(t, frames, 600, "transition never settled")
		assert.LessOrEqual(t, tr.Value(), 12.0+settleDistance)
	}
	assert.Equal(t, 12, tr.Rows())
	assert.False(t, tr.Active())
	assert.Greater(t, frames, 1, "the move is spread over several frames")
}

func TestTransitionNoop(t *testing.T) {
	tr := NewTransition(60)
	tr.Animate(5, 5)
	assert.False(t, tr.Active())
	assert.True(t, tr.Step())
	assert.Equal(t, 5, tr.Rows())
}
