package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	transitionFrequency = 9.0
	transitionDamping   = 1.0
	// settleDistance is how close counts as arrived, in rows.
	settleDistance = 0.5
)

// Transition eases a value towards a target with a critically damped spring.
type Transition struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

// NewTransition creates an idle transition stepped fps times a second.
func NewTransition(fps int) Transition {
	if fps < 1 {
		fps = 1
	}
	return Transition{
		spring: harmonica.NewSpring(harmonica.FPS(fps), transitionFrequency, transitionDamping),
	}
}

// Animate starts moving from from to to.
func (t *Transition) Animate(from, to float64) {
	t.pos = from
	t.vel = 0
	t.target = to
	t.active = from != to
}

// Step advances one frame and reports whether the target was reached.
func (t *Transition) Step() bool {
	if !t.active {
		return true
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, t.target)
	if math.Abs(t.pos-t.target) < settleDistance {
		t.pos = t.target
		t.vel = 0
		t.active = false
	}
	return !t.active
}

// Cancel stops the transition where it is.
func (t *Transition) Cancel() {
	t.vel = 0
	t.active = false
}

// Value returns the current value.
func (t *Transition) Value() float64 {
	return t.pos
}

// Rows returns the current value rounded to whole rows.
func (t *Transition) Rows() int {
	return int(math.Round(t.pos))
}

// Target returns where the transition is heading.
func (t *Transition) Target() float64 {
	return t.target
}

// Active reports whether the transition is still moving.
func (t *Transition) Active() bool {
	return t.active
}
