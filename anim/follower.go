package anim

import "math"

const (
	// Smoothing is the share of the remaining distance covered each frame.
	Smoothing = 0.17
	// VelocityGain scales the per-frame pointer displacement.
	VelocityGain = 4.0
	// MaxVelocity caps the velocity estimate.
	MaxVelocity = 150.0
	// MaxSquash is the scale offset reached at MaxVelocity.
	MaxSquash = 0.5
	// AngleThreshold is the velocity above which the heading follows the pointer.
	AngleThreshold = 20.0
)

// Point is a position in screen units.
type Point struct {
	X, Y float64
}

// Follower chases the pointer with exponential smoothing and squashes along
// its direction of travel.
type Follower struct {
	pointer  Point
	previous Point
	position Point

	velocity float64
	scale    float64
	angle    float64
}

// MoveTo records the latest pointer position. It takes effect on the next Step.
func (f *Follower) MoveTo(x, y float64) {
	f.pointer = Point{X: x, Y: y}
}

// Step advances one frame.
func (f *Follower) Step() {
	f.position.X += (f.pointer.X - f.position.X) * Smoothing
	f.position.Y += (f.pointer.Y - f.position.Y) * Smoothing

	dx := f.pointer.X - f.previous.X
	dy := f.pointer.Y - f.previous.Y
	f.previous = f.pointer

	f.velocity = math.Min(math.Hypot(dx, dy)*VelocityGain, MaxVelocity)

	target := f.velocity / MaxVelocity * MaxSquash
	f.scale += (target - f.scale) * Smoothing

	// Heading only changes while moving fast enough, so it does not jitter
	// when the pointer is nearly still.
	if f.velocity > AngleThreshold {
		f.angle = math.Atan2(dy, dx) * 180 / math.Pi
	}
}

// Position returns the smoothed position.
func (f *Follower) Position() Point {
	return f.position
}

// Pointer returns the latest pointer position.
func (f *Follower) Pointer() Point {
	return f.pointer
}

// Velocity returns the last velocity estimate.
func (f *Follower) Velocity() float64 {
	return f.velocity
}

// Scale returns the stretch along and the squash across the heading.
func (f *Follower) Scale() (along, across float64) {
	return 1 + f.scale, 1 - f.scale
}

// Angle returns the heading in degrees.
func (f *Follower) Angle() float64 {
	return f.angle
}

// Settled reports whether the follower has caught up with a still pointer.
func (f *Follower) Settled() bool {
	return math.Abs(f.pointer.X-f.position.X) < 0.01 &&
		math.Abs(f.pointer.Y-f.position.Y) < 0.01 &&
		f.scale < 0.001
}
