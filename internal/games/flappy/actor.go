package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Tag is the coarse life-cycle state of the actor.
type Tag int

const (
	TagAlive    Tag = iota // Flying under player control
	TagDying               // Death hop and fall in progress
	TagGrounded            // Pinned to the ground after game over
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagAlive:
		return "alive"
	case TagDying:
		return "dying"
	case TagGrounded:
		return "grounded"
	default:
		return "unknown"
	}
}

// Animation is a looping frame counter driven by simulated time.
type Animation struct {
	frames  int
	period  time.Duration
	elapsed time.Duration
	frame   int
	playing bool
}

// NewAnimation creates a stopped animation of n frames at fps frames per second.
func NewAnimation(n int, fps float64) *Animation {
	if n < 1 {
		n = 1
	}
	period := time.Duration(0)
	if fps > 0 {
		period = time.Duration(float64(time.Second) / fps)
	}
	return &Animation{frames: n, period: period}
}

// Play resumes the animation from its current frame.
func (a *Animation) Play() { a.playing = true }

// Pause freezes the animation on its current frame.
func (a *Animation) Pause() { a.playing = false }

// Playing reports whether the animation is running.
func (a *Animation) Playing() bool { return a.playing }

// Frame returns the current frame index.
func (a *Animation) Frame() int { return a.frame }

// Advance moves the animation forward by dt when playing.
func (a *Animation) Advance(dt time.Duration) {
	if !a.playing || a.period <= 0 || a.frames == 1 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.period {
		a.elapsed -= a.period
		a.frame = (a.frame + 1) % a.frames
	}
}

// Actor is the controllable entity. The engine owns it for the lifetime of
// the scene and resets it in place on restart.
type Actor struct {
	Body  *physics.Body
	Tag   Tag
	Angle float64 // Smoothed display tilt in degrees
	Depth int     // Draw order relative to the ground layer
	Anim  *Animation
}

// newActor creates an actor whose body is anchored at its center.
func newActor(w, h float64) *Actor {
	return &Actor{
		Body: physics.NewBody(w, h, 0.5, 0.5),
		Tag:  TagAlive,
		Anim: NewAnimation(1, 0),
	}
}
