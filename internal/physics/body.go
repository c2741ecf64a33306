// Package physics is a small arcade-style rigid-body substrate: explicit
// Euler integration of velocity and position, per-body gravity, linear
// horizontal drag, and overlap events between a body and a group.
// Units are world units and seconds.
package physics

import "github.com/vovakirdan/tui-flappy/internal/core"

// Body is a simulated axis-aligned box.
// (x, y) is the anchor point; the origin (ox, oy) in [0, 1] says where the
// anchor sits inside the box, so (0.5, 0.5) anchors at the center and
// (0, 1) anchors at the bottom-left corner.
type Body struct {
	x, y    float64
	w, h    float64
	ox, oy  float64
	vx, vy  float64
	ax, ay  float64
	gravity float64
	dragX   float64
	enabled bool
}

// NewBody creates an enabled body of size w×h anchored at origin (ox, oy).
func NewBody(w, h, ox, oy float64) *Body {
	return &Body{w: w, h: h, ox: ox, oy: oy, enabled: true}
}

// Position returns the anchor point.
func (b *Body) Position() (x, y float64) {
	return b.x, b.y
}

// X returns the anchor x-coordinate.
func (b *Body) X() float64 { return b.x }

// Y returns the anchor y-coordinate.
func (b *Body) Y() float64 { return b.y }

// Width returns the box width.
func (b *Body) Width() float64 { return b.w }

// Height returns the box height.
func (b *Body) Height() float64 { return b.h }

// SetPosition moves the anchor point.
func (b *Body) SetPosition(x, y float64) {
	b.x, b.y = x, y
}

// SetX moves the anchor horizontally.
func (b *Body) SetX(x float64) { b.x = x }

// SetY moves the anchor vertically.
func (b *Body) SetY(y float64) { b.y = y }

// Velocity returns the current velocity.
func (b *Body) Velocity() (vx, vy float64) {
	return b.vx, b.vy
}

// SetVelocity sets both velocity components.
func (b *Body) SetVelocity(vx, vy float64) {
	b.vx, b.vy = vx, vy
}

// SetVelocityX sets the horizontal velocity.
func (b *Body) SetVelocityX(vx float64) { b.vx = vx }

// SetVelocityY sets the vertical velocity.
func (b *Body) SetVelocityY(vy float64) { b.vy = vy }

// Acceleration returns the current acceleration.
func (b *Body) Acceleration() (ax, ay float64) {
	return b.ax, b.ay
}

// SetAcceleration sets both acceleration components.
func (b *Body) SetAcceleration(ax, ay float64) {
	b.ax, b.ay = ax, ay
}

// SetAccelerationX sets the horizontal acceleration.
func (b *Body) SetAccelerationX(ax float64) { b.ax = ax }

// SetAccelerationY sets the vertical acceleration.
func (b *Body) SetAccelerationY(ay float64) { b.ay = ay }

// Gravity returns the body's own downward gravity.
func (b *Body) Gravity() float64 { return b.gravity }

// SetGravity sets the body's own downward gravity, added to the world's.
func (b *Body) SetGravity(g float64) { b.gravity = g }

// Drag returns the horizontal drag.
func (b *Body) Drag() float64 { return b.dragX }

// SetDrag sets a linear horizontal deceleration applied while the body has
// no horizontal acceleration.
func (b *Body) SetDrag(d float64) { b.dragX = d }

// Enabled reports whether the world integrates this body.
func (b *Body) Enabled() bool { return b.enabled }

// SetEnabled toggles integration and overlap testing for this body.
func (b *Body) SetEnabled(on bool) { b.enabled = on }

// Bounds returns the box in world coordinates.
func (b *Body) Bounds() core.Box {
	return core.Box{
		X: b.x - b.ox*b.w,
		Y: b.y - b.oy*b.h,
		W: b.w,
		H: b.h,
	}
}

// Halt zeroes velocity, acceleration, gravity and drag.
func (b *Body) Halt() {
	b.vx, b.vy = 0, 0
	b.ax, b.ay = 0, 0
	b.gravity = 0
	b.dragX = 0
}

// integrate advances the body by dt seconds under the given world gravity.
func (b *Body) integrate(dt, worldGravity float64) {
	b.vx += b.ax * dt
	b.vy += (b.ay + b.gravity + worldGravity) * dt

	if b.ax == 0 && b.dragX > 0 {
		step := b.dragX * dt
		switch {
		case b.vx > step:
			b.vx -= step
		case b.vx < -step:
			b.vx += step
		default:
			b.vx = 0
		}
	}

	b.x += b.vx * dt
	b.y += b.vy * dt
}
