package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ApplyImpulse sets the actor's vertical velocity to -magnitude.
// Velocity is replaced, not added, so a held key cannot stack impulses.
func ApplyImpulse(a *Actor, magnitude float64) {
	a.Body.SetVelocityY(-magnitude)
}

// ApplyDive sets the actor's vertical velocity to +speed.
func ApplyDive(a *Actor, speed float64) {
	a.Body.SetVelocityY(speed)
}

// TiltAngle maps a vertical velocity onto a display angle. The velocity is
// clamped into cfg's velocity range, normalised to [0,1] and squared before
// being mapped into the angle range, so the nose drops faster at high fall
// speeds.
func TiltAngle(vy float64, cfg config.TiltConfig) float64 {
	span := cfg.MaxVelocity - cfg.MinVelocity
	if span <= 0 {
		return cfg.MinAngle
	}
	v := core.ClampF(vy, cfg.MinVelocity, cfg.MaxVelocity)
	n := (v - cfg.MinVelocity) / span
	return cfg.MinAngle + n*n*(cfg.MaxAngle-cfg.MinAngle)
}

// SmoothTilt moves the displayed angle a fraction of the way toward target.
func SmoothTilt(current, target, factor float64) float64 {
	return core.Lerp(current, target, factor)
}

// Freeze stops horizontal motion.
func Freeze(a *Actor) {
	a.Body.SetVelocityX(0)
	a.Body.SetAccelerationX(0)
}

// ApplyTerminalGravity switches the actor to the exaggerated fall gravity.
func ApplyTerminalGravity(a *Actor, g float64) {
	a.Body.SetGravity(g)
}

// DeathHop throws the actor up and forward and lets drag bleed off the
// forward speed.
func DeathHop(a *Actor, p config.PhysicsConfig) {
	a.Body.SetVelocity(p.DeathKickX, -p.DeathHop)
	a.Body.SetDrag(p.DeathDrag)
}

// TitleFlight runs one step of the idle bang-bang controller. Whenever the
// velocity leaves the window on an axis, the acceleration on that axis is
// flipped back toward it. The first time the actor overshoots to the right it
// also gets an upward kick on the vertical axis. kicked reports whether that
// kick has already happened and the updated value is returned.
func TitleFlight(a *Actor, cfg config.TitleConfig, kicked bool) bool {
	vx, vy := a.Body.Velocity()

	if vy > cfg.VelocityY {
		a.Body.SetAccelerationY(-cfg.AccelY)
	}
	if vy < -cfg.VelocityY {
		a.Body.SetAccelerationY(cfg.AccelY)
	}
	if vx > cfg.VelocityX {
		a.Body.SetAccelerationX(-cfg.AccelX)
		if !kicked {
			a.Body.SetAccelerationY(-cfg.AccelY)
			kicked = true
		}
	}
	if vx < -cfg.VelocityX {
		a.Body.SetAccelerationX(cfg.AccelX)
	}
	return kicked
}

// SteerToward sets the actor's velocity proportional to its distance from
// (tx, ty) and clears acceleration so the approach is not disturbed.
func SteerToward(a *Actor, tx, ty, gain float64) {
	x, y := a.Body.Position()
	a.Body.SetAcceleration(0, 0)
	a.Body.SetVelocity((tx-x)*gain, (ty-y)*gain)
}

// Arrived reports whether the actor is within tolerance of (tx, ty) on both axes.
func Arrived(a *Actor, tx, ty, tolerance float64) bool {
	x, y := a.Body.Position()
	return core.FuzzyEqual(x, tx, tolerance) && core.FuzzyEqual(y, ty, tolerance)
}
