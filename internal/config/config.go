// Package config provides YAML-based configuration loading for the flappy
// engine. Every tunable the engine reads lives here; the engine never
// hard-codes world dimensions or physics constants.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	World     WorldConfig    `yaml:"world"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Actor     ActorConfig    `yaml:"actor"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Title     TitleConfig    `yaml:"title"`
	Tilt      TiltConfig     `yaml:"tilt"`
	Timing    TimingConfig   `yaml:"timing"`
}

// WorldConfig defines the simulated playfield in world units.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// GroundDiv and GroundMul place the ground line at Height*GroundMul/GroundDiv.
	GroundMul int `yaml:"ground_mul"`
	GroundDiv int `yaml:"ground_div"`
	// GroundScroll is how far the ground texture moves per frame while alive.
	GroundScroll float64 `yaml:"ground_scroll"`
}

// GroundY returns the y-coordinate of the ground line.
func (w WorldConfig) GroundY() float64 {
	if w.GroundDiv == 0 {
		return float64(w.Height)
	}
	return float64(w.Height) * float64(w.GroundMul) / float64(w.GroundDiv)
}

// PhysicsConfig holds the motion presets, all in units per second.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`          // Normal play gravity
	FlapImpulse     float64 `yaml:"flap_impulse"`     // Upward speed set by a flap
	DiveSpeed       float64 `yaml:"dive_speed"`       // Downward speed set by a dive
	DeathHop        float64 `yaml:"death_hop"`        // Upward speed on death
	DeathKickX      float64 `yaml:"death_kick_x"`     // Horizontal speed on death
	DeathDrag       float64 `yaml:"death_drag"`       // Horizontal drag on death
	BoundsDrag      float64 `yaml:"bounds_drag"`      // Horizontal drag after touching a boundary
	TerminalGravity float64 `yaml:"terminal_gravity"` // Exaggerated gravity of the death fall
	DeathDepth      int     `yaml:"death_depth"`      // Draw order of the falling actor
}

// ActorConfig defines the controllable actor.
type ActorConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// SpawnX/SpawnY are offsets from the world center.
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	// FlapFrames and FlapFPS describe the looping flap animation.
	FlapFrames int     `yaml:"flap_frames"`
	FlapFPS    float64 `yaml:"flap_fps"`
	Depth      int     `yaml:"depth"`
}

// Range is a closed integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// ObstacleConfig defines the obstacle pool and its spacing rules.
type ObstacleConfig struct {
	Pairs       int     `yaml:"pairs"`
	Width       float64 `yaml:"width"`
	Length      float64 `yaml:"length"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
	GapMargin   float64 `yaml:"gap_margin"`
	Offset      Range   `yaml:"offset"`
	Gap         Range   `yaml:"gap"`
	UpperY      Range   `yaml:"upper_y"`
}

// TitleConfig defines the scripted title flight and the start handoff.
type TitleConfig struct {
	// StartX/StartY are offsets from the world center where the actor appears.
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	InitialAccel float64 `yaml:"initial_accel"`
	VelocityX    float64 `yaml:"velocity_x"` // Bang-bang window half-width, horizontal
	VelocityY    float64 `yaml:"velocity_y"` // Bang-bang window half-width, vertical
	AccelX       float64 `yaml:"accel_x"`
	AccelY       float64 `yaml:"accel_y"`
	SteerGain    float64 `yaml:"steer_gain"`
	Tolerance    float64 `yaml:"tolerance"`
	UpperY       Range   `yaml:"upper_y"`
}

// TiltConfig maps vertical velocity to a display angle.
type TiltConfig struct {
	MinVelocity float64 `yaml:"min_velocity"`
	MaxVelocity float64 `yaml:"max_velocity"`
	MinAngle    float64 `yaml:"min_angle"`
	MaxAngle    float64 `yaml:"max_angle"`
	Smoothing   float64 `yaml:"smoothing"`
}

// TimingConfig holds scheduler delays.
type TimingConfig struct {
	DeathDelayMS int `yaml:"death_delay_ms"`
}

// Validate checks the spacing and traversability rules the engine relies on.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.World.GroundDiv <= 0 || c.World.GroundMul <= 0 || c.World.GroundMul > c.World.GroundDiv {
		errs = append(errs, fmt.Errorf("ground fraction %d/%d must be in (0, 1]", c.World.GroundMul, c.World.GroundDiv))
	}
	if c.Obstacles.Pairs < 1 {
		errs = append(errs, fmt.Errorf("obstacles.pairs must be at least 1, got %d", c.Obstacles.Pairs))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.width must be positive, got %g", c.Obstacles.Width))
	}
	if float64(c.Obstacles.Offset.Min) < c.Obstacles.Width {
		errs = append(errs, fmt.Errorf("obstacles.offset.min %d is narrower than obstacle width %g", c.Obstacles.Offset.Min, c.Obstacles.Width))
	}
	minGap := c.Actor.Height + c.Obstacles.GapMargin
	if float64(c.Obstacles.Gap.Min) < minGap {
		errs = append(errs, fmt.Errorf("obstacles.gap.min %d is below actor height plus margin %g", c.Obstacles.Gap.Min, minGap))
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"obstacles.offset", c.Obstacles.Offset},
		{"obstacles.gap", c.Obstacles.Gap},
		{"obstacles.upper_y", c.Obstacles.UpperY},
		{"title.upper_y", c.Title.UpperY},
	}
	for _, nr := range ranges {
		if nr.r.Min > nr.r.Max {
			errs = append(errs, fmt.Errorf("%s: min %d exceeds max %d", nr.name, nr.r.Min, nr.r.Max))
		}
	}
	if c.Tilt.MaxVelocity <= c.Tilt.MinVelocity {
		errs = append(errs, errors.New("tilt velocity range is empty"))
	}
	if c.Tilt.Smoothing <= 0 || c.Tilt.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("tilt.smoothing must be in (0, 1], got %g", c.Tilt.Smoothing))
	}
	if c.Timing.DeathDelayMS < 0 {
		errs = append(errs, fmt.Errorf("timing.death_delay_ms must not be negative, got %d", c.Timing.DeathDelayMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}

// DeathDelay returns the pause between the death hop and the fall.
func (t TimingConfig) DeathDelay() time.Duration {
	return time.Duration(t.DeathDelayMS) * time.Millisecond
}
