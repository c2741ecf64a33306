package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors
// defaults/flappy.yaml and is the last fallback when YAML cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:        1600,
			Height:       1200,
			GroundMul:    7,
			GroundDiv:    8,
			GroundScroll: 2,
		},
		Physics: PhysicsConfig{
			Gravity:         980,
			FlapImpulse:     400,
			DiveSpeed:       250,
			DeathHop:        500,
			DeathKickX:      300,
			DeathDrag:       150,
			BoundsDrag:      400,
			TerminalGravity: 2080,
			DeathDepth:      900,
		},
		Actor: ActorConfig{
			Width:      68,
			Height:     48,
			SpawnX:     -400,
			SpawnY:     -100,
			FlapFrames: 3,
			FlapFPS:    10,
			Depth:      50,
		},
		Obstacles: ObstacleConfig{
			Pairs:       5,
			Width:       104,
			Length:      640,
			ScrollSpeed: 200,
			GapMargin:   40,
			Offset:      Range{Min: 500, Max: 600},
			Gap:         Range{Min: 180, Max: 250},
			UpperY:      Range{Min: 240, Max: 600},
		},
		Title: TitleConfig{
			StartX:       -600,
			StartY:       -100,
			InitialAccel: 200,
			VelocityX:    150,
			VelocityY:    40,
			AccelX:       150,
			AccelY:       50,
			SteerGain:    2,
			Tolerance:    100,
			UpperY:       Range{Min: 150, Max: 600},
		},
		Tilt: TiltConfig{
			MinVelocity: -300,
			MaxVelocity: 300,
			MinAngle:    -30,
			MaxAngle:    45,
			Smoothing:   0.1,
		},
		Timing: TimingConfig{
			DeathDelayMS: 200,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
