package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Autopilot picks an intent from a snapshot. It leaves the title, aims for
// the middle of the next gap and flaps when it sinks below it.
type Autopilot struct {
	// Lead is how far below the gap center the actor may sink before flapping.
	Lead float64
}

// NewAutopilot returns an autopilot with a lead suited to the default config.
func NewAutopilot() Autopilot {
	return Autopilot{Lead: 35}
}

// Decide returns the intent for the next frame.
func (p Autopilot) Decide(s Snapshot) core.Intent {
	switch s.Phase {
	case PhaseTitle:
		if !s.Starting {
			return core.IntentStart
		}
		return core.IntentNone
	case PhasePlaying:
	default:
		return core.IntentNone
	}

	target := s.GroundY / 2
	if upper, lower, ok := nextGap(s); ok {
		target = (upper.Box.Bottom() + lower.Box.Y) / 2
	}
	if s.Actor.Y > target+p.Lead {
		return core.IntentImpulse
	}
	return core.IntentNone
}

// nextGap returns the nearest pair whose right edge is still ahead of the
// actor's left edge.
func nextGap(s Snapshot) (upper, lower ObstacleView, ok bool) {
	left := s.Actor.X - s.Actor.Width/2
	best := -1
	for i, o := range s.Obstacles {
		if o.Orientation != Upper || o.Box.Right() < left {
			continue
		}
		if best < 0 || o.Box.X < s.Obstacles[best].Box.X {
			best = i
		}
	}
	if best < 0 {
		return upper, lower, false
	}
	upper = s.Obstacles[best]
	for _, o := range s.Obstacles {
		if o.Orientation == Lower && o.Pair == upper.Pair {
			return upper, o, true
		}
	}
	return upper, lower, false
}
