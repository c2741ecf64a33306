package flappy

import "fmt"

// Phase is the state of the game-state machine.
type Phase int

const (
	PhaseBoot Phase = iota
	PhaseTitle
	PhasePlaying
	PhaseDying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseBoot:
		return "boot"
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseDying:
		return "dying"
	case PhaseGameOver:
		return "gameover"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// transitions lists every legal edge of the state machine.
var transitions = map[Phase][]Phase{
	PhaseBoot:     {PhaseTitle},
	PhaseTitle:    {PhasePlaying},
	PhasePlaying:  {PhaseDying},
	PhaseDying:    {PhaseGameOver},
	PhaseGameOver: {PhasePlaying},
}

// CanTransition reports whether from -> to is a legal edge.
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// Cause names what triggered a transition.
type Cause string

const (
	CauseBoot      Cause = "boot"
	CauseStart     Cause = "start"
	CauseSkipTitle Cause = "skip-title"
	CauseCollision Cause = "collision"
	CauseGround    Cause = "ground"
	CauseCeiling   Cause = "ceiling"
	CauseLanded    Cause = "landed"
	CauseRestart   Cause = "restart"
)

// PhaseEvent is delivered to listeners once per transition.
type PhaseEvent struct {
	From  Phase
	To    Phase
	Tick  uint64
	Score int
	Cause Cause
}

// String formats the event as "from->to".
func (e PhaseEvent) String() string {
	return e.From.String() + "->" + e.To.String()
}
