// Package replay records the intents fed to a game each tick and plays them
// back. A run is fully determined by its seed, tick rate, start options and
// intent log, so replays store nothing else.
package replay

import (
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Event is one intent raised on one tick.
type Event struct {
	Tick   uint64      `yaml:"tick"`
	Intent core.Intent `yaml:"-"`
	Name   string      `yaml:"intent"`
}

// Replay is a recorded run.
type Replay struct {
	ID        int64     `yaml:"id,omitempty"`
	GameID    string    `yaml:"game"`
	Seed      int64     `yaml:"seed"`
	TickRate  int       `yaml:"tick_rate"`
	SkipTitle bool      `yaml:"skip_title"`
	Frames    uint64    `yaml:"frames"`
	Score     int       `yaml:"score"`
	CreatedAt time.Time `yaml:"created_at,omitempty"`
	Events    []Event   `yaml:"events"`
}

// Recorder captures input frames as they are stepped.
type Recorder struct {
	r    Replay
	tick uint64
}

// NewRecorder starts a recording for a session with the given parameters.
func NewRecorder(gameID string, seed int64, tickRate int, skipTitle bool) *Recorder {
	return &Recorder{r: Replay{
		GameID:    gameID,
		Seed:      seed,
		TickRate:  tickRate,
		SkipTitle: skipTitle,
	}}
}

// Record stores every intent of in against the current tick and moves to
// the next tick. Call it once per Step, with the same frame.
func (r *Recorder) Record(in core.InputFrame) {
	intents := make([]core.Intent, 0, len(in.Intents))
	for i, on := range in.Intents {
		if on && i != core.IntentNone {
			intents = append(intents, i)
		}
	}
	sort.Slice(intents, func(a, b int) bool { return intents[a] < intents[b] })

	for _, i := range intents {
		r.r.Events = append(r.r.Events, Event{Tick: r.tick, Intent: i, Name: i.String()})
	}
	r.tick++
}

// Frames returns the number of ticks recorded so far.
func (r *Recorder) Frames() uint64 {
	return r.tick
}

// Finish closes the recording with the best score reached in the session.
// A restart resets the live score, so this can exceed the final one.
func (r *Recorder) Finish(score int) Replay {
	out := r.r
	out.Frames = r.tick
	out.Score = score
	out.CreatedAt = time.Now().UTC()
	out.Events = append([]Event(nil), r.r.Events...)
	return out
}

// Player yields recorded input frames tick by tick.
type Player struct {
	events []Event
	frames uint64
	next   int
	tick   uint64
}

// NewPlayer creates a player over r.
func NewPlayer(r Replay) *Player {
	events := append([]Event(nil), r.Events...)
	sort.SliceStable(events, func(a, b int) bool { return events[a].Tick < events[b].Tick })
	return &Player{events: events, frames: r.Frames}
}

// Next returns the input frame for the next tick. ok is false once every
// recorded tick has been played.
func (p *Player) Next() (in core.InputFrame, ok bool) {
	if p.tick >= p.frames {
		return core.NewInputFrame(), false
	}
	in = core.NewInputFrame()
	for p.next < len(p.events) && p.events[p.next].Tick == p.tick {
		in.Set(p.events[p.next].Intent)
		p.next++
	}
	p.tick++
	return in, true
}

// Done reports whether playback has finished.
func (p *Player) Done() bool {
	return p.tick >= p.frames
}

// Run plays r through g headlessly. onStep, when set, sees every result.
// It returns the final game state. Game-specific start options recorded in
// r, such as SkipTitle, must be applied by the caller before Run.
func Run(g registry.Game, r Replay, screenW, screenH int, onStep func(core.StepResult)) core.GameState {
	g.Reset(core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: r.TickRate,
		Seed:     r.Seed,
	})

	p := NewPlayer(r)
	for {
		in, ok := p.Next()
		if !ok {
			break
		}
		res := g.Step(in)
		if onStep != nil {
			onStep(res)
		}
	}
	return g.State()
}

// Outcome summarises a headless re-run.
type Outcome struct {
	Final core.GameState // State after the last recorded frame
	Best  int            // Highest score seen on any frame
}

// Reproduces reports whether the re-run reached the recorded score.
func (o Outcome) Reproduces(r Replay) bool {
	return o.Best == r.Score
}

// Verify re-runs r like Run and tracks the best score along the way, which
// is what recordings store.
func Verify(g registry.Game, r Replay, screenW, screenH int, onStep func(core.StepResult)) Outcome {
	var out Outcome
	out.Final = Run(g, r, screenW, screenH, func(res core.StepResult) {
		if res.State.Score > out.Best {
			out.Best = res.State.Score
		}
		if onStep != nil {
			onStep(res)
		}
	})
	return out
}

// Marshal encodes r as YAML.
func Marshal(r Replay) ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a YAML replay and resolves intent names.
func Unmarshal(data []byte) (Replay, error) {
	var r Replay
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Replay{}, fmt.Errorf("replay: cannot decode: %w", err)
	}
	for i := range r.Events {
		in := core.ParseIntent(r.Events[i].Name)
		if in == core.IntentNone {
			return Replay{}, fmt.Errorf("replay: event %d has unknown intent %q", i, r.Events[i].Name)
		}
		r.Events[i].Intent = in
	}
	return r, nil
}
