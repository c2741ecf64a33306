// Package flappy implements the flappy game-state and obstacle-lifecycle
// engine plus its registry adapter. The engine owns the actor, a fixed pool
// of obstacle pairs, the score and the phase machine; the adapter maps
// platform input frames onto intents and draws snapshots.
package flappy

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/rng"
)

// ID is the registry identifier of the game.
const ID = "flappy"

var (
	// configPath stores the custom config path set via CLI
	configPath string
	skipTitle  bool
	placements []Placement
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSkipTitle makes new sessions start in Playing.
func SetSkipTitle(skip bool) {
	skipTitle = skip
}

// SetPlacements fixes the opening obstacle layout of new sessions.
// A nil slice restores sampled layouts.
func SetPlacements(p []Placement) {
	placements = p
}

// SetLogger sets the logger used for phase and score events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts an Engine to the registry.Game interface.
type Game struct {
	engine  *Engine
	runtime core.RuntimeConfig
	dt      time.Duration
	paused  bool
	pending []string
}

// New creates a new game instance. Call Reset before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy"
}

// Reset builds a fresh engine for a new session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.paused = false
	g.pending = nil

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = time.Second / time.Duration(tickRate)

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultFlappyConfig()
	}

	opts := Options{SkipTitle: skipTitle, Placements: placements}
	e, err := NewEngine(cfg, rng.New(rc.Seed), opts)
	if err != nil {
		logger.Warn("ignoring fixed placements", "err", err)
		opts.Placements = nil
		e, err = NewEngine(cfg, rng.New(rc.Seed), opts)
		if err != nil {
			panic(fmt.Sprintf("flappy: default config rejected: %v", err))
		}
	}

	e.OnPhaseChange(func(ev PhaseEvent) {
		g.pending = append(g.pending, ev.String())
		logger.Debug("phase", "from", ev.From, "to", ev.To, "cause", ev.Cause, "tick", ev.Tick)
		if ev.To == PhaseGameOver {
			logger.Info("run over", "score", ev.Score, "tick", ev.Tick)
		}
	})
	g.engine = e
}

// Step advances the engine by one tick. Pause toggles are handled here and
// never reach the engine.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.IntentPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	before := g.engine.Score()
	g.engine.Advance(g.dt, in.Primary())
	if after := g.engine.Score(); after > before {
		logger.Info("scored", "score", after, "tick", g.engine.Tick())
	}

	res := core.StepResult{State: g.State(), Transitions: g.pending}
	g.pending = nil
	return res
}

// Render draws the current snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	Render(g.engine.Snapshot(), dst)
	if g.paused {
		DrawMessage(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Phase:    g.engine.Phase().String(),
		GameOver: g.engine.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Engine exposes the underlying engine for headless drivers.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
