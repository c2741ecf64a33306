package flappy

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
	"github.com/vovakirdan/tui-flappy/internal/rng"
)

// Options tweak how a session starts.
type Options struct {
	// SkipTitle hands off to Playing on the first frame.
	SkipTitle bool
	// Placements, when set, replace the sampled title layout. Used by replays
	// and tests to get a known obstacle course.
	Placements []Placement
}

// Engine owns all scene state of one play session and advances it one
// frame at a time. It performs no I/O and is not safe for concurrent use.
type Engine struct {
	cfg  config.FlappyConfig
	opts Options

	world    *physics.World
	sched    *clock.Scheduler
	actor    *Actor
	pool     *Pool
	score    ScoreTracker
	bounds   BoundaryPolicy
	collider *physics.Collider

	phase      Phase
	tick       uint64
	generation uint64
	deathTimer clock.Handle

	falling    bool // Death delay elapsed; waiting to land
	starting   bool // Start requested on the title; steering to spawn
	titleKick  bool
	placements []Placement

	groundOffset float64
	listeners    []func(PhaseEvent)
}

// NewEngine builds an engine in PhaseBoot. The first call to Advance moves
// it to the title.
func NewEngine(cfg config.FlappyConfig, src rng.Source, opts Options) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	if err := ValidateLayout(cfg, opts.Placements); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		opts:   opts,
		world:  physics.NewWorld(0),
		sched:  clock.NewScheduler(),
		actor:  newActor(cfg.Actor.Width, cfg.Actor.Height),
		pool:   NewPool(cfg.Obstacles, cfg.Actor.Height, float64(cfg.World.Width), src),
		bounds: BoundaryPolicy{GroundY: cfg.World.GroundY()},
		phase:  PhaseBoot,
	}
	e.world.Add(e.actor.Body)
	e.world.Add(e.pool.Bodies()...)
	e.collider = e.world.AddOverlap(e.actor.Body, e.pool.Bodies, func(_, _ *physics.Body) {
		e.enterDying(CauseCollision)
	})
	e.collider.SetActive(false)
	return e, nil
}

// OnPhaseChange registers fn to be called once per phase transition.
func (e *Engine) OnPhaseChange(fn func(PhaseEvent)) {
	e.listeners = append(e.listeners, fn)
}

// Advance runs one frame: intent, timers, physics, then the phase-specific
// update, boundary checks and tilt.
func (e *Engine) Advance(dt time.Duration, intent core.Intent) {
	e.tick++

	if e.phase == PhaseBoot {
		e.enterTitle()
		if e.opts.SkipTitle {
			e.enterPlaying(CauseSkipTitle)
		}
	}

	e.applyIntent(intent)

	// Timers run first so a death scheduled later this frame, by an overlap
	// or a boundary hit, is measured from the same end-of-frame time.
	e.sched.Advance(dt)
	e.world.Step(dt)
	e.actor.Anim.Advance(dt)

	if e.phase == PhasePlaying || e.phase == PhaseDying {
		e.checkBounds()
	}

	switch e.phase {
	case PhaseTitle:
		e.updateTitle()
	case PhasePlaying:
		e.groundOffset += e.cfg.World.GroundScroll
		e.pool.RecycleOffscreen()
		e.score.Detect(e.actor.Body.X(), e.pool.Obstacles())
	case PhaseDying:
		if e.falling && e.bounds.Grounded(e.actor) {
			e.enterGameOver()
		}
	}

	if e.phase != PhaseTitle {
		_, vy := e.actor.Body.Velocity()
		target := TiltAngle(vy, e.cfg.Tilt)
		e.actor.Angle = SmoothTilt(e.actor.Angle, target, e.cfg.Tilt.Smoothing)
	}
}

// Reset tears the session down to PhaseBoot. A pending death callback is
// cancelled and would be ignored even if it fired.
func (e *Engine) Reset() {
	e.generation++
	e.sched.Cancel(e.deathTimer)
	e.sched.Reset()
	e.deathTimer = 0

	e.phase = PhaseBoot
	e.tick = 0
	e.falling = false
	e.starting = false
	e.titleKick = false
	e.groundOffset = 0
	e.placements = nil
	e.score.Reset()
	e.collider.SetActive(false)
	e.actor.Body.Halt()
	e.actor.Tag = TagAlive
	e.actor.Angle = 0
}

func (e *Engine) applyIntent(intent core.Intent) {
	switch e.phase {
	case PhaseTitle:
		if intent == core.IntentStart || intent == core.IntentImpulse {
			e.starting = true
		}
	case PhasePlaying:
		switch intent {
		case core.IntentImpulse:
			ApplyImpulse(e.actor, e.cfg.Physics.FlapImpulse)
		case core.IntentDive:
			ApplyDive(e.actor, e.cfg.Physics.DiveSpeed)
		}
	case PhaseGameOver:
		if intent == core.IntentRestart {
			e.restart()
		}
	}
}

func (e *Engine) enterTitle() {
	e.actor.Anim = NewAnimation(e.cfg.Actor.FlapFrames, e.cfg.Actor.FlapFPS)
	e.actor.Anim.Play()

	cx, cy := e.center()
	b := e.actor.Body
	b.Halt()
	b.SetPosition(cx+e.cfg.Title.StartX, cy+e.cfg.Title.StartY)
	b.SetAcceleration(e.cfg.Title.InitialAccel, 0)
	e.actor.Depth = e.cfg.Actor.Depth

	e.pool.SetUpperRange(e.cfg.Title.UpperY)
	e.placements = e.pool.SpawnAll(e.opts.Placements)
	e.pool.SetScrollVelocity(0)
	e.collider.SetActive(false)

	e.transition(PhaseTitle, CauseBoot)
}

func (e *Engine) updateTitle() {
	if !e.starting {
		e.titleKick = TitleFlight(e.actor, e.cfg.Title, e.titleKick)
		return
	}
	tx, ty := e.spawnPoint()
	if Arrived(e.actor, tx, ty, e.cfg.Title.Tolerance) {
		e.enterPlaying(CauseStart)
		return
	}
	SteerToward(e.actor, tx, ty, e.cfg.Title.SteerGain)
}

// enterPlaying resets the actor, score and pool and starts the run with the
// placements recorded on the title.
func (e *Engine) enterPlaying(cause Cause) {
	e.starting = false
	e.falling = false

	x, y := e.spawnPoint()
	b := e.actor.Body
	b.Halt()
	b.SetPosition(x, y)
	b.SetGravity(e.cfg.Physics.Gravity)
	e.actor.Tag = TagAlive
	e.actor.Angle = 0
	e.actor.Depth = e.cfg.Actor.Depth
	e.actor.Anim.Play()

	e.score.Reset()
	e.pool.SetUpperRange(e.cfg.Obstacles.UpperY)
	e.pool.SpawnAll(e.placements)
	e.pool.SetScrollVelocity(-e.cfg.Obstacles.ScrollSpeed)
	e.collider.SetActive(true)

	e.transition(PhasePlaying, cause)
}

// enterDying starts the death sequence. It is a no-op outside Playing, so
// repeated collisions or boundary hits only trigger it once.
func (e *Engine) enterDying(cause Cause) {
	if e.phase != PhasePlaying {
		return
	}
	e.collider.SetActive(false)
	e.pool.SetScrollVelocity(0)
	DeathHop(e.actor, e.cfg.Physics)
	e.actor.Tag = TagDying

	gen := e.generation
	e.deathTimer = e.sched.After(e.cfg.Timing.DeathDelay(), func() {
		e.onDeathDelay(gen)
	})
	e.transition(PhaseDying, cause)
}

func (e *Engine) onDeathDelay(gen uint64) {
	if gen != e.generation {
		return
	}
	if e.phase != PhaseDying {
		panic(fmt.Sprintf("flappy: death callback fired in phase %s", e.phase))
	}
	e.deathTimer = 0
	Freeze(e.actor)
	ApplyTerminalGravity(e.actor, e.cfg.Physics.TerminalGravity)
	e.actor.Depth = e.cfg.Physics.DeathDepth
	e.actor.Anim.Pause()
	e.falling = true
}

func (e *Engine) enterGameOver() {
	b := e.actor.Body
	b.SetVelocityY(0)
	b.SetGravity(0)
	b.SetY(e.bounds.GroundLevel(e.actor))
	e.actor.Tag = TagGrounded
	e.falling = false
	e.transition(PhaseGameOver, CauseLanded)
}

func (e *Engine) restart() {
	if e.phase != PhaseGameOver {
		return
	}
	e.generation++
	e.sched.Cancel(e.deathTimer)
	e.deathTimer = 0
	e.enterPlaying(CauseRestart)
}

func (e *Engine) checkBounds() {
	v := e.bounds.Check(e.actor)
	if v == NoViolation {
		return
	}
	if v == GroundViolation {
		e.enterDying(CauseGround)
	} else {
		e.enterDying(CauseCeiling)
	}
	e.actor.Body.SetDrag(e.cfg.Physics.BoundsDrag)
}

func (e *Engine) transition(to Phase, cause Cause) {
	from := e.phase
	if !CanTransition(from, to) {
		panic(fmt.Sprintf("flappy: illegal transition %s->%s", from, to))
	}
	e.phase = to
	ev := PhaseEvent{From: from, To: to, Tick: e.tick, Score: e.score.Score(), Cause: cause}
	for _, fn := range e.listeners {
		fn(ev)
	}
}

func (e *Engine) center() (float64, float64) {
	return float64(e.cfg.World.Width) / 2, float64(e.cfg.World.Height) / 2
}

func (e *Engine) spawnPoint() (float64, float64) {
	cx, cy := e.center()
	return cx + e.cfg.Actor.SpawnX, cy + e.cfg.Actor.SpawnY
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Score returns the current score.
func (e *Engine) Score() int { return e.score.Score() }

// Tick returns the number of frames advanced since the last reset.
func (e *Engine) Tick() uint64 { return e.tick }

// Now returns simulated time since the last reset.
func (e *Engine) Now() time.Duration { return e.sched.Now() }

// Actor returns the controllable actor.
func (e *Engine) Actor() *Actor { return e.actor }

// Pool returns the obstacle pool.
func (e *Engine) Pool() *Pool { return e.pool }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.FlappyConfig { return e.cfg }

// CollisionEnabled reports whether actor/obstacle overlaps are being tested.
func (e *Engine) CollisionEnabled() bool { return e.collider.Active() }

// Placements returns the layout recorded on the title screen.
func (e *Engine) Placements() []Placement {
	out := make([]Placement, len(e.placements))
	copy(out, e.placements)
	return out
}
