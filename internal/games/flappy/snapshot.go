package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// ActorView is a read-only copy of the actor's pose.
type ActorView struct {
	X, Y          float64
	VX, VY        float64
	Width, Height float64
	Angle         float64
	Tag           Tag
	Depth         int
	Frame         int
}

// Box returns the actor's bounds in world coordinates.
func (a ActorView) Box() core.Box {
	return core.Box{X: a.X - a.Width/2, Y: a.Y - a.Height/2, W: a.Width, H: a.Height}
}

// ObstacleView is a read-only copy of one obstacle.
type ObstacleView struct {
	Box         core.Box
	Orientation Orientation
	Pair        int
	Scored      bool
}

// Snapshot is everything a renderer needs to draw one frame.
type Snapshot struct {
	Phase            Phase
	Score            int
	Tick             uint64
	Actor            ActorView
	Obstacles        []ObstacleView
	CollisionEnabled bool
	Starting         bool

	WorldWidth   float64
	WorldHeight  float64
	GroundY      float64
	GroundOffset float64
}

// Snapshot copies the current state. Mutating the result does not affect
// the engine.
func (e *Engine) Snapshot() Snapshot {
	b := e.actor.Body
	x, y := b.Position()
	vx, vy := b.Velocity()

	obs := make([]ObstacleView, 0, e.pool.Len())
	for _, o := range e.pool.Obstacles() {
		obs = append(obs, ObstacleView{
			Box:         o.Body.Bounds(),
			Orientation: o.Orientation,
			Pair:        o.Pair,
			Scored:      o.Scored,
		})
	}

	return Snapshot{
		Phase: e.phase,
		Score: e.score.Score(),
		Tick:  e.tick,
		Actor: ActorView{
			X: x, Y: y,
			VX: vx, VY: vy,
			Width:  b.Width(),
			Height: b.Height(),
			Angle:  e.actor.Angle,
			Tag:    e.actor.Tag,
			Depth:  e.actor.Depth,
			Frame:  e.actor.Anim.Frame(),
		},
		Obstacles:        obs,
		CollisionEnabled: e.collider.Active(),
		Starting:         e.starting,
		WorldWidth:       float64(e.cfg.World.Width),
		WorldHeight:      float64(e.cfg.World.Height),
		GroundY:          e.bounds.GroundY,
		GroundOffset:     e.groundOffset,
	}
}
