package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/physics"
	"github.com/vovakirdan/tui-flappy/internal/rng"
)

// Orientation says which half of a pair an obstacle is.
type Orientation int

const (
	Upper Orientation = iota // Hangs from the top; its anchor y is its bottom edge
	Lower                    // Rises from the bottom; its anchor y is its top edge
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	if o == Upper {
		return "upper"
	}
	return "lower"
}

// Obstacle is one half of a gapped pair. Its body is anchored on the left
// edge at the end facing the gap.
type Obstacle struct {
	Body        *physics.Body
	Orientation Orientation
	Pair        int  // Index of the owning pair in the pool
	Scored      bool // Set once the actor has passed this pair

	queued bool // Waiting in the recycle queue
}

// newObstacle creates an obstacle of the given size for pair index pair.
func newObstacle(o Orientation, pair int, w, length float64) *Obstacle {
	oy := 0.0
	if o == Upper {
		oy = 1
	}
	return &Obstacle{
		Body:        physics.NewBody(w, length, 0, oy),
		Orientation: o,
		Pair:        pair,
	}
}

// X returns the left edge.
func (o *Obstacle) X() float64 { return o.Body.X() }

// Y returns the edge facing the gap.
func (o *Obstacle) Y() float64 { return o.Body.Y() }

// Width returns the horizontal extent.
func (o *Obstacle) Width() float64 { return o.Body.Width() }

// Right returns the right edge.
func (o *Obstacle) Right() float64 { return o.Body.X() + o.Body.Width() }

// Pair groups the upper and lower half that share an x-position.
type Pair struct {
	Upper *Obstacle
	Lower *Obstacle
}

// Placement is the spacing tuple drawn once per pair at spawn or recycle.
type Placement struct {
	Offset int `yaml:"offset"`  // Horizontal distance from the rightmost obstacle
	Gap    int `yaml:"gap"`     // Vertical opening between the halves
	UpperY int `yaml:"upper_y"` // Bottom edge of the upper half
}

// Validate checks the spacing and traversability invariants.
func (p Placement) Validate(obstacleWidth, minGap float64) error {
	if float64(p.Offset) < obstacleWidth {
		return fmt.Errorf("offset %d is narrower than obstacle width %g", p.Offset, obstacleWidth)
	}
	if float64(p.Gap) < minGap {
		return fmt.Errorf("gap %d is below the traversable minimum %g", p.Gap, minGap)
	}
	return nil
}

// Pool owns a fixed set of obstacle pairs. They are allocated once and
// repositioned past the rightmost obstacle when they leave the screen; the
// pool never grows or shrinks during play.
type Pool struct {
	cfg      config.ObstacleConfig
	minGap   float64
	midX     float64
	upperY   config.Range
	src      rng.Source
	pairs    []Pair
	all      []*Obstacle
	bodies   []*physics.Body
	queue    []*Obstacle
	velocity float64
}

// NewPool allocates cfg.Pairs obstacle pairs. actorHeight feeds the
// traversability check; worldWidth places the spawn origin at mid-field.
func NewPool(cfg config.ObstacleConfig, actorHeight, worldWidth float64, src rng.Source) *Pool {
	p := &Pool{
		cfg:    cfg,
		minGap: actorHeight + cfg.GapMargin,
		midX:   worldWidth / 2,
		upperY: cfg.UpperY,
		src:    src,
		pairs:  make([]Pair, cfg.Pairs),
		all:    make([]*Obstacle, 0, 2*cfg.Pairs),
		bodies: make([]*physics.Body, 0, 2*cfg.Pairs),
		queue:  make([]*Obstacle, 0, 2*cfg.Pairs),
	}
	for i := range p.pairs {
		p.pairs[i] = Pair{
			Upper: newObstacle(Upper, i, cfg.Width, cfg.Length),
			Lower: newObstacle(Lower, i, cfg.Width, cfg.Length),
		}
		p.all = append(p.all, p.pairs[i].Upper, p.pairs[i].Lower)
		p.bodies = append(p.bodies, p.pairs[i].Upper.Body, p.pairs[i].Lower.Body)
	}
	return p
}

// Obstacles returns every obstacle in pool order: upper then lower, pair by pair.
func (p *Pool) Obstacles() []*Obstacle {
	return p.all
}

// Bodies returns the physics bodies of every obstacle in pool order.
func (p *Pool) Bodies() []*physics.Body {
	return p.bodies
}

// Pairs returns the pairs in pool order.
func (p *Pool) Pairs() []Pair {
	return p.pairs
}

// Len returns the number of obstacles, always twice the number of pairs.
func (p *Pool) Len() int {
	return len(p.all)
}

// SetUpperRange changes the range UpperY is sampled from.
func (p *Pool) SetUpperRange(r config.Range) {
	p.upperY = r
}

// Sample draws a fresh placement from the configured ranges.
func (p *Pool) Sample() Placement {
	return Placement{
		Offset: p.src.Between(p.cfg.Offset.Min, p.cfg.Offset.Max),
		Gap:    p.src.Between(p.cfg.Gap.Min, p.cfg.Gap.Max),
		UpperY: p.src.Between(p.upperY.Min, p.upperY.Max),
	}
}

// SpawnAll stacks every obstacle at mid-field and then places the pairs left
// to right. placements[i] is used for pair i when present; missing entries
// are sampled. It returns the placements actually used, in pair order.
func (p *Pool) SpawnAll(placements []Placement) []Placement {
	p.queue = p.queue[:0]
	for _, o := range p.all {
		o.Body.SetPosition(p.midX, 0)
		o.Scored = false
		o.queued = false
	}

	used := make([]Placement, len(p.pairs))
	for i := range p.pairs {
		var pl Placement
		if i < len(placements) {
			pl = placements[i]
		} else {
			pl = p.Sample()
		}
		p.PlacePair(i, pl)
		used[i] = pl
	}
	return used
}

// PlacePair moves pair i to RightmostX()+Offset with the given gap.
// It panics on a placement that breaks the spacing invariants.
func (p *Pool) PlacePair(i int, pl Placement) {
	if i < 0 || i >= len(p.pairs) {
		panic(fmt.Sprintf("flappy: pair index %d outside pool of %d", i, len(p.pairs)))
	}
	if err := pl.Validate(p.cfg.Width, p.minGap); err != nil {
		panic(fmt.Sprintf("flappy: invalid placement for pair %d: %v", i, err))
	}

	x := p.RightmostX() + float64(pl.Offset)
	pair := p.pairs[i]
	pair.Upper.Body.SetPosition(x, float64(pl.UpperY))
	pair.Lower.Body.SetPosition(x, float64(pl.UpperY+pl.Gap))
	pair.Upper.Scored = false
	pair.Lower.Scored = false
}

// RightmostX returns the largest obstacle x, never less than zero.
func (p *Pool) RightmostX() float64 {
	max := 0.0
	for _, o := range p.all {
		if o.X() > max {
			max = o.X()
		}
	}
	return max
}

// RecycleOffscreen queues obstacles whose right edge has crossed x=0, in
// pool order, and re-places the oldest queued pair with a fresh placement.
// At most one pair is recycled per call. Returns the recycled pair index,
// or -1 when nothing was recycled.
func (p *Pool) RecycleOffscreen() int {
	for _, o := range p.all {
		if !o.queued && o.Right() <= 0 {
			o.queued = true
			p.queue = append(p.queue, o)
		}
	}
	if len(p.queue) < 2 {
		return -1
	}

	a, b := p.queue[0], p.queue[1]
	p.queue = p.queue[2:]
	p.mustOwn(a)
	p.mustOwn(b)
	if a.Pair != b.Pair || a.Orientation == b.Orientation {
		panic(fmt.Sprintf("flappy: recycle would cross-pair %s half of pair %d with %s half of pair %d",
			a.Orientation, a.Pair, b.Orientation, b.Pair))
	}

	a.queued = false
	b.queued = false
	p.PlacePair(a.Pair, p.Sample())
	return a.Pair
}

// Queued returns the number of obstacles waiting to be recycled.
func (p *Pool) Queued() int {
	return len(p.queue)
}

// SetScrollVelocity applies the same horizontal velocity to every obstacle.
func (p *Pool) SetScrollVelocity(v float64) {
	p.velocity = v
	for _, o := range p.all {
		o.Body.SetVelocityX(v)
	}
}

// ScrollVelocity returns the last velocity applied with SetScrollVelocity.
func (p *Pool) ScrollVelocity() float64 {
	return p.velocity
}

// mustOwn panics when o is not one of this pool's obstacles.
func (p *Pool) mustOwn(o *Obstacle) {
	if o.Pair < 0 || o.Pair >= len(p.pairs) {
		panic(fmt.Sprintf("flappy: obstacle references pair %d outside pool", o.Pair))
	}
	pair := p.pairs[o.Pair]
	if pair.Upper != o && pair.Lower != o {
		panic(fmt.Sprintf("flappy: obstacle is not owned by pair %d", o.Pair))
	}
}
