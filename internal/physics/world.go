package physics

import "time"

// OverlapFunc is called when a body overlaps a member of a group.
type OverlapFunc func(a, b *Body)

// Collider subscribes a callback to overlaps between one body and a group.
// An inactive collider is skipped during Step but keeps its subscription.
type Collider struct {
	body   *Body
	group  func() []*Body
	fn     OverlapFunc
	active bool
}

// Active reports whether the collider is tested each step.
func (c *Collider) Active() bool { return c.active }

// SetActive enables or disables the collider.
func (c *Collider) SetActive(on bool) { c.active = on }

// World integrates a set of bodies and reports overlaps.
type World struct {
	gravity   float64
	bodies    []*Body
	colliders []*Collider
}

// NewWorld creates a world with the given global downward gravity.
func NewWorld(gravity float64) *World {
	return &World{gravity: gravity}
}

// Add registers bodies for integration.
func (w *World) Add(bodies ...*Body) {
	w.bodies = append(w.bodies, bodies...)
}

// Bodies returns the registered bodies.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Clear removes all bodies and colliders.
func (w *World) Clear() {
	w.bodies = w.bodies[:0]
	w.colliders = w.colliders[:0]
}

// AddOverlap subscribes fn to overlaps between body and the bodies returned
// by group. The group is re-read every step so pooled members stay current.
func (w *World) AddOverlap(body *Body, group func() []*Body, fn OverlapFunc) *Collider {
	c := &Collider{body: body, group: group, fn: fn, active: true}
	w.colliders = append(w.colliders, c)
	return c
}

// Step integrates every enabled body by dt, then fires overlap callbacks.
// A callback that deactivates its own collider stops further reports from
// that collider within the same step.
func (w *World) Step(dt time.Duration) {
	secs := dt.Seconds()
	if secs <= 0 {
		return
	}

	for _, b := range w.bodies {
		if b.enabled {
			b.integrate(secs, w.gravity)
		}
	}

	for _, c := range w.colliders {
		if !c.active || !c.body.enabled {
			continue
		}
		box := c.body.Bounds()
		for _, other := range c.group() {
			if !c.active {
				break
			}
			if other == c.body || !other.enabled {
				continue
			}
			if box.Intersects(other.Bounds()) {
				c.fn(c.body, other)
			}
		}
	}
}
