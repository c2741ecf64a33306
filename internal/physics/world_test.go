package physics

import (
	"math"
	"testing"
	"time"
)

const eps = 1e-9

func TestBodyBoundsRespectsOrigin(t *testing.T) {
	tests := []struct {
		name   string
		ox, oy float64
		wantX  float64
		wantY  float64
	}{
		{"center", 0.5, 0.5, 90, 190},
		{"top-left", 0, 0, 100, 200},
		{"bottom-left", 0, 1, 100, 180},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBody(20, 20, tc.ox, tc.oy)
			b.SetPosition(100, 200)
			box := b.Bounds()
			if box.X != tc.wantX || box.Y != tc.wantY {
				t.Errorf("Bounds() origin = (%f, %f), expected (%f, %f)", box.X, box.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestStepIntegratesGravity(t *testing.T) {
	w := NewWorld(0)
	b := NewBody(10, 10, 0.5, 0.5)
	b.SetGravity(980)
	w.Add(b)

	w.Step(time.Second / 2)

	_, vy := b.Velocity()
	if math.Abs(vy-490) > eps {
		t.Errorf("vy = %f, expected 490", vy)
	}
	if math.Abs(b.Y()-245) > eps {
		t.Errorf("y = %f, expected 245 (semi-implicit Euler)", b.Y())
	}
}

func TestStepAppliesDragOnlyWithoutAcceleration(t *testing.T) {
	w := NewWorld(0)
	b := NewBody(10, 10, 0.5, 0.5)
	b.SetVelocity(300, 0)
	b.SetDrag(150)
	w.Add(b)

	w.Step(time.Second)
	if vx, _ := b.Velocity(); math.Abs(vx-150) > eps {
		t.Errorf("vx after drag = %f, expected 150", vx)
	}

	w.Step(2 * time.Second)
	if vx, _ := b.Velocity(); vx != 0 {
		t.Errorf("drag should stop at zero, got %f", vx)
	}

	b.SetVelocity(100, 0)
	b.SetAcceleration(10, 0)
	w.Step(time.Second)
	if vx, _ := b.Velocity(); math.Abs(vx-110) > eps {
		t.Errorf("drag must not apply while accelerating, vx = %f", vx)
	}
}

func TestStepSkipsDisabledBodies(t *testing.T) {
	w := NewWorld(100)
	b := NewBody(10, 10, 0.5, 0.5)
	b.SetEnabled(false)
	w.Add(b)

	w.Step(time.Second)
	if b.Y() != 0 {
		t.Errorf("disabled body moved to y = %f", b.Y())
	}
}

func TestOverlapEvents(t *testing.T) {
	w := NewWorld(0)
	actor := NewBody(10, 10, 0.5, 0.5)
	near := NewBody(10, 10, 0, 0)
	far := NewBody(10, 10, 0, 0)
	near.SetPosition(2, 2)
	far.SetPosition(500, 500)
	w.Add(actor, near, far)

	hits := 0
	c := w.AddOverlap(actor, func() []*Body { return []*Body{near, far} }, func(a, b *Body) {
		if a != actor || b != near {
			t.Errorf("unexpected overlap pair")
		}
		hits++
	})

	w.Step(time.Millisecond)
	if hits != 1 {
		t.Fatalf("hits = %d, expected 1", hits)
	}

	c.SetActive(false)
	w.Step(time.Millisecond)
	if hits != 1 {
		t.Error("inactive collider must not report")
	}
}

func TestOverlapCallbackCanDeactivate(t *testing.T) {
	w := NewWorld(0)
	actor := NewBody(10, 10, 0.5, 0.5)
	a := NewBody(10, 10, 0.5, 0.5)
	b := NewBody(10, 10, 0.5, 0.5)
	w.Add(actor, a, b)

	hits := 0
	var c *Collider
	c = w.AddOverlap(actor, func() []*Body { return []*Body{a, b} }, func(_, _ *Body) {
		hits++
		c.SetActive(false)
	})

	w.Step(time.Millisecond)
	if hits != 1 {
		t.Errorf("deactivating inside the callback should stop further reports, hits = %d", hits)
	}
}

func TestHalt(t *testing.T) {
	b := NewBody(1, 1, 0, 0)
	b.SetVelocity(1, 2)
	b.SetAcceleration(3, 4)
	b.SetGravity(5)
	b.SetDrag(6)
	b.Halt()

	vx, vy := b.Velocity()
	ax, ay := b.Acceleration()
	if vx != 0 || vy != 0 || ax != 0 || ay != 0 || b.Gravity() != 0 || b.Drag() != 0 {
		t.Error("Halt should zero all motion state")
	}
}
