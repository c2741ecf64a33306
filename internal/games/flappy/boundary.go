package flappy

// Violation is the kind of boundary the actor crossed.
type Violation int

const (
	NoViolation Violation = iota
	GroundViolation
	CeilingViolation
)

// String returns a human-readable name for the violation.
func (v Violation) String() string {
	switch v {
	case GroundViolation:
		return "ground"
	case CeilingViolation:
		return "ceiling"
	default:
		return "none"
	}
}

// BoundaryPolicy detects when the actor leaves the vertical playfield.
type BoundaryPolicy struct {
	GroundY float64
}

// Check returns which boundary, if any, the actor is touching.
func (p BoundaryPolicy) Check(a *Actor) Violation {
	switch {
	case p.Grounded(a):
		return GroundViolation
	case a.Body.Y() <= 0:
		return CeilingViolation
	default:
		return NoViolation
	}
}

// Grounded reports whether the actor's bottom edge has reached the ground.
func (p BoundaryPolicy) Grounded(a *Actor) bool {
	return a.Body.Y() >= p.GroundLevel(a)
}

// GroundLevel returns the center y at which the actor rests on the ground.
func (p BoundaryPolicy) GroundLevel(a *Actor) float64 {
	return p.GroundY - a.Body.Height()/2
}
