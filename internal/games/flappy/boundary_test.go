package flappy

import "testing"

func TestBoundaryCheck(t *testing.T) {
	p := BoundaryPolicy{GroundY: 1050}
	tests := []struct {
		name string
		y    float64
		want Violation
	}{
		{"mid air", 500, NoViolation},
		{"just above ground", 1025.9, NoViolation},
		{"touching ground", 1026, GroundViolation},
		{"below ground", 1100, GroundViolation},
		{"ceiling", 0, CeilingViolation},
		{"above ceiling", -20, CeilingViolation},
		{"just below ceiling", 0.1, NoViolation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newActor(68, 48)
			a.Body.SetY(tc.y)
			if got := p.Check(a); got != tc.want {
				t.Errorf("Check() at y=%f = %s, expected %s", tc.y, got, tc.want)
			}
		})
	}
}

func TestGroundLevel(t *testing.T) {
	p := BoundaryPolicy{GroundY: 1050}
	a := newActor(68, 48)
	if got := p.GroundLevel(a); got != 1026 {
		t.Errorf("GroundLevel() = %f, expected 1026", got)
	}
}
