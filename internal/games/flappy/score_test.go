package flappy

import "testing"

func testPair(pair int, x, width float64) []*Obstacle {
	upper := newObstacle(Upper, pair, width, 640)
	lower := newObstacle(Lower, pair, width, 640)
	upper.Body.SetPosition(x, 300)
	lower.Body.SetPosition(x, 500)
	return []*Obstacle{upper, lower}
}

func TestScoreOncePerPass(t *testing.T) {
	var s ScoreTracker
	obs := testPair(0, 500, 50)

	for x := 490.0; x <= 560; x += 5 {
		s.Detect(x, obs)
	}

	if s.Score() != 1 {
		t.Errorf("Score() = %d, expected exactly 1", s.Score())
	}
}

func TestScoreBoundariesAreExclusive(t *testing.T) {
	tests := []struct {
		name   string
		actorX float64
		want   int
	}{
		{"left edge", 500, 0},
		{"right edge", 550, 0},
		{"inside", 525, 1},
		{"before", 400, 0},
		{"after", 600, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s ScoreTracker
			s.Detect(tc.actorX, testPair(0, 500, 50))
			if s.Score() != tc.want {
				t.Errorf("Score() = %d, expected %d", s.Score(), tc.want)
			}
		})
	}
}

func TestScoreTwoPairsInRange(t *testing.T) {
	var s ScoreTracker
	obs := append(testPair(0, 500, 50), testPair(1, 520, 50)...)

	for x := 490.0; x <= 600; x++ {
		s.Detect(x, obs)
	}

	if s.Score() != 2 {
		t.Errorf("Score() = %d, expected one point per pair", s.Score())
	}
}

func TestScoreIgnoresLowerHalves(t *testing.T) {
	var s ScoreTracker
	lower := newObstacle(Lower, 0, 50, 640)
	lower.Body.SetPosition(500, 500)

	if got := s.Detect(525, []*Obstacle{lower}); got != 0 {
		t.Errorf("Detect() = %d, expected 0 for a lower half", got)
	}
}

func TestScoreReset(t *testing.T) {
	var s ScoreTracker
	s.Detect(525, testPair(0, 500, 50))
	s.Reset()
	if s.Score() != 0 {
		t.Errorf("Score() after Reset = %d, expected 0", s.Score())
	}
}
