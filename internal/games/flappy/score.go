package flappy

// ScoreTracker counts pairs the actor has passed. Each pair carries its own
// Scored flag on the upper half, so two pairs in range at once are still
// counted exactly once each.
type ScoreTracker struct {
	score int
}

// Detect scores every unscored upper obstacle whose horizontal span
// strictly contains actorX. It returns the number of new points.
func (s *ScoreTracker) Detect(actorX float64, obstacles []*Obstacle) int {
	gained := 0
	for _, o := range obstacles {
		if o.Orientation != Upper || o.Scored {
			continue
		}
		if o.X() < actorX && actorX < o.Right() {
			o.Scored = true
			s.score++
			gained++
		}
	}
	return gained
}

// Score returns the current count.
func (s *ScoreTracker) Score() int {
	return s.score
}

// Reset sets the count back to zero. Scored flags live on the obstacles and
// are cleared when the pool re-places them.
func (s *ScoreTracker) Reset() {
	s.score = 0
}
