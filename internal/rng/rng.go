// Package rng provides the uniform integer range sampling used for obstacle
// placement. The engine depends only on Source so tests and replays can
// substitute their own generator.
package rng

import "math/rand"

// Source samples integers uniformly from a closed range.
type Source interface {
	// Between returns a value in [min, max]. Swapped bounds are normalised.
	Between(min, max int) int
}

// Seeded is a deterministic Source backed by math/rand.
type Seeded struct {
	r *rand.Rand
}

// New creates a Seeded source. Equal seeds yield equal sequences.
func New(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

// Between returns a uniformly distributed integer in [min, max].
func (s *Seeded) Between(min, max int) int {
	if min > max {
		min, max = max, min
	}
	if min == max {
		return min
	}
	return min + s.r.Intn(max-min+1)
}

// Sequence replays a fixed list of values, clamped into the requested range.
// It wraps around when exhausted. Used by tests to force specific placements.
type Sequence struct {
	values []int
	next   int
}

// NewSequence creates a Sequence over values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Between returns the next value of the sequence clamped into [min, max].
// An empty sequence always returns min.
func (s *Sequence) Between(min, max int) int {
	if min > max {
		min, max = max, min
	}
	if len(s.values) == 0 {
		return min
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
