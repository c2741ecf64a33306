// Package clock provides a frame-driven monotonic clock and a one-shot
// callback scheduler. Time only moves when the frame driver calls Advance,
// so delayed callbacks are deterministic and never block.
package clock

import (
	"sort"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

type pending struct {
	handle Handle
	due    time.Duration
	fn     func()
}

// Scheduler owns a monotonic clock and a queue of one-shot callbacks.
// It is not safe for concurrent use; the frame loop is its only caller.
type Scheduler struct {
	now     time.Duration
	nextID  Handle
	pending []pending
}

// NewScheduler creates a scheduler whose clock starts at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the elapsed simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once the clock has advanced by at least delay.
func (s *Scheduler) After(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.pending = append(s.pending, pending{
		handle: s.nextID,
		due:    s.now + delay,
		fn:     fn,
	})
	return s.nextID
}

// Cancel removes a scheduled callback. It reports whether the callback was
// still pending; cancelling a fired or unknown handle is a no-op.
func (s *Scheduler) Cancel(h Handle) bool {
	for i, p := range s.pending {
		if p.handle == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Pending reports whether h is still waiting to fire.
func (s *Scheduler) Pending(h Handle) bool {
	for _, p := range s.pending {
		if p.handle == h {
			return true
		}
	}
	return false
}

// Advance moves the clock forward by dt and runs every callback that became
// due, in due-time order (ties in scheduling order). Callbacks scheduled
// while firing are considered on the same pass if already due.
// Returns the number of callbacks fired.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	fired := 0
	for {
		idx := s.nextDue()
		if idx < 0 {
			return fired
		}
		p := s.pending[idx]
		s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
		p.fn()
		fired++
	}
}

// nextDue returns the index of the earliest due callback, or -1.
func (s *Scheduler) nextDue() int {
	due := make([]int, 0, len(s.pending))
	for i, p := range s.pending {
		if p.due <= s.now {
			due = append(due, i)
		}
	}
	if len(due) == 0 {
		return -1
	}
	sort.SliceStable(due, func(a, b int) bool {
		pa, pb := s.pending[due[a]], s.pending[due[b]]
		if pa.due != pb.due {
			return pa.due < pb.due
		}
		return pa.handle < pb.handle
	})
	return due[0]
}

// Reset drops every pending callback and rewinds the clock to zero.
// Handles issued before Reset are never reused.
func (s *Scheduler) Reset() {
	s.now = 0
	s.pending = s.pending[:0]
}
