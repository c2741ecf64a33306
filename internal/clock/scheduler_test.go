package clock

import (
	"testing"
	"time"
)

func TestSchedulerFiresAfterDelay(t *testing.T) {
	s := NewScheduler()
	fired := false
	h := s.After(200*time.Millisecond, func() { fired = true })

	s.Advance(150 * time.Millisecond)
	if fired {
		t.Fatal("callback fired before its delay elapsed")
	}
	if !s.Pending(h) {
		t.Fatal("handle should still be pending")
	}

	s.Advance(50 * time.Millisecond)
	if !fired {
		t.Fatal("callback should fire once delay has elapsed")
	}
	if s.Pending(h) {
		t.Error("fired handle should no longer be pending")
	}
	if s.Now() != 200*time.Millisecond {
		t.Errorf("Now() = %v, expected 200ms", s.Now())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	h := s.After(10*time.Millisecond, func() { fired = true })

	if !s.Cancel(h) {
		t.Fatal("Cancel should report a pending handle")
	}
	if s.Cancel(h) {
		t.Error("second Cancel should be a no-op")
	}

	s.Advance(time.Second)
	if fired {
		t.Error("cancelled callback must not fire")
	}
}

func TestSchedulerOrdering(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.After(30*time.Millisecond, func() { order = append(order, 3) })
	s.After(10*time.Millisecond, func() { order = append(order, 1) })
	s.After(10*time.Millisecond, func() { order = append(order, 2) })

	if n := s.Advance(time.Second); n != 3 {
		t.Fatalf("Advance fired %d callbacks, expected 3", n)
	}
	for i, v := range []int{1, 2, 3} {
		if order[i] != v {
			t.Fatalf("fire order = %v, expected [1 2 3]", order)
		}
	}
}

func TestSchedulerNestedScheduling(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.After(0, func() {
		count++
		s.After(0, func() { count++ })
	})

	s.Advance(0)
	if count != 2 {
		t.Errorf("zero-delay callback scheduled while firing should run on the same pass, count = %d", count)
	}
}

func TestSchedulerReset(t *testing.T) {
	s := NewScheduler()
	first := s.After(time.Millisecond, func() { t.Error("reset callback fired") })
	s.Advance(0)
	s.Reset()

	s.Advance(time.Second)
	if s.Pending(first) {
		t.Error("Reset should drop pending handles")
	}
	if second := s.After(0, func() {}); second == first {
		t.Error("handles must not be reused after Reset")
	}
}
