package scheduler

import (
	"testing"
	"time"
)

func TestEveryFiresOnInterval(t *testing.T) {
	s := New()
	count := 0
	task := s.Every("tick", time.Second, func() { count++ })

	s.Advance(999 * time.Millisecond)
	if count != 0 {
		t.Fatalf("fired %d times before first interval", count)
	}

	s.Advance(time.Millisecond)
	if count != 1 {
		t.Fatalf("count = %d after 1s, want 1", count)
	}

	s.Advance(3500 * time.Millisecond)
	if count != 4 {
		t.Errorf("count = %d after 4.5s, want 4", count)
	}
	if task.Fired() != 4 {
		t.Errorf("Fired() = %d, want 4", task.Fired())
	}
	if s.Elapsed() != 4500*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 4.5s", s.Elapsed())
	}
}

func TestAfterFiresOnce(t *testing.T) {
	s := New()
	count := 0
	s.After(nil, "once", 2*time.Second, func() { count++ })

	s.Advance(10 * time.Second)
	if count != 1 {
		t.Errorf("one-shot fired %d times, want 1", count)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestFireOrder(t *testing.T) {
	s := New()
	var order []string
	s.After(nil, "b", 2*time.Second, func() { order = append(order, "b") })
	s.After(nil, "a", time.Second, func() { order = append(order, "a") })
	s.After(nil, "c", 2*time.Second, func() { order = append(order, "c") })

	s.Advance(5 * time.Second)

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestCancelBeforeFire(t *testing.T) {
	s := New()
	count := 0
	task := s.Every("tick", time.Second, func() { count++ })

	s.Advance(2 * time.Second)
	task.Cancel()
	s.Advance(10 * time.Second)

	if count != 2 {
		t.Errorf("count = %d, want 2 (no fires after cancel)", count)
	}
	if !task.Cancelled() {
		t.Error("task should report cancelled")
	}
}

func TestCancelWithinSameAdvance(t *testing.T) {
	// A task due in the same Advance as its canceller must not run.
	s := New()
	ran := false
	victim := s.After(nil, "victim", 2*time.Second, func() { ran = true })
	s.After(nil, "killer", time.Second, func() { victim.Cancel() })

	s.Advance(5 * time.Second)
	if ran {
		t.Error("cancelled task ran")
	}
}

func TestParentCancellationCancelsChildren(t *testing.T) {
	s := New()
	childRuns := 0
	var parent *Task
	parent = s.Every("parent", time.Second, func() {
		s.After(parent, "child", 1500*time.Millisecond, func() { childRuns++ })
	})

	s.Advance(1 * time.Second) // parent fires, child due at 2.5s
	parent.Cancel()
	s.Advance(10 * time.Second)

	if childRuns != 0 {
		t.Errorf("child ran %d times after parent cancel", childRuns)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestCallbackSchedulesWithinAdvance(t *testing.T) {
	s := New()
	var at []time.Duration
	s.After(nil, "first", time.Second, func() {
		at = append(at, s.Elapsed())
		s.After(nil, "second", time.Second, func() {
			at = append(at, s.Elapsed())
		})
	})

	s.Advance(3 * time.Second)
	if len(at) != 2 {
		t.Fatalf("fired %d tasks, want 2", len(at))
	}
	if at[0] != time.Second || at[1] != 2*time.Second {
		t.Errorf("fire times = %v, want [1s 2s]", at)
	}
}

func TestSelfCancelStopsRecurrence(t *testing.T) {
	s := New()
	count := 0
	var task *Task
	task = s.Every("self", time.Second, func() {
		count++
		if count == 3 {
			task.Cancel()
		}
	})

	s.Advance(10 * time.Second)
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestCancelAll(t *testing.T) {
	s := New()
	count := 0
	a := s.Every("a", time.Second, func() { count++ })
	b := s.After(nil, "b", time.Second, func() { count++ })

	s.CancelAll()
	s.Advance(5 * time.Second)

	if count != 0 {
		t.Errorf("count = %d after CancelAll, want 0", count)
	}
	if !a.Cancelled() || !b.Cancelled() {
		t.Error("tasks should be cancelled")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestEveryPanicsOnZeroInterval(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Every with zero interval should panic")
		}
	}()
	New().Every("bad", 0, func() {})
}
