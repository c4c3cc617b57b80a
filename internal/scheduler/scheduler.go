// Package scheduler runs recurring and delayed tasks against a virtual clock.
//
// The owner advances the clock explicitly (one call per simulation tick), so
// task firing is deterministic and needs no goroutines. Every task carries a
// cancellation flag that is checked at fire time: a cancelled task never runs,
// even if it was already due in the same Advance call.
//
// A Scheduler is not safe for concurrent use. Task callbacks run synchronously
// inside Advance and may schedule or cancel other tasks.
package scheduler

import (
	"container/heap"
	"fmt"
	"time"
)

// Task is a handle to a scheduled callback.
type Task struct {
	name      string
	interval  time.Duration // Zero for one-shot tasks
	due       time.Duration
	seq       uint64
	fn        func()
	parent    *Task
	cancelled bool
	fired     int
	index     int
}

// Name returns the task label given at scheduling time.
func (t *Task) Name() string {
	return t.name
}

// Cancel stops the task and any one-shot tasks scheduled under it.
func (t *Task) Cancel() {
	t.cancelled = true
}

// Cancelled reports whether the task or one of its ancestors was cancelled.
func (t *Task) Cancelled() bool {
	for p := t; p != nil; p = p.parent {
		if p.cancelled {
			return true
		}
	}
	return false
}

// Fired returns how many times the callback has run.
func (t *Task) Fired() int {
	return t.fired
}

// Due returns the virtual time of the next firing.
func (t *Task) Due() time.Duration {
	return t.due
}

type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	task := x.(*Task)
	task.index = len(*q)
	*q = append(*q, task)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	task := old[n-1]
	old[n-1] = nil
	task.index = -1
	*q = old[:n-1]
	return task
}

// Scheduler orders tasks by due time, breaking ties by scheduling order.
type Scheduler struct {
	queue   taskQueue
	elapsed time.Duration
	nextSeq uint64
}

// New creates an empty scheduler at virtual time zero.
func New() *Scheduler {
	s := &Scheduler{}
	heap.Init(&s.queue)
	return s
}

// Every schedules fn to run every interval, first at Elapsed()+interval.
// Panics if interval is not positive.
func (s *Scheduler) Every(name string, interval time.Duration, fn func()) *Task {
	if interval <= 0 {
		panic(fmt.Sprintf("scheduler: task %q needs a positive interval, got %v", name, interval))
	}
	return s.push(&Task{
		name:     name,
		interval: interval,
		due:      s.elapsed + interval,
		fn:       fn,
	})
}

// After schedules fn to run once, delay from now. If parent is non-nil the
// task is owned by it and is skipped once the parent is cancelled.
// A negative delay is treated as zero.
func (s *Scheduler) After(parent *Task, name string, delay time.Duration, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}
	return s.push(&Task{
		name:   name,
		due:    s.elapsed + delay,
		fn:     fn,
		parent: parent,
	})
}

func (s *Scheduler) push(t *Task) *Task {
	t.seq = s.nextSeq
	s.nextSeq++
	heap.Push(&s.queue, t)
	return t
}

// Advance moves the clock forward by dt, running every task that comes due in
// order. Tasks scheduled by callbacks run in the same call if they fall due
// before the new time.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.elapsed + dt

	for s.queue.Len() > 0 {
		task := s.queue[0]
		if task.due > target {
			break
		}
		heap.Pop(&s.queue)

		if task.Cancelled() {
			continue
		}

		s.elapsed = task.due
		task.fired++
		task.fn()

		// The callback may have cancelled its own task.
		if task.interval > 0 && !task.Cancelled() {
			task.due += task.interval
			s.push(task)
		}
	}

	s.elapsed = target
}

// CancelAll cancels every scheduled task and empties the queue.
func (s *Scheduler) CancelAll() {
	for _, t := range s.queue {
		t.cancelled = true
	}
	s.queue = s.queue[:0]
}

// Pending returns the number of live (not cancelled) tasks in the queue.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.queue {
		if !t.Cancelled() {
			n++
		}
	}
	return n
}

// Elapsed returns the current virtual time.
func (s *Scheduler) Elapsed() time.Duration {
	return s.elapsed
}
