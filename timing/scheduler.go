package timing

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Callback receives the game time at which it fired.
type Callback func(now time.Duration)

type timer struct {
	handle Handle
	due    time.Duration
	seq    uint64
	fn     Callback
	index  int
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler runs delayed callbacks on the goroutine that calls Advance.
// Callbacks fire one at a time in due order; ties keep scheduling order.
// It is not safe for concurrent use, matching the single-threaded game loop.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	queue   timerQueue
	pending map[Handle]*timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: make(map[Handle]*timer),
	}
}

// Now is the time of the last Advance.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run delay after the scheduler's current time.
func (s *Scheduler) After(delay time.Duration, fn Callback) Handle {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	t := &timer{
		handle: Handle(s.seq),
		due:    s.now + delay,
		seq:    s.seq,
		fn:     fn,
	}
	heap.Push(&s.queue, t)
	s.pending[t.handle] = t
	return t.handle
}

// Cancel removes a pending callback. It reports false when the handle
// already fired, was already cancelled, or was never issued.
func (s *Scheduler) Cancel(h Handle) bool {
	t, ok := s.pending[h]
	if !ok {
		return false
	}
	delete(s.pending, h)
	heap.Remove(&s.queue, t.index)
	return true
}

// Advance fires every callback due at or before now. Each callback sees
// its own due time as the current time, so callbacks scheduled from inside
// one are relative to when it fired. Those that fall due at or before now
// fire in the same call.
func (s *Scheduler) Advance(now time.Duration) {
	for len(s.queue) > 0 && s.queue[0].due <= now {
		t := heap.Pop(&s.queue).(*timer)
		delete(s.pending, t.handle)
		if t.due > s.now {
			s.now = t.due
		}
		t.fn(s.now)
	}
	if now > s.now {
		s.now = now
	}
}

// Pending is the number of callbacks still waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}
