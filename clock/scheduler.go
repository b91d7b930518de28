package clock

import (
	"sort"
	"time"
)

// Handle identifies one scheduled callback. The zero value and nil are
// both safe to cancel.
type Handle struct {
	deadline  time.Duration
	fn        func()
	seq       uint64
	cancelled bool
	fired     bool
}

// Cancel prevents the callback from firing. Cancelling twice, or after
// the callback fired, does nothing.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.cancelled = true
}

// Pending reports whether the callback is still waiting to fire.
func (h *Handle) Pending() bool {
	return h != nil && !h.cancelled && !h.fired
}

// Scheduler runs deferred callbacks against a Clock. It is polled once per
// tick from the game loop, so callbacks run on the tick goroutine.
type Scheduler struct {
	clock   Clock
	pending []*Handle
	seq     uint64
}

func NewScheduler(c Clock) *Scheduler {
	return &Scheduler{clock: c}
}

// After schedules fn to run once d has elapsed on the scheduler's clock.
func (s *Scheduler) After(d time.Duration, fn func()) *Handle {
	s.seq++
	h := &Handle{
		deadline: s.clock.Now() + d,
		fn:       fn,
		seq:      s.seq,
	}
	s.pending = append(s.pending, h)
	return h
}

// Update fires every due callback in deadline order. Callbacks scheduled
// while firing wait for the next Update.
func (s *Scheduler) Update() {
	if len(s.pending) == 0 {
		return
	}

	now := s.clock.Now()
	var due, remaining []*Handle
	for _, h := range s.pending {
		switch {
		case h.cancelled:
		case h.deadline <= now:
			due = append(due, h)
		default:
			remaining = append(remaining, h)
		}
	}
	s.pending = remaining

	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline == due[j].deadline {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline < due[j].deadline
	})

	for _, h := range due {
		// an earlier callback in this batch may have cancelled a later one
		if h.cancelled {
			continue
		}
		h.fired = true
		h.fn()
	}
}

// CancelAll drops every pending callback.
func (s *Scheduler) CancelAll() {
	for _, h := range s.pending {
		h.cancelled = true
	}
	s.pending = nil
}

// Len counts callbacks that are still pending.
func (s *Scheduler) Len() int {
	n := 0
	for _, h := range s.pending {
		if !h.cancelled {
			n++
		}
	}
	return n
}
