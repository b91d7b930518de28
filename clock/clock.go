// Package clock provides the monotonic game time source and the
// cancellable timers built on it. All skill timing reads this clock, never
// frame counts.
package clock

import (
	"sync"
	"time"
)

// Clock reports game time elapsed since the clock was created.
type Clock interface {
	Now() time.Duration
}

// Pausable is game time backed by the monotonic wall clock, minus every
// interval spent paused.
type Pausable struct {
	mu          sync.Mutex
	start       time.Time
	paused      bool
	pausedAt    time.Time
	totalPaused time.Duration
	now         func() time.Time
}

func NewPausable() *Pausable {
	return newPausable(time.Now)
}

func newPausable(now func() time.Time) *Pausable {
	return &Pausable{start: now(), now: now}
}

func (p *Pausable) Now() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.paused {
		return p.pausedAt.Sub(p.start) - p.totalPaused
	}
	return p.now().Sub(p.start) - p.totalPaused
}

func (p *Pausable) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.paused {
		return
	}
	p.paused = true
	p.pausedAt = p.now()
}

func (p *Pausable) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.paused {
		return
	}
	p.totalPaused += p.now().Sub(p.pausedAt)
	p.paused = false
}

func (p *Pausable) IsPaused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Manual is a clock that only moves when told to.
type Manual struct {
	mu  sync.Mutex
	now time.Duration
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += d
}

func (m *Manual) Set(t time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}
