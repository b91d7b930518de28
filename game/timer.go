package game

import "time"

// Timer counts game time toward a target. It is advanced with the tick's dt
// so its length does not depend on the frame rate.
type Timer struct {
	currentTime time.Duration
	targetTime  time.Duration
	running     bool
}

func NewTimer(target time.Duration) *Timer {
	return &Timer{
		currentTime: 0,
		targetTime:  target,
	}
}

// Start restarts the timer from zero.
func (t *Timer) Start() {
	t.currentTime = 0
	t.running = true
}

func (t *Timer) Update(dt time.Duration) {
	if !t.running {
		return
	}
	t.currentTime += dt
	if t.currentTime >= t.targetTime {
		t.currentTime = t.targetTime
		t.running = false
	}
}

// Active reports whether the timer was started and has not yet run out.
func (t *Timer) Active() bool {
	return t.running
}

func (t *Timer) IsReady() bool {
	return !t.running && t.currentTime >= t.targetTime
}

// Progress is the elapsed fraction in [0,1].
func (t *Timer) Progress() float64 {
	if t.targetTime <= 0 {
		return 1
	}
	return clampValue(float64(t.currentTime)/float64(t.targetTime), 0, 1)
}

func (t *Timer) Reset() {
	t.currentTime = 0
	t.running = false
}
