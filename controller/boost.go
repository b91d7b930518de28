package controller

import (
	"time"

	"github.com/meghashyamc/dreamgolf/clock"
	"github.com/meghashyamc/dreamgolf/events"
	"github.com/meghashyamc/dreamgolf/geometry"
	"github.com/meghashyamc/dreamgolf/logger"
	"github.com/meghashyamc/dreamgolf/physics"
	"github.com/meghashyamc/dreamgolf/turn"
)

// BoostWindow is the open chance to boost off the last qualifying bounce.
type BoostWindow struct {
	Start time.Duration
	Speed float64
}

// BounceBoostController opens a timing window on each qualifying bounce while
// the ball rolls and grades the player's activation against it.
type BounceBoostController struct {
	machine   *turn.Machine
	body      physics.Body
	clock     clock.Clock
	scheduler *clock.Scheduler
	bus       *events.Bus
	logger    logger.Logger
	tuning    BoostTuning

	Panel       Panel
	window      *BoostWindow
	decay       *clock.Handle
	lastOutcome events.BoostOutcome
	lastClosed  time.Duration
	graded      bool
}

func NewBounceBoostController(machine *turn.Machine, body physics.Body, c clock.Clock, scheduler *clock.Scheduler, bus *events.Bus, tuning BoostTuning, log logger.Logger) *BounceBoostController {
	if body == nil {
		panic("controller: boost controller needs a physics body")
	}
	b := &BounceBoostController{
		machine:   machine,
		body:      body,
		clock:     c,
		scheduler: scheduler,
		bus:       bus,
		logger:    log,
		tuning:    tuning,
		Panel:     Panel{Name: "boost"},
	}
	// leaving BOOST_READY any other way than through Activate or the decay
	// timer (stop, cancel, pause) loses the window
	machine.OnExit(turn.BoostReady, func(turn.Phase) {
		if b.window != nil {
			b.close(events.BoostMissed, 0)
		}
	})
	return b
}

func (b *BounceBoostController) Tuning() BoostTuning {
	return b.tuning
}

func (b *BounceBoostController) SetTuning(t BoostTuning) {
	b.tuning = t
}

// Window returns the open window, if any.
func (b *BounceBoostController) Window() (BoostWindow, bool) {
	if b.window == nil {
		return BoostWindow{}, false
	}
	return *b.window, true
}

// LastOutcome reports how the most recent window closed and when.
func (b *BounceBoostController) LastOutcome() (events.BoostOutcome, time.Duration, bool) {
	return b.lastOutcome, b.lastClosed, b.graded
}

// OnBounce reacts to a ground bounce at the given speed. A qualifying bounce
// while rolling opens a window; one while a window is open replaces it.
func (b *BounceBoostController) OnBounce(speed float64) bool {
	phase := b.machine.State()
	if phase != turn.Rolling && phase != turn.BoostReady {
		b.logger.Debug("bounce ignored out of phase", "phase", phase.String(), "speed", speed)
		return false
	}
	if speed <= b.tuning.MinBounceSpeed {
		return false
	}

	b.decay.Cancel()
	b.window = &BoostWindow{Start: b.clock.Now(), Speed: speed}
	if phase == turn.Rolling && !b.machine.SetState(turn.BoostReady) {
		b.window = nil
		return false
	}
	b.Panel.Show()
	b.decay = b.scheduler.After(b.tuning.DisplayDuration, b.expire)

	b.logger.Debug("boost window opened", "speed", speed)
	if b.bus != nil {
		b.bus.Publish(events.BoostWindowOpened{Speed: speed, Display: b.tuning.DisplayDuration})
	}
	return true
}

func (b *BounceBoostController) expire() {
	if !b.machine.Is(turn.BoostReady) || b.window == nil {
		return
	}
	b.close(events.BoostMissed, 0)
	b.machine.SetState(turn.Rolling)
}

// Activate grades the activation against the open window and applies a boost
// impulse along the current velocity scaled by the grade.
func (b *BounceBoostController) Activate() (events.BoostOutcome, bool) {
	if !b.machine.Is(turn.BoostReady) || b.window == nil {
		b.logger.Debug("boost ignored out of phase", "phase", b.machine.State().String())
		return events.BoostMissed, false
	}

	outcome, factor := b.tuning.Score(b.clock.Now() - b.window.Start)
	if factor > 0 {
		dir := geometry.Normalize(b.body.LinearVelocity())
		if dir.Len() > 0 {
			if b.body.IsSleeping() {
				b.body.WakeUp()
			}
			b.body.ApplyImpulse(dir.Mul(b.tuning.Strength * factor))
		}
	}
	b.close(outcome, factor)
	b.machine.SetState(turn.Rolling)
	return outcome, true
}

// OnStop ends the shot when the ball comes to rest.
func (b *BounceBoostController) OnStop() bool {
	phase := b.machine.State()
	if phase != turn.Rolling && phase != turn.BoostReady {
		return false
	}
	return b.machine.SetState(turn.Idle)
}

func (b *BounceBoostController) close(outcome events.BoostOutcome, factor float64) {
	now := b.clock.Now()
	elapsed := now - b.window.Start

	b.decay.Cancel()
	b.decay = nil
	b.window = nil
	b.Panel.Hide()
	b.lastOutcome = outcome
	b.lastClosed = now
	b.graded = true

	b.logger.Info("boost window closed", "outcome", outcome.String(), "factor", factor, "elapsed", elapsed.String())
	if b.bus != nil {
		b.bus.Publish(events.BoostWindowClosed{Outcome: outcome, Factor: factor, Elapsed: elapsed})
	}
}
