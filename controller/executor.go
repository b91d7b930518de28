package controller

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/meghashyamc/dreamgolf/clock"
	"github.com/meghashyamc/dreamgolf/events"
	"github.com/meghashyamc/dreamgolf/logger"
	"github.com/meghashyamc/dreamgolf/physics"
	"github.com/meghashyamc/dreamgolf/shot"
	"github.com/meghashyamc/dreamgolf/turn"
)

const minImpulse = 1e-6

// Shot is the record of one executed shot.
type Shot struct {
	ID         string
	Parameters shot.Parameters
	Impulse    mgl64.Vec3
	Torque     mgl64.Vec3
	Super      bool
}

// ShotExecutor turns the parameter snapshot into an impulse and a torque
// impulse on the ball, then hands the turn over to ROLLING.
type ShotExecutor struct {
	machine   *turn.Machine
	store     *shot.Store
	body      physics.Body
	scheduler *clock.Scheduler
	bus       *events.Bus
	logger    logger.Logger

	restore     *clock.Handle
	baseDamping float64
	damped      bool
}

// NewShotExecutor panics when body is nil: the executor is useless without a
// ball and a missing one is a wiring bug.
func NewShotExecutor(machine *turn.Machine, store *shot.Store, body physics.Body, scheduler *clock.Scheduler, bus *events.Bus, log logger.Logger) *ShotExecutor {
	if body == nil {
		panic("controller: shot executor needs a physics body")
	}
	e := &ShotExecutor{
		machine:   machine,
		store:     store,
		body:      body,
		scheduler: scheduler,
		bus:       bus,
		logger:    log,
	}
	machine.OnEnter(turn.Idle, func(turn.Phase) { e.RestoreDamping() })
	return e
}

// Execute fires the shot. Outside CHARGING it returns ErrWrongPhase and does
// nothing; a shot without usable power returns ErrDegenerateShot and leaves
// the turn in CHARGING.
func (e *ShotExecutor) Execute() (Shot, error) {
	if !e.machine.Is(turn.Charging) {
		e.logger.Debug("shot ignored out of phase", "phase", e.machine.State().String())
		return Shot{}, ErrWrongPhase
	}

	params := e.store.Snapshot()
	tuning := e.store.Tuning()
	impulse := params.ShotVector(tuning)
	if params.Power < tuning.MinExecutablePower || impulse.Len() < minImpulse {
		e.logger.Info("shot refused", "power", params.Power, "impulse", impulse.Len())
		return Shot{}, fmt.Errorf("power %.3f: %w", params.Power, ErrDegenerateShot)
	}

	s := Shot{
		ID:         uuid.NewString(),
		Parameters: params,
		Impulse:    impulse,
		Torque:     params.SpinTorque(tuning),
		Super:      params.IsSuperShot(tuning),
	}

	if e.body.IsSleeping() {
		e.body.WakeUp()
	}
	e.body.ApplyImpulse(s.Impulse)

	if s.Super {
		e.body.SetAngularVelocity(mgl64.Vec3{})
		s.Torque = s.Torque.Mul(tuning.SuperShotSpinFactor)
		e.reduceDamping(tuning)
	}
	if s.Torque.Len() > 0 {
		e.body.ApplyTorqueImpulse(s.Torque)
	}

	e.logger.Info("shot executed",
		"id", s.ID,
		"type", params.ShotType.String(),
		"spin", params.SpinType.String(),
		"power", params.Power,
		"super", s.Super,
	)
	if e.bus != nil {
		e.bus.Publish(events.ShotExecuted{ID: s.ID, Impulse: s.Impulse, Torque: s.Torque, Super: s.Super})
	}
	e.machine.SetState(turn.Rolling)
	return s, nil
}

func (e *ShotExecutor) reduceDamping(tuning shot.Tuning) {
	if !e.damped {
		e.baseDamping = e.body.LinearDamping()
		e.damped = true
	}
	e.body.SetLinearDamping(tuning.SuperShotDamping)
	e.restore.Cancel()
	e.restore = e.scheduler.After(tuning.SuperShotDuration, e.RestoreDamping)
}

// RestoreDamping undoes a super shot's reduced damping. It is safe to call at
// any time.
func (e *ShotExecutor) RestoreDamping() {
	e.restore.Cancel()
	e.restore = nil
	if !e.damped {
		return
	}
	e.body.SetLinearDamping(e.baseDamping)
	e.damped = false
}
