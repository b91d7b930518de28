package controller

import (
	"time"

	"github.com/meghashyamc/dreamgolf/logger"
	"github.com/meghashyamc/dreamgolf/shot"
	"github.com/meghashyamc/dreamgolf/turn"
)

// AimController rotates the shot angle. It also takes fine aim while charging.
type AimController struct {
	machine *turn.Machine
	store   *shot.Store
	logger  logger.Logger

	Panel Panel
}

func NewAimController(machine *turn.Machine, store *shot.Store, log logger.Logger) *AimController {
	a := &AimController{
		machine: machine,
		store:   store,
		logger:  log,
		Panel:   Panel{Name: "aim"},
	}
	machine.OnEnter(turn.Aiming, func(turn.Phase) { a.Panel.Show() })
	machine.OnExit(turn.Aiming, func(turn.Phase) { a.Panel.Hide() })
	return a
}

// Rotate turns the aim by the configured turn rate for dt. direction is
// reduced to its sign; zero does nothing.
func (a *AimController) Rotate(direction int, dt time.Duration) bool {
	phase := a.machine.State()
	if phase != turn.Aiming && phase != turn.Charging {
		a.logger.Debug("input ignored out of phase", "input", "aim", "phase", phase.String())
		return false
	}
	if direction == 0 || dt <= 0 {
		return false
	}
	step := a.store.Tuning().AimTurnRate * dt.Seconds()
	if direction < 0 {
		step = -step
	}
	return a.store.AddAngle(step)
}

func (a *AimController) Confirm() bool {
	if !active(a.machine, turn.Aiming, "aim confirm", a.logger) {
		return false
	}
	return a.machine.SetState(turn.ShotPanel)
}

func (a *AimController) Back() bool {
	if !active(a.machine, turn.Aiming, "aim back", a.logger) {
		return false
	}
	return a.machine.SetState(turn.SelectingType)
}
