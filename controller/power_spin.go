package controller

import (
	"time"

	"github.com/meghashyamc/dreamgolf/clock"
	"github.com/meghashyamc/dreamgolf/logger"
	"github.com/meghashyamc/dreamgolf/shot"
	"github.com/meghashyamc/dreamgolf/turn"
)

// SpinChange is one spin input. Toggle steps through the shot type's menu,
// Select requests Spin directly (subject to the store's spin rules).
// IntensityDelta is applied afterwards.
type SpinChange struct {
	Toggle         bool
	Select         bool
	Spin           shot.SpinType
	IntensityDelta float64
}

// PowerSpinController runs CHARGING. The meter is driven by the game clock,
// never by frame count, and loops up and down until the shot is taken.
type PowerSpinController struct {
	machine *turn.Machine
	store   *shot.Store
	clock   clock.Clock
	logger  logger.Logger

	Panel     Panel
	charging  bool
	startedAt time.Duration
}

func NewPowerSpinController(machine *turn.Machine, store *shot.Store, c clock.Clock, log logger.Logger) *PowerSpinController {
	p := &PowerSpinController{
		machine: machine,
		store:   store,
		clock:   c,
		logger:  log,
		Panel:   Panel{Name: "power"},
	}
	// the meter survives a pause: the clock stops with it
	machine.OnEnter(turn.Charging, func(from turn.Phase) {
		if from != turn.Paused {
			p.charging = false
			p.store.SetPower(0)
		}
		p.Panel.Show()
	})
	machine.OnExit(turn.Charging, func(next turn.Phase) {
		if next != turn.Paused {
			p.charging = false
		}
		p.Panel.Hide()
	})
	// a pause that ends anywhere but CHARGING abandons the charge
	machine.OnExit(turn.Paused, func(next turn.Phase) {
		if next != turn.Charging {
			p.charging = false
		}
	})
	return p
}

// PowerAt is the meter value elapsed after the charge started: a triangle
// wave rising over one cycle and falling over the next.
func PowerAt(elapsed, cycle time.Duration) float64 {
	if cycle <= 0 || elapsed <= 0 {
		return 0
	}
	pos := elapsed % (2 * cycle)
	if pos <= cycle {
		return float64(pos) / float64(cycle)
	}
	return 2 - float64(pos)/float64(cycle)
}

// Start begins the meter. A second Start while charging is ignored.
func (p *PowerSpinController) Start() bool {
	if !active(p.machine, turn.Charging, "power start", p.logger) || p.charging {
		return false
	}
	p.charging = true
	p.startedAt = p.clock.Now()
	return true
}

func (p *PowerSpinController) Charging() bool {
	return p.charging && p.machine.Is(turn.Charging)
}

// Update writes the current meter value into the store.
func (p *PowerSpinController) Update() {
	if !p.Charging() {
		return
	}
	p.sample()
}

// Stop freezes the meter at the current clock reading and returns the power.
func (p *PowerSpinController) Stop() float64 {
	if p.Charging() {
		p.sample()
		p.charging = false
	}
	return p.store.Snapshot().Power
}

func (p *PowerSpinController) sample() {
	elapsed := p.clock.Now() - p.startedAt
	p.store.SetPower(PowerAt(elapsed, p.store.Tuning().PowerCycle))
}

func (p *PowerSpinController) ChangeSpin(c SpinChange) bool {
	if !active(p.machine, turn.Charging, "spin change", p.logger) {
		return false
	}
	changed := false
	if c.Toggle {
		changed = p.store.CycleSpin()
	} else if c.Select {
		changed = p.store.SetSpinType(c.Spin)
	}
	if c.IntensityDelta != 0 {
		changed = p.store.AddSpinIntensity(c.IntensityDelta) || changed
	}
	return changed
}

func (p *PowerSpinController) IsSuperShot() bool {
	return p.store.IsSuperShot()
}

func (p *PowerSpinController) Back() bool {
	if !active(p.machine, turn.Charging, "power back", p.logger) {
		return false
	}
	return p.machine.SetState(turn.ShotPanel)
}
