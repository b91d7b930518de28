package controller

import (
	"time"

	"github.com/meghashyamc/dreamgolf/clock"
	"github.com/meghashyamc/dreamgolf/logger"
	"github.com/meghashyamc/dreamgolf/shot"
	"github.com/meghashyamc/dreamgolf/turn"
)

// ShotTypeSelector runs SELECTING_TYPE: grounder or fly.
type ShotTypeSelector struct {
	machine   *turn.Machine
	store     *shot.Store
	scheduler *clock.Scheduler
	logger    logger.Logger

	Panel Panel
	delay time.Duration
	show  *clock.Handle
}

// NewShotTypeSelector shows its panel delay after the phase is entered.
func NewShotTypeSelector(machine *turn.Machine, store *shot.Store, scheduler *clock.Scheduler, delay time.Duration, log logger.Logger) *ShotTypeSelector {
	s := &ShotTypeSelector{
		machine:   machine,
		store:     store,
		scheduler: scheduler,
		logger:    log,
		Panel:     Panel{Name: "shot-type"},
		delay:     delay,
	}
	machine.OnEnter(turn.SelectingType, s.enter)
	machine.OnExit(turn.SelectingType, s.exit)
	return s
}

func (s *ShotTypeSelector) enter(turn.Phase) {
	s.show.Cancel()
	s.show = showAfter(s.machine, s.scheduler, turn.SelectingType, s.delay, &s.Panel)
}

func (s *ShotTypeSelector) exit(turn.Phase) {
	s.show.Cancel()
	s.show = nil
	s.Panel.Hide()
}

func (s *ShotTypeSelector) Toggle() bool {
	if !active(s.machine, turn.SelectingType, "shot type toggle", s.logger) {
		return false
	}
	s.store.ToggleShotType()
	return true
}

func (s *ShotTypeSelector) Select(t shot.ShotType) bool {
	if !active(s.machine, turn.SelectingType, "shot type select", s.logger) {
		return false
	}
	s.store.SetShotType(t)
	return true
}

func (s *ShotTypeSelector) Confirm() bool {
	if !active(s.machine, turn.SelectingType, "shot type confirm", s.logger) {
		return false
	}
	return s.machine.SetState(turn.Aiming)
}

// active reports whether the machine is in phase, logging the dropped input
// otherwise.
func active(machine *turn.Machine, phase turn.Phase, input string, log logger.Logger) bool {
	if machine.Is(phase) {
		return true
	}
	log.Debug("input ignored out of phase", "input", input, "phase", machine.State().String(), "expected", phase.String())
	return false
}

// showAfter schedules panel to show once delay has passed, provided the
// machine is still in phase by then.
func showAfter(machine *turn.Machine, scheduler *clock.Scheduler, phase turn.Phase, delay time.Duration, panel *Panel) *clock.Handle {
	if delay <= 0 {
		panel.Show()
		return nil
	}
	return scheduler.After(delay, func() {
		if machine.Is(phase) {
			panel.Show()
		}
	})
}
