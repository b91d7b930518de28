package session

import (
	"errors"
	"time"

	"github.com/meghashyamc/dreamgolf/controller"
	"github.com/meghashyamc/dreamgolf/events"
	"github.com/meghashyamc/dreamgolf/turn"
)

// StartTurn leaves IDLE for shot type selection. It is refused while a
// completed hole is waiting to advance or after the last hole.
func (s *Session) StartTurn() bool {
	if s.completed || s.finished {
		return false
	}
	if !s.machine.Is(turn.Idle) {
		s.logger.Debug("input ignored out of phase", "input", "start turn", "phase", s.machine.State().String())
		return false
	}
	return s.machine.SetState(turn.SelectingType)
}

func (s *Session) ShotTypeToggle() bool  { return s.selector.Toggle() }
func (s *Session) ShotTypeConfirm() bool { return s.selector.Confirm() }

func (s *Session) AimDelta(direction int, dt time.Duration) bool {
	return s.aim.Rotate(direction, dt)
}

func (s *Session) AimConfirm() bool   { return s.aim.Confirm() }
func (s *Session) GuideToggle() bool  { return s.guide.Toggle() }
func (s *Session) GuideConfirm() bool { return s.guide.Confirm() }
func (s *Session) PowerStart() bool   { return s.power.Start() }

func (s *Session) SpinChange(c controller.SpinChange) bool {
	return s.power.ChangeSpin(c)
}

// ShotExecute stops the meter and takes the shot. A refused shot leaves the
// turn in CHARGING with the meter stopped, ready for another PowerStart.
func (s *Session) ShotExecute() error {
	if s.machine.Is(turn.Charging) {
		s.power.Stop()
	}
	if _, err := s.executor.Execute(); err != nil {
		if errors.Is(err, controller.ErrDegenerateShot) {
			s.logger.Info("shot refused", "err", err.Error())
		}
		return err
	}
	s.strokes++
	return nil
}

// ShotCancel abandons the shot being set up and returns to IDLE. A pause
// taken during setup can be cancelled directly.
func (s *Session) ShotCancel() bool {
	phase := s.machine.State()
	if phase == turn.Paused {
		phase = s.machine.PausedFrom()
	}
	if !phase.IsShotSetup() {
		s.logger.Debug("input ignored out of phase", "input", "cancel", "phase", s.machine.State().String())
		return false
	}
	return s.machine.SetState(turn.Idle)
}

// Back steps the turn one phase backwards.
func (s *Session) Back() bool {
	switch s.machine.State() {
	case turn.SelectingType:
		return s.machine.SetState(turn.Idle)
	case turn.Aiming:
		return s.aim.Back()
	case turn.ShotPanel:
		return s.guide.Back()
	case turn.Charging:
		return s.power.Back()
	default:
		return false
	}
}

func (s *Session) BoostActivate() (events.BoostOutcome, bool) {
	return s.boost.Activate()
}

// TogglePause pauses any phase or resumes the paused one.
func (s *Session) TogglePause() bool {
	if s.machine.Is(turn.Paused) {
		return s.machine.Resume()
	}
	return s.machine.Pause()
}

func (s *Session) Paused() bool {
	return s.machine.Is(turn.Paused)
}
