package game

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/meghashyamc/dreamgolf/controller"
	"github.com/meghashyamc/dreamgolf/events"
	"github.com/meghashyamc/dreamgolf/shot"
	"github.com/meghashyamc/dreamgolf/turn"
)

const intensityStep = 0.25

// Action is one player intent, independent of the key that produced it.
type Action int

const (
	ActionConfirm Action = iota
	ActionToggle
	ActionUp
	ActionDown
	ActionAimLeft
	ActionAimRight
	ActionSpinLeft
	ActionSpinRight
	ActionIntensityUp
	ActionIntensityDown
	ActionBack
	ActionCancel
	ActionPause
	ActionRestart
)

var pressBindings = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeyEnter, ActionConfirm},
	{ebiten.KeySpace, ActionConfirm},
	{ebiten.KeyTab, ActionToggle},
	{ebiten.KeyArrowUp, ActionUp},
	{ebiten.KeyArrowDown, ActionDown},
	{ebiten.KeyA, ActionSpinLeft},
	{ebiten.KeyD, ActionSpinRight},
	{ebiten.KeyW, ActionIntensityUp},
	{ebiten.KeyS, ActionIntensityDown},
	{ebiten.KeyBackspace, ActionBack},
	{ebiten.KeyEscape, ActionCancel},
	{ebiten.KeyP, ActionPause},
	{ebiten.KeyR, ActionRestart},
}

// readActions collects this tick's actions: key presses fire once, aim keys
// repeat while held.
func readActions() []Action {
	var actions []Action
	for _, b := range pressBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			actions = append(actions, b.action)
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		actions = append(actions, ActionAimLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		actions = append(actions, ActionAimRight)
	}
	return actions
}

// dispatch maps an action onto the session for the current phase. The
// session itself ignores anything out of phase, so this only picks the call.
func (g *Game) dispatch(a Action, dt time.Duration) {
	s := g.session
	phase := s.State()

	switch a {
	case ActionConfirm:
		g.confirm(phase)
	case ActionToggle:
		switch phase {
		case turn.SelectingType:
			s.ShotTypeToggle()
		case turn.ShotPanel:
			s.GuideToggle()
		case turn.Charging:
			s.SpinChange(controller.SpinChange{Toggle: true})
		}
	case ActionUp, ActionDown:
		switch phase {
		case turn.SelectingType:
			s.ShotTypeToggle()
		case turn.ShotPanel:
			s.GuideToggle()
		case turn.Charging:
			spin := shot.SpinTop
			if a == ActionDown {
				spin = shot.SpinBack
			}
			s.SpinChange(controller.SpinChange{Select: true, Spin: spin})
		}
	case ActionAimLeft:
		s.AimDelta(-1, dt)
	case ActionAimRight:
		s.AimDelta(1, dt)
	case ActionSpinLeft:
		s.SpinChange(controller.SpinChange{Select: true, Spin: shot.SpinLeft})
	case ActionSpinRight:
		s.SpinChange(controller.SpinChange{Select: true, Spin: shot.SpinRight})
	case ActionIntensityUp:
		s.SpinChange(controller.SpinChange{IntensityDelta: intensityStep})
	case ActionIntensityDown:
		s.SpinChange(controller.SpinChange{IntensityDelta: -intensityStep})
	case ActionBack:
		s.Back()
	case ActionCancel:
		s.ShotCancel()
	case ActionPause:
		s.TogglePause()
	case ActionRestart:
		if s.Finished() && s.Restart() {
			g.roundRecorded = false
		}
	}
}

func (g *Game) confirm(phase turn.Phase) {
	s := g.session
	switch phase {
	case turn.Idle:
		s.StartTurn()
	case turn.SelectingType:
		s.ShotTypeConfirm()
	case turn.Aiming:
		s.AimConfirm()
	case turn.ShotPanel:
		s.GuideConfirm()
	case turn.Charging:
		if !s.PowerSpin().Charging() {
			s.PowerStart()
			return
		}
		if err := s.ShotExecute(); err != nil && errors.Is(err, controller.ErrDegenerateShot) {
			g.message = "Too soft! Charge again"
			g.messageTimer.Start()
		}
	case turn.Rolling, turn.BoostReady:
		if outcome, ok := s.BoostActivate(); ok && outcome == events.BoostMissed {
			g.flashText = "Too late"
			g.flash.Start()
			g.sounds.Play(CueBoostMissed)
		}
	}
}
