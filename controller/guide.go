package controller

import (
	"time"

	"github.com/meghashyamc/dreamgolf/clock"
	"github.com/meghashyamc/dreamgolf/logger"
	"github.com/meghashyamc/dreamgolf/shot"
	"github.com/meghashyamc/dreamgolf/turn"
)

// GuidePanelController runs SHOT_PANEL, where the preview length is chosen.
type GuidePanelController struct {
	machine   *turn.Machine
	store     *shot.Store
	scheduler *clock.Scheduler
	logger    logger.Logger

	Panel Panel
	delay time.Duration
	show  *clock.Handle
}

func NewGuidePanelController(machine *turn.Machine, store *shot.Store, scheduler *clock.Scheduler, delay time.Duration, log logger.Logger) *GuidePanelController {
	g := &GuidePanelController{
		machine:   machine,
		store:     store,
		scheduler: scheduler,
		logger:    log,
		Panel:     Panel{Name: "guide"},
		delay:     delay,
	}
	machine.OnEnter(turn.ShotPanel, func(turn.Phase) {
		g.show.Cancel()
		g.show = showAfter(machine, scheduler, turn.ShotPanel, g.delay, &g.Panel)
	})
	machine.OnExit(turn.ShotPanel, func(turn.Phase) {
		g.show.Cancel()
		g.show = nil
		g.Panel.Hide()
	})
	return g
}

func (g *GuidePanelController) Toggle() bool {
	if !active(g.machine, turn.ShotPanel, "guide toggle", g.logger) {
		return false
	}
	g.store.ToggleGuideLength()
	return true
}

func (g *GuidePanelController) SetLength(length shot.GuideLength) bool {
	if !active(g.machine, turn.ShotPanel, "guide length", g.logger) {
		return false
	}
	g.store.SetGuideLength(length)
	return true
}

func (g *GuidePanelController) Confirm() bool {
	if !active(g.machine, turn.ShotPanel, "guide confirm", g.logger) {
		return false
	}
	return g.machine.SetState(turn.Charging)
}

func (g *GuidePanelController) Back() bool {
	if !active(g.machine, turn.ShotPanel, "guide back", g.logger) {
		return false
	}
	return g.machine.SetState(turn.Aiming)
}
