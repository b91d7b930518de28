package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/meghashyamc/dreamgolf/config"
	"github.com/meghashyamc/dreamgolf/course"
	"github.com/meghashyamc/dreamgolf/events"
	"github.com/meghashyamc/dreamgolf/geometry"
	"github.com/meghashyamc/dreamgolf/logger"
	"github.com/meghashyamc/dreamgolf/physics"
	"github.com/meghashyamc/dreamgolf/session"
)

const (
	gdataAppName    = "dreamgolf"
	messageDuration = 2 * time.Second
	flashDuration   = 800 * time.Millisecond
)

type Game struct {
	session    *session.Session
	scoreBook  *ScoreBook
	sounds     *Sounds
	logger     logger.Logger
	bounds     physics.Bounds
	projection geometry.Projection
	width      int
	height     int

	title string

	// written by the config watcher goroutine, drained in Update
	reload chan session.Tunings

	message       string
	messageTimer  *Timer
	flashText     string
	flash         *Timer
	newBest       bool
	roundRecorded bool
}

func NewGame(cfg *config.Config, log logger.Logger) (*Game, error) {
	tunings, err := cfg.Tunings()
	if err != nil {
		return nil, fmt.Errorf("invalid tunings: %w", err)
	}

	c, err := course.Load(cfg.GetCoursePath())
	if err != nil {
		log.Warn("failed to load course, using the practice green", "path", cfg.GetCoursePath(), "err", err.Error())
		c = course.Default()
	}

	s, err := session.New(session.Options{Course: c, Tunings: tunings, Logger: log})
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	var sounds *Sounds
	if cfg.GetAudioEnabled() {
		sounds = NewSounds(log)
	}

	g := newGame(s, openScoreBook(cfg, c.Name, log), sounds, log, cfg.GetWindowWidth(), cfg.GetWindowHeight(), tunings.Physics.Bounds)
	g.title = cfg.GetWindowTitle()

	g.logger.Info("game initialized", "course", c.Name, "holes", len(c.Holes), "par", c.TotalPar())
	return g, nil
}

// openScoreBook falls back to an in-memory book when the data directory
// cannot be opened.
func openScoreBook(cfg *config.Config, courseName string, log logger.Logger) *ScoreBook {
	appName := cfg.GetDataDir()
	if len(appName) == 0 {
		appName = gdataAppName
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Warn("score storage unavailable, scores will not be saved", "err", err.Error())
		manager = nil
	}
	return NewScoreBook(manager, courseName, log)
}

func newGame(s *session.Session, book *ScoreBook, sounds *Sounds, log logger.Logger, width, height int, bounds physics.Bounds) *Game {
	g := &Game{
		bounds:       bounds,
		projection:   newProjection(bounds, width, height),
		session:      s,
		scoreBook:    book,
		sounds:       sounds,
		logger:       log,
		width:        width,
		height:       height,
		reload:       make(chan session.Tunings, 1),
		messageTimer: NewTimer(messageDuration),
		flash:        NewTimer(flashDuration),
	}
	g.subscribe()
	return g
}

func (g *Game) subscribe() {
	bus := g.session.Bus()

	events.Subscribe(bus, func(events.ShotExecuted) {
		g.sounds.Play(CueShot)
	})
	events.Subscribe(bus, func(events.BallBounced) {
		g.sounds.Play(CueBounce)
	})
	events.Subscribe(bus, func(e events.BoostWindowClosed) {
		switch e.Outcome {
		case events.BoostPerfect:
			g.flashText = "PERFECT!"
			g.sounds.Play(CueBoostPerfect)
		case events.BoostPartial:
			g.flashText = fmt.Sprintf("Boost %d%%", int(e.Factor*100))
			g.sounds.Play(CueBoostPartial)
		default:
			return
		}
		g.flash.Start()
	})
	events.Subscribe(bus, func(e events.HoleCompleted) {
		g.sounds.Play(CueHole)
		best, err := g.scoreBook.RecordHole(e.Hole, e.Name, e.Par, e.Strokes)
		if err != nil {
			g.logger.Error("failed to record hole", "hole", e.Hole, "err", err.Error())
		}
		g.newBest = best
		g.message = holeMessage(e.Strokes, e.Par)
		g.messageTimer.Start()
	})
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(g.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

// RequestReload queues tunings for the game loop to apply on its next tick.
// Safe to call from any goroutine; only the latest request is kept.
func (g *Game) RequestReload(t session.Tunings) {
	for {
		select {
		case g.reload <- t:
			return
		default:
		}
		select {
		case <-g.reload:
		default:
		}
	}
}

func (g *Game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())
	g.reloadTunings()
	for _, a := range readActions() {
		g.dispatch(a, dt)
	}
	g.tick(dt)
	return nil
}

func (g *Game) tick(dt time.Duration) {
	g.session.Update(dt)
	if !g.session.Paused() {
		g.messageTimer.Update(dt)
		g.flash.Update(dt)
	}
	if g.session.Finished() && !g.roundRecorded {
		g.recordRound()
	}
}

func (g *Game) reloadTunings() {
	select {
	case t := <-g.reload:
		g.session.ApplyTunings(t)
		g.logger.Info("tunings reloaded")
	default:
	}
}

func (g *Game) recordRound() {
	g.roundRecorded = true
	total := g.session.TotalStrokes()
	par := g.session.Course().TotalPar()
	round, err := g.scoreBook.RecordRound(total, par, time.Now())
	if err != nil {
		g.logger.Error("failed to record round", "err", err.Error())
		return
	}
	g.logger.Info("round recorded", "id", round.ID, "strokes", total, "par", par)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

// holeMessage names the score relative to par the way golfers do.
func holeMessage(strokes, par int) string {
	if strokes == 1 {
		return "Hole in one!"
	}
	switch strokes - par {
	case -3:
		return "Albatross!"
	case -2:
		return "Eagle!"
	case -1:
		return "Birdie!"
	case 0:
		return "Par"
	case 1:
		return "Bogey"
	case 2:
		return "Double bogey"
	}
	if strokes < par {
		return fmt.Sprintf("%d under par!", par-strokes)
	}
	return fmt.Sprintf("%d over par", strokes-par)
}
