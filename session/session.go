// Package session owns one game of golf: it wires the turn machine, the shot
// parameters, the phase controllers and the physics world together and is
// the only surface the input layer talks to.
package session

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/meghashyamc/dreamgolf/clock"
	"github.com/meghashyamc/dreamgolf/controller"
	"github.com/meghashyamc/dreamgolf/course"
	"github.com/meghashyamc/dreamgolf/events"
	"github.com/meghashyamc/dreamgolf/logger"
	"github.com/meghashyamc/dreamgolf/physics"
	"github.com/meghashyamc/dreamgolf/shot"
	"github.com/meghashyamc/dreamgolf/trajectory"
	"github.com/meghashyamc/dreamgolf/turn"
)

// World is the physics world the session steps: a ball body plus the
// callbacks and reset the game loop needs.
type World interface {
	physics.Body
	Step(dt time.Duration)
	Reset(x, z float64)
	SetTuning(t physics.Tuning)
	OnBounce(fn func(physics.BounceInfo))
	OnStop(fn func(mgl64.Vec3))
}

type pauser interface {
	Pause()
	Resume()
}

type Options struct {
	Clock   clock.Clock // defaults to a pausable wall clock
	Course  *course.Course
	Tunings Tunings
	World   World // defaults to a physics.Ball
	Logger  logger.Logger
}

type Session struct {
	clock     clock.Clock
	scheduler *clock.Scheduler
	bus       *events.Bus
	machine   *turn.Machine
	store     *shot.Store
	simulator *trajectory.Simulator
	world     World
	course    *course.Course
	logger    logger.Logger

	tunings Tunings
	pending *Tunings

	selector *controller.ShotTypeSelector
	aim      *controller.AimController
	guide    *controller.GuidePanelController
	power    *controller.PowerSpinController
	executor *controller.ShotExecutor
	boost    *controller.BounceBoostController

	previewDirty bool
	preview      trajectory.Result

	hole      int
	strokes   int
	scores    []int
	holeDone  *clock.Handle
	completed bool
	finished  bool
}

func New(opts Options) (*Session, error) {
	if opts.Course == nil {
		return nil, errors.New("session needs a course")
	}
	if err := opts.Course.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewPausable()
	}
	if opts.World == nil {
		tee := opts.Course.Holes[0].Tee
		opts.World = physics.NewBall(opts.Tunings.Physics, tee.X, tee.Z)
	}
	log := opts.Logger

	s := &Session{
		clock:     opts.Clock,
		scheduler: clock.NewScheduler(opts.Clock),
		bus:       events.NewBus(),
		store:     shot.NewStore(opts.Tunings.Shot),
		simulator: trajectory.NewSimulator(opts.Tunings.previewTuning(), opts.Tunings.Shot),
		world:     opts.World,
		course:    opts.Course,
		logger:    log,
		tunings:   opts.Tunings,
		scores:    make([]int, len(opts.Course.Holes)),
	}
	s.machine = turn.NewMachine(s.bus, log)

	// turn resets run before any controller hook; resuming from a pause is
	// not a new turn
	s.machine.OnEnter(turn.Idle, s.onIdle)
	s.machine.OnEnter(turn.SelectingType, func(from turn.Phase) {
		if from != turn.Paused {
			s.store.Reset()
		}
	})
	s.machine.OnEnter(turn.Paused, func(turn.Phase) { s.pauseClock() })
	s.machine.OnExit(turn.Paused, func(turn.Phase) { s.resumeClock() })

	delay := opts.Tunings.UI.PanelDelay
	s.selector = controller.NewShotTypeSelector(s.machine, s.store, s.scheduler, delay, log)
	s.aim = controller.NewAimController(s.machine, s.store, log)
	s.guide = controller.NewGuidePanelController(s.machine, s.store, s.scheduler, delay, log)
	s.power = controller.NewPowerSpinController(s.machine, s.store, s.clock, log)
	s.executor = controller.NewShotExecutor(s.machine, s.store, s.world, s.scheduler, s.bus, log)
	s.boost = controller.NewBounceBoostController(s.machine, s.world, s.clock, s.scheduler, s.bus, opts.Tunings.Boost, log)

	s.store.OnChange(func(p shot.Parameters) {
		s.previewDirty = true
		s.bus.Publish(events.ParametersChanged{Snapshot: p})
	})
	events.Subscribe(s.bus, func(e events.PhaseChanged) { s.previewDirty = true })

	s.world.OnBounce(s.onBounce)
	s.world.OnStop(s.onStop)

	s.loadHole(0)
	return s, nil
}

func (s *Session) Bus() *events.Bus                               { return s.bus }
func (s *Session) State() turn.Phase                              { return s.machine.State() }
func (s *Session) Parameters() shot.Parameters                    { return s.store.Snapshot() }
func (s *Session) ShotTuning() shot.Tuning                        { return s.store.Tuning() }
func (s *Session) Preview() trajectory.Result                     { return s.preview }
func (s *Session) Ball() physics.Body                             { return s.world }
func (s *Session) Course() *course.Course                         { return s.course }
func (s *Session) HoleIndex() int                                 { return s.hole }
func (s *Session) Hole() course.Hole                              { return s.course.Holes[s.hole] }
func (s *Session) Strokes() int                                   { return s.strokes }
func (s *Session) Finished() bool                                 { return s.finished }
func (s *Session) Now() time.Duration                             { return s.clock.Now() }
func (s *Session) ShotTypeSelector() *controller.ShotTypeSelector { return s.selector }
func (s *Session) Aim() *controller.AimController                 { return s.aim }
func (s *Session) Guide() *controller.GuidePanelController        { return s.guide }
func (s *Session) PowerSpin() *controller.PowerSpinController     { return s.power }
func (s *Session) Boost() *controller.BounceBoostController       { return s.boost }

// Scores returns strokes taken per completed hole, zero for holes not yet
// played.
func (s *Session) Scores() []int {
	out := make([]int, len(s.scores))
	copy(out, s.scores)
	return out
}

// Update advances one tick: timers, the power meter, the physics world and
// finally the preview, so the preview reflects this tick's input.
func (s *Session) Update(dt time.Duration) {
	if s.machine.Is(turn.Paused) {
		return
	}
	s.scheduler.Update()
	s.power.Update()
	if !s.world.IsSleeping() {
		s.world.Step(dt)
	}
	s.refreshPreview()
}

func (s *Session) refreshPreview() {
	if !s.previewDirty {
		return
	}
	s.previewDirty = false

	phase := s.machine.State()
	if phase != turn.Aiming && phase != turn.ShotPanel && phase != turn.Charging {
		s.preview = trajectory.Result{}
		return
	}
	full := s.simulator.SimulateParameters(s.world.Position(), s.store.Snapshot())
	s.preview = full.Clip(s.store.GuideDistance())
	s.bus.Publish(events.TrajectoryReady{Result: s.preview})
}

// ApplyTunings swaps in reloaded tunables. They take effect at the start of
// the next turn so a shot in flight keeps the constants it was aimed with.
func (s *Session) ApplyTunings(t Tunings) {
	if s.machine.Is(turn.Idle) && s.world.IsSleeping() {
		s.applyTunings(t)
		return
	}
	s.pending = &t
}

func (s *Session) applyTunings(t Tunings) {
	s.tunings = t
	s.store.SetTuning(t.Shot)
	s.simulator = trajectory.NewSimulator(t.previewTuning(), t.Shot)
	s.boost.SetTuning(t.Boost)
	s.world.SetTuning(t.Physics)
	s.previewDirty = true
	s.logger.Info("tunings applied")
}

func (s *Session) onIdle(from turn.Phase) {
	if !s.machine.Resuming(from, turn.Idle) {
		s.store.Reset()
	}
	if s.pending != nil {
		t := *s.pending
		s.pending = nil
		s.applyTunings(t)
	}
}

func (s *Session) pauseClock() {
	if p, ok := s.clock.(pauser); ok {
		p.Pause()
	}
}

func (s *Session) resumeClock() {
	if p, ok := s.clock.(pauser); ok {
		p.Resume()
	}
}

func (s *Session) onBounce(info physics.BounceInfo) {
	s.bus.Publish(events.BallBounced{Position: info.Position, Velocity: info.Velocity, Speed: info.SpeedAfter})
	s.boost.OnBounce(info.SpeedAfter)
}

func (s *Session) onStop(pos mgl64.Vec3) {
	s.bus.Publish(events.BallStopped{Position: pos})
	if !s.boost.OnStop() {
		return
	}
	if s.Hole().InCup(pos) {
		s.completeHole()
	}
}
