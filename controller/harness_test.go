package controller

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/meghashyamc/dreamgolf/clock"
	"github.com/meghashyamc/dreamgolf/events"
	"github.com/meghashyamc/dreamgolf/logger"
	"github.com/meghashyamc/dreamgolf/physics"
	"github.com/meghashyamc/dreamgolf/shot"
	"github.com/meghashyamc/dreamgolf/turn"
)

const panelDelay = 150 * time.Millisecond

// fakeBody records what the core does to the ball. Like a real engine it
// drops impulses while asleep.
type fakeBody struct {
	position mgl64.Vec3
	velocity mgl64.Vec3
	angular  mgl64.Vec3
	damping  float64
	sleeping bool
	wakes    int
	impulses []mgl64.Vec3
	torques  []mgl64.Vec3
	dropped  int
}

var _ physics.Body = (*fakeBody)(nil)

func newFakeBody() *fakeBody {
	return &fakeBody{damping: 0.15, sleeping: true}
}

func (f *fakeBody) Position() mgl64.Vec3            { return f.position }
func (f *fakeBody) LinearVelocity() mgl64.Vec3      { return f.velocity }
func (f *fakeBody) AngularVelocity() mgl64.Vec3     { return f.angular }
func (f *fakeBody) SetAngularVelocity(w mgl64.Vec3) { f.angular = w }
func (f *fakeBody) IsSleeping() bool                { return f.sleeping }
func (f *fakeBody) LinearDamping() float64          { return f.damping }
func (f *fakeBody) SetLinearDamping(d float64)      { f.damping = d }

func (f *fakeBody) WakeUp() {
	f.sleeping = false
	f.wakes++
}

func (f *fakeBody) ApplyImpulse(j mgl64.Vec3) {
	if f.sleeping {
		f.dropped++
		return
	}
	f.impulses = append(f.impulses, j)
	f.velocity = f.velocity.Add(j)
}

func (f *fakeBody) ApplyTorqueImpulse(t mgl64.Vec3) {
	if f.sleeping {
		f.dropped++
		return
	}
	f.torques = append(f.torques, t)
	f.angular = f.angular.Add(t)
}

type harness struct {
	clock     *clock.Manual
	scheduler *clock.Scheduler
	bus       *events.Bus
	machine   *turn.Machine
	store     *shot.Store
	body      *fakeBody

	selector *ShotTypeSelector
	aim      *AimController
	guide    *GuidePanelController
	power    *PowerSpinController
	executor *ShotExecutor
	boost    *BounceBoostController
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := logger.Discard()
	h := &harness{
		clock: clock.NewManual(),
		bus:   events.NewBus(),
		store: shot.NewStore(shot.DefaultTuning()),
		body:  newFakeBody(),
	}
	h.scheduler = clock.NewScheduler(h.clock)
	h.machine = turn.NewMachine(h.bus, log)
	h.selector = NewShotTypeSelector(h.machine, h.store, h.scheduler, panelDelay, log)
	h.aim = NewAimController(h.machine, h.store, log)
	h.guide = NewGuidePanelController(h.machine, h.store, h.scheduler, panelDelay, log)
	h.power = NewPowerSpinController(h.machine, h.store, h.clock, log)
	h.executor = NewShotExecutor(h.machine, h.store, h.body, h.scheduler, h.bus, log)
	h.boost = NewBounceBoostController(h.machine, h.body, h.clock, h.scheduler, h.bus, DefaultBoostTuning(), log)
	return h
}

func (h *harness) advance(d time.Duration) {
	h.clock.Advance(d)
	h.scheduler.Update()
}

func (h *harness) toCharging(t *testing.T) {
	t.Helper()
	steps := []struct {
		name string
		do   func() bool
	}{
		{"start turn", func() bool { return h.machine.SetState(turn.SelectingType) }},
		{"confirm type", h.selector.Confirm},
		{"confirm aim", h.aim.Confirm},
		{"confirm guide", h.guide.Confirm},
	}
	for _, s := range steps {
		if !s.do() {
			t.Fatalf("%s failed in %s", s.name, h.machine.State())
		}
	}
	if !h.machine.Is(turn.Charging) {
		t.Fatalf("got %s, want CHARGING", h.machine.State())
	}
}

// toRolling executes a full-power-ish shot.
func (h *harness) toRolling(t *testing.T) {
	t.Helper()
	h.toCharging(t)
	h.store.SetPower(0.5)
	if _, err := h.executor.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !h.machine.Is(turn.Rolling) {
		t.Fatalf("got %s, want ROLLING", h.machine.State())
	}
}
