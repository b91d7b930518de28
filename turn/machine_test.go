package turn

import (
	"testing"

	"github.com/meghashyamc/dreamgolf/events"
	"github.com/meghashyamc/dreamgolf/logger"
)

func newTestMachine() (*Machine, *events.Bus) {
	bus := events.NewBus()
	return NewMachine(bus, logger.Discard()), bus
}

// forcePhase walks a legal path from IDLE to p.
func forcePhase(t *testing.T, m *Machine, p Phase) {
	t.Helper()
	paths := map[Phase][]Phase{
		Idle:          {},
		SelectingType: {SelectingType},
		Aiming:        {SelectingType, Aiming},
		ShotPanel:     {SelectingType, Aiming, ShotPanel},
		Charging:      {SelectingType, Aiming, ShotPanel, Charging},
		Rolling:       {SelectingType, Aiming, ShotPanel, Charging, Rolling},
		BoostReady:    {SelectingType, Aiming, ShotPanel, Charging, Rolling, BoostReady},
		Paused:        {Paused},
	}
	for _, step := range paths[p] {
		if !m.SetState(step) {
			t.Fatalf("setup: could not enter %s from %s", step, m.State())
		}
	}
}

func TestStartsIdle(t *testing.T) {
	m, _ := newTestMachine()
	if m.State() != Idle || !m.Is(Idle) {
		t.Errorf("initial state = %s, want IDLE", m.State())
	}
}

// Every (from, to) pair succeeds exactly when the edge is in the table, and
// a rejected request leaves the phase unchanged. PAUSED only leads back to
// the phase it interrupted or to IDLE.
func TestTransitionClosure(t *testing.T) {
	check := func(t *testing.T, m *Machine, from, to Phase, legal bool) {
		t.Helper()
		ok := m.SetState(to)
		switch {
		case from == to:
			if !ok || m.State() != from {
				t.Errorf("%s -> %s self transition: ok=%v state=%s", from, to, ok, m.State())
			}
		case legal:
			if !ok || m.State() != to {
				t.Errorf("%s -> %s should succeed: ok=%v state=%s", from, to, ok, m.State())
			}
		default:
			if ok || m.State() != from {
				t.Errorf("%s -> %s should be rejected: ok=%v state=%s", from, to, ok, m.State())
			}
		}
	}

	for _, from := range AllPhases() {
		if from == Paused {
			continue
		}
		for _, to := range AllPhases() {
			m, _ := newTestMachine()
			forcePhase(t, m, from)
			check(t, m, from, to, CanTransition(from, to))
		}
	}

	resumes := map[Phase]Phase{
		Idle:          Idle,
		SelectingType: SelectingType,
		Aiming:        Aiming,
		ShotPanel:     ShotPanel,
		Charging:      Charging,
		Rolling:       Rolling,
		BoostReady:    Rolling,
	}
	for interrupted, resume := range resumes {
		for _, to := range AllPhases() {
			m, _ := newTestMachine()
			forcePhase(t, m, interrupted)
			if !m.Pause() {
				t.Fatalf("pause from %s failed", interrupted)
			}
			check(t, m, Paused, to, to == Idle || to == resume)
		}
	}
}

func TestPausedRejectsSkippingAhead(t *testing.T) {
	tests := []struct {
		interrupted Phase
		target      Phase
		legal       []Phase
	}{
		{Idle, Rolling, []Phase{Idle}},
		{ShotPanel, BoostReady, []Phase{Idle, ShotPanel}},
		{BoostReady, BoostReady, []Phase{Idle, Rolling}},
		{Charging, Rolling, []Phase{Idle, Charging}},
	}
	for _, tt := range tests {
		m, bus := newTestMachine()
		var rejected []events.TransitionRejected
		events.Subscribe(bus, func(e events.TransitionRejected) { rejected = append(rejected, e) })
		forcePhase(t, m, tt.interrupted)
		m.Pause()

		if m.SetState(tt.target) {
			t.Errorf("paused from %s: %s accepted", tt.interrupted, tt.target)
		}
		if got := m.State(); got != Paused {
			t.Errorf("paused from %s: got %s, want PAUSED", tt.interrupted, got)
		}
		if len(rejected) != 1 {
			t.Fatalf("paused from %s: got %d rejections, want 1", tt.interrupted, len(rejected))
		}
		if got := rejected[0].Legal; len(got) != len(tt.legal) {
			t.Errorf("paused from %s: legal %v, want %v", tt.interrupted, got, tt.legal)
		}
		got := m.LegalTargets()
		if len(got) != len(tt.legal) {
			t.Fatalf("paused from %s: LegalTargets %v, want %v", tt.interrupted, got, tt.legal)
		}
		for i := range got {
			if got[i] != tt.legal[i] {
				t.Errorf("paused from %s: LegalTargets[%d] = %s, want %s", tt.interrupted, i, got[i], tt.legal[i])
			}
		}
	}
}

func TestIdleCannotJumpToAiming(t *testing.T) {
	m, bus := newTestMachine()

	var rejected []events.TransitionRejected
	events.Subscribe(bus, func(e events.TransitionRejected) { rejected = append(rejected, e) })

	if m.SetState(Aiming) {
		t.Fatal("IDLE -> AIMING should be rejected")
	}
	if m.State() != Idle {
		t.Errorf("state = %s, want IDLE", m.State())
	}
	if len(rejected) != 1 {
		t.Fatalf("got %d rejection events, want 1", len(rejected))
	}
	got := rejected[0]
	if got.From != "IDLE" || got.To != "AIMING" {
		t.Errorf("rejection = %+v", got)
	}
	if len(got.Legal) != 2 || got.Legal[0] != "SELECTING_TYPE" || got.Legal[1] != "PAUSED" {
		t.Errorf("legal = %v, want [SELECTING_TYPE PAUSED]", got.Legal)
	}
}

func TestHookOrder(t *testing.T) {
	m, bus := newTestMachine()

	var order []string
	m.OnExit(Idle, func(to Phase) { order = append(order, "exit-idle-1:"+to.String()) })
	m.OnExit(Idle, func(to Phase) { order = append(order, "exit-idle-2") })
	m.OnEnter(SelectingType, func(from Phase) { order = append(order, "enter-select:"+from.String()) })
	events.Subscribe(bus, func(e events.PhaseChanged) { order = append(order, "changed:"+e.To) })

	m.SetState(SelectingType)

	want := []string{
		"exit-idle-1:SELECTING_TYPE",
		"exit-idle-2",
		"enter-select:IDLE",
		"changed:SELECTING_TYPE",
	}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestSelfTransitionRunsNoHooks(t *testing.T) {
	m, _ := newTestMachine()
	calls := 0
	m.OnExit(Idle, func(Phase) { calls++ })
	m.OnEnter(Idle, func(Phase) { calls++ })

	if !m.SetState(Idle) {
		t.Error("self transition should return true")
	}
	if calls != 0 {
		t.Errorf("hooks ran %d times, want 0", calls)
	}
}

func TestHookRequestIsQueued(t *testing.T) {
	m, _ := newTestMachine()
	forcePhase(t, m, Rolling)

	var seen []Phase
	m.OnEnter(BoostReady, func(Phase) {
		seen = append(seen, m.State())
		if !m.SetState(Rolling) {
			t.Error("queued BOOST_READY -> ROLLING should be accepted")
		}
		seen = append(seen, m.State())
	})

	m.SetState(BoostReady)

	if m.State() != Rolling {
		t.Errorf("final state = %s, want ROLLING", m.State())
	}
	if len(seen) != 2 || seen[0] != BoostReady || seen[1] != BoostReady {
		t.Errorf("state inside hook = %v, want [BOOST_READY BOOST_READY]", seen)
	}
}

func TestHookRequestValidatedAgainstEnteredPhase(t *testing.T) {
	m, _ := newTestMachine()
	m.OnExit(Idle, func(Phase) {
		if m.SetState(Charging) {
			t.Error("SELECTING_TYPE -> CHARGING should be rejected even from inside a hook")
		}
	})
	m.SetState(SelectingType)
	if m.State() != SelectingType {
		t.Errorf("state = %s, want SELECTING_TYPE", m.State())
	}
}

func TestPauseResume(t *testing.T) {
	m, _ := newTestMachine()
	forcePhase(t, m, ShotPanel)

	if !m.Pause() {
		t.Fatal("Pause failed")
	}
	if m.State() != Paused || m.PausedFrom() != ShotPanel {
		t.Fatalf("state = %s, pausedFrom = %s", m.State(), m.PausedFrom())
	}
	if !m.Pause() {
		t.Error("pausing twice should be a no-op success")
	}
	if !m.Resume() {
		t.Fatal("Resume failed")
	}
	if m.State() != ShotPanel {
		t.Errorf("resumed into %s, want SHOT_PANEL", m.State())
	}
	if m.Resume() {
		t.Error("Resume outside PAUSED should fail")
	}
}

func TestResumeFromBoostReadyGoesToRolling(t *testing.T) {
	m, _ := newTestMachine()
	forcePhase(t, m, BoostReady)
	m.Pause()
	m.Resume()
	if m.State() != Rolling {
		t.Errorf("resumed into %s, want ROLLING", m.State())
	}
}

func TestLegalTargetsSorted(t *testing.T) {
	m, _ := newTestMachine()
	forcePhase(t, m, Aiming)
	got := m.LegalTargets()
	want := []Phase{Idle, SelectingType, ShotPanel, Paused}
	if len(got) != len(want) {
		t.Fatalf("LegalTargets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LegalTargets[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPhaseStringRoundTrip(t *testing.T) {
	for _, p := range AllPhases() {
		got, ok := ParsePhase(p.String())
		if !ok || got != p {
			t.Errorf("ParsePhase(%q) = %s, %v", p.String(), got, ok)
		}
	}
	if _, ok := ParsePhase("FLYING"); ok {
		t.Error("ParsePhase accepted an unknown name")
	}
}
