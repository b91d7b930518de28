// Package turn owns the process-wide turn phase and validates every change
// against the legal transition table.
package turn

import (
	"context"
	"sort"
	"strings"

	"github.com/looplab/fsm"
	"github.com/meghashyamc/dreamgolf/events"
	"github.com/meghashyamc/dreamgolf/logger"
)

const eventPrefix = "to_"

// Hook observes one side of a transition. For an exit hook other is the
// phase being entered; for an enter hook it is the phase being left.
type Hook func(other Phase)

// Machine is the turn state machine. It is driven from the game tick only and
// is not safe for concurrent use.
type Machine struct {
	fsm    *fsm.FSM
	bus    *events.Bus
	logger logger.Logger

	enterHooks map[Phase][]Hook
	exitHooks  map[Phase][]Hook

	pausedFrom  Phase
	dispatching bool
	entering    Phase
	queued      []Phase
}

// NewMachine starts in IDLE. bus may be nil when nothing listens for the
// generic notifications.
func NewMachine(bus *events.Bus, log logger.Logger) *Machine {
	var descs fsm.Events
	for _, target := range AllPhases() {
		var sources []string
		for _, from := range AllPhases() {
			if CanTransition(from, target) {
				sources = append(sources, from.String())
			}
		}
		descs = append(descs, fsm.EventDesc{
			Name: eventPrefix + target.String(),
			Src:  sources,
			Dst:  target.String(),
		})
	}

	return &Machine{
		fsm:        fsm.NewFSM(Idle.String(), descs, fsm.Callbacks{}),
		bus:        bus,
		logger:     log,
		enterHooks: make(map[Phase][]Hook),
		exitHooks:  make(map[Phase][]Hook),
	}
}

func (m *Machine) State() Phase {
	p, _ := ParsePhase(m.fsm.Current())
	return p
}

func (m *Machine) Is(p Phase) bool {
	return m.fsm.Is(p.String())
}

// OnEnter registers fn to run each time p becomes the current phase.
func (m *Machine) OnEnter(p Phase, fn Hook) {
	m.enterHooks[p] = append(m.enterHooks[p], fn)
}

// OnExit registers fn to run each time p stops being the current phase.
func (m *Machine) OnExit(p Phase, fn Hook) {
	m.exitHooks[p] = append(m.exitHooks[p], fn)
}

// LegalTargets lists the phases the current phase may move to, sorted.
func (m *Machine) LegalTargets() []Phase {
	var out []Phase
	for _, name := range m.fsm.AvailableTransitions() {
		if p, ok := ParsePhase(strings.TrimPrefix(name, eventPrefix)); ok && m.allowed(m.State(), p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// legalFrom narrows the table for PAUSED: a pause may only resume to the
// phase it interrupted or give the turn up to IDLE.
func (m *Machine) legalFrom(from Phase) []Phase {
	if from != Paused {
		return Legal(from)
	}
	target := resumeTarget(m.pausedFrom)
	if target == Idle {
		return []Phase{Idle}
	}
	return []Phase{Idle, target}
}

func (m *Machine) allowed(from, to Phase) bool {
	for _, p := range m.legalFrom(from) {
		if p == to {
			return true
		}
	}
	return false
}

// resumeTarget maps a paused phase to the phase a resume re-enters. The
// boost window does not survive a pause.
func resumeTarget(p Phase) Phase {
	if p == BoostReady {
		return Rolling
	}
	return p
}

// SetState moves to next if the edge is legal. Exit hooks of the old phase
// run first, then enter hooks of the new one, then the PhaseChanged event.
// An illegal request changes nothing, is reported and returns false.
// Requesting the current phase is a no-op that returns true.
//
// A hook that calls SetState is queued until the running transition has
// finished; its legality is judged against the phase being entered.
func (m *Machine) SetState(next Phase) bool {
	if m.dispatching {
		from := m.entering
		if len(m.queued) > 0 {
			from = m.queued[len(m.queued)-1]
		}
		if from != next && !m.allowed(from, next) {
			m.reject(from, next, m.legalFrom(from))
			return false
		}
		m.queued = append(m.queued, next)
		return true
	}

	if !m.transition(next) {
		return false
	}
	for len(m.queued) > 0 {
		target := m.queued[0]
		m.queued = m.queued[1:]
		m.transition(target)
	}
	return true
}

func (m *Machine) transition(next Phase) bool {
	current := m.State()
	if current == next {
		return true
	}
	if !m.fsm.Can(eventPrefix+next.String()) || !m.allowed(current, next) {
		m.reject(current, next, m.LegalTargets())
		return false
	}

	m.dispatching = true
	m.entering = next
	defer func() { m.dispatching = false }()

	if next == Paused {
		m.pausedFrom = current
	}

	for _, hook := range m.exitHooks[current] {
		hook(next)
	}

	if err := m.fsm.Event(context.Background(), eventPrefix+next.String()); err != nil {
		// Can() already vouched for the edge; anything else is a bug in the table
		m.logger.Error("phase transition failed", "from", current.String(), "to", next.String(), "err", err)
		return false
	}

	for _, hook := range m.enterHooks[next] {
		hook(current)
	}

	m.logger.Debug("phase changed", "from", current.String(), "to", next.String())
	if m.bus != nil {
		m.bus.Publish(events.PhaseChanged{From: current.String(), To: next.String()})
	}
	return true
}

func (m *Machine) reject(from, to Phase, legal []Phase) {
	names := make([]string, len(legal))
	for i, p := range legal {
		names[i] = p.String()
	}
	m.logger.Warn("rejected phase transition", "from", from.String(), "to", to.String(), "legal", names)
	if m.bus != nil {
		m.bus.Publish(events.TransitionRejected{From: from.String(), To: to.String(), Legal: names})
	}
}

// Pause remembers the active phase and enters PAUSED.
func (m *Machine) Pause() bool {
	if m.Is(Paused) {
		return true
	}
	return m.SetState(Paused)
}

// Resume returns to the phase active before Pause. The boost window does not
// survive a pause, so a paused BOOST_READY resumes as ROLLING.
func (m *Machine) Resume() bool {
	if !m.Is(Paused) {
		return false
	}
	return m.SetState(resumeTarget(m.pausedFrom))
}

// Resuming reports whether a transition out of PAUSED into next is a resume
// rather than a cancellation.
func (m *Machine) Resuming(from, next Phase) bool {
	return from == Paused && next == resumeTarget(m.pausedFrom)
}

// PausedFrom is the phase Resume will return to.
func (m *Machine) PausedFrom() Phase {
	return m.pausedFrom
}
