package turn

import "fmt"

// Phase is one step of the turn sequence. Exactly one is active at a time.
type Phase int

const (
	Idle Phase = iota
	SelectingType
	Aiming
	ShotPanel
	Charging
	Rolling
	BoostReady
	Paused
)

var phaseNames = [...]string{
	Idle:          "IDLE",
	SelectingType: "SELECTING_TYPE",
	Aiming:        "AIMING",
	ShotPanel:     "SHOT_PANEL",
	Charging:      "CHARGING",
	Rolling:       "ROLLING",
	BoostReady:    "BOOST_READY",
	Paused:        "PAUSED",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// AllPhases lists every phase in declaration order.
func AllPhases() []Phase {
	return []Phase{Idle, SelectingType, Aiming, ShotPanel, Charging, Rolling, BoostReady, Paused}
}

// ParsePhase is the inverse of String.
func ParsePhase(name string) (Phase, bool) {
	for i, n := range phaseNames {
		if n == name {
			return Phase(i), true
		}
	}
	return Idle, false
}

// transitions is the legal edge table. Any edge not listed is illegal.
// PAUSED lists every phase; a Machine narrows it to the phase the pause
// interrupted plus IDLE.
var transitions = map[Phase][]Phase{
	Idle:          {SelectingType, Paused},
	SelectingType: {Idle, Aiming, Paused},
	Aiming:        {Idle, SelectingType, ShotPanel, Paused},
	ShotPanel:     {Idle, Aiming, Charging, Paused},
	Charging:      {Idle, ShotPanel, Rolling, Paused},
	Rolling:       {Idle, BoostReady, Paused},
	BoostReady:    {Idle, Rolling, Paused},
	Paused:        {Idle, SelectingType, Aiming, ShotPanel, Charging, Rolling, BoostReady},
}

// Legal returns the phases reachable from p in one step.
func Legal(p Phase) []Phase {
	out := make([]Phase, len(transitions[p]))
	copy(out, transitions[p])
	return out
}

// CanTransition reports whether from -> to is an edge of the table.
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// IsShotSetup reports the phases before the ball is struck, which a cancel
// input may abandon.
func (p Phase) IsShotSetup() bool {
	switch p {
	case SelectingType, Aiming, ShotPanel, Charging:
		return true
	default:
		return false
	}
}

// IsBallMoving reports the phases where the physics world owns the ball.
func (p Phase) IsBallMoving() bool {
	return p == Rolling || p == BoostReady
}
