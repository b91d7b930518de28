package shot

import "fmt"

// ShotType is the shot archetype chosen before aiming.
type ShotType int

const (
	Grounder ShotType = iota
	Fly
)

func (t ShotType) String() string {
	switch t {
	case Grounder:
		return "GROUNDER"
	case Fly:
		return "FLY"
	default:
		return fmt.Sprintf("ShotType(%d)", int(t))
	}
}

// Toggle returns the other archetype.
func (t ShotType) Toggle() ShotType {
	if t == Grounder {
		return Fly
	}
	return Grounder
}

type SpinType int

const (
	SpinNone SpinType = iota
	SpinLeft
	SpinRight
	SpinTop
	SpinBack
)

func (s SpinType) String() string {
	switch s {
	case SpinNone:
		return "NONE"
	case SpinLeft:
		return "LEFT"
	case SpinRight:
		return "RIGHT"
	case SpinTop:
		return "TOP"
	case SpinBack:
		return "BACK"
	default:
		return fmt.Sprintf("SpinType(%d)", int(s))
	}
}

// Opposite returns the cancelling direction, or SpinNone for SpinNone.
func (s SpinType) Opposite() SpinType {
	switch s {
	case SpinLeft:
		return SpinRight
	case SpinRight:
		return SpinLeft
	case SpinTop:
		return SpinBack
	case SpinBack:
		return SpinTop
	default:
		return SpinNone
	}
}

// IsSide reports LEFT or RIGHT spin, which bends the path sideways.
func (s SpinType) IsSide() bool {
	return s == SpinLeft || s == SpinRight
}

// IsVertical reports TOP or BACK spin, which changes forward momentum.
func (s SpinType) IsVertical() bool {
	return s == SpinTop || s == SpinBack
}

var (
	grounderSpins = []SpinType{SpinNone, SpinLeft, SpinRight}
	flySpins      = []SpinType{SpinNone, SpinLeft, SpinRight, SpinTop, SpinBack}
)

// AllowedSpins lists the spin menu for a shot type in menu order.
func AllowedSpins(t ShotType) []SpinType {
	if t == Fly {
		return flySpins
	}
	return grounderSpins
}

// SpinAllowed reports whether s is on t's spin menu.
func SpinAllowed(t ShotType, s SpinType) bool {
	for _, allowed := range AllowedSpins(t) {
		if allowed == s {
			return true
		}
	}
	return false
}

// GuideLength caps how much of the predicted path the guide shows.
type GuideLength int

const (
	GuideShort GuideLength = iota
	GuideLong
)

func (g GuideLength) String() string {
	if g == GuideLong {
		return "LONG"
	}
	return "SHORT"
}

func (g GuideLength) Toggle() GuideLength {
	if g == GuideShort {
		return GuideLong
	}
	return GuideShort
}
