package shot

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const twoPi = 2 * math.Pi

// Parameters is the full shot record. Everything derived from it is a pure
// function of these fields.
type Parameters struct {
	Angle         float64 // radians in [0, 2π)
	Power         float64 // normalized in [0, 1]
	ShotType      ShotType
	SpinType      SpinType
	SpinIntensity float64 // [0, 1]
	GuideLength   GuideLength
}

// DefaultParameters is the record at the start of every turn.
func DefaultParameters() Parameters {
	return Parameters{
		ShotType:      Grounder,
		SpinType:      SpinNone,
		SpinIntensity: 1,
		GuideLength:   GuideShort,
	}
}

// NormalizeAngle wraps any finite angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	// math.Mod of a tiny negative plus 2π can round up to exactly 2π
	if a >= twoPi {
		a = 0
	}
	return a
}

// ClampUnit clamps v into [0, 1]. NaN maps to 0.
func ClampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// Direction is the unit aim vector in the ground plane.
func (p Parameters) Direction() mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(p.Angle), 0, math.Sin(p.Angle)}
}

// ActualPower maps the normalized power onto the physical magnitude range.
func (p Parameters) ActualPower(t Tuning) float64 {
	return t.MinPower + (t.MaxPower-t.MinPower)*p.Power
}

// ShotHeight is the archetype's vertical impulse at full power.
func (p Parameters) ShotHeight(t Tuning) float64 {
	if p.ShotType == Fly {
		return t.FlyShotHeight
	}
	return t.GroundShotHeight
}

func (p Parameters) IsSuperShot(t Tuning) bool {
	return p.Power >= t.SuperShotThreshold
}

// ShotVector is the impulse applied to the ball. The vertical part scales
// with power so a soft fly shot arcs less than a full one.
func (p Parameters) ShotVector(t Tuning) mgl64.Vec3 {
	dir := p.Direction()
	actual := p.ActualPower(t)
	return mgl64.Vec3{
		dir.X() * actual,
		p.ShotHeight(t) * p.Power,
		dir.Z() * actual,
	}
}

// SpinTorque is the torque impulse for the selected spin. Side spin turns
// about the vertical axis; top and back spin turn about the horizontal axis
// perpendicular to the aim, with top spin matching forward roll.
func (p Parameters) SpinTorque(t Tuning) mgl64.Vec3 {
	intensity := ClampUnit(p.SpinIntensity)
	up := mgl64.Vec3{0, 1, 0}
	roll := up.Cross(p.Direction())

	switch p.SpinType {
	case SpinLeft:
		return up.Mul(t.SideSpinTorque * intensity)
	case SpinRight:
		return up.Mul(-t.SideSpinTorque * intensity)
	case SpinTop:
		return roll.Mul(t.VerticalSpinTorque * intensity)
	case SpinBack:
		return roll.Mul(-t.VerticalSpinTorque * intensity)
	default:
		return mgl64.Vec3{}
	}
}
