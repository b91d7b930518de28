// Package trajectory forward-simulates a shot for the on-screen guide,
// independent of the live physics world.
package trajectory

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/meghashyamc/dreamgolf/geometry"
	"github.com/meghashyamc/dreamgolf/shot"
)

// Simulator is stateless apart from its constants; Simulate is a pure function
// of its arguments.
type Simulator struct {
	tuning     Tuning
	shotTuning shot.Tuning
}

func NewSimulator(tuning Tuning, shotTuning shot.Tuning) *Simulator {
	return &Simulator{tuning: tuning, shotTuning: shotTuning}
}

func (s *Simulator) Tuning() Tuning {
	return s.tuning
}

// SimulateParameters runs Simulate with the direction and spin of a parameter record.
func (s *Simulator) SimulateParameters(start mgl64.Vec3, p shot.Parameters) Result {
	return s.Simulate(start, p.Direction(), p.Power, p.ShotType, p.SpinType, p.SpinIntensity)
}

// Simulate integrates the shot with a fixed timestep until it runs out of
// steps, hits its bounce cap or drops below the minimum speed after a bounce.
func (s *Simulator) Simulate(start, direction mgl64.Vec3, power float64, shotType shot.ShotType, spin shot.SpinType, intensity float64) Result {
	t := s.tuning
	dt := t.Timestep.Seconds()
	power = shot.ClampUnit(power)
	intensity = shot.ClampUnit(intensity)

	params := shot.Parameters{
		Angle:    math.Atan2(direction.Z(), direction.X()),
		Power:    power,
		ShotType: shotType,
	}
	flat := geometry.Normalize(geometry.Horizontal(direction))
	impulse := mgl64.Vec3{
		flat.X() * params.ActualPower(s.shotTuning),
		params.ShotHeight(s.shotTuning) * power,
		flat.Z() * params.ActualPower(s.shotTuning),
	}
	vel := impulse.Mul(1 / t.BallMass)
	pos := start

	curveFactor := 1.0
	if params.IsSuperShot(s.shotTuning) {
		curveFactor = t.SuperShotCurveFactor
	}

	restitution := t.Grounder
	bounceCap := t.GrounderBounceCap
	if shotType == shot.Fly {
		restitution = t.Fly
		bounceCap = t.FlyBounceCap
	}

	result := Result{Points: []mgl64.Vec3{pos}}
	bounces := 0
	elapsed := 0.0

	for step := 0; step < t.Steps; step++ {
		elapsed += dt

		vel = mgl64.Vec3{vel.X(), vel.Y() - t.Gravity*dt, vel.Z()}

		// spin bends the path more the longer the ball has been flying
		progress := 1.0
		if ramp := t.CurveRamp.Seconds(); ramp > 0 {
			progress = math.Min(1, elapsed/ramp)
		}
		switch spin {
		case shot.SpinLeft:
			vel = geometry.RotateY(vel, -t.CurveRate*intensity*progress*curveFactor*dt)
		case shot.SpinRight:
			vel = geometry.RotateY(vel, t.CurveRate*intensity*progress*curveFactor*dt)
		case shot.SpinTop:
			vel = scaleHorizontal(vel, 1+t.VerticalSpinAirBias*intensity*curveFactor*dt)
		case shot.SpinBack:
			vel = scaleHorizontal(vel, 1-t.VerticalSpinAirBias*intensity*curveFactor*dt)
		}

		vel = scaleHorizontal(vel, t.AirDrag)
		pos = pos.Add(vel.Mul(dt))

		if pos.Y() > t.GroundLevel {
			result.Points = append(result.Points, pos)
			continue
		}

		// clamp above the plane so the next step cannot tunnel
		pos = mgl64.Vec3{pos.X(), t.GroundLevel + t.GroundClearance, pos.Z()}
		if vel.Y() >= 0 {
			result.Points = append(result.Points, pos)
			continue
		}
		result.Points = append(result.Points, pos)
		result.BouncePoints = append(result.BouncePoints, pos)
		if result.Landing == nil {
			landing := pos
			result.Landing = &landing
		}
		bounces++

		horizontalKeep := restitution.Horizontal
		if shotType == shot.Fly {
			switch spin {
			case shot.SpinTop:
				horizontalKeep *= 1 + t.TopSpinBounceBoost*intensity
			case shot.SpinBack:
				horizontalKeep *= 1 - t.BackSpinBounceDamp*intensity
			}
		}
		vel = mgl64.Vec3{
			vel.X() * horizontalKeep,
			-vel.Y() * restitution.Vertical,
			vel.Z() * horizontalKeep,
		}

		if bounces >= bounceCap {
			if shotType == shot.Grounder {
				result.Points = append(result.Points, s.roll(pos, vel, spin, intensity, curveFactor)...)
			}
			break
		}
		if vel.Len() < t.MinSpeed {
			break
		}
	}

	return result
}

// roll continues a grounder along the ground with exponential speed decay.
func (s *Simulator) roll(pos, vel mgl64.Vec3, spin shot.SpinType, intensity, curveFactor float64) []mgl64.Vec3 {
	t := s.tuning
	dt := t.Timestep.Seconds()

	speed := geometry.HorizontalSpeed(vel)
	heading := geometry.Normalize(geometry.Horizontal(vel))
	if speed < t.MinSpeed || heading == (mgl64.Vec3{}) {
		return nil
	}

	decay := t.RollDecay
	switch spin {
	case shot.SpinTop:
		decay = math.Min(0.999, decay+t.RollSpinEffect*intensity)
	case shot.SpinBack:
		decay = math.Max(0.01, decay-t.RollSpinEffect*intensity)
	}

	var points []mgl64.Vec3
	for step := 0; step < t.RollSteps && speed >= t.MinSpeed; step++ {
		switch spin {
		case shot.SpinLeft:
			heading = geometry.RotateY(heading, -t.RollCurveRate*intensity*curveFactor*dt)
		case shot.SpinRight:
			heading = geometry.RotateY(heading, t.RollCurveRate*intensity*curveFactor*dt)
		}
		speed *= decay
		pos = pos.Add(heading.Mul(speed * dt))
		points = append(points, pos)
	}
	return points
}

func scaleHorizontal(v mgl64.Vec3, factor float64) mgl64.Vec3 {
	return mgl64.Vec3{v.X() * factor, v.Y(), v.Z() * factor}
}
