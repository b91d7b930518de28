package trajectory

import (
	"fmt"
	"time"
)

// Restitution is the fraction of velocity kept through a ground bounce.
type Restitution struct {
	Vertical   float64 `mapstructure:"vertical"`
	Horizontal float64 `mapstructure:"horizontal"`
}

// Tuning holds the integrator constants. They approximate the physics world
// closely enough for a preview; they are not required to match it exactly.
type Tuning struct {
	Timestep             time.Duration `mapstructure:"timestep"`
	Steps                int           `mapstructure:"steps"`
	Gravity              float64       `mapstructure:"gravity"`
	BallMass             float64       `mapstructure:"ball_mass"`
	GroundLevel          float64       `mapstructure:"ground_level"`
	AirDrag              float64       `mapstructure:"air_drag"` // horizontal velocity kept per step
	Grounder             Restitution   `mapstructure:"grounder"`
	Fly                  Restitution   `mapstructure:"fly"`
	GrounderBounceCap    int           `mapstructure:"grounder_bounce_cap"`
	FlyBounceCap         int           `mapstructure:"fly_bounce_cap"`
	TopSpinBounceBoost   float64       `mapstructure:"top_spin_bounce_boost"`
	BackSpinBounceDamp   float64       `mapstructure:"back_spin_bounce_damp"`
	VerticalSpinAirBias  float64       `mapstructure:"vertical_spin_air_bias"`
	CurveRate            float64       `mapstructure:"curve_rate"` // radians per second at full intensity
	CurveRamp            time.Duration `mapstructure:"curve_ramp"`
	SuperShotCurveFactor float64       `mapstructure:"super_shot_curve_factor"`
	MinSpeed             float64       `mapstructure:"min_speed"`
	RollDecay            float64       `mapstructure:"roll_decay"` // speed kept per rolling step
	RollSteps            int           `mapstructure:"roll_steps"`
	RollCurveRate        float64       `mapstructure:"roll_curve_rate"`
	RollSpinEffect       float64       `mapstructure:"roll_spin_effect"`
	GroundClearance      float64       `mapstructure:"ground_clearance"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Timestep:             100 * time.Millisecond,
		Steps:                100,
		Gravity:              9.81,
		BallMass:             1,
		GroundLevel:          0,
		AirDrag:              0.99,
		Grounder:             Restitution{Vertical: 0.3, Horizontal: 0.7},
		Fly:                  Restitution{Vertical: 0.6, Horizontal: 0.8},
		GrounderBounceCap:    2,
		FlyBounceCap:         4,
		TopSpinBounceBoost:   0.2,
		BackSpinBounceDamp:   0.3,
		VerticalSpinAirBias:  0.05,
		CurveRate:            0.5,
		CurveRamp:            time.Second,
		SuperShotCurveFactor: 0.7,
		MinSpeed:             0.5,
		RollDecay:            0.9,
		RollSteps:            60,
		RollCurveRate:        0.3,
		RollSpinEffect:       0.04,
		GroundClearance:      0.01,
	}
}

func (t Tuning) Validate() error {
	if t.Timestep <= 0 {
		return fmt.Errorf("timestep must be positive, got %s", t.Timestep)
	}
	if t.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", t.Steps)
	}
	if t.BallMass <= 0 {
		return fmt.Errorf("ball mass must be positive, got %.3f", t.BallMass)
	}
	if t.RollDecay <= 0 || t.RollDecay >= 1 {
		return fmt.Errorf("roll decay must be in (0,1), got %.3f", t.RollDecay)
	}
	if t.GrounderBounceCap < 1 || t.FlyBounceCap < 1 {
		return fmt.Errorf("bounce caps must be at least 1, got grounder=%d fly=%d", t.GrounderBounceCap, t.FlyBounceCap)
	}
	return nil
}
