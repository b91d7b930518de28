package physics

import (
	"fmt"
	"time"
)

// Bounds is the rectangle of the course the ball cannot leave.
type Bounds struct {
	MinX float64 `mapstructure:"min_x" yaml:"minX"`
	MaxX float64 `mapstructure:"max_x" yaml:"maxX"`
	MinZ float64 `mapstructure:"min_z" yaml:"minZ"`
	MaxZ float64 `mapstructure:"max_z" yaml:"maxZ"`
}

type Tuning struct {
	Gravity           float64       `mapstructure:"gravity"`
	Radius            float64       `mapstructure:"radius"`
	Mass              float64       `mapstructure:"mass"`
	Restitution       float64       `mapstructure:"restitution"`
	BounceFriction    float64       `mapstructure:"bounce_friction"`  // horizontal velocity kept per bounce
	RollingFriction   float64       `mapstructure:"rolling_friction"` // deceleration while rolling, units/s²
	LinearDamping     float64       `mapstructure:"linear_damping"`   // per second
	AngularDamping    float64       `mapstructure:"angular_damping"`  // per second
	SleepSpeed        float64       `mapstructure:"sleep_speed"`
	SleepTime         time.Duration `mapstructure:"sleep_time"`
	BounceMinVertical float64       `mapstructure:"bounce_min_vertical"`
	SpinCurl          float64       `mapstructure:"spin_curl"`
	SpinRollTransfer  float64       `mapstructure:"spin_roll_transfer"`
	WallRestitution   float64       `mapstructure:"wall_restitution"`
	Bounds            Bounds        `mapstructure:"bounds"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Gravity:           9.81,
		Radius:            0.2,
		Mass:              1,
		Restitution:       0.5,
		BounceFriction:    0.8,
		RollingFriction:   2.0,
		LinearDamping:     0.15,
		AngularDamping:    0.5,
		SleepSpeed:        0.3,
		SleepTime:         500 * time.Millisecond,
		BounceMinVertical: 0.8,
		SpinCurl:          0.8,
		SpinRollTransfer:  0.3,
		WallRestitution:   0.6,
		Bounds:            Bounds{MinX: -5, MaxX: 55, MinZ: -20, MaxZ: 20},
	}
}

func (t Tuning) Validate() error {
	if t.Mass <= 0 || t.Radius <= 0 {
		return fmt.Errorf("mass and radius must be positive, got mass=%.3f radius=%.3f", t.Mass, t.Radius)
	}
	if t.Restitution < 0 || t.Restitution >= 1 {
		return fmt.Errorf("restitution must be in [0,1), got %.3f", t.Restitution)
	}
	if t.Bounds.MinX >= t.Bounds.MaxX || t.Bounds.MinZ >= t.Bounds.MaxZ {
		return fmt.Errorf("course bounds are empty: %+v", t.Bounds)
	}
	return nil
}

// inertia of a solid sphere
func (t Tuning) inertia() float64 {
	return 0.4 * t.Mass * t.Radius * t.Radius
}
