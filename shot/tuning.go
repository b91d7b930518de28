package shot

import (
	"fmt"
	"time"
)

// Tuning holds the fixed constants of the parameter model.
type Tuning struct {
	MinPower            float64       `mapstructure:"min_power"`
	MaxPower            float64       `mapstructure:"max_power"`
	GroundShotHeight    float64       `mapstructure:"ground_shot_height"`
	FlyShotHeight       float64       `mapstructure:"fly_shot_height"`
	SuperShotThreshold  float64       `mapstructure:"super_shot_threshold"`
	MinExecutablePower  float64       `mapstructure:"min_executable_power"`
	GuideShortDistance  float64       `mapstructure:"guide_short_distance"`
	GuideLongDistance   float64       `mapstructure:"guide_long_distance"`
	SideSpinTorque      float64       `mapstructure:"side_spin_torque"`
	VerticalSpinTorque  float64       `mapstructure:"vertical_spin_torque"`
	AimTurnRate         float64       `mapstructure:"aim_turn_rate"` // radians per second
	PowerCycle          time.Duration `mapstructure:"power_cycle"`   // one sweep 0->1
	SuperShotDamping    float64       `mapstructure:"super_shot_damping"`
	SuperShotDuration   time.Duration `mapstructure:"super_shot_duration"`
	SuperShotSpinFactor float64       `mapstructure:"super_shot_spin_factor"`
}

func DefaultTuning() Tuning {
	return Tuning{
		MinPower:            5,
		MaxPower:            30,
		GroundShotHeight:    0.1,
		FlyShotHeight:       6.0,
		SuperShotThreshold:  0.95,
		MinExecutablePower:  0.01,
		GuideShortDistance:  5,
		GuideLongDistance:   15,
		SideSpinTorque:      0.6,
		VerticalSpinTorque:  0.8,
		AimTurnRate:         1.5,
		PowerCycle:          2 * time.Second,
		SuperShotDamping:    0.02,
		SuperShotDuration:   1500 * time.Millisecond,
		SuperShotSpinFactor: 0.7,
	}
}

func (t Tuning) Validate() error {
	if t.MaxPower <= t.MinPower {
		return fmt.Errorf("max power (%.2f) must exceed min power (%.2f)", t.MaxPower, t.MinPower)
	}
	if t.SuperShotThreshold <= 0 || t.SuperShotThreshold > 1 {
		return fmt.Errorf("super shot threshold must be in (0,1], got %.2f", t.SuperShotThreshold)
	}
	if t.PowerCycle <= 0 {
		return fmt.Errorf("power cycle must be positive, got %s", t.PowerCycle)
	}
	if t.GuideShortDistance <= 0 || t.GuideLongDistance < t.GuideShortDistance {
		return fmt.Errorf("guide distances invalid: short=%.1f long=%.1f", t.GuideShortDistance, t.GuideLongDistance)
	}
	return nil
}

// GuideDistance maps a guide length to its preview cap.
func (t Tuning) GuideDistance(g GuideLength) float64 {
	if g == GuideLong {
		return t.GuideLongDistance
	}
	return t.GuideShortDistance
}
