package controller

import (
	"fmt"
	"time"

	"github.com/meghashyamc/dreamgolf/events"
)

// BoostTuning sets the bounce boost timing window.
type BoostTuning struct {
	MinBounceSpeed    float64       `mapstructure:"min_bounce_speed"`
	PreciseWindow     time.Duration `mapstructure:"precise_window"`
	PartialMultiplier float64       `mapstructure:"partial_multiplier"`
	DisplayDuration   time.Duration `mapstructure:"display_duration"`
	Strength          float64       `mapstructure:"strength"`
}

func DefaultBoostTuning() BoostTuning {
	return BoostTuning{
		MinBounceSpeed:    0.5,
		PreciseWindow:     33 * time.Millisecond,
		PartialMultiplier: 3,
		DisplayDuration:   500 * time.Millisecond,
		Strength:          6,
	}
}

func (t BoostTuning) Validate() error {
	if t.PreciseWindow <= 0 {
		return fmt.Errorf("precise window must be positive, got %s", t.PreciseWindow)
	}
	if t.PartialMultiplier < 1 {
		return fmt.Errorf("partial multiplier must be at least 1, got %.2f", t.PartialMultiplier)
	}
	if t.DisplayDuration < t.PreciseWindow {
		return fmt.Errorf("display duration %s is shorter than the precise window %s", t.DisplayDuration, t.PreciseWindow)
	}
	return nil
}

// Score grades an activation that came elapsed after the bounce. The precise
// window is inclusive; partial credit falls linearly to zero at
// PartialMultiplier times the window.
func (t BoostTuning) Score(elapsed time.Duration) (events.BoostOutcome, float64) {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed <= t.PreciseWindow {
		return events.BoostPerfect, 1
	}
	limit := time.Duration(float64(t.PreciseWindow) * t.PartialMultiplier)
	if elapsed >= limit {
		return events.BoostMissed, 0
	}
	return events.BoostPartial, 1 - float64(elapsed)/float64(limit)
}
