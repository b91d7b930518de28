package session

import (
	"fmt"
	"time"

	"github.com/meghashyamc/dreamgolf/controller"
	"github.com/meghashyamc/dreamgolf/physics"
	"github.com/meghashyamc/dreamgolf/shot"
	"github.com/meghashyamc/dreamgolf/trajectory"
)

// UITuning holds presentation delays.
type UITuning struct {
	PanelDelay        time.Duration `mapstructure:"panel_delay"`
	HoleCompleteDelay time.Duration `mapstructure:"hole_complete_delay"`
}

func DefaultUITuning() UITuning {
	return UITuning{
		PanelDelay:        150 * time.Millisecond,
		HoleCompleteDelay: 2 * time.Second,
	}
}

func (t UITuning) Validate() error {
	if t.PanelDelay < 0 || t.HoleCompleteDelay < 0 {
		return fmt.Errorf("ui delays must not be negative: panel=%s hole=%s", t.PanelDelay, t.HoleCompleteDelay)
	}
	return nil
}

// Tunings is every tunable the session is built from.
type Tunings struct {
	Shot       shot.Tuning
	Boost      controller.BoostTuning
	Trajectory trajectory.Tuning
	Physics    physics.Tuning
	UI         UITuning
}

func DefaultTunings() Tunings {
	return Tunings{
		Shot:       shot.DefaultTuning(),
		Boost:      controller.DefaultBoostTuning(),
		Trajectory: trajectory.DefaultTuning(),
		Physics:    physics.DefaultTuning(),
		UI:         DefaultUITuning(),
	}
}

// previewTuning puts the preview's ground plane at the resting height of the
// ball's centre so previews start on the ball.
func (t Tunings) previewTuning() trajectory.Tuning {
	tt := t.Trajectory
	tt.GroundLevel = t.Physics.Radius
	tt.BallMass = t.Physics.Mass
	return tt
}
