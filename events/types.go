package events

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/meghashyamc/dreamgolf/shot"
	"github.com/meghashyamc/dreamgolf/trajectory"
)

// EventType tags each payload in the closed set below.
type EventType int

const (
	// EventPhaseChanged fires after all exit and enter hooks of a transition ran.
	EventPhaseChanged EventType = iota
	// EventTransitionRejected reports an illegal setState request.
	EventTransitionRejected
	// EventParametersChanged carries a full snapshot after any effective mutation.
	EventParametersChanged
	// EventTrajectoryReady carries the guide preview for the current parameters.
	EventTrajectoryReady
	// EventShotExecuted fires once the impulse is on the ball, before ROLLING.
	EventShotExecuted
	EventBoostWindowOpened
	EventBoostWindowClosed
	EventBallBounced
	EventBallStopped
	EventHoleCompleted
)

func (t EventType) String() string {
	switch t {
	case EventPhaseChanged:
		return "phase_changed"
	case EventTransitionRejected:
		return "transition_rejected"
	case EventParametersChanged:
		return "parameters_changed"
	case EventTrajectoryReady:
		return "trajectory_ready"
	case EventShotExecuted:
		return "shot_executed"
	case EventBoostWindowOpened:
		return "boost_window_opened"
	case EventBoostWindowClosed:
		return "boost_window_closed"
	case EventBallBounced:
		return "ball_bounced"
	case EventBallStopped:
		return "ball_stopped"
	case EventHoleCompleted:
		return "hole_completed"
	default:
		return "unknown"
	}
}

// Payload is implemented by every event struct in this package.
type Payload interface {
	EventType() EventType
}

// Phase values are carried as strings so this package stays below turn.

type PhaseChanged struct {
	From string
	To   string
}

func (PhaseChanged) EventType() EventType { return EventPhaseChanged }

type TransitionRejected struct {
	From  string
	To    string
	Legal []string
}

func (TransitionRejected) EventType() EventType { return EventTransitionRejected }

// ParametersChanged holds a copy of the whole parameter record, never a diff.
type ParametersChanged struct {
	Snapshot shot.Parameters
}

func (ParametersChanged) EventType() EventType { return EventParametersChanged }

// TrajectoryReady carries the preview already clipped to the guide distance.
type TrajectoryReady struct {
	Result trajectory.Result
}

func (TrajectoryReady) EventType() EventType { return EventTrajectoryReady }

type ShotExecuted struct {
	ID      string
	Impulse mgl64.Vec3
	Torque  mgl64.Vec3
	Super   bool
}

func (ShotExecuted) EventType() EventType { return EventShotExecuted }

type BoostWindowOpened struct {
	Speed   float64
	Display time.Duration
}

func (BoostWindowOpened) EventType() EventType { return EventBoostWindowOpened }

// BoostOutcome grades a boost activation against the window.
type BoostOutcome int

const (
	BoostMissed BoostOutcome = iota
	BoostPartial
	BoostPerfect
)

func (o BoostOutcome) String() string {
	switch o {
	case BoostPerfect:
		return "perfect"
	case BoostPartial:
		return "partial"
	default:
		return "missed"
	}
}

type BoostWindowClosed struct {
	Outcome BoostOutcome
	Factor  float64
	Elapsed time.Duration
}

func (BoostWindowClosed) EventType() EventType { return EventBoostWindowClosed }

type BallBounced struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Speed    float64
}

func (BallBounced) EventType() EventType { return EventBallBounced }

type BallStopped struct {
	Position mgl64.Vec3
}

func (BallStopped) EventType() EventType { return EventBallStopped }

type HoleCompleted struct {
	Hole    int
	Name    string
	Strokes int
	Par     int
}

func (HoleCompleted) EventType() EventType { return EventHoleCompleted }
