package shot

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSetAngleNormalizes(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"zero", 0, 0},
		{"inside range", 1.25, 1.25},
		{"full turn", 2 * math.Pi, 0},
		{"negative quarter", -math.Pi / 2, 1.5 * math.Pi},
		{"several turns", 6*math.Pi + 0.5, 0.5},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(DefaultTuning())
			s.SetAngle(tt.input)
			got := s.Snapshot().Angle
			if got < 0 || got >= 2*math.Pi {
				t.Fatalf("angle %v outside [0, 2π)", got)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("angle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddAngleWrapsPastFullTurn(t *testing.T) {
	s := NewStore(DefaultTuning())
	s.SetAngle(2*math.Pi - 0.1)
	s.AddAngle(0.3)

	if got := s.Snapshot().Angle; math.Abs(got-0.2) > 1e-9 {
		t.Errorf("angle = %v, want 0.2", got)
	}

	s.AddAngle(-0.5)
	if got := s.Snapshot().Angle; math.Abs(got-(2*math.Pi-0.3)) > 1e-9 {
		t.Errorf("angle = %v, want 2π-0.3", got)
	}
}

func TestSetPowerClamps(t *testing.T) {
	for _, p := range []float64{-3, -0.0001, 0, 0.42, 1, 1.0001, 7} {
		s := NewStore(DefaultTuning())
		s.SetPower(p)
		want := math.Max(0, math.Min(1, p))
		if got := s.Snapshot().Power; got != want {
			t.Errorf("SetPower(%v) stored %v, want %v", p, got, want)
		}
	}
}

func TestVerticalSpinNotAllowedOnGrounder(t *testing.T) {
	for _, spin := range []SpinType{SpinTop, SpinBack} {
		s := NewStore(DefaultTuning())
		s.SetShotType(Grounder)
		s.SetSpin(spin, 1)
		if got := s.Snapshot().SpinType; got != SpinNone {
			t.Errorf("%v on GROUNDER stored %v, want NONE", spin, got)
		}
	}
}

func TestOppositeSpinCancels(t *testing.T) {
	tests := []struct {
		shotType ShotType
		first    SpinType
		second   SpinType
	}{
		{Grounder, SpinLeft, SpinRight},
		{Grounder, SpinRight, SpinLeft},
		{Fly, SpinTop, SpinBack},
		{Fly, SpinBack, SpinTop},
	}

	for _, tt := range tests {
		s := NewStore(DefaultTuning())
		s.SetShotType(tt.shotType)
		s.SetSpinType(tt.first)
		s.SetSpinType(tt.second)
		if got := s.Snapshot().SpinType; got != SpinNone {
			t.Errorf("%v then %v stored %v, want NONE", tt.first, tt.second, got)
		}
	}
}

func TestSwitchingToGrounderDropsVerticalSpin(t *testing.T) {
	s := NewStore(DefaultTuning())
	s.SetShotType(Fly)
	s.SetSpinType(SpinTop)
	s.SetShotType(Grounder)
	if got := s.Snapshot().SpinType; got != SpinNone {
		t.Errorf("spin = %v, want NONE", got)
	}
}

func TestCycleSpinFollowsMenu(t *testing.T) {
	s := NewStore(DefaultTuning())
	s.SetShotType(Fly)

	var seen []SpinType
	for range flySpins {
		s.CycleSpin()
		seen = append(seen, s.Snapshot().SpinType)
	}
	want := []SpinType{SpinLeft, SpinRight, SpinTop, SpinBack, SpinNone}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("cycle step %d = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestNotificationOnlyOnEffectiveChange(t *testing.T) {
	s := NewStore(DefaultTuning())

	var snapshots []Parameters
	s.OnChange(func(p Parameters) { snapshots = append(snapshots, p) })

	s.SetPower(0.5)
	s.SetPower(0.5)
	s.SetGuideLength(GuideShort) // default already
	s.ToggleGuideLength()

	if len(snapshots) != 2 {
		t.Fatalf("got %d notifications, want 2", len(snapshots))
	}
	last := snapshots[1]
	if last.Power != 0.5 || last.GuideLength != GuideLong {
		t.Errorf("snapshot = %+v, want full record with power 0.5 and LONG guide", last)
	}
}

func TestFullPowerGrounderStraightAhead(t *testing.T) {
	tuning := DefaultTuning()
	s := NewStore(tuning)
	s.SetAngle(0)
	s.SetPower(1)
	s.SetShotType(Grounder)
	s.SetSpinType(SpinNone)

	got := s.CalculateShotVector()
	want := mgl64.Vec3{tuning.MaxPower, tuning.GroundShotHeight, 0}
	if got != want {
		t.Errorf("CalculateShotVector() = %v, want %v", got, want)
	}
}

func TestShotVectorIsPure(t *testing.T) {
	s := NewStore(DefaultTuning())
	s.SetAngle(1.234)
	s.SetPower(0.77)
	s.SetShotType(Fly)
	s.SetSpin(SpinBack, 0.4)

	first := s.CalculateShotVector()
	second := s.CalculateShotVector()
	if first != second {
		t.Errorf("vectors differ: %v vs %v", first, second)
	}
}

func TestFlyVerticalScalesWithPower(t *testing.T) {
	tuning := DefaultTuning()
	s := NewStore(tuning)
	s.SetShotType(Fly)
	s.SetPower(0.5)

	if got := s.CalculateShotVector().Y(); math.Abs(got-tuning.FlyShotHeight*0.5) > 1e-12 {
		t.Errorf("vertical = %v, want %v", got, tuning.FlyShotHeight*0.5)
	}
	if got := s.ActualPower(); math.Abs(got-17.5) > 1e-12 {
		t.Errorf("ActualPower() = %v, want 17.5", got)
	}
}

func TestSuperShotThreshold(t *testing.T) {
	s := NewStore(DefaultTuning())
	s.SetPower(0.949)
	if s.IsSuperShot() {
		t.Error("0.949 should not be a super shot")
	}
	s.SetPower(0.95)
	if !s.IsSuperShot() {
		t.Error("0.95 should be a super shot")
	}
}

func TestSpinTorqueAxes(t *testing.T) {
	tuning := DefaultTuning()
	p := DefaultParameters()
	p.ShotType = Fly
	p.SpinIntensity = 1

	p.SpinType = SpinLeft
	if got := p.SpinTorque(tuning); got.X() != 0 || got.Z() != 0 || got.Y() <= 0 {
		t.Errorf("LEFT torque = %v, want +Y only", got)
	}

	// aim along +X: top spin rolls forward about -Z
	p.SpinType = SpinTop
	got := p.SpinTorque(tuning)
	if math.Abs(got.X()) > 1e-12 || math.Abs(got.Y()) > 1e-12 || got.Z() >= 0 {
		t.Errorf("TOP torque = %v, want -Z only", got)
	}

	p.SpinType = SpinNone
	if got := p.SpinTorque(tuning); got != (mgl64.Vec3{}) {
		t.Errorf("NONE torque = %v, want zero", got)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := NewStore(DefaultTuning())
	s.SetPower(0.8)
	s.SetShotType(Fly)
	s.ToggleGuideLength()
	s.Reset()
	if got := s.Snapshot(); got != DefaultParameters() {
		t.Errorf("after Reset = %+v, want defaults", got)
	}
}

func TestGuideDistance(t *testing.T) {
	s := NewStore(DefaultTuning())
	if got := s.GuideDistance(); got != 5 {
		t.Errorf("short guide = %v, want 5", got)
	}
	s.ToggleGuideLength()
	if got := s.GuideDistance(); got != 15 {
		t.Errorf("long guide = %v, want 15", got)
	}
}
