package trajectory

import (
	"math"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/meghashyamc/dreamgolf/shot"
)

var forward = mgl64.Vec3{1, 0, 0}

func newTestSimulator() *Simulator {
	return NewSimulator(DefaultTuning(), shot.DefaultTuning())
}

func TestSimulateIsIdempotent(t *testing.T) {
	sim := newTestSimulator()
	start := mgl64.Vec3{1, 0, 2}
	dir := mgl64.Vec3{0.6, 0, 0.8}

	first := sim.Simulate(start, dir, 0.8, shot.Fly, shot.SpinLeft, 0.5)
	second := sim.Simulate(start, dir, 0.8, shot.Fly, shot.SpinLeft, 0.5)

	if !reflect.DeepEqual(first, second) {
		t.Error("two identical simulations produced different results")
	}
}

func TestGrounderStopsBouncingAtCapThenRolls(t *testing.T) {
	sim := newTestSimulator()
	res := sim.Simulate(mgl64.Vec3{}, forward, 0.6, shot.Grounder, shot.SpinNone, 0)

	if got := len(res.BouncePoints); got != DefaultTuning().GrounderBounceCap {
		t.Fatalf("bounces = %d, want %d", got, DefaultTuning().GrounderBounceCap)
	}
	lastBounce := res.BouncePoints[len(res.BouncePoints)-1]
	end := res.Points[len(res.Points)-1]
	if end.X() <= lastBounce.X() {
		t.Errorf("expected rolling points past the last bounce: end %v, last bounce %v", end, lastBounce)
	}
	for _, p := range res.Points[len(res.Points)-3:] {
		if p.Y() != lastBounce.Y() {
			t.Errorf("rolling point %v left the ground", p)
		}
	}
}

func TestFlyRespectsBounceCap(t *testing.T) {
	sim := newTestSimulator()
	res := sim.Simulate(mgl64.Vec3{}, forward, 1, shot.Fly, shot.SpinTop, 1)

	if got := len(res.BouncePoints); got == 0 || got > DefaultTuning().FlyBounceCap {
		t.Errorf("bounces = %d, want 1..%d", got, DefaultTuning().FlyBounceCap)
	}
}

func TestLandingIsFirstBounce(t *testing.T) {
	sim := newTestSimulator()
	res := sim.Simulate(mgl64.Vec3{}, forward, 0.7, shot.Fly, shot.SpinNone, 0)

	if res.Landing == nil {
		t.Fatal("fly shot never landed")
	}
	if *res.Landing != res.BouncePoints[0] {
		t.Errorf("landing %v, want first bounce %v", *res.Landing, res.BouncePoints[0])
	}
}

func TestPointsNeverBelowGround(t *testing.T) {
	sim := newTestSimulator()
	for _, st := range []shot.ShotType{shot.Grounder, shot.Fly} {
		res := sim.Simulate(mgl64.Vec3{}, forward, 1, st, shot.SpinBack, 1)
		for _, p := range res.Points {
			if p.Y() < DefaultTuning().GroundLevel {
				t.Errorf("%v: point %v below ground", st, p)
			}
		}
	}
}

func TestSideSpinBendsPath(t *testing.T) {
	sim := newTestSimulator()
	left := sim.Simulate(mgl64.Vec3{}, forward, 0.8, shot.Fly, shot.SpinLeft, 1)
	right := sim.Simulate(mgl64.Vec3{}, forward, 0.8, shot.Fly, shot.SpinRight, 1)
	straight := sim.Simulate(mgl64.Vec3{}, forward, 0.8, shot.Fly, shot.SpinNone, 0)

	endZ := func(r Result) float64 { return r.Points[len(r.Points)-1].Z() }
	if endZ(left) >= 0 {
		t.Errorf("left spin ended at z=%v, want negative", endZ(left))
	}
	if endZ(right) <= 0 {
		t.Errorf("right spin ended at z=%v, want positive", endZ(right))
	}
	if math.Abs(endZ(straight)) > 1e-9 {
		t.Errorf("no spin ended at z=%v, want 0", endZ(straight))
	}
}

func TestSuperShotDampensCurve(t *testing.T) {
	sim := newTestSimulator()
	// compare the first airborne step where both have the same speed budget
	normal := sim.Simulate(mgl64.Vec3{}, forward, 0.94, shot.Fly, shot.SpinRight, 1)
	super := sim.Simulate(mgl64.Vec3{}, forward, 0.95, shot.Fly, shot.SpinRight, 1)

	bend := func(r Result) float64 {
		p := r.Points[5]
		return p.Z() / p.X()
	}
	if bend(super) >= bend(normal) {
		t.Errorf("super shot bend %v should be smaller than normal bend %v", bend(super), bend(normal))
	}
}

func TestTopSpinRollsFurtherThanBackSpin(t *testing.T) {
	sim := newTestSimulator()
	top := sim.Simulate(mgl64.Vec3{}, forward, 0.8, shot.Fly, shot.SpinTop, 1)
	back := sim.Simulate(mgl64.Vec3{}, forward, 0.8, shot.Fly, shot.SpinBack, 1)

	endX := func(r Result) float64 { return r.Points[len(r.Points)-1].X() }
	if endX(top) <= endX(back) {
		t.Errorf("top spin end x=%v should exceed back spin end x=%v", endX(top), endX(back))
	}
}

func TestZeroStepsProducesOnlyStart(t *testing.T) {
	tuning := DefaultTuning()
	tuning.Steps = 0
	sim := NewSimulator(tuning, shot.DefaultTuning())
	res := sim.Simulate(mgl64.Vec3{1, 2, 3}, forward, 1, shot.Fly, shot.SpinNone, 0)
	if len(res.Points) != 1 || res.Landing != nil {
		t.Errorf("got %d points, landing %v; want only the start", len(res.Points), res.Landing)
	}
}

func TestClipCapsLength(t *testing.T) {
	sim := newTestSimulator()
	res := sim.Simulate(mgl64.Vec3{}, forward, 1, shot.Fly, shot.SpinNone, 0)

	clipped := res.Clip(5)
	if got := clipped.Length(); math.Abs(got-5) > 1e-9 {
		t.Errorf("clipped length = %v, want 5", got)
	}
	if len(clipped.BouncePoints) != 0 || clipped.Landing != nil {
		t.Errorf("5 units of a full fly shot should not reach the ground, got %d bounces", len(clipped.BouncePoints))
	}

	whole := res.Clip(res.Length() + 10)
	if !reflect.DeepEqual(whole.Points, res.Points) {
		t.Error("clipping past the end should keep every point")
	}
	if len(whole.BouncePoints) != len(res.BouncePoints) || whole.Landing == nil {
		t.Error("clipping past the end should keep bounces and landing")
	}
}

func TestClipNonPositiveKeepsOnlyStart(t *testing.T) {
	sim := newTestSimulator()
	start := mgl64.Vec3{0, 0.2, 0}
	res := sim.Simulate(start, forward, 0.8, shot.Fly, shot.SpinNone, 0)

	for _, d := range []float64{0, -3} {
		got := res.Clip(d)
		if len(got.Points) != 1 || got.Points[0] != start {
			t.Errorf("Clip(%v) points = %v, want only the start", d, got.Points)
		}
		if len(got.BouncePoints) != 0 || got.Landing != nil {
			t.Errorf("Clip(%v) kept bounces %v landing %v", d, got.BouncePoints, got.Landing)
		}
	}
}

func TestClipEmpty(t *testing.T) {
	if got := (Result{}).Clip(10); len(got.Points) != 0 {
		t.Errorf("Clip of empty result = %v, want empty", got)
	}
}
