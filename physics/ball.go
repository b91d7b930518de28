package physics

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/meghashyamc/dreamgolf/geometry"
)

// Ball is the reference rigid body: a sphere over a flat ground plane inside
// walled course bounds. It is stepped from the game tick.
type Ball struct {
	tuning Tuning

	position        mgl64.Vec3
	velocity        mgl64.Vec3
	angularVelocity mgl64.Vec3
	linearDamping   float64
	sleeping        bool
	stillFor        time.Duration

	onBounce []func(BounceInfo)
	onStop   []func(mgl64.Vec3)
}

var _ Body = (*Ball)(nil)

// NewBall places a sleeping ball resting on the ground at (x, z).
func NewBall(tuning Tuning, x, z float64) *Ball {
	b := &Ball{tuning: tuning}
	b.Reset(x, z)
	return b
}

// Reset puts the ball back to rest at (x, z). It is the only write to the
// ball's position outside the integrator.
func (b *Ball) Reset(x, z float64) {
	b.position = mgl64.Vec3{x, b.tuning.Radius, z}
	b.velocity = mgl64.Vec3{}
	b.angularVelocity = mgl64.Vec3{}
	b.linearDamping = b.tuning.LinearDamping
	b.sleeping = true
	b.stillFor = 0
}

func (b *Ball) SetTuning(t Tuning) {
	b.tuning = t
	b.linearDamping = t.LinearDamping
}

func (b *Ball) Tuning() Tuning {
	return b.tuning
}

func (b *Ball) OnBounce(fn func(BounceInfo)) {
	b.onBounce = append(b.onBounce, fn)
}

func (b *Ball) OnStop(fn func(mgl64.Vec3)) {
	b.onStop = append(b.onStop, fn)
}

func (b *Ball) Position() mgl64.Vec3        { return b.position }
func (b *Ball) LinearVelocity() mgl64.Vec3  { return b.velocity }
func (b *Ball) AngularVelocity() mgl64.Vec3 { return b.angularVelocity }
func (b *Ball) IsSleeping() bool            { return b.sleeping }
func (b *Ball) LinearDamping() float64      { return b.linearDamping }
func (b *Ball) Speed() float64              { return b.velocity.Len() }

func (b *Ball) SetAngularVelocity(w mgl64.Vec3) {
	b.angularVelocity = w
}

func (b *Ball) SetLinearDamping(d float64) {
	b.linearDamping = math.Max(0, d)
}

func (b *Ball) WakeUp() {
	b.sleeping = false
	b.stillFor = 0
}

// ApplyImpulse changes velocity by j/m. Like most engines, a sleeping body
// ignores it; callers must wake the body first.
func (b *Ball) ApplyImpulse(j mgl64.Vec3) {
	if b.sleeping {
		return
	}
	b.velocity = b.velocity.Add(j.Mul(1 / b.tuning.Mass))
}

func (b *Ball) ApplyTorqueImpulse(t mgl64.Vec3) {
	if b.sleeping {
		return
	}
	b.angularVelocity = b.angularVelocity.Add(t.Mul(1 / b.tuning.inertia()))
}

// Step advances the ball by dt using semi-implicit Euler.
func (b *Ball) Step(dt time.Duration) {
	if b.sleeping || dt <= 0 {
		return
	}
	t := b.tuning
	seconds := dt.Seconds()

	b.velocity = mgl64.Vec3{b.velocity.X(), b.velocity.Y() - t.Gravity*seconds, b.velocity.Z()}

	// side spin curls the horizontal path; left spin (+Y) turns left
	if spinY := b.angularVelocity.Y(); spinY != 0 {
		b.velocity = geometry.RotateY(b.velocity, -t.SpinCurl*spinY*seconds)
	}

	b.velocity = b.velocity.Mul(math.Max(0, 1-b.linearDamping*seconds))
	b.angularVelocity = b.angularVelocity.Mul(math.Max(0, 1-t.AngularDamping*seconds))

	b.position = b.position.Add(b.velocity.Mul(seconds))

	b.collideGround(seconds)
	b.collideWalls()
	b.settle(dt)
}

func (b *Ball) collideGround(seconds float64) {
	t := b.tuning
	if b.position.Y() > t.Radius {
		return
	}
	b.position = mgl64.Vec3{b.position.X(), t.Radius, b.position.Z()}

	if b.velocity.Y() < 0 {
		impact := -b.velocity.Y()
		if impact <= t.BounceMinVertical {
			b.velocity = mgl64.Vec3{b.velocity.X(), 0, b.velocity.Z()}
		} else {
			b.rebound(impact)
			return
		}
	}

	// rolling: friction eats horizontal speed
	speed := geometry.HorizontalSpeed(b.velocity)
	if speed == 0 {
		return
	}
	next := math.Max(0, speed-t.RollingFriction*seconds)
	b.velocity = mgl64.Vec3{b.velocity.X() * next / speed, b.velocity.Y(), b.velocity.Z() * next / speed}
}

func (b *Ball) rebound(impact float64) {
	t := b.tuning
	horizontal := geometry.Horizontal(b.velocity).Mul(t.BounceFriction)

	// top spin drives the ball forward at contact, back spin checks it
	if heading := geometry.Normalize(horizontal); heading != (mgl64.Vec3{}) {
		rollAxis := geometry.Up.Cross(heading)
		roll := b.angularVelocity.Dot(rollAxis)
		horizontal = horizontal.Add(heading.Mul(roll * t.Radius * t.SpinRollTransfer))
		if horizontal.Dot(heading) < 0 {
			horizontal = mgl64.Vec3{}
		}
	}

	b.velocity = mgl64.Vec3{horizontal.X(), impact * t.Restitution, horizontal.Z()}

	info := BounceInfo{
		Position:    b.position,
		Velocity:    b.velocity,
		ImpactSpeed: impact,
		SpeedAfter:  b.velocity.Len(),
	}
	for _, fn := range b.onBounce {
		fn(info)
	}
}

func (b *Ball) collideWalls() {
	t := b.tuning
	r := t.Radius
	x, y, z := b.position.X(), b.position.Y(), b.position.Z()
	vx, vy, vz := b.velocity.X(), b.velocity.Y(), b.velocity.Z()

	if x < t.Bounds.MinX+r {
		x = t.Bounds.MinX + r
		vx = math.Abs(vx) * t.WallRestitution
	} else if x > t.Bounds.MaxX-r {
		x = t.Bounds.MaxX - r
		vx = -math.Abs(vx) * t.WallRestitution
	}
	if z < t.Bounds.MinZ+r {
		z = t.Bounds.MinZ + r
		vz = math.Abs(vz) * t.WallRestitution
	} else if z > t.Bounds.MaxZ-r {
		z = t.Bounds.MaxZ - r
		vz = -math.Abs(vz) * t.WallRestitution
	}

	b.position = mgl64.Vec3{x, y, z}
	b.velocity = mgl64.Vec3{vx, vy, vz}
}

// settle puts the ball to sleep once it has stayed slow on the ground for
// SleepTime, and reports the stop.
func (b *Ball) settle(dt time.Duration) {
	t := b.tuning
	onGround := b.position.Y() <= t.Radius+1e-9
	if !onGround || b.velocity.Len() >= t.SleepSpeed {
		b.stillFor = 0
		return
	}

	b.stillFor += dt
	if b.stillFor < t.SleepTime {
		return
	}

	b.velocity = mgl64.Vec3{}
	b.angularVelocity = mgl64.Vec3{}
	b.sleeping = true
	b.stillFor = 0
	for _, fn := range b.onStop {
		fn(b.position)
	}
}
