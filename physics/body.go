// Package physics holds the rigid-body contract the shot core relies on and
// a small reference ball world that satisfies it.
package physics

import "github.com/go-gl/mathgl/mgl64"

// Body is everything the core reads from or writes to the ball.
type Body interface {
	Position() mgl64.Vec3
	LinearVelocity() mgl64.Vec3
	AngularVelocity() mgl64.Vec3
	SetAngularVelocity(w mgl64.Vec3)
	IsSleeping() bool
	WakeUp()
	ApplyImpulse(j mgl64.Vec3)
	ApplyTorqueImpulse(t mgl64.Vec3)
	LinearDamping() float64
	SetLinearDamping(d float64)
}

// BounceInfo describes one ground contact that rebounded.
type BounceInfo struct {
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3 // after the rebound
	ImpactSpeed float64    // downward speed at contact
	SpeedAfter  float64
}
