package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world vertical axis. The ground is the XZ plane.
var Up = mgl64.Vec3{0, 1, 0}

const epsilon = 1e-9

// Normalize returns the unit vector of v, or the zero vector when v has no length.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	magnitude := v.Len()
	if magnitude < epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / magnitude)
}

// Horizontal drops the vertical component.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// HorizontalSpeed is the length of the velocity projected on the ground plane.
func HorizontalSpeed(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}

// RotateY rotates v about the vertical axis by angle radians.
// Positive angles turn +X towards +Z, matching the shot angle convention.
func RotateY(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return mgl64.Vec3{
		v.X()*cos - v.Z()*sin,
		v.Y(),
		v.X()*sin + v.Z()*cos,
	}
}

// Reflect mirrors v about the plane with the given unit normal.
// reflected = incident - 2*(incident·normal)*normal
func Reflect(v, normal mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// DistanceXZ is the ground-plane distance between two points.
func DistanceXZ(a, b mgl64.Vec3) float64 {
	return math.Hypot(a.X()-b.X(), a.Z()-b.Z())
}

// PathLength sums the segment lengths of a polyline.
func PathLength(points []mgl64.Vec3) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i].Sub(points[i-1]).Len()
	}
	return total
}
