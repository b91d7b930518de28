package trajectory

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/meghashyamc/dreamgolf/geometry"
)

// Result is the predicted path of one shot. Callers must treat it as
// immutable; Clip returns a new Result.
type Result struct {
	Points       []mgl64.Vec3
	BouncePoints []mgl64.Vec3
	Landing      *mgl64.Vec3 // first ground contact, nil if the ball never lands
}

// Length is the path length of the polyline.
func (r Result) Length() float64 {
	return geometry.PathLength(r.Points)
}

// Clip cuts the path after maxDistance of travel. The last point is
// interpolated onto the cut. Bounce and landing points past the cut are dropped.
func (r Result) Clip(maxDistance float64) Result {
	if len(r.Points) == 0 {
		return Result{}
	}
	if maxDistance <= 0 {
		return Result{Points: r.Points[:1:1]}
	}

	clipped := Result{Points: []mgl64.Vec3{r.Points[0]}}
	travelled := 0.0
	cutAt := -1.0
	for i := 1; i < len(r.Points); i++ {
		segment := r.Points[i].Sub(r.Points[i-1])
		length := segment.Len()
		if travelled+length >= maxDistance {
			remaining := maxDistance - travelled
			if length > 0 {
				clipped.Points = append(clipped.Points, r.Points[i-1].Add(segment.Mul(remaining/length)))
			}
			cutAt = maxDistance
			break
		}
		travelled += length
		clipped.Points = append(clipped.Points, r.Points[i])
	}
	if cutAt < 0 {
		cutAt = travelled
	}

	within := func(p mgl64.Vec3) bool {
		return distanceAlong(r.Points, p) <= cutAt+1e-9
	}
	for _, b := range r.BouncePoints {
		if within(b) {
			clipped.BouncePoints = append(clipped.BouncePoints, b)
		}
	}
	if r.Landing != nil && within(*r.Landing) {
		landing := *r.Landing
		clipped.Landing = &landing
	}
	return clipped
}

// distanceAlong returns the path length up to the first polyline vertex equal
// to p. Bounce points are always vertices of the path.
func distanceAlong(points []mgl64.Vec3, p mgl64.Vec3) float64 {
	travelled := 0.0
	for i := range points {
		if i > 0 {
			travelled += points[i].Sub(points[i-1]).Len()
		}
		if points[i] == p {
			return travelled
		}
	}
	return travelled
}
