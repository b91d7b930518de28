package geometry

import "github.com/go-gl/mathgl/mgl64"

// Projection maps world coordinates onto the screen for the top-down view.
// Height lifts the point up the screen by HeightScale pixels per unit.
type Projection struct {
	OriginX     float64
	OriginY     float64
	Scale       float64 // pixels per world unit
	HeightScale float64
}

func (p Projection) ToScreen(world mgl64.Vec3) (x, y float64) {
	x = p.OriginX + world.X()*p.Scale
	y = p.OriginY + world.Z()*p.Scale - world.Y()*p.HeightScale
	return x, y
}

// GroundToScreen projects the ground shadow of a point.
func (p Projection) GroundToScreen(world mgl64.Vec3) (x, y float64) {
	return p.ToScreen(Horizontal(world))
}
