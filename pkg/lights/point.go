package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Point is a positioned light with inverse-quadratic distance falloff
type Point struct {
	Position core.Vec3
	color    core.Vec3

	// Attenuation coefficients: constant, linear, quadratic
	ConstantTerm  float64
	LinearTerm    float64
	QuadraticTerm float64
}

// NewPoint creates a point light with the given falloff coefficients
func NewPoint(position, color core.Vec3, constant, linear, quadratic float64) *Point {
	return &Point{
		Position:      position,
		color:         color,
		ConstantTerm:  constant,
		LinearTerm:    linear,
		QuadraticTerm: quadratic,
	}
}

// DistanceAttenuation follows 1/(c0 + c1·d + c2·d²), clamped to 1 so
// very close lights never over-brighten
func (l *Point) DistanceAttenuation(p core.Vec3) float64 {
	d := l.Position.Distance(p)
	return math.Min(1.0, 1.0/(l.ConstantTerm+l.LinearTerm*d+l.QuadraticTerm*d*d))
}

// Direction returns the normalized direction from p toward the light
func (l *Point) Direction(p core.Vec3) core.Vec3 {
	return l.Position.Subtract(p).Normalize()
}

// Color returns the light's color
func (l *Point) Color() core.Vec3 {
	return l.color
}

// ShadowAttenuation casts a shadow ray from p toward the light. Only
// hits closer than the light itself occlude; geometry beyond the light
// cannot shadow it. An occluder attenuates by its transmittance times
// the light color.
func (l *Point) ShadowAttenuation(scene core.Scene, p core.Vec3) core.Vec3 {
	direction := l.Direction(p)

	shadow := core.NewRay(p.Add(direction.Multiply(core.RayEpsilon)), direction, core.Shadow)
	if i, ok := scene.Intersect(shadow); ok {
		if i.T < l.Position.Distance(p) {
			return i.Material.Kt().MultiplyVec(l.color)
		}
	}

	return l.color
}
