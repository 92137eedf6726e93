package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Directional is a light source at infinity shining along a fixed
// orientation
type Directional struct {
	Orientation core.Vec3 // Direction the light travels, normalized
	color       core.Vec3
}

// NewDirectional creates a directional light
func NewDirectional(orientation, color core.Vec3) *Directional {
	return &Directional{
		Orientation: orientation.Normalize(),
		color:       color,
	}
}

// DistanceAttenuation is constant for a source at infinity
func (l *Directional) DistanceAttenuation(p core.Vec3) float64 {
	return 1.0
}

// Direction returns the direction toward the light, independent of the
// point being shaded
func (l *Directional) Direction(p core.Vec3) core.Vec3 {
	return l.Orientation.Negate()
}

// Color returns the light's color
func (l *Directional) Color() core.Vec3 {
	return l.color
}

// ShadowAttenuation casts a shadow ray from p toward the light. Any hit
// occludes, since the light is infinitely far away. An occluder
// attenuates by its transmittance times the light color, so transparent
// occluders cast colored shadows instead of fully blocking.
func (l *Directional) ShadowAttenuation(scene core.Scene, p core.Vec3) core.Vec3 {
	direction := l.Direction(p).Normalize()

	shadow := core.NewRay(p.Add(direction.Multiply(core.RayEpsilon)), direction, core.Shadow)
	if i, ok := scene.Intersect(shadow); ok {
		return i.Material.Kt().MultiplyVec(l.color)
	}

	return l.color
}
