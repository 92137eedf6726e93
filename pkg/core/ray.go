package core

// RayEpsilon offsets spawned ray origins to avoid immediate
// self-intersection with the originating surface.
const RayEpsilon = 1e-5

// RayKind tags a ray with why it was spawned. The tag is bookkeeping
// only and never changes intersection behavior.
type RayKind int

const (
	Visibility RayKind = iota
	Reflection
	Refraction
	Shadow
)

// Ray represents a ray with an origin, a direction, a per-channel
// carried weight, and a kind tag
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Weight    Vec3 // Carried attenuation, starts at (1,1,1) for primary rays
	Kind      RayKind
}

// NewRay creates a new ray with full carried weight
func NewRay(origin, direction Vec3, kind RayKind) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		Weight:    NewVec3(1, 1, 1),
		Kind:      kind,
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
