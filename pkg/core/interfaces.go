package core

// NoHitT is the sentinel hit parameter for an uninitialized intersection
// record. Any real hit has t well below this value.
const NoHitT = 1e13

// Isect describes a ray-surface hit: the hit parameter t along the ray,
// the surface normal at the hit, and the material of the hit surface.
type Isect struct {
	T        float64
	Normal   Vec3
	Material Material
}

// NewIsect creates an intersection record in the "no hit" state
func NewIsect() Isect {
	return Isect{T: NoHitT}
}

// Hit reports whether this record describes a real intersection
func (i Isect) Hit() bool {
	return i.T < NoHitT
}

// Geometry is implemented by every object that can be placed in a scene
type Geometry interface {
	// Intersect returns the nearest hit with t > RayEpsilon, or false
	Intersect(r Ray) (Isect, bool)
	// BoundingBox returns the fixed world-space bounds, precomputed at
	// construction and never recomputed against ray direction
	BoundingBox() AABB
	// Normal returns a representative (possibly degenerate) surface
	// normal, used to break ties at axis-aligned split boundaries
	Normal() Vec3
}

// Material supplies the local shading model and the coefficients that
// decide whether recursive rays are spawned
type Material interface {
	// Shade computes the local reflected color at a hit, including
	// per-light shadow-attenuated contributions
	Shade(scene Scene, r Ray, i Isect) Vec3
	Kr() Vec3        // Reflectance coefficient
	Kt() Vec3        // Transmittance coefficient
	Index() float64  // Refractive index
	Refl() bool      // Whether reflection rays should be spawned
	Trans() bool     // Whether refraction rays should be spawned
}

// Light is the shared capability set of all light variants
type Light interface {
	DistanceAttenuation(p Vec3) float64
	ShadowAttenuation(scene Scene, p Vec3) Vec3
	Color() Vec3
	Direction(p Vec3) Vec3
}

// Scene answers "first hit along ray" and exposes the data shading needs
type Scene interface {
	Intersect(r Ray) (Isect, bool)
	Lights() []Light
	Ambient() Vec3
}

// Background samples an environment color by ray direction, consulted
// only when a ray misses all geometry
type Background interface {
	Sample(r Ray) Vec3
}

// Camera produces a ray through normalized window coordinates
// (0 <= x,y <= 1). The projection math behind it is opaque to the tracer.
type Camera interface {
	RayThrough(x, y float64) Ray
	AspectRatio() float64
}

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
