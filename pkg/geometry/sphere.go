package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect returns the nearest hit with t > RayEpsilon
func (s *Sphere) Intersect(ray core.Ray) (core.Isect, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.NewIsect(), false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= core.RayEpsilon {
		root = (-halfB + sqrtD) / a
		if root <= core.RayEpsilon {
			return core.NewIsect(), false
		}
	}

	// Outward normal, from center to hit point. The tracer relies on
	// the sign of d·n to tell entering from exiting, so the normal is
	// never flipped toward the ray here.
	outwardNormal := ray.At(root).Subtract(s.Center).Multiply(1.0 / s.Radius)

	return core.Isect{
		T:        root,
		Normal:   outwardNormal,
		Material: s.Material,
	}, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

// Normal returns the degenerate tie-break normal. A sphere has no
// single representative normal, so this is the zero vector.
func (s *Sphere) Normal() core.Vec3 {
	return core.Vec3{}
}
