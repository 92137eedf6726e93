package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder represents a finite cylinder shape (open-ended, no caps)
type Cylinder struct {
	BaseCenter core.Vec3
	TopCenter  core.Vec3
	Radius     float64
	Material   core.Material

	// Cached derived values
	axis   core.Vec3 // Unit vector from base to top
	height float64   // Distance between base and top
	bbox   core.AABB
}

// NewCylinder creates a new cylinder
func NewCylinder(baseCenter, topCenter core.Vec3, radius float64, material core.Material) *Cylinder {
	axisVector := topCenter.Subtract(baseCenter)
	height := axisVector.Length()
	axis := axisVector.Normalize()

	c := &Cylinder{
		BaseCenter: baseCenter,
		TopCenter:  topCenter,
		Radius:     radius,
		Material:   material,
		axis:       axis,
		height:     height,
	}
	c.bbox = c.computeBoundingBox()
	return c
}

// computeBoundingBox bounds the axis segment, extended by the radius on
// every axis the cylinder axis is not parallel to
func (c *Cylinder) computeBoundingBox() core.AABB {
	segment := core.NewAABBFromPoints(c.BaseCenter, c.TopCenter)

	const parallelThreshold = 0.9999

	extent := core.NewVec3(c.Radius, c.Radius, c.Radius)
	for axis := 0; axis < 3; axis++ {
		if math.Abs(c.axis.Axis(axis)) > parallelThreshold {
			extent = extent.SetAxis(axis, 0)
		}
	}

	return core.NewAABB(segment.Min.Subtract(extent), segment.Max.Add(extent))
}

// Intersect returns the nearest hit with t > RayEpsilon
func (c *Cylinder) Intersect(ray core.Ray) (core.Isect, bool) {
	// Vector from base center to ray origin
	delta := ray.Origin.Subtract(c.BaseCenter)

	dv := ray.Direction.Dot(c.axis)
	deltaV := delta.Dot(c.axis)

	// Quadratic equation coefficients for the infinite cylinder:
	// a = |D|² - (D·V̂)², b = 2[Δ·D - (Δ·V̂)(D·V̂)], cc = |Δ|² - (Δ·V̂)² - r²
	a := ray.Direction.LengthSquared() - dv*dv
	b := 2.0 * (delta.Dot(ray.Direction) - deltaV*dv)
	cc := delta.LengthSquared() - deltaV*deltaV - c.Radius*c.Radius

	// Ray parallel to the cylinder axis never crosses the curved surface
	const epsilon = 1e-8
	if math.Abs(a) < epsilon {
		return core.NewIsect(), false
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return core.NewIsect(), false
	}

	sqrtD := math.Sqrt(discriminant)

	// Test both roots in near-to-far order, keeping the first one that
	// is ahead of the origin and within the height bounds
	for _, t := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if t <= core.RayEpsilon {
			continue
		}
		point := ray.At(t)
		h := point.Subtract(c.BaseCenter).Dot(c.axis)
		if h < 0 || h > c.height {
			continue
		}

		// Normal points radially outward from the axis
		axisPoint := c.BaseCenter.Add(c.axis.Multiply(h))
		return core.Isect{
			T:        t,
			Normal:   point.Subtract(axisPoint).Normalize(),
			Material: c.Material,
		}, true
	}

	return core.NewIsect(), false
}

// BoundingBox returns the axis-aligned bounding box for this cylinder
func (c *Cylinder) BoundingBox() core.AABB {
	return c.bbox
}

// Normal returns the degenerate tie-break normal (zero for a cylinder)
func (c *Cylinder) Normal() core.Vec3 {
	return core.Vec3{}
}
