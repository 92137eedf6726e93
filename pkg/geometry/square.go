package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Square represents a flat rectangular surface defined by a corner and
// two edge vectors
type Square struct {
	Corner   core.Vec3 // One corner of the square
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Material core.Material

	normal core.Vec3 // Cached normal (U × V, normalized)
	d      float64   // Plane equation constant: normal · point = d
	w      core.Vec3 // Cached cross product for barycentric coordinates
	bbox   core.AABB // Cached bounding box
}

// NewSquare creates a new square from a corner point and two edge vectors
func NewSquare(corner, u, v core.Vec3, material core.Material) *Square {
	cross := u.Cross(v)
	normal := cross.Normalize()

	sq := &Square{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: material,
		normal:   normal,
		d:        normal.Dot(corner),
		w:        normal.Multiply(1.0 / normal.Dot(cross)),
	}

	// A flat square has a zero-thickness bounding box along its normal;
	// pad it slightly so slab tests stay well conditioned
	sq.bbox = core.NewAABBFromPoints(
		corner,
		corner.Add(u),
		corner.Add(v),
		corner.Add(u).Add(v),
	).Expand(core.RayEpsilon)

	return sq
}

// Intersect returns the nearest hit with t > RayEpsilon
func (q *Square) Intersect(ray core.Ray) (core.Isect, bool) {
	denominator := ray.Direction.Dot(q.normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return core.NewIsect(), false
	}

	t := (q.d - ray.Origin.Dot(q.normal)) / denominator
	if t <= core.RayEpsilon {
		return core.NewIsect(), false
	}

	// Barycentric check that the plane hit lies inside the square
	hitVector := ray.At(t).Subtract(q.Corner)
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return core.NewIsect(), false
	}

	return core.Isect{
		T:        t,
		Normal:   q.normal,
		Material: q.Material,
	}, true
}

// BoundingBox returns the axis-aligned bounding box for this square
func (q *Square) BoundingBox() core.AABB {
	return q.bbox
}

// Normal returns the square's plane normal, used to break ties when a
// split plane lands exactly on this flat surface
func (q *Square) Normal() core.Vec3 {
	return q.normal
}
