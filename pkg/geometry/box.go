package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Box represents an axis-aligned rectangular box
type Box struct {
	Center   core.Vec3
	Size     core.Vec3 // Half-extents along each axis
	Material core.Material
	bbox     core.AABB // Cached bounding box
}

// NewBox creates a new axis-aligned box with the given center and
// half-extents (a size of (1,1,1) creates a 2x2x2 box)
func NewBox(center, size core.Vec3, material core.Material) *Box {
	return &Box{
		Center:   center,
		Size:     size,
		Material: material,
		bbox:     core.NewAABB(center.Subtract(size), center.Add(size)),
	}
}

// Intersect returns the nearest hit with t > RayEpsilon using the slab method
func (b *Box) Intersect(ray core.Ray) (core.Isect, bool) {
	tMin, tMax, ok := b.bbox.Intersect(ray, core.RayEpsilon, core.NoHitT)
	if !ok {
		return core.NewIsect(), false
	}

	// Entering hit if the near plane is ahead of the origin, otherwise
	// the ray starts inside the box and exits at the far plane
	t := tMin
	if t <= core.RayEpsilon {
		t = tMax
		if t <= core.RayEpsilon {
			return core.NewIsect(), false
		}
	}

	return core.Isect{
		T:        t,
		Normal:   b.faceNormal(ray.At(t)),
		Material: b.Material,
	}, true
}

// faceNormal finds the outward normal of the face containing the point
// by picking the axis where the point is proportionally furthest from
// the box center
func (b *Box) faceNormal(point core.Vec3) core.Vec3 {
	offset := point.Subtract(b.Center)
	bestAxis := 0
	bestRatio := 0.0

	for axis := 0; axis < 3; axis++ {
		extent := b.Size.Axis(axis)
		if extent == 0 {
			continue
		}
		ratio := math.Abs(offset.Axis(axis)) / extent
		if ratio > bestRatio {
			bestRatio = ratio
			bestAxis = axis
		}
	}

	normal := core.Vec3{}
	if offset.Axis(bestAxis) < 0 {
		return normal.SetAxis(bestAxis, -1)
	}
	return normal.SetAxis(bestAxis, 1)
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return b.bbox
}

// Normal returns the degenerate tie-break normal (zero for a solid box)
func (b *Box) Normal() core.Vec3 {
	return core.Vec3{}
}
