package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   core.Material

	normal core.Vec3 // Cached face normal
	bbox   core.AABB // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   edge1.Cross(edge2).Normalize(),
		bbox:     core.NewAABBFromPoints(v0, v1, v2).Expand(core.RayEpsilon),
	}
}

// Intersect returns the nearest hit with t > RayEpsilon using the
// Möller-Trumbore algorithm
func (tr *Triangle) Intersect(ray core.Ray) (core.Isect, bool) {
	const epsilon = 1e-8

	edge1 := tr.V1.Subtract(tr.V0)
	edge2 := tr.V2.Subtract(tr.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Determinant near zero: ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return core.NewIsect(), false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(tr.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.NewIsect(), false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.NewIsect(), false
	}

	t := f * edge2.Dot(q)
	if t <= core.RayEpsilon {
		return core.NewIsect(), false
	}

	return core.Isect{
		T:        t,
		Normal:   tr.normal,
		Material: tr.Material,
	}, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (tr *Triangle) BoundingBox() core.AABB {
	return tr.bbox
}

// Normal returns the triangle's face normal
func (tr *Triangle) Normal() core.Vec3 {
	return tr.normal
}

// TriangleMesh represents an indexed triangle mesh treated as a single
// scene object
type TriangleMesh struct {
	Material  core.Material
	triangles []*Triangle
	bbox      core.AABB
}

// NewTriangleMesh creates a mesh from a vertex list and a face index
// list (three indices per face)
func NewTriangleMesh(vertices []core.Vec3, faces [][3]int, material core.Material) (*TriangleMesh, error) {
	if len(faces) == 0 {
		return nil, fmt.Errorf("mesh must have at least one face")
	}

	mesh := &TriangleMesh{
		Material:  material,
		triangles: make([]*Triangle, 0, len(faces)),
	}

	for i, face := range faces {
		for _, idx := range face {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d references vertex %d, mesh has %d vertices", i, idx, len(vertices))
			}
		}
		mesh.triangles = append(mesh.triangles, NewTriangle(
			vertices[face[0]], vertices[face[1]], vertices[face[2]], material))
	}

	mesh.bbox = mesh.triangles[0].BoundingBox()
	for _, tr := range mesh.triangles[1:] {
		mesh.bbox = mesh.bbox.Union(tr.BoundingBox())
	}

	return mesh, nil
}

// TriangleCount returns the number of triangles in the mesh
func (m *TriangleMesh) TriangleCount() int {
	return len(m.triangles)
}

// Intersect returns the nearest triangle hit with t > RayEpsilon
func (m *TriangleMesh) Intersect(ray core.Ray) (core.Isect, bool) {
	best := core.NewIsect()

	for _, tr := range m.triangles {
		// Cheap box reject before the exact triangle test
		if !tr.BoundingBox().Hit(ray, core.RayEpsilon, best.T) {
			continue
		}
		if hit, ok := tr.Intersect(ray); ok && hit.T < best.T {
			best = hit
		}
	}

	return best, best.Hit()
}

// BoundingBox returns the axis-aligned bounding box for the whole mesh
func (m *TriangleMesh) BoundingBox() core.AABB {
	return m.bbox
}

// Normal returns the degenerate tie-break normal. A mesh spans many
// faces, so this is the zero vector.
func (m *TriangleMesh) Normal() core.Vec3 {
	return core.Vec3{}
}
