package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Scene owns the objects, lights, camera, ambient term, optional
// background sampler, and the optional kd-tree built over the objects
type Scene struct {
	Objects      []core.Geometry
	LightList    []core.Light
	Cam          core.Camera
	AmbientLight core.Vec3
	Env          core.Background // Optional, nil means black on miss

	tree *geometry.KdTree
}

// Add appends an object to the scene
func (s *Scene) Add(obj core.Geometry) {
	s.Objects = append(s.Objects, obj)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light core.Light) {
	s.LightList = append(s.LightList, light)
}

// Lights returns the scene's light list
func (s *Scene) Lights() []core.Light {
	return s.LightList
}

// Ambient returns the scene's ambient light color
func (s *Scene) Ambient() core.Vec3 {
	return s.AmbientLight
}

// Camera returns the scene's camera
func (s *Scene) Camera() core.Camera {
	return s.Cam
}

// Background returns the scene's environment sampler, or nil
func (s *Scene) Background() core.Background {
	return s.Env
}

// Bounds returns the union of all object bounding boxes
func (s *Scene) Bounds() core.AABB {
	if len(s.Objects) == 0 {
		return core.AABB{}
	}

	bounds := s.Objects[0].BoundingBox()
	for _, obj := range s.Objects[1:] {
		bounds = bounds.Union(obj.BoundingBox())
	}
	return bounds
}

// BuildTree constructs the kd-tree over the current object set. It must
// complete before any tracing worker is launched; the tree is never
// mutated during queries.
func (s *Scene) BuildTree(depthLimit, leafSize int) {
	s.tree = geometry.NewKdTree(s.Objects, s.Bounds(), depthLimit, leafSize)
}

// ClearTree drops the kd-tree, forcing linear intersection
func (s *Scene) ClearTree() {
	s.tree = nil
}

// HasTree reports whether a kd-tree has been built
func (s *Scene) HasTree() bool {
	return s.tree != nil && s.tree.Root != nil
}

// Intersect returns the nearest hit along the ray, delegating to the
// kd-tree when built. The tree is an acceleration layer only: without
// one, intersection falls back to a linear scan over all objects.
func (s *Scene) Intersect(r core.Ray) (core.Isect, bool) {
	if s.HasTree() {
		return s.tree.Intersect(r)
	}
	return s.IntersectLinear(r)
}

// IntersectLinear scans every object and keeps the nearest hit. It is
// also the brute-force oracle the kd-tree is tested against.
func (s *Scene) IntersectLinear(r core.Ray) (core.Isect, bool) {
	best := core.NewIsect()

	for _, obj := range s.Objects {
		if hit, ok := obj.Intersect(r); ok && hit.T < best.T {
			best = hit
		}
	}

	return best, best.Hit()
}
