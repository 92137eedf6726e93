package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewCornellScene creates a Cornell-style box room exercising every
// primitive kind: square walls, a mirror sphere, a glass sphere, a box,
// a cylinder, a cone, and a small triangle mesh, lit by a single point
// light near the ceiling
func NewCornellScene(aspectRatio float64) *Scene {
	s := &Scene{
		Cam: renderer.NewCamera(
			core.NewVec3(0, 1, 3.6),
			core.NewVec3(0, 1, 0),
			core.NewVec3(0, 1, 0),
			50,
			aspectRatio,
		),
		AmbientLight: core.NewVec3(0.15, 0.15, 0.15),
		// No background: rays escaping the open front stay black
	}

	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))

	// Room: floor, ceiling, back wall, and the two colored side walls.
	// Each square's normal faces into the room.
	s.Add(geometry.NewSquare(core.NewVec3(-2, 0, 2),
		core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), white)) // floor
	s.Add(geometry.NewSquare(core.NewVec3(-2, 2, -2),
		core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), white)) // ceiling
	s.Add(geometry.NewSquare(core.NewVec3(-2, 0, -2),
		core.NewVec3(4, 0, 0), core.NewVec3(0, 2, 0), white)) // back wall
	s.Add(geometry.NewSquare(core.NewVec3(-2, 0, 2),
		core.NewVec3(0, 0, -4), core.NewVec3(0, 2, 0), red)) // left wall
	s.Add(geometry.NewSquare(core.NewVec3(2, 0, -2),
		core.NewVec3(0, 0, 4), core.NewVec3(0, 2, 0), green)) // right wall

	// Contents
	s.Add(geometry.NewSphere(core.NewVec3(-0.9, 0.45, -0.6), 0.45,
		material.NewReflective(core.NewVec3(0.2, 0.2, 0.2), core.NewVec3(0.8, 0.8, 0.8), 256)))
	s.Add(geometry.NewSphere(core.NewVec3(0.9, 0.4, 0.4), 0.4,
		material.NewTransmissive(core.NewVec3(0.9, 0.9, 0.9), 1.5)))
	s.Add(geometry.NewBox(core.NewVec3(0.7, 0.5, -1.1), core.NewVec3(0.35, 0.5, 0.35),
		material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.2))))
	s.Add(geometry.NewCylinder(core.NewVec3(-1.4, 0, 0.8), core.NewVec3(-1.4, 0.9, 0.8), 0.25,
		material.NewDiffuse(core.NewVec3(0.2, 0.4, 0.7))))

	cone, err := geometry.NewCone(core.NewVec3(0, 0, 0.9), 0.3,
		core.NewVec3(0, 0.8, 0.9), 0, true,
		material.NewDiffuse(core.NewVec3(0.7, 0.4, 0.1)))
	if err == nil {
		s.Add(cone)
	}

	// Small tetrahedron mesh in the back corner
	mesh, err := geometry.NewTriangleMesh(
		[]core.Vec3{
			core.NewVec3(-0.3, 0, -1.6),
			core.NewVec3(0.3, 0, -1.6),
			core.NewVec3(0, 0, -1.1),
			core.NewVec3(0, 0.7, -1.45),
		},
		[][3]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {2, 0, 3}},
		material.NewDiffuse(core.NewVec3(0.5, 0.3, 0.6)))
	if err == nil {
		s.Add(mesh)
	}

	s.AddLight(lights.NewPoint(
		core.NewVec3(0, 1.9, 0), core.NewVec3(1, 1, 1), 0.25, 0.05, 0.01))

	return s
}
