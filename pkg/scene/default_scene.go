package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewGroundSquare creates a large horizontal square to stand in for an
// infinite ground plane, centered at the given point with the normal
// pointing up
func NewGroundSquare(center core.Vec3, size float64, mat core.Material) *geometry.Square {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (size,0,0) × (0,0,-size) points up (0,1,0) after normalizing
	u := core.NewVec3(size, 0, 0)
	v := core.NewVec3(0, 0, -size)
	return geometry.NewSquare(corner, u, v, mat)
}

// NewDefaultScene creates a small showcase scene: a ground plane, a
// matte sphere, a mirror sphere, and a glass sphere under a directional
// sun and a warm point light, with a sky gradient background
func NewDefaultScene(aspectRatio float64) *Scene {
	s := &Scene{
		Cam: renderer.NewCamera(
			core.NewVec3(0, 1.2, 4), // eye
			core.NewVec3(0, 0.6, 0), // look at
			core.NewVec3(0, 1, 0),   // up
			45,                      // vertical fov
			aspectRatio,
		),
		AmbientLight: core.NewVec3(0.2, 0.2, 0.2),
		Env: NewGradientBackground(
			core.NewVec3(0.5, 0.7, 1.0), // sky blue
			core.NewVec3(1.0, 1.0, 1.0), // white horizon
		),
	}

	// Ground
	s.Add(NewGroundSquare(core.NewVec3(0, 0, 0), 20,
		material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.6))))

	// Matte, mirror, and glass spheres
	s.Add(geometry.NewSphere(core.NewVec3(-1.4, 0.6, 0), 0.6,
		material.NewDiffuse(core.NewVec3(0.8, 0.3, 0.3))))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0.6, -0.8), 0.6,
		material.NewReflective(core.NewVec3(0.2, 0.2, 0.2), core.NewVec3(0.7, 0.7, 0.7), 128)))
	s.Add(geometry.NewSphere(core.NewVec3(1.4, 0.6, 0.2), 0.6,
		material.NewTransmissive(core.NewVec3(0.9, 0.9, 0.9), 1.5)))

	s.AddLight(lights.NewDirectional(
		core.NewVec3(-0.3, -1, -0.4), core.NewVec3(0.8, 0.8, 0.8)))
	s.AddLight(lights.NewPoint(
		core.NewVec3(3, 4, 3), core.NewVec3(0.6, 0.5, 0.4), 0.25, 0.01, 0.005))

	return s
}
