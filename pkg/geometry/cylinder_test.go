package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func testCylinder() *Cylinder {
	// Unit-radius cylinder along the y axis from y=0 to y=2
	return NewCylinder(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 2, 0),
		1.0,
		material.NewDiffuse(core.NewVec3(1, 1, 1)),
	)
}

func TestCylinder_Intersect(t *testing.T) {
	cyl := testCylinder()

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{"hit side", core.NewVec3(3, 1, 0), core.NewVec3(-1, 0, 0), true, 2.0, core.NewVec3(1, 0, 0)},
		{"hit side from -z", core.NewVec3(0, 1, -3), core.NewVec3(0, 0, 1), true, 2.0, core.NewVec3(0, 0, -1)},
		{"miss above height", core.NewVec3(3, 3, 0), core.NewVec3(-1, 0, 0), false, 0, core.Vec3{}},
		{"miss below height", core.NewVec3(3, -1, 0), core.NewVec3(-1, 0, 0), false, 0, core.Vec3{}},
		{"parallel down the axis misses open ends", core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), false, 0, core.Vec3{}},
		{"inside hits far wall", core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), true, 1.0, core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection, core.Visibility)
			hit, ok := cyl.Intersect(ray)

			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestCylinder_BoundingBox(t *testing.T) {
	cyl := testCylinder()

	bbox := cyl.BoundingBox()
	expectedMin := core.NewVec3(-1, 0, -1)
	expectedMax := core.NewVec3(1, 2, 1)

	if bbox.Min.Subtract(expectedMin).Length() > 1e-9 {
		t.Errorf("Expected min %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max.Subtract(expectedMax).Length() > 1e-9 {
		t.Errorf("Expected max %v, got %v", expectedMax, bbox.Max)
	}
}

func TestCylinder_BoundingBoxTilted(t *testing.T) {
	// Tilted axis: the radius extends the box on every coordinate axis
	cyl := NewCylinder(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 1, 1),
		0.5,
		material.NewDiffuse(core.NewVec3(1, 1, 1)),
	)

	bbox := cyl.BoundingBox()
	for axis := 0; axis < 3; axis++ {
		if bbox.Min.Axis(axis) > -0.5+1e-9 {
			t.Errorf("Axis %d min not extended by radius: %g", axis, bbox.Min.Axis(axis))
		}
		if bbox.Max.Axis(axis) < 1.5-1e-9 {
			t.Errorf("Axis %d max not extended by radius: %g", axis, bbox.Max.Axis(axis))
		}
	}
}
