package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func testCone(capped bool) *Cone {
	// Pointed cone: base radius 1 at y=0, apex at y=2
	cone, err := NewCone(
		core.NewVec3(0, 0, 0), 1.0,
		core.NewVec3(0, 2, 0), 0.0,
		capped,
		material.NewDiffuse(core.NewVec3(1, 1, 1)),
	)
	if err != nil {
		panic(err)
	}
	return cone
}

func TestNewCone_Validation(t *testing.T) {
	mat := material.NewDiffuse(core.NewVec3(1, 1, 1))

	tests := []struct {
		name       string
		baseRadius float64
		topCenter  core.Vec3
		topRadius  float64
	}{
		{"zero base radius", 0, core.NewVec3(0, 1, 0), 0},
		{"negative top radius", 1, core.NewVec3(0, 1, 0), -0.5},
		{"top radius not smaller", 1, core.NewVec3(0, 1, 0), 1},
		{"coincident centers", 1, core.NewVec3(0, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCone(core.NewVec3(0, 0, 0), tt.baseRadius, tt.topCenter, tt.topRadius, false, mat)
			if err == nil {
				t.Error("Expected an error, got nil")
			}
		})
	}
}

func TestCone_IntersectBody(t *testing.T) {
	cone := testCone(false)

	// At y=1 the cone radius is 0.5; a horizontal ray should hit at x=0.5
	ray := core.NewRay(core.NewVec3(3, 1, 0), core.NewVec3(-1, 0, 0), core.Visibility)
	hit, ok := cone.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit on cone body")
	}
	if math.Abs(hit.T-2.5) > 1e-9 {
		t.Errorf("Expected t=2.5, got t=%f", hit.T)
	}

	// The normal tilts up the slope: radial (1,0,0) plus tanAngle along the axis
	expected := core.NewVec3(1, 0.5, 0).Normalize()
	if hit.Normal.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected normal %v, got %v", expected, hit.Normal)
	}
}

func TestCone_OpenBaseMissesAxialRay(t *testing.T) {
	cone := testCone(false)

	// Straight up outside the base radius: both infinite-cone crossings
	// fall outside the height bounds
	ray := core.NewRay(core.NewVec3(1.5, -3, 0), core.NewVec3(0, 1, 0), core.Visibility)
	if _, ok := cone.Intersect(ray); ok {
		t.Error("Expected axial ray outside the base radius to miss an open cone")
	}
}

func TestCone_CappedBaseHit(t *testing.T) {
	cone := testCone(true)

	ray := core.NewRay(core.NewVec3(0.8, -3, 0), core.NewVec3(0, 1, 0), core.Visibility)
	hit, ok := cone.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit on base cap")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected t=3.0, got t=%f", hit.T)
	}
	expected := core.NewVec3(0, -1, 0)
	if hit.Normal.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected cap normal %v, got %v", expected, hit.Normal)
	}
}

func TestCone_FrustumTopCap(t *testing.T) {
	frustum, err := NewCone(
		core.NewVec3(0, 0, 0), 1.0,
		core.NewVec3(0, 1, 0), 0.5,
		true,
		material.NewDiffuse(core.NewVec3(1, 1, 1)),
	)
	if err != nil {
		t.Fatalf("NewCone failed: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0.2, 3, 0), core.NewVec3(0, -1, 0), core.Visibility)
	hit, ok := frustum.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit on frustum top cap")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected t=2.0, got t=%f", hit.T)
	}
	expected := core.NewVec3(0, 1, 0)
	if hit.Normal.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected top cap normal %v, got %v", expected, hit.Normal)
	}
}

func TestCone_BoundingBox(t *testing.T) {
	cone := testCone(false)

	bbox := cone.BoundingBox()
	if !bbox.IsValid() {
		t.Fatal("Bounding box must be valid")
	}
	// Conservative bounds must at least contain the base disc and the apex
	if bbox.Min.X > -1 || bbox.Max.X < 1 || bbox.Max.Y < 2 {
		t.Errorf("Bounding box %v does not contain the cone", bbox)
	}
}
