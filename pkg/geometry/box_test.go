package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestBox_Intersect(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), material.NewDiffuse(core.NewVec3(1, 1, 1)))

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "hit front face",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectHit:      true,
			expectedT:      2.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "hit right face",
			rayOrigin:      core.NewVec3(4, 0.5, 0),
			rayDirection:   core.NewVec3(-1, 0, 0),
			expectHit:      true,
			expectedT:      3.0,
			expectedNormal: core.NewVec3(1, 0, 0),
		},
		{
			name:         "miss above",
			rayOrigin:    core.NewVec3(0, 3, 3),
			rayDirection: core.NewVec3(0, 0, -1),
			expectHit:    false,
		},
		{
			name:           "exit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(1, 0, 0),
			expectHit:      true,
			expectedT:      1.0,
			expectedNormal: core.NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection, core.Visibility)
			hit, ok := box.Intersect(ray)

			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, ok)
			}
			if !ok {
				return
			}

			const tolerance = 1e-9
			if math.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestBox_BoundingBox(t *testing.T) {
	box := NewBox(core.NewVec3(1, 0, 0), core.NewVec3(0.5, 1, 2), material.NewDiffuse(core.NewVec3(1, 1, 1)))

	bbox := box.BoundingBox()
	if bbox.Min != core.NewVec3(0.5, -1, -2) || bbox.Max != core.NewVec3(1.5, 1, 2) {
		t.Errorf("Unexpected bounding box [%v, %v]", bbox.Min, bbox.Max)
	}
}
