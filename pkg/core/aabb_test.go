package core

import (
	"math"
	"testing"
)

func TestAABB_Intersect_ClipsInterval(t *testing.T) {
	box := NewAABB(NewVec3(1, -1, -1), NewVec3(3, 1, 1))
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0), Visibility)

	tMin, tMax, ok := box.Intersect(ray, 0, 1000)
	if !ok {
		t.Fatal("Expected intersection with box ahead of ray")
	}

	const tolerance = 1e-9
	if math.Abs(tMin-1.0) > tolerance || math.Abs(tMax-3.0) > tolerance {
		t.Errorf("Expected interval [1,3], got [%f,%f]", tMin, tMax)
	}
}

func TestAABB_Intersect_Miss(t *testing.T) {
	box := NewAABB(NewVec3(1, 2, -1), NewVec3(3, 4, 1))
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0), Visibility)

	if _, _, ok := box.Intersect(ray, 0, 1000); ok {
		t.Error("Expected miss for ray passing under the box")
	}
}

func TestAABB_Intersect_ParallelRay(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name   string
		origin Vec3
		expect bool
	}{
		{"parallel inside slab", NewVec3(0, 0, -5), true},
		{"parallel outside slab", NewVec3(2, 0, -5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Direction has an exact zero X and Y component
			ray := NewRay(tt.origin, NewVec3(0, 0, 1), Visibility)

			gotMin, gotMax, ok := box.Intersect(ray, 0, 1000)
			if ok != tt.expect {
				t.Fatalf("Expected ok=%t, got %t", tt.expect, ok)
			}
			if ok {
				// Result must be finite, never NaN from a zero denominator
				if math.IsNaN(gotMin) || math.IsNaN(gotMax) || math.IsInf(gotMin, 0) || math.IsInf(gotMax, 0) {
					t.Errorf("Interval contains NaN/Inf: [%f,%f]", gotMin, gotMax)
				}
			}
		})
	}
}

func TestAABB_Intersect_WindowAlreadyClosed(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1), Visibility)

	// The box spans t in [4,6]; a window ending before it must fail
	if _, _, ok := box.Intersect(ray, 0, 2); ok {
		t.Error("Expected failure when the valid window ends before the box")
	}
}

func TestAABB_SurfaceArea(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 2, 3))
	// 2*(1*2 + 2*3 + 3*1) = 22
	if got := box.SurfaceArea(); math.Abs(got-22) > 1e-9 {
		t.Errorf("Expected area 22, got %f", got)
	}
}

func TestAABB_SetAxisBounds(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(4, 4, 4))

	left := box.SetAxisMax(0, 1.5)
	right := box.SetAxisMin(0, 1.5)

	if left.Max.X != 1.5 || left.Min.X != 0 {
		t.Errorf("Left child box wrong: %v", left)
	}
	if right.Min.X != 1.5 || right.Max.X != 4 {
		t.Errorf("Right child box wrong: %v", right)
	}
	// Children stay subsets of the parent along the split axis
	if !left.IsValid() || !right.IsValid() {
		t.Error("Child boxes must remain valid")
	}
	// Original is unchanged
	if box.Min.X != 0 || box.Max.X != 4 {
		t.Errorf("Parent box mutated: %v", box)
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, 0.5, 0), NewVec3(0.5, 2, 3))

	u := a.Union(b)
	expected := NewAABB(NewVec3(-1, 0, 0), NewVec3(1, 2, 3))
	if u != expected {
		t.Errorf("Expected %v, got %v", expected, u)
	}
}
