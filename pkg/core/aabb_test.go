package core

import (
	"math"
	"testing"
)

func TestAABB_EmptyIsUnionIdentity(t *testing.T) {
	boxes := []AABB{
		NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1)),
		NewAABB(NewVec3(-3, 2, 5), NewVec3(-1, 4, 9)),
		NewAABBFromPoints(NewVec3(1, 2, 3)),
	}

	for _, box := range boxes {
		if got := EmptyAABB().Union(box); got != box {
			t.Errorf("empty ∪ %v: expected identity, got %v", box, got)
		}
		if got := box.Union(EmptyAABB()); got != box {
			t.Errorf("%v ∪ empty: expected identity, got %v", box, got)
		}
	}

	if EmptyAABB().IsValid() {
		t.Error("Expected empty box to be invalid")
	}
	if EmptyAABB().SurfaceArea() != 0 {
		t.Error("Expected empty box to have zero area")
	}
}

func TestAABB_UnionCommutativeAssociative(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-2, 0.5, 0), NewVec3(0.5, 3, 0.5))
	c := NewAABB(NewVec3(5, -1, -1), NewVec3(6, 0, 2))

	if a.Union(b) != b.Union(a) {
		t.Error("Expected union to be commutative")
	}
	if a.Union(b).Union(c) != a.Union(b.Union(c)) {
		t.Error("Expected union to be associative")
	}
}

func TestAABB_Properties(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(4, 2, 1))

	if box.LongestAxis() != 0 {
		t.Errorf("Expected longest axis 0, got %d", box.LongestAxis())
	}
	if c := box.Center(); c != NewVec3(2, 1, 0.5) {
		t.Errorf("Expected center (2,1,0.5), got %v", c)
	}
	if sa := box.SurfaceArea(); math.Abs(sa-28) > 1e-12 {
		t.Errorf("Expected surface area 28, got %v", sa)
	}
	if !box.Contains(NewVec3(4, 2, 1)) || box.Contains(NewVec3(4.1, 0, 0)) {
		t.Error("Contains gave wrong result on boundary")
	}
}

func invDir(d Vec3) (Vec3, [3]bool) {
	inv := NewVec3(1/d.X, 1/d.Y, 1/d.Z)
	return inv, [3]bool{inv.X < 0, inv.Y < 0, inv.Z < 0}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"Through center", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), true},
		{"Miss to the side", NewRay(NewVec3(3, 0, -5), NewVec3(0, 0, 1)), false},
		{"Pointing away", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)), false},
		{"Origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)), true},
		{"Diagonal", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1).Normalize()), true},
		{"Axis parallel outside slab", NewRay(NewVec3(0, 2, -5), NewVec3(0, 0, 1)), false},
		{"Interval ends before box", Ray{Origin: NewVec3(0, 0, -5), Direction: NewVec3(0, 0, 1), TMin: RayTMin, TMax: 3}, false},
		{"Interval starts after box", Ray{Origin: NewVec3(0, 0, -5), Direction: NewVec3(0, 0, 1), TMin: 7, TMax: RayTMax}, false},
		{"Axis parallel on max face", NewRay(NewVec3(0, 1, -5), NewVec3(0, 0, 1)), true},
		{"Axis parallel on min face", NewRay(NewVec3(-1, 0, -5), NewVec3(0, 0, 1)), true},
		{"Negative direction on face", NewRay(NewVec3(0.5, -1, 5), NewVec3(0, 0, -1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, neg := invDir(tt.ray.Direction)
			if got := box.Hit(tt.ray, inv, neg); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_Hit_FlatBox(t *testing.T) {
	// a triangle lying in y=0 has a zero-thickness box
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 0, 0), NewVec3(0, 0, 1))

	ray := NewRay(NewVec3(0.2, 0, -1), NewVec3(0, 0, 1))
	inv, neg := invDir(ray.Direction)
	if !box.Hit(ray, inv, neg) {
		t.Error("Expected ray travelling in the plane of a flat box to hit it")
	}

	ray = NewRay(NewVec3(0.2, 0.1, -1), NewVec3(0, 0, 1))
	inv, neg = invDir(ray.Direction)
	if box.Hit(ray, inv, neg) {
		t.Error("Expected ray just above a flat box to miss it")
	}
}
