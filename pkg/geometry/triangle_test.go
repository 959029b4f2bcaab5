package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestTriangle_CentroidBarycentrics(t *testing.T) {
	tri := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	centroid := tri.Centroid()

	ray := core.NewRay(centroid.Add(core.NewVec3(0, 0, 2)), core.NewVec3(0, 0, -1))
	tHit, u, v, ok := tri.Barycentric(ray)
	if !ok {
		t.Fatal("Expected hit through centroid")
	}
	if math.Abs(tHit-2) > 1e-9 {
		t.Errorf("Expected t=2, got %v", tHit)
	}
	w := 1 - u - v
	for i, b := range []float64{w, u, v} {
		if math.Abs(b-1.0/3.0) > 1e-9 {
			t.Errorf("barycentric %d: expected 1/3, got %v", i, b)
		}
	}
}

func TestTriangle_BarycentricPartition(t *testing.T) {
	tri := NewTriangle(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 3, 0))
	s := core.NewPCGSampler(17)

	for i := 0; i < 1000; i++ {
		// uniform point strictly inside the triangle
		r1, r2 := s.Get1D(), s.Get1D()
		if r1+r2 >= 1 {
			r1, r2 = 1-r1, 1-r2
		}
		p := tri.V0.Multiply(1 - r1 - r2).Add(tri.V1.Multiply(r1)).Add(tri.V2.Multiply(r2))

		ray := core.NewRay(p.Add(core.NewVec3(0.1, 0.2, 5)), core.NewVec3(-0.1, -0.2, -5).Normalize())
		_, u, v, ok := tri.Barycentric(ray)
		if !ok {
			t.Fatalf("Expected hit at interior point %v", p)
		}
		if u < 0 || v < 0 || u+v > 1 {
			t.Fatalf("Expected barycentrics in the simplex, got u=%v v=%v", u, v)
		}
	}
}

func TestTriangle_Intersect(t *testing.T) {
	tri := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))

	tests := []struct {
		name     string
		ray      core.Ray
		expected bool
	}{
		{"Hit from front", core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1)), true},
		{"Hit from back", core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)), true},
		{"Outside edge", core.NewRay(core.NewVec3(0.8, 0.8, 1), core.NewVec3(0, 0, -1)), false},
		{"Parallel", core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(1, 0, 0)), false},
		{"Behind origin", core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var info IntersectInfo
			if got := tri.Intersect(tt.ray, &info); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if tt.expected && info.Normal.Dot(tt.ray.Direction) >= 0 {
				t.Errorf("Expected normal to face the ray, got %v", info.Normal)
			}
		})
	}
}

func TestTriangle_InterpolatesAttributes(t *testing.T) {
	tri := NewTriangleWithAttributes(
		[3]core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)},
		[3]core.Vec3{core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 1).Normalize(), core.NewVec3(0, 1, 1).Normalize()},
		[3]core.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
	)

	ray := core.NewRay(core.NewVec3(0.5, 0.25, 1), core.NewVec3(0, 0, -1))
	var info IntersectInfo
	if !tri.Intersect(ray, &info) {
		t.Fatal("Expected hit")
	}
	if math.Abs(info.TexCoord.X-0.5) > 1e-9 || math.Abs(info.TexCoord.Y-0.25) > 1e-9 {
		t.Errorf("Expected texcoord (0.5, 0.25), got %v", info.TexCoord)
	}
	if math.Abs(info.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected renormalised normal, got length %v", info.Normal.Length())
	}
	if info.Normal.X <= 0 || info.Normal.Y <= 0 {
		t.Errorf("Expected normal tilted toward +X and +Y, got %v", info.Normal)
	}
}

func TestTriangle_Degenerate(t *testing.T) {
	tri := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(2, 0, 0))
	ray := core.NewRay(core.NewVec3(0.5, 0, 1), core.NewVec3(0, 0, -1))
	var info IntersectInfo
	if tri.Intersect(ray, &info) {
		t.Error("Expected zero-area triangle to miss")
	}
}
