package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

func (s *Sphere) shape() {}

// Intersect solves the ray-sphere quadratic for a unit-length ray direction,
// trying the near root before the far one.
func (s *Sphere) Intersect(ray core.Ray, info *IntersectInfo) bool {
	oc := ray.Origin.Subtract(s.Center)
	b := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius
	discriminant := b*b - c
	if discriminant < 0 {
		return false
	}

	sqrtD := math.Sqrt(discriminant)
	t := -b - sqrtD
	if t < ray.TMin || t > ray.TMax {
		t = -b + sqrtD
		if t < ray.TMin || t > ray.TMax {
			return false
		}
	}

	info.T = t
	info.Position = ray.At(t)
	outward := info.Position.Subtract(s.Center).Multiply(1 / s.Radius)
	info.SetFaceNormal(ray, outward)

	phi, theta := core.CartesianToSpherical(outward)
	info.TexCoord = core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
	return true
}

// Bounds returns the axis-aligned bounding box for this sphere
func (s *Sphere) Bounds() core.AABB {
	r := core.Splat(s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// Centroid returns the center of the sphere
func (s *Sphere) Centroid() core.Vec3 {
	return s.Center
}
