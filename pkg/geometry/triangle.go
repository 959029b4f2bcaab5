package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Triangle is defined by three vertices with per-vertex normals and texture coordinates
type Triangle struct {
	V0, V1, V2 core.Vec3
	N0, N1, N2 core.Vec3
	T0, T1, T2 core.Vec2

	bbox core.AABB
}

// NewTriangle creates a flat-shaded triangle with default texture coordinates
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	n := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return NewTriangleWithAttributes(
		[3]core.Vec3{v0, v1, v2},
		[3]core.Vec3{n, n, n},
		[3]core.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
	)
}

// NewTriangleWithAttributes creates a triangle with explicit vertex normals and texcoords
func NewTriangleWithAttributes(vertices [3]core.Vec3, normals [3]core.Vec3, texcoords [3]core.Vec2) *Triangle {
	t := &Triangle{
		V0: vertices[0], V1: vertices[1], V2: vertices[2],
		N0: normals[0], N1: normals[1], N2: normals[2],
		T0: texcoords[0], T1: texcoords[1], T2: texcoords[2],
	}
	t.bbox = core.NewAABBFromPoints(t.V0, t.V1, t.V2)
	return t
}

func (t *Triangle) shape() {}

// Barycentric runs Möller–Trumbore and returns the ray parameter and the
// barycentric coordinates (u, v) of the hit. Parallel rays report no hit.
func (t *Triangle) Barycentric(ray core.Ray) (tHit, u, v float64, ok bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u = f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, 0, 0, false
	}

	return f * edge2.Dot(q), u, v, true
}

// Intersect tests the ray against the triangle and interpolates hit attributes
func (t *Triangle) Intersect(ray core.Ray, info *IntersectInfo) bool {
	tHit, u, v, ok := t.Barycentric(ray)
	if !ok || tHit < ray.TMin || tHit > ray.TMax {
		return false
	}

	w := 1 - u - v
	info.T = tHit
	info.Position = t.V0.Multiply(w).Add(t.V1.Multiply(u)).Add(t.V2.Multiply(v))
	normal := t.N0.Multiply(w).Add(t.N1.Multiply(u)).Add(t.N2.Multiply(v)).Normalize()
	info.SetFaceNormal(ray, normal)
	info.TexCoord = t.T0.Multiply(w).Add(t.T1.Multiply(u)).Add(t.T2.Multiply(v))
	return true
}

// Bounds returns the axis-aligned bounding box for this triangle
func (t *Triangle) Bounds() core.AABB {
	return t.bbox
}

// Centroid returns the mean of the three vertices
func (t *Triangle) Centroid() core.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Multiply(1.0 / 3.0)
}
