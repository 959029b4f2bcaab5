package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// IntersectInfo describes the closest hit found by a query
type IntersectInfo struct {
	T         float64
	Position  core.Vec3
	Normal    core.Vec3 // Shading normal, facing against the incoming ray
	TexCoord  core.Vec2
	FrontFace bool // Whether the ray hit the outward-facing side
	Primitive *Primitive

	// BVHDepth counts the BVH nodes visited by the query
	BVHDepth int
}

// SetFaceNormal orients the normal against the ray and records which side was hit
func (info *IntersectInfo) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	info.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if info.FrontFace {
		info.Normal = outwardNormal
	} else {
		info.Normal = outwardNormal.Negate()
	}
}

// Shape is the closed set of intersectable surfaces: *Sphere and *Triangle.
// Intersect writes into info only when it reports a hit in [ray.TMin, ray.TMax].
type Shape interface {
	Intersect(ray core.Ray, info *IntersectInfo) bool
	Bounds() core.AABB
	Centroid() core.Vec3

	shape()
}

// Intersector answers closest-hit queries against a set of primitives
type Intersector interface {
	Intersect(ray core.Ray) (IntersectInfo, bool)
}

// Primitive binds a shape to its material. Both are borrowed from the scene.
type Primitive struct {
	Shape    Shape
	Material *material.Material
}

// Intersect tests the primitive's shape and tags the hit with the primitive
func (p *Primitive) Intersect(ray core.Ray, info *IntersectInfo) bool {
	var hit bool
	switch s := p.Shape.(type) {
	case *Triangle:
		hit = s.Intersect(ray, info)
	case *Sphere:
		hit = s.Intersect(ray, info)
	}
	if hit {
		info.Primitive = p
	}
	return hit
}

// Bounds returns the bounding box of the primitive's shape
func (p *Primitive) Bounds() core.AABB {
	return p.Shape.Bounds()
}

// IsEmissive reports whether the primitive is a light source
func (p *Primitive) IsEmissive() bool {
	return p.Material != nil && p.Material.IsEmissive()
}
