package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the identity of Union: min at +Inf and max at -Inf
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB()
	for _, point := range points {
		box = box.UnionPoint(point)
	}
	return box
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: aabb.Min.Min(other.Min), Max: aabb.Max.Max(other.Max)}
}

// UnionPoint returns an AABB grown to contain p
func (aabb AABB) UnionPoint(p Vec3) AABB {
	return AABB{Min: aabb.Min.Min(p), Max: aabb.Max.Max(p)}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB
func (aabb AABB) SurfaceArea() float64 {
	if !aabb.IsValid() {
		return 0
	}
	size := aabb.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Contains reports whether p lies inside or on the box
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// Hit tests a ray against the box using the Williams et al. slab test.
// dirInv and dirIsNeg are computed once per query. The ray interval is
// narrowed axis by axis; a NaN slab bound (zero direction with the origin on
// a face) fails both comparisons and leaves the interval unchanged.
func (aabb AABB) Hit(ray Ray, dirInv Vec3, dirIsNeg [3]bool) bool {
	tmin, tmax := ray.TMin, ray.TMax
	for axis := 0; axis < 3; axis++ {
		near, far := aabb.Min.Axis(axis), aabb.Max.Axis(axis)
		if dirIsNeg[axis] {
			near, far = far, near
		}
		origin, inv := ray.Origin.Axis(axis), dirInv.Axis(axis)

		if t0 := (near - origin) * inv; t0 > tmin {
			tmin = t0
		}
		if t1 := (far - origin) * inv; t1 < tmax {
			tmax = t1
		}
		if tmin > tmax {
			return false
		}
	}
	return true
}
