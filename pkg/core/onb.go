package core

import "math"

// ONB is an orthonormal basis around a surface normal.
// Local coordinates are y-up: (tangent, normal, bitangent).
type ONB struct {
	Tangent   Vec3
	Normal    Vec3
	Bitangent Vec3
}

// NewONB builds a basis from a unit normal using the branchless
// construction of Duff et al. 2017.
func NewONB(n Vec3) ONB {
	sign := math.Copysign(1, n.Z)
	a := -1.0 / (sign + n.Z)
	b := n.X * n.Y * a
	return ONB{
		Tangent:   Vec3{1 + sign*n.X*n.X*a, sign * b, -sign * n.X},
		Normal:    n,
		Bitangent: Vec3{b, sign + n.Y*n.Y*a, -n.Y},
	}
}

// WorldToLocal projects v onto the basis
func (o ONB) WorldToLocal(v Vec3) Vec3 {
	return Vec3{v.Dot(o.Tangent), v.Dot(o.Normal), v.Dot(o.Bitangent)}
}

// LocalToWorld expands tangent-space v back into world space
func (o ONB) LocalToWorld(v Vec3) Vec3 {
	return o.Tangent.Multiply(v.X).Add(o.Normal.Multiply(v.Y)).Add(o.Bitangent.Multiply(v.Z))
}

// CosTheta returns the cosine between a local direction and the normal (y axis)
func CosTheta(w Vec3) float64 { return w.Y }

// AbsCosTheta returns |CosTheta(w)|
func AbsCosTheta(w Vec3) float64 { return math.Abs(w.Y) }

// Cos2Theta returns the squared cosine to the normal
func Cos2Theta(w Vec3) float64 { return w.Y * w.Y }

// Sin2Theta returns the squared sine to the normal, clamped at zero
func Sin2Theta(w Vec3) float64 { return max(0, 1-Cos2Theta(w)) }

// SinTheta returns the sine between a local direction and the normal
func SinTheta(w Vec3) float64 { return math.Sqrt(Sin2Theta(w)) }

// SameHemisphere reports whether two local directions lie on the same side of the surface
func SameHemisphere(a, b Vec3) bool {
	return a.Y*b.Y > 0
}

// Reflect mirrors v about n. Both point away from the surface.
func Reflect(v, n Vec3) Vec3 {
	return v.Negate().Add(n.Multiply(2 * v.Dot(n))).Normalize()
}
