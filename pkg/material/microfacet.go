package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Roughness bounds applied before converting to alpha
const (
	MinRoughness = 0.01
	MaxRoughness = 1.0

	// full anisotropy would collapse one axis to zero
	minAlpha = 1e-4
)

// RoughnessToAlpha converts perceptual roughness and anisotropy to GGX (alphaX, alphaY)
func RoughnessToAlpha(roughness, anisotropy float64) core.Vec2 {
	r := max(MinRoughness, min(MaxRoughness, roughness))
	a := r * r
	return core.NewVec2(max(minAlpha, a*(1+anisotropy)), max(minAlpha, a*(1-anisotropy)))
}

// GGX microfacet functions. Directions are in y-up tangent space.

// GGXD is the GGX normal distribution for half-vector wh
func GGXD(wh core.Vec3, alpha core.Vec2) float64 {
	t := wh.X*wh.X/(alpha.X*alpha.X) + wh.Z*wh.Z/(alpha.Y*alpha.Y) + wh.Y*wh.Y
	return 1 / (math.Pi * alpha.X * alpha.Y * t * t)
}

// GGXLambda is the Smith auxiliary function for direction w
func GGXLambda(w core.Vec3, alpha core.Vec2) float64 {
	t := (alpha.X*alpha.X*w.X*w.X + alpha.Y*alpha.Y*w.Z*w.Z) / (w.Y * w.Y)
	return 0.5 * (-1 + math.Sqrt(1+t))
}

// GGXG1 is the Smith masking term
func GGXG1(w core.Vec3, alpha core.Vec2) float64 {
	return 1 / (1 + GGXLambda(w, alpha))
}

// GGXG2 is the height-correlated masking-shadowing term
func GGXG2(wo, wi core.Vec3, alpha core.Vec2) float64 {
	return 1 / (1 + GGXLambda(wo, alpha) + GGXLambda(wi, alpha))
}

// GGXVisibleD is the distribution of normals visible from w
func GGXVisibleD(w, wh core.Vec3, alpha core.Vec2) float64 {
	return GGXG1(w, alpha) * math.Abs(w.Dot(wh)) * GGXD(wh, alpha) / core.AbsCosTheta(w)
}

// SampleGGXVNDF draws a half-vector from the visible normal distribution
// seen from wo (Heitz 2018).
func SampleGGXVNDF(u core.Vec2, wo core.Vec3, alpha core.Vec2) core.Vec3 {
	vh := core.NewVec3(alpha.X*wo.X, wo.Y, alpha.Y*wo.Z).Normalize()

	lensq := vh.X*vh.X + vh.Z*vh.Z
	t1v := core.NewVec3(0, 0, 1)
	if lensq > 0 {
		t1v = core.NewVec3(vh.Z, 0, -vh.X).Multiply(1 / math.Sqrt(lensq))
	}
	t2v := vh.Cross(t1v)

	r := math.Sqrt(u.X)
	sinPhi, cosPhi := math.Sincos(2 * math.Pi * u.Y)
	t1 := r * cosPhi
	t2 := r * sinPhi
	s := 0.5 * (1 + vh.Y)
	t2 = (1-s)*math.Sqrt(max(1-t1*t1, 0)) + s*t2

	nh := t1v.Multiply(t1).
		Add(t2v.Multiply(t2)).
		Add(vh.Multiply(math.Sqrt(max(1-t1*t1-t2*t2, 0))))

	return core.NewVec3(alpha.X*nh.X, max(0, nh.Y), alpha.Y*nh.Z).Normalize()
}

// GGXVNDFPDF is the solid-angle density of reflected directions produced by
// sampling wh with SampleGGXVNDF and reflecting wo about it.
func GGXVNDFPDF(wo, wh core.Vec3, alpha core.Vec2) float64 {
	return 0.25 * GGXVisibleD(wo, wh, alpha) / math.Abs(wo.Dot(wh))
}
