package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// PathState records why a path stopped
type PathState int

const (
	// PathAbsorbed means Russian roulette ended the path
	PathAbsorbed PathState = iota
	// PathEscaped means the path left the scene and picked up sky radiance
	PathEscaped
	// PathAbsorbedByLight means the path ended on an emissive surface
	PathAbsorbedByLight
	// PathDepthLimited means the bounce budget ran out
	PathDepthLimited
	// PathDegenerate means sampling produced an unusable direction or density
	PathDegenerate
)

// String implements fmt.Stringer
func (s PathState) String() string {
	switch s {
	case PathAbsorbed:
		return "absorbed"
	case PathEscaped:
		return "escaped"
	case PathAbsorbedByLight:
		return "absorbed-by-light"
	case PathDepthLimited:
		return "depth-limited"
	case PathDegenerate:
		return "degenerate"
	}
	return "unknown"
}

// PathTracing is a unidirectional path tracer with Russian roulette.
// Light is only gathered when a path escapes or lands on an emitter.
type PathTracing struct {
	MaxDepth int
}

// NewPathTracing creates a path tracer that follows at most maxDepth bounces
func NewPathTracing(maxDepth int) *PathTracing {
	return &PathTracing{MaxDepth: maxDepth}
}

// Integrate implements Integrator
func (pt *PathTracing) Integrate(ray core.Ray, intersector geometry.Intersector, sky lights.Sky, sampler core.Sampler) core.Vec3 {
	radiance, _ := pt.Trace(ray, intersector, sky, sampler)
	return radiance
}

// Trace follows one path and reports its radiance and how it terminated
func (pt *PathTracing) Trace(ray core.Ray, intersector geometry.Intersector, sky lights.Sky, sampler core.Sampler) (core.Vec3, PathState) {
	var radiance core.Vec3
	throughput := core.Splat(1)

	for depth := 0; depth < pt.MaxDepth; depth++ {
		// russian roulette
		p := min(1, throughput.MaxComponent())
		if p <= 0 || sampler.Get1D() > p {
			return radiance, PathAbsorbed
		}
		throughput = throughput.Multiply(1 / p)

		info, hit := intersector.Intersect(ray)
		if !hit {
			radiance = radiance.Add(throughput.MultiplyVec(sky.Evaluate(ray)))
			return radiance, PathEscaped
		}

		mat := info.Primitive.Material
		if mat.IsEmissive() {
			radiance = radiance.Add(throughput.MultiplyVec(mat.EmissionAt(info.TexCoord)))
			return radiance, PathAbsorbedByLight
		}

		onb := core.NewONB(info.Normal)
		wo := onb.WorldToLocal(ray.Direction.Negate())
		bsdf := material.NewBSDF(mat, info.TexCoord)

		u := sampler.Get2D()
		v := sampler.Get1D()
		wi, f, pdf := bsdf.Sample(u, v, wo)
		if !(pdf > 0) || math.IsInf(pdf, 0) || !f.IsFinite() || !wi.IsFinite() || wi.IsZero() {
			return radiance, PathDegenerate
		}

		throughput = throughput.MultiplyVec(f.Multiply(core.AbsCosTheta(wi) / pdf))
		if !throughput.IsFinite() {
			return radiance, PathDegenerate
		}

		ray = spawnRay(info, onb.LocalToWorld(wi).Normalize())
	}

	return radiance, PathDepthLimited
}
