package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
)

// DebugMode selects what the Debug integrator visualises
type DebugMode int

const (
	// DebugNormal maps the shading normal to 0.5*(n+1)
	DebugNormal DebugMode = iota
	// DebugBVHDepth shows the number of visited BVH nodes in the green channel
	DebugBVHDepth
	// DebugAmbientOcclusion traces one cosine-weighted occlusion ray per sample
	DebugAmbientOcclusion
)

// Debug renders diagnostic images instead of light transport
type Debug struct {
	Mode DebugMode
}

// NewDebug creates a diagnostic integrator
func NewDebug(mode DebugMode) *Debug {
	return &Debug{Mode: mode}
}

// Integrate implements Integrator
func (d *Debug) Integrate(ray core.Ray, intersector geometry.Intersector, sky lights.Sky, sampler core.Sampler) core.Vec3 {
	info, hit := intersector.Intersect(ray)

	switch d.Mode {
	case DebugNormal:
		if !hit {
			return core.Vec3{}
		}
		return info.Normal.Add(core.Splat(1)).Multiply(0.5)

	case DebugBVHDepth:
		if !hit || info.BVHDepth <= 0 {
			return core.Vec3{}
		}
		return core.NewVec3(0, math.Log(float64(info.BVHDepth))/16, 0)

	default:
		if !hit {
			return core.Splat(1)
		}
		onb := core.NewONB(info.Normal)
		wi := core.SampleCosineHemisphere(sampler.Get2D())
		shadow := spawnRay(info, onb.LocalToWorld(wi))
		if _, blocked := intersector.Intersect(shadow); blocked {
			return core.Vec3{}
		}
		// f = 1/π with cosine-weighted pdf |cosθ|/π, so each unoccluded sample weighs one
		return core.Splat(1)
	}
}
