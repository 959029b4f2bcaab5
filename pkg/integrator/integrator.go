package integrator

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
)

// RayEpsilon offsets secondary ray origins along the surface normal
const RayEpsilon = 0.01

// Integrator estimates the radiance arriving along a camera ray
type Integrator interface {
	Integrate(ray core.Ray, intersector geometry.Intersector, sky lights.Sky, sampler core.Sampler) core.Vec3
}

// Kind names the integrators selectable from the command line
type Kind string

const (
	KindPathTracing Kind = "pt"
	KindNormal      Kind = "normal"
	KindBVHDepth    Kind = "bvh-depth"
	KindAO          Kind = "ao"
)

// Kinds lists every integrator kind
var Kinds = []Kind{KindPathTracing, KindNormal, KindBVHDepth, KindAO}

// New creates the integrator for kind. maxDepth only applies to path tracing.
func New(kind Kind, maxDepth int) (Integrator, error) {
	switch kind {
	case KindPathTracing:
		return NewPathTracing(maxDepth), nil
	case KindNormal:
		return NewDebug(DebugNormal), nil
	case KindBVHDepth:
		return NewDebug(DebugBVHDepth), nil
	case KindAO:
		return NewDebug(DebugAmbientOcclusion), nil
	}
	return nil, fmt.Errorf("unknown integrator %q", kind)
}

// spawnRay starts a ray just above the surface to avoid self-intersection
func spawnRay(info geometry.IntersectInfo, direction core.Vec3) core.Ray {
	return core.NewRay(info.Position.Add(info.Normal.Multiply(RayEpsilon)), direction)
}
