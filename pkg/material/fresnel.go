package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// FresnelDielectric returns the unpolarised reflectance of a dielectric
// interface with relative IOR n, for a direction at cosine cos to the normal.
// Total internal reflection returns 1.
func FresnelDielectric(n, cos float64) float64 {
	temp := n*n + cos*cos - 1
	if temp < 0 {
		return 1
	}

	g := math.Sqrt(temp)
	t0 := (g - cos) / (g + cos)
	t1 := ((g+cos)*cos - 1) / ((g-cos)*cos + 1)
	return 0.5 * t0 * t0 * (1 + t1*t1)
}

// fresnelConductor evaluates the exact conductor reflectance for one channel
func fresnelConductor(n, k, cos float64) float64 {
	c2 := cos * cos
	two := 2 * n * cos
	t0 := n*n + k*k
	t1 := t0 * c2
	rs := (t0 - two + c2) / (t0 + two + c2)
	rp := (t1 - two + 1) / (t1 + two + 1)
	return 0.5 * (rp + rs)
}

// FresnelConductor returns per-channel reflectance for complex IOR n + ik
func FresnelConductor(n, k core.Vec3, cos float64) core.Vec3 {
	return core.NewVec3(
		fresnelConductor(n.X, k.X, cos),
		fresnelConductor(n.Y, k.Y, cos),
		fresnelConductor(n.Z, k.Z, cos),
	)
}

// maxReflectivity keeps the artist-friendly mapping away from its pole at r=1
const maxReflectivity = 0.9999

// ArtistFriendlyConductor maps a reflectivity and edge tint in [0,1] to a
// complex IOR (Gulbrandsen 2014). The result reproduces the reflectivity at
// normal incidence.
func ArtistFriendlyConductor(reflectivity, edgeTint core.Vec3) (n, k core.Vec3) {
	channel := func(r, g float64) (float64, float64) {
		r = max(0, min(maxReflectivity, r))
		g = max(0, min(1, g))
		rs := math.Sqrt(r)
		n := g*(1-r)/(1+r) + (1-g)*(1+rs)/(1-rs)
		t1 := n + 1
		t2 := n - 1
		k := math.Sqrt(max(0, (r*t1*t1-t2*t2)/(1-r)))
		return n, k
	}

	n.X, k.X = channel(reflectivity.X, edgeTint.X)
	n.Y, k.Y = channel(reflectivity.Y, edgeTint.Y)
	n.Z, k.Z = channel(reflectivity.Z, edgeTint.Z)
	return n, k
}
