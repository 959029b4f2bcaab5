package core

import "math"

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// SequenceSampler replays a fixed list of values, wrapping around at the end.
// Useful for driving integrators and BSDFs down a known path in tests.
type SequenceSampler struct {
	Values []float64
	next   int
}

// NewSequenceSampler creates a sampler returning values in order
func NewSequenceSampler(values ...float64) *SequenceSampler {
	return &SequenceSampler{Values: values}
}

// Get1D returns the next value of the sequence
func (s *SequenceSampler) Get1D() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Get2D returns the next two values of the sequence
func (s *SequenceSampler) Get2D() Vec2 {
	x := s.Get1D()
	return Vec2{x, s.Get1D()}
}

// Get3D returns the next three values of the sequence
func (s *SequenceSampler) Get3D() Vec3 {
	x := s.Get1D()
	y := s.Get1D()
	return Vec3{x, y, s.Get1D()}
}

// SphericalToCartesian converts angles to a unit vector in y-up tangent space
func SphericalToCartesian(phi, theta float64) Vec3 {
	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)
	return Vec3{cosPhi * sinTheta, cosTheta, sinPhi * sinTheta}
}

// CartesianToSpherical returns (phi, theta) of a unit vector, phi in [0, 2pi)
func CartesianToSpherical(w Vec3) (phi, theta float64) {
	phi = math.Atan2(w.Z, w.X)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	theta = math.Acos(max(-1, min(1, w.Y)))
	return phi, theta
}

// SampleCosineHemisphere warps a uniform sample to a cosine-weighted
// direction around +Y in tangent space.
func SampleCosineHemisphere(u Vec2) Vec3 {
	theta := 0.5 * math.Acos(max(-1, min(1, 1-2*u.X)))
	phi := 2 * math.Pi * u.Y
	return SphericalToCartesian(phi, theta)
}

// CosineHemispherePDF returns the solid-angle density of SampleCosineHemisphere
func CosineHemispherePDF(w Vec3) float64 {
	return math.Abs(w.Y) / math.Pi
}

// SamplePointInUnitDisk maps a uniform sample to a point in the unit disk (z = 0)
func SamplePointInUnitDisk(u Vec2) Vec3 {
	r := math.Sqrt(u.X)
	sinPhi, cosPhi := math.Sincos(2 * math.Pi * u.Y)
	return Vec3{r * cosPhi, r * sinPhi, 0}
}

// SampleOnUnitSphere maps a uniform sample to a direction on the unit sphere
func SampleOnUnitSphere(u Vec2) Vec3 {
	z := 1 - 2*u.X
	r := math.Sqrt(max(0, 1-z*z))
	sinPhi, cosPhi := math.Sincos(2 * math.Pi * u.Y)
	return Vec3{r * cosPhi, r * sinPhi, z}
}
