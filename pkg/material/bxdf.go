package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BxDFKind tags the closed set of scattering lobes
type BxDFKind uint8

const (
	BxDFLambert BxDFKind = iota
	BxDFMicrofacetDielectric
	BxDFMicrofacetConductor
	BxDFSpecularReflection
)

// String implements fmt.Stringer
func (k BxDFKind) String() string {
	switch k {
	case BxDFLambert:
		return "Lambert"
	case BxDFMicrofacetDielectric:
		return "MicrofacetDielectric"
	case BxDFMicrofacetConductor:
		return "MicrofacetConductor"
	case BxDFSpecularReflection:
		return "SpecularReflection"
	}
	return "Unknown"
}

// BxDF is a single reflection lobe in y-up tangent space. Only the fields
// relevant to Kind are populated.
type BxDF struct {
	Kind BxDFKind

	// Albedo is the Lambert reflectance, or the tint of the dielectric and mirror lobes.
	Albedo core.Vec3

	// GGX roughness
	Alpha core.Vec2

	// IOR of the dielectric lobe
	IOR float64

	// complex IOR (N + iK) of the conductor lobe
	N core.Vec3
	K core.Vec3
}

// NewLambertBxDF creates a diffuse lobe
func NewLambertBxDF(albedo core.Vec3) BxDF {
	return BxDF{Kind: BxDFLambert, Albedo: albedo}
}

// NewSpecularReflectionBxDF creates an ideal mirror lobe
func NewSpecularReflectionBxDF(albedo core.Vec3) BxDF {
	return BxDF{Kind: BxDFSpecularReflection, Albedo: albedo}
}

// NewDielectricBxDF creates an untinted GGX reflection lobe with dielectric Fresnel
func NewDielectricBxDF(ior, roughness, anisotropy float64) BxDF {
	return BxDF{
		Kind:   BxDFMicrofacetDielectric,
		Albedo: core.Splat(1),
		Alpha:  RoughnessToAlpha(roughness, anisotropy),
		IOR:    ior,
	}
}

// NewConductorBxDF creates a GGX reflection lobe with conductor Fresnel
func NewConductorBxDF(n, k core.Vec3, roughness, anisotropy float64) BxDF {
	return BxDF{
		Kind:  BxDFMicrofacetConductor,
		Alpha: RoughnessToAlpha(roughness, anisotropy),
		N:     n,
		K:     k,
	}
}

// NewArtistConductorBxDF creates a conductor lobe from reflectivity and edge tint
func NewArtistConductorBxDF(reflectivity, edgeTint core.Vec3, roughness, anisotropy float64) BxDF {
	n, k := ArtistFriendlyConductor(reflectivity, edgeTint)
	return NewConductorBxDF(n, k, roughness, anisotropy)
}

// IsDelta reports whether the lobe is a Dirac distribution
func (b *BxDF) IsDelta() bool {
	return b.Kind == BxDFSpecularReflection
}

// Sample draws an incident direction wi for the outgoing direction wo and
// returns the lobe value and the solid-angle pdf of wi. A pdf of zero means
// no valid direction was produced.
func (b *BxDF) Sample(u core.Vec2, wo core.Vec3) (wi, f core.Vec3, pdf float64) {
	switch b.Kind {
	case BxDFLambert:
		wi = core.SampleCosineHemisphere(u)
		return wi, b.Albedo.Multiply(1 / math.Pi), core.CosineHemispherePDF(wi)

	case BxDFSpecularReflection:
		wi = core.Reflect(wo, core.NewVec3(0, 1, 0))
		cos := core.AbsCosTheta(wi)
		if cos == 0 {
			return wi, core.Vec3{}, 0
		}
		return wi, b.Albedo.Multiply(1 / cos), 1

	default:
		if wo.Y <= 0 {
			return core.Vec3{}, core.Vec3{}, 0
		}
		wh := SampleGGXVNDF(u, wo, b.Alpha)
		wi = core.Reflect(wo, wh)
		pdf = GGXVNDFPDF(wo, wh, b.Alpha)
		if wi.Y <= 0 {
			// reflected below the horizon, energy is lost
			return wi, core.Vec3{}, pdf
		}
		return wi, b.microfacet(wo, wi, wh), pdf
	}
}

// Evaluate returns the lobe value for a pair of directions
func (b *BxDF) Evaluate(wo, wi core.Vec3) core.Vec3 {
	switch b.Kind {
	case BxDFLambert:
		if wi.Y <= 0 {
			return core.Vec3{}
		}
		return b.Albedo.Multiply(1 / math.Pi)

	case BxDFSpecularReflection:
		return core.Vec3{}

	default:
		if wo.Y <= 0 || wi.Y <= 0 {
			return core.Vec3{}
		}
		wh := wo.Add(wi).Normalize()
		if wh.IsZero() {
			return core.Vec3{}
		}
		return b.microfacet(wo, wi, wh)
	}
}

// PDF returns the solid-angle density with which Sample produces wi
func (b *BxDF) PDF(wo, wi core.Vec3) float64 {
	switch b.Kind {
	case BxDFLambert:
		if wi.Y <= 0 {
			return 0
		}
		return core.CosineHemispherePDF(wi)

	case BxDFSpecularReflection:
		return 0

	default:
		if wo.Y <= 0 || wi.Y <= 0 {
			return 0
		}
		wh := wo.Add(wi).Normalize()
		if wh.IsZero() {
			return 0
		}
		return GGXVNDFPDF(wo, wh, b.Alpha)
	}
}

func (b *BxDF) microfacet(wo, wi, wh core.Vec3) core.Vec3 {
	fr := b.fresnel(wo.Dot(wh))
	d := GGXD(wh, b.Alpha)
	g := GGXG2(wo, wi, b.Alpha)
	return fr.Multiply(d * g / (4 * core.AbsCosTheta(wo) * core.AbsCosTheta(wi)))
}

func (b *BxDF) fresnel(cos float64) core.Vec3 {
	if b.Kind == BxDFMicrofacetConductor {
		return FresnelConductor(b.N, b.K, cos)
	}
	return b.Albedo.Multiply(FresnelDielectric(b.IOR, cos))
}
