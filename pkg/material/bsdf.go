package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

const maxLobes = 3

// BSDF is a weighted mixture of up to three lobes built for one hit point.
// Sampling picks a single lobe, so one draw estimates the whole weighted sum.
type BSDF struct {
	lobes   [maxLobes]BxDF
	weights [maxLobes]float64
	count   int
	dist    core.DiscreteDistribution1D
}

// NewBSDF builds the scattering function of m at texture coordinate uv
func NewBSDF(m *Material, uv core.Vec2) BSDF {
	var b BSDF

	switch m.Model {
	case ModelDiffuseSpecular:
		b.add(NewLambertBxDF(m.DiffuseAt(uv)), 1)
		b.add(NewDielectricBxDF(m.ior(), m.Roughness, m.Anisotropy), 1)

	case ModelComposite:
		base := m.DiffuseAt(uv)
		spec := m.SpecularAt(uv)
		metal := max(0, min(1, m.Metalness))

		dielectric := NewDielectricBxDF(m.ior(), m.Roughness, m.Anisotropy)
		dielectric.Albedo = spec

		b.add(NewLambertBxDF(base), 1-metal)
		b.add(dielectric, m.SpecularWeight*(1-metal))
		b.add(NewArtistConductorBxDF(base, spec, m.Roughness, m.Anisotropy), metal)

	case ModelMirror:
		b.add(NewSpecularReflectionBxDF(m.SpecularAt(uv)), 1)

	default:
		b.add(NewLambertBxDF(m.DiffuseAt(uv)), 1)
	}

	b.dist = core.NewDiscreteDistribution1D(b.weights[:b.count])
	return b
}

func (b *BSDF) add(lobe BxDF, weight float64) {
	b.lobes[b.count] = lobe
	b.weights[b.count] = max(0, weight)
	b.count++
}

// NumLobes returns the number of lobes in the mixture
func (b *BSDF) NumLobes() int {
	return b.count
}

// Lobe returns lobe i and its energy weight
func (b *BSDF) Lobe(i int) (BxDF, float64) {
	return b.lobes[i], b.weights[i]
}

// Sample picks a lobe with v, then samples it with u. The returned value is
// scaled by the lobe weight and the pdf by its selection probability.
func (b *BSDF) Sample(u core.Vec2, v float64, wo core.Vec3) (wi, f core.Vec3, pdf float64) {
	idx, pmf := b.dist.Sample(v)
	if pmf <= 0 {
		return core.Vec3{}, core.Vec3{}, 0
	}

	lobe := &b.lobes[idx]
	wi, f, pdf = lobe.Sample(u, wo)
	return wi, f.Multiply(b.weights[idx]), pdf * pmf
}

// Evaluate returns the weighted sum of all lobe values
func (b *BSDF) Evaluate(wo, wi core.Vec3) core.Vec3 {
	var f core.Vec3
	for i := 0; i < b.count; i++ {
		if b.weights[i] == 0 {
			continue
		}
		f = f.Add(b.lobes[i].Evaluate(wo, wi).Multiply(b.weights[i]))
	}
	return f
}

// PDF returns the mixture density of sampling wi
func (b *BSDF) PDF(wo, wi core.Vec3) float64 {
	pdf := 0.0
	for i := 0; i < b.count; i++ {
		if pmf := b.dist.PMF(i); pmf > 0 {
			pdf += pmf * b.lobes[i].PDF(wo, wi)
		}
	}
	return pdf
}
