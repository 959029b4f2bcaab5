package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Model selects how a Material is turned into a BSDF at a hit point
type Model int

const (
	// ModelLambert uses the diffuse color only
	ModelLambert Model = iota
	// ModelDiffuseSpecular mixes a Lambert lobe and a dielectric GGX lobe 50/50
	ModelDiffuseSpecular
	// ModelComposite mixes diffuse, dielectric specular and metal lobes by metalness
	ModelComposite
	// ModelMirror is an ideal specular reflector tinted by the specular color
	ModelMirror
)

// String returns the model name used by scene presets and the CLI
func (m Model) String() string {
	switch m {
	case ModelLambert:
		return "lambert"
	case ModelDiffuseSpecular:
		return "diffuse-specular"
	case ModelComposite:
		return "composite"
	case ModelMirror:
		return "mirror"
	}
	return "unknown"
}

// DefaultIOR is the index of refraction used when a material does not set one
const DefaultIOR = 1.5

// Material describes surface appearance. Materials are owned by the scene and
// never modified once rendering starts.
type Material struct {
	Diffuse  core.Vec3 // base color; also metal reflectivity in the composite model
	Specular core.Vec3 // specular tint; also metal edge tint
	Emission core.Vec3

	DiffuseTexture  *Texture
	SpecularTexture *Texture
	EmissionTexture *Texture

	Roughness      float64
	Metalness      float64
	SpecularWeight float64
	IOR            float64
	Anisotropy     float64

	Model Model
}

// NewLambert creates a purely diffuse material
func NewLambert(albedo core.Vec3) *Material {
	return &Material{Diffuse: albedo, Model: ModelLambert}
}

// NewEmissive creates a light-emitting material
func NewEmissive(emission core.Vec3) *Material {
	return &Material{Emission: emission, Model: ModelLambert}
}

// NewDiffuseSpecular creates a plastic-like material with a rough dielectric coat
func NewDiffuseSpecular(diffuse core.Vec3, roughness float64) *Material {
	return &Material{
		Diffuse:   diffuse,
		Specular:  core.NewVec3(1, 1, 1),
		Roughness: roughness,
		IOR:       DefaultIOR,
		Model:     ModelDiffuseSpecular,
	}
}

// NewMetal creates a composite material that is fully metallic
func NewMetal(reflectivity, edgeTint core.Vec3, roughness float64) *Material {
	return &Material{
		Diffuse:        reflectivity,
		Specular:       edgeTint,
		Roughness:      roughness,
		Metalness:      1,
		SpecularWeight: 1,
		IOR:            DefaultIOR,
		Model:          ModelComposite,
	}
}

// NewMirror creates an ideal mirror
func NewMirror(tint core.Vec3) *Material {
	return &Material{Specular: tint, Model: ModelMirror}
}

// DiffuseAt returns the diffuse color at uv, preferring the texture
func (m *Material) DiffuseAt(uv core.Vec2) core.Vec3 {
	if m.DiffuseTexture != nil {
		return m.DiffuseTexture.FetchRGB(uv)
	}
	return m.Diffuse
}

// SpecularAt returns the specular color at uv, preferring the texture
func (m *Material) SpecularAt(uv core.Vec2) core.Vec3 {
	if m.SpecularTexture != nil {
		return m.SpecularTexture.FetchRGB(uv)
	}
	return m.Specular
}

// EmissionAt returns the emitted radiance at uv, preferring the texture
func (m *Material) EmissionAt(uv core.Vec2) core.Vec3 {
	if m.EmissionTexture != nil {
		return m.EmissionTexture.FetchRGB(uv)
	}
	return m.Emission
}

// IsEmissive reports whether the material emits light
func (m *Material) IsEmissive() bool {
	return m.EmissionTexture != nil || !m.Emission.IsZero()
}

func (m *Material) ior() float64 {
	if m.IOR <= 0 {
		return DefaultIOR
	}
	return m.IOR
}
