package material

import (
	"golang.org/x/image/math/f32"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture is an RGBA image sampled with nearest-neighbour lookup.
// Row 0 is the bottom of the image so that v=0 maps to the bottom edge.
type Texture struct {
	Width  int
	Height int
	Texels []f32.Vec4 // Row-major: Texels[j*Width + i]
}

// NewTexture creates a texture from bottom-up row-major texels
func NewTexture(width, height int, texels []f32.Vec4) *Texture {
	return &Texture{Width: width, Height: height, Texels: texels}
}

// NewSolidTexture creates a 1x1 texture
func NewSolidTexture(c core.Vec3) *Texture {
	return NewTexture(1, 1, []f32.Vec4{{float32(c.X), float32(c.Y), float32(c.Z), 1}})
}

// Fetch returns the texel at uv, with uv clamped to [0,1]
func (t *Texture) Fetch(uv core.Vec2) f32.Vec4 {
	if t.Width <= 0 || t.Height <= 0 {
		return f32.Vec4{}
	}
	i := int(float64(t.Width-1) * clamp01(uv.X))
	j := int(float64(t.Height-1) * clamp01(uv.Y))
	return t.Texels[i+t.Width*j]
}

// FetchRGB returns the color channels of the texel at uv
func (t *Texture) FetchRGB(uv core.Vec2) core.Vec3 {
	c := t.Fetch(uv)
	return core.NewVec3(float64(c[0]), float64(c[1]), float64(c[2]))
}

func clamp01(x float64) float64 {
	return max(0, min(1, x))
}
