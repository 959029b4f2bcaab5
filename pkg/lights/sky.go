package lights

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sky supplies radiance for rays that leave the scene
type Sky interface {
	Evaluate(ray core.Ray) core.Vec3
}

// UniformSky returns the same radiance in every direction
type UniformSky struct {
	Radiance core.Vec3
}

// NewUniformSky creates a constant environment
func NewUniformSky(radiance core.Vec3) *UniformSky {
	return &UniformSky{Radiance: radiance}
}

// Evaluate implements Sky
func (s *UniformSky) Evaluate(ray core.Ray) core.Vec3 {
	return s.Radiance
}

// GradientSky blends linearly from the bottom color to the top color with direction.Y
type GradientSky struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradientSky creates a vertical gradient environment
func NewGradientSky(top, bottom core.Vec3) *GradientSky {
	return &GradientSky{Top: top, Bottom: bottom}
}

// Evaluate implements Sky
func (s *GradientSky) Evaluate(ray core.Ray) core.Vec3 {
	direction := ray.Direction.Normalize()
	t := 0.5 * (direction.Y + 1.0) // Map Y from [-1,1] to [0,1]
	return s.Bottom.Multiply(1.0 - t).Add(s.Top.Multiply(t))
}

// IBLSky looks rays up in an equirectangular environment map
type IBLSky struct {
	Texture *material.Texture
	Scale   float64
}

// NewIBLSky creates an image based environment with unit intensity
func NewIBLSky(texture *material.Texture) *IBLSky {
	return &IBLSky{Texture: texture, Scale: 1}
}

// Evaluate implements Sky. Straight up maps to the top row (v = 1).
func (s *IBLSky) Evaluate(ray core.Ray) core.Vec3 {
	phi, theta := core.CartesianToSpherical(ray.Direction.Normalize())
	uv := core.NewVec2(phi/(2*math.Pi), 1-theta/math.Pi)
	return s.Texture.FetchRGB(uv).Multiply(s.Scale)
}
