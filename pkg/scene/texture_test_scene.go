package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewTextureTestScene creates a row of textured shapes covering sphere,
// box, quad and triangle texture coordinates
func NewTextureTestScene() *Scene {
	s := New("textures")
	s.Camera = renderer.NewPinholeCamera(core.NewVec3(0, 2, 10), core.NewVec3(0, 1, 0), 50)
	s.Sky = lights.NewGradientSky(core.NewVec3(0.3, 0.4, 0.6), core.NewVec3(0.2, 0.2, 0.2))
	s.Width, s.Height = 640, 360
	s.SamplesPerPixel = 64
	s.MaxDepth = 10

	checkerboard := s.AddTexture(material.NewCheckerboardTexture(256, 256, 32,
		core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.2, 0.8)))
	gradient := s.AddTexture(material.NewGradientTexture(256, 256,
		core.NewVec3(0.2, 1.0, 0.2), core.NewVec3(1.0, 0.2, 0.2)))
	uvDebug := s.AddTexture(material.NewUVDebugTexture(256, 256))
	brick := s.AddTexture(material.NewCheckerboardTexture(512, 512, 16,
		core.NewVec3(0.7, 0.3, 0.1), core.NewVec3(0.5, 0.2, 0.05)))

	textured := func(texture *material.Texture) *material.Material {
		m := material.NewLambert(core.Vec3{})
		m.DiffuseTexture = texture
		return s.AddMaterial(m)
	}
	checkerMat := textured(checkerboard)
	gradientMat := textured(gradient)
	uvDebugMat := textured(uvDebug)
	brickMat := textured(brick)

	glossy := s.AddMaterial(material.NewDiffuseSpecular(core.Vec3{}, 0.3))
	glossy.DiffuseTexture = checkerboard
	glossy.SpecularTexture = gradient

	sign := material.NewEmissive(core.Vec3{})
	sign.EmissionTexture = uvDebug
	s.AddMaterial(sign)

	s.AddSphere(core.NewVec3(-6, 1, 0), 1.0, checkerMat)
	s.AddSphere(core.NewVec3(-3.5, 1, 0), 1.0, glossy)
	s.AddBox(core.NewVec3(-1.8, 0.2, -0.8), core.NewVec3(-0.2, 1.8, 0.8), 0.4, brickMat)
	s.AddQuad(core.NewVec3(0.8, 0.4, 0), core.NewVec3(1.6, 0, 0), core.NewVec3(0, 1.6, 0), sign)
	s.AddQuad(core.NewVec3(3.0, 0, 0.2), core.NewVec3(1.5, 0, -0.3), core.NewVec3(0, 2, 0), gradientMat)
	s.AddTriangle(core.NewVec3(5.5, 0, 0), core.NewVec3(7, 0, 0), core.NewVec3(6.25, 2, 0), uvDebugMat)

	s.AddQuad(core.NewVec3(-10, 0, 10), core.NewVec3(20, 0, 0), core.NewVec3(0, 0, -15), brickMat)

	lamp := s.AddMaterial(material.NewEmissive(core.NewVec3(20, 20, 20)))
	s.AddSphere(core.NewVec3(0, 8, 5), 2.0, lamp)

	return s
}
