package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a row of spheres covering every material model
// on a checkered ground, lit by a gradient sky
func NewDefaultScene() *Scene {
	s := New("spheres")
	origin, lookAt := core.NewVec3(0, 0.75, 2), core.NewVec3(0, 0.5, -1)
	s.Camera = renderer.NewThinLensCamera(origin, lookAt, 40, 0.05, lookAt.Subtract(origin).Length())
	s.Sky = lights.NewGradientSky(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
	s.Width, s.Height = 400, 225
	s.SamplesPerPixel = 128
	s.MaxDepth = 50

	checker := s.AddTexture(material.NewCheckerboardTexture(512, 512, 16,
		core.NewVec3(0.48, 0.48, 0.0), core.NewVec3(0.9, 0.9, 0.9)))
	ground := material.NewLambert(core.Vec3{})
	ground.DiffuseTexture = checker
	s.AddMaterial(ground)

	red := s.AddMaterial(material.NewDiffuseSpecular(core.NewVec3(0.65, 0.25, 0.2), 0.2))
	mirror := s.AddMaterial(material.NewMirror(core.NewVec3(0.9, 0.9, 0.9)))
	gold := s.AddMaterial(material.NewMetal(core.NewVec3(1.0, 0.78, 0.34), core.NewVec3(1.0, 0.9, 0.6), 0.3))
	coated := s.AddMaterial(&material.Material{
		Diffuse:        core.NewVec3(0.1, 0.2, 0.5),
		Specular:       core.NewVec3(1, 1, 1),
		Roughness:      0.15,
		Metalness:      0.3,
		SpecularWeight: 1,
		IOR:            material.DefaultIOR,
		Anisotropy:     0.5,
		Model:          material.ModelComposite,
	})
	lamp := s.AddMaterial(material.NewEmissive(core.NewVec3(4, 3.5, 3)))

	s.AddSphere(core.NewVec3(0, -1000, -1), 1000, ground)
	s.AddSphere(core.NewVec3(0, 0.5, -1), 0.5, red)
	s.AddSphere(core.NewVec3(-1, 0.5, -1), 0.5, mirror)
	s.AddSphere(core.NewVec3(1, 0.5, -1), 0.5, gold)
	s.AddSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, coated)
	s.AddSphere(core.NewVec3(-0.5, 0.15, -0.4), 0.15, lamp)

	return s
}
