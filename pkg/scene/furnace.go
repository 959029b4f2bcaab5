package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewFurnaceScene creates a white furnace: a grey diffuse sphere under a
// unit sky. A correct path tracer renders the sphere at its albedo.
func NewFurnaceScene() *Scene {
	s := New("furnace")
	s.Camera = renderer.NewPinholeCamera(core.NewVec3(0, 0, 4), core.Vec3{}, 40)
	s.Sky = lights.NewUniformSky(core.Splat(1))
	s.Width, s.Height = 256, 256
	s.SamplesPerPixel = 64

	grey := s.AddMaterial(material.NewLambert(core.Splat(0.8)))
	s.AddSphere(core.Vec3{}, 1, grey)
	return s
}
