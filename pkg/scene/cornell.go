package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewCornellScene creates a Cornell box lit only by its ceiling panel
func NewCornellScene() *Scene {
	s := New("cornell")
	s.Camera = renderer.NewPinholeCamera(core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), 40)
	s.Sky = lights.NewUniformSky(core.Vec3{})
	s.Width, s.Height = 400, 400
	s.SamplesPerPixel = 256
	s.MaxDepth = 50

	white := s.AddMaterial(material.NewLambert(core.NewVec3(0.73, 0.73, 0.73)))
	red := s.AddMaterial(material.NewLambert(core.NewVec3(0.65, 0.05, 0.05)))
	green := s.AddMaterial(material.NewLambert(core.NewVec3(0.12, 0.45, 0.15)))
	light := s.AddMaterial(material.NewEmissive(core.NewVec3(15, 15, 15)))
	gold := s.AddMaterial(material.NewMetal(core.NewVec3(1.0, 0.78, 0.34), core.NewVec3(1.0, 0.9, 0.6), 0.25))
	plastic := s.AddMaterial(material.NewDiffuseSpecular(core.NewVec3(0.1, 0.2, 0.6), 0.1))

	// Cornell box dimensions (standard 555x555x555 units)
	const size = 555.0

	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(size, 0, 0), core.NewVec3(0, 0, size), white)    // floor
	s.AddQuad(core.NewVec3(0, size, 0), core.NewVec3(size, 0, 0), core.NewVec3(0, 0, size), white) // ceiling
	s.AddQuad(core.NewVec3(0, 0, size), core.NewVec3(size, 0, 0), core.NewVec3(0, size, 0), white) // back
	s.AddQuad(core.NewVec3(size, 0, 0), core.NewVec3(0, 0, size), core.NewVec3(0, size, 0), red)   // left as seen from the camera
	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, size), core.NewVec3(0, size, 0), green)    // right

	const lightSize = 130.0
	offset := (size - lightSize) / 2
	s.AddQuad(core.NewVec3(offset, size-1, offset), core.NewVec3(lightSize, 0, 0), core.NewVec3(0, 0, lightSize), light)

	s.AddBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), 15*math.Pi/180, white)
	s.AddSphere(core.NewVec3(185, 82.5, 169), 82.5, gold)
	s.AddSphere(core.NewVec3(370, 390, 380), 50, plastic)

	return s
}
