package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewTriangleMeshScene creates a box, a pyramid and an icosahedron built
// from indexed triangle meshes
func NewTriangleMeshScene() *Scene {
	s := New("meshes")
	s.Camera = renderer.NewThinLensCamera(core.NewVec3(0, 2, 6), core.NewVec3(0, 1, 0), 45, 0.02, 6)
	s.Sky = lights.NewGradientSky(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
	s.Width, s.Height = 600, 338
	s.SamplesPerPixel = 128
	s.MaxDepth = 40

	warm := s.AddMaterial(material.NewEmissive(core.NewVec3(12.0, 11.0, 10.0)))
	cool := s.AddMaterial(material.NewEmissive(core.NewVec3(6.0, 7.0, 8.0)))
	s.AddSphere(core.NewVec3(2, 6, 3), 1.5, warm)
	s.AddSphere(core.NewVec3(-3, 4, 2), 0.8, cool)

	ground := s.AddMaterial(material.NewLambert(core.NewVec3(0.7, 0.7, 0.7)))
	s.AddQuad(core.NewVec3(-50, 0, 50), core.NewVec3(100, 0, 0), core.NewVec3(0, 0, -100), ground)

	redMetal := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.2, 0.2), core.NewVec3(1, 0.6, 0.6), 0.1))
	blue := s.AddMaterial(material.NewDiffuseSpecular(core.NewVec3(0.2, 0.3, 0.8), 0.4))
	gold := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), core.NewVec3(1, 0.9, 0.6), 0.05))

	s.AddMesh(BoxMesh(core.NewVec3(1, 1, 1)),
		Transform{Scale: 1, Rotation: core.NewVec3(0, math.Pi/6, 0), Translation: core.NewVec3(-2, 0.5, 0)}, redMetal)
	s.AddMesh(PyramidMesh(1.5, 2.0),
		Transform{Scale: 1, Rotation: core.NewVec3(0, math.Pi/4, 0), Translation: core.NewVec3(0, 1, 0)}, blue)
	s.AddMesh(IcosahedronMesh(0.8),
		Transform{Scale: 1, Rotation: core.NewVec3(0, math.Pi/3, 0), Translation: core.NewVec3(2, 0.8, 0)}, gold)

	return s
}

// BoxMesh returns a box of the given size centered at the origin
func BoxMesh(size core.Vec3) *loaders.Mesh {
	h := size.Multiply(0.5)
	return &loaders.Mesh{
		Positions: []core.Vec3{
			core.NewVec3(-h.X, -h.Y, -h.Z), // 0: left-bottom-back
			core.NewVec3(+h.X, -h.Y, -h.Z), // 1: right-bottom-back
			core.NewVec3(+h.X, +h.Y, -h.Z), // 2: right-top-back
			core.NewVec3(-h.X, +h.Y, -h.Z), // 3: left-top-back
			core.NewVec3(-h.X, -h.Y, +h.Z), // 4: left-bottom-front
			core.NewVec3(+h.X, -h.Y, +h.Z), // 5: right-bottom-front
			core.NewVec3(+h.X, +h.Y, +h.Z), // 6: right-top-front
			core.NewVec3(-h.X, +h.Y, +h.Z), // 7: left-top-front
		},
		Indices: []int{
			0, 2, 1, 0, 3, 2, // back
			4, 5, 6, 4, 6, 7, // front
			0, 4, 7, 0, 7, 3, // left
			1, 2, 6, 1, 6, 5, // right
			0, 1, 5, 0, 5, 4, // bottom
			3, 7, 6, 3, 6, 2, // top
		},
	}
}

// PyramidMesh returns a square pyramid centered at the origin
func PyramidMesh(base, height float64) *loaders.Mesh {
	b, h := base/2, height/2
	return &loaders.Mesh{
		Positions: []core.Vec3{
			core.NewVec3(-b, -h, -b),
			core.NewVec3(+b, -h, -b),
			core.NewVec3(+b, -h, +b),
			core.NewVec3(-b, -h, +b),
			core.NewVec3(0, +h, 0), // apex
		},
		Indices: []int{
			0, 1, 2, 0, 2, 3,
			0, 4, 1, 1, 4, 2, 2, 4, 3, 3, 4, 0,
		},
	}
}

// IcosahedronMesh returns a regular icosahedron with the given circumradius
func IcosahedronMesh(radius float64) *loaders.Mesh {
	phi := (1 + math.Sqrt(5)) / 2
	scale := radius / math.Sqrt(1+phi*phi)

	raw := [][3]float64{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	positions := make([]core.Vec3, len(raw))
	for i, p := range raw {
		positions[i] = core.NewVec3(p[0], p[1], p[2]).Multiply(scale)
	}

	return &loaders.Mesh{
		Positions: positions,
		Indices: []int{
			0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
			1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
			3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
			4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
		},
	}
}
