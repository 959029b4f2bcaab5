package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Accelerator names the intersector built over the scene
type Accelerator string

const (
	AccelBVH    Accelerator = "bvh"
	AccelLinear Accelerator = "linear"
)

// Scene owns every shape, material and texture for the lifetime of a render.
// Primitives borrow from these arenas and may be reordered by the BVH build.
type Scene struct {
	Name   string
	Camera renderer.Camera
	Sky    lights.Sky

	// Preferred frame and sampling settings; the CLI uses them as defaults
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int

	Materials  []*material.Material
	Textures   []*material.Texture
	Spheres    []*geometry.Sphere
	Triangles  []*geometry.Triangle
	Primitives []geometry.Primitive
}

// Summary counts the contents of a scene
type Summary struct {
	Spheres    int
	Triangles  int
	Materials  int
	Textures   int
	Emissive   int
	Primitives int
}

// New creates an empty scene with a black sky and a default camera
func New(name string) *Scene {
	return &Scene{
		Name:            name,
		Camera:          renderer.NewPinholeCamera(core.NewVec3(0, 0, 5), core.Vec3{}, 40),
		Sky:             lights.NewUniformSky(core.Vec3{}),
		Width:           512,
		Height:          512,
		SamplesPerPixel: 64,
		MaxDepth:        100,
	}
}

// AddMaterial registers m with the scene and returns it
func (s *Scene) AddMaterial(m *material.Material) *material.Material {
	s.Materials = append(s.Materials, m)
	return m
}

// AddTexture registers t with the scene and returns it
func (s *Scene) AddTexture(t *material.Texture) *material.Texture {
	s.Textures = append(s.Textures, t)
	return t
}

// AddSphere adds a sphere primitive
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat *material.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius)
	s.Spheres = append(s.Spheres, sphere)
	s.Primitives = append(s.Primitives, geometry.Primitive{Shape: sphere, Material: mat})
	return sphere
}

// AddTriangle adds a flat triangle with default texture coordinates
func (s *Scene) AddTriangle(v0, v1, v2 core.Vec3, mat *material.Material) *geometry.Triangle {
	return s.addTriangle(geometry.NewTriangle(v0, v1, v2), mat)
}

func (s *Scene) addTriangle(tri *geometry.Triangle, mat *material.Material) *geometry.Triangle {
	s.Triangles = append(s.Triangles, tri)
	s.Primitives = append(s.Primitives, geometry.Primitive{Shape: tri, Material: mat})
	return tri
}

// AddQuad adds the parallelogram corner, corner+u, corner+u+v, corner+v as
// two triangles. Texture coordinates run from (0,0) at corner to (1,1).
func (s *Scene) AddQuad(corner, u, v core.Vec3, mat *material.Material) {
	p00 := corner
	p10 := corner.Add(u)
	p11 := corner.Add(u).Add(v)
	p01 := corner.Add(v)
	n := u.Cross(v).Normalize()
	normals := [3]core.Vec3{n, n, n}

	s.addTriangle(geometry.NewTriangleWithAttributes(
		[3]core.Vec3{p00, p10, p11}, normals,
		[3]core.Vec2{core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(1, 1)}), mat)
	s.addTriangle(geometry.NewTriangleWithAttributes(
		[3]core.Vec3{p00, p11, p01}, normals,
		[3]core.Vec2{core.NewVec2(0, 0), core.NewVec2(1, 1), core.NewVec2(0, 1)}), mat)
}

// AddBox adds the six faces of an axis-aligned box, rotated by angleY
// radians around its vertical center axis
func (s *Scene) AddBox(lo, hi core.Vec3, angleY float64, mat *material.Material) {
	center := lo.Add(hi).Multiply(0.5)
	xf := Transform{Scale: 1, Rotation: core.NewVec3(0, angleY, 0), Translation: center}
	h := hi.Subtract(lo).Multiply(0.5)

	corner := func(x, y, z float64) core.Vec3 { return xf.Apply(core.NewVec3(x*h.X, y*h.Y, z*h.Z)) }
	edge := func(x, y, z float64) core.Vec3 { return xf.ApplyNormal(core.NewVec3(x*h.X, y*h.Y, z*h.Z)) }

	s.AddQuad(corner(-1, -1, 1), edge(2, 0, 0), edge(0, 2, 0), mat)  // front
	s.AddQuad(corner(1, -1, -1), edge(-2, 0, 0), edge(0, 2, 0), mat) // back
	s.AddQuad(corner(-1, -1, -1), edge(0, 0, 2), edge(0, 2, 0), mat) // left
	s.AddQuad(corner(1, -1, 1), edge(0, 0, -2), edge(0, 2, 0), mat)  // right
	s.AddQuad(corner(-1, 1, 1), edge(2, 0, 0), edge(0, 0, -2), mat)  // top
	s.AddQuad(corner(-1, -1, -1), edge(2, 0, 0), edge(0, 0, 2), mat) // bottom
}

// AddMesh adds every triangle of mesh, transformed by xf
func (s *Scene) AddMesh(mesh *loaders.Mesh, xf Transform, mat *material.Material) {
	hasNormals := len(mesh.Normals) == len(mesh.Positions)
	hasUV := len(mesh.TexCoords) == len(mesh.Positions)

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		idx := [3]int{mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]}
		var p [3]core.Vec3
		for k := range idx {
			p[k] = xf.Apply(mesh.Positions[idx[k]])
		}

		if !hasNormals && !hasUV {
			s.AddTriangle(p[0], p[1], p[2], mat)
			continue
		}

		face := p[1].Subtract(p[0]).Cross(p[2].Subtract(p[0])).Normalize()
		normals := [3]core.Vec3{face, face, face}
		uvs := [3]core.Vec2{core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0, 1)}
		for k := range idx {
			if hasNormals {
				normals[k] = xf.ApplyNormal(mesh.Normals[idx[k]]).Normalize()
			}
			if hasUV {
				uvs[k] = mesh.TexCoords[idx[k]]
			}
		}
		s.addTriangle(geometry.NewTriangleWithAttributes(p, normals, uvs), mat)
	}
}

// Summarize counts the scene contents
func (s *Scene) Summarize() Summary {
	summary := Summary{
		Spheres:    len(s.Spheres),
		Triangles:  len(s.Triangles),
		Materials:  len(s.Materials),
		Textures:   len(s.Textures),
		Primitives: len(s.Primitives),
	}
	for i := range s.Primitives {
		if s.Primitives[i].IsEmissive() {
			summary.Emissive++
		}
	}
	return summary
}

// NewIntersector builds the acceleration structure over the primitives
func (s *Scene) NewIntersector(accel Accelerator) (geometry.Intersector, error) {
	switch accel {
	case AccelBVH, "":
		return geometry.NewBVH(s.Primitives), nil
	case AccelLinear:
		return geometry.NewLinearIntersector(s.Primitives), nil
	}
	return nil, fmt.Errorf("unknown accelerator %q", accel)
}

// Transform scales uniformly, rotates around X, Y then Z, and translates
type Transform struct {
	Scale       float64
	Rotation    core.Vec3 // radians
	Translation core.Vec3
}

// Identity returns a transform that leaves points unchanged
func Identity() Transform {
	return Transform{Scale: 1}
}

// Apply transforms a point
func (xf Transform) Apply(p core.Vec3) core.Vec3 {
	return xf.rotate(p.Multiply(xf.Scale)).Add(xf.Translation)
}

// ApplyNormal rotates a direction. Uniform scale needs no normal correction.
func (xf Transform) ApplyNormal(n core.Vec3) core.Vec3 {
	return xf.rotate(n)
}

func (xf Transform) rotate(p core.Vec3) core.Vec3 {
	if xf.Rotation.X != 0 {
		sin, cos := math.Sincos(xf.Rotation.X)
		p = core.NewVec3(p.X, cos*p.Y-sin*p.Z, sin*p.Y+cos*p.Z)
	}
	if xf.Rotation.Y != 0 {
		sin, cos := math.Sincos(xf.Rotation.Y)
		p = core.NewVec3(cos*p.X+sin*p.Z, p.Y, -sin*p.X+cos*p.Z)
	}
	if xf.Rotation.Z != 0 {
		sin, cos := math.Sincos(xf.Rotation.Z)
		p = core.NewVec3(cos*p.X-sin*p.Y, sin*p.X+cos*p.Y, p.Z)
	}
	return p
}
