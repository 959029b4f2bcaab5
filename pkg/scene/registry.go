package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrUnknownScene is returned by Load for names that match no preset
var ErrUnknownScene = errors.New("unknown scene")

// plyPrefix selects a PLY mesh scene, as in "ply:bunny.ply"
const plyPrefix = "ply:"

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string
	Description string
	build       func() *Scene
}

var builtins = []SceneInfo{
	{ID: "cornell", Description: "Cornell box with an area light, a rotated block, a metal and a plastic sphere", build: NewCornellScene},
	{ID: "furnace", Description: "Grey diffuse sphere under a uniform white sky", build: NewFurnaceScene},
	{ID: "meshes", Description: "Box, pyramid and icosahedron triangle meshes", build: NewTriangleMeshScene},
	{ID: "spheregrid", Description: "Composite spheres sweeping roughness and metalness", build: func() *Scene { return NewSphereGridScene(10) }},
	{ID: "spheres", Description: "Every material model on a checkered ground", build: NewDefaultScene},
	{ID: "textures", Description: "Procedural textures on spheres, boxes, quads and triangles", build: NewTextureTestScene},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := append([]SceneInfo(nil), builtins...)
	sort.Slice(scenes, func(i, j int) bool { return scenes[i].ID < scenes[j].ID })
	return scenes
}

// Names returns the IDs of the built-in scenes
func Names() []string {
	scenes := ListScenes()
	names := make([]string, len(scenes))
	for i, info := range scenes {
		names[i] = info.ID
	}
	return names
}

// Load builds a scene by ID. "ply:<path>" loads a mesh from disk and
// places it on a ground plane.
func Load(id string) (*Scene, error) {
	if path, ok := strings.CutPrefix(id, plyPrefix); ok {
		mesh, err := loaders.LoadPLY(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load scene %q: %w", id, err)
		}
		return NewMeshScene(id, mesh), nil
	}

	for _, info := range builtins {
		if info.ID == id {
			return info.build(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, id, strings.Join(Names(), ", "))
}

// NewMeshScene scales mesh to unit height, stands it on a ground plane and
// frames it with the camera
func NewMeshScene(name string, mesh *loaders.Mesh) *Scene {
	s := New(name)
	s.Sky = lights.NewGradientSky(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
	s.Width, s.Height = 512, 512
	s.SamplesPerPixel = 64
	s.MaxDepth = 20

	bounds := mesh.Bounds()
	size := bounds.Size()
	extent := max(size.X, size.Y, size.Z)
	scale := 1.0
	if extent > 0 {
		scale = 1 / extent
	}
	center := bounds.Center()
	xf := Transform{
		Scale:       scale,
		Translation: core.NewVec3(-center.X*scale, -bounds.Min.Y*scale, -center.Z*scale),
	}

	body := s.AddMaterial(material.NewDiffuseSpecular(core.NewVec3(0.6, 0.55, 0.5), 0.3))
	ground := s.AddMaterial(material.NewLambert(core.NewVec3(0.5, 0.5, 0.5)))
	s.AddMesh(mesh, xf, body)
	s.AddQuad(core.NewVec3(-20, 0, 20), core.NewVec3(40, 0, 0), core.NewVec3(0, 0, -40), ground)

	lookAt := core.NewVec3(0, size.Y*scale/2, 0)
	s.Camera = renderer.NewPinholeCamera(lookAt.Add(core.NewVec3(0, 0.6, 2.4)), lookAt, 40)
	return s
}
