package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// oklchToRGB converts OKLCH to clamped linear RGB.
// l: lightness (0-1), c: chroma (0-0.4), h: hue in degrees
func oklchToRGB(l, c, h float64) core.Vec3 {
	sinH, cosH := math.Sincos(h * math.Pi / 180)
	a, b := c*cosH, c*sinH

	// OKLab to cone responses, then cube
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b
	lc, mc, sc = lc*lc*lc, mc*mc*mc, sc*sc*sc

	return core.NewVec3(
		+4.0767416621*lc-3.3077115913*mc+0.2309699292*sc,
		-1.2684380046*lc+2.6097574011*mc-0.3413193965*sc,
		-0.0041960863*lc-0.7034186147*mc+1.7076147010*sc,
	).Clamp(0, 1)
}

// NewSphereGridScene creates a grid of composite spheres. Roughness grows
// along X, metalness along Z, and hue sweeps across the grid.
func NewSphereGridScene(gridSize int) *Scene {
	s := New("spheregrid")
	s.Camera = renderer.NewPinholeCamera(core.NewVec3(4.5, 6, 18), core.NewVec3(4.5, 0.8, 4.5), 40)
	s.Sky = lights.NewGradientSky(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
	s.Width, s.Height = 640, 360
	s.SamplesPerPixel = 64
	s.MaxDepth = 40

	sun := s.AddMaterial(material.NewEmissive(core.NewVec3(12.0, 11.5, 10.0)))
	s.AddSphere(core.NewVec3(20, 25, 20), 8, sun)

	ground := s.AddMaterial(material.NewLambert(core.NewVec3(0.5, 0.5, 0.5)))
	s.AddSphere(core.NewVec3(4.5, -10000, 4.5), 10000, ground)

	// fit the grid into a 9x9 area around (4.5, 4.5)
	const area = 9.0
	spacing := area / float64(max(1, gridSize-1))
	radius := max(0.02, min(0.35, 0.35*spacing))

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			fi := float64(i) / float64(max(1, gridSize-1))
			fj := float64(j) / float64(max(1, gridSize-1))

			lightness := 0.65 + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, 0.05+0.2*fj, 360*fi)

			mat := s.AddMaterial(&material.Material{
				Diffuse:        color,
				Specular:       core.NewVec3(1, 1, 1),
				Roughness:      material.MinRoughness + fi*(material.MaxRoughness-material.MinRoughness),
				Metalness:      fj,
				SpecularWeight: 1,
				IOR:            material.DefaultIOR,
				Model:          material.ModelComposite,
			})

			x := float64(i)*spacing - area/2 + 4.5
			z := float64(j)*spacing - area/2 + 4.5
			s.AddSphere(core.NewVec3(x, radius, z), radius, mat)
		}
	}

	return s
}
