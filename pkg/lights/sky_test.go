package lights

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"golang.org/x/image/math/f32"
)

func TestUniformSky(t *testing.T) {
	sky := NewUniformSky(core.NewVec3(0.2, 0.4, 0.6))
	for _, d := range []core.Vec3{core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0).Normalize()} {
		if got := sky.Evaluate(core.NewRay(core.Vec3{}, d)); got != sky.Radiance {
			t.Errorf("direction %v: expected %v, got %v", d, sky.Radiance, got)
		}
	}
}

func TestGradientSky(t *testing.T) {
	top := core.NewVec3(0.5, 0.7, 1.0)
	bottom := core.NewVec3(1, 1, 1)
	sky := NewGradientSky(top, bottom)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"Up", core.NewVec3(0, 1, 0), top},
		{"Down", core.NewVec3(0, -1, 0), bottom},
		{"Horizon", core.NewVec3(1, 0, 0), top.Add(bottom).Multiply(0.5)},
		{"Unnormalised up", core.NewVec3(0, 5, 0), top},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sky.Evaluate(core.NewRay(core.Vec3{}, tt.direction))
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestIBLSky_Orientation(t *testing.T) {
	// 1x2 map: bottom row red, top row blue
	tex := material.NewTexture(1, 2, []f32.Vec4{{1, 0, 0, 1}, {0, 0, 1, 1}})
	sky := NewIBLSky(tex)

	if up := sky.Evaluate(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))); up != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected blue looking up, got %v", up)
	}
	if down := sky.Evaluate(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0))); down != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected red looking down, got %v", down)
	}

	sky.Scale = 2
	if up := sky.Evaluate(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))); up != core.NewVec3(0, 0, 2) {
		t.Errorf("Expected scaled radiance, got %v", up)
	}
}
