package material

import (
	"testing"

	"golang.org/x/image/math/f32"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TestTextureFetch checks that row 0 is the bottom edge
func TestTextureFetch(t *testing.T) {
	white := f32.Vec4{1, 1, 1, 1}
	black := f32.Vec4{0, 0, 0, 1}
	// Layout (bottom-up):
	//   row 1: black white
	//   row 0: white black
	texture := NewTexture(2, 2, []f32.Vec4{white, black, black, white})

	tests := []struct {
		name     string
		uv       core.Vec2
		expected f32.Vec4
	}{
		{"bottom-left", core.NewVec2(0, 0), white},
		{"bottom-right", core.NewVec2(1, 0), black},
		{"top-left", core.NewVec2(0, 1), black},
		{"top-right", core.NewVec2(1, 1), white},
		{"clamped below", core.NewVec2(-3, -0.5), white},
		{"clamped above", core.NewVec2(7, 2), white},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Fetch(tt.uv); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTextureFetch_Empty(t *testing.T) {
	var texture Texture
	if got := texture.Fetch(core.NewVec2(0.5, 0.5)); got != (f32.Vec4{}) {
		t.Errorf("Expected zero texel from an empty texture, got %v", got)
	}
}

func TestSolidTexture(t *testing.T) {
	c := core.NewVec3(0.25, 0.5, 0.75)
	texture := NewSolidTexture(c)
	if got := texture.FetchRGB(core.NewVec2(0.3, 0.9)); got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
}

func TestCheckerboardTexture(t *testing.T) {
	a, b := core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1)
	texture := NewCheckerboardTexture(4, 4, 2, a, b)

	tests := []struct {
		x, y     int
		expected core.Vec3
	}{
		{0, 0, a}, {1, 1, a}, {2, 0, b}, {0, 2, b}, {3, 3, a},
	}
	for _, tt := range tests {
		c := texture.Texels[tt.y*4+tt.x]
		got := core.NewVec3(float64(c[0]), float64(c[1]), float64(c[2]))
		if got != tt.expected {
			t.Errorf("texel (%d,%d): Expected %v, got %v", tt.x, tt.y, tt.expected, got)
		}
	}
}

func TestGradientTexture(t *testing.T) {
	bottom, top := core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)
	texture := NewGradientTexture(2, 3, bottom, top)

	if got := texture.FetchRGB(core.NewVec2(0.5, 0)); got != bottom {
		t.Errorf("Expected bottom color %v, got %v", bottom, got)
	}
	if got := texture.FetchRGB(core.NewVec2(0.5, 1)); got != top {
		t.Errorf("Expected top color %v, got %v", top, got)
	}
	if got := texture.FetchRGB(core.NewVec2(0, 0.5)); got != core.Splat(0.5) {
		t.Errorf("Expected midpoint 0.5, got %v", got)
	}
}

func TestUVDebugTexture(t *testing.T) {
	texture := NewUVDebugTexture(3, 3)
	if got := texture.FetchRGB(core.NewVec2(1, 0)); got != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected red at u=1, got %v", got)
	}
	if got := texture.FetchRGB(core.NewVec2(0, 1)); got != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected green at v=1, got %v", got)
	}
}
