package loaders

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/math/f32"
)

// writeTestPNG writes a 2x2 image: white, red on the top row; green, half gray on the bottom
func writeTestPNG(t *testing.T, filename string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 188, G: 188, B: 188, A: 255})

	f, err := os.Create(filename)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
}

func TestLoadTexture(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.png")
	writeTestPNG(t, testFile)

	texture, err := LoadTexture(testFile)
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}
	if texture.Width != 2 || texture.Height != 2 {
		t.Fatalf("Expected 2x2 texture, got %dx%d", texture.Width, texture.Height)
	}

	checkTexel := func(name string, got, expected f32.Vec4) {
		for i := range got {
			if math.Abs(float64(got[i]-expected[i])) > 0.01 {
				t.Errorf("%s: expected %v, got %v", name, expected, got)
				return
			}
		}
	}

	// rows are stored bottom-up
	checkTexel("bottom-left (green)", texture.Texels[0], f32.Vec4{0, 1, 0, 1})
	checkTexel("bottom-right (gray)", texture.Texels[1], f32.Vec4{0.5, 0.5, 0.5, 1})
	checkTexel("top-left (white)", texture.Texels[2], f32.Vec4{1, 1, 1, 1})
	checkTexel("top-right (red)", texture.Texels[3], f32.Vec4{1, 0, 0, 1})
}

func TestLoadTexture_MissingFile(t *testing.T) {
	_, err := LoadTexture(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestDecodeTexture_Garbage(t *testing.T) {
	if _, err := DecodeTexture(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Expected error decoding garbage")
	}
}

func TestSRGBToLinear(t *testing.T) {
	tests := []struct {
		c        uint32
		expected float64
	}{
		{0, 0},
		{65535, 1},
		{2621, 2621.0 / 65535 / 12.92},
	}
	for _, tt := range tests {
		got := float64(srgbToLinear(tt.c, 65535))
		if math.Abs(got-tt.expected) > 1e-4 {
			t.Errorf("srgbToLinear(%d): expected %v, got %v", tt.c, tt.expected, got)
		}
	}
	if got := srgbToLinear(100, 0); got != 0 {
		t.Errorf("Expected zero for transparent texel, got %v", got)
	}
}
