package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"math"
	"os"

	"golang.org/x/image/math/f32"

	"github.com/df07/go-pathtracer/pkg/material"
)

// LoadTexture loads a PNG or JPEG file as a linear-light texture
func LoadTexture(filename string) (*material.Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", filename, err)
	}
	defer file.Close()

	texture, err := DecodeTexture(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", filename, err)
	}
	logger.Infof("loaded texture %s (%dx%d)", filename, texture.Width, texture.Height)
	return texture, nil
}

// DecodeTexture decodes an 8-bit sRGB image into a texture. Rows are flipped
// so that row 0 of the texture is the bottom of the image.
func DecodeTexture(r io.Reader) (*material.Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	texels := make([]f32.Vec4, width*height)

	for y := 0; y < height; y++ {
		row := height - 1 - y
		for x := 0; x < width; x++ {
			// RGBA returns alpha-premultiplied uint32 in [0, 65535]
			r, g, b, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			texel := f32.Vec4{srgbToLinear(r, a), srgbToLinear(g, a), srgbToLinear(b, a), float32(a) / 65535}
			texels[row*width+x] = texel
		}
	}

	return material.NewTexture(width, height, texels), nil
}

func srgbToLinear(c, a uint32) float32 {
	if a == 0 {
		return 0
	}
	x := float64(c) / float64(a)
	if x <= 0.04045 {
		return float32(x / 12.92)
	}
	return float32(math.Pow((x+0.055)/1.055, 2.4))
}
