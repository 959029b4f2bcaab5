package material

import (
	"golang.org/x/image/math/f32"

	"github.com/df07/go-pathtracer/pkg/core"
)

func texel(c core.Vec3) f32.Vec4 {
	return f32.Vec4{float32(c.X), float32(c.Y), float32(c.Z), 1}
}

// NewCheckerboardTexture bakes a checkerboard pattern with checkSize-texel squares
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *Texture {
	texels := make([]f32.Vec4, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color1
			if (x/checkSize+y/checkSize)%2 != 0 {
				c = color2
			}
			texels[y*width+x] = texel(c)
		}
	}
	return NewTexture(width, height, texels)
}

// NewUVDebugTexture maps u to red and v to green
func NewUVDebugTexture(width, height int) *Texture {
	texels := make([]f32.Vec4, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(1, width-1))
			v := float64(y) / float64(max(1, height-1))
			texels[y*width+x] = texel(core.NewVec3(u, v, 0))
		}
	}
	return NewTexture(width, height, texels)
}

// NewGradientTexture bakes a vertical gradient from bottom (v=0) to top (v=1)
func NewGradientTexture(width, height int, bottom, top core.Vec3) *Texture {
	texels := make([]f32.Vec4, width*height)
	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(1, height-1))
		c := texel(bottom.Multiply(1 - t).Add(top.Multiply(t)))
		for x := 0; x < width; x++ {
			texels[y*width+x] = c
		}
	}
	return NewTexture(width, height, texels)
}
