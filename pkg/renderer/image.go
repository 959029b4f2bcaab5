package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Image is a linear RGB accumulation buffer. Row 0 is the top of the frame.
type Image struct {
	Width, Height int
	Pixels        []core.Vec3
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Pixel returns the value at (x, y)
func (img *Image) Pixel(x, y int) core.Vec3 {
	return img.Pixels[y*img.Width+x]
}

// SetPixel overwrites the value at (x, y)
func (img *Image) SetPixel(x, y int, c core.Vec3) {
	img.Pixels[y*img.Width+x] = c
}

// AddPixel accumulates c into (x, y)
func (img *Image) AddPixel(x, y int, c core.Vec3) {
	i := y*img.Width + x
	img.Pixels[i] = img.Pixels[i].Add(c)
}

// Divide scales every pixel by 1/k
func (img *Image) Divide(k float64) {
	if k == 0 {
		return
	}
	inv := 1 / k
	for i := range img.Pixels {
		img.Pixels[i] = img.Pixels[i].Multiply(inv)
	}
}

// PostProcess converts linear radiance to sRGB in place
func (img *Image) PostProcess() {
	for i, p := range img.Pixels {
		img.Pixels[i] = core.NewVec3(linearToSRGB(p.X), linearToSRGB(p.Y), linearToSRGB(p.Z))
	}
}

// ToRGBA quantizes the image to 8 bits per channel. Call PostProcess first.
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.Pixel(x, y).Clamp(0, 1)
			out.SetRGBA(x, y, color.RGBA{
				R: uint8(255*c.X + 0.5),
				G: uint8(255*c.Y + 0.5),
				B: uint8(255*c.Z + 0.5),
				A: 255,
			})
		}
	}
	return out
}

// AverageLuminance returns the mean linear luminance of the image
func (img *Image) AverageLuminance() float64 {
	if len(img.Pixels) == 0 {
		return 0
	}
	var sum float64
	for _, p := range img.Pixels {
		sum += p.Luminance()
	}
	return sum / float64(len(img.Pixels))
}

func linearToSRGB(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x < 0.0031308 {
		return 12.92 * x
	}
	return 1.055*math.Pow(x, 1/2.4) - 0.055
}
