package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// MaxChannel is the largest quantised channel value
const MaxChannel = 255

// Canvas is a width×height grid of unclamped colours, indexed from the top-left
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// New creates a black canvas
func New(width, height int) *Canvas {
	return Filled(width, height, core.Black)
}

// Filled creates a canvas with every pixel set to c
func Filled(width, height int, c core.Color) *Canvas {
	pixels := make([]core.Color, width*height)
	for i := range pixels {
		pixels[i] = c
	}
	return &Canvas{Width: width, Height: height, pixels: pixels}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// WritePixel stores a colour; it reports false when (x, y) lies outside the canvas
func (c *Canvas) WritePixel(x, y int, col core.Color) bool {
	if !c.inBounds(x, y) {
		return false
	}
	c.pixels[y*c.Width+x] = col
	return true
}

// PixelAt returns the colour at (x, y); ok is false outside the canvas
func (c *Canvas) PixelAt(x, y int) (core.Color, bool) {
	if !c.inBounds(x, y) {
		return core.Color{}, false
	}
	return c.pixels[y*c.Width+x], true
}

// Quantize maps a channel to 0..MaxChannel: negatives clamp to 0, values above 1
// clamp to MaxChannel, everything else rounds up
func Quantize(v float64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return MaxChannel
	default:
		return uint8(math.Ceil(v * MaxChannel))
	}
}

// RGBA quantises a colour to an opaque 8-bit pixel
func RGBA(col core.Color) color.RGBA {
	return color.RGBA{
		R: Quantize(col.R),
		G: Quantize(col.G),
		B: Quantize(col.B),
		A: 255,
	}
}

// Image converts the canvas to an 8-bit image
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.SetRGBA(x, y, RGBA(c.pixels[y*c.Width+x]))
		}
	}
	return img
}
