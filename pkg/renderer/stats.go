package renderer

import (
	"image"
	"time"

	"golang.org/x/text/message"
)

// RenderStats summarises a finished (or cancelled) render
type RenderStats struct {
	Width        int           // Image width in pixels
	Height       int           // Image height in pixels
	TotalPixels  int           // Pixels actually shaded
	PrimaryHits  int           // Pixels whose camera ray hit a shape
	RowsComplete int           // Rows finished before returning
	MaxDepth     int           // Bounce budget used for every pixel
	Duration     time.Duration // Wall-clock render time
}

// Coverage is the fraction of shaded pixels that hit geometry
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.PrimaryHits) / float64(s.TotalPixels)
}

// PixelsPerSecond is the shading throughput of the render
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}

// Complete reports whether every row was rendered
func (s RenderStats) Complete() bool {
	return s.RowsComplete == s.Height
}

// Summary formats the stats for display, with numbers grouped per the
// printer's language
func (s RenderStats) Summary(p *message.Printer) string {
	return p.Sprintf("%dx%d, %d pixels (%.1f%% hit geometry) in %v, %.0f pixels/s",
		s.Width, s.Height, s.TotalPixels, s.Coverage()*100,
		s.Duration.Round(time.Millisecond), s.PixelsPerSecond())
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff
		}
	}
	return total / float64(bounds.Dx()*bounds.Dy())
}
