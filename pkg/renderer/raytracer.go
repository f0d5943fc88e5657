package renderer

import (
	"context"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Config contains rendering configuration
type Config struct {
	MaxDepth     int // Reflection/refraction bounces followed per camera ray
	ProgressRows int // Log progress every this many rows; 0 disables progress lines
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:     5,
		ProgressRows: 0,
	}
}

// Raytracer renders a world as seen through a camera, one pixel at a time in
// row-major order
type Raytracer struct {
	camera *Camera
	world  *world.World
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards log output.
func NewRaytracer(camera *Camera, w *world.World, logger core.Logger) *Raytracer {
	return &Raytracer{
		camera: camera,
		world:  w,
		config: DefaultConfig(),
		logger: core.OrDiscard(logger),
	}
}

// SetConfig updates the rendering configuration
func (rt *Raytracer) SetConfig(config Config) {
	rt.config = config
}

// Config returns the current rendering configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Camera returns the camera being rendered through
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// World returns the world being rendered
func (rt *Raytracer) World() *world.World {
	return rt.world
}

// PixelColor returns the colour of a single pixel
func (rt *Raytracer) PixelColor(px, py int) core.Color {
	color, _ := rt.shadePixel(px, py)
	return color
}

func (rt *Raytracer) shadePixel(px, py int) (core.Color, bool) {
	ray := rt.camera.RayForPixel(px, py)
	comps, ok := rt.world.Trace(ray)
	if !ok {
		return rt.world.Background, false
	}
	return rt.world.ShadeHit(comps, rt.config.MaxDepth), true
}

// Render renders every pixel onto a new canvas
func (rt *Raytracer) Render() (*canvas.Canvas, RenderStats) {
	img := canvas.New(rt.camera.HSize, rt.camera.VSize)
	stats := rt.RenderFunc(func(x, y int, c core.Color) {
		img.WritePixel(x, y, c)
	})
	return img, stats
}

// RenderFunc passes the colour of every pixel to fn in row-major order
func (rt *Raytracer) RenderFunc(fn func(x, y int, c core.Color)) RenderStats {
	// context.Background is never cancelled
	stats, _ := rt.RenderContext(context.Background(), fn)
	return stats
}

// RenderContext is RenderFunc with cancellation. The context is checked
// between rows; on cancellation the rows finished so far have been delivered
// and ctx.Err() is returned.
func (rt *Raytracer) RenderContext(ctx context.Context, fn func(x, y int, c core.Color)) (RenderStats, error) {
	width, height := rt.camera.HSize, rt.camera.VSize
	stats := RenderStats{
		Width:    width,
		Height:   height,
		MaxDepth: rt.config.MaxDepth,
	}
	start := time.Now()

	for y := 0; y < height; y++ {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			rt.logger.Printf("Render cancelled after %d/%d rows: %v\n", y, height, err)
			return stats, err
		}

		for x := 0; x < width; x++ {
			color, hit := rt.shadePixel(x, y)
			if hit {
				stats.PrimaryHits++
			}
			stats.TotalPixels++
			fn(x, y, color)
		}
		stats.RowsComplete++

		if rt.config.ProgressRows > 0 && (y+1)%rt.config.ProgressRows == 0 {
			rt.logger.Printf("Rendered %d/%d rows\n", y+1, height)
		}
	}

	stats.Duration = time.Since(start)
	rt.logger.Printf("Rendered %dx%d (%d pixels) in %v\n", width, height, stats.TotalPixels, stats.Duration)
	return stats, nil
}
