package scene

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) contains(substr string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func colorNear(a, b core.Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) < tolerance &&
		math.Abs(a.G-b.G) < tolerance &&
		math.Abs(a.B-b.B) < tolerance
}

func TestMergeRenderConfig(t *testing.T) {
	base := RenderConfig{Width: 400, Height: 200, MaxDepth: 5}

	tests := []struct {
		name     string
		override RenderConfig
		expected RenderConfig
	}{
		{"empty", RenderConfig{}, base},
		{"width only", RenderConfig{Width: 64}, RenderConfig{Width: 64, Height: 200, MaxDepth: 5}},
		{"all", RenderConfig{Width: 1, Height: 2, MaxDepth: 3}, RenderConfig{Width: 1, Height: 2, MaxDepth: 3}},
		{"negative ignored", RenderConfig{Width: -1, MaxDepth: -4}, base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeRenderConfig(base, tt.override); got != tt.expected {
				t.Errorf("MergeRenderConfig = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestBuiltins(t *testing.T) {
	for _, b := range Builtins() {
		t.Run(b.ID, func(t *testing.T) {
			logger := &recordingLogger{}
			s, err := NewBuiltin(b.ID, logger)
			if err != nil {
				t.Fatalf("NewBuiltin(%q) failed: %v", b.ID, err)
			}
			if len(logger.lines) != 0 {
				t.Errorf("Expected no warnings, got %v", logger.lines)
			}
			if s.ShapeCount() == 0 {
				t.Error("Expected at least one shape")
			}
			if len(s.World.Lights) == 0 {
				t.Error("Expected at least one light")
			}
			if s.RenderConfig.Width <= 0 || s.RenderConfig.Height <= 0 || s.RenderConfig.MaxDepth <= 0 {
				t.Errorf("Invalid render config %+v", s.RenderConfig)
			}

			// A tiny render must produce finite colours everywhere
			s.Configure(RenderConfig{Width: 8, Height: 6, MaxDepth: 2})
			img, stats := s.NewRaytracer(nil).Render()
			if !stats.Complete() {
				t.Errorf("Render incomplete: %+v", stats)
			}
			for y := 0; y < img.Height; y++ {
				for x := 0; x < img.Width; x++ {
					c, _ := img.PixelAt(x, y)
					for _, v := range []float64{c.R, c.G, c.B} {
						if math.IsNaN(v) || math.IsInf(v, 0) {
							t.Fatalf("Pixel (%d,%d) = %v is not finite", x, y, c)
						}
					}
				}
			}
		})
	}
}

func TestBuiltins_ReturnsCopy(t *testing.T) {
	list := Builtins()
	list[0].ID = "changed"
	if Builtins()[0].ID == "changed" {
		t.Error("Builtins should return a copy")
	}
}

func TestNewBuiltin_Unknown(t *testing.T) {
	if _, err := NewBuiltin("no-such-scene", nil); err == nil {
		t.Error("Expected error for unknown scene")
	}
}

func TestWorldScene_MatchesReferenceRender(t *testing.T) {
	s := NewWorldScene(nil)
	s.Configure(RenderConfig{Width: 11, Height: 11})

	c := s.NewRaytracer(nil).PixelColor(5, 5)
	expected := core.NewColor(0.38066, 0.47583, 0.2855)
	if !colorNear(c, expected, 1e-4) {
		t.Errorf("Centre pixel = %v, want %v", c, expected)
	}
}

func TestScene_NewRaytracerUsesDepth(t *testing.T) {
	s := NewMirrorScene(nil)
	rt := s.NewRaytracer(nil)
	if rt.Config().MaxDepth != s.RenderConfig.MaxDepth {
		t.Errorf("MaxDepth = %d, want %d", rt.Config().MaxDepth, s.RenderConfig.MaxDepth)
	}
	if rt.Camera().HSize != s.RenderConfig.Width || rt.Camera().VSize != s.RenderConfig.Height {
		t.Errorf("Camera size %dx%d, want %dx%d",
			rt.Camera().HSize, rt.Camera().VSize, s.RenderConfig.Width, s.RenderConfig.Height)
	}
}

func TestScene_CameraFallsBackToIdentity(t *testing.T) {
	// Looking straight along up collapses the view basis
	s := &Scene{
		Name:  "degenerate",
		World: world.New(),
		CameraConfig: CameraConfig{
			From: core.Origin,
			To:   core.Point(0, 1, 0),
			Up:   core.Vector(0, 1, 0),
			FOV:  90,
		},
		RenderConfig: RenderConfig{Width: 10, Height: 10, MaxDepth: 1},
	}

	logger := &recordingLogger{}
	camera := s.Camera(logger)
	if !camera.Transform().ApproxEqual(core.Identity) {
		t.Errorf("Expected identity camera transform, got %v", camera.Transform())
	}
	if !logger.contains("Warning") {
		t.Errorf("Expected a warning, got %v", logger.lines)
	}
}

func TestBuilder_SingularTransformFallsBack(t *testing.T) {
	logger := &recordingLogger{}
	b := newBuilder(logger)

	placed := b.place(NewWorldScene(nil).World.Shapes[0], core.Scaling(0, 1, 1))
	if !placed.Transform().ApproxEqual(core.Identity) {
		t.Errorf("Expected identity transform after fallback, got %v", placed.Transform())
	}
	if !logger.contains("using identity transform") {
		t.Errorf("Expected fallback warning, got %v", logger.lines)
	}
}
