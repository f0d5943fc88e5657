package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// testImage is a 2x2 image: white, red on top; green, blue below
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	return img
}

func checkTestImage(t *testing.T, imageData *ImageData) {
	t.Helper()
	if imageData.Width != 2 || imageData.Height != 2 {
		t.Fatalf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
	}
	if len(imageData.Pixels) != 4 {
		t.Fatalf("Expected 4 pixels, got %d", len(imageData.Pixels))
	}

	expected := []struct {
		name  string
		color core.Color
	}{
		{"Top-left (white)", core.White},
		{"Top-right (red)", core.NewColor(1, 0, 0)},
		{"Bottom-left (green)", core.NewColor(0, 1, 0)},
		{"Bottom-right (blue)", core.NewColor(0, 0, 1)},
	}
	const tolerance = 0.01
	for i, e := range expected {
		got := imageData.Pixels[i]
		if abs(got.R-e.color.R) > tolerance || abs(got.G-e.color.G) > tolerance || abs(got.B-e.color.B) > tolerance {
			t.Errorf("%s: expected %v, got %v", e.name, e.color, got)
		}
	}
}

func writeImage(t *testing.T, path string, encode func(f *os.File) error) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := encode(f); err != nil {
		f.Close()
		t.Fatalf("Failed to encode test image: %v", err)
	}
	f.Close()
}

// TestLoadImage creates test images and verifies loading
func TestLoadImage(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(tmpDir, "test.png")
		writeImage(t, path, func(f *os.File) error { return png.Encode(f, testImage()) })

		imageData, err := LoadImage(path)
		if err != nil {
			t.Fatalf("LoadImage failed: %v", err)
		}
		checkTestImage(t, imageData)
	})

	t.Run("bmp", func(t *testing.T) {
		path := filepath.Join(tmpDir, "test.bmp")
		writeImage(t, path, func(f *os.File) error { return bmp.Encode(f, testImage()) })

		imageData, err := LoadImage(path)
		if err != nil {
			t.Fatalf("LoadImage failed: %v", err)
		}
		checkTestImage(t, imageData)
	})
}

func TestFromImage_OffsetBounds(t *testing.T) {
	sub := testImage().SubImage(image.Rect(1, 1, 2, 2))
	imageData := FromImage(sub)
	if imageData.Width != 1 || imageData.Height != 1 {
		t.Fatalf("Expected 1x1 image, got %dx%d", imageData.Width, imageData.Height)
	}
	if !imageData.Pixels[0].ApproxEqual(core.NewColor(0, 0, 1)) {
		t.Errorf("Expected blue, got %v", imageData.Pixels[0])
	}
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestLoadImageNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Error("Expected decode error, got nil")
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
