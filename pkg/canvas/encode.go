package canvas

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format is an output image encoding
type Format string

const (
	PNG  Format = "png"
	PPM  Format = "ppm"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Formats lists the supported encodings
var Formats = []Format{PNG, PPM, BMP, TIFF}

// ParseFormat resolves a format name or file extension, case-insensitively
func ParseFormat(name string) (Format, error) {
	name = strings.TrimPrefix(strings.ToLower(name), ".")
	switch name {
	case "png":
		return PNG, nil
	case "ppm":
		return PPM, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return "", fmt.Errorf("unsupported image format %q", name)
}

// Extension returns the file extension for the format, including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case PNG:
		return "image/png"
	case BMP:
		return "image/bmp"
	case TIFF:
		return "image/tiff"
	default:
		return "image/x-portable-pixmap"
	}
}

// Upscale enlarges the canvas image by an integer factor with nearest-neighbour
// sampling so individual pixels stay crisp. Factors below 2 return the image unscaled.
func (c *Canvas) Upscale(factor int) *image.RGBA {
	src := c.Image()
	if factor < 2 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, c.Width*factor, c.Height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Encode writes the canvas in the given format, enlarged by scale.
// PPM output is always written at native resolution.
func (c *Canvas) Encode(w io.Writer, format Format, scale int) error {
	if format == PPM {
		return c.WritePPM(w)
	}

	img := c.Upscale(scale)
	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}
