package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MaxPPMLineLength is the longest line the plain PPM format allows
const MaxPPMLineLength = 70

// WritePPM writes the canvas as plain-text PPM (P3). Lines never exceed
// MaxPPMLineLength and an RGB triple is never split across lines; each row
// starts on a new line.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", c.Width, c.Height, MaxChannel); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := 0; y < c.Height; y++ {
		lineLen := 0
		for x := 0; x < c.Width; x++ {
			px := RGBA(c.pixels[y*c.Width+x])
			token := fmt.Sprintf("%d %d %d", px.R, px.G, px.B)

			if lineLen > 0 {
				if lineLen+1+len(token) > MaxPPMLineLength {
					bw.WriteByte('\n')
					lineLen = 0
				} else {
					bw.WriteByte(' ')
					lineLen++
				}
			}
			bw.WriteString(token)
			lineLen += len(token)
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM body: %w", err)
	}
	return nil
}

// PPM returns the canvas as a PPM string
func (c *Canvas) PPM() string {
	var sb strings.Builder
	// strings.Builder never returns write errors
	_ = c.WritePPM(&sb)
	return sb.String()
}
