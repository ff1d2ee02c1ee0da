package renderer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"
)

// maxPPMLineLength is the longest line a plain PPM file may contain
const maxPPMLineLength = 70

// WritePPM encodes the canvas as a plain (P3) PPM image. Channels are scaled
// to [0, maxValue] and clamped.
func WritePPM(w io.Writer, c *Canvas, maxValue int) error {
	if maxValue <= 0 || maxValue > 65535 {
		return fmt.Errorf("ppm max colour value %d out of range", maxValue)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", c.width, c.height, maxValue); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}

	line := make([]byte, 0, maxPPMLineLength+1)
	flush := func() error {
		if _, err := bw.Write(line); err != nil {
			return err
		}
		line = line[:0]
		return bw.WriteByte('\n')
	}

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			for _, channel := range []float64{p.R(), p.G(), p.B()} {
				value := strconv.Itoa(scaleChannel(channel, maxValue))
				if len(line) > 0 && len(line)+1+len(value) > maxPPMLineLength {
					if err := flush(); err != nil {
						return fmt.Errorf("write ppm body: %w", err)
					}
				}
				if len(line) > 0 {
					line = append(line, ' ')
				}
				line = append(line, value...)
			}
		}
		if err := flush(); err != nil {
			return fmt.Errorf("write ppm body: %w", err)
		}
	}

	return bw.Flush()
}

// OutputFilename returns the default name for a rendered image:
// <width>_<height>_<unix seconds>.<ext>
func OutputFilename(width, height int, at time.Time, ext string) string {
	return fmt.Sprintf("%d_%d_%d.%s", width, height, at.Unix(), ext)
}
