package asciiprint_test

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/kevin-cantwell/asciiprint"
)

func solidGray(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// gradient runs from white on the left to black on the right.
func gradient(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := 255 - math.Round(float64(x)*255/float64(w-1))
			img.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return img
}

// asymmetric is an 8x6 image with no symmetry, using luminances that sit far
// from any Bourke ramp boundary.
func asymmetric() *image.Gray {
	levels := []uint8{0, 100, 190, 255}
	img := image.NewGray(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.SetGray(x, y, color.Gray{Y: levels[(x+2*y+x*y)%len(levels)]})
		}
	}
	return img
}

// identityConfig maps the 8x6 asymmetric image onto an 8x6 grid.
func identityConfig() asciiprint.Config {
	cfg := asciiprint.DefaultConfig()
	cfg.Pitch = 8
	cfg.RowFrequency = 8
	cfg.PageWidth = 1.0
	cfg.FullHeight = true
	return cfg
}

func lines(text []byte) []string {
	return strings.Split(strings.TrimSuffix(string(text), "\n"), "\n")
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
