package asciiprint

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/stat"
)

// DefaultFilter is the resampling filter used when none is configured.
const DefaultFilter = "bicubic"

// Resampler scales an image to exactly width x height.
type Resampler interface {
	Resample(img image.Image, width, height int) image.Image
}

type nfntResampler struct {
	interp resize.InterpolationFunction
}

func (r nfntResampler) Resample(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, r.interp)
}

type imagingResampler struct {
	filter imaging.ResampleFilter
}

func (r imagingResampler) Resample(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, r.filter)
}

var resamplers = map[string]Resampler{
	"bicubic":    nfntResampler{resize.Bicubic},
	"nearest":    nfntResampler{resize.NearestNeighbor},
	"catmullrom": imagingResampler{imaging.CatmullRom},
	"lanczos":    imagingResampler{imaging.Lanczos},
	"box":        imagingResampler{imaging.Box},
}

// Filters lists the names accepted by Config.Filter.
func Filters() []string {
	names := make([]string, 0, len(resamplers))
	for name := range resamplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Transform turns a decoded image into the grayscale character grid described
// by cfg. Each step works on a new image; img is never modified.
func Transform(img image.Image, cfg Config) (*image.Gray, error) {
	bounds := img.Bounds()
	columns, rows, err := GridSize(cfg, bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	resampler, ok := resamplers[cfg.Filter]
	if !ok {
		return nil, &ConfigError{Field: "filter", Reason: "unknown filter " + cfg.Filter}
	}

	if cfg.Rotate == 1 {
		img = imaging.Rotate180(img)
	}
	if cfg.Mirror == 1 {
		img = imaging.FlipH(img)
	}
	img = Opaque(img)
	img = imaging.Grayscale(img)
	img = EnhanceContrast(img, cfg.Contrast)
	img = EnhanceBrightness(img, cfg.Brightness)

	return toGray(resampler.Resample(toGray(img), columns, rows)), nil
}

// Opaque drops the alpha channel, keeping the straight color values, so a
// transparent background prints as whatever color it holds rather than ink.
func Opaque(img image.Image) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.A = 0xff
		return c
	})
}

// EnhanceContrast pushes every pixel away from (factor > 1) or towards
// (factor < 1) the mean luminance of the image. A factor of 0 yields a solid
// image of the mean; 1 returns the image unchanged.
func EnhanceContrast(img image.Image, factor float64) *image.NRGBA {
	hist := imaging.Histogram(img)
	levels := make([]float64, len(hist))
	for i := range levels {
		levels[i] = float64(i)
	}
	mean := math.Floor(stat.Mean(levels, hist[:]) + 0.5)

	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: blend(mean, float64(c.R), factor),
			G: blend(mean, float64(c.G), factor),
			B: blend(mean, float64(c.B), factor),
			A: c.A,
		}
	})
}

// EnhanceBrightness scales every pixel by factor. 0 yields black and 1
// returns the image unchanged.
func EnhanceBrightness(img image.Image, factor float64) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: blend(0, float64(c.R), factor),
			G: blend(0, float64(c.G), factor),
			B: blend(0, float64(c.B), factor),
			A: c.A,
		}
	})
}

// blend interpolates from base towards v by factor, truncating into [0, 255].
func blend(base, v, factor float64) uint8 {
	out := base + factor*(v-base)
	switch {
	case out <= 0:
		return 0
	case out >= 255:
		return 255
	}
	return uint8(out)
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok && g.Rect.Min == (image.Point{}) {
		return g
	}
	bounds := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(g, g.Bounds(), img, bounds.Min, draw.Src)
	return g
}
