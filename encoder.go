package asciiprint

import (
	"image"
	"image/color"
	"image/draw"
	"io"
)

// Filter can alter a grayscale grid before it is quantized to a ramp.
type Filter interface {
	Filter(img *image.Gray, ramp Ramp) *image.Gray
}

type plainFilter struct{}

func (plainFilter) Filter(img *image.Gray, _ Ramp) *image.Gray {
	return img
}

// diffuseFilter redraws the grid with Floyd-Steinberg error diffusion onto
// one gray level per ramp character, so in-between tones come out as a mix
// of neighbouring characters.
type diffuseFilter struct{}

func (diffuseFilter) Filter(img *image.Gray, ramp Ramp) *image.Gray {
	palette := rampPalette(ramp)
	paletted := image.NewPaletted(img.Bounds(), palette)
	draw.FloydSteinberg.Draw(paletted, paletted.Bounds(), img, img.Bounds().Min)

	out := image.NewGray(img.Bounds())
	for i, idx := range paletted.Pix {
		out.Pix[i] = palette[idx].(color.Gray).Y
	}
	return out
}

// rampPalette returns one gray per reachable ramp index, each sitting in the
// middle of the luminance band that Ramp.Index maps to it.
func rampPalette(ramp Ramp) color.Palette {
	lo := make(map[int]int)
	hi := make(map[int]int)
	var order []int
	for v := 255; v >= 0; v-- {
		i := ramp.Index(uint8(v))
		if _, ok := hi[i]; !ok {
			hi[i] = v
			order = append(order, i)
		}
		lo[i] = v
	}
	palette := make(color.Palette, 0, len(order))
	for _, i := range order {
		palette = append(palette, color.Gray{Y: uint8((lo[i] + hi[i]) / 2)})
	}
	return palette
}

type EncoderOpt func(enc *Encoder)

// WithFullHeight emits the last row of the grid as well. Without it the
// final row is dropped, which is what existing printer scripts expect.
func WithFullHeight() EncoderOpt {
	return func(enc *Encoder) {
		enc.fullHeight = true
	}
}

// WithDiffusion dithers the grid across the ramp before quantizing.
func WithDiffusion() EncoderOpt {
	return func(enc *Encoder) {
		enc.f = diffuseFilter{}
	}
}

// WithFilter sets a custom Filter.
func WithFilter(f Filter) EncoderOpt {
	return func(enc *Encoder) {
		enc.f = f
	}
}

type Encoder struct {
	w          io.Writer
	ramp       Ramp
	f          Filter
	fullHeight bool
}

func NewEncoder(w io.Writer, ramp Ramp, opts ...EncoderOpt) *Encoder {
	enc := Encoder{
		w:    w,
		ramp: ramp,
		f:    plainFilter{},
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

/*
Encode writes img as rows of ramp characters, one character per pixel and a
line feed after every row. Bright pixels map to the start of the ramp and dark
pixels to the end, so the printed page reads as dark ink on light paper.

With the Bourke ramp " .:-=+*#%@" a white-to-black horizontal gradient 20
pixels wide prints as:
	   ..::--==++**##%%@

The last row of img is skipped unless WithFullHeight is set.
*/
func (enc *Encoder) Encode(img *image.Gray) error {
	if err := enc.ramp.validate(); err != nil {
		return err
	}
	img = enc.f.Filter(img, enc.ramp)
	bounds := img.Bounds()

	last := bounds.Max.Y - 1
	if enc.fullHeight {
		last = bounds.Max.Y
	}

	row := make([]byte, 0, bounds.Dx()+1)
	for py := bounds.Min.Y; py < last; py++ {
		row = row[:0]
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			row = append(row, enc.ramp.Char(img.GrayAt(px, py).Y))
		}
		row = append(row, '\n')
		if _, err := enc.w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
