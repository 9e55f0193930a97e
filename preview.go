package asciiprint

import (
	"bytes"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var (
	paperColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	gapColor   = color.RGBA{0xd8, 0xd8, 0xd8, 0xff}
	edgeColor  = color.RGBA{0xc0, 0x30, 0x30, 0xff}
)

const previewSize = 12 // Points at 72 dpi

// RenderPreview draws encoded text the way it lands on paper: a monospaced
// face on white, with the gaps between pages shaded and page edges marked.
func RenderPreview(text []byte, l Layout) (*image.RGBA, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    previewSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	advance, _ := face.GlyphAdvance('M')
	metrics := face.Metrics()
	cellW, cellH := advance.Ceil(), metrics.Height.Ceil()

	lines := bytes.Split(bytes.TrimSuffix(text, []byte{'\n'}), []byte{'\n'})
	if len(text) == 0 {
		lines = nil
	}
	columns := l.Columns
	for _, line := range lines {
		if len(line) > columns {
			columns = len(line)
		}
	}
	if columns < 1 {
		columns = 1
	}
	rows := len(lines)
	if rows < 1 {
		rows = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, columns*cellW, rows*cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(paperColor), image.Point{}, draw.Src)
	height := float64(img.Bounds().Dy())

	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(gapColor)
	for page := 1; page < l.Pages; page++ {
		_, prevEnd := l.PageRange(page - 1)
		start, _ := l.PageRange(page)
		if start > prevEnd {
			gc.BeginPath()
			draw2dkit.Rectangle(gc, float64(prevEnd*cellW), 0, float64(start*cellW), height)
			gc.Fill()
		}
	}

	// Edges sit on the first and last pixel column of each page.
	gc.SetStrokeColor(edgeColor)
	gc.SetLineWidth(1)
	for page := 0; page < l.Pages; page++ {
		start, end := l.PageRange(page)
		if end <= start {
			continue
		}
		for _, x := range []float64{float64(start*cellW) + 0.5, float64(end*cellW) - 0.5} {
			gc.BeginPath()
			gc.MoveTo(x, 0)
			gc.LineTo(x, height)
			gc.Stroke()
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
	}
	for y, line := range lines {
		for x, c := range line {
			if c == ' ' {
				continue
			}
			d.Dot = fixed.P(x*cellW, y*cellH+metrics.Ascent.Ceil())
			d.DrawString(string(c))
		}
	}
	return img, nil
}

// WritePreview renders text with RenderPreview and encodes it as PNG.
func WritePreview(w io.Writer, text []byte, l Layout) error {
	img, err := RenderPreview(text, l)
	if err != nil {
		return err
	}
	return imaging.Encode(w, img, imaging.PNG)
}
