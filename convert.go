package asciiprint

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Open decodes the image at path with any registered decoder.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	return img, nil
}

// Render converts the image at path to printable text.
func Render(path string, cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ramp, err := cfg.SelectRamp()
	if err != nil {
		return nil, err
	}
	img, err := Open(path)
	if err != nil {
		return nil, err
	}
	return RenderImage(img, ramp, cfg)
}

// RenderImage converts an already decoded image to printable text.
func RenderImage(img image.Image, ramp Ramp, cfg Config) ([]byte, error) {
	gray, err := Transform(img, cfg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := NewEncoder(&buf, ramp, cfg.encoderOpts()...).Encode(gray); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Convert renders the image at path and writes the text to w. Nothing is
// written unless the whole conversion succeeds.
func Convert(w io.Writer, path string, cfg Config) error {
	text, err := Render(path, cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
