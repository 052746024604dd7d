package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
)

// ErrCodec is returned when image bytes cannot be decoded in the sniffed format.
var ErrCodec = errors.New("unsupported image data")

// ImageKind is one of the two raster formats the form can embed.
type ImageKind int

const (
	ImageJPEG ImageKind = iota
	ImagePNG
)

var pngSignature = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

// SniffImage classifies data as PNG when it starts with the PNG signature and
// as JPEG otherwise. No other format is recognised.
func SniffImage(data []byte) ImageKind {
	if len(data) >= len(pngSignature) && bytes.Equal(data[:len(pngSignature)], pngSignature) {
		return ImagePNG
	}
	return ImageJPEG
}

// String returns the image type name understood by fpdf.
func (k ImageKind) String() string {
	if k == ImagePNG {
		return "PNG"
	}
	return "JPG"
}

// MimeType returns the content type used when the image is stored.
func (k ImageKind) MimeType() string {
	if k == ImagePNG {
		return "image/png"
	}
	return "image/jpeg"
}

// Image is a raster image ready to be placed on a page.
type Image struct {
	Kind   ImageKind
	Width  int
	Height int
	Data   []byte
}

// DecodeImage sniffs data and reads its header in that format only.
func DecodeImage(data []byte) (*Image, error) {
	kind := SniffImage(data)

	var (
		cfg image.Config
		err error
	)
	switch kind {
	case ImagePNG:
		cfg, err = png.DecodeConfig(bytes.NewReader(data))
	default:
		cfg, err = jpeg.DecodeConfig(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCodec, kind, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %s has no pixels", ErrCodec, kind)
	}

	return &Image{Kind: kind, Width: cfg.Width, Height: cfg.Height, Data: data}, nil
}

// FitBox returns the size of an image scaled to fit inside maxW x maxH with
// its aspect ratio preserved.
func FitBox(width, height int, maxW, maxH float64) (float64, float64) {
	scale := min(maxW/float64(width), maxH/float64(height))
	return float64(width) * scale, float64(height) * scale
}
