package pdf

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// Font selects one of the two faces used on the form.
type Font int

const (
	Regular Font = iota
	Bold
)

func (f Font) style() string {
	if f == Bold {
		return "B"
	}
	return ""
}

const fontFamily = "Helvetica"

// Metrics measures rendered text width in page units.
type Metrics interface {
	Width(text string, font Font, size float64) float64
}

// CoreMetrics measures text with the Helvetica core font metrics.
type CoreMetrics struct {
	doc *fpdf.Fpdf
}

// NewCoreMetrics returns metrics backed by the fpdf core font tables.
func NewCoreMetrics() *CoreMetrics {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: PageWidth, Ht: PageHeight},
	})
	return &CoreMetrics{doc: doc}
}

func (m *CoreMetrics) Width(text string, font Font, size float64) float64 {
	m.doc.SetFont(fontFamily, font.style(), size)
	return m.doc.GetStringWidth(encodeText(text))
}

// encodeText converts text to the cp1252 bytes expected by core fonts.
// Runes outside cp1252 become '?'.
func encodeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// IDLabel is the identifier text printed in the header box.
func IDLabel(id int64) string {
	return fmt.Sprintf("<<%d>>", id)
}

// Box is a bordered area sized around a piece of text.
type Box struct {
	Text   string
	Width  float64
	Height float64
}

// IDBox sizes the identifier box so its border hugs the text with the given
// horizontal and vertical padding.
func IDBox(m Metrics, id int64, size, padX, padY float64) Box {
	text := IDLabel(id)
	return Box{
		Text:   text,
		Width:  m.Width(text, Regular, size) + padX*2,
		Height: size + padY*2,
	}
}
