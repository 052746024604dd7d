package pdf

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/go-pdf/fpdf"
)

// Page geometry in points (ISO A4 at 72 dpi).
const (
	PageWidth  = 595.0
	PageHeight = 842.0
)

// Color components range from 0 to 1.
type Color struct {
	R, G, B float64
}

var (
	Black     = Color{0, 0, 0}
	White     = Color{1, 1, 1}
	IDRed     = Color{0.8, 0, 0}
	RuleGray  = Color{0.85, 0.85, 0.85}
	ShadeGray = Color{0.9, 0.9, 0.9}
)

func (c Color) rgb() (int, int, int) {
	return channel(c.R), channel(c.G), channel(c.B)
}

func channel(v float64) int {
	return int(math.Round(v * 255))
}

// Rect is a rectangle with its origin at the bottom-left corner. A nil Fill
// or Border leaves that part undrawn.
type Rect struct {
	X, Y, W, H  float64
	Fill        *Color
	Border      *Color
	BorderWidth float64
}

// Canvas receives the drawing primitives of the layout engine. Coordinates
// have their origin at the bottom-left corner of the page and text is
// positioned by its baseline. Pages are numbered from 1.
type Canvas interface {
	AddPage() int
	SetPage(n int)
	Page() int
	PageCount() int
	Text(x, y float64, text string, font Font, size float64, color Color)
	Rect(r Rect)
	Line(x1, y1, x2, y2, thickness float64, color Color)
	DrawImage(img *Image, x, y, w, h float64) error
}

// fpdfCanvas draws onto an fpdf document, flipping y to fpdf's top-left origin.
type fpdfCanvas struct {
	doc    *fpdf.Fpdf
	images int
}

func newFpdfCanvas(created time.Time) *fpdfCanvas {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: PageWidth, Ht: PageHeight},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreationDate(created)
	doc.SetModificationDate(created)
	doc.SetCatalogSort(true)
	return &fpdfCanvas{doc: doc}
}

func (c *fpdfCanvas) AddPage() int {
	c.doc.AddPage()
	return c.doc.PageNo()
}

func (c *fpdfCanvas) SetPage(n int) {
	c.doc.SetPage(n)
}

func (c *fpdfCanvas) Page() int {
	return c.doc.PageNo()
}

func (c *fpdfCanvas) PageCount() int {
	return c.doc.PageCount()
}

func (c *fpdfCanvas) Text(x, y float64, text string, font Font, size float64, color Color) {
	c.doc.SetFont(fontFamily, font.style(), size)
	c.doc.SetTextColor(color.rgb())
	c.doc.Text(x, PageHeight-y, encodeText(text))
}

func (c *fpdfCanvas) Rect(r Rect) {
	style := ""
	if r.Fill != nil {
		c.doc.SetFillColor(r.Fill.rgb())
		style += "F"
	}
	if r.Border != nil {
		c.doc.SetDrawColor(r.Border.rgb())
		c.doc.SetLineWidth(r.BorderWidth)
		style += "D"
	}
	if style == "" {
		return
	}
	c.doc.Rect(r.X, PageHeight-(r.Y+r.H), r.W, r.H, style)
}

func (c *fpdfCanvas) Line(x1, y1, x2, y2, thickness float64, color Color) {
	c.doc.SetDrawColor(color.rgb())
	c.doc.SetLineWidth(thickness)
	c.doc.Line(x1, PageHeight-y1, x2, PageHeight-y2)
}

// DrawImage registers and places img. A registration failure is cleared from
// the document so the rest of the page can still be produced.
func (c *fpdfCanvas) DrawImage(img *Image, x, y, w, h float64) error {
	c.images++
	name := fmt.Sprintf("image-%d", c.images)
	opts := fpdf.ImageOptions{ImageType: img.Kind.String()}

	c.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	if !c.doc.Ok() {
		err := c.doc.Error()
		c.doc.ClearError()
		return fmt.Errorf("%w: %v", ErrCodec, err)
	}
	c.doc.ImageOptions(name, x, PageHeight-(y+h), w, h, false, opts, 0, "")
	return nil
}

// Bytes serialises every allocated page. fpdf only writes pages up to the
// current one, so the last page is selected first.
func (c *fpdfCanvas) Bytes() ([]byte, error) {
	c.doc.SetPage(c.doc.PageCount())
	var buf bytes.Buffer
	if err := c.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
