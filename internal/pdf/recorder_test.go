package pdf

// textOp is a text run captured by recordingCanvas.
type textOp struct {
	Page int
	X, Y float64
	Text string
	Font Font
	Size float64
}

type rectOp struct {
	Page int
	Rect Rect
}

type imageOp struct {
	Page       int
	X, Y, W, H float64
}

// recordingCanvas keeps every primitive it receives so tests can inspect
// the layout without parsing PDF output.
type recordingCanvas struct {
	page   int
	pages  int
	texts  []textOp
	rects  []rectOp
	lines  int
	images []imageOp
	imgErr error
}

func (c *recordingCanvas) AddPage() int {
	c.pages++
	c.page = c.pages
	return c.page
}

func (c *recordingCanvas) SetPage(n int) { c.page = n }
func (c *recordingCanvas) Page() int     { return c.page }
func (c *recordingCanvas) PageCount() int {
	return c.pages
}

func (c *recordingCanvas) Text(x, y float64, text string, font Font, size float64, _ Color) {
	c.texts = append(c.texts, textOp{Page: c.page, X: x, Y: y, Text: text, Font: font, Size: size})
}

func (c *recordingCanvas) Rect(r Rect) {
	c.rects = append(c.rects, rectOp{Page: c.page, Rect: r})
}

func (c *recordingCanvas) Line(_, _, _, _, _ float64, _ Color) { c.lines++ }

func (c *recordingCanvas) DrawImage(_ *Image, x, y, w, h float64) error {
	if c.imgErr != nil {
		return c.imgErr
	}
	c.images = append(c.images, imageOp{Page: c.page, X: x, Y: y, W: w, H: h})
	return nil
}

// column returns the texts drawn at x, in drawing order.
func (c *recordingCanvas) column(x float64) []textOp {
	var out []textOp
	for _, t := range c.texts {
		if t.X == x {
			out = append(out, t)
		}
	}
	return out
}

func (c *recordingCanvas) find(text string) (textOp, bool) {
	for _, t := range c.texts {
		if t.Text == text {
			return t, true
		}
	}
	return textOp{}, false
}

// fixedMetrics gives every character the same advance so widths are easy to
// predict.
type fixedMetrics struct{ advance float64 }

func (m fixedMetrics) Width(text string, _ Font, size float64) float64 {
	return float64(len([]rune(text))) * m.advance * size
}
