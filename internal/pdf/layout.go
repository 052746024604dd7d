package pdf

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	marginLeft  = 50.0
	marginRight = 60.0

	logoTop       = 40.0
	logoMaxWidth  = 260.0
	logoMaxHeight = 80.0

	titleSize = 14.0
	idSize    = 12.0
	idPadX    = 8.0
	idPadY    = 6.0

	tableWidth = 495.0
	colIndex   = 60.0
	colProduct = 120.0
	colUnit    = 400.0
	colQty     = 480.0

	maxProductRunes = 50
	productKeep     = 47
	ellipsis        = "..."

	// closingHeight is the drop from the last row cursor to the form number line.
	closingHeight = 210.0
	bottomMargin  = 20.0
)

// Requisition is the part of a requisition printed on the form.
type Requisition struct {
	ID          int64
	Origin      string
	Destination string
}

// Item is one table row.
type Item struct {
	Product  string
	Unit     string
	Quantity decimal.Decimal
}

// Document is everything the layout needs to produce one form.
type Document struct {
	Requisition Requisition
	Items       []Item
	Logo        []byte // optional, PNG or JPEG
	Date        time.Time
}

// Layout places the delivery form on a Canvas.
type Layout struct {
	Metrics Metrics
	Profile FormProfile
	// LegacyOverflow keeps drawing rows on the first page after a page break,
	// as forms generated before the fix did.
	LegacyOverflow bool
	Logger         *slog.Logger
}

// NewLayout returns a layout using the core font metrics.
func NewLayout(profile FormProfile, legacyOverflow bool) *Layout {
	return &Layout{
		Metrics:        NewCoreMetrics(),
		Profile:        profile,
		LegacyOverflow: legacyOverflow,
		Logger:         slog.Default(),
	}
}

// Render lays doc out on A4 pages and serialises the result.
func (l *Layout) Render(doc Document) ([]byte, error) {
	c := newFpdfCanvas(doc.Date)
	c.AddPage()
	l.Draw(c, doc)
	return c.Bytes()
}

// Draw lays doc out on c, whose current page must be blank.
func (l *Layout) Draw(c Canvas, doc Document) {
	first := c.Page()
	cur := &Position{Page: 0, Y: PageHeight - 50}

	headerBottom := l.drawLogo(c, doc.Logo)
	l.drawTitle(c, doc.Requisition.ID)
	l.drawIssuer(c, cur, headerBottom, doc.Requisition)
	l.drawTable(c, cur, first, doc.Items)
	if !l.LegacyOverflow && !Fits(cur.Y, closingHeight, bottomMargin) {
		c.AddPage()
		cur.Page++
		cur.Y = TableBounds.Top
	}
	l.drawClosing(c, cur, doc.Date)
}

// drawLogo places the logo and returns the y of the header's bottom edge.
func (l *Layout) drawLogo(c Canvas, logo []byte) float64 {
	bottom := PageHeight - 140
	if len(logo) == 0 {
		return bottom
	}

	img, err := DecodeImage(logo)
	if err != nil {
		l.logger().Warn("Logo could not be decoded, continuing without it.", "error", err)
		return bottom
	}
	w, h := FitBox(img.Width, img.Height, logoMaxWidth, logoMaxHeight)
	y := PageHeight - logoTop - h
	if err := c.DrawImage(img, marginLeft, y, w, h); err != nil {
		l.logger().Warn("Logo could not be embedded, continuing without it.", "error", err)
		return bottom
	}
	return y
}

func (l *Layout) drawTitle(c Canvas, id int64) {
	titleY := PageHeight - 70
	title := l.Profile.Title
	titleX := PageWidth - marginRight - l.Metrics.Width(title, Bold, titleSize)
	c.Text(titleX, titleY, title, Bold, titleSize, Black)

	box := IDBox(l.Metrics, id, idSize, idPadX, idPadY)
	boxX := PageWidth - marginRight - box.Width
	boxY := titleY - 28
	white, black := White, Black
	c.Rect(Rect{X: boxX, Y: boxY, W: box.Width, H: box.Height, Fill: &white, Border: &black, BorderWidth: 1})
	c.Text(boxX+idPadX, boxY+idPadY-1, box.Text, Regular, idSize, IDRed)
}

func (l *Layout) drawIssuer(c Canvas, cur *Position, headerBottom float64, req Requisition) {
	p := l.Profile
	y := headerBottom - 10
	c.Text(marginLeft, y, p.Organization, Bold, 10, Black)
	y -= 14
	c.Text(marginLeft, y, p.Address, Regular, 9, Black)
	y -= 14
	c.Text(marginLeft, y, p.Phone, Regular, 9, Black)

	y -= 20
	origin := req.Origin
	if origin == "" {
		origin = p.DefaultOrigin
	}
	c.Text(marginLeft, y, "De:", Bold, 11, Black)
	c.Text(85, y, origin, Regular, 11, Black)
	c.Text(PageWidth/2+60, y, "Para:", Bold, 11, Black)
	c.Text(PageWidth/2+105, y, req.Destination, Regular, 11, Black)

	y -= 18
	c.Line(marginLeft, y, PageWidth-marginLeft, y, 1, RuleGray)

	y -= 20
	c.Text(marginLeft, y, p.Instruction, Regular, 10, Black)
	cur.Y = y
}

func (l *Layout) drawTable(c Canvas, cur *Position, first int, items []Item) {
	cur.Y -= 25
	shade := ShadeGray
	c.Rect(Rect{X: marginLeft, Y: cur.Y - 5, W: tableWidth, H: 20, Fill: &shade})
	c.Text(colIndex, cur.Y, "Item", Bold, 10, Black)
	c.Text(colProduct, cur.Y, "Produto", Bold, 10, Black)
	c.Text(colUnit, cur.Y, "Unid.", Bold, 10, Black)
	c.Text(colQty, cur.Y, "Quant.", Bold, 10, Black)

	cur.Y -= 25
	rows, end := PlanRows(len(items), cur.Y, TableBounds)
	allocated := 0
	for i, row := range rows {
		for allocated < row.Page {
			c.AddPage()
			allocated++
			if l.LegacyOverflow {
				c.SetPage(first)
			}
		}

		item := items[i]
		c.Text(colIndex, row.Y, strconv.Itoa(i+1), Regular, 10, Black)
		c.Text(colProduct, row.Y, TruncateProduct(item.Product), Regular, 9, Black)
		c.Text(colUnit, row.Y, item.Unit, Regular, 10, Black)
		c.Text(colQty, row.Y, FormatQuantity(item.Quantity), Regular, 10, Black)
	}

	cur.Y = end.Y
	if !l.LegacyOverflow {
		cur.Page = end.Page
	}
}

func (l *Layout) drawClosing(c Canvas, cur *Position, date time.Time) {
	p := l.Profile

	cur.Y -= 20
	c.Text(marginLeft, cur.Y, fmt.Sprintf("%s, %s", p.City, FormatDate(date)), Regular, 10, Black)

	cur.Y -= 40
	c.Line(marginLeft, cur.Y, 200, cur.Y, 1, Black)
	c.Text(90, cur.Y-15, p.AuthorizationCaption, Regular, 9, Black)

	cur.Y -= 40
	c.Line(marginLeft, cur.Y, 200, cur.Y, 1, Black)
	c.Text(75, cur.Y-15, p.ReceiverCaption, Regular, 9, Black)
	c.Line(345, cur.Y, 495, cur.Y, 1, Black)
	c.Text(365, cur.Y-15, p.DelivererCaption, Regular, 9, Black)

	cur.Y -= 50
	c.Text(marginLeft, cur.Y, p.RecordControlTitle, Bold, 8, Black)

	cur.Y -= 15
	shade := ShadeGray
	c.Rect(Rect{X: marginLeft, Y: cur.Y - 5, W: tableWidth, H: 15, Fill: &shade})
	for _, cell := range p.RetentionHeader {
		c.Text(cell.X, cur.Y, cell.Text, Bold, 7, Black)
	}

	cur.Y -= 15
	for _, cell := range p.RetentionRow {
		c.Text(cell.X, cur.Y, cell.Text, Regular, 7, Black)
	}

	cur.Y -= 20
	c.Text(PageWidth/2-65, cur.Y, p.CopiesNote, Regular, 7, Black)
	c.Text(PageWidth/2-30, cur.Y-10, p.FormNumber, Regular, 7, Black)
}

func (l *Layout) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}

// TruncateProduct shortens names longer than 50 characters to 47 characters
// followed by "...".
func TruncateProduct(name string) string {
	runes := []rune(name)
	if len(runes) <= maxProductRunes {
		return name
	}
	return string(runes[:productKeep]) + ellipsis
}

// FormatQuantity prints a quantity without a fixed number of decimals.
func FormatQuantity(q decimal.Decimal) string {
	return q.String()
}

// FormatDate prints t as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
