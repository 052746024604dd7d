package pdf

// Bounds describes the vertical limits used when rows are placed.
type Bounds struct {
	Top       float64 // cursor of a freshly allocated page
	Floor     float64 // a row may not start below this line
	RowHeight float64
}

// Position is a vertical cursor. Page 0 is the page the table starts on.
type Position struct {
	Page int
	Y    float64
}

// TableBounds are the limits of the item table on the form.
var TableBounds = Bounds{Top: PageHeight - 50, Floor: 100, RowHeight: 20}

// PlanRows returns the position of each of count rows starting at cursor and
// the cursor left after the last row. A row whose cursor is already below the
// floor opens a new page.
func PlanRows(count int, cursor float64, b Bounds) ([]Position, Position) {
	pos := Position{Y: cursor}
	rows := make([]Position, 0, count)
	for range count {
		if pos.Y < b.Floor {
			pos.Page++
			pos.Y = b.Top
		}
		rows = append(rows, pos)
		pos.Y -= b.RowHeight
	}
	return rows, pos
}

// Fits reports whether a block of the given height drawn down from cursor
// stays above bottom.
func Fits(cursor, height, bottom float64) bool {
	return cursor-height >= bottom
}
