package engine

import (
	"sort"
	"strings"

	"github.com/kamstrup/intmap"
)

// Cell is a settled square on the board.
type Cell struct {
	Coord Coord
	Shape Shape
}

// Board holds the settled ground: at most one cell per coordinate.
type Board struct {
	dims    Dimensions
	columns int
	rows    int
	cells   map[Coord]Shape
	// rowFill counts settled cells per row; a row is complete when its
	// count reaches the column count.
	rowFill  *intmap.Map[int, int]
	observer SquareObserver
}

// NewBoard creates an empty board.
func NewBoard(dims Dimensions) *Board {
	return &Board{
		dims:     dims,
		columns:  dims.Columns(),
		rows:     dims.Rows(),
		cells:    make(map[Coord]Shape),
		rowFill:  intmap.New[int, int](dims.Rows()),
		observer: NopListener{},
	}
}

// SetObserver installs the receiver of square notifications caused by
// row clears. Nil restores the no-op observer.
func (b *Board) SetObserver(o SquareObserver) {
	if o == nil {
		o = NopListener{}
	}
	b.observer = o
}

// Dimensions returns the board size.
func (b *Board) Dimensions() Dimensions {
	return b.dims
}

// Columns returns the board width in cells.
func (b *Board) Columns() int {
	return b.columns
}

// Rows returns the board height in cells.
func (b *Board) Rows() int {
	return b.rows
}

// IsValidPosition reports whether a moving cell may occupy (x, y).
// Columns outside [0, Columns) and rows at or below the bottom edge are
// invalid, as is any settled coordinate. There is no top edge: negative
// rows are valid so pieces can turn above the visible area.
func (b *Board) IsValidPosition(x, y int) bool {
	if x >= b.columns || x < 0 || y >= b.rows {
		return false
	}
	_, taken := b.cells[Coord{X: x, Y: y}]
	return !taken
}

// At returns the settled shape at c, if any.
func (b *Board) At(c Coord) (Shape, bool) {
	s, ok := b.cells[c]
	return s, ok
}

// Len returns the number of settled cells.
func (b *Board) Len() int {
	return len(b.cells)
}

// Cells returns all settled cells ordered top to bottom, left to right.
func (b *Board) Cells() []Cell {
	out := make([]Cell, 0, len(b.cells))
	for c, s := range b.cells {
		out = append(out, Cell{Coord: c, Shape: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Coord.Y != out[j].Coord.Y {
			return out[i].Coord.Y < out[j].Coord.Y
		}
		return out[i].Coord.X < out[j].Coord.X
	})
	return out
}

// RowCount returns how many settled cells sit in row y.
func (b *Board) RowCount(y int) int {
	n, _ := b.rowFill.Get(y)
	return n
}

// Settle transfers the four cells of a landed piece to the board.
// The piece must not be used afterwards.
func (b *Board) Settle(p *Piece) {
	for _, c := range p.cells {
		b.put(c, p.shape)
	}
}

// Fill settles a single cell. It exists for setting up positions and
// returns false if c is outside the board or already taken.
func (b *Board) Fill(c Coord, shape Shape) bool {
	if c.X < 0 || c.X >= b.columns || c.Y < 0 || c.Y >= b.rows {
		return false
	}
	if _, taken := b.cells[c]; taken {
		return false
	}
	b.put(c, shape)
	return true
}

func (b *Board) put(c Coord, shape Shape) {
	b.cells[c] = shape
	n, _ := b.rowFill.Get(c.Y)
	b.rowFill.Put(c.Y, n+1)
}

func (b *Board) remove(c Coord) (Shape, bool) {
	s, ok := b.cells[c]
	if !ok {
		return s, false
	}
	delete(b.cells, c)
	n, _ := b.rowFill.Get(c.Y)
	if n <= 1 {
		b.rowFill.Del(c.Y)
	} else {
		b.rowFill.Put(c.Y, n-1)
	}
	return s, true
}

// RowComplete reports whether every column of row y holds a settled cell.
func (b *Board) RowComplete(y int) bool {
	if b.RowCount(y) < b.columns {
		return false
	}
	for x := 0; x < b.columns; x++ {
		if _, ok := b.cells[Coord{X: x, Y: y}]; !ok {
			return false
		}
	}
	return true
}

// ClearCompletedRows scans rows from top to bottom and clears each complete
// row as it is found, shifting everything above it down one row before the
// scan moves on. onClear runs after each cleared row. Returns the number of
// rows cleared.
func (b *Board) ClearCompletedRows(onClear func(y int)) int {
	cleared := 0
	for y := 0; y < b.rows; y++ {
		if !b.RowComplete(y) {
			continue
		}
		b.clearRow(y)
		cleared++
		if onClear != nil {
			onClear(y)
		}
	}
	return cleared
}

// clearRow deletes row y and drops every row above it by one.
func (b *Board) clearRow(y int) {
	for x := 0; x < b.columns; x++ {
		c := Coord{X: x, Y: y}
		if _, ok := b.remove(c); ok {
			b.observer.SquareRemoved(c)
		}
	}
	for row := y - 1; row >= 0; row-- {
		for x := 0; x < b.columns; x++ {
			from := Coord{X: x, Y: row}
			shape, ok := b.remove(from)
			if !ok {
				continue
			}
			to := from.Add(offsetDown)
			b.put(to, shape)
			b.observer.SquareRemoved(from)
			b.observer.SquareAdded(to, shape)
		}
	}
}

// Reset removes every settled cell.
func (b *Board) Reset() {
	clear(b.cells)
	b.rowFill.Clear()
}

// String renders the board as text: '#' for settled cells, '@' for the
// given piece (may be nil) and '.' for empty cells.
func (b *Board) String() string {
	return b.Render(nil)
}

// Render is String with the active piece overlaid.
func (b *Board) Render(p *Piece) string {
	var sb strings.Builder
	sb.Grow((b.columns + 1) * b.rows)
	for y := 0; y < b.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.columns; x++ {
			c := Coord{X: x, Y: y}
			switch {
			case p != nil && p.Occupies(c):
				sb.WriteByte('@')
			case b.has(c):
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func (b *Board) has(c Coord) bool {
	_, ok := b.cells[c]
	return ok
}
