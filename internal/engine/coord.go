// Package engine implements the falling-block simulation: piece geometry,
// collision checks, per-shape rotation tables, the settled ground, row
// clearing and the game session state machine.
//
// The engine performs no I/O and keeps no clock. A presentation layer calls
// into a Session on timer ticks and input events and learns about changes
// through a Listener.
package engine

import "fmt"

// Coord addresses a grid cell by column (X) and row (Y).
// Row 0 is the top of the board; Y grows downward.
type Coord struct {
	X, Y int
}

// Add returns the coordinate shifted by the given offset.
func (c Coord) Add(off Offset) Coord {
	return Coord{X: c.X + off.DX, Y: c.Y + off.DY}
}

// String returns "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Offset is a displacement in cell units.
type Offset struct {
	DX, DY int
}

// IsZero reports whether the offset leaves a cell in place.
func (off Offset) IsZero() bool {
	return off.DX == 0 && off.DY == 0
}

// Neg returns the opposite displacement.
func (off Offset) Neg() Offset {
	return Offset{DX: -off.DX, DY: -off.DY}
}

// Unit moves.
var (
	offsetLeft  = Offset{DX: -1}
	offsetRight = Offset{DX: 1}
	offsetDown  = Offset{DY: 1}
)

// Dimensions describes the board in pixel-like units, the way the playfield
// is laid out for drawing. All logic works on cells of CellSize.
type Dimensions struct {
	Width    int
	Height   int
	CellSize int
}

// DefaultDimensions returns the classic 320x400 board with 20-unit cells,
// i.e. 16 columns by 20 rows.
func DefaultDimensions() Dimensions {
	return Dimensions{
		Width:    320,
		Height:   400,
		CellSize: 20,
	}
}

// Columns returns the number of cell columns.
func (d Dimensions) Columns() int {
	return d.Width / d.CellSize
}

// Rows returns the number of cell rows.
func (d Dimensions) Rows() int {
	return d.Height / d.CellSize
}

// Pixel converts a cell coordinate to the unit position of its top-left corner.
func (d Dimensions) Pixel(c Coord) (x, y int) {
	return c.X * d.CellSize, c.Y * d.CellSize
}

// Validate checks that the board can hold every spawn layout.
func (d Dimensions) Validate() error {
	if d.CellSize <= 0 {
		return fmt.Errorf("engine: cell size must be positive, got %d", d.CellSize)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("engine: board size must be positive, got %dx%d", d.Width, d.Height)
	}
	if d.Width%d.CellSize != 0 || d.Height%d.CellSize != 0 {
		return fmt.Errorf("engine: board %dx%d is not a multiple of cell size %d", d.Width, d.Height, d.CellSize)
	}
	// The widest spawn layouts reach two columns left of center and the bar
	// is four rows tall.
	if d.Columns() < 4 || d.Rows() < 4 {
		return fmt.Errorf("engine: board needs at least 4x4 cells, got %dx%d", d.Columns(), d.Rows())
	}
	return nil
}
