package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPosition(t *testing.T) {
	board := newTestBoard(t)
	require.True(t, board.Fill(Coord{3, 10}, ShapeSquare))

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"empty interior", 5, 5, true},
		{"top-left corner", 0, 0, true},
		{"bottom-right corner", 15, 19, true},
		{"right edge", 16, 5, false},
		{"past right edge", 20, 5, false},
		{"left of board", -1, 5, false},
		{"bottom edge", 5, 20, false},
		{"above top is allowed", 5, -1, true},
		{"far above top is allowed", 5, -10, true},
		{"settled cell", 3, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, board.IsValidPosition(tc.x, tc.y))
		})
	}
}

func TestFillRejectsOutOfBoundsAndDuplicates(t *testing.T) {
	board := newTestBoard(t)

	assert.True(t, board.Fill(Coord{0, 0}, ShapeBar))
	assert.False(t, board.Fill(Coord{0, 0}, ShapeT))
	assert.False(t, board.Fill(Coord{-1, 0}, ShapeT))
	assert.False(t, board.Fill(Coord{16, 0}, ShapeT))
	assert.False(t, board.Fill(Coord{0, 20}, ShapeT))
	assert.Equal(t, 1, board.Len())

	shape, ok := board.At(Coord{0, 0})
	assert.True(t, ok)
	assert.Equal(t, ShapeBar, shape)
}

func TestRowComplete(t *testing.T) {
	board := newTestBoard(t)
	for x := 0; x < board.Columns()-1; x++ {
		board.Fill(Coord{x, 19}, ShapeSquare)
	}
	assert.False(t, board.RowComplete(19))
	assert.Equal(t, board.Columns()-1, board.RowCount(19))

	board.Fill(Coord{board.Columns() - 1, 19}, ShapeSquare)
	assert.True(t, board.RowComplete(19))
	assert.False(t, board.RowComplete(18))
}

func TestClearRowShiftsRowsAbove(t *testing.T) {
	board := newTestBoard(t)
	log := &EventLog{}
	board.SetObserver(log)

	for x := 0; x < board.Columns(); x++ {
		board.Fill(Coord{x, 19}, ShapeSquare)
	}
	board.Fill(Coord{2, 18}, ShapeT)
	board.Fill(Coord{2, 5}, ShapeL)
	board.Fill(Coord{9, 0}, ShapeJ)

	var rows []int
	n := board.ClearCompletedRows(func(y int) { rows = append(rows, y) })

	assert.Equal(t, 1, n)
	assert.Equal(t, []int{19}, rows)
	assert.Equal(t, 3, board.Len())

	for _, want := range []Cell{
		{Coord{2, 19}, ShapeT},
		{Coord{2, 6}, ShapeL},
		{Coord{9, 1}, ShapeJ},
	} {
		got, ok := board.At(want.Coord)
		assert.True(t, ok, "missing %v", want.Coord)
		assert.Equal(t, want.Shape, got)
	}
	_, ok := board.At(Coord{9, 0})
	assert.False(t, ok)

	// 16 removals for the row, then a remove+add pair per shifted cell.
	assert.Equal(t, 16+3, log.Count(EventSquareRemoved))
	assert.Equal(t, 3, log.Count(EventSquareAdded))
	assert.Equal(t, 1, board.RowCount(19))
	assert.Equal(t, 0, board.RowCount(18))
}

func TestClearCompletedRowsTopToBottom(t *testing.T) {
	board := newTestBoard(t)
	for _, y := range []int{12, 17, 18} {
		for x := 0; x < board.Columns(); x++ {
			board.Fill(Coord{x, y}, ShapeSquare)
		}
	}
	board.Fill(Coord{4, 16}, ShapeZ)

	var rows []int
	n := board.ClearCompletedRows(func(y int) { rows = append(rows, y) })

	assert.Equal(t, 3, n)
	assert.Equal(t, []int{12, 17, 18}, rows)
	assert.Equal(t, 1, board.Len())
	// Row 17 and 18 clears each pull it down; row 12 is above it and does not.
	_, ok := board.At(Coord{4, 18})
	assert.True(t, ok)
}

func TestSettleTransfersAllCells(t *testing.T) {
	board := newTestBoard(t)
	p := NewPiece(ShapeL, board.Columns())
	for p.MoveDown(board) {
	}

	board.Settle(p)
	assert.Equal(t, 4, board.Len())
	for _, c := range p.Cells() {
		assert.False(t, board.IsValidPosition(c.X, c.Y))
		shape, ok := board.At(c)
		assert.True(t, ok)
		assert.Equal(t, ShapeL, shape)
	}
}

func TestBoardReset(t *testing.T) {
	board := newTestBoard(t)
	board.Fill(Coord{1, 1}, ShapeSquare)
	board.Reset()

	assert.Equal(t, 0, board.Len())
	assert.Equal(t, 0, board.RowCount(1))
	assert.True(t, board.IsValidPosition(1, 1))
}

func TestBoardRender(t *testing.T) {
	dims := Dimensions{Width: 4, Height: 4, CellSize: 1}
	board := NewBoard(dims)
	board.Fill(Coord{0, 3}, ShapeSquare)
	board.Fill(Coord{1, 3}, ShapeSquare)

	p := NewPiece(ShapeSquare, dims.Columns())
	out := board.Render(p)

	expected := strings.Join([]string{
		".@@.",
		".@@.",
		"....",
		"##..",
	}, "\n")
	assert.Equal(t, expected, out)
	assert.Equal(t, strings.ReplaceAll(expected, "@", "."), board.String())
}

func TestBoardCellsOrdered(t *testing.T) {
	board := newTestBoard(t)
	board.Fill(Coord{5, 10}, ShapeS)
	board.Fill(Coord{1, 10}, ShapeT)
	board.Fill(Coord{9, 2}, ShapeJ)

	cells := board.Cells()
	require.Len(t, cells, 3)
	assert.Equal(t, Coord{9, 2}, cells[0].Coord)
	assert.Equal(t, Coord{1, 10}, cells[1].Coord)
	assert.Equal(t, Coord{5, 10}, cells[2].Coord)
}

func TestDimensions(t *testing.T) {
	d := DefaultDimensions()
	assert.Equal(t, 16, d.Columns())
	assert.Equal(t, 20, d.Rows())

	x, y := d.Pixel(Coord{3, 4})
	assert.Equal(t, 60, x)
	assert.Equal(t, 80, y)

	tests := []struct {
		name string
		dims Dimensions
		ok   bool
	}{
		{"default", d, true},
		{"zero cell", Dimensions{320, 400, 0}, false},
		{"negative width", Dimensions{-20, 400, 20}, false},
		{"not a multiple", Dimensions{330, 400, 20}, false},
		{"too narrow", Dimensions{60, 400, 20}, false},
		{"too short", Dimensions{320, 60, 20}, false},
		{"smallest", Dimensions{4, 4, 1}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.dims.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
