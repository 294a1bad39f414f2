package engine

import "github.com/vovakirdan/tui-blocks/internal/core"

// Shape identifies one of the seven piece variants.
type Shape uint8

const (
	ShapeSquare Shape = iota
	ShapeBar
	ShapeT
	ShapeZ
	ShapeS
	ShapeL
	ShapeJ
)

// Shapes lists every variant in spawn-table order.
var Shapes = [...]Shape{ShapeSquare, ShapeBar, ShapeT, ShapeZ, ShapeS, ShapeL, ShapeJ}

// turn holds the per-cell displacement applied by one rotation step.
// A zero entry marks a cell that stays put.
type turn [4]Offset

// shapeDef is the fixed geometry of a variant.
type shapeDef struct {
	name  string
	color core.Color
	// spawn is relative to (center column, row 0).
	spawn [4]Offset
	// turns[i] moves the piece from rotation state i to state i+1 (mod len).
	turns []turn
}

func o(dx, dy int) Offset { return Offset{DX: dx, DY: dy} }

var still = Offset{}

// Each rotation turns the piece a quarter about one or two cells that never
// move. Square has no rotation.
var shapeDefs = [...]shapeDef{
	ShapeSquare: {
		name:  "Square",
		color: core.ColorBlue,
		spawn: [4]Offset{o(-1, 0), o(0, 0), o(-1, 1), o(0, 1)},
	},
	ShapeBar: {
		name:  "Bar",
		color: core.ColorYellow,
		spawn: [4]Offset{o(-1, 0), o(-1, 1), o(-1, 2), o(-1, 3)},
		turns: []turn{
			{o(-1, 1), still, o(1, -1), o(2, -2)},
			{o(1, -1), still, o(-1, 1), o(-2, 2)},
		},
	},
	ShapeT: {
		name:  "T",
		color: core.ColorCyan,
		spawn: [4]Offset{o(-2, 0), o(-1, 0), o(0, 0), o(-1, 1)},
		turns: []turn{
			{o(1, -1), still, o(-1, 1), o(-1, -1)},
			{o(1, 1), still, o(-1, -1), o(1, -1)},
			{o(-1, 1), still, o(1, -1), o(1, 1)},
			{o(-1, -1), still, o(1, 1), o(-1, 1)},
		},
	},
	ShapeZ: {
		name:  "Z",
		color: core.ColorMagenta,
		spawn: [4]Offset{o(-2, 0), o(-1, 0), o(-1, 1), o(0, 1)},
		turns: []turn{
			{o(2, 0), o(1, 1), still, o(-1, 1)},
			{o(0, 2), o(-1, 1), still, o(-1, -1)},
			{o(-2, 0), o(-1, -1), still, o(1, -1)},
			{o(0, -2), o(1, -1), still, o(1, 1)},
		},
	},
	ShapeS: {
		name:  "S",
		color: core.ColorGreen,
		spawn: [4]Offset{o(0, 0), o(-1, 0), o(-1, 1), o(-2, 1)},
		turns: []turn{
			{o(0, 2), o(1, 1), still, o(1, -1)},
			{o(-2, 0), o(-1, 1), still, o(1, 1)},
			{o(0, -2), o(-1, -1), still, o(-1, 1)},
			{o(2, 0), o(1, -1), still, o(-1, -1)},
		},
	},
	ShapeL: {
		name:  "L",
		color: core.ColorOrange,
		spawn: [4]Offset{o(-1, 0), o(-1, 1), o(-1, 2), o(0, 2)},
		turns: []turn{
			{o(1, 1), still, o(-1, -1), o(-2, 0)},
			{o(-1, 1), still, o(1, -1), o(0, -2)},
			{o(-1, -1), still, o(1, 1), o(2, 0)},
			{o(1, -1), still, o(-1, 1), o(0, 2)},
		},
	},
	ShapeJ: {
		name:  "J",
		color: core.ColorRed,
		spawn: [4]Offset{o(0, 0), o(0, 1), o(0, 2), o(-1, 2)},
		turns: []turn{
			{o(1, 1), still, o(-1, -1), o(0, -2)},
			{o(-1, 1), still, o(1, -1), o(2, 0)},
			{o(-1, -1), still, o(1, 1), o(0, 2)},
			{o(1, -1), still, o(-1, 1), o(-2, 0)},
		},
	},
}

func (s Shape) def() *shapeDef {
	if int(s) >= len(shapeDefs) {
		return &shapeDefs[ShapeSquare]
	}
	return &shapeDefs[s]
}

// String returns the variant name.
func (s Shape) String() string {
	if int(s) >= len(shapeDefs) {
		return "Unknown"
	}
	return shapeDefs[s].name
}

// Color returns the cosmetic color tag of the variant.
func (s Shape) Color() core.Color {
	return s.def().color
}

// States returns how many rotation states the variant cycles through:
// 1 for Square, 2 for Bar, 4 for the rest.
func (s Shape) States() int {
	return max(1, len(s.def().turns))
}

// SpawnCells returns the initial cells of the variant on a board with the
// given number of columns.
func (s Shape) SpawnCells(columns int) [4]Coord {
	center := Coord{X: columns / 2}
	var cells [4]Coord
	for i, off := range s.def().spawn {
		cells[i] = center.Add(off)
	}
	return cells
}
