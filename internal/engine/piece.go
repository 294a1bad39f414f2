package engine

// Validator decides whether a single cell may be occupied by a moving piece.
// Board implements it.
type Validator interface {
	IsValidPosition(x, y int) bool
}

// Piece is the active falling tetromino: exactly four cells, a variant and
// a rotation state. All moves are all-or-nothing: either every cell lands on
// a valid position, or nothing changes.
type Piece struct {
	shape Shape
	cells [4]Coord
	state int
}

// NewPiece creates a piece of the given shape at its spawn layout.
func NewPiece(shape Shape, columns int) *Piece {
	return &Piece{
		shape: shape,
		cells: shape.SpawnCells(columns),
	}
}

// Shape returns the piece variant.
func (p *Piece) Shape() Shape {
	return p.shape
}

// Cells returns a copy of the four cell coordinates.
func (p *Piece) Cells() [4]Coord {
	return p.cells
}

// State returns the current rotation state index.
func (p *Piece) State() int {
	return p.state
}

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// Occupies reports whether one of the piece cells is at c.
func (p *Piece) Occupies(c Coord) bool {
	for _, cell := range p.cells {
		if cell == c {
			return true
		}
	}
	return false
}

// MoveLeft shifts the piece one column left if every cell can go there.
func (p *Piece) MoveLeft(v Validator) bool {
	return p.shift(v, offsetLeft)
}

// MoveRight shifts the piece one column right if every cell can go there.
func (p *Piece) MoveRight(v Validator) bool {
	return p.shift(v, offsetRight)
}

// MoveDown shifts the piece one row down if every cell can go there.
// A false result means the piece has landed.
func (p *Piece) MoveDown(v Validator) bool {
	return p.shift(v, offsetDown)
}

func (p *Piece) shift(v Validator, off Offset) bool {
	return p.apply(v, turn{off, off, off, off})
}

// Rotate advances the piece to its next rotation state. Square never
// rotates and always reports false.
func (p *Piece) Rotate(v Validator) bool {
	turns := p.shape.def().turns
	if len(turns) == 0 {
		return false
	}
	if !p.apply(v, turns[p.state]) {
		return false
	}
	p.state = (p.state + 1) % len(turns)
	return true
}

// apply checks every displaced cell before moving any of them.
func (p *Piece) apply(v Validator, t turn) bool {
	var next [4]Coord
	for i, cell := range p.cells {
		next[i] = cell.Add(t[i])
		if t[i].IsZero() {
			continue
		}
		if !v.IsValidPosition(next[i].X, next[i].Y) {
			return false
		}
	}
	p.cells = next
	return true
}
