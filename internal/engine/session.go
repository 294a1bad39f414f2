package engine

import (
	"math/rand"
	"time"
)

// State is the controller state of a session.
type State int

const (
	// StateOver means there is no piece in play: before the first game,
	// after game over, or after End.
	StateOver State = iota
	StateActive
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	default:
		return "over"
	}
}

// ShapeSource picks the variant of each new piece.
type ShapeSource interface {
	Next() Shape
}

// randomSource draws uniformly among the seven variants.
type randomSource struct {
	rng *rand.Rand
}

func (r randomSource) Next() Shape {
	return Shapes[r.rng.Intn(len(Shapes))]
}

// SequenceSource replays a fixed list of shapes, cycling when exhausted.
// It is meant for tests and demos.
type SequenceSource struct {
	shapes []Shape
	next   int
}

// NewSequenceSource returns a source yielding the given shapes in order.
func NewSequenceSource(shapes ...Shape) *SequenceSource {
	if len(shapes) == 0 {
		shapes = []Shape{ShapeSquare}
	}
	return &SequenceSource{shapes: shapes}
}

func (s *SequenceSource) Next() Shape {
	shape := s.shapes[s.next%len(s.shapes)]
	s.next++
	return shape
}

// Option configures a Session.
type Option func(*Session)

// WithListener routes engine signals to l.
func WithListener(l Listener) Option {
	return func(s *Session) {
		if l != nil {
			s.listener = l
		}
	}
}

// WithSeed makes the random piece sequence reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.source = randomSource{rng: rand.New(rand.NewSource(seed))}
	}
}

// WithShapeSource replaces the random piece picker.
func WithShapeSource(src ShapeSource) Option {
	return func(s *Session) {
		if src != nil {
			s.source = src
		}
	}
}

// Session owns one game: the current piece, the board, the pause flag and
// the cleared-line counter. All methods run to completion before returning;
// a Session is not safe for concurrent use.
type Session struct {
	dims     Dimensions
	board    *Board
	current  *Piece
	paused   bool
	lines    int
	source   ShapeSource
	listener Listener
}

// NewSession creates an idle session. Call NewGame to start playing.
func NewSession(dims Dimensions, opts ...Option) (*Session, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		dims:     dims,
		board:    NewBoard(dims),
		listener: NopListener{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = randomSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	}
	s.board.SetObserver(s.listener)
	return s, nil
}

// NewGame clears the board and the line counter, unpauses and spawns the
// first piece.
func (s *Session) NewGame() {
	s.board.Reset()
	s.current = nil
	s.paused = false
	s.lines = 0
	s.spawn()
}

// End discards the current piece. The board stays as it is.
func (s *Session) End() {
	s.current = nil
	s.paused = false
}

// SetPaused suspends or resumes movement. It has no effect on a finished
// game.
func (s *Session) SetPaused(paused bool) {
	if s.current == nil {
		return
	}
	s.paused = paused
}

// State returns Active, Paused or Over.
func (s *Session) State() State {
	switch {
	case s.current == nil:
		return StateOver
	case s.paused:
		return StatePaused
	default:
		return StateActive
	}
}

// Paused reports whether the game is paused.
func (s *Session) Paused() bool {
	return s.State() == StatePaused
}

// Lines returns the number of rows cleared in this game.
func (s *Session) Lines() int {
	return s.lines
}

// Current returns a copy of the active piece, or nil when the game is over.
func (s *Session) Current() *Piece {
	if s.current == nil {
		return nil
	}
	return s.current.Clone()
}

// Board returns the settled ground.
func (s *Session) Board() *Board {
	return s.board
}

// Dimensions returns the board size.
func (s *Session) Dimensions() Dimensions {
	return s.dims
}

// MoveLeft shifts the piece one column left. Returns false if the move was
// rejected or the session is paused or over.
func (s *Session) MoveLeft() bool {
	if s.State() != StateActive {
		return false
	}
	return s.track(func() bool { return s.current.MoveLeft(s.board) })
}

// MoveRight shifts the piece one column right.
func (s *Session) MoveRight() bool {
	if s.State() != StateActive {
		return false
	}
	return s.track(func() bool { return s.current.MoveRight(s.board) })
}

// Rotate turns the piece to its next rotation state.
func (s *Session) Rotate() bool {
	if s.State() != StateActive {
		return false
	}
	return s.track(func() bool { return s.current.Rotate(s.board) })
}

// MoveDown drops the piece one row. When it cannot descend, the piece lands:
// its cells join the board, complete rows are cleared, the next piece
// spawns and game over is checked, all before returning false.
func (s *Session) MoveDown() bool {
	if s.State() != StateActive {
		return false
	}
	if s.track(func() bool { return s.current.MoveDown(s.board) }) {
		return true
	}
	s.land()
	return false
}

// track runs a piece mutation and reports redraws for the cells it moved.
func (s *Session) track(move func() bool) bool {
	before := s.current.Cells()
	if !move() {
		return false
	}
	for _, c := range before {
		s.listener.SquareRemoved(c)
	}
	for _, c := range s.current.Cells() {
		s.listener.SquareAdded(c, s.current.shape)
	}
	return true
}

func (s *Session) land() {
	s.board.Settle(s.current)
	s.current = nil
	s.board.ClearCompletedRows(func(int) {
		s.lines++
		s.listener.LineCleared(s.lines)
	})
	s.spawn()
}

// spawn places a new piece and ends the game if it does not fit.
func (s *Session) spawn() {
	p := NewPiece(s.source.Next(), s.dims.Columns())
	s.current = p
	for _, c := range p.cells {
		s.listener.SquareAdded(c, p.shape)
	}
	for _, c := range p.cells {
		if !s.board.IsValidPosition(c.X, c.Y) {
			s.current = nil
			s.paused = false
			s.listener.GameOver()
			return
		}
	}
}
