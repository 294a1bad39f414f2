package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, shapes ...Shape) (*Session, *EventLog) {
	t.Helper()
	log := &EventLog{}
	s, err := NewSession(DefaultDimensions(),
		WithListener(log),
		WithShapeSource(NewSequenceSource(shapes...)),
	)
	require.NoError(t, err)
	return s, log
}

func TestNewSessionRejectsBadDimensions(t *testing.T) {
	_, err := NewSession(Dimensions{Width: 330, Height: 400, CellSize: 20})
	assert.Error(t, err)
}

func TestSessionStartsOver(t *testing.T) {
	s, log := newTestSession(t, ShapeT)

	assert.Equal(t, StateOver, s.State())
	assert.Nil(t, s.Current())
	assert.False(t, s.MoveLeft())
	assert.False(t, s.MoveDown())
	assert.Equal(t, 0, log.Len())
}

func TestNewGameSpawnsPiece(t *testing.T) {
	s, log := newTestSession(t, ShapeT)
	s.NewGame()

	require.NotNil(t, s.Current())
	assert.Equal(t, StateActive, s.State())
	assert.Equal(t, ShapeT, s.Current().Shape())
	assert.Equal(t, 4, log.Count(EventSquareAdded))
	assert.Equal(t, 0, log.Count(EventGameOver))
}

func TestMoveReportsRedraw(t *testing.T) {
	s, log := newTestSession(t, ShapeSquare)
	s.NewGame()
	before := s.Current().Cells()
	log.Drain()

	require.True(t, s.MoveRight())
	events := log.Drain()
	require.Len(t, events, 8)

	after := s.Current().Cells()
	for i := range 4 {
		assert.Equal(t, EventSquareRemoved, events[i].Kind)
		assert.Equal(t, before[i], events[i].Coord)
		assert.Equal(t, EventSquareAdded, events[4+i].Kind)
		assert.Equal(t, after[i], events[4+i].Coord)
		assert.Equal(t, ShapeSquare, events[4+i].Shape)
	}
}

func TestRejectedMoveIsSilent(t *testing.T) {
	s, log := newTestSession(t, ShapeSquare)
	s.NewGame()
	for s.MoveLeft() {
	}
	log.Drain()

	assert.False(t, s.MoveLeft())
	assert.False(t, s.Rotate())
	assert.Equal(t, 0, log.Len())
}

func TestPauseBlocksMovement(t *testing.T) {
	s, log := newTestSession(t, ShapeL)
	s.NewGame()
	before := s.Current().Cells()
	log.Drain()

	s.SetPaused(true)
	assert.Equal(t, StatePaused, s.State())
	assert.True(t, s.Paused())

	assert.False(t, s.MoveLeft())
	assert.False(t, s.MoveRight())
	assert.False(t, s.MoveDown())
	assert.False(t, s.Rotate())
	assert.Equal(t, before, s.Current().Cells())
	assert.Equal(t, 0, log.Len())

	s.SetPaused(false)
	assert.Equal(t, StateActive, s.State())
	assert.True(t, s.MoveDown())
}

func TestLineClearScenario(t *testing.T) {
	s, log := newTestSession(t, ShapeBar)
	s.NewGame()

	board := s.Board()
	for x := 0; x < board.Columns(); x++ {
		if x != 7 {
			require.True(t, board.Fill(Coord{x, 19}, ShapeSquare))
		}
	}
	require.True(t, board.Fill(Coord{0, 10}, ShapeJ))

	log.Drain()
	drops := 0
	for s.MoveDown() {
		drops++
		log.Drain()
	}
	assert.Equal(t, 16, drops)
	assert.Equal(t, 1, s.Lines())

	// Row 19 went away and everything above moved down one row.
	for _, c := range []Coord{{7, 17}, {7, 18}, {7, 19}, {0, 11}} {
		_, ok := board.At(c)
		assert.True(t, ok, "expected settled cell at %v", c)
	}
	for _, c := range []Coord{{7, 16}, {0, 10}, {0, 19}} {
		_, ok := board.At(c)
		assert.False(t, ok, "unexpected settled cell at %v", c)
	}
	assert.Equal(t, 4, board.Len())

	events := log.Drain()
	require.GreaterOrEqual(t, len(events), 5)
	tail := events[len(events)-5:]
	assert.Equal(t, Event{Kind: EventLineCleared, Lines: 1}, tail[0])
	for _, e := range tail[1:] {
		assert.Equal(t, EventSquareAdded, e.Kind)
		assert.Equal(t, ShapeBar, e.Shape)
	}

	// The next bar is in play.
	assert.Equal(t, StateActive, s.State())
	assert.Equal(t, [4]Coord{{7, 0}, {7, 1}, {7, 2}, {7, 3}}, s.Current().Cells())
}

func TestMultipleLinesReportRunningTotal(t *testing.T) {
	s, log := newTestSession(t, ShapeBar)
	s.NewGame()

	board := s.Board()
	for _, y := range []int{18, 19} {
		for x := 0; x < board.Columns(); x++ {
			if x != 7 {
				require.True(t, board.Fill(Coord{x, y}, ShapeSquare))
			}
		}
	}

	for s.MoveDown() {
	}
	assert.Equal(t, 2, s.Lines())

	var totals []int
	for _, e := range log.Drain() {
		if e.Kind == EventLineCleared {
			totals = append(totals, e.Lines)
		}
	}
	assert.Equal(t, []int{1, 2}, totals)

	// The bar's two upper cells remain, dropped onto the floor.
	assert.Equal(t, 2, board.Len())
	for _, c := range []Coord{{7, 18}, {7, 19}} {
		_, ok := board.At(c)
		assert.True(t, ok, "expected settled cell at %v", c)
	}
}

func TestLandingWithoutClear(t *testing.T) {
	s, log := newTestSession(t, ShapeSquare, ShapeT)
	s.NewGame()

	for s.MoveDown() {
	}
	assert.Equal(t, 0, s.Lines())
	assert.Equal(t, 4, s.Board().Len())
	assert.Equal(t, 0, log.Count(EventLineCleared))
	assert.Equal(t, ShapeT, s.Current().Shape())
}

func TestGameOverOnBlockedSpawn(t *testing.T) {
	s, log := newTestSession(t, ShapeSquare)
	s.NewGame()
	require.True(t, s.Board().Fill(Coord{7, 2}, ShapeBar))
	log.Drain()

	assert.False(t, s.MoveDown())
	assert.Equal(t, StateOver, s.State())
	assert.Nil(t, s.Current())

	events := log.Drain()
	require.Len(t, events, 5)
	for _, e := range events[:4] {
		assert.Equal(t, EventSquareAdded, e.Kind)
	}
	assert.Equal(t, EventGameOver, events[4].Kind)

	// Everything is a no-op now.
	assert.False(t, s.MoveLeft())
	assert.False(t, s.MoveRight())
	assert.False(t, s.MoveDown())
	assert.False(t, s.Rotate())
	s.SetPaused(true)
	assert.Equal(t, StateOver, s.State())
	assert.Equal(t, 0, log.Len())
}

func TestNewGameAfterGameOver(t *testing.T) {
	s, _ := newTestSession(t, ShapeSquare)
	s.NewGame()
	require.True(t, s.Board().Fill(Coord{7, 2}, ShapeBar))
	s.MoveDown()
	require.Equal(t, StateOver, s.State())

	s.NewGame()
	assert.Equal(t, StateActive, s.State())
	assert.Equal(t, 0, s.Lines())
	assert.Equal(t, 0, s.Board().Len())
}

func TestNewGameClearsPause(t *testing.T) {
	s, _ := newTestSession(t, ShapeZ)
	s.NewGame()
	s.SetPaused(true)

	s.NewGame()
	assert.Equal(t, StateActive, s.State())
}

func TestEnd(t *testing.T) {
	s, _ := newTestSession(t, ShapeS)
	s.NewGame()
	s.End()

	assert.Equal(t, StateOver, s.State())
	assert.False(t, s.MoveDown())
}

func TestCurrentIsACopy(t *testing.T) {
	s, _ := newTestSession(t, ShapeJ)
	s.NewGame()

	p := s.Current()
	require.True(t, p.MoveDown(s.Board()))
	assert.NotEqual(t, p.Cells(), s.Current().Cells())
}

func TestSeededSourceIsReproducible(t *testing.T) {
	a, err := NewSession(DefaultDimensions(), WithSeed(42))
	require.NoError(t, err)
	b, err := NewSession(DefaultDimensions(), WithSeed(42))
	require.NoError(t, err)

	seen := make(map[Shape]bool)
	for range 200 {
		sa, sb := a.source.Next(), b.source.Next()
		require.Equal(t, sa, sb)
		seen[sa] = true
	}
	assert.Len(t, seen, len(Shapes))
}

func TestSequenceSourceCycles(t *testing.T) {
	src := NewSequenceSource(ShapeT, ShapeBar)
	assert.Equal(t, ShapeT, src.Next())
	assert.Equal(t, ShapeBar, src.Next())
	assert.Equal(t, ShapeT, src.Next())

	assert.Equal(t, ShapeSquare, NewSequenceSource().Next())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "active", StateActive.String())
	assert.Equal(t, "paused", StatePaused.String())
	assert.Equal(t, "over", StateOver.String())
}
