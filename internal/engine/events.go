package engine

// SquareObserver receives per-cell draw and undraw notifications.
type SquareObserver interface {
	SquareAdded(c Coord, shape Shape)
	SquareRemoved(c Coord)
}

// Listener receives every signal the engine emits toward the presentation
// layer. Calls happen synchronously inside the Session method that caused
// them.
type Listener interface {
	SquareObserver
	// LineCleared fires once per removed row with the cumulative count.
	LineCleared(total int)
	// GameOver fires once when a freshly spawned piece does not fit.
	GameOver()
}

// NopListener ignores every signal. Embed it to implement only the
// callbacks you need.
type NopListener struct{}

func (NopListener) SquareAdded(Coord, Shape) {}
func (NopListener) SquareRemoved(Coord)      {}
func (NopListener) LineCleared(int)          {}
func (NopListener) GameOver()                {}

// EventKind tags a recorded Event.
type EventKind uint8

const (
	EventSquareAdded EventKind = iota
	EventSquareRemoved
	EventLineCleared
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventSquareAdded:
		return "square_added"
	case EventSquareRemoved:
		return "square_removed"
	case EventLineCleared:
		return "line_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is one recorded engine signal.
type Event struct {
	Kind  EventKind
	Coord Coord // square events
	Shape Shape // EventSquareAdded
	Lines int   // EventLineCleared
}

// EventLog is a Listener that records signals in order until drained.
type EventLog struct {
	events []Event
}

func (l *EventLog) SquareAdded(c Coord, shape Shape) {
	l.events = append(l.events, Event{Kind: EventSquareAdded, Coord: c, Shape: shape})
}

func (l *EventLog) SquareRemoved(c Coord) {
	l.events = append(l.events, Event{Kind: EventSquareRemoved, Coord: c})
}

func (l *EventLog) LineCleared(total int) {
	l.events = append(l.events, Event{Kind: EventLineCleared, Lines: total})
}

func (l *EventLog) GameOver() {
	l.events = append(l.events, Event{Kind: EventGameOver})
}

// Len returns the number of pending events.
func (l *EventLog) Len() int {
	return len(l.events)
}

// Drain returns the pending events and empties the log.
func (l *EventLog) Drain() []Event {
	out := l.events
	l.events = nil
	return out
}

// Count returns how many pending events have the given kind.
func (l *EventLog) Count(kind EventKind) int {
	n := 0
	for _, e := range l.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
