package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

const stubID = "tui-stub"

// stubGame reports whatever state the test puts into it.
type stubGame struct {
	state  core.GameState
	resets int
	steps  int
	preset config.DifficultyPreset
}

func (g *stubGame) ID() string { return stubID }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(dst *core.Screen) { dst.Clear() }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Interval() time.Duration { return 250 * time.Millisecond }
func (g *stubGame) SetPreset(p config.DifficultyPreset) { g.preset = p }

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.state}
}

var lastStub *stubGame

func init() {
	registry.Register(stubID, func() registry.Game {
		lastStub = &stubGame{}
		return lastStub
	})
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func send(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	return m.Update(msg)
}

func TestGameModelSavesFinishedGameOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{}
	var m tea.Model = NewGameModel(game, store, testConfig(), "alice")
	m.Init()

	m, _ = send(t, m, TickMsg{})
	game.state = core.GameState{Score: 3, GameOver: true}
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, TickMsg{})

	recs, err := store.TopGames(stubID, 10)
	if err != nil {
		t.Fatalf("TopGames: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 saved game, got %d", len(recs))
	}
	if recs[0].Lines != 3 || recs[0].Player != "alice" || recs[0].IntervalMs != 250 {
		t.Errorf("unexpected record %+v", recs[0])
	}

	// A restart followed by another game over is a second game.
	game.state = core.GameState{}
	m, _ = send(t, m, TickMsg{})
	game.state = core.GameState{Score: 5, GameOver: true}
	_, _ = send(t, m, TickMsg{})

	recs, _ = store.TopGames(stubID, 10)
	if len(recs) != 2 || recs[0].Lines != 5 {
		t.Errorf("expected second game with 5 lines first, got %+v", recs)
	}
}

func TestGameModelSkipsEmptyGames(t *testing.T) {
	store := openStore(t)
	game := &stubGame{state: core.GameState{GameOver: true}}
	var m tea.Model = NewGameModel(game, store, testConfig(), "")
	_, _ = send(t, m, TickMsg{})

	recs, err := store.TopGames(stubID, 10)
	if err != nil {
		t.Fatalf("TopGames: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected no records, got %d", len(recs))
	}
}

func TestGameModelBackOnlyWhenIdle(t *testing.T) {
	game := &stubGame{}
	var m tea.Model = NewGameModel(game, nil, testConfig(), "")
	m, _ = send(t, m, TickMsg{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.(GameModel).BackToMenu() {
		t.Fatal("back must be ignored while playing")
	}

	game.state.Paused = true
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.(GameModel).BackToMenu() {
		t.Error("back while paused should return to menu")
	}
}

func TestGameModelStandaloneBackQuits(t *testing.T) {
	game := &stubGame{state: core.GameState{GameOver: true}}
	model := NewGameModel(game, nil, testConfig(), "")
	model.standalone = true

	var m tea.Model = model
	m, _ = send(t, m, TickMsg{})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.(GameModel).IsQuitting() {
		t.Error("standalone back should quit")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestGameModelQuitKey(t *testing.T) {
	var m tea.Model = NewGameModel(&stubGame{}, nil, testConfig(), "")
	m, cmd := send(t, m, runeKey('q'))
	if !m.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{}
	var m tea.Model = NewGameModel(game, nil, testConfig(), "")
	m.Init()
	_, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resets != 1 {
		t.Errorf("resize should not reset the game, resets=%d", game.resets)
	}
}

func TestSessionStartsGameWithChosenPreset(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, testConfig(), stubID, "bob", nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown}) // Easy
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	s := m.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("expected game screen, got %d", s.screen)
	}
	if cmd == nil {
		t.Error("first game should start a tick loop")
	}
	if lastStub.preset != config.DifficultyEasy {
		t.Errorf("expected easy preset, got %q", lastStub.preset)
	}
	if lastStub.resets != 1 {
		t.Errorf("expected one reset, got %d", lastStub.resets)
	}
}

func TestSessionReusesPendingTick(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, testConfig(), stubID, "bob", nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	lastStub.state.Paused = true
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).screen != screenMenu {
		t.Fatal("expected menu after leaving a paused game")
	}

	// The tick from the old game is still in flight.
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("a pending tick should drive the new game")
	}

	m, _ = send(t, m, TickMsg{})
	lastStub.state.Paused = true
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(t, m, TickMsg{}) // lands in the menu and stops the loop
	_, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("a new loop should start once the old one stopped")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	var m tea.Model = NewSessionModel(openStore(t), testConfig(), stubID, "bob", nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.(SessionModel).screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	s := m.(SessionModel)
	if s.screen != screenMenu || s.quitting {
		t.Fatal("esc should return to the menu without quitting")
	}
	if cmd != nil {
		t.Error("returning to the menu must not quit the program")
	}

	m, cmd = send(t, m, runeKey('q'))
	if !m.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}
