// Package blocks adapts the falling-block engine to the platform Game
// interface: it maps actions to session calls, drives the fall timer in
// simulation ticks and draws the board into a screen buffer.
package blocks

import (
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/engine"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// ID is the registry and score-table identifier of the game.
const ID = "blocks"

// hudHeight is the number of screen rows above the playfield.
const hudHeight = 2

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements registry.Game on top of an engine.Session.
type Game struct {
	cfg     config.BlocksConfig
	session *engine.Session
	gravity *engine.Gravity
	source  engine.ShapeSource // nil means seeded random
	preset  config.DifficultyPreset

	tick       uint64
	tickRate   int
	fallTicker int
	started    bool

	// Rows cleared during the current Step, counted by the listener
	linesThisStep int

	// Layout
	screenW  int
	screenH  int
	boardX   int
	boardY   int
	tooSmall bool
}

// New creates a blocks game with random pieces.
func New() *Game {
	return &Game{}
}

// NewWithSource creates a blocks game whose pieces come from src.
func NewWithSource(src engine.ShapeSource) *Game {
	return &Game{source: src}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// SetPreset overrides the package-wide difficulty preset for this game.
// It takes effect on the next Reset.
func (g *Game) SetPreset(p config.DifficultyPreset) {
	g.preset = p
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blocks"
}

// Reset loads configuration, builds a fresh session and starts a new game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBlocks(configPath)
	if err != nil {
		cfg = config.DefaultBlocksConfig()
	}
	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	if preset != "" {
		config.ApplyBlocksPreset(&cfg, preset)
	}
	g.cfg = cfg

	g.tickRate = runtime.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.gravity = engine.NewGravity(cfg.Gravity.InitialInterval(), cfg.Gravity.Tier(), cfg.Gravity.MinInterval())

	opts := []engine.Option{
		engine.WithSeed(runtime.Seed),
		engine.WithListener(&listener{g: g}),
	}
	if g.source != nil {
		opts = append(opts, engine.WithShapeSource(g.source))
	}
	dims := engine.Dimensions{
		Width:    cfg.Board.Width,
		Height:   cfg.Board.Height,
		CellSize: cfg.Board.CellSize,
	}
	session, err := engine.NewSession(dims, opts...)
	if err != nil {
		session, _ = engine.NewSession(engine.DefaultDimensions(), opts...)
	}
	g.session = session

	g.tick = 0
	g.layout(runtime.ScreenW, runtime.ScreenH)
	g.newGame()
}

// newGame restarts play on the existing session.
func (g *Game) newGame() {
	g.gravity.Reset()
	g.fallTicker = 0
	g.linesThisStep = 0
	g.started = true
	g.session.NewGame()
}

// layout centers the playfield and flags screens that cannot hold it.
func (g *Game) layout(w, h int) {
	g.screenW, g.screenH = w, h
	boardW, boardH := g.boardSize()
	g.tooSmall = w < boardW || h < boardH+hudHeight
	g.boardX = (w - boardW) / 2
	g.boardY = hudHeight
}

// boardSize returns the framed playfield size in screen cells.
// Each board cell is two characters wide.
func (g *Game) boardSize() (w, h int) {
	d := g.session.Dimensions()
	return d.Columns()*2 + 2, d.Rows() + 2
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.linesThisStep = 0

	if in.Has(core.ActionRestart) {
		g.newGame()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.session.SetPaused(!g.session.Paused())
	}

	if g.tooSmall || g.session.State() != engine.StateActive {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Sequence() {
		switch a {
		case core.ActionLeft:
			g.session.MoveLeft()
		case core.ActionRight:
			g.session.MoveRight()
		case core.ActionDown:
			g.session.MoveDown()
		case core.ActionRotate:
			g.session.Rotate()
		}
	}

	// Gravity
	if g.session.State() == engine.StateActive {
		g.fallTicker++
		if g.fallTicker >= g.gravity.Ticks(g.tickRate) {
			g.fallTicker = 0
			g.session.MoveDown()
		}
	}

	return core.StepResult{
		State:        g.State(),
		LinesCleared: g.linesThisStep,
	}
}

// State returns the current game state. Score is the cleared line count.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Lines(),
		GameOver: g.started && g.session.State() == engine.StateOver,
		Paused:   g.session.Paused(),
	}
}

// Interval returns the current fall interval.
func (g *Game) Interval() time.Duration {
	return g.gravity.Interval()
}

// Session exposes the underlying engine session.
func (g *Game) Session() *engine.Session {
	return g.session
}

// listener routes engine signals back into the game.
type listener struct {
	engine.NopListener
	g *Game
}

func (l *listener) LineCleared(total int) {
	l.g.linesThisStep++
	l.g.gravity.LineCleared(total)
}
