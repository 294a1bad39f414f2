package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing. Without --difficulty a menu lets you pick one and
brings you back after each game.

Controls:
  Left/Right, A/D  - Shift piece
  Down, S          - Drop one row
  Up, W, Space     - Rotate
  P                - Pause
  R                - Restart
  Esc/B            - Back to menu (paused or game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 1.5s first drop, halves every 5 lines
  normal - 1s first drop, halves every 5 lines
  hard   - 0.5s first drop, halves every 5 lines
  fixed  - config's drop interval, never speeds up

Examples:
  blocks play
  blocks play --difficulty hard
  blocks play --difficulty fixed --seed 42
  blocks play --config ./my-blocks.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom blocks config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs the game and closes the score store before returning.
func play() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	// Fail before entering the alt screen rather than silently using defaults.
	if _, err := config.LoadBlocks(flagConfig); err != nil {
		return err
	}
	blocks.SetConfigPath(flagConfig)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, games will not be recorded", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if preset != "" {
		if err := playOnce(store, cfg, preset); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		return nil
	}
	return menuLoop(store, cfg)
}

// playOnce runs a single game with the given preset.
func playOnce(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) error {
	game, err := registry.Create(blocks.ID)
	if err != nil {
		return err
	}
	if g, ok := game.(*blocks.Game); ok {
		g.SetPreset(preset)
	}
	return tui.Run(game, store, cfg)
}

// menuLoop shows the difficulty menu until the user quits.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		result, err := tui.RunMenu(blocks.ID, store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			// Each game gets a fresh piece order unless one was pinned.
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			if err := playOnce(store, cfg, result.Preset); err != nil {
				return err
			}
		}
	}
}
