package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best games",
	Long: `Display the games with the most cleared lines.

Examples:
  blocks scores
  blocks scores --limit 25
  blocks scores --interactive
  blocks scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of games to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded games")
}

func runScores(_ *cobra.Command, _ []string) {
	if err := showScores(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// showScores prints, browses or clears the recorded games.
func showScores() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearGames(blocks.ID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	}

	games, err := store.TopGames(blocks.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Best games - Blocks")
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'blocks play' and clear a line to get on the board!")
		return nil
	}

	fmt.Print(formatScores(games))

	if stats, err := store.GameStats(blocks.ID); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.1f  Total lines: %d\n",
			stats.Games, stats.BestLines, stats.AvgLines, stats.TotalLines)
	}
	return nil
}

// formatScores renders the ranked table of games.
func formatScores(games []storage.GameRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-4s  %-6s  %-8s  %-12s  %s\n", "Rank", "Lines", "Speed", "Player", "Date")
	fmt.Fprintf(&b, "  %-4s  %-6s  %-8s  %-12s  %s\n", "----", "-----", "-----", "------", "----")
	for i, g := range games {
		speed := "-"
		if g.IntervalMs > 0 {
			speed = fmt.Sprintf("%dms", g.IntervalMs)
		}
		fmt.Fprintf(&b, "  %-4d  %-6d  %-8s  %-12s  %s\n",
			i+1, g.Lines, speed, g.Player, g.CreatedAt.Format("2006-01-02 15:04"))
	}
	return b.String()
}
