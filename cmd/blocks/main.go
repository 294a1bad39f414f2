// blocks is a falling-block puzzle game for the terminal and over SSH.
//
// Usage:
//
//	blocks play              - Pick a difficulty and play
//	blocks serve             - Start SSH server for remote play
//	blocks scores            - Show the best games
//	blocks config            - Print the effective configuration
//	blocks list              - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible piece order
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// logger reports warnings that do not stop the command.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "blocks"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - a falling-block puzzle in your terminal",
	Long: `Blocks drops one piece at a time into a 16 by 20 well.
Fill a row to clear it; every 5 cleared lines the pieces fall twice as fast.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View the best games
  config   - Print the effective configuration
  list     - Show all available games

Examples:
  blocks play
  blocks play --difficulty hard
  blocks serve --ssh :2222
  blocks scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
