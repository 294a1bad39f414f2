package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration the way 'play' does and print it as YAML.
The output is a valid config file to start customizing from.

Search order:
  --config path, ~/.arcade/configs/blocks.yaml, ./configs/blocks.yaml,
  then built-in defaults.

Examples:
  blocks config
  blocks config --difficulty hard
  blocks config > ~/.arcade/configs/blocks.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom blocks config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Apply a difficulty preset before printing")
}

func runConfig(_ *cobra.Command, _ []string) {
	if err := printConfig(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printConfig writes the effective configuration to w as YAML.
func printConfig(w io.Writer) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyBlocksPreset(&cfg, preset)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
