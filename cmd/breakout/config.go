package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration that play, serve and simulate would use, after
applying --config, --preset and --fps, as YAML.

The output is a complete config file and can be saved to
~/.breakout/configs/breakout.yaml and edited.

Examples:
  breakout config
  breakout config --preset easy > ~/.breakout/configs/breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Fprint(os.Stdout, string(data))
}
