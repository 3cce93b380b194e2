package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent/internal/config"
	"advent/internal/logging"
)

var (
	// Global flags
	cfgPath   string
	inputsDir string
	verbose   bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "advent - Advent of Code 2018 puzzle runner",
	Long: `advent runs the Advent of Code 2018 solutions from this repository
against puzzle input files.

Inputs are read from the configured inputs directory (default: inputs/),
one file per day named day01.txt, day02.txt and so on.

Run "advent list" to see which days are implemented.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if inputsDir != "" {
			cfg.Inputs.Dir = inputsDir
		}

		logger, err = logging.Build(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "advent.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVar(&inputsDir, "inputs", "", "inputs directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
