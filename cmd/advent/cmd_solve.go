package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent/cmd/advent/ui"
	"advent/internal/input"
	"advent/internal/solver"
)

// solveCmd runs a single day against its input file
var solveCmd = &cobra.Command{
	Use:   "solve [day]",
	Short: "Solve one day's puzzle",
	Long: `Loads the input file for the given day from the inputs directory and
prints the answers for both parts.

Example:
  advent solve 1
  advent solve 2 --inputs ~/aoc/inputs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("day must be a number, got %q", args[0])
		}
		return runDay(cmd, day)
	},
}

// allCmd runs every registered day in order
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Solve every implemented day in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, day := range solver.Days() {
			if err := runDay(cmd, day); err != nil {
				return err
			}
		}
		return nil
	},
}

func runDay(cmd *cobra.Command, day int) error {
	sol, ok := solver.Lookup(day)
	if !ok {
		return fmt.Errorf("day %d is not implemented (known days: %v)", day, solver.Days())
	}

	f, err := input.Open(cfg.Inputs.Dir, day)
	if err != nil {
		return err
	}
	defer f.Close()

	logger.Debug("solving", zap.Int("day", day), zap.String("name", sol.Name))

	start := time.Now()
	answers, err := sol.Solve(f, solverOptions())
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("day %d: %w", day, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.DayHeader(day, sol.Name))
	for _, a := range answers {
		fmt.Fprintln(out, ui.AnswerLine(a.Label, a.Value))
	}
	fmt.Fprintln(out, ui.Elapsed(elapsed.Round(time.Microsecond).String()))

	logger.Debug("solved", zap.Int("day", day), zap.Duration("elapsed", elapsed))
	return nil
}

func solverOptions() solver.Options {
	return solver.Options{
		CycleCap:    cfg.Solver.CycleCap,
		Workers:     cfg.Solver.Workers,
		BaseSeconds: cfg.Solver.BaseSeconds,
	}
}
