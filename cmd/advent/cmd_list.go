package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"advent/cmd/advent/ui"
	"advent/internal/solver"
)

// listCmd prints the implemented days
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the implemented days",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, day := range solver.Days() {
			sol, _ := solver.Lookup(day)
			fmt.Fprintln(out, ui.AnswerLine(fmt.Sprintf("Day %2d", day), sol.Name))
		}
		return nil
	},
}
