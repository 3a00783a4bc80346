package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/puzzle"
)

var (
	runDay     int
	runPart    int
	runExample bool
)

// runCmd solves one day
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve a day (latest by default)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := puzzle.NewRegistry(solutions()...)
		if err != nil {
			return err
		}
		day := runDay
		if day == 0 {
			day = reg.Latest()
		}
		src := puzzle.Input
		if runExample {
			src = puzzle.Example
		}

		runner := puzzle.NewRunner(reg, puzzle.DirLoader{Dir: cfg.InputDir}, puzzle.WithLogger(logger))
		results, err := runner.Run(day, runPart, src)
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "Day %02d part %d: %s (%s)\n", r.Day, r.Part, r.Answer, r.Elapsed)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().IntVarP(&runDay, "day", "d", 0, "day to solve; 0 means the latest registered day")
	runCmd.Flags().IntVarP(&runPart, "part", "p", 0, "part to solve (1 or 2); 0 runs both")
	runCmd.Flags().BoolVarP(&runExample, "example", "e", false, "use the embedded example instead of the personal input")
	rootCmd.AddCommand(runCmd)
}
