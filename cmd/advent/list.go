package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/puzzle"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the solved days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := puzzle.NewRegistry(solutions()...)
		if err != nil {
			return err
		}
		for _, s := range reg.Days() {
			fmt.Fprintf(cmd.OutOrStdout(), "%02d  %s\n", s.Day, s.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
