// Command advent runs the daily puzzle solvers against their published
// examples or a personal input file.
//
//	advent run --day 1 --example
//	advent run --day 3 --part 2
//	advent list
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
