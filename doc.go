// Package advent is a set of daily puzzle solvers, each a small library
// package that parses its input and computes a "part one" and a "part two"
// answer.
//
// 🚀 What is inside?
//
//	dial/     day 1: turning a 100-position dial, counting zero hits
//	repeats/  day 2: summing numbers made of a repeated digit block
//	joltage/  day 3: the largest k-digit subsequence of a digit string
//	puzzle/   registry, input loader and timed runner
//	data/     the published example of every day, embedded
//
// ✨ Conventions:
//
//   - every solver exposes Parse, its core routine, PartOne and PartTwo
//   - PartOne / PartTwo take raw input and return the decimal answer
//   - malformed input is an error wrapping a package sentinel (ErrBadStep, ...)
//   - no solver logs, allocates globals or runs goroutines
//
// Quick example:
//
//	answer, err := dial.PartTwo("L68\nL30\nR48")
//
// The command in cmd/advent runs any registered day against its example or
// a personal input file:
//
//	go run ./cmd/advent run --day 1 --example
package advent
