// Package data embeds the published example input of every solved day.
// Files are named by the two-digit day number: examples/01.txt, ...
package data

import (
	"embed"
	"errors"
	"fmt"
)

//go:embed examples/*.txt
var examples embed.FS

// ErrNoExample indicates no example file exists for the requested day.
var ErrNoExample = errors.New("data: no example for day")

// FileName returns the file name used for day, e.g. "01.txt".
func FileName(day int) string {
	return fmt.Sprintf("%02d.txt", day)
}

// Example returns the example input of day.
func Example(day int) (string, error) {
	b, err := examples.ReadFile("examples/" + FileName(day))
	if err != nil {
		return "", fmt.Errorf("%w %d", ErrNoExample, day)
	}
	return string(b), nil
}
