package joltage

import (
	"fmt"
	"strings"
)

// Parse reads one bank per line. Blank lines are skipped.
//
// Errors:
//   - ErrBadBank (wrapped with the 1-based line number) on a non-digit.
//   - ErrEmptyInput if no bank was found.
func Parse(input string) ([]Bank, error) {
	var banks []Bank
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for j := 0; j < len(line); j++ {
			if line[j] < '0' || line[j] > '9' {
				return nil, fmt.Errorf("%w: line %d, column %d: %q", ErrBadBank, i+1, j+1, line[j])
			}
		}
		banks = append(banks, Bank(line))
	}
	if len(banks) == 0 {
		return nil, ErrEmptyInput
	}

	return banks, nil
}
