package dial

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads one step per line, each written as L or R followed by an
// unsigned decimal distance ("L68", "R5"). Blank lines are skipped.
//
// Errors:
//   - ErrBadStep (wrapped with the 1-based line number) on a malformed line.
//   - ErrEmptyInput if no step was found.
func Parse(input string) ([]Step, error) {
	var steps []Step
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var dir Direction
		switch line[0] {
		case 'L':
			dir = Left
		case 'R':
			dir = Right
		default:
			return nil, fmt.Errorf("%w: line %d: %q: direction must be L or R", ErrBadStep, i+1, line)
		}

		dist, err := strconv.ParseUint(line[1:], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q: %v", ErrBadStep, i+1, line, err)
		}
		steps = append(steps, Step{Dir: dir, Distance: uint32(dist)})
	}
	if len(steps) == 0 {
		return nil, ErrEmptyInput
	}

	return steps, nil
}
