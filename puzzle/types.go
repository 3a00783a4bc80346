package puzzle

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for registry and runner operations.
var (
	// ErrBadDay indicates a day outside 1..25.
	ErrBadDay = errors.New("puzzle: day must be between 1 and 25")
	// ErrBadPart indicates a part other than 0 (both), 1 or 2.
	ErrBadPart = errors.New("puzzle: part must be 1, 2 or 0 for both")
	// ErrDuplicateDay indicates a second Solution registered for a day.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
	// ErrUnknownDay indicates no Solution is registered for a day.
	ErrUnknownDay = errors.New("puzzle: day not registered")
	// ErrNoParts indicates a Solution without any part function.
	ErrNoParts = errors.New("puzzle: solution has no parts")
	// ErrPartMissing indicates the requested part is not implemented.
	ErrPartMissing = errors.New("puzzle: part not implemented")
)

// LastDay is the highest day number of an event.
const LastDay = 25

// Part computes one answer from raw puzzle input.
type Part func(input string) (string, error)

// Solution describes one day. Either part may be nil while unsolved.
type Solution struct {
	Day     int
	Title   string
	PartOne Part
	PartTwo Part
}

// part returns the function for n (1 or 2).
func (s Solution) part(n int) Part {
	if n == 1 {
		return s.PartOne
	}
	return s.PartTwo
}

// Source selects which input a Loader returns.
type Source int

const (
	// Input is the personal puzzle input.
	Input Source = iota
	// Example is the small published example.
	Example
)

// String returns "input" or "example".
func (s Source) String() string {
	switch s {
	case Input:
		return "input"
	case Example:
		return "example"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Result is the answer of one part.
type Result struct {
	Day     int
	Part    int
	Answer  string
	Elapsed time.Duration
}
