package dial

import "fmt"

// Direction is the way a Step turns the dial.
type Direction int

const (
	// Left turns toward lower numbers.
	Left Direction = iota
	// Right turns toward higher numbers.
	Right
)

// String returns the puzzle letter for d.
func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Step is one parsed instruction: a direction and an unsigned distance.
type Step struct {
	Dir      Direction
	Distance uint32
}

// Offset returns the signed distance: negative for Left, positive for Right.
func (s Step) Offset() int {
	if s.Dir == Left {
		return -int(s.Distance)
	}
	return int(s.Distance)
}

// String renders s back into its input form, e.g. "L68".
func (s Step) String() string {
	return fmt.Sprintf("%s%d", s.Dir, s.Distance)
}

const (
	// DefaultStart is where the dial points before the first step.
	DefaultStart = 50
	// DefaultSize is the number of positions on the dial.
	DefaultSize = 100
)

// Option configures a Dial via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the dial parameters.
type Options struct {
	// Start is the initial position, 0 <= Start < Size.
	Start int
	// Size is the number of positions, Size > 0.
	Size int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Start=50 and Size=100.
func DefaultOptions() Options {
	return Options{Start: DefaultStart, Size: DefaultSize}
}

// WithStart sets the initial position.
//
//	p < 0: invalid option → ErrOptionViolation
//	p >= Size is rejected by New once Size is known.
func WithStart(p int) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("%w: start cannot be negative (%d)", ErrOptionViolation, p)
			return
		}
		o.Start = p
	}
}

// WithSize sets the number of positions on the dial.
//
//	n <= 0: invalid option → ErrOptionViolation
func WithSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: size must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Size = n
	}
}
