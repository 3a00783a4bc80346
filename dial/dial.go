package dial

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/advent/internal/numeric"
)

// Rotations moves a 100-position dial from `from` by `amount` (positive is
// Right, negative is Left) and returns the resting position together with
// the number of times the dial pointed at 0 on the way.
//
// Algorithm:
//  1. end = (from + amount) mod 100, Euclidean, so end ∈ [0, 100).
//  2. from == 0: wraps = |amount| / 100; leaving 0 is not a pass.
//  3. otherwise: wraps = |floor((from + amount) / 100)|, plus one when a
//     Left move lands exactly on 0.
//
// Rotations(0, 0) == (0, 0), Rotations(0, 101) == (1, 1),
// Rotations(0, -101) == (99, 1), Rotations(55, -55) == (0, 1).
func Rotations(from, amount int) (end int, wraps uint64) {
	return rotate(from, amount, DefaultSize)
}

// rotate is Rotations on a dial of the given size.
func rotate(from, amount, size int) (int, uint64) {
	end := numeric.ModEuclid(from+amount, size)

	var wraps int
	if from == 0 {
		wraps = numeric.Abs(amount) / size
	} else {
		wraps = numeric.Abs(numeric.DivEuclid(from+amount, size))
		if end == 0 && amount < 0 {
			wraps++
		}
	}

	return end, uint64(wraps)
}

// Dial is a circular counter with Size positions. The zero value is not
// usable; build one with New.
type Dial struct {
	pos  int
	size int
}

// New returns a Dial configured by opts, pointing at its start position.
//
// Errors:
//   - ErrOptionViolation if an option is invalid or Start >= Size.
func New(opts ...Option) (*Dial, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Start >= o.Size {
		return nil, fmt.Errorf("%w: start %d outside dial of size %d", ErrOptionViolation, o.Start, o.Size)
	}

	return &Dial{pos: o.Start, size: o.Size}, nil
}

// Position returns where the dial currently points.
func (d *Dial) Position() int { return d.pos }

// Turn applies s and returns how many times the dial pointed at 0 during it.
func (d *Dial) Turn(s Step) uint64 {
	var wraps uint64
	d.pos, wraps = rotate(d.pos, s.Offset(), d.size)
	return wraps
}

// CountZeroStops applies steps in order and counts those after which the
// dial rests on 0.
func CountZeroStops(steps []Step, opts ...Option) (uint64, error) {
	d, err := New(opts...)
	if err != nil {
		return 0, err
	}

	var stops uint64
	for _, s := range steps {
		d.Turn(s)
		if d.Position() == 0 {
			stops++
		}
	}

	return stops, nil
}

// CountZeroPasses applies steps in order and sums the times the dial
// pointed at 0, whether it stopped there or moved through it.
func CountZeroPasses(steps []Step, opts ...Option) (uint64, error) {
	d, err := New(opts...)
	if err != nil {
		return 0, err
	}

	var passes uint64
	for _, s := range steps {
		passes += d.Turn(s)
	}

	return passes, nil
}

// PartOne parses input and returns CountZeroStops as a decimal string.
func PartOne(input string) (string, error) {
	steps, err := Parse(input)
	if err != nil {
		return "", err
	}
	n, err := CountZeroStops(steps)
	if err != nil {
		return "", err
	}

	return strconv.FormatUint(n, 10), nil
}

// PartTwo parses input and returns CountZeroPasses as a decimal string.
func PartTwo(input string) (string, error) {
	steps, err := Parse(input)
	if err != nil {
		return "", err
	}
	n, err := CountZeroPasses(steps)
	if err != nil {
		return "", err
	}

	return strconv.FormatUint(n, 10), nil
}
