package repeats

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates the input holds no ranges.
	ErrEmptyInput = errors.New("repeats: input has no ranges")
	// ErrBadRange indicates a token that is not <u64>-<u64>.
	ErrBadRange = errors.New("repeats: malformed range")
)

// Range is an inclusive interval of candidate values. Lo <= Hi is not
// enforced; a Range with Lo > Hi holds nothing.
type Range struct {
	Lo, Hi uint64
}

// Empty reports whether r holds no value.
func (r Range) Empty() bool { return r.Lo > r.Hi }

// String renders r in its input form, e.g. "11-22".
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
}
