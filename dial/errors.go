package dial

import "errors"

var (
	// ErrEmptyInput indicates the input holds no steps at all.
	ErrEmptyInput = errors.New("dial: input has no steps")
	// ErrBadStep indicates a line that is not <L|R><distance>.
	ErrBadStep = errors.New("dial: malformed step")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dial: invalid option supplied")
)
