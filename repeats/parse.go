package repeats

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads comma-separated inclusive ranges such as "11-22,95-115".
// Whitespace and line breaks around tokens are ignored, and so is a
// trailing comma.
//
// Errors:
//   - ErrBadRange (wrapped with the token) if a token is not <u64>-<u64>.
//   - ErrEmptyInput if no range was found.
func Parse(input string) ([]Range, error) {
	var ranges []Range
	for _, tok := range strings.Split(input, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		lo, hi, ok := strings.Cut(tok, "-")
		if !ok {
			return nil, fmt.Errorf("%w: %q: missing '-'", ErrBadRange, tok)
		}
		l, err := strconv.ParseUint(lo, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadRange, tok, err)
		}
		h, err := strconv.ParseUint(hi, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadRange, tok, err)
		}
		ranges = append(ranges, Range{Lo: l, Hi: h})
	}
	if len(ranges) == 0 {
		return nil, ErrEmptyInput
	}

	return ranges, nil
}
