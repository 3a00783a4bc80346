package repeats

import (
	"slices"
	"strconv"

	"github.com/katalvlaran/advent/internal/numeric"
)

// Digits returns the decimal digit count of n; Digits(0) == 1.
func Digits(n uint64) int {
	return numeric.Digits(n)
}

// IsHalfRepeat reports whether n is made of two equal halves, e.g. 6464.
// Numbers with an odd digit count never qualify.
func IsHalfRepeat(n uint64) bool {
	d := Digits(n)
	if d%2 != 0 {
		return false
	}
	return n%(numeric.Pow10(d/2)+1) == 0
}

// IsRepeated reports whether n is a block of digits repeated at least
// twice, e.g. 111, 1212 or 123123. Single-digit numbers never qualify.
func IsRepeated(n uint64) bool {
	for _, m := range Masks(Digits(n)) {
		if n%m == 0 {
			return true
		}
	}
	return false
}

// Merge returns the union of ranges as sorted, disjoint, non-adjacent
// ranges. Empty ranges are dropped. The input is left untouched.
func Merge(ranges []Range) []Range {
	out := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.Empty() {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b Range) int {
		switch {
		case a.Lo < b.Lo:
			return -1
		case a.Lo > b.Lo:
			return 1
		default:
			return 0
		}
	})

	merged := out[:0]
	for _, r := range out {
		if n := len(merged); n > 0 {
			last := &merged[n-1]
			// Hi+1 overflow only matters at MaxUint64, where nothing follows.
			if last.Hi == ^uint64(0) || r.Lo <= last.Hi+1 {
				if r.Hi > last.Hi {
					last.Hi = r.Hi
				}
				continue
			}
		}
		merged = append(merged, r)
	}
	return merged
}

// Sum adds up every value in the union of ranges accepted by keep.
func Sum(ranges []Range, keep func(uint64) bool) uint64 {
	var acc uint64
	for _, r := range Merge(ranges) {
		for n := r.Lo; ; n++ {
			if keep(n) {
				acc += n
			}
			if n == r.Hi {
				break
			}
		}
	}
	return acc
}

// PartOne sums the half-repeated numbers of the ranges in input.
func PartOne(input string) (string, error) {
	ranges, err := Parse(input)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(Sum(ranges, IsHalfRepeat), 10), nil
}

// PartTwo sums the numbers of the ranges in input made of any repeated block.
func PartTwo(input string) (string, error) {
	ranges, err := Parse(input)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(Sum(ranges, IsRepeated), 10), nil
}
