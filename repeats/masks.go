package repeats

import "github.com/katalvlaran/advent/internal/numeric"

// masksByDigits lists, for each digit count, the multipliers that turn a
// block into a repeated number. Index 0 is unused.
//
//	digits 4: 1111 (a·1111), 101 (ab·101)
//	digits 6: 111111, 10101 (ab ab ab), 1001 (abc abc)
var masksByDigits = [...][]uint64{
	1:  {},
	2:  {11},
	3:  {111},
	4:  {1111, 101},
	5:  {11111},
	6:  {111111, 10101, 1001},
	7:  {1111111},
	8:  {11111111, 1010101, 10001},
	9:  {111111111, 1001001},
	10: {1111111111, 101010101, 100001},
}

// maxDigits is the widest decimal number a uint64 holds.
const maxDigits = 20

// Masks returns the repetition masks for numbers of the given digit count.
// Counts 1..10 come from the literal table. Counts 11..20 are derived: one
// mask per block length k that divides digits with k < digits, built as
// 1 followed by k-1 zeros, repeated digits/k times. Any other count has no
// masks. The returned slice must not be modified.
func Masks(digits int) []uint64 {
	if digits >= 1 && digits < len(masksByDigits) {
		return masksByDigits[digits]
	}
	if digits < 1 || digits > maxDigits {
		return nil
	}
	return deriveMasks(digits)
}

// deriveMasks builds the masks of digits from its proper divisors,
// shortest block first.
func deriveMasks(digits int) []uint64 {
	var masks []uint64
	for k := 1; k < digits; k++ {
		if digits%k != 0 {
			continue
		}
		step := numeric.Pow10(k)
		var m uint64
		for i := 0; i < digits/k; i++ {
			m = m*step + 1
		}
		masks = append(masks, m)
	}
	return masks
}
