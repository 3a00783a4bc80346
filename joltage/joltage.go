package joltage

import (
	"fmt"
	"strconv"
)

// MaxJoltage returns the largest number formed by `size` digits of bank
// taken in their original order.
//
// Errors:
//   - ErrBadSize if size < 1, size > MaxSize or size > len(bank).
func MaxJoltage(bank Bank, size int) (uint64, error) {
	if size < 1 || size > MaxSize || size > len(bank) {
		return 0, fmt.Errorf("%w: %d digits from a bank of %d", ErrBadSize, size, len(bank))
	}

	var acc uint64
	start := 0
	for remaining := size; remaining > 0; remaining-- {
		// window is bank[start : len(bank)-remaining+1]
		best := start
		for i := start + 1; i <= len(bank)-remaining; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		acc = acc*10 + uint64(bank[best]-'0')
		start = best + 1
	}

	return acc, nil
}

// bestPair is MaxJoltage(bank, 2) written out: the tens digit is the
// leftmost maximum of all but the last battery, the units digit the
// maximum after it. bank must hold at least two digits.
func bestPair(bank Bank) uint64 {
	first := 0
	for i := 1; i < len(bank)-1; i++ {
		if bank[i] > bank[first] {
			first = i
		}
	}
	second := bank[first+1]
	for i := first + 2; i < len(bank); i++ {
		if bank[i] > second {
			second = bank[i]
		}
	}
	return uint64(bank[first]-'0')*10 + uint64(second-'0')
}

// PartOne sums the best two-battery reading of every bank.
func PartOne(input string) (string, error) {
	banks, err := Parse(input)
	if err != nil {
		return "", err
	}

	var acc uint64
	for i, b := range banks {
		if len(b) < PairSize {
			return "", fmt.Errorf("%w: bank %d has %d digits", ErrBadSize, i+1, len(b))
		}
		acc += bestPair(b)
	}

	return strconv.FormatUint(acc, 10), nil
}

// PartTwo sums the best twelve-battery reading of every bank.
func PartTwo(input string) (string, error) {
	banks, err := Parse(input)
	if err != nil {
		return "", err
	}

	var acc uint64
	for i, b := range banks {
		j, err := MaxJoltage(b, BankSize)
		if err != nil {
			return "", fmt.Errorf("bank %d: %w", i+1, err)
		}
		acc += j
	}

	return strconv.FormatUint(acc, 10), nil
}
