// Package repeats solves the day 2 puzzle: sum every number inside a list of
// inclusive ranges whose decimal form is a shorter block of digits repeated.
//
// Part one only accepts two equal halves (55, 6464, 123123). Part two
// accepts any block repeated at least twice (111, 121212, 1212121212).
//
// Both checks are divisibility tests. A d-digit number made of a k-digit
// block repeated d/k times is the block times a "mask" such as 101 (k=2,
// d=4) or 1001001 (k=3, d=9), so a number repeats exactly when it is a
// multiple of one of the masks of its digit count. The masks for 1..10
// digits are kept as a literal table; see Masks.
//
// Ranges are merged before summing, so a value covered by two ranges is
// counted once.
package repeats
