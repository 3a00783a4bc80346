// Package joltage solves the day 3 puzzle: every line of input is a bank of
// batteries written as decimal digits, and exactly `size` batteries of a
// bank are switched on, keeping their order, to read the largest number.
//
// Part one switches on two batteries per bank, part two twelve; the answer
// is the sum over all banks.
//
// Selection is greedy over a shrinking window. With r slots still to fill,
// the next digit must leave at least r-1 digits after it, so it is searched
// in bank[start : len-r+1]. The leftmost maximum of that window is taken,
// because it leaves the most room for the remaining slots.
//
//	bank 818181911112111, size 12:
//	window "8181" → 8, window "181" → 8, ... → 888911112111
//
// Complexity: O(size · len(bank)) time, O(1) extra memory.
package joltage
