package joltage

import "errors"

// Sentinel errors for joltage operations.
var (
	// ErrEmptyInput indicates the input holds no banks.
	ErrEmptyInput = errors.New("joltage: input has no banks")
	// ErrBadBank indicates a line holding something other than digits.
	ErrBadBank = errors.New("joltage: bank must contain only digits")
	// ErrBadSize indicates a selection size outside 1..min(len(bank), MaxSize).
	ErrBadSize = errors.New("joltage: invalid selection size")
)

// MaxSize is the widest selection that still fits a uint64.
const MaxSize = 19

const (
	// PairSize is the number of batteries switched on in part one.
	PairSize = 2
	// BankSize is the number of batteries switched on in part two.
	BankSize = 12
)

// Bank is one line of batteries, each byte an ASCII digit.
type Bank string
