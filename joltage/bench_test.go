package joltage_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/advent/joltage"
)

// BenchmarkMaxJoltage selects twelve digits from a 100-digit bank.
func BenchmarkMaxJoltage(b *testing.B) {
	bank := joltage.Bank(strings.Repeat("2342342342", 10))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := joltage.MaxJoltage(bank, joltage.BankSize); err != nil {
			b.Fatalf("MaxJoltage failed: %v", err)
		}
	}
}
