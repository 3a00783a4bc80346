package joltage_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/advent/joltage"
)

func TestParse(t *testing.T) {
	got, err := joltage.Parse("987\r\n\n  811 \n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if diff := cmp.Diff([]joltage.Bank{"987", "811"}, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := joltage.Parse("")
	assert.ErrorIs(t, err, joltage.ErrEmptyInput)

	_, err = joltage.Parse("123\n12a4")
	assert.ErrorIs(t, err, joltage.ErrBadBank)
	assert.Contains(t, err.Error(), "line 2, column 3")
}
