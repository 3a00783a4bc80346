package repeats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDeriveMasks_MatchesTable checks that the divisor rule used past ten
// digits reproduces every hand-written entry of the table.
func TestDeriveMasks_MatchesTable(t *testing.T) {
	for d := 1; d < len(masksByDigits); d++ {
		assert.ElementsMatch(t, masksByDigits[d], deriveMasks(d), "digits %d", d)
	}
}

func TestDeriveMasks_Wide(t *testing.T) {
	assert.Equal(t, []uint64{11111111111}, deriveMasks(11))
	assert.Equal(t, []uint64{111111111111, 10101010101, 1001001001, 100010001, 1000001}, deriveMasks(12))
	assert.Equal(t, []uint64{
		11111111111111111111,
		1010101010101010101,
		10001000100010001,
		1000010000100001,
		10000000001,
	}, deriveMasks(20))
}
