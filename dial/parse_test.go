package dial_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/dial"
)

func TestParse(t *testing.T) {
	steps, err := dial.Parse("L68\r\nR48\n\nL5\n  R0  \n")
	require.NoError(t, err)

	want := []dial.Step{
		{Dir: dial.Left, Distance: 68},
		{Dir: dial.Right, Distance: 48},
		{Dir: dial.Left, Distance: 5},
		{Dir: dial.Right, Distance: 0},
	}
	if diff := cmp.Diff(want, steps); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", dial.ErrEmptyInput},
		{"OnlyBlank", "\n \n", dial.ErrEmptyInput},
		{"BadDirection", "L1\nU3", dial.ErrBadStep},
		{"MissingDistance", "R", dial.ErrBadStep},
		{"SignedDistance", "R-4", dial.ErrBadStep},
		{"Overflow", "L4294967296", dial.ErrBadStep},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dial.Parse(tc.input)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParse_ErrorNamesLine(t *testing.T) {
	_, err := dial.Parse("L1\nR2\nQ3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "L68", dial.Step{Dir: dial.Left, Distance: 68}.String())
	assert.Equal(t, "R5", dial.Step{Dir: dial.Right, Distance: 5}.String())
	assert.Equal(t, -68, dial.Step{Dir: dial.Left, Distance: 68}.Offset())
	assert.Equal(t, "Direction(7)", dial.Direction(7).String())
}
