package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs rootCmd with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// flag values outlive a single Execute
	runDay, runPart, runExample = 0, 0, false

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSolutions_Examples(t *testing.T) {
	want := map[int][2]string{
		1: {"3", "6"},
		2: {"1227775554", "4174379265"},
		3: {"357", "3121910778619"},
	}
	for _, s := range solutions() {
		exp, ok := want[s.Day]
		require.True(t, ok, "day %d has no expected answers", s.Day)

		out, err := execute(t, "run", "--day", strconv.Itoa(s.Day), "--example")
		require.NoError(t, err)
		assert.Contains(t, out, "part 1: "+exp[0]+" (")
		assert.Contains(t, out, "part 2: "+exp[1]+" (")
	}
}

func TestRunCmd_LatestDayOnePart(t *testing.T) {
	out, err := execute(t, "run", "--example", "--part", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 03 part 2: 3121910778619")
	assert.NotContains(t, out, "part 1")
}

func TestRunCmd_PersonalInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01.txt"), []byte("R50\nL200\n"), 0o600))
	t.Setenv("ADVENT_INPUT_DIR", dir)

	out, err := execute(t, "run", "-d", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 01 part 1: 2 (")
	assert.Contains(t, out, "Day 01 part 2: 3 (")
}

func TestRunCmd_Errors(t *testing.T) {
	t.Setenv("ADVENT_INPUT_DIR", t.TempDir())

	_, err := execute(t, "run", "--day", "1")
	assert.Error(t, err, "no personal input on disk")

	_, err = execute(t, "run", "--day", "9", "--example")
	assert.Error(t, err)

	_, err = execute(t, "run", "--day", "1", "--part", "4", "--example")
	assert.Error(t, err)
}

func TestListCmd(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "01  Secret Entrance\n02  Gift Shop\n03  Lobby\n", out)
}

func TestVersionCmd(t *testing.T) {
	original := version
	version = "test-1.0.0"
	defer func() { version = original }()

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "advent version test-1.0.0")
}

func TestRootCmd_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advent.toml")
	require.NoError(t, os.WriteFile(path, []byte("verbose = ["), 0o600))
	defer func() { configPath = "advent.toml" }()

	_, err := execute(t, "list", "--config", path)
	assert.Error(t, err)
}
