package puzzle

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/advent/data"
)

// Loader returns the raw input of a day.
type Loader interface {
	Load(day int, src Source) (string, error)
}

// DirLoader reads personal inputs from Dir/NN.txt and serves examples from
// the embedded data package.
type DirLoader struct {
	Dir string
}

// Load implements Loader.
func (l DirLoader) Load(day int, src Source) (string, error) {
	switch src {
	case Example:
		return data.Example(day)
	case Input:
		path := filepath.Join(l.Dir, data.FileName(day))
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("puzzle: reading input of day %d: %w", day, err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("puzzle: unknown source %v", src)
	}
}
