package puzzle

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger receiving one debug entry per part.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// Runner loads input and executes registered parts.
type Runner struct {
	reg    *Registry
	loader Loader
	log    *zap.Logger
}

// NewRunner returns a Runner over reg reading input through loader.
func NewRunner(reg *Registry, loader Loader, opts ...RunnerOption) *Runner {
	r := &Runner{reg: reg, loader: loader, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes part (1, 2, or 0 for both) of day on input from src.
// Input is loaded once and shared by both parts. The first failing part
// aborts the run; no partial results are returned.
func (r *Runner) Run(day, part int, src Source) ([]Result, error) {
	if part < 0 || part > 2 {
		return nil, fmt.Errorf("%w: %d", ErrBadPart, part)
	}
	sol, err := r.reg.Lookup(day)
	if err != nil {
		return nil, err
	}

	parts := []int{part}
	if part == 0 {
		parts = []int{1, 2}
	}
	for _, p := range parts {
		if sol.part(p) == nil {
			return nil, fmt.Errorf("%w: day %d part %d", ErrPartMissing, day, p)
		}
	}

	input, err := r.loader.Load(day, src)
	if err != nil {
		return nil, err
	}
	log := r.log.With(zap.Int("day", day), zap.Stringer("source", src))
	log.Debug("input loaded", zap.Int("bytes", len(input)))

	results := make([]Result, 0, len(parts))
	for _, p := range parts {
		start := time.Now()
		answer, err := sol.part(p)(input)
		elapsed := time.Since(start)
		if err != nil {
			log.Debug("part failed", zap.Int("part", p), zap.Error(err))
			return nil, fmt.Errorf("day %d part %d: %w", day, p, err)
		}
		log.Debug("part solved",
			zap.Int("part", p),
			zap.String("answer", answer),
			zap.Duration("elapsed", elapsed),
		)
		results = append(results, Result{Day: day, Part: p, Answer: answer, Elapsed: elapsed})
	}

	return results, nil
}
