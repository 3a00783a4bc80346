package puzzle

import (
	"fmt"
	"slices"
)

// Registry maps day numbers to Solutions. The zero value is ready to use.
// It is not safe for concurrent mutation.
type Registry struct {
	days map[int]Solution
}

// NewRegistry returns a Registry holding sols.
// It fails on the first Solution Register rejects.
func NewRegistry(sols ...Solution) (*Registry, error) {
	r := &Registry{}
	for _, s := range sols {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds s.
//
// Errors:
//   - ErrBadDay if s.Day is outside 1..LastDay.
//   - ErrNoParts if both parts are nil.
//   - ErrDuplicateDay if s.Day is taken.
func (r *Registry) Register(s Solution) error {
	if s.Day < 1 || s.Day > LastDay {
		return fmt.Errorf("%w: %d", ErrBadDay, s.Day)
	}
	if s.PartOne == nil && s.PartTwo == nil {
		return fmt.Errorf("%w: day %d", ErrNoParts, s.Day)
	}
	if _, ok := r.days[s.Day]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, s.Day)
	}
	if r.days == nil {
		r.days = make(map[int]Solution)
	}
	r.days[s.Day] = s
	return nil
}

// Lookup returns the Solution of day.
func (r *Registry) Lookup(day int) (Solution, error) {
	s, ok := r.days[day]
	if !ok {
		return Solution{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns every registered Solution ordered by day.
func (r *Registry) Days() []Solution {
	out := make([]Solution, 0, len(r.days))
	for _, s := range r.days {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b Solution) int { return a.Day - b.Day })
	return out
}

// Latest returns the highest registered day, or 0 if none.
func (r *Registry) Latest() int {
	latest := 0
	for d := range r.days {
		latest = max(latest, d)
	}
	return latest
}
