// Package puzzle describes a day's solver and keeps the calendar of days.
package puzzle

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	adverrors "github.com/aledsdavies/advent/internal/errors"
	"github.com/aledsdavies/advent/internal/invariant"
)

// PartFunc solves one part of a day from the raw puzzle input.
type PartFunc func(input string) (any, error)

// Solver adapts a typed part function to a PartFunc.
func Solver[T any](f func(input string) (T, error)) PartFunc {
	return func(input string) (any, error) {
		v, err := f(input)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Day is one day's puzzle.
type Day struct {
	Number int
	Title  string
	Part1  PartFunc
	Part2  PartFunc
}

// Name returns the canonical short name, e.g. "day07".
func (d Day) Name() string {
	return fmt.Sprintf("day%02d", d.Number)
}

// Label returns the number and title, e.g. "7 No Space Left On Device".
func (d Day) Label() string {
	return fmt.Sprintf("%d %s", d.Number, d.Title)
}

// Registry holds the days that can be run.
type Registry struct {
	byNumber map[int]Day
	ordered  []Day
}

// NewRegistry builds a registry. Day numbers must be unique.
func NewRegistry(days ...Day) (*Registry, error) {
	r := &Registry{byNumber: make(map[int]Day, len(days))}
	for _, d := range days {
		invariant.Positive(d.Number, "day number")
		invariant.NotNil(d.Part1, d.Name()+" part 1")
		invariant.NotNil(d.Part2, d.Name()+" part 2")
		if prev, exists := r.byNumber[d.Number]; exists {
			return nil, fmt.Errorf("day %d registered twice (%q and %q)", d.Number, prev.Title, d.Title)
		}
		r.byNumber[d.Number] = d
		r.ordered = append(r.ordered, d)
	}
	sort.Slice(r.ordered, func(i, j int) bool {
		return r.ordered[i].Number < r.ordered[j].Number
	})
	return r, nil
}

// Days returns every registered day in calendar order.
func (r *Registry) Days() []Day {
	return append([]Day(nil), r.ordered...)
}

// Get returns the day with the given number.
func (r *Registry) Get(number int) (Day, bool) {
	d, ok := r.byNumber[number]
	return d, ok
}

// Lookup resolves a user query to a day. The query may be a number ("7"),
// a short name ("day07", "day7"), or part of a title matched fuzzily
// ("space left" or "nospace").
func (r *Registry) Lookup(query string) (Day, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if n, err := strconv.Atoi(strings.TrimPrefix(q, "day")); err == nil {
		if d, ok := r.Get(n); ok {
			return d, nil
		}
		return Day{}, adverrors.NewDayNotFoundError(query, r.suggest(q))
	}

	if q != "" {
		titles := make([]string, len(r.ordered))
		for i, d := range r.ordered {
			titles[i] = d.Title
		}
		ranks := fuzzy.RankFindFold(q, titles)
		if len(ranks) > 0 {
			sort.Sort(ranks)
			return r.ordered[ranks[0].OriginalIndex], nil
		}
	}

	return Day{}, adverrors.NewDayNotFoundError(query, r.suggest(q))
}

// suggest returns up to three day labels closest to q by edit distance.
func (r *Registry) suggest(q string) []string {
	type scored struct {
		label string
		dist  int
	}
	scores := make([]scored, 0, len(r.ordered))
	for _, d := range r.ordered {
		dist := min(
			fuzzy.LevenshteinDistance(q, strings.ToLower(d.Title)),
			fuzzy.LevenshteinDistance(q, d.Name()),
		)
		scores = append(scores, scored{d.Label(), dist})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].dist < scores[j].dist
	})

	var out []string
	for _, s := range scores[:min(3, len(scores))] {
		out = append(out, s.label)
	}
	return out
}
